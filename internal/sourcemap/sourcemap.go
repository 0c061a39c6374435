// Package sourcemap resolves positions in generated code back to positions
// in the original sources, using the source map embedded in a coverage
// report.
package sourcemap

import (
	"encoding/json"
	"fmt"

	"github.com/go-sourcemap/sourcemap"
)

// Position is a location in an original source file. Line is 1-based and
// Column 0-based, matching the coverage reports that carry source maps.
type Position struct {
	Source string
	Line   int
	Column int
}

// Resolver maps generated positions to original positions.
type Resolver interface {
	Original(line, column int) (Position, bool)
}

type consumerResolver struct {
	consumer *sourcemap.Consumer
}

// New parses an embedded source map payload. The payload is the raw JSON of
// a version 3 source map, either as an object or as a JSON string holding
// that object.
func New(payload []byte) (Resolver, error) {
	var inline string
	if err := json.Unmarshal(payload, &inline); err == nil {
		payload = []byte(inline)
	}
	consumer, err := sourcemap.Parse("", payload)
	if err != nil {
		return nil, fmt.Errorf("invalid source map: %w", err)
	}
	return &consumerResolver{consumer: consumer}, nil
}

func (r *consumerResolver) Original(line, column int) (Position, bool) {
	if line < 1 || column < 0 {
		return Position{}, false
	}
	source, _, srcLine, srcColumn, ok := r.consumer.Source(line, column)
	if !ok || source == "" || srcLine < 1 {
		return Position{}, false
	}
	return Position{Source: source, Line: srcLine, Column: srcColumn}, true
}
