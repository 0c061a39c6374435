package parser

import (
	"github.com/IgorBayerl/unicov/internal/model"
)

// IParser defines the contract for all coverage report adapters.
type IParser interface {
	// Name returns a human readable name, used in logs and errors.
	Name() string
	// Format returns the format identity this adapter handles.
	Format() Format
	// SupportsContent reports whether content carries this format's signature.
	SupportsContent(content string) bool
	// Parse converts raw report content into the canonical coverage model.
	// It fails with ErrInvalidFormat when SupportsContent is false.
	Parse(content string, opts Options) (model.CoverageMap, error)
}
