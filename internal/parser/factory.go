package parser

import (
	"fmt"
	"sync"
)

// detectionOrder is the fixed order in which content signatures are tested.
// The first match wins, so a format whose signature could appear inside
// another format's document must come before it. Registered formats missing
// from this list are tested afterwards, in registration order.
var detectionOrder = []Format{
	FormatLLVMCov,
	FormatJSON,
	FormatXccov,
	FormatBullseye,
	FormatJaCoCo,
	FormatCobertura,
}

var (
	registryMu        sync.RWMutex
	registeredParsers = make(map[Format]IParser)
	registrationOrder []Format
)

// RegisterParser adds a parser to the list of available parsers.
// This should be called by each parser implementation in its init() function.
func RegisterParser(p IParser) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registeredParsers[p.Format()]; !dup {
		registrationOrder = append(registrationOrder, p.Format())
	}
	registeredParsers[p.Format()] = p
}

// GetParsers returns all registered parsers in detection order.
func GetParsers() []IParser {
	registryMu.RLock()
	defer registryMu.RUnlock()

	parsers := make([]IParser, 0, len(registeredParsers))
	seen := make(map[Format]struct{}, len(registeredParsers))
	for _, f := range detectionOrder {
		if p, ok := registeredParsers[f]; ok {
			parsers = append(parsers, p)
			seen[f] = struct{}{}
		}
	}
	for _, f := range registrationOrder {
		if _, ok := seen[f]; !ok {
			parsers = append(parsers, registeredParsers[f])
		}
	}
	return parsers
}

// ParserFor returns the parser registered for format.
func ParserFor(format Format) (IParser, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registeredParsers[format]
	if !ok {
		return nil, fmt.Errorf("%w: no parser registered for %q", ErrUnknownFormat, format)
	}
	return p, nil
}

// FindParserForContent attempts to find a suitable parser for the given
// report content by testing each parser's signature in detection order.
func FindParserForContent(content string) (IParser, error) {
	for _, p := range GetParsers() {
		if p.SupportsContent(content) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: no parser signature matches the content", ErrUnknownFormat)
}

// DetectFormat identifies the format of content.
func DetectFormat(content string) (Format, error) {
	p, err := FindParserForContent(content)
	if err != nil {
		return "", err
	}
	return p.Format(), nil
}
