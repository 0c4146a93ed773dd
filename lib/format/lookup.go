package format

import "github.com/pkg/errors"

type LookupMap map[Format]*Lookup

type Lookup struct {
	Renderer Renderer
	// Preamble is written once, ahead of the first rendered table
	Preamble string
	// TableSeparator goes between consecutive rendered tables
	TableSeparator string
	// Extension names output files written into an output directory
	Extension string
}

func (m LookupMap) Get(f Format) (*Lookup, error) {
	if f == FormatUnknown {
		f = DefaultFormat
	}
	lookup, ok := m[f]
	if !ok || lookup == nil {
		return nil, errors.Errorf("no renderer registered for format %s", f)
	}
	return lookup, nil
}
