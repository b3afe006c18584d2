// Package format enumerates the output formats of the formula tool.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	PrettyFormat Format = iota
	JSONFormat
	FormulaFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"p":       PrettyFormat,
		"pretty":  PrettyFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"f":       FormulaFormat,
		"formula": FormulaFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case PrettyFormat:
		return []byte("pretty"), nil
	case JSONFormat:
		return []byte("json"), nil
	case FormulaFormat:
		return []byte("formula"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
