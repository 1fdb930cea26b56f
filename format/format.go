package format

import (
	"errors"
	"fmt"
)

// Format selects how results are written.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
	LaTeXFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":     TextFormat,
		"text":  TextFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"l":     LaTeXFormat,
		"latex": LaTeXFormat,
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
	case TextFormat:
		return []byte("text"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case LaTeXFormat:
		return []byte("latex"), nil
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

func (f Format) IsText() bool  { return f == TextFormat }
func (f Format) IsYAML() bool  { return f == YAMLFormat }
func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsLaTeX() bool { return f == LaTeXFormat }

// IsStructured reports whether the format encodes values as documents
// rather than expression text.
func (f Format) IsStructured() bool { return f == YAMLFormat || f == JSONFormat }

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TextFormat, YAMLFormat, JSONFormat, LaTeXFormat}
}
