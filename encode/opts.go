package encode

import "github.com/signadot/symx/format"

type EncodeOption func(*EncState)

type EncState struct {
	format format.Format
	colors *Colors
	indent int
}

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeColors colours text output. A nil c disables colour.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// Indent sets the indentation of YAML and JSON documents.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
