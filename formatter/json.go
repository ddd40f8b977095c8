package formatter

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes v to w. Markup in string values, such as a rendered SVG map, is
// written as is rather than HTML-escaped.
func WriteJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// BuildJSON serializes v into a byte slice
func BuildJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}
