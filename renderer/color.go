package renderer

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

type colorKind uint8

const (
	colorNone colorKind = iota
	colorNamed
	colorRGB
	colorRGBA
)

// Color is an SVG color: a name such as "green", rgb(r,g,b) or rgba(r,g,b,a).
// The zero value renders as "none".
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
	opacity float64
}

var errBadColor = errors.New("color must be a string, [r,g,b] or [r,g,b,a]")

func NamedColor(name string) Color { return Color{kind: colorNamed, name: name} }

func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, opacity: opacity}
}

// String returns the SVG attribute value of the color
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	case colorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatNumber(c.opacity))
	default:
		return "none"
	}
}

// UnmarshalJSON accepts "name", [r,g,b] and [r,g,b,a]
func (c *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = NamedColor(name)
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return errBadColor
	}
	return c.fromParts(parts)
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = NamedColor(node.Value)
		return nil
	case yaml.SequenceNode:
		var parts []float64
		if err := node.Decode(&parts); err != nil {
			return errBadColor
		}
		return c.fromParts(parts)
	default:
		return errBadColor
	}
}

// MarshalJSON writes the color back in the shape it was read from
func (c Color) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case colorRGB:
		return json.Marshal([]int{int(c.r), int(c.g), int(c.b)})
	case colorRGBA:
		return json.Marshal([]float64{float64(c.r), float64(c.g), float64(c.b), c.opacity})
	default:
		return json.Marshal(c.String())
	}
}

func (c *Color) fromParts(parts []float64) error {
	for i, p := range parts {
		if i < 3 && (p < 0 || p > 255) {
			return fmt.Errorf("color component %v out of range: %w", p, errBadColor)
		}
	}
	switch len(parts) {
	case 3:
		*c = RGB(uint8(parts[0]), uint8(parts[1]), uint8(parts[2]))
	case 4:
		*c = RGBA(uint8(parts[0]), uint8(parts[1]), uint8(parts[2]), parts[3])
	default:
		return errBadColor
	}
	return nil
}
