package renderer

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

var errBadPoint = errors.New("offset must be a [dx, dy] pair")

// UnmarshalJSON reads a point from a [x, y] pair
func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil || len(pair) != 2 {
		return errBadPoint
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// MarshalJSON writes a point as a [x, y] pair
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// UnmarshalYAML reads a point from a [x, y] sequence
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var pair []float64
	if err := node.Decode(&pair); err != nil || len(pair) != 2 {
		return errBadPoint
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}
