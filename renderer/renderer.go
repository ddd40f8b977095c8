// Package renderer draws the transit network as an SVG map.
//
// Layers are drawn in a fixed order: route lines, route labels, stop circles and
// stop labels. Buses are visited in name order and take palette colors in turn;
// buses without stops are skipped and do not consume a color.
package renderer

import (
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

const fontFamily = "Verdana"

// Settings controls the look of the rendered map
type Settings struct {
	Width             float64 `json:"width" yaml:"width" validate:"gte=0,lte=100000"`
	Height            float64 `json:"height" yaml:"height" validate:"gte=0,lte=100000"`
	Padding           float64 `json:"padding" yaml:"padding" validate:"gte=0"`
	LineWidth         float64 `json:"line_width" yaml:"line_width" validate:"gte=0,lte=100000"`
	StopRadius        float64 `json:"stop_radius" yaml:"stop_radius" validate:"gte=0,lte=100000"`
	BusLabelFontSize  int     `json:"bus_label_font_size" yaml:"bus_label_font_size" validate:"gte=0,lte=100000"`
	BusLabelOffset    Point   `json:"bus_label_offset" yaml:"bus_label_offset"`
	StopLabelFontSize int     `json:"stop_label_font_size" yaml:"stop_label_font_size" validate:"gte=0,lte=100000"`
	StopLabelOffset   Point   `json:"stop_label_offset" yaml:"stop_label_offset"`
	UnderlayerColor   Color   `json:"underlayer_color" yaml:"underlayer_color"`
	UnderlayerWidth   float64 `json:"underlayer_width" yaml:"underlayer_width" validate:"gte=0,lte=100000"`
	ColorPalette      []Color `json:"color_palette" yaml:"color_palette"`
}

// DefaultSettings returns a readable 1200x1200 layout
func DefaultSettings() Settings {
	return Settings{
		Width:             1200,
		Height:            1200,
		Padding:           50,
		LineWidth:         14,
		StopRadius:        5,
		BusLabelFontSize:  20,
		BusLabelOffset:    Point{X: 7, Y: 15},
		StopLabelFontSize: 20,
		StopLabelOffset:   Point{X: 7, Y: -3},
		UnderlayerColor:   RGBA(255, 255, 255, 0.85),
		UnderlayerWidth:   3,
		ColorPalette:      []Color{NamedColor("green"), RGB(255, 160, 0), NamedColor("red")},
	}
}

// BusSource enumerates the buses to draw.
type BusSource interface {
	Buses() []*catalogue.Bus
}

// MapRenderer renders networks with fixed settings.
type MapRenderer struct {
	settings Settings
}

func NewMapRenderer(settings Settings) *MapRenderer {
	return &MapRenderer{settings: settings}
}

func (r *MapRenderer) Settings() Settings { return r.settings }

// Render draws every non-empty bus of src and the stops they serve
func (r *MapRenderer) Render(src BusSource) *Document {
	buses := make([]*catalogue.Bus, 0, len(src.Buses()))
	for _, b := range src.Buses() {
		if len(b.Stops) > 0 {
			buses = append(buses, b)
		}
	}
	slices.SortFunc(buses, func(a, b *catalogue.Bus) int { return strings.Compare(a.Name, b.Name) })

	var coords []geo.Coordinates
	stopSet := map[catalogue.StopID]*catalogue.Stop{}
	for _, b := range buses {
		for _, s := range b.Stops {
			coords = append(coords, s.Coordinates)
			stopSet[s.ID] = s
		}
	}
	stops := make([]*catalogue.Stop, 0, len(stopSet))
	for _, s := range stopSet {
		stops = append(stops, s)
	}
	slices.SortFunc(stops, func(a, b *catalogue.Stop) int { return strings.Compare(a.Name, b.Name) })

	proj := newSphereProjector(coords, r.settings.Width, r.settings.Height, r.settings.Padding)
	doc := &Document{}
	r.renderRouteLines(doc, buses, proj)
	r.renderRouteLabels(doc, buses, proj)
	r.renderStopCircles(doc, stops, proj)
	r.renderStopLabels(doc, stops, proj)
	return doc
}

func (r *MapRenderer) paletteColor(i int) Color {
	if len(r.settings.ColorPalette) == 0 {
		return Color{}
	}
	return r.settings.ColorPalette[i%len(r.settings.ColorPalette)]
}

func (r *MapRenderer) renderRouteLines(doc *Document, buses []*catalogue.Bus, proj sphereProjector) {
	for i, b := range buses {
		line := polyline{props: pathProps{
			fill:        NamedColor("none"),
			stroke:      r.paletteColor(i),
			strokeWidth: r.settings.LineWidth,
			round:       true,
		}}
		for _, s := range b.Stops {
			line.points = append(line.points, proj.project(s.Coordinates))
		}
		if !b.Roundtrip {
			for k := len(b.Stops) - 2; k >= 0; k-- {
				line.points = append(line.points, proj.project(b.Stops[k].Coordinates))
			}
		}
		doc.add(line)
	}
}

func (r *MapRenderer) renderRouteLabels(doc *Document, buses []*catalogue.Bus, proj sphereProjector) {
	for i, b := range buses {
		first, last := b.Stops[0], b.Stops[len(b.Stops)-1]
		r.addLabel(doc, b.Name, proj.project(first.Coordinates), r.paletteColor(i))
		if !b.Roundtrip && first != last {
			r.addLabel(doc, b.Name, proj.project(last.Coordinates), r.paletteColor(i))
		}
	}
}

func (r *MapRenderer) addLabel(doc *Document, name string, at Point, color Color) {
	base := text{
		position:   at,
		offset:     r.settings.BusLabelOffset,
		fontSize:   r.settings.BusLabelFontSize,
		fontFamily: fontFamily,
		fontWeight: "bold",
		data:       name,
	}
	doc.add(r.underlayer(base))
	base.props = pathProps{fill: color}
	doc.add(base)
}

func (r *MapRenderer) renderStopCircles(doc *Document, stops []*catalogue.Stop, proj sphereProjector) {
	for _, s := range stops {
		doc.add(circle{
			center: proj.project(s.Coordinates),
			radius: r.settings.StopRadius,
			props:  pathProps{fill: NamedColor("white")},
		})
	}
}

func (r *MapRenderer) renderStopLabels(doc *Document, stops []*catalogue.Stop, proj sphereProjector) {
	for _, s := range stops {
		base := text{
			position:   proj.project(s.Coordinates),
			offset:     r.settings.StopLabelOffset,
			fontSize:   r.settings.StopLabelFontSize,
			fontFamily: fontFamily,
			data:       s.Name,
		}
		doc.add(r.underlayer(base))
		base.props = pathProps{fill: NamedColor("black")}
		doc.add(base)
	}
}

func (r *MapRenderer) underlayer(t text) text {
	t.props = pathProps{
		fill:        r.settings.UnderlayerColor,
		stroke:      r.settings.UnderlayerColor,
		strokeWidth: r.settings.UnderlayerWidth,
		round:       true,
	}
	return t
}
