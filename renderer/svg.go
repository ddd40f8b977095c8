package renderer

import (
	"io"
	"strconv"
	"strings"
)

// Point is a position in SVG user units.
type Point struct {
	X, Y float64
}

// Document is an ordered list of SVG shapes.
type Document struct {
	shapes []shape
}

type shape interface {
	writeSVG(b *strings.Builder)
}

// pathProps are the stroke/fill attributes shared by all shapes.
type pathProps struct {
	fill        Color
	stroke      Color
	strokeWidth float64
	round       bool
}

func (p pathProps) write(b *strings.Builder) {
	if p.fill.kind != colorNone {
		writeAttr(b, "fill", p.fill.String())
	}
	if p.stroke.kind != colorNone {
		writeAttr(b, "stroke", p.stroke.String())
	}
	if p.strokeWidth != 0 {
		writeAttr(b, "stroke-width", formatNumber(p.strokeWidth))
	}
	if p.round {
		writeAttr(b, "stroke-linecap", "round")
		writeAttr(b, "stroke-linejoin", "round")
	}
}

type circle struct {
	center Point
	radius float64
	props  pathProps
}

func (c circle) writeSVG(b *strings.Builder) {
	b.WriteString("<circle")
	writeAttr(b, "cx", formatNumber(c.center.X))
	writeAttr(b, "cy", formatNumber(c.center.Y))
	writeAttr(b, "r", formatNumber(c.radius))
	c.props.write(b)
	b.WriteString("/>")
}

type polyline struct {
	points []Point
	props  pathProps
}

func (p polyline) writeSVG(b *strings.Builder) {
	b.WriteString("<polyline points=\"")
	for i, pt := range p.points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(pt.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(pt.Y))
	}
	b.WriteByte('"')
	p.props.write(b)
	b.WriteString("/>")
}

type text struct {
	position   Point
	offset     Point
	fontSize   int
	fontFamily string
	fontWeight string
	data       string
	props      pathProps
}

func (t text) writeSVG(b *strings.Builder) {
	b.WriteString("<text")
	t.props.write(b)
	writeAttr(b, "x", formatNumber(t.position.X))
	writeAttr(b, "y", formatNumber(t.position.Y))
	writeAttr(b, "dx", formatNumber(t.offset.X))
	writeAttr(b, "dy", formatNumber(t.offset.Y))
	writeAttr(b, "font-size", strconv.Itoa(t.fontSize))
	if t.fontFamily != "" {
		writeAttr(b, "font-family", t.fontFamily)
	}
	if t.fontWeight != "" {
		writeAttr(b, "font-weight", t.fontWeight)
	}
	b.WriteByte('>')
	b.WriteString(xmlEscape(t.data))
	b.WriteString("</text>")
}

func (d *Document) add(s shape) { d.shapes = append(d.shapes, s) }

// Len returns the number of shapes in the document
func (d *Document) Len() int { return len(d.shapes) }

// String serializes the document as a standalone SVG image
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, s := range d.shapes {
		b.WriteString("  ")
		s.writeSVG(&b)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	return b.String()
}

// WriteTo writes the serialized document to w
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(xmlEscape(value))
	b.WriteByte('"')
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
