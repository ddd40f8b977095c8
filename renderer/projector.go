package renderer

import (
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

const epsilon = 1e-6

// sphereProjector maps coordinates onto a width x height canvas with padding,
// keeping the aspect ratio and putting north at the top.
type sphereProjector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

func newSphereProjector(points []geo.Coordinates, width, height, padding float64) sphereProjector {
	p := sphereProjector{padding: padding}
	if len(points) == 0 {
		return p
	}
	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, pt := range points[1:] {
		minLng = math.Min(minLng, pt.Lng)
		maxLng = math.Max(maxLng, pt.Lng)
		minLat = math.Min(minLat, pt.Lat)
		maxLat = math.Max(maxLat, pt.Lat)
	}
	p.minLng = minLng
	p.maxLat = maxLat

	widthZoom, hasWidth := 0.0, !isZero(maxLng-minLng)
	if hasWidth {
		widthZoom = (width - 2*padding) / (maxLng - minLng)
	}
	heightZoom, hasHeight := 0.0, !isZero(maxLat-minLat)
	if hasHeight {
		heightZoom = (height - 2*padding) / (maxLat - minLat)
	}
	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}
	return p
}

func (p sphereProjector) project(c geo.Coordinates) Point {
	return Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}

func isZero(v float64) bool { return math.Abs(v) < epsilon }
