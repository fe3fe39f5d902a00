package viewer

import "github.com/philipparndt/goperceptron/pkg/geometry"

// Domain is the logical value range shared by both chart axes
type Domain struct {
	Min float64
	Max float64
}

// Span returns Max - Min
func (d Domain) Span() float64 {
	return d.Max - d.Min
}

// Padding insets the plotting area from the viewport edges
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformPadding returns the same inset on all four sides
func UniformPadding(p float64) Padding {
	return Padding{Top: p, Right: p, Bottom: p, Left: p}
}

// Transform maps domain coordinates onto the pixel viewport and back.
// Pixel y grows downward while domain y grows upward.
type Transform struct {
	domain  Domain
	width   float64
	height  float64
	padding Padding

	// Pixel ranges the domain is mapped onto; y0 > y1 inverts the axis
	x0, x1 float64
	y0, y1 float64
}

// NewTransform creates a transform for the given domain and viewport
func NewTransform(domain Domain, width, height float64, padding Padding) *Transform {
	return &Transform{
		domain:  domain,
		width:   width,
		height:  height,
		padding: padding,
		x0:      padding.Left,
		x1:      width - padding.Right,
		y0:      height - padding.Bottom,
		y1:      padding.Top,
	}
}

// Domain returns the configured domain
func (t *Transform) Domain() Domain {
	return t.domain
}

// Padding returns the configured padding
func (t *Transform) Padding() Padding {
	return t.padding
}

// Viewport returns the pixel size of the drawing surface
func (t *Transform) Viewport() geometry.Viewport {
	return geometry.Viewport{Width: t.width, Height: t.height}
}

// ToPixelX projects a domain x value to a pixel column
func (t *Transform) ToPixelX(v float64) float64 {
	return project(v, t.domain, t.x0, t.x1)
}

// ToPixelY projects a domain y value to a pixel row
func (t *Transform) ToPixelY(v float64) float64 {
	return project(v, t.domain, t.y0, t.y1)
}

// ToDomainX converts a pixel column back to a domain x value
func (t *Transform) ToDomainX(px float64) float64 {
	return unproject(px, t.domain, t.x0, t.x1)
}

// ToDomainY converts a pixel row back to a domain y value
func (t *Transform) ToDomainY(px float64) float64 {
	return unproject(px, t.domain, t.y0, t.y1)
}

// ToPixel projects a domain point into pixel space
func (t *Transform) ToPixel(p geometry.Point) geometry.Point {
	return geometry.NewPoint(t.ToPixelX(p.X), t.ToPixelY(p.Y))
}

// ToDomain converts a pixel point into domain space
func (t *Transform) ToDomain(p geometry.Point) geometry.Point {
	return geometry.NewPoint(t.ToDomainX(p.X), t.ToDomainY(p.Y))
}

// LineToPixel projects both endpoints of a domain line
func (t *Transform) LineToPixel(l geometry.Line) geometry.Line {
	return geometry.NewLine(l.Kind, t.ToPixel(l.Start), t.ToPixel(l.End))
}

// VisibleDomainX returns the domain x values at the left and right viewport edges
func (t *Transform) VisibleDomainX() (float64, float64) {
	return t.ToDomainX(0), t.ToDomainX(t.width)
}

// EquationToPixel realizes a domain equation across the full viewport width
func (t *Transform) EquationToPixel(eq geometry.Equation) geometry.Line {
	if eq.Vertical {
		x := t.ToPixelX(eq.X)
		return geometry.NewLine(geometry.FullExtension,
			geometry.NewPoint(x, 0),
			geometry.NewPoint(x, t.height),
		)
	}

	minX, maxX := t.VisibleDomainX()
	return t.LineToPixel(eq.Span(minX, maxX, 0, 0))
}

// project maps v linearly from the domain onto [r0, r1].
// An empty domain maps everything to the middle of the range.
func project(v float64, d Domain, r0, r1 float64) float64 {
	span := d.Span()
	if span == 0 {
		return (r0 + r1) / 2
	}
	return r0 + (v-d.Min)/span*(r1-r0)
}

// unproject is the inverse of project
func unproject(px float64, d Domain, r0, r1 float64) float64 {
	if r1 == r0 {
		return d.Min
	}
	return d.Min + (px-r0)/(r1-r0)*d.Span()
}
