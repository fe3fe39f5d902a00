package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/philipparndt/goperceptron/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Palette used by Rasterize
var (
	ColorBackground   = color.RGBA{255, 255, 255, 255}
	ColorGrid         = color.RGBA{230, 230, 230, 255}
	ColorAxis         = color.RGBA{60, 60, 60, 255}
	ColorLabel        = color.RGBA{90, 90, 90, 255}
	ColorTraining     = color.RGBA{46, 160, 67, 255}
	ColorDivision     = color.RGBA{255, 165, 0, 255}
	ColorUserSegment  = color.RGBA{220, 20, 60, 255}
	ColorUnclassified = color.RGBA{30, 90, 200, 255}
	ColorPositive     = color.RGBA{0, 120, 60, 255}
	ColorNegative     = color.RGBA{130, 40, 160, 255}
)

// GridStep is the domain distance between grid lines
const GridStep = 10.0

// LineColor returns the stroke color and width for a line role
func LineColor(role LineRole) (color.RGBA, int) {
	switch role {
	case RoleDivision:
		return ColorDivision, 2
	case RoleUserSegment:
		return ColorUserSegment, 3
	default:
		return ColorTraining, 2
	}
}

// PointColor returns the fill color for a classified point
func PointColor(side geometry.Side) color.RGBA {
	switch side {
	case geometry.Positive:
		return ColorPositive
	case geometry.Negative:
		return ColorNegative
	default:
		return ColorUnclassified
	}
}

// Rasterize draws the scene into a new image the size of the viewport
func Rasterize(scene Scene) *image.RGBA {
	vp := scene.Transform.Viewport()
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height))))

	fillRect(img, img.Bounds(), ColorBackground)
	drawGrid(img, scene.Transform)

	// Training lines first so the division line stays on top
	for _, role := range []LineRole{RoleTraining, RoleDivision, RoleUserSegment} {
		for _, l := range scene.Lines {
			if l.Role != role {
				continue
			}
			col, width := LineColor(l.Role)
			drawSegment(img, l.Line, col, width)
		}
	}

	for _, p := range scene.Points {
		fillCircle(img, p.Pixel.X, p.Pixel.Y, p.Radius, PointColor(p.Side))
	}

	return img
}

// WritePNG encodes the image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// drawGrid draws grid lines, the two center axes and tick labels
func drawGrid(img *image.RGBA, t *Transform) {
	d := t.Domain()
	vp := t.Viewport()
	pad := t.Padding()

	first := math.Ceil(d.Min/GridStep) * GridStep
	for v := first; v <= d.Max+1e-9; v += GridStep {
		x := int(math.Round(t.ToPixelX(v)))
		y := int(math.Round(t.ToPixelY(v)))
		drawLine(img, x, int(pad.Top), x, int(vp.Height-pad.Bottom), ColorGrid)
		drawLine(img, int(pad.Left), y, int(vp.Width-pad.Right), y, ColorGrid)
	}

	// Axes cross at the middle of the viewport like the web chart
	cx := int(math.Round(vp.Width / 2))
	cy := int(math.Round(vp.Height / 2))
	drawLine(img, int(pad.Left), cy, int(vp.Width-pad.Right), cy, ColorAxis)
	drawLine(img, cx, int(pad.Top), cx, int(vp.Height-pad.Bottom), ColorAxis)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ColorLabel),
		Face: basicfont.Face7x13,
	}
	for v := first; v <= d.Max+1e-9; v += GridStep * 2 {
		if v == 0 {
			continue
		}
		label := fmt.Sprintf("%g", v)
		width := drawer.MeasureString(label).Round()

		x := int(math.Round(t.ToPixelX(v)))
		drawer.Dot = fixed.P(x-width/2, cy+15)
		drawer.DrawString(label)

		y := int(math.Round(t.ToPixelY(v)))
		drawer.Dot = fixed.P(cx-width-6, y+4)
		drawer.DrawString(label)
	}
}

// drawSegment clips a float segment to the image and draws it with the given width
func drawSegment(img *image.RGBA, l geometry.Line, col color.RGBA, width int) {
	b := img.Bounds()
	x1, y1, x2, y2, ok := clipSegment(l.Start.X, l.Start.Y, l.End.X, l.End.Y,
		float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X-1), float64(b.Max.Y-1))
	if !ok {
		return
	}

	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))
	ix2, iy2 := int(math.Round(x2)), int(math.Round(y2))

	// Thicken across the minor axis
	steep := abs(iy2-iy1) > abs(ix2-ix1)
	for k := -(width / 2); k <= (width-1)/2; k++ {
		if steep {
			drawLine(img, ix1+k, iy1, ix2+k, iy2, col)
		} else {
			drawLine(img, ix1, iy1+k, ix2, iy2+k, col)
		}
	}
}

// clipSegment clips a segment to a rectangle (Liang-Barsky)
func clipSegment(x1, y1, x2, y2, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	if math.IsNaN(x1) || math.IsNaN(y1) || math.IsNaN(x2) || math.IsNaN(y2) {
		return 0, 0, 0, 0, false
	}

	dx := x2 - x1
	dy := y2 - y1
	t0, t1 := 0.0, 1.0

	checks := [4][2]float64{
		{-dx, x1 - minX},
		{dx, maxX - x1},
		{-dy, y1 - minY},
		{dy, maxY - y1},
	}
	for _, c := range checks {
		p, q := c[0], c[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// fillCircle fills a disc centered at (cx, cy)
func fillCircle(img *image.RGBA, cx, cy, r float64, col color.RGBA) {
	bounds := img.Bounds()
	minX := int(math.Max(float64(bounds.Min.X), math.Floor(cx-r)))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Ceil(cx+r)))
	minY := int(math.Max(float64(bounds.Min.Y), math.Floor(cy-r)))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(cy+r)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// fillRect fills a rectangle with a solid color
func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= bounds.Min.X && x1 < bounds.Max.X && y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
