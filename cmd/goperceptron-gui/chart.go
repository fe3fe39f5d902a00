package main

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/philipparndt/goperceptron/pkg/session"
	"github.com/philipparndt/goperceptron/pkg/viewer"
	"github.com/rs/zerolog"
)

// Chart is the interactive surface: taps place points, drags draw the ideal line
type Chart struct {
	widget.BaseWidget
	session  *session.Session
	log      zerolog.Logger
	model    session.Model
	preview  []viewer.SceneLine
	dragging bool
	last     fyne.Position
}

// NewChart creates a chart bound to s
func NewChart(s *session.Session, log zerolog.Logger) *Chart {
	c := &Chart{
		session: s,
		log:     log,
		model:   s.Snapshot(),
	}
	c.ExtendBaseWidget(c)
	s.Subscribe(c)
	return c
}

// Notify implements session.Observer
func (c *Chart) Notify(e session.Event) {
	switch ev := e.(type) {
	case session.ModelChanged:
		c.model = ev.Model
	case session.DragPreview:
		c.preview = ev.SceneLines()
	case session.IdealLineUpdated, session.ModeChanged:
		c.preview = nil
	default:
		return
	}
	c.Refresh()
}

// Tapped places a point
func (c *Chart) Tapped(event *fyne.PointEvent) {
	if c.dragging {
		return
	}
	c.report(c.session.SurfaceClicked(float64(event.Position.X), float64(event.Position.Y)))
}

// Dragged forwards the gesture; the first event of a drag carries its start
func (c *Chart) Dragged(event *fyne.DragEvent) {
	if !c.dragging {
		start := event.Position.Subtract(event.Dragged)
		_, err := c.session.DragStart(float64(start.X), float64(start.Y))
		if err != nil {
			c.report(nil, err)
			return
		}
		c.dragging = true
	}

	c.last = event.Position
	c.report(c.session.DragMove(float64(event.Position.X), float64(event.Position.Y)))
}

// DragEnd commits the line at the last drag position
func (c *Chart) DragEnd() {
	if !c.dragging {
		return
	}
	c.dragging = false

	_, err := c.session.DragEnd(float64(c.last.X), float64(c.last.Y))
	if err != nil {
		c.preview = nil
		c.Refresh()
	}
	c.report(nil, err)
}

func (c *Chart) report(_ []session.Event, err error) {
	session.LogInputError(c.log, err)
}

// CreateRenderer creates the renderer for the widget
func (c *Chart) CreateRenderer() fyne.WidgetRenderer {
	r := &chartRenderer{chart: c}
	r.build()
	return r
}

// chartRenderer implements fyne.WidgetRenderer
type chartRenderer struct {
	chart   *Chart
	objects []fyne.CanvasObject
}

func (r *chartRenderer) build() {
	scene := r.chart.model.Scene().WithLines(r.chart.preview)
	t := scene.Transform
	vp := t.Viewport()

	bg := canvas.NewRectangle(viewer.ColorBackground)
	bg.Resize(fyne.NewSize(float32(vp.Width), float32(vp.Height)))
	objects := []fyne.CanvasObject{bg}

	objects = append(objects, gridObjects(t)...)

	for _, role := range []viewer.LineRole{viewer.RoleTraining, viewer.RoleDivision, viewer.RoleUserSegment} {
		for _, l := range scene.Lines {
			if l.Role == role {
				objects = append(objects, lineObject(l))
			}
		}
	}

	for _, p := range scene.Points {
		dot := canvas.NewCircle(viewer.PointColor(p.Side))
		size := float32(2 * p.Radius)
		dot.Resize(fyne.NewSize(size, size))
		dot.Move(fyne.NewPos(float32(p.Pixel.X)-size/2, float32(p.Pixel.Y)-size/2))
		objects = append(objects, dot)
	}

	r.objects = objects
}

func (r *chartRenderer) Layout(size fyne.Size) {}

func (r *chartRenderer) MinSize() fyne.Size {
	vp := r.chart.session.Transform().Viewport()
	return fyne.NewSize(float32(vp.Width), float32(vp.Height))
}

func (r *chartRenderer) Refresh() {
	r.build()
	canvas.Refresh(r.chart)
}

func (r *chartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *chartRenderer) Destroy() {}

func lineObject(l viewer.SceneLine) *canvas.Line {
	col, width := viewer.LineColor(l.Role)
	return newLine(l.Line, col, float32(width))
}

func newLine(l geometry.Line, col color.Color, width float32) *canvas.Line {
	line := canvas.NewLine(col)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(l.Start.X), float32(l.Start.Y))
	line.Position2 = fyne.NewPos(float32(l.End.X), float32(l.End.Y))
	return line
}

// gridObjects returns grid lines, center axes and tick labels
func gridObjects(t *viewer.Transform) []fyne.CanvasObject {
	d := t.Domain()
	vp := t.Viewport()
	pad := t.Padding()
	var objects []fyne.CanvasObject

	first := math.Ceil(d.Min/viewer.GridStep) * viewer.GridStep
	for v := first; v <= d.Max+1e-9; v += viewer.GridStep {
		x, y := t.ToPixelX(v), t.ToPixelY(v)
		objects = append(objects,
			newLine(geometry.NewLine(geometry.FullExtension, geometry.NewPoint(x, pad.Top), geometry.NewPoint(x, vp.Height-pad.Bottom)), viewer.ColorGrid, 1),
			newLine(geometry.NewLine(geometry.FullExtension, geometry.NewPoint(pad.Left, y), geometry.NewPoint(vp.Width-pad.Right, y)), viewer.ColorGrid, 1),
		)
	}

	cx, cy := vp.Width/2, vp.Height/2
	objects = append(objects,
		newLine(geometry.NewLine(geometry.FullExtension, geometry.NewPoint(pad.Left, cy), geometry.NewPoint(vp.Width-pad.Right, cy)), viewer.ColorAxis, 1),
		newLine(geometry.NewLine(geometry.FullExtension, geometry.NewPoint(cx, pad.Top), geometry.NewPoint(cx, vp.Height-pad.Bottom)), viewer.ColorAxis, 1),
	)

	for v := first; v <= d.Max+1e-9; v += viewer.GridStep * 2 {
		if v == 0 {
			continue
		}
		label := fmt.Sprintf("%g", v)

		xl := canvas.NewText(label, viewer.ColorLabel)
		xl.TextSize = 10
		xl.Move(fyne.NewPos(float32(t.ToPixelX(v))-xl.MinSize().Width/2, float32(cy)+4))

		yl := canvas.NewText(label, viewer.ColorLabel)
		yl.TextSize = 10
		yl.Move(fyne.NewPos(float32(cx)-yl.MinSize().Width-6, float32(t.ToPixelY(v))-yl.MinSize().Height/2))

		objects = append(objects, xl, yl)
	}
	return objects
}
