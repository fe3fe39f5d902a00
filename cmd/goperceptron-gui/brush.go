package main

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goperceptron/pkg/session"
	"github.com/philipparndt/goperceptron/pkg/viewer"
	"github.com/rs/zerolog"
)

const brushHeight = 28

var (
	brushTrack     = color.RGBA{35, 40, 50, 255}
	brushTick      = color.RGBA{90, 95, 110, 255}
	brushSelection = color.RGBA{100, 150, 255, 80}
)

// BrushStrip selects which generated training lines are shown.
// Dragging across it sets the brush, tapping clears it.
type BrushStrip struct {
	widget.BaseWidget
	session *session.Session
	log     zerolog.Logger
	model   session.Model
	width   float32

	active     bool
	start, end float32
}

// NewBrushStrip creates a strip as wide as the chart
func NewBrushStrip(s *session.Session, width float32, log zerolog.Logger) *BrushStrip {
	b := &BrushStrip{session: s, log: log, width: width, model: s.Snapshot()}
	b.ExtendBaseWidget(b)
	s.Subscribe(b)
	return b
}

// Notify implements session.Observer
func (b *BrushStrip) Notify(e session.Event) {
	if ev, ok := e.(session.ModelChanged); ok {
		b.model = ev.Model
		if ev.Model.Brush == nil && !b.active {
			b.start, b.end = 0, 0
		}
		b.Refresh()
	}
}

// Tapped clears the brush
func (b *BrushStrip) Tapped(*fyne.PointEvent) {
	b.start, b.end = 0, 0
	b.session.ClearBrush()
}

// Dragged extends the selection
func (b *BrushStrip) Dragged(event *fyne.DragEvent) {
	if !b.active {
		b.start = event.Position.X - event.Dragged.DX
		b.active = true
	}
	b.end = float32(math.Max(0, math.Min(float64(b.width), float64(event.Position.X))))
	b.Refresh()
}

// DragEnd applies the selection
func (b *BrushStrip) DragEnd() {
	b.active = false
	if math.Abs(float64(b.end-b.start)) < 1 {
		b.session.ClearBrush()
		return
	}
	_, err := b.session.BrushMoved(float64(b.start), float64(b.end))
	if session.LogInputError(b.log, err) {
		b.start, b.end = 0, 0
		b.Refresh()
	}
}

// CreateRenderer creates the renderer for the widget
func (b *BrushStrip) CreateRenderer() fyne.WidgetRenderer {
	r := &brushRenderer{strip: b}
	r.build()
	return r
}

type brushRenderer struct {
	strip   *BrushStrip
	objects []fyne.CanvasObject
}

func (r *brushRenderer) build() {
	b := r.strip
	bg := canvas.NewRectangle(brushTrack)
	bg.Resize(fyne.NewSize(b.width, brushHeight))
	objects := []fyne.CanvasObject{bg}

	m := b.model
	for i := 0; i < m.TrainingTotal; i++ {
		f := float64(i) / float64(m.TrainingTotal)
		col := color.Color(brushTick)
		if m.Brush == nil || m.Brush.Contains(f) {
			col = viewer.ColorTraining
		}
		x := float32(f) * b.width
		tick := canvas.NewLine(col)
		tick.StrokeWidth = 2
		tick.Position1 = fyne.NewPos(x, 4)
		tick.Position2 = fyne.NewPos(x, brushHeight-4)
		objects = append(objects, tick)
	}

	lo, hi := math.Min(float64(b.start), float64(b.end)), math.Max(float64(b.start), float64(b.end))
	if hi-lo >= 1 {
		sel := canvas.NewRectangle(brushSelection)
		sel.StrokeColor = color.RGBA{100, 150, 255, 200}
		sel.StrokeWidth = 2
		sel.Move(fyne.NewPos(float32(lo), 0))
		sel.Resize(fyne.NewSize(float32(hi-lo), brushHeight))
		objects = append(objects, sel)
	}

	r.objects = objects
}

func (r *brushRenderer) Layout(fyne.Size) {}

func (r *brushRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.strip.width, brushHeight)
}

func (r *brushRenderer) Refresh() {
	r.build()
	canvas.Refresh(r.strip)
}

func (r *brushRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *brushRenderer) Destroy() {}
