package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goperceptron/pkg/session"
)

// clickThreshold is how far the mouse may travel before a press becomes a drag
const clickThreshold = 5.0

// handleInput processes user input
func (app *App) handleInput() {
	s := app.Chart.session

	if rl.IsKeyPressed(rl.KeyM) {
		s.ToggleMode()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.Reset()
		app.Interaction.brush = BrushSelection{}
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.report(s.GenerateTrainingLines(app.Config.Training.Count))
	}
	if rl.IsKeyPressed(rl.KeyC) && !rl.IsKeyDown(rl.KeyLeftControl) && !rl.IsKeyDown(rl.KeyRightControl) {
		s.ClearBrush()
		app.Interaction.brush = BrushSelection{}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}

	mouse := rl.GetMousePosition()
	in := &app.Interaction

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		in.mouseDownPos = mouse
		in.mouseDown = true
		in.onChart = rl.CheckCollisionPointRec(mouse, app.Chart.bounds)
		in.dragging = false
		in.brushing = rl.CheckCollisionPointRec(mouse, app.UI.brushBounds)
		if in.brushing {
			x := mouse.X - app.UI.brushBounds.X
			in.brush = BrushSelection{Start: x, End: x}
		}
	}

	if in.mouseDown && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		switch {
		case in.brushing:
			in.brush.End = clampf(mouse.X-app.UI.brushBounds.X, 0, app.UI.brushBounds.Width)

		case in.onChart && s.Mode() == session.DrawLine:
			if !in.dragging && rl.Vector2Distance(in.mouseDownPos, mouse) >= clickThreshold {
				start := app.toChart(in.mouseDownPos)
				_, err := s.DragStart(float64(start.X), float64(start.Y))
				in.dragging = err == nil
				app.report(nil, err)
			}
			if in.dragging {
				p := app.toChart(mouse)
				app.report(s.DragMove(float64(p.X), float64(p.Y)))
			}
		}
	}

	if in.mouseDown && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		switch {
		case in.brushing:
			app.commitBrush()

		case in.dragging:
			p := app.toChart(mouse)
			_, err := s.DragEnd(float64(p.X), float64(p.Y))
			if err != nil {
				app.Chart.sink.clearPreview()
			}
			app.report(nil, err)

		case in.onChart && rl.Vector2Distance(in.mouseDownPos, mouse) < clickThreshold:
			p := app.toChart(mouse)
			app.report(s.SurfaceClicked(float64(p.X), float64(p.Y)))
		}

		in.mouseDown = false
		in.dragging = false
		in.brushing = false
	}
}

func (app *App) commitBrush() {
	b := app.Interaction.brush
	if b.Empty() {
		app.Chart.session.ClearBrush()
		app.Interaction.brush = BrushSelection{}
		return
	}

	lo, hi := b.Span()
	app.report(app.Chart.session.BrushMoved(lo, hi))
}

// report logs input errors and shows real failures in the status line
func (app *App) report(_ []session.Event, err error) {
	if session.LogInputError(app.log, err) {
		app.Chart.sink.setStatus(err.Error())
	}
}

// toChart converts a window position to chart surface pixels
func (app *App) toChart(p rl.Vector2) rl.Vector2 {
	return rl.Vector2Subtract(p, app.Chart.origin)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
