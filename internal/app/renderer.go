package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/philipparndt/goperceptron/pkg/training"
	"github.com/philipparndt/goperceptron/pkg/viewer"
)

// drawChart draws the surface from the last model the session reported
func (app *App) drawChart() {
	model, preview, _ := app.Chart.sink.snapshot()
	scene := model.Scene().WithLines(preview)
	bounds := app.Chart.bounds

	rl.DrawRectangleRec(bounds, viewer.ColorBackground)
	app.drawGrid(scene.Transform)

	// Clip so extended lines do not spill over the brush strip
	rl.BeginScissorMode(int32(bounds.X), int32(bounds.Y), int32(bounds.Width), int32(bounds.Height))
	for _, role := range []viewer.LineRole{viewer.RoleTraining, viewer.RoleDivision, viewer.RoleUserSegment} {
		for _, l := range scene.Lines {
			if l.Role == role {
				app.drawSceneLine(l)
			}
		}
	}
	for _, p := range scene.Points {
		center := app.toWindow(p.Pixel)
		rl.DrawCircleV(center, float32(p.Radius), viewer.PointColor(p.Side))
	}
	rl.EndScissorMode()
}

func (app *App) drawSceneLine(l viewer.SceneLine) {
	col, width := viewer.LineColor(l.Role)
	rl.DrawLineEx(app.toWindow(l.Line.Start), app.toWindow(l.Line.End), float32(width), col)
}

func (app *App) drawGrid(t *viewer.Transform) {
	d := t.Domain()
	vp := t.Viewport()
	pad := t.Padding()

	first := math.Ceil(d.Min/viewer.GridStep) * viewer.GridStep
	for v := first; v <= d.Max+1e-9; v += viewer.GridStep {
		x := t.ToPixelX(v)
		y := t.ToPixelY(v)
		rl.DrawLineV(app.toWindow(geometry.NewPoint(x, pad.Top)), app.toWindow(geometry.NewPoint(x, vp.Height-pad.Bottom)), viewer.ColorGrid)
		rl.DrawLineV(app.toWindow(geometry.NewPoint(pad.Left, y)), app.toWindow(geometry.NewPoint(vp.Width-pad.Right, y)), viewer.ColorGrid)
	}

	cx, cy := vp.Width/2, vp.Height/2
	rl.DrawLineV(app.toWindow(geometry.NewPoint(pad.Left, cy)), app.toWindow(geometry.NewPoint(vp.Width-pad.Right, cy)), viewer.ColorAxis)
	rl.DrawLineV(app.toWindow(geometry.NewPoint(cx, pad.Top)), app.toWindow(geometry.NewPoint(cx, vp.Height-pad.Bottom)), viewer.ColorAxis)

	for v := first; v <= d.Max+1e-9; v += viewer.GridStep * 2 {
		if v == 0 {
			continue
		}
		label := fmt.Sprintf("%g", v)
		w := float64(rl.MeasureText(label, 10))

		xp := app.toWindow(geometry.NewPoint(t.ToPixelX(v)-w/2, cy+6))
		rl.DrawText(label, int32(xp.X), int32(xp.Y), 10, viewer.ColorLabel)

		yp := app.toWindow(geometry.NewPoint(cx-w-6, t.ToPixelY(v)-5))
		rl.DrawText(label, int32(yp.X), int32(yp.Y), 10, viewer.ColorLabel)
	}
}

// drawBrushStrip draws the training line index track and the current brush
func (app *App) drawBrushStrip() {
	strip := app.UI.brushBounds
	model, _, _ := app.Chart.sink.snapshot()

	rl.DrawRectangleRec(strip, rl.NewColor(35, 40, 50, 255))

	// One tick per generated line, highlighted when the brush keeps it
	if model.TrainingTotal > 0 {
		r := training.Range{Lo: 0, Hi: 1}
		if model.Brush != nil {
			r = *model.Brush
		}
		for i := 0; i < model.TrainingTotal; i++ {
			f := float64(i) / float64(model.TrainingTotal)
			x := strip.X + float32(f)*strip.Width
			col := rl.NewColor(90, 95, 110, 255)
			if model.Brush == nil || r.Contains(f) {
				col = viewer.ColorTraining
			}
			rl.DrawLineEx(rl.Vector2{X: x, Y: strip.Y + 4}, rl.Vector2{X: x, Y: strip.Y + strip.Height - 4}, 2, col)
		}
	}

	if !app.Interaction.brush.Empty() {
		app.Interaction.brush.Draw(strip)
	}
	rl.DrawRectangleLinesEx(strip, 1, rl.NewColor(70, 75, 90, 255))
}

// drawUI draws the status lines under the brush strip
func (app *App) drawUI() {
	model, _, status := app.Chart.sink.snapshot()
	x := int32(margin)
	y := int32(app.UI.brushBounds.Y + app.UI.brushBounds.Height + margin/2)

	ideal := "none"
	if model.IdealLine != nil {
		ideal = model.IdealLine.Equation.String()
	}
	rl.DrawText(fmt.Sprintf("mode: %s   points: %d   ideal: %s", model.Mode, len(model.Points), ideal), x, y, 14, rl.RayWhite)
	rl.DrawText(status, x, y+20, 12, rl.LightGray)

	if app.UI.showHelp {
		help := "M mode   R reset   T train   C clear brush   H help"
		rl.DrawText(help, x, y+38, 12, rl.Gray)
	} else {
		rl.DrawText("H for help", x, y+38, 12, rl.Gray)
	}
}

// toWindow converts chart surface pixels to window coordinates
func (app *App) toWindow(p geometry.Point) rl.Vector2 {
	return rl.Vector2{
		X: app.Chart.origin.X + float32(p.X),
		Y: app.Chart.origin.Y + float32(p.Y),
	}
}
