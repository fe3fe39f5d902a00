package main

import (
	"bytes"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/goperceptron/pkg/session"
	"github.com/philipparndt/goperceptron/pkg/viewer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrushSession(opts ...session.Option) *session.Session {
	t := viewer.NewTransform(viewer.Domain{Min: -50, Max: 50}, 400, 400, viewer.UniformPadding(30))
	return session.New(t, opts...)
}

func dragBrush(b *BrushStrip, from, to float32) {
	b.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(to, 5)},
		Dragged:    fyne.NewDelta(to-from, 0),
	})
	b.DragEnd()
}

func TestBrushStripAppliesRange(t *testing.T) {
	test.NewTempApp(t)

	s := newBrushSession()
	_, err := s.GenerateTrainingLines(40)
	require.NoError(t, err)

	b := NewBrushStrip(s, 400, zerolog.Nop())
	dragBrush(b, 100, 300)

	model := s.Snapshot()
	require.NotNil(t, model.Brush)
	assert.Len(t, model.TrainingLines, 19)
}

func TestBrushStripLogsFailure(t *testing.T) {
	test.NewTempApp(t)

	var buf bytes.Buffer
	s := newBrushSession(session.WithBrushTrack(0))
	b := NewBrushStrip(s, 400, zerolog.New(&buf))
	dragBrush(b, 100, 300)

	assert.Contains(t, buf.String(), "input failed")
	assert.Nil(t, s.Snapshot().Brush)
	assert.Zero(t, b.start)
	assert.Zero(t, b.end)
}
