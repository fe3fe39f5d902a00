package session

import "github.com/rs/zerolog"

// LogObserver logs every event. Drag previews and snapshots go to debug level.
func LogObserver(logger zerolog.Logger) Observer {
	return ObserverFunc(func(e Event) {
		switch ev := e.(type) {
		case PointAdded:
			logger.Info().
				Stringer("event", ev.Kind()).
				Float64("x", ev.X).
				Float64("y", ev.Y).
				Msg("point added")
		case IdealLineUpdated:
			logger.Info().
				Stringer("event", ev.Kind()).
				Stringer("equation", ev.Line.Equation).
				Int("points", len(ev.Points)).
				Int("positive", ev.Positive()).
				Msg("ideal line updated")
		case DragPreview:
			logger.Debug().
				Stringer("event", ev.Kind()).
				Stringer("equation", ev.Equation).
				Msg("drag preview")
		case TrainingLinesUpdated:
			logger.Info().
				Stringer("event", ev.Kind()).
				Int("visible", len(ev.Lines)).
				Msg("training lines updated")
		case ModeChanged:
			logger.Info().
				Stringer("event", ev.Kind()).
				Stringer("mode", ev.Mode).
				Bool("drag", ev.DragEnabled).
				Msg("mode changed")
		case ModelChanged:
			logger.Debug().
				Stringer("event", ev.Kind()).
				Str("session", ev.Model.ID.String()).
				Int("points", len(ev.Model.Points)).
				Bool("ideal", ev.Model.IdealLine != nil).
				Int("training", ev.Model.TrainingTotal).
				Msg("model changed")
		}
	})
}

// LogInputError logs the outcome of an input handler. Rejected gestures are
// routine and go to debug level. It reports whether err was a real failure.
func LogInputError(logger zerolog.Logger, err error) bool {
	if err == nil {
		return false
	}
	if IsRejected(err) {
		logger.Debug().Err(err).Msg("gesture ignored")
		return false
	}
	logger.Error().Err(err).Msg("input failed")
	return true
}
