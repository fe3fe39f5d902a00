package app

import (
	"context"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goperceptron/internal/config"
	"github.com/philipparndt/goperceptron/internal/logging"
	"github.com/philipparndt/goperceptron/pkg/scenario"
	"github.com/philipparndt/goperceptron/pkg/session"
	"github.com/philipparndt/goperceptron/pkg/watcher"
	"github.com/philipparndt/goperceptron/version"
)

const (
	margin       = float32(20)
	brushHeight  = float32(28)
	statusHeight = float32(60)
)

// Options configures Run
type Options struct {
	ConfigPath   string
	ScenarioPath string
	LogLevel     string // Overrides the config file when set
}

// Run opens the chart window and blocks until it is closed
func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	log, err := logging.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		return err
	}

	app := &App{
		Config:   cfg,
		Scenario: ScenarioState{path: opts.ScenarioPath},
		log:      log,
	}
	app.newSession()

	if app.Scenario.path != "" {
		if err := app.replayScenario(); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := app.setupFileWatcher(ctx); err != nil {
			log.Warn().Err(err).Msg("scenario auto-reload not available")
		} else {
			defer app.Scenario.fileWatcher.Close()
		}
	}

	chartW := float32(cfg.Chart.Width)
	chartH := float32(cfg.Chart.Height)
	screenWidth := int32(chartW + 2*margin)
	screenHeight := int32(chartH + brushHeight + statusHeight + 3*margin)

	app.Chart.origin = rl.Vector2{X: margin, Y: margin}
	app.Chart.bounds = rl.Rectangle{X: margin, Y: margin, Width: chartW, Height: chartH}
	app.UI.brushBounds = rl.Rectangle{X: margin, Y: 2*margin + chartH, Width: chartW, Height: brushHeight}

	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "goperceptron "+version.GetVersion())
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	log.Info().
		Str("session", app.Chart.session.ID().String()).
		Float64("width", cfg.Chart.Width).
		Float64("height", cfg.Chart.Height).
		Msg("window opened")

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		if app.Scenario.needsReload.CompareAndSwap(true, false) {
			app.newSession()
			if err := app.replayScenario(); err != nil {
				log.Error().Err(err).Msg("scenario reload failed")
				app.Chart.sink.setStatus(fmt.Sprintf("reload failed: %v", err))
			}
		}

		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))
		app.drawChart()
		app.drawBrushStrip()
		app.drawUI()
		rl.EndDrawing()
	}

	app.Chart.unsubscribe()
	log.Info().Msg("window closed")
	return nil
}

// newSession replaces the session with a fresh one wired to the sink and log
func (app *App) newSession() {
	if app.Chart.unsubscribe != nil {
		app.Chart.unsubscribe()
	}

	s := app.Config.NewSession()
	sink := newEventSink(s.Snapshot())
	unsubSink := s.Subscribe(sink)
	unsubLog := s.Subscribe(session.LogObserver(app.log))

	app.Chart.session = s
	app.Chart.sink = sink
	app.Chart.unsubscribe = func() {
		unsubSink()
		unsubLog()
	}
	app.Interaction = InteractionState{}
}

func (app *App) replayScenario() error {
	sc, err := scenario.Load(app.Scenario.path)
	if err != nil {
		return err
	}

	events, err := scenario.Replay(app.Chart.session, sc)
	if err != nil {
		return fmt.Errorf("replay %s: %w", app.Scenario.path, err)
	}

	app.log.Info().
		Str("scenario", sc.Name).
		Int("steps", len(sc.Steps)).
		Int("events", len(events)).
		Msg("scenario replayed")
	return nil
}

func (app *App) setupFileWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, app.log)
	if err != nil {
		return err
	}

	err = fw.Watch([]string{app.Scenario.path}, func(string) {
		app.Scenario.needsReload.Store(true)
	})
	if err != nil {
		fw.Close()
		return err
	}

	fw.Start(ctx)
	app.Scenario.fileWatcher = fw
	return nil
}
