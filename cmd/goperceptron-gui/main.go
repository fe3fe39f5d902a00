package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goperceptron/internal/config"
	"github.com/philipparndt/goperceptron/internal/logging"
	"github.com/philipparndt/goperceptron/pkg/scenario"
	"github.com/philipparndt/goperceptron/pkg/session"
	"github.com/philipparndt/goperceptron/pkg/training"
	"github.com/philipparndt/goperceptron/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	scenarioPath string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:     "goperceptron-gui",
	Short:   "Perceptron chart desktop app",
	Args:    cobra.NoArgs,
	Version: version.GetFullVersion(),
	RunE:    run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	rootCmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "YAML scenario to replay on start")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// App holds the window and its widgets
type App struct {
	window     fyne.Window
	cfg        config.Config
	log        zerolog.Logger
	session    *session.Session
	generator  *training.Generator
	chart      *Chart
	brush      *BrushStrip
	modeButton *widget.Button
	status     *widget.Label
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	log, err := logging.New(cfg.Log.Level, os.Stderr)
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("goperceptron")

	appInstance := &App{
		window:    w,
		cfg:       cfg,
		log:       log,
		session:   cfg.NewSession(),
		generator: training.NewGenerator(cfg.Training.Seed),
	}
	appInstance.setupMainUI()

	if scenarioPath != "" {
		sc, err := scenario.Load(scenarioPath)
		if err != nil {
			return err
		}
		if _, err := scenario.Replay(appInstance.session, sc); err != nil {
			return err
		}
	}

	log.Info().Str("session", appInstance.session.ID().String()).Msg("window opened")
	w.ShowAndRun()
	return nil
}

func (a *App) setupMainUI() {
	s := a.session
	s.Subscribe(session.LogObserver(a.log))

	a.chart = NewChart(s, a.log)
	a.brush = NewBrushStrip(s, float32(a.cfg.Chart.Width), a.log)
	a.status = widget.NewLabel("Click to place points, switch to draw mode and drag to set the ideal line.")
	a.status.Wrapping = fyne.TextWrapWord

	a.modeButton = widget.NewButton(modeLabel(s.Mode()), func() {
		s.ToggleMode()
	})

	resetButton := widget.NewButton("Reset", func() {
		s.Reset()
	})

	trainButton := widget.NewButton("Train", func() {
		s.UpdateTrainingLine(a.generator.Next())
	})

	batchButton := widget.NewButton(fmt.Sprintf("Generate %d", a.cfg.Training.Count), func() {
		if _, err := s.GenerateTrainingLines(a.cfg.Training.Count); err != nil {
			a.log.Error().Err(err).Msg("generate failed")
		}
	})

	s.Subscribe(session.ObserverFunc(a.updateStatus))

	controls := container.NewHBox(a.modeButton, resetButton, trainButton, batchButton)
	content := container.NewVBox(
		controls,
		a.chart,
		widget.NewLabel("Training lines (drag to filter, tap to clear):"),
		a.brush,
		widget.NewSeparator(),
		a.status,
	)

	a.window.SetContent(container.NewPadded(content))
	a.window.Resize(fyne.NewSize(float32(a.cfg.Chart.Width)+40, float32(a.cfg.Chart.Height)+220))
}

func (a *App) updateStatus(e session.Event) {
	switch ev := e.(type) {
	case session.ModeChanged:
		a.modeButton.SetText(modeLabel(ev.Mode))
	case session.IdealLineUpdated:
		a.status.SetText(fmt.Sprintf("Ideal line %s: %d of %d points positive",
			ev.Line.Equation, ev.Positive(), len(ev.Points)))
	case session.TrainingLinesUpdated:
		a.status.SetText(fmt.Sprintf("%d training lines visible", len(ev.Lines)))
	}
}

func modeLabel(m session.Mode) string {
	if m == session.DrawLine {
		return "Mode: draw line"
	}
	return "Mode: place points"
}
