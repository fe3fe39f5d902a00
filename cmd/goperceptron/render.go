package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"

	"github.com/philipparndt/goperceptron/pkg/scenario"
	"github.com/philipparndt/goperceptron/pkg/viewer"
	"github.com/philipparndt/goperceptron/pkg/watcher"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderWatch  bool
)

var renderCmd = &cobra.Command{
	Use:   "render [scenario]",
	Short: "Render a scenario to a PNG snapshot",
	Long:  "Replay a YAML gesture scenario and write the resulting chart as PNG. With --watch the image is rewritten whenever the scenario changes.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "chart.png", "output PNG file")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "re-render when the scenario file changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	render := func(path string) error {
		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}

		s := cfg.NewSession()
		if _, err := scenario.Replay(s, sc); err != nil {
			return err
		}
		return writeSnapshot(renderOutput, viewer.Rasterize(s.Snapshot().Scene()))
	}

	if err := render(args[0]); err != nil {
		return err
	}
	log.Info().Str("output", renderOutput).Msg("snapshot written")

	if !renderWatch {
		return nil
	}
	return watchAndRender(cmd.Context(), log, args[0], render)
}

func watchAndRender(ctx context.Context, log zerolog.Logger, path string, render func(string) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce, log)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{path}, func(changed string) {
		if err := render(changed); err != nil {
			log.Error().Err(err).Str("scenario", changed).Msg("render failed")
			return
		}
		log.Info().Str("output", renderOutput).Msg("snapshot updated")
	})
	if err != nil {
		return err
	}

	log.Info().Str("scenario", path).Msg("watching for changes, press Ctrl+C to stop")
	fw.Run(ctx)
	return nil
}

func writeSnapshot(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := viewer.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
