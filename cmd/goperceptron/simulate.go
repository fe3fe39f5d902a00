package main

import (
	"fmt"

	"github.com/philipparndt/goperceptron/pkg/scenario"
	"github.com/philipparndt/goperceptron/pkg/session"
	"github.com/spf13/cobra"
)

var showEvents bool

var simulateCmd = &cobra.Command{
	Use:   "simulate [scenario]",
	Short: "Replay a scenario and print the resulting chart state",
	Long:  "Replay a YAML gesture scenario against a fresh chart and print the points, their classification and the training lines.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVarP(&showEvents, "events", "e", false, "log every emitted event")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	s := cfg.NewSession()
	if showEvents {
		defer s.Subscribe(session.LogObserver(log))()
	}

	events, err := scenario.Replay(s, sc)
	if err != nil {
		return err
	}
	log.Debug().Int("events", len(events)).Msg("replay finished")

	printModel(cmd, sc.Name, s.Snapshot())
	return nil
}

func printModel(cmd *cobra.Command, name string, m session.Model) {
	out := cmd.OutOrStdout()

	if name != "" {
		fmt.Fprintf(out, "Scenario: %s\n", name)
	}
	fmt.Fprintf(out, "Mode: %s\n\n", m.Mode)

	fmt.Fprintf(out, "Points (%d):\n", len(m.Points))
	for _, p := range m.Points {
		fmt.Fprintf(out, "  (%g, %g)  %s\n", p.X, p.Y, p.Side)
	}

	fmt.Fprintln(out)
	if m.IdealLine != nil {
		fmt.Fprintf(out, "Ideal line: %s\n", m.IdealLine.Equation)
		fmt.Fprintf(out, "  from (%g, %g) to (%g, %g)\n",
			m.IdealLine.Domain.Start.X, m.IdealLine.Domain.Start.Y,
			m.IdealLine.Domain.End.X, m.IdealLine.Domain.End.Y)
	} else {
		fmt.Fprintln(out, "Ideal line: none")
	}

	fmt.Fprintf(out, "\nTraining lines: %d of %d visible\n", len(m.TrainingLines), m.TrainingTotal)
	for _, l := range m.TrainingLines {
		fmt.Fprintf(out, "  %s  %s\n", l.ID.String()[:8], l.Equation)
	}
}
