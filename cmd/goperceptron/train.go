package main

import (
	"fmt"

	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/philipparndt/goperceptron/pkg/training"
	"github.com/spf13/cobra"
)

var (
	trainCount  int
	trainSeed   uint64
	trainFrom   string
	trainTo     string
	trainPoints []string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Generate training lines and summarize them",
	Long: `Generate random candidate lines the way the chart does and print them with
slope and offset statistics. With --from/--to and --point, each line is also
scored by how many points it puts on the same side as the ideal line.`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().IntVarP(&trainCount, "count", "n", 0, "number of lines (defaults to the config value)")
	trainCmd.Flags().Uint64Var(&trainSeed, "seed", 0, "random seed (defaults to the config value)")
	trainCmd.Flags().StringVar(&trainFrom, "from", "", "ideal line start as x,y")
	trainCmd.Flags().StringVar(&trainTo, "to", "", "ideal line end as x,y")
	trainCmd.Flags().StringArrayVarP(&trainPoints, "point", "p", nil, "point as x,y (repeatable)")

	trainCmd.MarkFlagsRequiredTogether("from", "to")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	count := cfg.Training.Count
	if cmd.Flags().Changed("count") {
		count = trainCount
	}
	seed := cfg.Training.Seed
	if cmd.Flags().Changed("seed") {
		seed = trainSeed
	}

	lines, err := training.NewGenerator(seed).Generate(count)
	if err != nil {
		return err
	}

	var ideal *geometry.Line
	if trainFrom != "" {
		l, err := parseLine(trainFrom, trainTo)
		if err != nil {
			return err
		}
		ideal = &l
	}
	points, err := parsePoints(trainPoints)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Training Lines (%d)\n", len(lines))
	fmt.Fprintln(out, "==================")
	for i, l := range lines {
		fmt.Fprintf(out, "%3d  %-20s", i, l.Equation)
		if ideal != nil && len(points) > 0 {
			fmt.Fprintf(out, "  agreement %5.1f%%", 100*training.Agreement(l.Equation, *ideal, points))
		}
		fmt.Fprintln(out)
	}

	sum := training.Summarize(lines)
	fmt.Fprintln(out, "\nSummary:")
	fmt.Fprintf(out, "  Slope:  mean %.3f, stddev %.3f\n", sum.MeanSlope, sum.StdDevSlope)
	fmt.Fprintf(out, "  Offset: mean %.3f, stddev %.3f\n", sum.MeanOffset, sum.StdDevOffset)
	return nil
}

func parseLine(from, to string) (geometry.Line, error) {
	a, err := parsePoint(from)
	if err != nil {
		return geometry.Line{}, err
	}
	b, err := parsePoint(to)
	if err != nil {
		return geometry.Line{}, err
	}
	if a == b {
		return geometry.Line{}, fmt.Errorf("ideal line from %s to %s: %w", from, to, geometry.ErrDegenerateLine)
	}
	return geometry.NewLine(geometry.UserDefined, a, b), nil
}
