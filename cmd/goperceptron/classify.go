package main

import (
	"fmt"

	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/spf13/cobra"
)

var classifyFrom, classifyTo string

var classifyCmd = &cobra.Command{
	Use:   "classify [x,y...]",
	Short: "Classify points against a line",
	Long: `Report which side of the directed line from --from to --to each point lies on.
Points to the left of the direction of travel are positive.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&classifyFrom, "from", "", "line start as x,y")
	classifyCmd.Flags().StringVar(&classifyTo, "to", "", "line end as x,y")
	classifyCmd.MarkFlagRequired("from")
	classifyCmd.MarkFlagRequired("to")
}

func runClassify(cmd *cobra.Command, args []string) error {
	line, err := parseLine(classifyFrom, classifyTo)
	if err != nil {
		return err
	}
	points, err := parsePoints(args)
	if err != nil {
		return err
	}

	eq, err := line.Equation()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Line: %s\n\n", eq)
	for i, side := range geometry.Classify(line, points) {
		fmt.Fprintf(out, "  (%g, %g)  %s\n", points[i].X, points[i].Y, side)
	}
	return nil
}
