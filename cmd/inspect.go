package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Seacant/adjei-sampling/internal/dataset"
	"github.com/Seacant/adjei-sampling/internal/sampler"
)

var inspectLabel string

var inspectCmd = &cobra.Command{
	Use:   "inspect <input-file>",
	Short: "Summarize the input dataset without resampling",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := cfg.Sampler.ReferenceLabel
		if inspectLabel != "" {
			label = inspectLabel
		}

		records, err := dataset.Load(args[0])
		if err != nil {
			return eris.Wrap(err, "inspect: load input")
		}

		big, small := dataset.Partition(records, label)

		fmt.Fprintf(os.Stdout, "reference label = %q\n", label)
		printGroup(os.Stdout, "reference", sampler.Describe(big))
		printGroup(os.Stdout, "matchable", sampler.Describe(small))
		return nil
	},
}

func printGroup(w io.Writer, name string, g sampler.GroupStats) {
	fmt.Fprintf(w, "%s n = %d\n", name, g.N)
	fmt.Fprintf(w, "%s pre mean/stdev = %v / %v\n", name, g.PreMean, g.PreStdev)
	fmt.Fprintf(w, "%s mid mean/stdev = %v / %v\n", name, g.MidMean, g.MidStdev)
	fmt.Fprintf(w, "%s final mean/stdev = %v / %v\n", name, g.PostMean, g.PostStdev)
	fmt.Fprintf(w, "%s gain mean/stdev = %v / %v\n", name, g.GainMean, g.GainStdev)
}

func init() {
	inspectCmd.Flags().StringVar(&inspectLabel, "label", "", "reference group label (default from config)")
	rootCmd.AddCommand(inspectCmd)
}
