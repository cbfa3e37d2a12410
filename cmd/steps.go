package cmd

import (
	"electrodes/internal/sequencer"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type stepsOptions struct {
	output string
}

func newStepsCmd() *cobra.Command {
	opts := &stepsOptions{}
	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Print the test procedure",
		Long: `Prints every step of the guided test procedure: the highlighted indicator,
the step label, the description, the button label and whether the result panels
are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeSteps(cmd.OutOrStdout(), opts.output)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or yaml")
	return cmd
}

func writeSteps(w io.Writer, format string) error {
	steps := sequencer.Steps()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(steps); err != nil {
			return fmt.Errorf("failed to encode steps: %w", err)
		}
		return enc.Close()
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "STEP\tINDICATOR\tLABEL\tBUTTON\tRESULTS\tDESCRIPTION")
		for i, s := range steps {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%t\t%s\n", i, s.Highlighted, dash(s.StepLabel), s.ButtonLabel, s.RevealResults, dash(s.Description))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", format)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
