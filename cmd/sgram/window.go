package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectrograph/dsp/window"
	"github.com/spf13/cobra"
)

func (a *app) newWindowCmd() *cobra.Command {
	var (
		all      bool
		periodic bool
	)

	cmd := &cobra.Command{
		Use:   "window [name ...]",
		Short: "Print spectral properties of analysis windows",
		Long: `Print coherent gain, equivalent noise bandwidth, first null, highest
sidelobe and scallop loss of the configured window (or the named windows)
at the configured frame length, next to the nominal ENBW and sidelobe level
of each window family.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			switch {
			case all:
				names = nil
				for _, t := range window.Types() {
					names = append(names, t.String())
				}
			case len(names) == 0:
				names = []string{a.cfg.Window}
			}

			types := make([]window.Type, 0, len(names))
			for _, name := range names {
				t, err := window.ParseType(name)
				if err != nil {
					return err
				}
				types = append(types, t)
			}

			var opts []window.Option
			if periodic {
				opts = append(opts, window.WithPeriodic())
			}

			return printAnalysis(cmd, types, a.cfg.FrameLength, opts)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "show all window types")
	cmd.Flags().BoolVar(&periodic, "periodic", false, "use periodic (FFT) form instead of symmetric")

	return cmd
}

func printAnalysis(cmd *cobra.Command, types []window.Type, size int, opts []window.Option) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tNominal ENBW\t1st Min [bins]\tSidelobe [dB]\tNominal Sidelobe\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t------------\t--------------\t-------------\t----------------\t------------\n")

	for _, t := range types {
		a, err := window.Analyze(window.Generate(t, size, opts...))
		if err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}

		nominal := window.Info(t)

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.3f\t%.3f\t%.2f\t%.1f\t%.4f\n",
			t,
			size,
			a.CoherentGain,
			a.ENBW,
			nominal.ENBW,
			a.FirstMinimumBins,
			a.HighestSidelobedB,
			nominal.HighestSidelobe,
			a.ScallopLossdB,
		)
	}

	return tw.Flush()
}
