package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectrograph/dsp/fftengine"
	"github.com/cwbudde/algo-spectrograph/internal/vecmath"
	"github.com/cwbudde/algo-spectrograph/internal/vecmath/registry"
	"github.com/spf13/cobra"
)

func (a *app) newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List FFT backends and vector kernel implementations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintf(tw, "FFT Backend\tSelected\n")
			fmt.Fprintf(tw, "-----------\t--------\n")
			for _, name := range fftengine.Names() {
				fmt.Fprintf(tw, "%s\t%s\n", name, mark(name == a.cfg.Backend))
			}

			active := vecmath.Implementation()
			fmt.Fprintf(tw, "\nKernels\tPriority\tActive\n")
			fmt.Fprintf(tw, "-------\t--------\t------\n")
			for _, e := range registry.Global.ListEntries() {
				fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Name, e.Priority, mark(e.Name == active))
			}

			return tw.Flush()
		},
	}
}

func mark(ok bool) string {
	if ok {
		return "*"
	}
	return ""
}
