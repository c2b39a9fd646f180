package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"river-stream/internal/layout"
)

type layoutFlags struct {
	views  uint32
	width  uint32
	height uint32
	tags   uint32
	output string
}

func (f *layoutFlags) register(cmd *cobra.Command, defaultViews uint32) {
	cmd.Flags().Uint32Var(&f.views, "views", defaultViews, "number of views to place")
	cmd.Flags().Uint32Var(&f.width, "width", 0, "usable width of the output")
	cmd.Flags().Uint32Var(&f.height, "height", 0, "usable height of the output")
	cmd.Flags().Uint32Var(&f.tags, "tags", 1, "focused tags (accepted, not used by the layout)")
	cmd.Flags().StringVar(&f.output, "output", "", "output name")
}

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		flags  layoutFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the layout for a view count and usable area",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.consoleLogger()
			if err != nil {
				return err
			}
			cfg, err := opts.resolveConfig(log)
			if err != nil {
				return err
			}
			engine, err := cfg.NewEngine()
			if err != nil {
				return err
			}

			generated, err := engine.GenerateLayout(flags.views, flags.width, flags.height, flags.tags, flags.output)
			if err != nil {
				return err
			}
			log.Debug("Layout generated", "views", flags.views, "placed", len(generated.Views))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(generated)
			}
			return writeLayout(cmd.OutOrStdout(), generated)
		},
	}

	flags.register(cmd, 1)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeLayout(w io.Writer, l layout.GeneratedLayout) error {
	if _, err := fmt.Fprintln(w, l.LayoutName); err != nil {
		return err
	}
	for i, v := range l.Views {
		if _, err := fmt.Fprintf(w, "%d\tx=%d\ty=%d\tw=%d\th=%d\n", i, v.X, v.Y, v.Width, v.Height); err != nil {
			return err
		}
	}
	return nil
}
