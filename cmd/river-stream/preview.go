package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"river-stream/internal/preview"
	"river-stream/internal/wm"
)

func newPreviewCmd(opts *options) *cobra.Command {
	var (
		flags      layoutFlags
		cols, rows int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Draw the layout in the terminal",
		Long:  "Draw the layout in the terminal. Without --width and --height the usable area of the running compositor's output is used.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cols <= 0 || rows <= 0 {
				return fmt.Errorf("--cols and --rows must be positive, got %d and %d", cols, rows)
			}
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

			if flags.width == 0 && flags.height == 0 {
				manager, err := wm.NewManager(log)
				if err != nil {
					return err
				}
				out, err := manager.Output(flags.output)
				if err != nil {
					return fmt.Errorf("failed to query %s outputs: %w", manager.Name(), err)
				}
				flags.output, flags.width, flags.height = out.Name, out.Width, out.Height
			}

			generated, err := engine.GenerateLayout(flags.views, flags.width, flags.height, flags.tags, flags.output)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), preview.Render(generated, flags.width, flags.height, cols, rows))
			return err
		},
	}

	flags.register(cmd, 4)
	cmd.Flags().IntVar(&cols, "cols", 64, "preview width in characters")
	cmd.Flags().IntVar(&rows, "rows", 18, "preview height in characters")
	return cmd
}
