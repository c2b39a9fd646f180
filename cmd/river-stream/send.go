package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"river-stream/internal/ipc"
)

func newSendCmd(opts *options) *cobra.Command {
	var socket string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a request to a running daemon",
	}
	cmd.PersistentFlags().StringVar(&socket, "socket", "", "socket path (defaults to the configured one)")

	socketPath := func() (string, error) {
		if socket != "" {
			return socket, nil
		}
		log, err := opts.consoleLogger()
		if err != nil {
			return "", err
		}
		cfg, err := opts.resolveConfig(log)
		if err != nil {
			return "", err
		}
		return cfg.GetSocketPath(), nil
	}

	var flags layoutFlags
	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Request a layout and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := socketPath()
			if err != nil {
				return err
			}
			c, err := ipc.Dial(path)
			if err != nil {
				return err
			}
			defer c.Close()

			generated, err := c.GenerateLayout(flags.views, flags.width, flags.height, flags.tags, flags.output)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(generated)
		},
	}
	flags.register(layoutCmd, 1)

	var (
		cmdOutput string
		cmdTags   uint32
	)
	userCmd := &cobra.Command{
		Use:   "cmd <command>...",
		Short: "Send a user command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := socketPath()
			if err != nil {
				return err
			}
			c, err := ipc.Dial(path)
			if err != nil {
				return err
			}
			defer c.Close()

			var tags *uint32
			if cmd.Flags().Changed("tags") {
				tags = &cmdTags
			}
			return c.UserCmd(strings.Join(args, " "), tags, cmdOutput)
		},
	}
	userCmd.Flags().StringVar(&cmdOutput, "output", "", "output name")
	userCmd.Flags().Uint32Var(&cmdTags, "tags", 0, "focused tags")

	cmd.AddCommand(layoutCmd, userCmd)
	return cmd
}
