package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate [dir]",
		Short: "Print the path of the configuration file that would be loaded",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := requestOptions(cmd)
			if err != nil {
				return err
			}

			var dir string
			if len(args) == 1 {
				dir = args[0]
			}

			path, err := c.app.Locate(cmd.Context(), dir, opts)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	addRequestFlags(cmd)
	return cmd
}
