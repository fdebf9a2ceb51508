package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [dirs...]",
		Short: "Print the merged configuration for each directory",
		Long: "Resolve locates the configuration file for each directory (the working\n" +
			"directory when none is given), follows its extends chain and prints the\n" +
			"merged result. Provenance is written to stderr.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := requestOptions(cmd)
			if err != nil {
				return err
			}

			formatName, _ := cmd.Flags().GetString("format")
			query, _ := cmd.Flags().GetString("get")
			showChain, _ := cmd.Flags().GetBool("show-chain")
			showFingerprint, _ := cmd.Flags().GetBool("fingerprint")

			f := format(formatName)
			if f != formatJSON && f != formatYAML {
				return zerr.With(domain.ErrUnsupportedFormat, "format", formatName)
			}

			outcomes, resolveErr := c.app.Resolve(cmd.Context(), args, opts)

			r := newRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if query != "" {
				err = r.query(outcomes, query)
			} else {
				err = r.documents(outcomes, f, len(args) > 1)
			}
			if err != nil {
				return err
			}

			if showChain || showFingerprint {
				r.summary(outcomes, showChain, showFingerprint)
			}

			return resolveErr
		},
	}
	addRequestFlags(cmd)
	cmd.Flags().StringP("format", "o", string(formatJSON), "Output format: json or yaml")
	cmd.Flags().StringP("get", "g", "", "Print only the value at this path, e.g. compilerOptions.target")
	cmd.Flags().Bool("show-chain", false, "Print the extended files to stderr")
	cmd.Flags().Bool("fingerprint", false, "Print the content fingerprint to stderr")
	return cmd
}
