package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/developerxd/webapiclientgen/clientgen"
	"github.com/developerxd/webapiclientgen/errors"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check if generated client types are up to date",
		Long: `Generate into a temporary directory and compare with the files in --output.

Exit codes:
  0 - Types are up to date
  1 - Types are out of date (differing files listed)
  2 - Error during check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, req, err := flags.request(cmd, root)
			if err != nil {
				return err
			}
			if cfg.Generate.Output == "" {
				return errors.WithHint(
					errors.NewInvalidInputError("check needs an output directory to compare with"),
					"pass --output or set generate.output in clientgen.toml")
			}

			tempDir, err := os.MkdirTemp("", "clientgen-check-*")
			if err != nil {
				return errors.Wrap(err, "failed to create temp directory")
			}
			defer os.RemoveAll(tempDir)

			out, err := clientgen.Run(cmd.Context(), *req)
			if err != nil {
				return err
			}
			// formatters run here too so formatted committed files compare equal
			if _, err := out.Save(cmd.Context(), tempDir, formatters(cfg, out)); err != nil {
				return err
			}

			result, err := clientgen.CompareDirectories(tempDir, cfg.Generate.Output)
			if err != nil {
				return err
			}
			if result.UpToDate {
				pterm.Success.Println("Client types are up to date")
				return nil
			}

			pterm.Error.Println("Client types are out of date:")
			for _, f := range result.Differences {
				pterm.Printfln("  - %s", f)
			}
			return errors.WithHint(errOutdated, "run 'clientgen generate' to update them")
		},
	}
	flags.register(cmd)
	return cmd
}
