package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/developerxd/webapiclientgen/clientgen"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate client types whenever a source changes",
		Long: `Generate once, then watch the manifests, documentation files and Go
package directories and regenerate on every change. Each change triggers a
fresh full run; nothing is reused between runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, req, err := flags.request(cmd, root)
			if err != nil {
				return err
			}
			if cfg.Generate.Output == "" {
				return errors.WithHint(
					errors.NewInvalidInputError("watch needs an output directory"),
					"pass --output or set generate.output in clientgen.toml")
			}

			paths := append([]string{}, req.Manifests...)
			paths = append(paths, req.DocFiles...)
			paths = append(paths, goPackageDirs(req.GoPackages, req.GoLoader.Dir)...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			regenerate := func(ctx context.Context) error {
				return generate(ctx, cmd, cfg, req)
			}
			if err := regenerate(ctx); err != nil {
				// keep watching; the next edit may fix it
				pterm.Error.Println(err.Error())
			}

			w, err := clientgen.NewWatcher(paths, cfg.Generate.Output, regenerate)
			if err != nil {
				return err
			}
			pterm.Info.Printfln("Watching %d sources, press Ctrl+C to stop", len(paths))
			logger.Debugw("watch started", logger.FieldCount, len(paths))
			return w.Run(ctx)
		},
	}
	flags.register(cmd)
	return cmd
}
