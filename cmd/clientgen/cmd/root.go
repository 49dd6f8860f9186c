// Package cmd holds the clientgen cobra commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/developerxd/webapiclientgen/config"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

// Exit codes, matching the check command's contract
const (
	ExitOK       = 0
	ExitOutdated = 1
	ExitError    = 2
)

// errOutdated is returned by check when generated files differ.
var errOutdated = errors.New("generated client types are out of date")

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errOutdated):
		return ExitOutdated
	default:
		return ExitError
	}
}

type rootOptions struct {
	configPath string
	verbosity  int
	jsonLogs   bool
}

// NewRootCmd builds the clientgen command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "clientgen",
		Short: "Mirror host data types into client-side type declarations",
		Long: `clientgen mirrors host data types (POCOs) into client-side declarations.

Host types come from YAML/TOML manifests or from Go packages. The selected
types are translated once into a language-neutral model and printed as C#
and/or TypeScript, each namespace suffixed (default ".Client").

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (CLIENTGEN_* prefix, also read from ./.env)
3. Project config (clientgen.toml in the working directory or a parent)
4. Default values

Examples:
  clientgen generate --manifest models.yaml                 # C# to stdout
  clientgen generate --manifest models.yaml --lang ts -o out # TypeScript to out/
  clientgen generate --go-packages ./models/... --methods datacontract
  clientgen check -o src/Client                             # Fail when out of date
  clientgen watch --manifest models.yaml -o out             # Regenerate on change
  clientgen config init                                     # Write clientgen.toml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Initialize(opts.jsonLogs, opts.verbosity)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: nearest clientgen.toml)")
	root.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "Log as JSON")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newWatchCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFromFile(o.configPath)
	}
	return config.Load()
}
