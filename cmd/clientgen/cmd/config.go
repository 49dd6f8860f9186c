package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/developerxd/webapiclientgen/config"
	"github.com/developerxd/webapiclientgen/errors"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage clientgen.toml",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a clientgen.toml with default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path, err := config.WriteDefault(dir, force)
			if err != nil {
				return err
			}
			pterm.Success.Printfln("Wrote %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing clientgen.toml")

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			var data []byte
			switch format {
			case "toml":
				data, err = cfg.Marshal()
			case "yaml":
				data, err = yaml.Marshal(cfg)
			default:
				return errors.NewInvalidInputError("unsupported format %q (use toml or yaml)", format)
			}
			if err != nil {
				return errors.Wrap(err, "failed to render config")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	showCmd.Flags().StringVar(&format, "format", "toml", "Output format: toml, yaml")

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
