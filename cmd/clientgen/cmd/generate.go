package cmd

import (
	"context"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/developerxd/webapiclientgen/clientgen"
	"github.com/developerxd/webapiclientgen/config"
	"github.com/developerxd/webapiclientgen/errors"
)

// generateFlags are shared by generate, check and watch. Each one overrides
// the matching clientgen.toml key when set.
type generateFlags struct {
	manifests  []string
	goPackages []string
	langs      []string
	suffix     string
	methods    []string
	output     string
	workers    int
	docs       []string
	baseName   string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringSliceVarP(&f.manifests, "manifest", "m", nil, "Host type manifests (.yaml, .yml, .toml)")
	fl.StringSliceVarP(&f.goPackages, "go-packages", "p", nil, "Go package patterns to load host types from")
	fl.StringSliceVarP(&f.langs, "lang", "l", nil, "Target languages: csharp, typescript (default: csharp)")
	fl.StringVar(&f.suffix, "suffix", "", `Namespace suffix (default ".Client")`)
	fl.StringSliceVar(&f.methods, "methods", nil, "Cherry-picking methods: all, datacontract, newtonsoftjson, serializable, aspnet, netcore")
	fl.StringVarP(&f.output, "output", "o", "", "Output directory (default: stdout)")
	fl.IntVarP(&f.workers, "workers", "w", 0, "Namespaces emitted in parallel (0 = sequential)")
	fl.StringSliceVar(&f.docs, "doc", nil, ".NET XML documentation files")
	fl.StringVar(&f.baseName, "name", clientgen.DefaultBaseName, "Output file name without extension")
}

// apply overlays the flags that were set on cfg.
func (f *generateFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("manifest") {
		cfg.Generate.Manifests = f.manifests
	}
	if fl.Changed("go-packages") {
		cfg.GoLoader.Packages = f.goPackages
	}
	if fl.Changed("lang") {
		cfg.Generate.Languages = f.langs
	}
	if fl.Changed("suffix") {
		cfg.Generate.Suffix = f.suffix
	}
	if fl.Changed("methods") {
		cfg.Generate.Methods = f.methods
	}
	if fl.Changed("output") {
		cfg.Generate.Output = f.output
	}
	if fl.Changed("workers") {
		cfg.Generate.Workers = f.workers
	}
	if fl.Changed("doc") {
		cfg.Generate.DocFiles = f.docs
	}
	return cfg.Validate()
}

func (f *generateFlags) request(cmd *cobra.Command, root *rootOptions) (*config.Config, *clientgen.Request, error) {
	cfg, err := root.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := f.apply(cmd, cfg); err != nil {
		return nil, nil, err
	}
	req, err := clientgen.RequestFromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	req.BaseName = f.baseName
	return cfg, req, nil
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate client type declarations",
		Long: `Generate client-side declarations for the selected host types.

Without --output the generated files are written to stdout, each preceded by
a "// Language:" banner. With --output every language gets one file in that
directory, optionally run through the formatter configured for it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, req, err := flags.request(cmd, root)
			if err != nil {
				return err
			}
			return generate(cmd.Context(), cmd, cfg, req)
		},
	}
	flags.register(cmd)
	return cmd
}

func generate(ctx context.Context, cmd *cobra.Command, cfg *config.Config, req *clientgen.Request) error {
	start := time.Now()
	out, err := clientgen.Run(ctx, *req)
	if err != nil {
		return err
	}
	for _, d := range out.Diagnostics {
		pterm.Warning.Println(d.String())
	}

	if cfg.Generate.Output == "" {
		return clientgen.WriteOutput(cmd.OutOrStdout(), out.Files)
	}

	paths, err := out.Save(ctx, cfg.Generate.Output, formatters(cfg, out))
	if err != nil {
		return errors.Wrap(err, "failed to write generated output")
	}
	for _, p := range paths {
		pterm.Success.Printfln("Generated %s (%d types)", p, out.Types)
	}
	pterm.Info.Printfln("Done in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

func formatters(cfg *config.Config, out *clientgen.Output) map[string]string {
	m := make(map[string]string)
	for _, f := range out.Files {
		if c := clientgen.Formatter(cfg, f.Language); c != "" {
			m[f.Language] = c
		}
	}
	return m
}

func init() {
	// pterm writes to stdout by default; generated code owns stdout.
	pterm.SetDefaultOutput(os.Stderr)
}
