package clientgen

import (
	"context"
	"time"

	"github.com/developerxd/webapiclientgen/clientgen/cherry"
	"github.com/developerxd/webapiclientgen/clientgen/doccomment"
	"github.com/developerxd/webapiclientgen/clientgen/emit"
	"github.com/developerxd/webapiclientgen/clientgen/goload"
	"github.com/developerxd/webapiclientgen/clientgen/hosttype"
	"github.com/developerxd/webapiclientgen/clientgen/manifest"
	"github.com/developerxd/webapiclientgen/config"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

// DefaultBaseName names the generated files when the request leaves it empty.
const DefaultBaseName = "ClientModels"

// Request describes one generation run.
type Request struct {
	// Manifests are YAML or TOML host type manifests.
	Manifests []string
	// GoPackages are package patterns loaded with goload.
	GoPackages []string
	GoLoader   goload.Options
	// DocFiles are .NET XML documentation files. They win over docs
	// found in manifests or Go sources.
	DocFiles []string

	Suffix  string
	Methods cherry.Method
	Workers int

	Printers []Printer
	// BaseName is the file name, without extension, of every output file.
	BaseName string
}

// RequestFromConfig builds a request from loaded configuration.
func RequestFromConfig(cfg *config.Config) (*Request, error) {
	methods, err := cherry.ParseMethods(cfg.Generate.Methods)
	if err != nil {
		return nil, errors.Wrap(err, "generate.methods")
	}
	printers, err := PrintersFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Request{
		Manifests:  cfg.Generate.Manifests,
		GoPackages: cfg.GoLoader.Packages,
		GoLoader: goload.Options{
			NamespacePrefix: cfg.GoLoader.NamespacePrefix,
			Dir:             cfg.GoLoader.Dir,
		},
		DocFiles: cfg.Generate.DocFiles,
		Suffix:   cfg.Generate.Suffix,
		Methods:  methods,
		Workers:  cfg.Generate.Workers,
		Printers: printers,
	}, nil
}

// GeneratedFile is one printed output file.
type GeneratedFile struct {
	Language string
	Name     string
	Content  string
}

// Output is the result of a run.
type Output struct {
	Files       []GeneratedFile
	Diagnostics []emit.Diagnostic
	// Types is how many host types were mirrored.
	Types int
}

// Run loads the host types, selects the ones the cherry-picking methods
// ask for, emits them once and prints the unit with every printer.
func Run(ctx context.Context, req Request) (*Output, error) {
	if len(req.Manifests) == 0 && len(req.GoPackages) == 0 {
		return nil, errors.WithHint(
			errors.NewInvalidInputError("no host type sources given"),
			"pass --manifest or --go-packages, or set generate.manifests / goloader.packages in clientgen.toml")
	}
	if len(req.Printers) == 0 {
		return nil, errors.NewInvalidInputError("no printers configured")
	}

	start := time.Now()
	u, docs, err := loadHostTypes(ctx, req)
	if err != nil {
		return nil, err
	}

	selected := cherry.SelectTypes(u.Declared(), req.Methods)
	if len(selected) == 0 {
		return nil, errors.WithHintf(
			errors.NewInvalidInputError("no host types match cherry-picking methods %s", req.Methods),
			"%d types were declared; check their attributes or use --methods all", len(u.Declared()))
	}

	res, err := emit.EmitContext(ctx, selected, emit.Options{
		Suffix:  req.Suffix,
		Methods: req.Methods,
		Policy:  cherry.Picker{},
		Docs:    docs,
		Workers: req.Workers,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to emit client types")
	}

	base := req.BaseName
	if base == "" {
		base = DefaultBaseName
	}
	out := &Output{Diagnostics: res.Diagnostics, Types: len(selected)}
	for _, p := range req.Printers {
		out.Files = append(out.Files, GeneratedFile{
			Language: p.Language(),
			Name:     base + "." + p.FileExtension(),
			Content:  StripMarkers(p.GenerateFile(res.Unit)),
		})
	}

	logger.Infow("generated client types",
		logger.FieldCount, len(selected),
		logger.FieldSuffix, req.Suffix,
		"methods", req.Methods.String(),
		"diagnostics", len(res.Diagnostics),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return out, nil
}

func loadHostTypes(ctx context.Context, req Request) (*hosttype.Universe, emit.DocLookup, error) {
	u := hosttype.NewUniverse()
	docs := doccomment.Map{}

	if len(req.GoPackages) > 0 {
		res, err := goload.Load(ctx, req.GoPackages, req.GoLoader)
		if err != nil {
			return nil, nil, err
		}
		u, docs = res.Universe, res.Docs
	}

	if len(req.Manifests) > 0 {
		files, err := manifest.ReadFiles(req.Manifests...)
		if err != nil {
			return nil, nil, err
		}
		if err := manifest.Build(u, docs, files...); err != nil {
			return nil, nil, err
		}
	}

	chain := doccomment.Chain{}
	for _, path := range req.DocFiles {
		m, err := doccomment.LoadXMLFile(path)
		if err != nil {
			return nil, nil, err
		}
		chain = append(chain, m)
	}
	chain = append(chain, docs)
	return u, chain, nil
}
