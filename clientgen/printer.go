// Package clientgen mirrors host data types into client-side type
// declarations for other languages.
//
// # Architecture
//
// A run has three layers:
//  1. Loaders (manifest/, goload/) describe host types as a hosttype.Universe
//  2. The emitter (emit/) translates the selected types into a language-neutral
//     codedom.CompileUnit
//  3. Printers (csharp/, typescript/) render the unit as source text
//
// Run wires the layers together and the sink (WriteOutput, SaveToFile)
// writes what the printers produce.
package clientgen

import (
	"strings"

	"github.com/developerxd/webapiclientgen/clientgen/codedom"
	"github.com/developerxd/webapiclientgen/clientgen/csharp"
	"github.com/developerxd/webapiclientgen/clientgen/typescript"
	"github.com/developerxd/webapiclientgen/config"
	"github.com/developerxd/webapiclientgen/errors"
)

// Printer renders a compile unit in one target language.
type Printer interface {
	// GenerateFile renders the whole unit as one source file
	GenerateFile(unit *codedom.CompileUnit) string

	// FileExtension returns the file extension without the dot (e.g. "cs")
	FileExtension() string

	// Language returns the language name (e.g. "csharp")
	Language() string
}

// SupportedLanguages lists the canonical language names.
var SupportedLanguages = []string{"csharp", "typescript"}

// NormalizeLanguage maps a language flag value to its canonical name.
func NormalizeLanguage(lang string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "csharp", "cs", "c#":
		return "csharp", nil
	case "typescript", "ts":
		return "typescript", nil
	default:
		return "", errors.WithHintf(
			errors.NewInvalidInputError("unknown language %q", lang),
			"supported: %s", strings.Join(SupportedLanguages, ", "))
	}
}

// NewPrinter builds the printer for lang using its section of cfg.
func NewPrinter(lang string, cfg *config.Config) (Printer, error) {
	name, err := NormalizeLanguage(lang)
	if err != nil {
		return nil, err
	}
	if name == "csharp" {
		p, err := csharp.New(cfg.CSharp.LangVersion)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	p, err := typescript.New(cfg.TypeScript.NamespaceStyle)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// PrintersFromConfig builds a printer for every language in
// generate.languages, dropping duplicates.
func PrintersFromConfig(cfg *config.Config) ([]Printer, error) {
	if len(cfg.Generate.Languages) == 0 {
		return nil, errors.NewInvalidInputError("no target languages configured")
	}
	seen := make(map[string]bool)
	var printers []Printer
	for _, lang := range cfg.Generate.Languages {
		p, err := NewPrinter(lang, cfg)
		if err != nil {
			return nil, err
		}
		if seen[p.Language()] {
			continue
		}
		seen[p.Language()] = true
		printers = append(printers, p)
	}
	return printers, nil
}

// Formatter returns the configured formatter command for a language.
func Formatter(cfg *config.Config, lang string) string {
	switch lang {
	case "csharp":
		return cfg.CSharp.Formatter
	case "typescript":
		return cfg.TypeScript.Formatter
	}
	return ""
}
