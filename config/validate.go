package config

import (
	"strings"

	"github.com/developerxd/webapiclientgen/errors"
)

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Generate.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "generate.workers must be >= 0, got %d", c.Generate.Workers)
	}
	for _, lang := range c.Generate.Languages {
		switch strings.ToLower(strings.TrimSpace(lang)) {
		case "csharp", "cs", "c#", "typescript", "ts":
		default:
			return errors.WithHint(
				errors.Wrapf(errors.ErrInvalidInput, "generate.languages: unknown language %q", lang),
				"supported languages: csharp, typescript")
		}
	}
	switch c.TypeScript.NamespaceStyle {
	case "", "namespace", "flat":
	default:
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidInput, "typescript.namespace_style: unknown style %q", c.TypeScript.NamespaceStyle),
			"use \"namespace\" or \"flat\"")
	}
	return nil
}
