package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generate.suffix", ".Client")
	v.SetDefault("generate.methods", []string{})
	v.SetDefault("generate.workers", 0)
	v.SetDefault("generate.output", "")
	v.SetDefault("generate.languages", []string{"csharp"})
	v.SetDefault("generate.manifests", []string{})
	v.SetDefault("generate.doc_files", []string{})

	v.SetDefault("csharp.lang_version", "7.3")
	v.SetDefault("csharp.formatter", "")

	v.SetDefault("typescript.namespace_style", "namespace")
	v.SetDefault("typescript.formatter", "")

	v.SetDefault("goloader.namespace_prefix", "")
	v.SetDefault("goloader.packages", []string{})
	v.SetDefault("goloader.dir", "")
}

// Default returns the configuration with only defaults applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always decode
		panic(err)
	}
	return cfg
}
