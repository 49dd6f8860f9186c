package config

// Config is the clientgen project configuration (clientgen.toml)
type Config struct {
	Generate   GenerateConfig   `mapstructure:"generate" toml:"generate" yaml:"generate"`
	CSharp     CSharpConfig     `mapstructure:"csharp" toml:"csharp" yaml:"csharp"`
	TypeScript TypeScriptConfig `mapstructure:"typescript" toml:"typescript" yaml:"typescript"`
	GoLoader   GoLoaderConfig   `mapstructure:"goloader" toml:"goloader" yaml:"goloader"`
}

// GenerateConfig drives a generation run
type GenerateConfig struct {
	Suffix    string   `mapstructure:"suffix" toml:"suffix" yaml:"suffix"`          // appended to every namespace (default ".Client")
	Methods   []string `mapstructure:"methods" toml:"methods" yaml:"methods"`       // cherry-picking methods; empty means all
	Workers   int      `mapstructure:"workers" toml:"workers" yaml:"workers"`       // 0 or 1 = sequential
	Output    string   `mapstructure:"output" toml:"output" yaml:"output"`          // output directory; empty = stdout
	Languages []string `mapstructure:"languages" toml:"languages" yaml:"languages"` // csharp, typescript
	Manifests []string `mapstructure:"manifests" toml:"manifests" yaml:"manifests"`
	DocFiles  []string `mapstructure:"doc_files" toml:"doc_files" yaml:"doc_files"` // .NET XML documentation files
}

// CSharpConfig configures the C# printer
type CSharpConfig struct {
	LangVersion string `mapstructure:"lang_version" toml:"lang_version" yaml:"lang_version"`
	Formatter   string `mapstructure:"formatter" toml:"formatter" yaml:"formatter"` // shell-quoted command run on each written file
}

// TypeScriptConfig configures the TypeScript printer
type TypeScriptConfig struct {
	NamespaceStyle string `mapstructure:"namespace_style" toml:"namespace_style" yaml:"namespace_style"` // namespace | flat
	Formatter      string `mapstructure:"formatter" toml:"formatter" yaml:"formatter"`
}

// GoLoaderConfig configures loading host types from Go packages
type GoLoaderConfig struct {
	NamespacePrefix string   `mapstructure:"namespace_prefix" toml:"namespace_prefix" yaml:"namespace_prefix"`
	Packages        []string `mapstructure:"packages" toml:"packages" yaml:"packages"`
	Dir             string   `mapstructure:"dir" toml:"dir" yaml:"dir"`
}

// FileName is the project configuration file searched for by Load
const FileName = "clientgen.toml"

// Output file permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)
