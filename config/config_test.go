package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/developerxd/webapiclientgen/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".Client", cfg.Generate.Suffix)
	assert.Equal(t, []string{"csharp"}, cfg.Generate.Languages)
	assert.Equal(t, 0, cfg.Generate.Workers)
	assert.Equal(t, "7.3", cfg.CSharp.LangVersion)
	assert.Equal(t, "namespace", cfg.TypeScript.NamespaceStyle)
	assert.Empty(t, cfg.GoLoader.Packages)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := `
[generate]
suffix = ".Dto"
methods = ["datacontract", "netcore"]
workers = 4
languages = ["csharp", "typescript"]

[csharp]
lang_version = "2.0"

[typescript]
namespace_style = "flat"

[goloader]
namespace_prefix = "Acme."
packages = ["./models/..."]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ".Dto", cfg.Generate.Suffix)
	assert.Equal(t, []string{"datacontract", "netcore"}, cfg.Generate.Methods)
	assert.Equal(t, 4, cfg.Generate.Workers)
	assert.Equal(t, []string{"csharp", "typescript"}, cfg.Generate.Languages)
	assert.Equal(t, "2.0", cfg.CSharp.LangVersion)
	assert.Equal(t, "flat", cfg.TypeScript.NamespaceStyle)
	assert.Equal(t, "Acme.", cfg.GoLoader.NamespacePrefix)
	assert.Equal(t, []string{"./models/..."}, cfg.GoLoader.Packages)
	// untouched keys keep their defaults
	assert.Empty(t, cfg.Generate.Output)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[generate]\nsuffix = \".Dto\"\n"), 0644))

	t.Setenv("CLIENTGEN_GENERATE_SUFFIX", ".Env")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ".Env", cfg.Generate.Suffix)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"negative workers", func(c *Config) { c.Generate.Workers = -1 }, "generate.workers must be >= 0"},
		{"unknown language", func(c *Config) { c.Generate.Languages = []string{"cobol"} }, `unknown language "cobol"`},
		{"unknown style", func(c *Config) { c.TypeScript.NamespaceStyle = "modules" }, `unknown style "modules"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsInvalidInputError(err))
		})
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteDefault(dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	want := Default()
	assert.Equal(t, want.Generate.Suffix, cfg.Generate.Suffix)
	assert.Equal(t, want.Generate.Languages, cfg.Generate.Languages)
	assert.Equal(t, want.CSharp.LangVersion, cfg.CSharp.LangVersion)
	assert.Equal(t, want.TypeScript.NamespaceStyle, cfg.TypeScript.NamespaceStyle)

	_, err = WriteDefault(dir, false)
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "--force")

	_, err = WriteDefault(dir, true)
	assert.NoError(t, err)
}

func TestFindUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(""), 0644))

	assert.Equal(t, filepath.Join(root, FileName), findUp(nested))
}
