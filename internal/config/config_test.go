package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// isolate keeps the lookup paths away from the developer's real config.
func isolate(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parley.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ">> ", cfg.Prompt)
	assert.Equal(t, 4096, cfg.MaxInputSize)
	assert.True(t, cfg.Sanitize)
	assert.True(t, cfg.Banner)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Plain)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeFile(t, "prompt: \"? \"\nbanner: false\nmax_input_size: 128\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "? ", cfg.Prompt)
	assert.False(t, cfg.Banner)
	assert.Equal(t, 128, cfg.MaxInputSize)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_FileInWorkingDir(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("parley.yaml", []byte("markdown: true\n"), 0o600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.Markdown)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeFile(t, "debug: false\nmax_input_size: 128\n")
	t.Setenv("PARLEY_DEBUG", "true")
	t.Setenv("PARLEY_MAX_INPUT_SIZE", "512")
	t.Setenv("PARLEY_METRICS_ADDR", ":9090")
	t.Setenv("PARLEY_SANITIZE_INPUT", "false")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 512, cfg.MaxInputSize)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.False(t, cfg.Sanitize)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PARLEY_PROMPT", "env> ")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("prompt", ">> ", "")
	flags.Bool("plain", false, "")
	require.NoError(t, flags.Parse([]string{"--prompt", "flag> ", "--plain"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "flag> ", cfg.Prompt)
	assert.True(t, cfg.Plain)
}

func TestLoad_UnsetFlagKeepsEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PARLEY_PROMPT", "env> ")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("prompt", ">> ", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "env> ", cfg.Prompt)
}

func TestLoad_RejectsNonPositiveLimit(t *testing.T) {
	isolate(t)
	t.Setenv("PARLEY_MAX_INPUT_SIZE", "0")

	_, err := Load("", nil)
	assert.ErrorContains(t, err, "max_input_size")
}

func TestConfig_YAML(t *testing.T) {
	cfg := &Config{Prompt: ">> ", Banner: true, MaxInputSize: 4096, File: "/tmp/x.yaml"}

	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.NotContains(t, out, "/tmp/x.yaml")

	var back map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, ">> ", back["prompt"])
	assert.Equal(t, true, back["banner"])
	assert.Equal(t, 4096, back["max_input_size"])
}
