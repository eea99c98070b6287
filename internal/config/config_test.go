package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/rawproto/input"
	"github.com/anirudhraja/rawproto/wire"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rawproto.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, input.FormatAuto, cfg.Format)
	assert.Equal(t, wire.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, OutputTree, cfg.Output)
	assert.Equal(t, uint64(DefaultMaxInput), cfg.MaxInput)
	assert.Equal(t, "16 MiB", cfg.MaxInputString())
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overlay(t *testing.T) {
	path := writeConfig(t, `
format = "base64"
grpc = true
output = "JSON"
max_input = "1MiB"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, input.FormatBase64, cfg.Format)
	assert.True(t, cfg.GRPC)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, uint64(1<<20), cfg.MaxInput)
	assert.Equal(t, wire.DefaultMaxDepth, cfg.MaxDepth, "keys absent from the file keep their default")
	assert.False(t, cfg.NoColor)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad format", body: `format = "octal"`},
		{name: "bad output", body: `output = "xml"`},
		{name: "zero depth", body: `max_depth = 0`},
		{name: "bad size", body: `max_input = "lots"`},
		{name: "unknown key", body: `colour = true`},
		{name: "not toml", body: `format = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFormat, "hex")
	t.Setenv(EnvGRPC, "true")
	t.Setenv(EnvMaxDepth, "3")
	t.Setenv(EnvOutput, "table")
	t.Setenv(EnvMaxInput, "64KB")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, Config{
		Format:   input.FormatHex,
		GRPC:     true,
		MaxDepth: 3,
		Output:   OutputTable,
		MaxInput: 64000,
	}, cfg)
}

func TestApplyEnv_Invalid(t *testing.T) {
	for key, value := range map[string]string{
		EnvFormat:   "binary",
		EnvGRPC:     "sometimes",
		EnvMaxDepth: "deep",
		EnvOutput:   "yaml",
		EnvMaxInput: "-",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			cfg := Default()
			assert.Error(t, cfg.ApplyEnv())
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Output = "xml"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidOutput)

	cfg = Default()
	cfg.MaxDepth = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidMaxDepth)

	cfg = Default()
	cfg.MaxInput = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidMaxInput)
}
