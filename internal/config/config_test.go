package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	m "github.com/mouse-blink/splice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault_ReturnsValidConfiguration(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "scaffold.sh", cfg.Document)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Strict)
	assert.Equal(t, m.DefaultLayout(), cfg.Layout.ToModel())
	assert.Empty(t, cfg.Resources)
	assert.Positive(t, cfg.Rank.Parallel)
	assert.Equal(t, 1000, cfg.Rank.Lookback)
	assert.NoError(t, Validate(cfg))
}

func TestLoad_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	cfg, err := NewLoader(t.TempDir(), "").Load()
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Document, cfg.Document)
	assert.Equal(t, def.Layout, cfg.Layout)
	assert.Equal(t, def.Rank.Parallel, cfg.Rank.Parallel)
	assert.NotNil(t, cfg.Resources)
}

func TestLoad_ReadsProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".splice.yaml", `
document: setup.sh
strict: true
layout:
  comment: "//"
  extension: inc
resources:
  artifacts: parts
rank:
  exclude: ["**/*_test.go"]
  scorers: [length, callers]
  top: 5
`)

	cfg, err := NewLoader(dir, "").Load()
	require.NoError(t, err)

	assert.Equal(t, "setup.sh", cfg.Document)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "//", cfg.Layout.Comment)
	assert.Equal(t, "inc", cfg.Layout.Extension)
	// Unset keys keep their defaults.
	assert.Equal(t, m.DefaultLayout().Include, cfg.Layout.Include)
	assert.Equal(t, map[string]string{"artifacts": "parts"}, cfg.Resources)
	assert.Equal(t, []string{"**/*_test.go"}, cfg.Rank.Exclude)
	assert.Equal(t, []m.ScorerName{m.ScorerLength, m.ScorerCallers}, cfg.Rank.ScorerNames())
	assert.Equal(t, 5, cfg.Rank.Top)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yml", "document: other.sh\n")

	cfg, err := NewLoader(t.TempDir(), path).Load()
	require.NoError(t, err)
	assert.Equal(t, "other.sh", cfg.Document)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".splice.yaml", "document: setup.sh\nrank:\n  parallel: 2\n")

	t.Setenv("SPLICE_DOCUMENT", "env.sh")
	t.Setenv("SPLICE_RANK_PARALLEL", "7")
	t.Setenv("SPLICE_LOG_LEVEL", "debug")

	cfg, err := NewLoader(dir, "").Load()
	require.NoError(t, err)
	assert.Equal(t, "env.sh", cfg.Document)
	assert.Equal(t, 7, cfg.Rank.Parallel)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".env", "SPLICE_STRICT=true\n")

	// Register cleanup for the variable godotenv is about to set.
	t.Setenv("SPLICE_STRICT", "")
	require.NoError(t, os.Unsetenv("SPLICE_STRICT"))

	cfg, err := NewLoader(dir, "").Load()
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".splice.yaml", "document: [unterminated\n")

		_, err := NewLoader(dir, "").Load()
		assert.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".splice.yaml", "layout:\n  include: \"source x\"\n")

		_, err := NewLoader(dir, "").Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidLayout))
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := NewLoader(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml")).Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty document", mutate: func(c *Config) { c.Document = " " }, wantErr: ErrEmptyDocument},
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: ErrInvalidLogLevel},
		{name: "empty comment", mutate: func(c *Config) { c.Layout.Comment = "" }, wantErr: ErrInvalidLayout},
		{name: "include placeholder", mutate: func(c *Config) { c.Layout.Include = "source" }, wantErr: ErrInvalidLayout},
		{name: "extension", mutate: func(c *Config) { c.Layout.Extension = "a/b" }, wantErr: ErrInvalidLayout},
		{name: "parallel", mutate: func(c *Config) { c.Rank.Parallel = -1 }, wantErr: ErrInvalidRank},
		{name: "top", mutate: func(c *Config) { c.Rank.Top = -1 }, wantErr: ErrInvalidRank},
		{name: "lookback", mutate: func(c *Config) { c.Rank.Lookback = -1 }, wantErr: ErrInvalidRank},
		{name: "scorer", mutate: func(c *Config) { c.Rank.Scorers = []string{"vibes"} }, wantErr: ErrInvalidRank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Document = ""
	cfg.Rank.Top = -3

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyDocument)
	assert.ErrorIs(t, err, ErrInvalidRank)
	assert.True(t, strings.HasPrefix(err.Error(), "validation failed:"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	level := new(slog.LevelVar)
	level.Set(ParseLevel("info"))

	logger := NewLogger(&buf, level)
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown k=v")

	buf.Reset()
	level.Set(ParseLevel("bogus"))
	logger.Info("dropped")
	assert.Empty(t, buf.String())

	level.Set(ParseLevel("DEBUG"))
	logger.Debug("now shown")
	assert.Contains(t, buf.String(), "now shown")
}
