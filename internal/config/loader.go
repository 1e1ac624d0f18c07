package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the base name of the project configuration file.
const FileName = ".splice"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SPLICE"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → .env → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a loader reading <rootDir>/.splice.yaml. A non-empty
// configFile replaces the search.
func NewLoader(rootDir, configFile string) Loader {
	return &loader{rootDir: rootDir, configFile: configFile}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (SPLICE_*), including those from <rootDir>/.env
// 2. Config file (.splice.yaml or .splice.yml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	// Existing environment variables win over .env entries.
	_ = godotenv.Load(filepath.Join(l.rootDir, ".env"))

	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// SPLICE_RANK_PARALLEL -> rank.parallel
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"document", "log_level", "strict",
		"layout.comment", "layout.header", "layout.include", "layout.extension",
		"rank.parallel", "rank.top", "rank.lookback", "rank.report",
	} {
		_ = v.BindEnv(key)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Resources == nil {
		cfg.Resources = map[string]string{}
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("document", defaults.Document)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("strict", defaults.Strict)

	v.SetDefault("layout.comment", defaults.Layout.Comment)
	v.SetDefault("layout.header", defaults.Layout.Header)
	v.SetDefault("layout.include", defaults.Layout.Include)
	v.SetDefault("layout.extension", defaults.Layout.Extension)

	v.SetDefault("resources", defaults.Resources)

	v.SetDefault("rank.include", defaults.Rank.Include)
	v.SetDefault("rank.exclude", defaults.Rank.Exclude)
	v.SetDefault("rank.scorers", defaults.Rank.Scorers)
	v.SetDefault("rank.parallel", defaults.Rank.Parallel)
	v.SetDefault("rank.top", defaults.Rank.Top)
	v.SetDefault("rank.lookback", defaults.Rank.Lookback)
	v.SetDefault("rank.report", defaults.Rank.Report)
}

// LoadConfig loads configuration rooted at the current working directory.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	return NewLoader(wd, "").Load()
}
