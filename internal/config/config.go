// Package config loads splice settings from .splice.yaml, .env and SPLICE_*
// environment variables.
package config

import (
	"runtime"

	"github.com/mouse-blink/splice/internal/domain/span"
	m "github.com/mouse-blink/splice/internal/model"
)

// Config represents the complete splice configuration.
type Config struct {
	Document  string            `yaml:"document" mapstructure:"document"`   // entry document managed by open/close
	LogLevel  string            `yaml:"log_level" mapstructure:"log_level"` // debug, info, warn or error
	Strict    bool              `yaml:"strict" mapstructure:"strict"`       // missing artifacts fail close
	Layout    LayoutConfig      `yaml:"layout" mapstructure:"layout"`
	Resources map[string]string `yaml:"resources" mapstructure:"resources"` // logical name -> directory
	Rank      RankConfig        `yaml:"rank" mapstructure:"rank"`
}

// LayoutConfig spells markers, artifact headers and include statements.
type LayoutConfig struct {
	Comment   string `yaml:"comment" mapstructure:"comment"`
	Header    string `yaml:"header" mapstructure:"header"`
	Include   string `yaml:"include" mapstructure:"include"` // must contain {file}
	Extension string `yaml:"extension" mapstructure:"extension"`
}

// RankConfig configures definition ranking.
type RankConfig struct {
	Include  []string `yaml:"include" mapstructure:"include"` // glob patterns, empty means known source extensions
	Exclude  []string `yaml:"exclude" mapstructure:"exclude"`
	Scorers  []string `yaml:"scorers" mapstructure:"scorers"` // empty means all
	Parallel int      `yaml:"parallel" mapstructure:"parallel"`
	Top      int      `yaml:"top" mapstructure:"top"`           // 0 keeps every definition
	Lookback int      `yaml:"lookback" mapstructure:"lookback"` // doc comment search window in bytes
	Report   string   `yaml:"report" mapstructure:"report"`     // YAML report path, empty disables saving
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	layout := m.DefaultLayout()

	return &Config{
		Document: "scaffold.sh",
		LogLevel: "warn",
		Layout: LayoutConfig{
			Comment:   layout.Comment,
			Header:    layout.Header,
			Include:   layout.Include,
			Extension: layout.Extension,
		},
		Resources: map[string]string{},
		Rank: RankConfig{
			Include:  []string{},
			Exclude:  []string{},
			Scorers:  []string{},
			Parallel: runtime.NumCPU(),
			Lookback: span.DefaultLookback,
		},
	}
}

// ToModel converts the layout settings to the model type.
func (l LayoutConfig) ToModel() m.Layout {
	return m.Layout{
		Comment:   l.Comment,
		Header:    l.Header,
		Include:   l.Include,
		Extension: l.Extension,
	}
}

// ScorerNames converts the configured scorer names.
func (r RankConfig) ScorerNames() []m.ScorerName {
	names := make([]m.ScorerName, 0, len(r.Scorers))
	for _, s := range r.Scorers {
		names = append(names, m.ScorerName(s))
	}

	return names
}
