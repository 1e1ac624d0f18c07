package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mouse-blink/splice/internal/domain/scorers"
	m "github.com/mouse-blink/splice/internal/model"
)

var (
	// ErrInvalidLogLevel indicates an unknown log level.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrEmptyDocument indicates a missing document path.
	ErrEmptyDocument = errors.New("empty document path")

	// ErrInvalidLayout indicates a layout that cannot produce markers or stubs.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidRank indicates invalid ranking settings.
	ErrInvalidRank = errors.New("invalid rank settings")
)

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Document) == "" {
		errs = append(errs, ErrEmptyDocument)
	}

	if !slices.Contains(LogLevels, strings.ToLower(cfg.LogLevel)) {
		errs = append(errs, fmt.Errorf("%w: must be one of %s, got '%s'", ErrInvalidLogLevel, strings.Join(LogLevels, ", "), cfg.LogLevel))
	}

	if err := validateLayout(&cfg.Layout); err != nil {
		errs = append(errs, err)
	}

	if err := validateRank(&cfg.Rank); err != nil {
		errs = append(errs, err)
	}

	return joinErrors(errs)
}

func validateLayout(cfg *LayoutConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.Comment) == "" {
		errs = append(errs, fmt.Errorf("%w: comment cannot be empty", ErrInvalidLayout))
	}

	if !strings.Contains(cfg.Include, m.IncludePlaceholder) {
		errs = append(errs, fmt.Errorf("%w: include must contain %s, got '%s'", ErrInvalidLayout, m.IncludePlaceholder, cfg.Include))
	}

	if strings.ContainsAny(cfg.Extension, "/\\ ") {
		errs = append(errs, fmt.Errorf("%w: extension '%s' is not a file extension", ErrInvalidLayout, cfg.Extension))
	}

	return joinErrors(errs)
}

func validateRank(cfg *RankConfig) error {
	var errs []error

	if cfg.Parallel < 0 {
		errs = append(errs, fmt.Errorf("%w: parallel cannot be negative, got %d", ErrInvalidRank, cfg.Parallel))
	}

	if cfg.Top < 0 {
		errs = append(errs, fmt.Errorf("%w: top cannot be negative, got %d", ErrInvalidRank, cfg.Top))
	}

	if cfg.Lookback < 0 {
		errs = append(errs, fmt.Errorf("%w: lookback cannot be negative, got %d", ErrInvalidRank, cfg.Lookback))
	}

	for _, name := range cfg.Scorers {
		if !slices.Contains(scorers.Names(), m.ScorerName(name)) {
			errs = append(errs, fmt.Errorf("%w: unknown scorer '%s'", ErrInvalidRank, name))
		}
	}

	return joinErrors(errs)
}

// joinErrors combines multiple errors, keeping every one matchable with errors.Is.
func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}

	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return &validationError{msg: "validation failed:\n  - " + strings.Join(msgs, "\n  - "), errs: errs}
}

type validationError struct {
	msg  string
	errs []error
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() []error { return e.errs }
