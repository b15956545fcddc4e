package idcase

import (
	"io"
	"log/slog"
)

// ConvertOption configures ConvertLines.
type ConvertOption func(*convertConfig)

type convertConfig struct {
	trimSpace bool
	skipEmpty bool
	logger    *slog.Logger
}

func newConvertConfig(opts []ConvertOption) convertConfig {
	cfg := convertConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}

// WithTrimSpace trims surrounding whitespace from each line before converting.
func WithTrimSpace(enabled bool) ConvertOption {
	return func(cfg *convertConfig) {
		cfg.trimSpace = enabled
	}
}

// WithSkipEmpty drops lines that are empty after optional trimming instead
// of writing them back as blank lines.
func WithSkipEmpty(enabled bool) ConvertOption {
	return func(cfg *convertConfig) {
		cfg.skipEmpty = enabled
	}
}

// WithLogger sets the logger used for debug output. Nil discards.
func WithLogger(logger *slog.Logger) ConvertOption {
	return func(cfg *convertConfig) {
		cfg.logger = logger
	}
}
