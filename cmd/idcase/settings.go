package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"go.yaml.in/yaml/v4"
	"pkt.systems/idcase"
)

// defaultSettings match idcase.DefaultConfig: uppercase runs and digits split.
var defaultSettings = idcase.Settings{
	UpperContinuous: true,
	SplitNumber:     true,
}

const (
	envUpperContinuous = "IDCASE_UPPER_CONTINUOUS"
	envSplitNumber     = "IDCASE_SPLIT_NUMBER"
	envCamelUpper      = "IDCASE_CAMEL_UPPER"
)

// resolveSettings layers defaults, the settings file, IDCASE_* environment
// variables and explicitly set flags, in that order.
func resolveSettings(opts options, flags *pflag.FlagSet, logger *slog.Logger) (idcase.Settings, error) {
	s := defaultSettings
	if opts.settingsPath != "" {
		loaded, err := loadSettingsFile(normalizePath(opts.settingsPath), s)
		if err != nil {
			return s, err
		}
		s = loaded
		logger.Debug("loaded settings file", "path", opts.settingsPath)
	}
	s.UpperContinuous = envBool(logger, envUpperContinuous, s.UpperContinuous)
	s.SplitNumber = envBool(logger, envSplitNumber, s.SplitNumber)
	s.CamelUpper = envBool(logger, envCamelUpper, s.CamelUpper)

	if flags.Changed("upper-continuous") {
		s.UpperContinuous = opts.upperContinuous
	}
	if flags.Changed("split-number") {
		s.SplitNumber = opts.splitNumber
	}
	if flags.Changed("camel-upper") {
		s.CamelUpper = opts.camelUpper
	}
	return s, nil
}

// loadSettingsFile decodes a YAML settings file over base. Keys missing from
// the file keep their base value.
func loadSettingsFile(path string, base idcase.Settings) (idcase.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read %s: %w", path, err)
	}
	s := base
	if err := yaml.Unmarshal(data, &s); err != nil {
		return base, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

func envBool(logger *slog.Logger, key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}
