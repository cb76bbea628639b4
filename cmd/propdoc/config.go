package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/propdoc"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".propdoc.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	// Merge flags from the specific command and its parent (root) flags
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (PROPDOC_* prefix)
	if err := k.Load(env.Provider("PROPDOC_", ".", func(s string) string {
		// PROPDOC_HARVEST_TARGET -> harvest.target
		// PROPDOC_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "PROPDOC_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildHarvestConfig constructs the library's Config struct from koanf state.
func buildHarvestConfig() propdoc.Config {
	return propdoc.Config{
		Root:       getStringWithFallback("root", "harvest.root", ""),
		UnityDoc:   getStringWithFallback("unity-doc", "harvest.unity-doc", propdoc.DefaultUnityDoc),
		MozillaDoc: getStringWithFallback("mozilla-doc", "harvest.mozilla-doc", propdoc.DefaultMozillaDoc),
		TargetFile: getStringWithFallback("target", "harvest.target", propdoc.DefaultTargetFile),
		DryRun:     getBoolWithFallback("dry-run", "harvest.dry-run", false),
		Verbose:    getBoolWithFallback("verbose", "verbose", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then
// returns the default. A false flag value carries no signal (it is also the
// unset default posflag fills in), so only a true flag short-circuits.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Bool(flagKey) {
		return true
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
