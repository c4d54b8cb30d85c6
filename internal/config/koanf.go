// Package config loads and validates adoclint configuration from files,
// environment variables, and CLI flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	jsonparser "github.com/knadh/koanf/parsers/json"
	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/adoclint/pkg/config"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested
	// configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidPermissions is returned when a config file is
	// world-writable.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")

	// ErrUnsupportedFormat is returned for config files that are neither
	// YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

// Project configuration file names, checked in order.
var projectConfigFiles = []string{
	".adoclint.yaml",
	".adoclint.yml",
	"adoclint.yaml",
	".adoclint.json",
}

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "ADOCLINT_"

// KoanfLoader loads configuration from multiple sources.
// Precedence order (highest to lowest):
// 1. CLI flags
// 2. Explicit --config file
// 3. Environment variables (ADOCLINT_*)
// 4. Project config (.adoclint.yaml and friends)
// 5. Defaults
type KoanfLoader struct {
	k       *koanf.Koanf
	workDir string
}

// NewKoanfLoader creates a KoanfLoader rooted at the working directory.
func NewKoanfLoader() (*KoanfLoader, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewKoanfLoaderWithDir(workDir), nil
}

// NewKoanfLoaderWithDir creates a KoanfLoader with a custom working
// directory (for testing).
func NewKoanfLoaderWithDir(workDir string) *KoanfLoader {
	return &KoanfLoader{
		k:       koanf.New("."),
		workDir: workDir,
	}
}

// Load loads configuration from all sources, unmarshals it, and validates
// the result. explicitPath is the --config value; empty means discover the
// project file.
func (l *KoanfLoader) Load(explicitPath string, flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(explicitPath, flags)
	if err != nil {
		return nil, err
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation loads and unmarshals configuration without running
// semantic validation.
func (l *KoanfLoader) LoadWithoutValidation(
	explicitPath string,
	flags map[string]any,
) (*config.Config, error) {
	// Fresh instance for each load.
	l.k = koanf.New(".")

	// 1. Defaults (lowest priority).
	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Project config, unless an explicit file was given.
	if explicitPath == "" {
		if projectPath := l.findProjectConfig(); projectPath != "" {
			if err := l.loadFile(projectPath); err != nil {
				return nil, errors.Wrap(err, "failed to load project config")
			}
		}
	}

	// 3. Environment variables: ADOCLINT_*.
	envOpt := env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	// 4. Explicit config file.
	if explicitPath != "" {
		if !fileExists(explicitPath) {
			return nil, errors.Wrapf(ErrConfigNotFound, "%s", explicitPath)
		}

		if err := l.loadFile(explicitPath); err != nil {
			return nil, errors.Wrap(err, "failed to load config file")
		}
	}

	// 5. CLI flags (highest priority).
	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flagsToConfig(flags), "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg config.Config

	decoderConfig := CustomDecoderConfig()
	decoderConfig.Result = &cfg

	unmarshalConf := koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: decoderConfig,
	}

	if err := l.k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// loadFile loads a YAML or JSON configuration file with a permission check.
func (l *KoanfLoader) loadFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	// Reject world-writable files.
	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	parser, err := parserFor(path)
	if err != nil {
		return err
	}

	return l.k.Load(file.Provider(path), parser)
}

// parserFor picks the koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlparser.Parser(), nil
	case ".json":
		return jsonparser.Parser(), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// envTransform maps environment variable names to config paths.
// ADOCLINT_OUTPUT_FAIL__ON → output.fail_on (double underscore keeps a
// literal underscore in the key).
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, envPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "__", "\x00")
	key = strings.ReplaceAll(key, "_", ".")
	key = strings.ReplaceAll(key, "\x00", "_")

	return key, value
}

// ProjectConfigPaths returns the project config paths checked, in
// precedence order.
func (l *KoanfLoader) ProjectConfigPaths() []string {
	paths := make([]string, 0, len(projectConfigFiles))

	for _, name := range projectConfigFiles {
		paths = append(paths, filepath.Join(l.workDir, name))
	}

	return paths
}

// findProjectConfig returns the first project config file that exists.
func (l *KoanfLoader) findProjectConfig() string {
	for _, path := range l.ProjectConfigPaths() {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// HasProjectConfig reports whether a project configuration file exists.
func (l *KoanfLoader) HasProjectConfig() bool {
	return l.findProjectConfig() != ""
}

// flagsToConfig converts CLI flags to a configuration map.
func flagsToConfig(flags map[string]any) map[string]any {
	result := make(map[string]any)

	for key, value := range flags {
		switch key {
		case "format":
			if strVal, ok := value.(string); ok && strVal != "" {
				output := ensureMapKey(result, "output")
				output["format"] = strVal
			}

		case "fail-on":
			if strVal, ok := value.(string); ok && strVal != "" {
				output := ensureMapKey(result, "output")
				output["fail_on"] = strVal
			}
		}
	}

	return result
}

// ensureMapKey ensures a key exists as a map and returns it.
func ensureMapKey(cfg map[string]any, key string) map[string]any {
	if _, ok := cfg[key]; !ok {
		cfg[key] = make(map[string]any)
	}

	result, _ := cfg[key].(map[string]any)

	return result
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
