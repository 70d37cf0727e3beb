package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfigName is the per-project config file looked up in the search root.
const ProjectConfigName = ".filechecker.yaml"

// WriteConfig controls how edited files are written back to disk
type WriteConfig struct {
	// Atomic writes to a temp file and renames it over the target
	Atomic bool `yaml:"atomic"`

	// Lock holds an advisory lock on <file>.lock while writing
	Lock bool `yaml:"lock"`
}

// HistoryConfig represents operation history configuration
type HistoryConfig struct {
	// Enabled enables recording of searches, edits and deletes
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database (default <home>/history.db)
	DBPath string `yaml:"db_path"`

	// Limit is the default number of rows shown by the history command
	Limit int `yaml:"limit"`
}

// Config represents filechecker configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogToFile additionally writes a session log under LogDir
	LogToFile bool `yaml:"log_to_file"`

	// LogDir is the directory where session logs are written (default <home>/logs)
	LogDir string `yaml:"log_dir"`

	// NoColor disables colored output
	NoColor bool `yaml:"no_color"`

	// Editor is the external editor command; falls back to $EDITOR, then vi
	Editor string `yaml:"editor"`

	// Write contains file write options
	Write WriteConfig `yaml:"write"`

	// History contains operation history options
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogToFile: false,
		LogDir:    "",
		NoColor:   false,
		Editor:    "",
		Write: WriteConfig{
			Atomic: false,
			Lock:   false,
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  "",
			Limit:   20,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlCfg Config
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A second pass into a map tells present-but-false apart from absent
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if _, exists := rawMap["log_to_file"]; exists {
		cfg.LogToFile = yamlCfg.LogToFile
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if _, exists := rawMap["no_color"]; exists {
		cfg.NoColor = yamlCfg.NoColor
	}
	if yamlCfg.Editor != "" {
		cfg.Editor = yamlCfg.Editor
	}

	if writeMap, ok := rawMap["write"].(map[string]interface{}); ok {
		if _, exists := writeMap["atomic"]; exists {
			cfg.Write.Atomic = yamlCfg.Write.Atomic
		}
		if _, exists := writeMap["lock"]; exists {
			cfg.Write.Lock = yamlCfg.Write.Lock
		}
	}

	if historyMap, ok := rawMap["history"].(map[string]interface{}); ok {
		if _, exists := historyMap["enabled"]; exists {
			cfg.History.Enabled = yamlCfg.History.Enabled
		}
		if _, exists := historyMap["db_path"]; exists {
			cfg.History.DBPath = yamlCfg.History.DBPath
		}
		if _, exists := historyMap["limit"]; exists {
			cfg.History.Limit = yamlCfg.History.Limit
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads .filechecker.yaml from dir when present, otherwise
// config.yaml from home. Missing files yield the defaults.
func LoadConfigFromDir(dir, home string) (*Config, string, error) {
	projectPath := filepath.Join(dir, ProjectConfigName)
	if _, err := os.Stat(projectPath); err == nil {
		cfg, err := LoadConfig(projectPath)
		return cfg, projectPath, err
	}

	if home == "" {
		return DefaultConfig(), "", nil
	}
	homePath := filepath.Join(home, "config.yaml")
	if _, err := os.Stat(homePath); err != nil {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(homePath)
	return cfg, homePath, err
}

// ResolvePaths fills empty path settings with locations under home.
func (c *Config) ResolvePaths(home string) {
	if c.LogDir == "" {
		c.LogDir = filepath.Join(home, "logs")
	}
	if c.History.DBPath == "" {
		c.History.DBPath = filepath.Join(home, "history.db")
	}
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(logLevel *string, noColor *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if noColor != nil {
		c.NoColor = *noColor
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.History.Limit < 0 {
		return fmt.Errorf("history.limit must be >= 0, got %d", c.History.Limit)
	}

	return nil
}
