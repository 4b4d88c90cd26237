// Package config handles configuration loading and defaults.
package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for
// each field. Used by the `config` command.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// Default values.
const (
	DefaultStoreFile = "todos.json"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for tick.
type Config struct {
	// StoreFile is the path to the JSON store, resolved against the
	// working directory when relative.
	StoreFile string `toml:"store_file"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.StoreFile = DefaultStoreFile
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"store_file",
		"log_level",
		"log_format",
		"log_timestamps",
	}
}
