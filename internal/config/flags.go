package config

import (
	"flag"
)

// parseFlags defines and parses CLI flags, overriding earlier sources.
// A nil sources map disables tracking.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tick", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.StoreFile, "file", cfg.StoreFile, "Path to the todo store file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		flagToField := map[string]string{
			"file":           "store_file",
			"log-level":      "log_level",
			"log-format":     "log_format",
			"log-timestamps": "log_timestamps",
		}
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagToField[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}

	return nil
}
