// Package cmd implements the CLI command structure for tick.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/tick/internal/config"
	"github.com/nibzard/tick/internal/logging"
	"github.com/nibzard/tick/internal/manager"
	"github.com/nibzard/tick/internal/store"
	"github.com/nibzard/tick/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tick CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tick", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags are defined and parsed inside config loading.
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.New(cfg)
	st := store.New(cfg.StoreFile, logger)
	mgr := manager.New(st, logger)

	subcommand := "list"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "add":
		return addCommand(mgr, remainingArgs)
	case "list", "ls":
		return listCommand(mgr, remainingArgs)
	case "done":
		return doneCommand(mgr, remainingArgs)
	case "tui":
		return ui.RunTUI(ctx, mgr, cfg.StoreFile)
	case "doctor":
		return doctorCommand(cfg, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "version", "--version":
		return versionCommand()
	case "help", "--help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("tick version %s\n", Version)
	return nil
}

// configCommand prints the effective configuration and where each value
// came from.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	cfg := cws.Config
	rows := []struct {
		field string
		value string
	}{
		{"store_file", cfg.StoreFile},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
		{"log_timestamps", fmt.Sprintf("%v", cfg.LogTimestamps)},
	}

	width := 0
	for _, r := range rows {
		if len(r.field) > width {
			width = len(r.field)
		}
	}
	for _, r := range rows {
		source := cws.Sources[r.field]
		fmt.Printf("%-*s  %s  (%s)\n", width, r.field, r.value, source)
	}
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tick - A tiny todo list manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tick [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <title>   Add a new todo")
	fmt.Fprintln(w, "  list          List all todos (default command)")
	fmt.Fprintln(w, "  done <id>     Mark a todo as done")
	fmt.Fprintln(w, "  tui           Launch terminal UI")
	fmt.Fprintln(w, "  doctor        Check config and store file validity")
	fmt.Fprintln(w, "  config        Show effective configuration and sources")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, `  tick add "Buy groceries"`)
	fmt.Fprintln(w, "  tick list")
	fmt.Fprintln(w, "  tick done 2")
}

// joinTitle turns the remaining add arguments into a single title.
func joinTitle(args []string) string {
	return strings.Join(args, " ")
}
