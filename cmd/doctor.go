package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/tick/internal/config"
	"github.com/nibzard/tick/internal/logging"
	"github.com/nibzard/tick/internal/todo"
)

// doctorCommand checks config sanity and store file validity. Unlike the
// normal load path, doctor validates the store strictly against the
// embedded JSON Schema so silently-reset corruption is visible.
func doctorCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("tick doctor", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	storePath := cfg.StoreFile
	if len(remaining) == 1 {
		storePath = remaining[0]
	}

	fmt.Println("Tick Doctor")
	fmt.Println("===========")
	fmt.Println()

	allOK := true

	fmt.Println("Config:")
	if logging.ValidLevel(cfg.LogLevel) {
		fmt.Printf("  ✅ Log level: %s\n", cfg.LogLevel)
	} else {
		fmt.Printf("  ❌ Log level: %s (expected debug|info|warn|error)\n", cfg.LogLevel)
		allOK = false
	}
	if logging.ValidFormat(cfg.LogFormat) {
		fmt.Printf("  ✅ Log format: %s\n", cfg.LogFormat)
	} else {
		fmt.Printf("  ❌ Log format: %s (expected text|json|logfmt)\n", cfg.LogFormat)
		allOK = false
	}
	fmt.Println()

	fmt.Printf("Store directory: %s\n", filepath.Dir(storePath))
	if !checkDirWritable(filepath.Dir(storePath)) {
		allOK = false
	}
	fmt.Println()

	fmt.Printf("Store file: %s\n", storePath)
	info, err := os.Stat(storePath)
	switch {
	case os.IsNotExist(err):
		fmt.Println("  ⚠️  Not found (will be created on first add)")
	case err != nil:
		fmt.Printf("  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Println("  ❌ Error: path is a directory")
		allOK = false
	default:
		if !checkStoreFile(storePath, *verbose) {
			allOK = false
		}
	}
	fmt.Println()

	if allOK {
		fmt.Println("✅ All checks passed!")
		return nil
	}
	fmt.Println("⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}

// checkDirWritable probes the directory with a throwaway temp file, the
// same way a save would.
func checkDirWritable(dir string) bool {
	tmp, err := os.CreateTemp(dir, ".tick-doctor-")
	if err != nil {
		fmt.Printf("  ❌ Not writable: %v\n", err)
		return false
	}
	tmp.Close()
	os.Remove(tmp.Name())
	fmt.Println("  ✅ Writable")
	return true
}

// checkStoreFile validates the raw store bytes against the embedded
// schema plus the structural id/title checks the schema cannot express
// across records (duplicate ids).
func checkStoreFile(path string, verbose bool) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("  ❌ Read error: %v\n", err)
		return false
	}

	ok := true
	result := todo.ValidateFile(data)
	if result.Valid {
		fmt.Println("  ✅ Schema valid")
	} else {
		fmt.Println("  ❌ Schema validation failed:")
		for _, e := range result.Errors {
			fmt.Printf("     - %v\n", e)
		}
		ok = false
	}

	var items []todo.Item
	if err := json.Unmarshal(data, &items); err == nil {
		structural := todo.ValidateItems(items)
		if !structural.Valid {
			fmt.Println("  ❌ Structural validation failed:")
			for _, e := range structural.Errors {
				fmt.Printf("     - %v\n", e)
			}
			ok = false
		}
		if verbose {
			fmt.Printf("  Todos: %d\n", len(items))
			for _, it := range items {
				status := " "
				if it.Done {
					status = "✓"
				}
				fmt.Printf("    [%s] #%d: %s\n", status, it.ID, it.Title)
			}
		}
	}

	return ok
}
