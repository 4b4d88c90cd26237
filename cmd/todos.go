package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nibzard/tick/internal/manager"
)

// The exact output strings and exit codes below are the CLI contract:
// validation and storage errors surface as "Error: <message>" on stderr
// with exit 1 (mapped in main), while an already-done todo is reported
// on stdout with exit 0.

// addCommand adds a new todo and prints its assigned id.
func addCommand(mgr *manager.Manager, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: tick add <title>")
	}

	item, err := mgr.Add(joinTitle(args))
	if err != nil {
		if errors.Is(err, manager.ErrEmptyTitle) {
			return err
		}
		return fmt.Errorf("Failed to save todo: %w", err)
	}

	fmt.Printf("Added todo #%d: %q\n", item.ID, item.Title)
	return nil
}

// listCommand prints one line per todo in store order.
func listCommand(mgr *manager.Manager, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}

	items, err := mgr.ListAll()
	if err != nil {
		return fmt.Errorf("Failed to load todos: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("No todos found")
		return nil
	}

	for _, it := range items {
		status := " "
		if it.Done {
			status = "✓"
		}
		fmt.Printf("[%s] #%d: %s\n", status, it.ID, it.Title)
	}
	return nil
}

// doneCommand marks a todo as done.
func doneCommand(mgr *manager.Manager, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tick done <id>")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a valid todo id: %s", args[0])
	}

	if err := mgr.MarkDone(id); err != nil {
		var alreadyDone *manager.AlreadyDoneError
		if errors.As(err, &alreadyDone) {
			fmt.Printf("Todo #%d is already done\n", id)
			return nil
		}
		var notFound *manager.NotFoundError
		if errors.As(err, &notFound) {
			return err
		}
		return fmt.Errorf("Failed to save todo: %w", err)
	}

	// Re-read to show the title; the manager keeps no state between calls.
	title := ""
	if items, err := mgr.ListAll(); err == nil {
		for _, it := range items {
			if it.ID == id {
				title = it.Title
				break
			}
		}
	}
	fmt.Printf("Marked todo #%d as done: %q\n", id, title)
	return nil
}
