// Package todo defines the todo record and its validation rules.
package todo

import (
	"fmt"
	"strings"
)

// Item is a single todo entry as persisted in the store file.
// Field order matches the on-disk JSON object.
type Item struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// IsZero returns true if the item is empty (has no ID assigned).
func (it Item) IsZero() bool {
	return it.ID == 0
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	UsedSchema bool // true if JSON Schema validation was performed
}

// BlankTitle reports whether a title is empty after trimming whitespace.
func BlankTitle(title string) bool {
	return strings.TrimSpace(title) == ""
}

// ValidateItems performs structural checks on a store sequence without
// consulting the JSON Schema: positive unique ids and non-blank titles.
func ValidateItems(items []Item) *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]error, 0),
	}

	seen := make(map[int]int, len(items))
	for i, it := range items {
		path := fmt.Sprintf("[%d]", i)
		if it.ID < 1 {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: path + ".id",
				Err:  fmt.Errorf("must be a positive integer, got %d", it.ID),
			})
		} else if prev, dup := seen[it.ID]; dup {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: path + ".id",
				Err:  fmt.Errorf("duplicate id %d (first seen at [%d])", it.ID, prev),
			})
		} else {
			seen[it.ID] = i
		}
		if BlankTitle(it.Title) {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: path + ".title",
				Err:  fmt.Errorf("must contain a non-whitespace character"),
			})
		}
	}

	return result
}
