// Package manager enforces the business rules for creating and
// completing todos, with the store as its only persistence boundary.
package manager

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tick/internal/store"
	"github.com/nibzard/tick/internal/todo"
)

// ErrEmptyTitle is returned by Add for a title that is empty after
// trimming. The message is part of the CLI contract.
var ErrEmptyTitle = errors.New("Title cannot be empty")

// NotFoundError is returned by MarkDone when no todo has the given id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Todo #%d not found", e.ID)
}

// AlreadyDoneError is returned by MarkDone when the todo is already done.
type AlreadyDoneError struct {
	ID int
}

func (e *AlreadyDoneError) Error() string {
	return fmt.Sprintf("Todo #%d is already done", e.ID)
}

// Manager holds no state between calls: every method re-reads the store
// and mutations rewrite the full sequence through the store's atomic save.
type Manager struct {
	store  *store.Store
	logger *log.Logger
}

// New returns a manager backed by st. A nil logger falls back to the
// package default.
func New(st *store.Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{store: st, logger: logger}
}

// Add validates the title, assigns the next sequential id, appends the
// new todo, and persists the full sequence. The title is stored as
// given; only validation trims it.
func (m *Manager) Add(title string) (todo.Item, error) {
	if todo.BlankTitle(title) {
		return todo.Item{}, ErrEmptyTitle
	}

	items, err := m.store.Load()
	if err != nil {
		return todo.Item{}, err
	}

	item := todo.Item{
		ID:    nextID(items),
		Title: title,
	}
	items = append(items, item)

	if err := m.store.Save(items); err != nil {
		return todo.Item{}, err
	}

	m.logger.Debug("added todo", "id", item.ID, "title", item.Title)
	return item, nil
}

// ListAll returns the stored sequence unmodified, in file order.
func (m *Manager) ListAll() ([]todo.Item, error) {
	return m.store.Load()
}

// MarkDone flips a todo from pending to done and persists the update.
// The transition is one-way: a second MarkDone on the same id fails with
// AlreadyDoneError, and neither error path writes to the store.
func (m *Manager) MarkDone(id int) error {
	items, err := m.store.Load()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		if items[i].Done {
			return &AlreadyDoneError{ID: id}
		}
		items[i].Done = true
		if err := m.store.Save(items); err != nil {
			return err
		}
		m.logger.Debug("marked todo done", "id", id)
		return nil
	}

	return &NotFoundError{ID: id}
}

// nextID computes max existing id + 1, or 1 for an empty store. Ids are
// never reused even if earlier entries disappear.
func nextID(items []todo.Item) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}
