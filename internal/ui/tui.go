// Package ui provides the optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/tick/internal/manager"
	"github.com/nibzard/tick/internal/todo"
)

// RunTUI starts the full-screen todo list. Navigation with j/k or the
// arrow keys, enter marks the selected todo done, q quits.
func RunTUI(ctx context.Context, mgr *manager.Manager, storePath string) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(mgr, storePath)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*tuiModel); ok && m.loadErr != nil {
		return m.loadErr
	}
	return nil
}

// IsTTY checks if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

type tuiModel struct {
	mgr       *manager.Manager
	storePath string
	items     []todo.Item
	cursor    int
	loadErr   error
	notice    string
}

func newTUIModel(mgr *manager.Manager, storePath string) *tuiModel {
	return &tuiModel{mgr: mgr, storePath: storePath}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "j", "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "g", "home":
			m.cursor = 0
			return m, nil
		case "G", "end":
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
			}
			return m, nil
		case "r", "f5":
			m.refresh()
			return m, nil
		case "enter", " ":
			m.markSelected()
			return m, nil
		}
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder

	done, pending := stats(m.items)
	b.WriteString(fmt.Sprintf("%s   %s %d  %s %d  %s %d\n",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), len(m.items),
	))
	b.WriteString(mutedStyle.Render(m.storePath) + "\n\n")

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render("Error loading todos:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		writeFooter(&b)
		return b.String()
	}

	if len(m.items) == 0 {
		b.WriteString(mutedStyle.Render("No todos found") + "\n\n")
		writeFooter(&b)
		return b.String()
	}

	for i, it := range m.items {
		box := boxUnchecked
		line := fmt.Sprintf("#%d: %s", it.ID, it.Title)
		if it.Done {
			box = successStyle.Render(boxChecked)
			line = doneStyle.Render(line)
		}
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, box, line))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(m.notice + "\n\n")
	}

	writeFooter(&b)
	return b.String()
}

func writeFooter(b *strings.Builder) {
	b.WriteString(helpStyle.Render("j/k move · enter mark done · r refresh · q quit"))
	b.WriteString("\n")
}

// refresh reloads the list from the store, clamping the cursor.
func (m *tuiModel) refresh() {
	items, err := m.mgr.ListAll()
	if err != nil {
		m.loadErr = err
		m.items = nil
		return
	}
	m.loadErr = nil
	m.items = items
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) markSelected() {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return
	}
	it := m.items[m.cursor]
	if err := m.mgr.MarkDone(it.ID); err != nil {
		m.notice = errorStyle.Render(err.Error())
	} else {
		m.notice = successStyle.Render(fmt.Sprintf("Marked todo #%d as done", it.ID))
	}
	m.refresh()
}

func stats(items []todo.Item) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
