package visualize

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/hamilton/grid"
	"github.com/katalvlaran/hamilton/pathcount"
)

// RowSnapshot records the state of the counting driver after processing
// one row, captured via pathcount.Options.ProgressFunc.
type RowSnapshot struct {
	Row       int
	TotalRows int
	States    int
}

// Collect runs Sequential.Count over g, capturing one RowSnapshot per
// row, and returns the snapshots alongside the final path count.
func Collect(g *grid.Grid) ([]RowSnapshot, uint64, error) {
	var snapshots []RowSnapshot

	opts := pathcount.DefaultOptions()
	opts.ProgressFunc = func(row, totalRows, states int) {
		snapshots = append(snapshots, RowSnapshot{Row: row, TotalRows: totalRows, States: states})
	}

	count, err := pathcount.NewSequential(opts).Count(g)
	if err != nil {
		return nil, 0, err
	}

	return snapshots, count, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	normalStyle = lipgloss.NewStyle()
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// Model is a bubbletea.Model stepping through a captured run's
// RowSnapshots, one per grid row.
type Model struct {
	snapshots []RowSnapshot
	cursor    int
	count     uint64
	viewport  viewport.Model
	ready     bool
}

// NewModel returns a Model ready to display snapshots (from Collect)
// alongside the final path count.
func NewModel(snapshots []RowSnapshot, count uint64) Model {
	return Model{snapshots: snapshots, count: count}
}

// Init starts the bubbletea program; no asynchronous work is needed since
// snapshots are already fully collected.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation (up/down/j/k to move the cursor, q
// or ctrl+c to quit) and window resizing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-3)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 3
		}
		m.viewport.SetContent(m.body())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.snapshots)-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		}
		m.viewport.SetContent(m.body())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// body renders every captured row, highlighting the cursor's row.
func (m Model) body() string {
	var sb strings.Builder
	for i, snap := range m.snapshots {
		line := fmt.Sprintf("row %d/%d: %d live configurations", snap.Row+1, snap.TotalRows, snap.States)
		if i == m.cursor {
			sb.WriteString(cursorStyle.Render("> " + line))
		} else {
			sb.WriteString(normalStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// View renders the header, scrollable row list, and footer.
func (m Model) View() string {
	if !m.ready {
		return "initializing...\n"
	}

	header := headerStyle.Render(fmt.Sprintf("Hamiltonian path count: %d", m.count))
	footer := footerStyle.Render("↑/↓ to move, q to quit")

	return header + "\n" + m.viewport.View() + "\n" + footer
}
