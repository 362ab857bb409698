package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/filectx/pkg/errors"
	fio "github.com/matzehuels/filectx/pkg/io"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// EntryPickerModel - Interactive selection of resolved entries
// =============================================================================

// EntryPickerModel is the bubbletea model that lets the user choose which
// resolved entries to keep. All entries start out selected.
type EntryPickerModel struct {
	Entries   []fio.Entry
	Chosen    []bool
	Cursor    int
	Offset    int
	Height    int
	Confirmed bool
}

// NewEntryPickerModel creates a picker over entries.
func NewEntryPickerModel(entries []fio.Entry) EntryPickerModel {
	chosen := make([]bool, len(entries))
	for i := range chosen {
		chosen[i] = true
	}
	return EntryPickerModel{Entries: entries, Chosen: chosen, Height: 15}
}

func (m EntryPickerModel) Init() tea.Cmd {
	return nil
}

func (m EntryPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space", "x":
			if len(m.Chosen) > 0 {
				m.Chosen = append([]bool(nil), m.Chosen...)
				m.Chosen[m.Cursor] = !m.Chosen[m.Cursor]
			}
		case "a":
			all := !m.allChosen()
			m.Chosen = make([]bool, len(m.Entries))
			for i := range m.Chosen {
				m.Chosen[i] = all
			}
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m EntryPickerModel) allChosen() bool {
	for _, c := range m.Chosen {
		if !c {
			return false
		}
	}
	return true
}

func (m EntryPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Entries"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Entries))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.Chosen[i] {
			mark = "[x]"
		}
		rows = append(rows, []string{cursor, mark, e.Name, e.Kind, strconv.Itoa(len(e.Files))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "Entry", "Kind", "Files").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := m.Offset + row
			switch {
			case idx == m.Cursor:
				return listSelectedStyle
			case idx < len(m.Chosen) && !m.Chosen[idx]:
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d selected", m.Cursor+1, len(m.Entries), m.count())))

	return b.String()
}

func (m EntryPickerModel) count() int {
	n := 0
	for _, c := range m.Chosen {
		if c {
			n++
		}
	}
	return n
}

// Selection returns the chosen entries in their original order.
func (m EntryPickerModel) Selection() []fio.Entry {
	out := make([]fio.Entry, 0, m.count())
	for i, e := range m.Entries {
		if m.Chosen[i] {
			out = append(out, e)
		}
	}
	return out
}

// pickEntries runs the picker on in/out and returns the chosen entries.
func pickEntries(entries []fio.Entry, in io.Reader, out io.Writer) ([]fio.Entry, error) {
	if len(entries) == 0 {
		return entries, nil
	}
	p := tea.NewProgram(NewEntryPickerModel(entries), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("entry picker: %w", err)
	}
	m, ok := final.(EntryPickerModel)
	if !ok || !m.Confirmed {
		return nil, errors.New(errors.ErrCodeInvalidInput, "selection cancelled")
	}
	return m.Selection(), nil
}
