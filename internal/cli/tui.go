package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/BrianMehrman/diagram-builder/pkg/ivm"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// graphModel is the bubbletea model for browsing a built graph's nodes.
type graphModel struct {
	graph  ivm.Graph
	cursor int
	height int
	offset int
}

func newGraphModel(g ivm.Graph) graphModel {
	return graphModel{graph: g, height: 15}
}

func (m graphModel) Init() tea.Cmd {
	return nil
}

func (m graphModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.graph.Nodes)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 10
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m graphModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(displayName(m.graph.Meta)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.graph.Nodes) == 0 {
		b.WriteString(listDimStyle.Render("  (no nodes)"))
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.graph.Nodes) {
		end = len(m.graph.Nodes)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		n := m.graph.Nodes[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		parent := n.ParentID
		if parent == "" {
			parent = "—"
		}

		pos := fmt.Sprintf("%.1f, %.1f, %.1f", n.Position.X, n.Position.Y, n.Position.Z)
		rows = append(rows, []string{cursor, n.ID, string(n.Type), fmt.Sprintf("%d", n.LOD), parent, pos})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Type", "LOD", "Parent", "Position").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.graph.Nodes))))

	return b.String()
}
