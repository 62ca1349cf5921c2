package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/framegrid/framegrid/pkg/geom"
	"github.com/framegrid/framegrid/pkg/plan"
	"github.com/framegrid/framegrid/pkg/plan/segment"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BeamListModel - Interactive beam inspection
// =============================================================================

// BeamListModel is the bubbletea model for browsing a plan's beams. The
// list view shows one row per beam with its axis, span, support count and
// worst support gap; enter opens the segment breakdown for the beam under
// the cursor.
type BeamListModel struct {
	Plan   *plan.Plan
	Beams  []*plan.Beam
	Cursor int
	Height int
	Offset int
	Detail bool
}

// NewBeamListModel creates a beam list model over a plan snapshot.
func NewBeamListModel(p *plan.Plan) BeamListModel {
	return BeamListModel{
		Plan:   p,
		Beams:  p.Beams(),
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m BeamListModel) Init() tea.Cmd {
	return nil
}

func (m BeamListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if !m.Detail && m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if !m.Detail && m.Cursor < len(m.Beams)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if !m.Detail && len(m.Beams) > 0 {
				m.Detail = true
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BeamListModel) View() string {
	if m.Detail {
		return m.detailView()
	}
	return m.listView()
}

// listView renders the beam table with the cursor row highlighted.
func (m BeamListModel) listView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect Beams"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ segments  q quit"))
	b.WriteString("\n\n")

	if len(m.Beams) == 0 {
		b.WriteString(listDimStyle.Render("  (no beams in plan)"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Beams) {
		end = len(m.Beams)
	}

	over := make(map[int]bool)
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		beam := m.Beams[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		supports := len(m.Plan.ColumnsOnBeam(beam, geom.Tol, geom.Tol))
		worst, violated := beamSpanStatus(m.Plan, beam)
		status := "OK"
		if violated {
			status = "OVER"
			over[i] = true
		}

		rows = append(rows, []string{
			cursor,
			shortColumnID(string(beam.ID)),
			beamAxis(beam),
			fmt.Sprintf("%.2f m", beam.Span()),
			fmt.Sprintf("%d", supports),
			fmt.Sprintf("%s (%.2f m)", status, worst),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Beam", "Axis", "Span", "Supports", "Worst gap").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Beams) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 5 {
				if over[actualIdx] {
					base = base.Foreground(colorRed)
				} else {
					base = base.Foreground(colorGreen)
				}
			}
			if isCurrent {
				return base.Foreground(colorCyan).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Beams))))

	return b.String()
}

// detailView renders the segment breakdown for the beam under the cursor.
func (m BeamListModel) detailView() string {
	beam := m.Beams[m.Cursor]
	segs := segment.Split(m.Plan, beam)

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Beam %s", shortColumnID(string(beam.ID)))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, seg := range segs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			shortColumnID(string(seg.StartID)),
			shortColumnID(string(seg.EndID)),
			fmt.Sprintf("%.2f m", seg.Length),
			fmt.Sprintf("%.2f m", seg.Height),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "From", "To", "Length", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d segments · %.2f m total", len(segs), beam.Span())))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// beamAxis names the beam's orientation for table display.
func beamAxis(b *plan.Beam) string {
	switch {
	case b.Horizontal():
		return "X"
	case b.Vertical():
		return "Y"
	default:
		return "diag"
	}
}

// beamSpanStatus returns the widest gap between consecutive supports on
// the beam and whether it exceeds the configured limit for its axis. A
// beam with fewer than two supports counts as one gap of its whole span.
func beamSpanStatus(p *plan.Plan, b *plan.Beam) (worst float64, violated bool) {
	stations := p.ColumnsOnBeam(b, geom.Tol, geom.Tol)
	if len(stations) < 2 {
		worst = b.Span()
	} else {
		for i := 1; i < len(stations); i++ {
			if gap := stations[i].Offset - stations[i-1].Offset; gap > worst {
				worst = gap
			}
		}
	}
	limit := p.Config().MaxSpanFor(b.Horizontal(), b.Vertical())
	return worst, worst > limit+geom.Tol
}
