package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/JonMunkholm/datazen/internal/profile"
)

// printer writes headings, metrics and tables to one writer.
type printer struct {
	w       io.Writer
	noColor bool
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"})
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"})
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"})
)

func (p *printer) style(s lipgloss.Style, text string) string {
	if p.noColor {
		return text
	}
	return s.Render(text)
}

func (p *printer) heading(text string) {
	fmt.Fprintf(p.w, "\n%s\n", p.style(headingStyle, text))
}

func (p *printer) success(text string) {
	fmt.Fprintln(p.w, p.style(successStyle, text))
}

func (p *printer) warning(text string) {
	fmt.Fprintln(p.w, p.style(warningStyle, text))
}

// table renders a grid with a normal border.
func (p *printer) table(t profile.Table) {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Header...).
		Rows(t.Rows...)
	if !p.noColor {
		tbl = tbl.StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	}
	fmt.Fprintln(p.w, tbl.String())
}
