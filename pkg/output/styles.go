package output

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorRed    = lipgloss.Color("1")
	colorWhite  = lipgloss.Color("15")
	colorGray   = lipgloss.Color("8")
)

type styles struct {
	info       lipgloss.Style
	comment    lipgloss.Style
	errorText  lipgloss.Style
	warnBadge  lipgloss.Style
	alertBadge lipgloss.Style
	title      lipgloss.Style
	key        lipgloss.Style
	diagnostic lipgloss.Style
	header     lipgloss.Style
	cell       lipgloss.Style
	border     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		info:       r.NewStyle().Foreground(colorGreen),
		comment:    r.NewStyle().Faint(true),
		errorText:  r.NewStyle().Foreground(colorRed),
		warnBadge:  r.NewStyle().Bold(true).Foreground(colorWhite).Background(colorYellow),
		alertBadge: r.NewStyle().Bold(true).Foreground(colorWhite).Background(colorRed),
		title:      r.NewStyle().Foreground(colorYellow),
		key:        r.NewStyle().Foreground(colorGreen),
		diagnostic: r.NewStyle().Foreground(colorWhite).Background(colorRed).Padding(1, 2),
		header:     r.NewStyle().Bold(true).Foreground(colorGreen).Padding(0, 1),
		cell:       r.NewStyle().Padding(0, 1),
		border:     r.NewStyle().Foreground(colorGray),
	}
}
