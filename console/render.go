package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Renderer styles console output. The color profile is detected from the
// writer, so output to a pipe or buffer stays plain text.
type Renderer struct {
	out io.Writer

	titleStyle   lipgloss.Style
	accentStyle  lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	dimStyle     lipgloss.Style
}

func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		out: out,
		titleStyle: r.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true).
			Italic(true),
		accentStyle: r.NewStyle().
			Foreground(lipgloss.Color("46")),
		successStyle: r.NewStyle().
			Foreground(lipgloss.Color("46")),
		errorStyle: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		dimStyle: r.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}

func (r *Renderer) Banner() {
	fmt.Fprintf(r.out, "%s\n > %s\n > %s\n\n",
		r.titleStyle.Render("Welcome to Notation!"),
		r.accentStyle.Render("This program lets you explore scales, chords and chord progressions."),
		r.accentStyle.Render("Results are printed and written to files you can open elsewhere."),
	)
}

func (r *Renderer) Line(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *Renderer) Dim(s string) {
	fmt.Fprintln(r.out, r.dimStyle.Render(s))
}

// Written reports a file that was just written, highlighting the path.
func (r *Renderer) Written(what string, path string) {
	fmt.Fprintf(r.out, "%s written to %s\n", what, r.successStyle.Render(path))
}

func (r *Renderer) Error(s string) {
	fmt.Fprintln(r.out, r.errorStyle.Render(s))
}
