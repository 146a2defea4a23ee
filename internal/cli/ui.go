package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - success
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const iconSuccess = "✓"

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render(iconSuccess), fmt.Sprintf(format, args...))
}

func printDim(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf(format, args...)))
}
