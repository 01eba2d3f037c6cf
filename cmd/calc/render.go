package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nickandperla.net/calc/pkg/calc"
)

const panelWidth = 28

var (
	displayStyle = lipgloss.NewStyle().
			Bold(true).
			Width(panelWidth).
			Align(lipgloss.Right).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Width(panelWidth).
			Align(lipgloss.Right).
			Padding(0, 2).
			Foreground(lipgloss.Color("10"))

	errorStyle = resultStyle.Foreground(lipgloss.Color("9"))

	helpStyle = lipgloss.NewStyle().Faint(true)
)

const helpText = "0-9 + - * / . =  < back  c/Esc clear  q quit"

// renderPanel draws the display, the result line when visible, and a key hint.
func renderPanel(c *calc.Controller) string {
	parts := []string{displayStyle.Render(c.CurrentDisplayText())}
	if c.IsShowingResult() {
		style := resultStyle
		if c.Mode() == calc.ShowingError {
			style = errorStyle
		}
		parts = append(parts, style.Render(c.CurrentResultText()))
	}
	parts = append(parts, helpStyle.Render(helpText))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// drawRaw clears the screen and redraws the panel with raw-mode line endings.
func drawRaw(w io.Writer, c *calc.Controller) {
	panel := strings.ReplaceAll(renderPanel(c), "\n", "\r\n")
	fmt.Fprint(w, "\x1b[H\x1b[2J", panel, "\r\n")
}
