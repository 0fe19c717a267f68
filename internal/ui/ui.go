package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Styles
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Accent = color.New(color.FgHiMagenta)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Banner prints the skillnet banner with a subtitle.
func Banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s %s %s\n\n", Accent.Sprint("◉"), Brand.Sprint("skillnet"), Subtle.Sprint(subtitle))
}

// KV prints one aligned key/value line.
func KV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s  %v\n", Brand.Sprintf("%-14s", key), value)
}

// Table prints a simple aligned table.
func Table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Fprintln(w, strings.TrimRight(headerLine, " "))
	Subtle.Fprintln(w, strings.TrimRight(sepLine, " "))

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// StatusIcon returns a check or cross.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}
