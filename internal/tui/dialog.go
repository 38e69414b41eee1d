package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"adminctl/pkg/listview"
)

// renderDialog draws a modal over its own boxed region. Confirm dialogs show
// both actions; alerts show a single acknowledgement. While the dialog is
// loading both actions are disabled and the confirm action is relabeled.
func renderDialog(d *listview.Dialog) string {
	var b strings.Builder
	b.WriteString(color.YellowString("┌─ %s\n", d.Title))
	if d.Description != "" {
		b.WriteString(fmt.Sprintf("│ %s\n", d.Description))
	}
	if d.Error != "" {
		b.WriteString("│ " + color.RedString(d.Error) + "\n")
	}
	switch {
	case d.Loading:
		b.WriteString("│ Working...\n")
	case d.AlertOnly():
		b.WriteString(fmt.Sprintf("│ [enter] %s\n", d.ConfirmLabel))
	default:
		b.WriteString(fmt.Sprintf("│ [y/enter] %s   [n/esc] %s\n", d.ConfirmLabel, d.CancelLabel))
	}
	b.WriteString("└─\n")
	return b.String()
}

// capitalize upper-cases the first rune for headings.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// trimLastRune removes the final rune so backspace on multi-byte input never
// leaves invalid UTF-8 behind.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
