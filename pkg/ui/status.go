package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
	headingColor = color.New(color.FgCyan, color.Bold)
)

// Success prints a green confirmation line prefixed with a check mark.
func Success(w io.Writer, format string, a ...any) {
	successColor.Fprintf(w, "✅ "+format+"\n", a...)
}

// Failure prints a red failure line prefixed with a cross.
func Failure(w io.Writer, format string, a ...any) {
	failureColor.Fprintf(w, "❌ "+format+"\n", a...)
}

// Heading prints a section title over a double rule of the given width.
func Heading(w io.Writer, title string, width int) {
	fmt.Fprintf(w, "\n%s\n", headingColor.Sprint(title))
	fmt.Fprintln(w, strings.Repeat("═", width))
}
