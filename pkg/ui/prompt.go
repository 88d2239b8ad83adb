// Package ui renders quotes and status lines for the terminal and handles the
// small amount of interactive input the CLI needs.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether in can be prompted. Files such as os.Stdin
// are interactive only when attached to a terminal; any other reader is
// assumed to be supplied deliberately and is treated as interactive.
func IsInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Confirm writes question to out and reads one line from in. It returns true
// only for an answer of "y" (any case). End of input counts as "no".
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprint(out, question); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
