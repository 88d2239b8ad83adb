package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	color.NoColor = true
}

// executeCommand is a helper function to execute a cobra command and return the output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	_, output, err := executeCommandC(root, "", args...)
	return output, err
}

// executeCommandWithInput is executeCommand with stdin set to input.
func executeCommandWithInput(root *cobra.Command, input string, args ...string) (string, error) {
	_, output, err := executeCommandC(root, input, args...)
	return output, err
}

// executeCommandC is a helper function to execute a cobra command and return the output.
// Stdin is always replaced so a test never waits on the terminal.
func executeCommandC(root *cobra.Command, input string, args ...string) (*cobra.Command, string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)

	c, err := root.ExecuteC()

	return c, buf.String(), err
}

// testFiles points the CLI's data files at a temporary directory.
type testFiles struct {
	custom, history, favorites string
}

func setupFiles(t *testing.T) testFiles {
	t.Helper()
	dir := t.TempDir()
	f := testFiles{
		custom:    filepath.Join(dir, "custom_quotes.json"),
		history:   filepath.Join(dir, ".quote_history.json"),
		favorites: filepath.Join(dir, "favorite_quotes.json"),
	}
	t.Setenv("QUOTEGEN_FILES_CUSTOM", f.custom)
	t.Setenv("QUOTEGEN_FILES_HISTORY", f.history)
	t.Setenv("QUOTEGEN_FILES_FAVORITES", f.favorites)
	return f
}
