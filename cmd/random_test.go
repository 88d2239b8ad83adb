package cmd

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snider/quotegen/pkg/favorites"
	"github.com/Snider/quotegen/pkg/history"
)

const soloQuotes = `{"solo": [{"quote": "Only one.", "author": "Me"}], "empty": []}`

func TestRandomCmd_Good(t *testing.T) {
	t.Run("Category", func(t *testing.T) {
		f := setupFiles(t)
		require.NoError(t, os.WriteFile(f.custom, []byte(soloQuotes), 0644))

		output, err := executeCommand(NewRootCmd(), "random", "-c", "solo", "--no-prompt")
		require.NoError(t, err)
		assert.Equal(t, "\nOnly one.\n— Me\nCategory: solo\n\n", output)

		entries, err := history.New(f.history).Recent(0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "solo", entries[0].Category)
	})

	t.Run("Layouts", func(t *testing.T) {
		f := setupFiles(t)
		require.NoError(t, os.WriteFile(f.custom, []byte(soloQuotes), 0644))

		output, err := executeCommand(NewRootCmd(), "random", "-c", "solo", "--layout", "boxed", "--no-prompt")
		require.NoError(t, err)
		assert.Contains(t, output, "╭")
		assert.Contains(t, output, fmt.Sprintf("│ %-14s │", "Only one."))

		output, err = executeCommand(NewRootCmd(), "random", "-c", "solo", "--layout", "fancy", "--no-prompt")
		require.NoError(t, err)
		assert.Contains(t, output, "QUOTE OF THE MOMENT")
		assert.Contains(t, output, "  \"Only one.\"\n")
	})

	t.Run("Random style", func(t *testing.T) {
		f := setupFiles(t)
		require.NoError(t, os.WriteFile(f.custom, []byte(soloQuotes), 0644))

		output, err := executeCommand(NewRootCmd(), "random", "-c", "solo", "-s", "--no-prompt")
		require.NoError(t, err)
		assert.Contains(t, output, "Only one.")
		assert.Contains(t, output, "Me")
	})
}

func TestRandomCmd_Favorites(t *testing.T) {
	f := setupFiles(t)
	require.NoError(t, os.WriteFile(f.custom, []byte(soloQuotes), 0644))

	output, err := executeCommandWithInput(NewRootCmd(), "y\n", "random", "-c", "solo")
	require.NoError(t, err)
	assert.Contains(t, output, "Add to favorites? (y/n): ")
	assert.Contains(t, output, "Added to favorites! ⭐")

	output, err = executeCommandWithInput(NewRootCmd(), "y\n", "random", "-c", "solo")
	require.NoError(t, err)
	assert.Contains(t, output, "Quote already in favorites.")

	output, err = executeCommandWithInput(NewRootCmd(), "n\n", "random", "-c", "solo")
	require.NoError(t, err)
	assert.NotContains(t, output, "favorites.\n")

	entries, err := favorites.New(f.favorites, nil).List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "solo", entries[0].Category)
	assert.Equal(t, "Me", entries[0].Author)
}

func TestRandomCmd_Bad(t *testing.T) {
	t.Run("Unknown category", func(t *testing.T) {
		f := setupFiles(t)

		output, err := executeCommandWithInput(NewRootCmd(), "y\n", "random", "--category", "nonexistent")
		require.NoError(t, err)
		assert.Equal(t,
			"Category 'nonexistent' not found. Available categories: inspirational, technology, programming, wisdom\n",
			output)
		assert.NoFileExists(t, f.history)
		assert.NoFileExists(t, f.favorites)
	})

	t.Run("Empty category", func(t *testing.T) {
		f := setupFiles(t)
		require.NoError(t, os.WriteFile(f.custom, []byte(soloQuotes), 0644))

		output, err := executeCommand(NewRootCmd(), "random", "-c", "empty")
		require.NoError(t, err)
		assert.Equal(t, "No quotes found for category 'empty'\n", output)
		assert.NoFileExists(t, f.history)
	})

	t.Run("Unknown layout", func(t *testing.T) {
		setupFiles(t)
		_, err := executeCommand(NewRootCmd(), "random", "--layout", "comic")
		assert.Error(t, err)
	})

	t.Run("History cannot be saved", func(t *testing.T) {
		f := setupFiles(t)
		require.NoError(t, os.WriteFile(f.custom, []byte(soloQuotes), 0644))
		t.Setenv("QUOTEGEN_FILES_HISTORY", f.history+"/missing/h.json")

		output, err := executeCommand(NewRootCmd(), "random", "-c", "solo", "--no-prompt")
		require.NoError(t, err)
		assert.Contains(t, output, "Error saving to history:")
		assert.True(t, strings.Contains(output, "Only one."), "quote is still shown")
	})
}
