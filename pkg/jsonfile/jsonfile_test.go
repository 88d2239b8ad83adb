package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name string `json:"name"`
	At   Time   `json:"at"`
}

func TestRead_Good(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	want := []record{{Name: "one", At: Time{time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)}}}
	require.NoError(t, Write(path, want))

	var got []record
	require.NoError(t, Read(path, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "one", got[0].Name)
	assert.True(t, want[0].At.Equal(got[0].At.Time))
}

func TestRead_Bad(t *testing.T) {
	t.Run("Missing file", func(t *testing.T) {
		var v []record
		err := Read(filepath.Join(t.TempDir(), "missing.json"), &v)
		assert.True(t, IsNotExist(err))
		assert.False(t, IsCorrupt(err))
	})

	t.Run("Corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corrupt.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		var v []record
		err := Read(path, &v)
		assert.True(t, IsCorrupt(err))
		assert.False(t, IsNotExist(err))
	})
}

func TestWrite_Indentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Write(path, map[string]string{"a": "<b>"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"<b>\"\n}\n", string(data))
}

func TestWrite_Bad(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "no", "such", "dir.json"), []int{1})
	assert.Error(t, err)
}

func TestTime_UnmarshalNaive(t *testing.T) {
	var v record
	require.NoError(t, Read(writeTemp(t, `{"name":"x","at":"2024-01-02T15:04:05.123456"}`), &v))

	assert.Equal(t, 2024, v.At.Year())
	assert.Equal(t, time.January, v.At.Month())
	assert.Equal(t, 15, v.At.Hour())
	assert.Equal(t, time.Local, v.At.Location())
}

func TestTime_UnmarshalInvalid(t *testing.T) {
	var v record
	err := Read(writeTemp(t, `{"name":"x","at":"yesterday"}`), &v)
	assert.True(t, IsCorrupt(err))
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
