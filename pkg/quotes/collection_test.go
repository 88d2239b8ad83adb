package quotes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_JSONOrder(t *testing.T) {
	c := NewCollection()
	require.NoError(t, json.Unmarshal([]byte(`{
  "zeta": [{"quote": "z", "author": "Z"}],
  "alpha": [],
  "zeta": [{"quote": "z2", "author": "Z"}]
}`), c))

	assert.Equal(t, []string{"zeta", "alpha"}, c.Categories())
	zeta, _ := c.Quotes("zeta")
	assert.Len(t, zeta, 2)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":[{"quote":"z","author":"Z"},{"quote":"z2","author":"Z"}],"alpha":[]}`, string(data))
}

func TestCollection_UnmarshalBad(t *testing.T) {
	for name, input := range map[string]string{
		"Array":      `[1, 2]`,
		"Wrong list": `{"a": "not a list"}`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, json.Unmarshal([]byte(input), NewCollection()))
		})
	}
}

func TestCollection_Clone(t *testing.T) {
	c := NewCollection()
	c.Append("a", Quote{Text: "one", Author: "A"})
	clone := c.Clone()
	clone.Append("a", Quote{Text: "two", Author: "A"})

	original, _ := c.Quotes("a")
	assert.Len(t, original, 1)
}
