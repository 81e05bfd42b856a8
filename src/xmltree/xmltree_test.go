package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<RECIPES>
	<!-- a comment the tree should ignore -->
	<RECIPE>
		<NAME>Oatmeal Stout</NAME>
		<HOPS>
			<HOP><NAME>Fuggles</NAME></HOP>
			<HOP><NAME>Goldings</NAME></HOP>
		</HOPS>
	</RECIPE>
</RECIPES>`

func TestParse(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	assert.Equal(t, "RECIPES", root.Tag)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "RECIPE", root.Children[0].Tag)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"mismatched tags", "<A><B></A></B>"},
		{"two roots", "<A></A><B></B>"},
		{"unclosed tag", "<A><B>"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestQuery(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	recipe := root.Children[0]

	names := recipe.Query("NAME")
	require.Len(t, names, 1)
	assert.Equal(t, "Oatmeal Stout", names[0].TrimmedText())

	hops := recipe.Query("HOPS/HOP")
	require.Len(t, hops, 2)
	assert.Equal(t, "Fuggles", hops[0].Query("NAME")[0].TrimmedText())
	assert.Equal(t, "Goldings", hops[1].Query("NAME")[0].TrimmedText())

	assert.Empty(t, recipe.Query("NO_SUCH_TAG"))
	assert.Empty(t, recipe.Query("HOPS/NO_SUCH_TAG"))

	// Empty path matches the node itself
	self := recipe.Query("")
	require.Len(t, self, 1)
	assert.Same(t, recipe, self[0])
}

func TestTrimmedText(t *testing.T) {
	root, err := Parse(strings.NewReader("<A>\n  padded value\t</A>"))
	require.NoError(t, err)
	assert.Equal(t, "padded value", root.TrimmedText())
}
