package xword

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertPreservesShape(t *testing.T) {
	doc := decodeDocument(t, `{
		"dimensions": {"width": 4, "height": 3},
		"puzzle": [
			["#", 1, 2, "#"],
			[3, 0, 0, 0],
			["#", 4, 0]
		]
	}`)

	p := convertDocument(doc)
	require.Len(t, p.Grid, len(doc.Puzzle))
	for i, row := range doc.Puzzle {
		require.Len(t, p.Grid[i], len(row))
	}
}

func TestConvertCopiesMetadata(t *testing.T) {
	doc := decodeDocument(t, `{
		"dimensions": {"width": 1, "height": 1},
		"puzzle": [[0]],
		"title": "Sunday Special",
		"author": "A. Setter",
		"copyright": "2026",
		"publisher": "The Daily",
		"difficulty": "hard",
		"intro": "A themed puzzle."
	}`)

	p := convertDocument(doc)
	require.Equal(t, "Sunday Special", p.Title)
	require.Equal(t, "A. Setter", p.Author)
	require.Equal(t, "2026", p.Copyright)
	require.Equal(t, "The Daily", p.Publisher)
	require.Equal(t, "hard", p.Difficulty)
	require.Equal(t, "A themed puzzle.", p.Intro)
}

func TestConvertAbsentMetadataStaysUnset(t *testing.T) {
	doc := decodeDocument(t, `{
		"dimensions": {"width": 1, "height": 1},
		"puzzle": [[0]]
	}`)

	p := convertDocument(doc)
	require.Empty(t, p.Title)
	require.Empty(t, p.Author)
	require.Empty(t, p.Intro)
}

func TestConvertAbsentCluesYieldEmptyTables(t *testing.T) {
	doc := decodeDocument(t, `{
		"dimensions": {"width": 1, "height": 1},
		"puzzle": [[0]]
	}`)

	p := convertDocument(doc)
	require.NotNil(t, p.Clues.Across)
	require.NotNil(t, p.Clues.Down)
	require.Empty(t, p.Clues.Across)
	require.Empty(t, p.Clues.Down)
}
