package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSimilarStrings(t *testing.T) {
	candidates := []string{"title", "tag", "tags", "categories", "date"}

	t.Run("close typo", func(t *testing.T) {
		got := FindSimilarStrings("titel", candidates, DefaultMaxSuggestions)
		assert.Equal(t, "title", got[0])
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := FindSimilarStrings("CATEGORIE", candidates, 1)
		assert.Equal(t, []string{"categories"}, got)
	})

	t.Run("nothing similar", func(t *testing.T) {
		assert.Empty(t, FindSimilarStrings("zzzzzzzzzzzz", candidates, 3))
	})

	t.Run("no candidates or zero max", func(t *testing.T) {
		assert.Nil(t, FindSimilarStrings("title", nil, 3))
		assert.Nil(t, FindSimilarStrings("title", candidates, 0))
	})
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("tag", "tag"))
	assert.Equal(t, 1, levenshteinDistance("tag", "tags"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
	assert.Equal(t, 2, levenshteinDistance("titel", "title"))
}

func TestFormatSuggestions(t *testing.T) {
	assert.Equal(t, "", FormatSuggestions(nil))
	assert.Equal(t, ". Did you mean 'title'?", FormatSuggestions([]string{"title"}))
	assert.Equal(t, ". Did you mean 'tag', 'tags' or 'title'?", FormatSuggestions([]string{"tag", "tags", "title"}))
}
