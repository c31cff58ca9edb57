package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedNames(names ...string) []string {
	SortByMatchPriority(names)
	return names
}

func TestSortByMatchPriority(t *testing.T) {
	names := sortedNames("tag", "categories", "categories_args", "title", "date")
	assert.Equal(t, []string{"categories_args", "categories", "title", "date", "tag"}, names)
}

func TestScan(t *testing.T) {
	names := sortedNames("title", "categories", "categories_args", "date", "tag", "tags")

	t.Run("plain tokens", func(t *testing.T) {
		src := "%title% - %date%"
		occs := Scan(src, names)
		require.Len(t, occs, 2)
		assert.Equal(t, "title", occs[0].Name)
		assert.Equal(t, "%title%", occs[0].Text(src))
		assert.Equal(t, "date", occs[1].Name)
		assert.False(t, occs[1].HasArgs)
	})

	t.Run("argument clause", func(t *testing.T) {
		src := "in %categories(limit=3&separator= | )%!"
		occs := Scan(src, names)
		require.Len(t, occs, 1)
		assert.Equal(t, "categories", occs[0].Name)
		assert.True(t, occs[0].HasArgs)
		assert.Equal(t, "limit=3&separator= | ", occs[0].RawArgs)
		assert.Equal(t, "%categories(limit=3&separator= | )%", occs[0].Text(src))
	})

	t.Run("longest name wins", func(t *testing.T) {
		occs := Scan("%categories_args%", names)
		require.Len(t, occs, 1)
		assert.Equal(t, "categories_args", occs[0].Name)

		occs = Scan("%tags%", names)
		require.Len(t, occs, 1)
		assert.Equal(t, "tags", occs[0].Name)
	})

	t.Run("prefix of a longer word is not a match", func(t *testing.T) {
		assert.Empty(t, Scan("%titles%", names))
		assert.Empty(t, Scan("%categories_extra%", names))
	})

	t.Run("unknown and unterminated", func(t *testing.T) {
		assert.Empty(t, Scan("%unknown_token%", names))
		assert.Empty(t, Scan("%title", names))
		assert.Empty(t, Scan("%categories(limit=2", names))
		assert.Empty(t, Scan("no tokens here", names))
	})

	t.Run("adjacent tokens and stray percent", func(t *testing.T) {
		src := "50% off %title%%tag%"
		occs := Scan(src, names)
		require.Len(t, occs, 2)
		assert.Equal(t, "title", occs[0].Name)
		assert.Equal(t, "tag", occs[1].Name)
		assert.Equal(t, len(src), occs[1].End)
	})

	t.Run("parenthesis inside arguments", func(t *testing.T) {
		occs := Scan("%date(F (jS), Y)%", names)
		require.Len(t, occs, 1)
		assert.Equal(t, "F (jS), Y", occs[0].RawArgs)
	})

	t.Run("no names", func(t *testing.T) {
		assert.Nil(t, Scan("%title%", nil))
	})
}

func TestScanCandidates(t *testing.T) {
	src := "%title% %not_registered% 100% %date(Y)% %bad name%"
	occs := ScanCandidates(src)
	require.Len(t, occs, 3)
	assert.Equal(t, "title", occs[0].Name)
	assert.Equal(t, "not_registered", occs[1].Name)
	assert.Equal(t, "date", occs[2].Name)
	assert.Equal(t, "Y", occs[2].RawArgs)
}

func TestLineColumn(t *testing.T) {
	src := "ab\ncd %title%"
	line, col := LineColumn(src, 6)
	assert.Equal(t, 2, line)
	assert.Equal(t, 4, col)

	line, col = LineColumn(src, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}
