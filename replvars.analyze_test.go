package replvars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_KnownAndUnknown(t *testing.T) {
	e := newTestExpander(t, newFakeSource())

	result := e.Analyze("%title% - %tittle%\n%categories(limit=2)% %tittle%")

	require.Len(t, result.References, 4)
	assert.False(t, result.Valid())
	assert.Equal(t, []string{"tittle"}, result.Unknown)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], WarnMsgUnknownToken+"tittle'")
	assert.Contains(t, result.Warnings[0], "title")

	title := result.References[0]
	assert.Equal(t, TokenTitle, title.Name)
	assert.True(t, title.Registered)
	assert.Equal(t, 0, title.Offset)
	assert.Equal(t, 1, title.Line)
	assert.Equal(t, 1, title.Column)

	unknown := result.References[1]
	assert.Equal(t, "tittle", unknown.Name)
	assert.False(t, unknown.Registered)
	assert.Contains(t, unknown.Suggestions, TokenTitle)
	assert.Equal(t, "%tittle%", unknown.Text)

	cats := result.References[2]
	assert.Equal(t, TokenCategories, cats.Name)
	assert.Equal(t, 2, cats.Line)
	assert.Equal(t, 1, cats.Column)
	assert.Equal(t, "limit=2", cats.RawArgs)
	assert.Equal(t, map[string]string{ArgLimit: "2"}, cats.Arguments)
}

func TestAnalyze_Valid(t *testing.T) {
	e := newTestExpander(t, newFakeSource())

	result := e.Analyze("%title% is 100% done")
	assert.True(t, result.Valid())
	require.Len(t, result.References, 1)
	assert.Empty(t, result.Warnings)
}

func TestAnalyze_NoReferences(t *testing.T) {
	e := newTestExpander(t, newFakeSource())

	result := e.Analyze("plain text")
	assert.True(t, result.Valid())
	assert.Empty(t, result.References)
}

func TestAnalyze_MatchesExpandScanning(t *testing.T) {
	e := newTestExpander(t, newFakeSource())

	// "%tags_x%" is not registered, so only "%tag%" at the end is known
	result := e.Analyze("%tags_x% %tag%")
	require.Len(t, result.References, 2)
	assert.Equal(t, "tags_x", result.References[0].Name)
	assert.False(t, result.References[0].Registered)
	assert.Equal(t, TokenTag, result.References[1].Name)
	assert.True(t, result.References[1].Registered)
}

func TestAnalyze_MaxSuggestions(t *testing.T) {
	reg := NewRegistry(nil)
	for _, name := range []string{"tag", "tags", "tab"} {
		reg.MustRegister(name, TokenMeta{}, constResolver(name))
	}
	e := NewExpander(reg, WithMaxSuggestions(1))

	result := e.Analyze("%tagx%")
	require.Len(t, result.References, 1)
	assert.Len(t, result.References[0].Suggestions, 1)
}
