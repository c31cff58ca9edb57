package replvars

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func nullResolver(context.Context, *ResolutionContext, Arguments) (string, bool) {
	return "", false
}

func TestExpander_UnknownTokensStayLiteral(t *testing.T) {
	e := newTestExpander(t, newFakeSource())
	rc := NewResolutionContext(nil, postFields(), Flags{}, Archive{})

	tests := []string{
		"%unknown%",
		"100% sure",
		"%title",
		"%%",
		"%date(unterminated%",
		"%sitename% and 50%",
	}
	for _, tmpl := range tests {
		t.Run(tmpl, func(t *testing.T) {
			assert.Equal(t, tmpl, expand(t, e, tmpl, rc))
		})
	}
}

func TestExpander_MixedTemplate(t *testing.T) {
	e := newTestExpander(t, newFakeSource())
	rc := NewResolutionContext(nil, postFields(), Flags{}, Archive{})

	got := expand(t, e, "%title% | %sitename% | %categories(limit=1)% | %excerpt_only%", rc)
	assert.Equal(t, `Hello "World" | %sitename% | Alpha | `, got)
}

func TestExpander_NoKnownTokenRemains(t *testing.T) {
	e := newTestExpander(t, newFakeSource())
	rc := NewResolutionContext(nil, postFields(), Flags{}, Archive{})

	tmpl := "%title%%date%%modified%%excerpt%%excerpt_only%%parent_title%" +
		"%category%%categories%%tag%%tags%%date(Y)%%tags(limit=1)%"
	got := expand(t, e, tmpl, rc)
	for _, def := range e.Registry().List() {
		assert.NotContains(t, got, "%"+def.Name+"%")
		assert.NotContains(t, got, "%"+def.Name+"(")
	}
}

func TestExpander_LongestMatch(t *testing.T) {
	reg := NewRegistry(nil)
	reg.MustRegister("tag", TokenMeta{}, constResolver("T"))
	reg.MustRegister("tags", TokenMeta{}, constResolver("TS"))
	reg.MustRegister("tags_args", TokenMeta{}, constResolver("TA"))
	e := NewExpander(reg)

	assert.Equal(t, "T TS TA", e.Expand(context.Background(), "%tag% %tags% %tags_args%", nil))
}

func TestExpander_ArgumentsReachResolver(t *testing.T) {
	reg := NewRegistry(nil)
	var seen Arguments
	reg.MustRegister("x", TokenMeta{}, func(_ context.Context, _ *ResolutionContext, args Arguments) (string, bool) {
		seen = args
		return "ok", true
	})
	e := NewExpander(reg)

	out := e.Expand(context.Background(), "[%x(a=1&b= two)%]", nil)
	assert.Equal(t, "[ok]", out)
	assert.Equal(t, "a=1&b= two", seen.Raw())
	assert.Equal(t, map[string]string{"a": "1", "b": " two"}, seen.Map())
}

func TestExpander_ArgumentClauseEndsAtFirstTerminator(t *testing.T) {
	reg := NewRegistry(nil)
	reg.MustRegister("x", TokenMeta{}, func(_ context.Context, _ *ResolutionContext, args Arguments) (string, bool) {
		return "<" + args.Raw() + ">", true
	})
	e := NewExpander(reg)

	assert.Equal(t, "<a> b)%", e.Expand(context.Background(), "%x(a)% b)%", nil))
}

func TestExpander_NullResolverWritesEmpty(t *testing.T) {
	reg := NewRegistry(nil)
	reg.MustRegister("none", TokenMeta{}, nullResolver)
	e := NewExpander(reg)

	assert.Equal(t, "a  b", e.Expand(context.Background(), "a %none% b", nil))
}

func TestExpander_EmptyRegistry(t *testing.T) {
	e := NewExpander(NewRegistry(nil))
	assert.Equal(t, "%title%", e.Expand(context.Background(), "%title%", nil))
}

func TestExpander_Multibyte(t *testing.T) {
	reg := NewRegistry(nil)
	reg.MustRegister("name", TokenMeta{}, constResolver("Zoë"))
	e := NewExpander(reg)

	assert.Equal(t, "¡Hola Zoë! 日本", e.Expand(context.Background(), "¡Hola %name%! 日本", nil))
}

func TestExpander_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	reg := NewRegistry(logger)
	reg.MustRegister("none", TokenMeta{}, nullResolver)
	e := NewExpander(reg, WithLogger(logger))
	e.Expand(context.Background(), "%none%", nil)

	assert.Equal(t, 1, logs.FilterMessage(LogMsgResolverNull).Len())
	entry := logs.FilterMessage(LogMsgExpandStart).All()
	require.Len(t, entry, 1)
	assert.Equal(t, int64(1), entry[0].ContextMap()[LogFieldMatches])
}

func TestExpander_LargeTemplate(t *testing.T) {
	e := newTestExpander(t, newFakeSource())
	rc := NewResolutionContext(nil, postFields(), Flags{}, Archive{})

	tmpl := strings.Repeat("%tag%,", 1000)
	got := expand(t, e, tmpl, rc)
	assert.Equal(t, strings.Repeat("api,", 1000), got)
}
