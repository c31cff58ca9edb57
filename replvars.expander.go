package replvars

import (
	"context"
	"strings"

	"github.com/itsatony/go-replvars/internal"
	"go.uber.org/zap"
)

// Expander substitutes registered tokens in template strings.
type Expander struct {
	registry *Registry
	cfg      *config
	logger   *zap.Logger
}

// NewExpander creates an expander over reg.
func NewExpander(reg *Registry, opts ...Option) *Expander {
	cfg := newConfig(opts)
	return &Expander{
		registry: reg,
		cfg:      cfg,
		logger:   cfg.logger,
	}
}

// Expand replaces every registered token occurrence in tmpl. Unknown tokens
// stay as literal text; a resolver without a value contributes "".
// Expansion never fails.
func (e *Expander) Expand(ctx context.Context, tmpl string, rc *ResolutionContext) string {
	occs := internal.Scan(tmpl, e.registry.Names())
	if len(occs) == 0 {
		return tmpl
	}
	if rc == nil {
		rc = NewResolutionContext(nil, nil, Flags{}, Archive{})
	}

	e.logger.Debug(LogMsgExpandStart,
		zap.Int(LogFieldLength, len(tmpl)),
		zap.Int(LogFieldMatches, len(occs)),
	)

	var sb strings.Builder
	sb.Grow(len(tmpl))
	last := 0
	for _, occ := range occs {
		sb.WriteString(tmpl[last:occ.Start])
		last = occ.End

		def, ok := e.registry.Get(occ.Name)
		if !ok {
			// registry changed between scan and lookup
			sb.WriteString(occ.Text(tmpl))
			continue
		}

		args := NoArgs()
		if occ.HasArgs {
			args = ParseArgs(occ.RawArgs)
		}
		value, ok := def.Resolver(ctx, rc, args)
		if !ok {
			e.logger.Debug(LogMsgResolverNull, zap.String(LogFieldToken, occ.Name))
			continue
		}
		sb.WriteString(value)
	}
	sb.WriteString(tmpl[last:])

	e.logger.Debug(LogMsgExpandComplete, zap.Int(LogFieldLength, sb.Len()))
	return sb.String()
}

// Registry returns the registry the expander reads from.
func (e *Expander) Registry() *Registry {
	return e.registry
}
