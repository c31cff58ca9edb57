package replvars

import (
	"context"
	"sync"

	"github.com/itsatony/go-replvars/internal"
	"go.uber.org/zap"
)

// Resolver computes the replacement for one token. The boolean result is
// false when no value is available; the expander then substitutes "".
type Resolver func(ctx context.Context, rc *ResolutionContext, args Arguments) (string, bool)

// TokenMeta carries the descriptive fields of a token definition.
type TokenMeta struct {
	DisplayName string
	Description string
	Example     string
	// ArgSyntax advertises the parameterized form, e.g. "date(F jS, Y)".
	// Empty for tokens that take no arguments.
	ArgSyntax string
}

// TokenDefinition is a registered token. It is immutable once registered.
type TokenDefinition struct {
	Name string
	TokenMeta
	Resolver Resolver
}

// Variable returns the form a template author writes, e.g. "%categories%".
func (d TokenDefinition) Variable() string {
	if d.ArgSyntax != "" {
		return TokenDelimiter + d.ArgSyntax + TokenDelimiter
	}
	return TokenDelimiter + d.Name + TokenDelimiter
}

// Registry holds token definitions. Registration is last-write-wins and
// listing follows first registration order. It is safe for concurrent use;
// writes are expected at startup only.
type Registry struct {
	mu      sync.RWMutex
	defs    map[string]TokenDefinition
	order   []string
	byMatch []string // names, longest first; nil when stale
	logger  *zap.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		defs:   make(map[string]TokenDefinition),
		logger: logger,
	}
}

// Register stores a definition, replacing any previous one with the same name.
func (r *Registry) Register(name string, meta TokenMeta, resolver Resolver) error {
	if name == "" {
		return NewEmptyTokenNameError()
	}
	if resolver == nil {
		return NewNilResolverError(name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[name]; exists {
		r.logger.Debug(LogMsgTokenReplaced, zap.String(LogFieldToken, name))
	} else {
		r.order = append(r.order, name)
		r.byMatch = nil
		r.logger.Debug(LogMsgTokenRegistered, zap.String(LogFieldToken, name))
	}
	r.defs[name] = TokenDefinition{Name: name, TokenMeta: meta, Resolver: resolver}
	return nil
}

// MustRegister registers a definition and panics on error.
func (r *Registry) MustRegister(name string, meta TokenMeta, resolver Resolver) {
	if err := r.Register(name, meta, resolver); err != nil {
		panic(err)
	}
}

// Get retrieves a definition by name.
func (r *Registry) Get(name string) (TokenDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.defs[name]
	return def, ok
}

// Has checks whether a name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.defs[name]
	return ok
}

// Count returns the number of registered tokens.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.defs)
}

// List returns all definitions in registration order.
func (r *Registry) List() []TokenDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TokenDefinition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.defs[name])
	}
	return out
}

// Names returns registered names ordered for longest-match scanning.
// The returned slice must not be modified.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := r.byMatch
	r.mu.RUnlock()
	if names != nil {
		return names
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byMatch == nil {
		sorted := make([]string, len(r.order))
		copy(sorted, r.order)
		internal.SortByMatchPriority(sorted)
		r.byMatch = sorted
	}
	return r.byMatch
}
