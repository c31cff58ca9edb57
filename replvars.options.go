package replvars

import (
	"time"

	"go.uber.org/zap"
)

// Option is a functional option shared by the expander and the post variables.
type Option func(*config)

// config holds the internal configuration.
type config struct {
	logger         *zap.Logger
	formatter      DateFormatter
	clock          func() time.Time
	excerptLength  int
	separator      string
	maxSuggestions int
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		logger:         nil,
		formatter:      nil,
		clock:          time.Now,
		excerptLength:  DefaultExcerptLength,
		separator:      DefaultSeparator,
		maxSuggestions: DefaultMaxSuggestions,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.formatter == nil {
		cfg.formatter = NewPHPDateFormatter(DefaultDateFormat)
	}
	return cfg
}

// WithLogger sets the logger.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDateFormatter sets the date format source.
// Default: PHPDateFormatter with DefaultDateFormat
func WithDateFormatter(f DateFormatter) Option {
	return func(c *config) {
		c.formatter = f
	}
}

// WithClock sets the time source used for listing examples.
// Default: time.Now
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithExcerptLength sets the maximum length of generated excerpts in runes.
// Non-positive values are ignored.
// Default: 155
func WithExcerptLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.excerptLength = n
		}
	}
}

// WithDefaultSeparator sets the join string used by term lists when the
// template gives no separator argument.
// Default: ", "
func WithDefaultSeparator(sep string) Option {
	return func(c *config) {
		if sep != "" {
			c.separator = sep
		}
	}
}

// WithMaxSuggestions bounds "did you mean" hints in Analyze.
// Default: 3
func WithMaxSuggestions(n int) Option {
	return func(c *config) {
		c.maxSuggestions = n
	}
}

// WithConfig applies a loaded file configuration.
func WithConfig(fc *Config) Option {
	return func(c *config) {
		if fc == nil {
			return
		}
		c.formatter = NewPHPDateFormatter(fc.DateFormat)
		if fc.ExcerptLength > 0 {
			c.excerptLength = fc.ExcerptLength
		}
		if fc.Separator != "" {
			c.separator = fc.Separator
		}
	}
}
