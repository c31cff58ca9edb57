package replvars

import (
	"context"
	"time"

	"github.com/itsatony/go-replvars/internal"
)

// Term is a taxonomy term attached to a post.
type Term struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

// EntitySource supplies the data resolvers look up beyond the snapshot
// fields. Implementations are expected to be fast point lookups.
type EntitySource interface {
	// Title returns the title of any post by id.
	Title(ctx context.Context, id int64) (string, error)

	// Terms returns the terms of taxonomy attached to the post.
	Terms(ctx context.Context, id int64, taxonomy string) ([]Term, error)

	// PasswordRequired reports whether the post content is gated for the
	// current visitor.
	PasswordRequired(ctx context.Context, id int64) (bool, error)
}

// DateFormatter supplies the site date format and renders dates.
type DateFormatter interface {
	DefaultFormat() string
	Format(format string, t time.Time) string
}

// PHPDateFormatter formats PHP date() patterns ("F jS, Y").
type PHPDateFormatter struct {
	defaultFormat string
}

// NewPHPDateFormatter creates a formatter with the given site default.
// An empty default falls back to DefaultDateFormat.
func NewPHPDateFormatter(defaultFormat string) *PHPDateFormatter {
	if defaultFormat == "" {
		defaultFormat = DefaultDateFormat
	}
	return &PHPDateFormatter{defaultFormat: defaultFormat}
}

// DefaultFormat returns the site date format.
func (f *PHPDateFormatter) DefaultFormat() string {
	return f.defaultFormat
}

// Format renders t using a PHP date() pattern.
func (f *PHPDateFormatter) Format(format string, t time.Time) string {
	return internal.FormatPHPDate(format, t)
}

// noopSource answers every lookup with "nothing".
type noopSource struct{}

func (noopSource) Title(context.Context, int64) (string, error) { return "", nil }

func (noopSource) Terms(context.Context, int64, string) ([]Term, error) { return nil, nil }

func (noopSource) PasswordRequired(context.Context, int64) (bool, error) { return false, nil }
