package replvars

import (
	"strconv"
	"strings"
	"time"

	"github.com/itsatony/go-replvars/internal"
)

// Fields maps post field keys (FieldTitle, FieldDate, ...) to raw values.
type Fields map[string]string

// Flags are the render-mode switches consulted by resolvers.
type Flags struct {
	IsEditScreen bool `yaml:"is_edit_screen"`
	IsSingular   bool `yaml:"is_singular"`
	IsAdmin      bool `yaml:"is_admin"`
	IsArchive    bool `yaml:"is_archive"`
}

// Archive is the ambient query state of an archive listing.
type Archive struct {
	// PostTypeLabel is the plural label of the queried content type.
	PostTypeLabel     string `yaml:"post_type_label"`
	IsPostTypeArchive bool   `yaml:"is_post_type_archive"`
	// IsShopPage marks the storefront page, which keeps its own title.
	IsShopPage bool `yaml:"is_shop_page"`
	// Day, MonthTitle and Year are the date archive query values.
	Day        string    `yaml:"day"`
	MonthTitle string    `yaml:"month_title"`
	Year       string    `yaml:"year"`
	Date       time.Time `yaml:"date"`
}

// ResolutionContext is the read-only per-render snapshot backing resolvers.
type ResolutionContext struct {
	fields  Fields
	flags   Flags
	archive Archive
}

// DefaultFields returns the hard defaults for every supported post field.
func DefaultFields() Fields {
	return Fields{
		FieldID:           "",
		FieldTitle:        "",
		FieldExcerpt:      "",
		FieldContent:      "",
		FieldDate:         "",
		FieldModified:     "",
		FieldParent:       FieldValueZero,
		FieldCategoryName: "",
	}
}

// MergeFields copies defaults and overlays only the non-empty actual values.
// An explicitly empty actual ("" or "0") never shadows a default.
func MergeFields(defaults, actual Fields) Fields {
	merged := make(Fields, len(defaults)+len(actual))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range actual {
		if isEmptyValue(v) {
			continue
		}
		merged[k] = v
	}
	return merged
}

func isEmptyValue(v string) bool {
	return v == "" || v == FieldValueZero
}

// NewResolutionContext builds a context from defaults layered under actual
// field values. A nil defaults map uses DefaultFields.
func NewResolutionContext(defaults, actual Fields, flags Flags, archive Archive) *ResolutionContext {
	if defaults == nil {
		defaults = DefaultFields()
	}
	return &ResolutionContext{
		fields:  MergeFields(defaults, actual),
		flags:   flags,
		archive: archive,
	}
}

// Field returns a merged field value.
func (rc *ResolutionContext) Field(key string) string {
	return rc.fields[key]
}

// Fields returns a copy of the merged fields.
func (rc *ResolutionContext) Fields() Fields {
	out := make(Fields, len(rc.fields))
	for k, v := range rc.fields {
		out[k] = v
	}
	return out
}

// Flags returns the render-mode flags.
func (rc *ResolutionContext) Flags() Flags {
	return rc.flags
}

// Archive returns the ambient archive state.
func (rc *ResolutionContext) Archive() Archive {
	return rc.archive
}

// ID returns the post id, or 0 when absent or malformed.
func (rc *ResolutionContext) ID() int64 {
	return parseID(rc.fields[FieldID])
}

// ParentID returns the parent post id, or 0.
func (rc *ResolutionContext) ParentID() int64 {
	return parseID(rc.fields[FieldParent])
}

// PublishedAt returns the parsed publish date.
func (rc *ResolutionContext) PublishedAt() (time.Time, bool) {
	return internal.ParseStoredDate(rc.fields[FieldDate])
}

// ModifiedAt returns the parsed last-modified date.
func (rc *ResolutionContext) ModifiedAt() (time.Time, bool) {
	return internal.ParseStoredDate(rc.fields[FieldModified])
}

func parseID(s string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
