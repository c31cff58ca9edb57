package replvars

import "time"

// Token delimiters - templates reference tokens as %name% or %name(args)%
const (
	TokenDelimiter = "%"
	ArgOpen        = "("
	ArgClose       = ")"
)

// Post token names
const (
	TokenTitle          = "title"
	TokenParentTitle    = "parent_title"
	TokenExcerpt        = "excerpt"
	TokenExcerptOnly    = "excerpt_only"
	TokenDate           = "date"
	TokenModified       = "modified"
	TokenDateArgs       = "date_args"
	TokenModifiedArgs   = "modified_args"
	TokenCategory       = "category"
	TokenCategories     = "categories"
	TokenCategoriesArgs = "categories_args"
	TokenTag            = "tag"
	TokenTags           = "tags"
	TokenTagsArgs       = "tags_args"
)

// Taxonomy names
const (
	TaxonomyCategory = "category"
	TaxonomyPostTag  = "post_tag"
)

// Argument keys understood by the term-list resolvers
const (
	ArgLimit     = "limit"
	ArgSeparator = "separator"
	ArgExclude   = "exclude"
)

// Argument syntax separators
const (
	ArgPairSeparator  = "&"
	ArgValueSeparator = "="
	ArgListSeparator  = ","
)

// Post field keys of the resolution context
const (
	FieldID           = "ID"
	FieldTitle        = "post_title"
	FieldExcerpt      = "post_excerpt"
	FieldContent      = "post_content"
	FieldDate         = "post_date"
	FieldModified     = "post_modified"
	FieldParent       = "post_parent"
	FieldCategoryName = "cat_name"
)

// FieldValueZero is the host's falsy numeric value; like "" it never
// overrides a default.
const FieldValueZero = "0"

// Resolver defaults
const (
	DefaultSeparator     = ", "
	DefaultExcerptLength = 155
	DefaultDateFormat    = "F j, Y"
	DefaultArgsDateStyle = "F jS, Y"
	UnlimitedTerms       = 0
)

// Example placeholders shown in token listings when no live value exists
const (
	ExampleParentTitle = "Example Parent Title"
	ExampleExcerptOnly = "Post Excerpt Only"
	ExampleCategory    = "Example Category"
	ExampleCategories  = "Example Category 1, Example Category 2"
	ExampleTag         = "Example Tag"
	ExampleTags        = "Example Tag 1, Example Tag 2"
	ExampleTagsArgs    = "Example Tag 1 | Example Tag 2"
)

// Token display names
const (
	DisplayTitle          = "Post Title"
	DisplayParentTitle    = "Post Title of parent page"
	DisplayExcerpt        = "Post Excerpt"
	DisplayDate           = "Date Published"
	DisplayModified       = "Date Modified"
	DisplayDateArgs       = "Date Published (advanced)"
	DisplayModifiedArgs   = "Date Modified (advanced)"
	DisplayCategory       = "Post Category"
	DisplayCategories     = "Post Categories"
	DisplayCategoriesArgs = "Categories (advanced)"
	DisplayTag            = "Post Tag"
	DisplayTags           = "Post Tags"
	DisplayTagsArgs       = "Tags (advanced)"
)

// Token descriptions
const (
	DescTitle          = "Title of the current post/page"
	DescParentTitle    = "Title of the parent page of the current post/page"
	DescExcerpt        = "Excerpt of the current post (or auto-generated if it does not exist)"
	DescExcerptOnly    = "Excerpt of the current post (without auto-generation)"
	DescDate           = "Publication date of the current post/page OR specified date on date archives"
	DescModified       = "Last modification date of the current post/page"
	DescDateArgs       = "Publish date with custom formatting pattern."
	DescModifiedArgs   = "Modified date with custom formatting pattern."
	DescCategory       = "First category (alphabetically) associated to the current post OR current category on category archives"
	DescCategories     = "Comma-separated list of categories associated to the current post"
	DescCategoriesArgs = "Output list of categories associated to the current post, with customization options."
	DescTag            = "First tag (alphabetically) associated to the current post OR current tag on tag archives"
	DescTags           = "Comma-separated list of tags associated to the current post"
	DescTagsArgs       = "Output list of tags associated to the current post, with customization options."
)

// Advertised argument syntax for parameterized tokens
const (
	ArgSyntaxDate = "date(F jS, Y)"
	ArgSyntaxMod  = "modified(F jS, Y)"
	ArgSyntaxCats = "categories(limit=3&separator= | &exclude=12,23)"
	ArgSyntaxTags = "tags(limit=3&separator= | &exclude=12,23)"
)

// Analysis tuning
const (
	DefaultMaxSuggestions = 3
)

// Default tool store settings
const (
	DefaultTablePrefix  = "wp_"
	DefaultQueryTimeout = 30 * time.Second
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyToken  = "token"
	MetaKeyTool   = "tool"
	MetaKeyField  = "field"
	MetaKeyPath   = "path"
	MetaKeyDriver = "driver"
	MetaKeyReason = "reason"
	MetaKeyTable  = "table"
)

// Log message constants
const (
	LogMsgRegistryCreated   = "token registry created"
	LogMsgTokenRegistered   = "token registered"
	LogMsgTokenReplaced     = "token definition replaced"
	LogMsgExpandStart       = "expanding template"
	LogMsgExpandComplete    = "template expanded"
	LogMsgResolverNull      = "resolver produced no value"
	LogMsgSourceFailed      = "entity source lookup failed"
	LogMsgToolRunStart      = "running maintenance tool"
	LogMsgToolRunComplete   = "maintenance tool complete"
	LogMsgToolRunFailed     = "maintenance tool failed"
	LogMsgToolUnsupported   = "unsupported maintenance tool requested"
	LogMsgToolNotConfirmed  = "irreversible tool requested without confirmation"
	LogMsgReviewPostsLookup = "review post lookup failed"
	LogMsgTransientsDeleted = "transients deleted"
)

// Log field constants
const (
	LogFieldToken    = "token"
	LogFieldTool     = "tool"
	LogFieldPostID   = "post_id"
	LogFieldTaxonomy = "taxonomy"
	LogFieldCount    = "count"
	LogFieldMatches  = "matches"
	LogFieldLength   = "length"
	LogFieldError    = "error"
)
