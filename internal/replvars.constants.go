package internal

// Scanner character constants
const (
	CharTokenDelim = '%'
	CharArgOpen    = '('
	CharArgClose   = ')'
	CharUnderscore = '_'
	CharHyphen     = '-'
	CharNewline    = '\n'
	CharBackslash  = '\\'
)

// StrArgTerminator closes a parenthesized argument clause.
const StrArgTerminator = ")%"

// Suggestion tuning
const (
	DefaultMaxSuggestions  = 3
	MinSuggestionDistance  = 2
	DefaultMaxAvailableKey = 5
)

// Markup elements whose text content is dropped entirely when stripping tags
const (
	ElemScript = "script"
	ElemStyle  = "style"
)
