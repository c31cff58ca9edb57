package replvars

import (
	"github.com/itsatony/go-replvars/internal"
)

// AnalyzeResult is a dry-run report of the token references in a template.
// No resolver is invoked.
type AnalyzeResult struct {
	// References lists every %name% or %name(args)% occurrence in order.
	References []TokenReference

	// Unknown lists the distinct unregistered names, in order of appearance.
	Unknown []string

	// Warnings holds human-readable hints for unknown tokens.
	Warnings []string
}

// Valid reports whether every reference names a registered token.
func (r AnalyzeResult) Valid() bool {
	return len(r.Unknown) == 0
}

// TokenReference is one token occurrence found by Analyze.
type TokenReference struct {
	Name        string
	Text        string            // original occurrence text
	Arguments   map[string]string // parsed argument pairs
	RawArgs     string
	Offset      int
	Line        int
	Column      int
	Registered  bool
	Suggestions []string // similar registered names when not registered
}

// Warning message prefix for unknown tokens
const WarnMsgUnknownToken = "unknown token '"

// Analyze lists the token references of tmpl without resolving them.
// Registered names are matched longest-first exactly as Expand does; other
// syntactically valid references in the text between them are reported as
// unknown with suggestions.
func (e *Expander) Analyze(tmpl string) AnalyzeResult {
	var result AnalyzeResult
	names := e.registry.Names()
	seenUnknown := make(map[string]bool)

	addUnknown := func(from, to int) {
		for _, occ := range internal.ScanCandidates(tmpl[from:to]) {
			occ.Start += from
			occ.End += from
			ref := e.reference(tmpl, occ, false)
			ref.Suggestions = internal.FindSimilarStrings(occ.Name, names, e.cfg.maxSuggestions)
			if !seenUnknown[occ.Name] {
				seenUnknown[occ.Name] = true
				result.Unknown = append(result.Unknown, occ.Name)
				result.Warnings = append(result.Warnings,
					WarnMsgUnknownToken+occ.Name+"'"+internal.FormatSuggestions(ref.Suggestions))
			}
			result.References = append(result.References, ref)
		}
	}

	prev := 0
	for _, occ := range internal.Scan(tmpl, names) {
		addUnknown(prev, occ.Start)
		result.References = append(result.References, e.reference(tmpl, occ, true))
		prev = occ.End
	}
	addUnknown(prev, len(tmpl))

	return result
}

func (e *Expander) reference(tmpl string, occ internal.Occurrence, registered bool) TokenReference {
	line, col := internal.LineColumn(tmpl, occ.Start)
	ref := TokenReference{
		Name:       occ.Name,
		Text:       occ.Text(tmpl),
		RawArgs:    occ.RawArgs,
		Offset:     occ.Start,
		Line:       line,
		Column:     col,
		Registered: registered,
	}
	if occ.HasArgs {
		ref.Arguments = ParseArgs(occ.RawArgs).Map()
	}
	return ref
}
