package replvars

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// termList resolves the terms of taxonomy attached to the current post.
// With single set only the alphabetically first name is returned. Otherwise
// the exclude, limit and separator arguments shape a joined list. No terms
// yields "", which callers map to "no value".
func (v *PostVariables) termList(ctx context.Context, rc *ResolutionContext, taxonomy string, single bool, args Arguments) string {
	id := rc.ID()
	if id == 0 {
		return ""
	}

	terms, err := v.source.Terms(ctx, id, taxonomy)
	if err != nil {
		v.logger.Warn(LogMsgSourceFailed,
			zap.Int64(LogFieldPostID, id),
			zap.String(LogFieldTaxonomy, taxonomy),
			zap.Error(err),
		)
		return ""
	}
	if len(terms) == 0 {
		return ""
	}

	sorted := make([]Term, len(terms))
	copy(sorted, terms)
	sortTermsByName(sorted)

	if single {
		return sorted[0].Name
	}

	exclude := args.IDSet(ArgExclude)
	names := make([]string, 0, len(sorted))
	for _, term := range sorted {
		if _, skip := exclude[term.ID]; skip {
			continue
		}
		names = append(names, term.Name)
	}

	if limit := args.Int(ArgLimit, UnlimitedTerms); limit > UnlimitedTerms && len(names) > limit {
		names = names[:limit]
	}

	return strings.Join(names, args.GetDefault(ArgSeparator, v.cfg.separator))
}

// sortTermsByName orders terms case-insensitively by name, ties by id.
func sortTermsByName(terms []Term) {
	sort.SliceStable(terms, func(i, j int) bool {
		a, b := strings.ToLower(terms[i].Name), strings.ToLower(terms[j].Name)
		if a != b {
			return a < b
		}
		return terms[i].ID < terms[j].ID
	})
}
