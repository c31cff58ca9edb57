package internal

import (
	"sort"
	"strings"
)

// Occurrence is a single token reference found in a template.
// Start and End are byte offsets covering both delimiters; End is exclusive.
type Occurrence struct {
	Name    string
	RawArgs string
	HasArgs bool
	Start   int
	End     int
}

// Text returns the original template text of the occurrence.
func (o Occurrence) Text(src string) string {
	return src[o.Start:o.End]
}

// SortByMatchPriority orders names longest first, ties alphabetical, so that
// the scanner always prefers the most specific registered name.
func SortByMatchPriority(names []string) {
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
}

// Scan finds every occurrence of a known token in src. names must already be
// ordered by SortByMatchPriority. Text that does not form a complete known
// occurrence is skipped, so unknown tokens never produce a match.
func Scan(src string, names []string) []Occurrence {
	if len(names) == 0 || strings.IndexByte(src, CharTokenDelim) < 0 {
		return nil
	}

	var out []Occurrence
	for i := 0; i < len(src); {
		if src[i] != CharTokenDelim {
			i++
			continue
		}
		occ, ok := matchAt(src, i, names)
		if !ok {
			i++
			continue
		}
		out = append(out, occ)
		i = occ.End
	}
	return out
}

// matchAt tries every name at the delimiter located at pos, longest first.
func matchAt(src string, pos int, names []string) (Occurrence, bool) {
	rest := src[pos+1:]
	for _, name := range names {
		if !strings.HasPrefix(rest, name) {
			continue
		}
		if occ, ok := closeOccurrence(src, pos, name); ok {
			return occ, true
		}
	}
	return Occurrence{}, false
}

// closeOccurrence checks what follows a matched name: either the closing
// delimiter or an argument clause terminated by ")%".
func closeOccurrence(src string, pos int, name string) (Occurrence, bool) {
	after := pos + 1 + len(name)
	if after >= len(src) {
		return Occurrence{}, false
	}

	switch src[after] {
	case CharTokenDelim:
		return Occurrence{Name: name, Start: pos, End: after + 1}, true
	case CharArgOpen:
		idx := strings.Index(src[after+1:], StrArgTerminator)
		if idx < 0 {
			return Occurrence{}, false
		}
		argStart := after + 1
		argEnd := argStart + idx
		return Occurrence{
			Name:    name,
			RawArgs: src[argStart:argEnd],
			HasArgs: true,
			Start:   pos,
			End:     argEnd + len(StrArgTerminator),
		}, true
	}
	return Occurrence{}, false
}

// ScanCandidates finds every syntactically valid token reference regardless
// of whether the name is registered. Names consist of ASCII letters, digits,
// underscores and hyphens.
func ScanCandidates(src string) []Occurrence {
	var out []Occurrence
	for i := 0; i < len(src); {
		if src[i] != CharTokenDelim {
			i++
			continue
		}
		j := i + 1
		for j < len(src) && isNameChar(src[j]) {
			j++
		}
		if j == i+1 {
			i++
			continue
		}
		occ, ok := closeOccurrence(src, i, src[i+1:j])
		if !ok {
			i++
			continue
		}
		out = append(out, occ)
		i = occ.End
	}
	return out
}

func isNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == CharUnderscore ||
		c == CharHyphen
}

// LineColumn converts a byte offset into a 1-indexed line and column.
func LineColumn(src string, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	line := 1 + strings.Count(src[:offset], string(CharNewline))
	col := offset + 1
	if idx := strings.LastIndexByte(src[:offset], CharNewline); idx >= 0 {
		col = offset - idx
	}
	return line, col
}
