package internal

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// StripTags removes all markup from s. The contents of script and style
// elements are dropped along with their tags; other text is kept as written
// (entities are not decoded). The result is trimmed.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skipDepth := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way keep what was read
			return strings.TrimSpace(sb.String())
		case html.StartTagToken:
			if isSkippedElement(z) {
				skipDepth++
			}
		case html.EndTagToken:
			if skipDepth > 0 && isSkippedElement(z) {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(z.Raw())
			}
		}
	}
}

func isSkippedElement(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	tag := string(name)
	return tag == ElemScript || tag == ElemStyle
}

// CollapseWhitespace replaces every run of whitespace with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateAtWord shortens s to at most maxRunes runes, cutting at the last
// whitespace inside the limit. A single word longer than the limit is cut
// hard. Trailing whitespace is removed from the result.
func TruncateAtWord(s string, maxRunes int) string {
	runes := []rune(s)
	if maxRunes <= 0 || len(runes) <= maxRunes {
		return s
	}

	// the limit already falls on a boundary
	if unicode.IsSpace(runes[maxRunes]) {
		return strings.TrimRightFunc(string(runes[:maxRunes]), unicode.IsSpace)
	}

	cut := runes[:maxRunes]
	for i := len(cut) - 1; i > 0; i-- {
		if unicode.IsSpace(cut[i]) {
			return strings.TrimRightFunc(string(cut[:i]), unicode.IsSpace)
		}
	}
	return string(cut)
}

// StripSlashes removes escaping backslashes: a backslash is dropped and the
// character after it kept, so "\\" becomes "\".
func StripSlashes(s string) string {
	if !strings.ContainsRune(s, CharBackslash) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	escaped := false
	for _, r := range s {
		if r == CharBackslash && !escaped {
			escaped = true
			continue
		}
		escaped = false
		sb.WriteRune(r)
	}
	return sb.String()
}
