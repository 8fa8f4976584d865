package state

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/atomicstack/dirnav/internal/settings"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matcher decides whether a line matches the search query under the active
// gap-search and case-sensitivity modes.
type Matcher struct {
	Gap  settings.GapSearchMode
	Case settings.CaseSensitiveMode
}

// Match reports whether text matches query. An empty query matches
// everything. Modes that match from the start ignore leading whitespace, so
// indented lines can still be found by their first word.
func (m Matcher) Match(query, text string) bool {
	if query == "" {
		return true
	}
	if !m.Gap.Anywhere() {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
	}
	fold := m.folds(query)
	if m.Gap.Gapped() {
		if !m.Gap.Anywhere() && !firstRuneEqual(query, text, fold) {
			return false
		}
		if fold {
			return fuzzy.MatchFold(query, text)
		}
		return fuzzy.Match(query, text)
	}
	if fold {
		query = strings.ToLower(query)
		text = strings.ToLower(text)
	}
	if m.Gap.Anywhere() {
		return strings.Contains(text, query)
	}
	return strings.HasPrefix(text, query)
}

// folds reports whether comparison ignores case. Smart mode is
// case-sensitive only once the query contains an upper-case letter.
func (m Matcher) folds(query string) bool {
	switch m.Case {
	case settings.CaseIgnore:
		return true
	case settings.CaseSensitive:
		return false
	default:
		return !strings.ContainsFunc(query, unicode.IsUpper)
	}
}

func firstRuneEqual(query, text string, fold bool) bool {
	q, _ := utf8.DecodeRuneInString(query)
	t, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return false
	}
	if fold {
		return unicode.ToLower(q) == unicode.ToLower(t)
	}
	return q == t
}
