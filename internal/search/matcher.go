package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matcher finds literal, case-insensitive occurrences of a query in text.
// The query is never interpreted as a pattern, so characters like "(" or "*"
// match themselves.
type Matcher struct {
	query string
	runes []rune
}

// NewMatcher compiles query into a Matcher. A query that is empty or only
// whitespace produces an empty Matcher which never matches.
func NewMatcher(query string) *Matcher {
	m := &Matcher{query: query}
	if strings.TrimSpace(query) == "" {
		return m
	}
	m.runes = []rune(query)
	return m
}

// Query returns the raw query the matcher was built from.
func (m *Matcher) Query() string { return m.query }

// Empty reports whether the matcher has nothing to look for.
func (m *Matcher) Empty() bool { return len(m.runes) == 0 }

// Index returns the byte offsets [start, end) of the first match in text at
// or after byte offset from. It returns -1, -1 when there is no match.
// Offsets always refer to text, so text[start:end] keeps the source casing.
func (m *Matcher) Index(text string, from int) (int, int) {
	if m.Empty() || from < 0 || from >= len(text) {
		return -1, -1
	}
	for start := from; start < len(text); {
		if end, ok := m.matchAt(text, start); ok {
			return start, end
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}
	return -1, -1
}

// Count returns the number of non-overlapping matches in text.
func (m *Matcher) Count(text string) int {
	n := 0
	for from := 0; ; {
		_, end := m.Index(text, from)
		if end < 0 {
			return n
		}
		n++
		from = end
	}
}

// matchAt compares the query against text starting at byte offset start,
// rune by rune under simple case folding.
func (m *Matcher) matchAt(text string, start int) (int, bool) {
	pos := start
	for _, qr := range m.runes {
		if pos >= len(text) {
			return 0, false
		}
		tr, size := utf8.DecodeRuneInString(text[pos:])
		if tr == utf8.RuneError && size == 1 {
			// Invalid bytes never match, not even a U+FFFD query rune.
			return 0, false
		}
		if !equalFoldRune(tr, qr) {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

// equalFoldRune reports whether a and b are equal under simple Unicode case
// folding.
func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
