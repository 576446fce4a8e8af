package search

import (
	"iter"
	"strings"
)

// Segment is a contiguous span of a text fragment. Matched segments are the
// spans equal to the query under case folding; their Content keeps the
// casing of the source text.
type Segment struct {
	Content string `json:"content"`
	Matched bool   `json:"matched"`
}

// Highlight splits text on every occurrence of query. Concatenating the
// Content of all yielded segments reproduces text exactly. An empty or
// whitespace-only query yields text as a single unmatched segment.
//
// The returned sequence is lazy and can be ranged over more than once.
func Highlight(text, query string) iter.Seq[Segment] {
	return NewMatcher(query).Highlight(text)
}

// Highlight is the compiled form of the package-level Highlight.
func (m *Matcher) Highlight(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if m.Empty() {
			yield(Segment{Content: text})
			return
		}
		pos := 0
		for {
			start, end := m.Index(text, pos)
			if start < 0 {
				break
			}
			if start > pos {
				if !yield(Segment{Content: text[pos:start]}) {
					return
				}
			}
			if !yield(Segment{Content: text[start:end], Matched: true}) {
				return
			}
			pos = end
		}
		if pos < len(text) || pos == 0 {
			yield(Segment{Content: text[pos:]})
		}
	}
}

// Segments collects Highlight(text, query) into a slice.
func Segments(text, query string) []Segment {
	return NewMatcher(query).Segments(text)
}

// Segments collects m.Highlight(text) into a slice.
func (m *Matcher) Segments(text string) []Segment {
	var out []Segment
	for seg := range m.Highlight(text) {
		out = append(out, seg)
	}
	return out
}

// Join concatenates segment contents. For any output of Highlight it returns
// the original text.
func Join(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Content)
	}
	return b.String()
}

// HasMatch reports whether any segment is matched.
func HasMatch(segs []Segment) bool {
	for _, s := range segs {
		if s.Matched {
			return true
		}
	}
	return false
}

// Mark renders segments as plain text, wrapping matched spans in open and
// close. Used by the CLI and MCP output.
func Mark(segs []Segment, open, close string) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Matched {
			b.WriteString(open)
			b.WriteString(s.Content)
			b.WriteString(close)
			continue
		}
		b.WriteString(s.Content)
	}
	return b.String()
}
