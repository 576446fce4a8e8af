package site

import (
	"github.com/ziadkadry99/casefile/internal/content"
	"github.com/ziadkadry99/casefile/internal/search"
)

// FragmentView is one highlightable piece of text. The ID is stable across
// renders so the live session can patch it in place.
type FragmentView struct {
	ID       string           `json:"id"`
	Segments []search.Segment `json:"segments"`
}

// Text returns the fragment's source text.
func (f FragmentView) Text() string { return search.Join(f.Segments) }

// BlockView is a rendered content block.
type BlockView struct {
	Kind    content.BlockKind `json:"kind"`
	Text    *FragmentView     `json:"text,omitempty"`
	Items   []FragmentView    `json:"items,omitempty"`
	Caption *FragmentView     `json:"caption,omitempty"`
	Src     string            `json:"src,omitempty"`
	Alt     string            `json:"alt,omitempty"`
	Href    string            `json:"href,omitempty"`
}

// PartView is one separately filtered group inside a container section.
type PartView struct {
	ID      string      `json:"id"`
	Digest  string      `json:"digest"`
	Visible bool        `json:"visible"`
	Blocks  []BlockView `json:"blocks"`
}

// SectionView is a section after the filter and highlight pass.
type SectionView struct {
	ID        string       `json:"id"`
	Digest    string       `json:"digest,omitempty"`
	Title     FragmentView `json:"title"`
	Container bool         `json:"container"`
	Visible   bool         `json:"visible"`
	Next      string       `json:"next,omitempty"`
	Blocks    []BlockView  `json:"blocks,omitempty"`
	Parts     []PartView   `json:"parts,omitempty"`
}

// PageView is the result of one render pass over a page.
type PageView struct {
	Slug     string        `json:"slug"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle,omitempty"`
	Query    string        `json:"query"`
	Sections []SectionView `json:"sections"`
	// VisibleCount counts shown sections and parts that carry a digest.
	VisibleCount int `json:"visible_count"`
	// MatchCount counts highlighted spans across every shown fragment.
	MatchCount int `json:"match_count"`
}

// TitleID is the fragment id of a section title.
func TitleID(sectionID string) string { return sectionID + "/title" }

// RenderPage runs the filter and highlight pass for page under query. Hidden
// sections and parts are kept, flagged invisible and left unhighlighted.
func RenderPage(page *content.Page, query string) PageView {
	m := search.NewMatcher(query)
	view := PageView{
		Slug:     page.Slug,
		Title:    page.Title,
		Subtitle: page.Subtitle,
		Query:    query,
	}

	for _, sec := range page.Sections {
		sv := SectionView{
			ID:        sec.ID,
			Digest:    sec.Digest,
			Container: sec.IsContainer(),
			Visible:   sec.IsContainer() || search.IsVisible(sec.Digest, query),
			Next:      sec.Next,
		}
		if sv.Visible && !sv.Container {
			view.VisibleCount++
		}

		mm := m
		if !sv.Visible {
			mm = nil
		}
		sv.Title = fragment(mm, TitleID(sec.ID), sec.Title, &view.MatchCount)
		sv.Blocks = renderBlocks(mm, sec.ID, -1, sec.Blocks, &view.MatchCount)

		for pi, part := range sec.Parts {
			pv := PartView{
				ID:      content.PartID(sec.ID, pi),
				Digest:  part.Digest,
				Visible: sv.Visible && search.IsVisible(part.Digest, query),
			}
			pm := m
			if !pv.Visible {
				pm = nil
			} else {
				view.VisibleCount++
			}
			pv.Blocks = renderBlocks(pm, sec.ID, pi, part.Blocks, &view.MatchCount)
			sv.Parts = append(sv.Parts, pv)
		}

		view.Sections = append(view.Sections, sv)
	}
	return view
}

func renderBlocks(m *search.Matcher, sectionID string, part int, blocks []content.Block, count *int) []BlockView {
	out := make([]BlockView, 0, len(blocks))
	for bi, b := range blocks {
		prefix := content.BlockPrefix(sectionID, part, bi)
		bv := BlockView{Kind: b.Kind, Src: b.Src, Alt: b.Alt, Href: b.Href}
		for _, f := range b.Fragments(prefix) {
			fv := fragment(m, f.ID, f.Text, count)
			switch f.ID {
			case prefix + "/t":
				bv.Text = &fv
			case prefix + "/c":
				bv.Caption = &fv
			default:
				bv.Items = append(bv.Items, fv)
			}
		}
		out = append(out, bv)
	}
	return out
}

// fragment highlights text with m. A nil matcher leaves the text whole.
func fragment(m *search.Matcher, id, text string, count *int) FragmentView {
	if m == nil {
		return FragmentView{ID: id, Segments: []search.Segment{{Content: text}}}
	}
	segs := m.Segments(text)
	for _, s := range segs {
		if s.Matched {
			*count++
		}
	}
	return FragmentView{ID: id, Segments: segs}
}

// Fragments returns every fragment of the shown sections and parts, keyed by
// id. Hidden content is left out.
func (v PageView) Fragments() map[string][]search.Segment {
	out := make(map[string][]search.Segment)
	addBlocks := func(blocks []BlockView) {
		for _, b := range blocks {
			if b.Text != nil {
				out[b.Text.ID] = b.Text.Segments
			}
			for _, it := range b.Items {
				out[it.ID] = it.Segments
			}
			if b.Caption != nil {
				out[b.Caption.ID] = b.Caption.Segments
			}
		}
	}
	for _, s := range v.Sections {
		if !s.Visible {
			continue
		}
		out[s.Title.ID] = s.Title.Segments
		addBlocks(s.Blocks)
		for _, p := range s.Parts {
			if p.Visible {
				addBlocks(p.Blocks)
			}
		}
	}
	return out
}

// Visibility splits section and part ids into shown and hidden, in page order.
func (v PageView) Visibility() (visible, hidden []string) {
	visible, hidden = []string{}, []string{}
	put := func(id string, ok bool) {
		if ok {
			visible = append(visible, id)
		} else {
			hidden = append(hidden, id)
		}
	}
	for _, s := range v.Sections {
		put(s.ID, s.Visible)
		for _, p := range s.Parts {
			put(p.ID, p.Visible)
		}
	}
	return visible, hidden
}
