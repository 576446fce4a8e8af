package site

import "github.com/ziadkadry99/casefile/internal/search"

// Hit is one shown section or part after a render pass, with the fragments
// that contain a match.
type Hit struct {
	Page      string         `json:"page"`
	Section   string         `json:"section"`
	Title     string         `json:"title,omitempty"`
	Digest    string         `json:"digest"`
	Fragments []FragmentView `json:"fragments"`
}

// Hits lists the sections and parts a query selected, in page order.
// Container sections are always shown on the page but are not hits
// themselves; their visible parts are. An empty query selects everything.
func Hits(view PageView) []Hit {
	var out []Hit
	for _, sec := range view.Sections {
		if !sec.Visible {
			continue
		}
		title := sec.Title.Text()
		if !sec.Container {
			frags := append(matched([]FragmentView{sec.Title}), matchedBlocks(sec.Blocks)...)
			out = append(out, Hit{Page: view.Slug, Section: sec.ID, Title: title, Digest: sec.Digest, Fragments: frags})
		}
		for _, p := range sec.Parts {
			if p.Visible {
				out = append(out, Hit{Page: view.Slug, Section: p.ID, Title: title, Digest: p.Digest, Fragments: matchedBlocks(p.Blocks)})
			}
		}
	}
	return out
}

func matchedBlocks(blocks []BlockView) []FragmentView {
	var frags []FragmentView
	for _, b := range blocks {
		if b.Text != nil {
			frags = append(frags, *b.Text)
		}
		frags = append(frags, b.Items...)
		if b.Caption != nil {
			frags = append(frags, *b.Caption)
		}
	}
	return matched(frags)
}

func matched(frags []FragmentView) []FragmentView {
	out := make([]FragmentView, 0, len(frags))
	for _, f := range frags {
		if search.HasMatch(f.Segments) {
			out = append(out, f)
		}
	}
	return out
}
