package content

import (
	"strings"
)

// IndexEntry is one row of the search dropdown.
type IndexEntry struct {
	Page      string `json:"page"`
	PageTitle string `json:"page_title"`
	Section   string `json:"section"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	URL       string `json:"url"`
}

// BuildIndex lists every section of every page, in display order.
// pageURL maps a page slug to its link target, e.g. "/trial" or "trial.html".
func BuildIndex(site *Site, pageURL func(slug string) string) []IndexEntry {
	var entries []IndexEntry
	for _, p := range site.Pages {
		for _, sec := range p.Sections {
			title := sec.Title
			if title == "" {
				title = p.Title
			}
			entries = append(entries, IndexEntry{
				Page:      p.Slug,
				PageTitle: p.Title,
				Section:   sec.ID,
				Title:     title,
				Text:      sec.SearchKeywords(),
				URL:       pageURL(p.Slug) + "#" + sec.ID,
			})
		}
	}
	return entries
}

// Lookup returns the entries whose title or text contains query, ignoring
// case. A blank query returns nothing. limit <= 0 means no limit.
func Lookup(entries []IndexEntry, query string, limit int) []IndexEntry {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []IndexEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), q) || strings.Contains(strings.ToLower(e.Text), q) {
			out = append(out, e)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}
