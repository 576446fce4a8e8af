package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/casefile/internal/content"
	"github.com/ziadkadry99/casefile/internal/search"
	"github.com/ziadkadry99/casefile/internal/site"
)

const markOpen, markClose = "**", "**"

// handleSearchContent runs the page filter for every page, or one page, and
// reports the shown sections with their highlighted text.
func (s *Server) handleSearchContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query must not be blank"), nil
	}

	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	pages := s.site.Pages
	if slug := request.GetString("page", ""); slug != "" {
		p, ok := s.site.Page(slug)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown page %q", slug)), nil
		}
		pages = []content.Page{*p}
	}

	var hits []site.Hit
	for i := range pages {
		hits = append(hits, site.Hits(site.RenderPage(&pages[i], query))...)
		if len(hits) >= limit {
			hits = hits[:limit]
			break
		}
	}

	if len(hits) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No sections match %q.", query)), nil
	}
	return mcp.NewToolResultText(formatHits(hits)), nil
}

// formatHits converts search hits into a text format suited to agent
// consumption. Matches are wrapped in ** markers.
func formatHits(hits []site.Hit) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d section(s):\n", len(hits)))

	for i, h := range hits {
		sb.WriteString(fmt.Sprintf("\n--- Result %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("Page: %s\n", h.Page))
		sb.WriteString(fmt.Sprintf("Section: %s\n", h.Section))
		if h.Title != "" {
			sb.WriteString(fmt.Sprintf("Title: %s\n", h.Title))
		}
		sb.WriteString(fmt.Sprintf("Digest: %s\n", h.Digest))
		if len(h.Fragments) > 0 {
			sb.WriteString("\n")
			for _, f := range h.Fragments {
				sb.WriteString("- " + search.Mark(f.Segments, markOpen, markClose) + "\n")
			}
		}
	}

	return sb.String()
}

// handleListPages lists every page and its sections.
func (s *Server) handleListPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n", s.site.Name))
	for _, p := range s.site.Pages {
		sb.WriteString(fmt.Sprintf("\n## %s (%s)\n\n", p.Title, p.Slug))
		for _, sec := range p.Sections {
			title := sec.Title
			if title == "" {
				title = "(untitled)"
			}
			if len(sec.Parts) > 0 {
				sb.WriteString(fmt.Sprintf("- %s: %s [%d parts]\n", sec.ID, title, len(sec.Parts)))
				continue
			}
			sb.WriteString(fmt.Sprintf("- %s: %s\n", sec.ID, title))
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetSection returns one section's text, optionally highlighted.
func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := request.RequireString("page")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: page"), nil
	}
	id, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}

	page, ok := s.site.Page(slug)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown page %q", slug)), nil
	}
	sec, ok := page.Section(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("page %q has no section %q", slug, id)), nil
	}

	m := search.NewMatcher(request.GetString("query", ""))
	var sb strings.Builder
	if sec.Title != "" {
		sb.WriteString(fmt.Sprintf("# %s\n\n", search.Mark(m.Segments(sec.Title), markOpen, markClose)))
	}
	for _, line := range strings.Split(sec.Text(), "\n") {
		if line == "" {
			continue
		}
		sb.WriteString(search.Mark(m.Segments(line), markOpen, markClose))
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}
