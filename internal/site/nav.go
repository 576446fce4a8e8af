package site

import (
	"strings"

	"github.com/ziadkadry99/casefile/internal/content"
)

// NavLink is one rendered entry of the slide-out menu.
type NavLink struct {
	Label  string
	Href   string
	Active bool // link to the current page
}

// Links maps pages and assets to URLs. The live server and the static export
// lay files out differently.
type Links struct {
	Static bool
}

// Page returns the URL of the page with the given slug.
func (l Links) Page(slug string) string {
	if l.Static {
		return slug + ".html"
	}
	return "/" + slug
}

// About returns the URL of the about page.
func (l Links) About() string { return l.Page("about") }

// Asset returns the URL of a bundled stylesheet or script.
func (l Links) Asset(name string) string {
	if l.Static {
		return name
	}
	return "/static/" + name
}

// Media resolves an image src from content. Absolute URLs pass through.
func (l Links) Media(src string) string {
	if isAbsoluteURL(src) || l.Static {
		return src
	}
	return "/files/" + strings.TrimPrefix(src, "/")
}

// Href resolves a link block target, which is either a page slug or a URL.
func (l Links) Href(site *content.Site, target string) string {
	if isAbsoluteURL(target) || strings.HasPrefix(target, "#") {
		return target
	}
	slug, anchor, _ := strings.Cut(target, "#")
	if _, ok := site.Page(slug); !ok {
		return target
	}
	if anchor != "" {
		return l.Page(slug) + "#" + anchor
	}
	return l.Page(slug)
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "//")
}

// BuildNav resolves a page's nav items. Anchor-only items stay on the page;
// items naming another page link to it, optionally at an anchor.
func BuildNav(site *content.Site, page *content.Page, links Links) []NavLink {
	out := make([]NavLink, 0, len(page.Nav))
	for _, item := range page.Nav {
		link := NavLink{Label: item.Label}
		switch {
		case item.Page == "" || item.Page == page.Slug:
			link.Href = "#" + item.Anchor
			if item.Anchor == "" {
				link.Href = links.Page(page.Slug)
			}
			link.Active = item.Page == page.Slug
		case item.Anchor != "":
			link.Href = links.Page(item.Page) + "#" + item.Anchor
		default:
			link.Href = links.Page(item.Page)
		}
		out = append(out, link)
	}
	return out
}

// PageLinks lists every page of the site for the header menu.
func PageLinks(site *content.Site, current string, links Links) []NavLink {
	out := make([]NavLink, 0, len(site.Pages))
	for _, p := range site.Pages {
		out = append(out, NavLink{Label: p.Title, Href: links.Page(p.Slug), Active: p.Slug == current})
	}
	return out
}
