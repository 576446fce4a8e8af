package site

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/ziadkadry99/casefile/internal/content"
	"github.com/ziadkadry99/casefile/internal/search"
)

// Options control how pages are rendered.
type Options struct {
	// Static renders links and assets for the file export instead of the
	// live server.
	Static bool
	// LiveSearch enables the websocket session in the browser script. It is
	// ignored for static output.
	LiveSearch     bool
	HighlightClass string
	MaxQueryLength int
}

// Renderer turns site content into HTML pages.
type Renderer struct {
	site   *content.Site
	opts   Options
	links  Links
	footer template.HTML
	about  template.HTML

	pageTmpl     *template.Template
	aboutTmpl    *template.Template
	notFoundTmpl *template.Template
}

// layoutData is passed to every template.
type layoutData struct {
	SiteName       string
	Slug           string
	Mode           string
	HighlightClass string
	MaxQueryLength int
	IndexURL       string
	FormAction     string
	Searchable     bool
	Query          string
	MatchCount     int
	NoResults      bool
	Nav            []NavLink
	Pages          []NavLink
	AboutURL       string
	HomeURL        string
	QuickFacts     []string
	Footer         template.HTML

	Page PageView
	Body template.HTML
}

// NewRenderer parses the templates and renders the site's markdown once.
func NewRenderer(site *content.Site, opts Options) (*Renderer, error) {
	if opts.HighlightClass == "" {
		opts.HighlightClass = "hl"
	}
	if opts.MaxQueryLength <= 0 {
		opts.MaxQueryLength = 256
	}
	r := &Renderer{site: site, opts: opts, links: Links{Static: opts.Static}}

	md := NewMarkdown()
	var err error
	if r.footer, err = md.Render(site.Footer); err != nil {
		return nil, fmt.Errorf("rendering footer: %w", err)
	}
	if r.about, err = md.Render(site.About); err != nil {
		return nil, fmt.Errorf("rendering about page: %w", err)
	}

	funcs := template.FuncMap{
		"frag":  r.fragmentHTML,
		"asset": r.links.Asset,
		"media": r.links.Media,
		"href":  func(target string) string { return r.links.Href(site, target) },
	}
	parse := func(name, body string) (*template.Template, error) {
		t, err := template.New(name).Funcs(funcs).Parse(layoutTemplate)
		if err != nil {
			return nil, fmt.Errorf("parsing layout template: %w", err)
		}
		if _, err := t.Parse(body); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		return t, nil
	}
	if r.pageTmpl, err = parse("page", pageContentTemplate); err != nil {
		return nil, err
	}
	if r.aboutTmpl, err = parse("about", aboutContentTemplate); err != nil {
		return nil, err
	}
	if r.notFoundTmpl, err = parse("notfound", notFoundContentTemplate); err != nil {
		return nil, err
	}
	return r, nil
}

// Site returns the content being rendered.
func (r *Renderer) Site() *content.Site { return r.site }

// Options returns the renderer's effective options.
func (r *Renderer) Options() Options { return r.opts }

// Links returns the URL scheme used by the renderer.
func (r *Renderer) Links() Links { return r.links }

// ClampQuery shortens query to at most MaxQueryLength runes.
func (r *Renderer) ClampQuery(query string) string {
	return ClampQuery(query, r.opts.MaxQueryLength)
}

// ClampQuery shortens query to at most max runes. max <= 0 means no limit.
func ClampQuery(query string, max int) string {
	if max <= 0 {
		return query
	}
	n := 0
	for i := range query {
		if n == max {
			return query[:i]
		}
		n++
	}
	return query
}

// Page renders the page with the given slug under query.
func (r *Renderer) Page(w io.Writer, slug, query string) error {
	page, ok := r.site.Page(slug)
	if !ok {
		return fmt.Errorf("unknown page %q", slug)
	}
	view := RenderPage(page, r.ClampQuery(query))

	data := r.layout(page.Slug)
	data.Searchable = true
	data.Query = view.Query
	data.MatchCount = view.MatchCount
	data.NoResults = strings.TrimSpace(view.Query) != "" && view.VisibleCount == 0
	data.Nav = BuildNav(r.site, page, r.links)
	data.Page = view
	if !r.opts.Static {
		data.FormAction = r.links.Page(page.Slug)
	}
	return r.pageTmpl.Execute(w, data)
}

// About renders the about page.
func (r *Renderer) About(w io.Writer) error {
	data := r.layout("about")
	data.Body = r.about
	return r.aboutTmpl.Execute(w, data)
}

// NotFound renders the page shown for an unknown slug.
func (r *Renderer) NotFound(w io.Writer, slug string) error {
	data := r.layout(slug)
	return r.notFoundTmpl.Execute(w, data)
}

func (r *Renderer) layout(slug string) layoutData {
	data := layoutData{
		SiteName:       r.site.Name,
		Slug:           slug,
		Mode:           "static",
		HighlightClass: r.opts.HighlightClass,
		MaxQueryLength: r.opts.MaxQueryLength,
		Pages:          PageLinks(r.site, slug, r.links),
		AboutURL:       r.links.About(),
		QuickFacts:     r.site.QuickFacts,
		Footer:         r.footer,
	}
	if home := r.site.Home(); home != nil {
		data.HomeURL = r.links.Page(home.Slug)
	}
	switch {
	case r.opts.Static:
		data.IndexURL = "search-index.json"
	case r.opts.LiveSearch:
		data.Mode = "live"
	default:
		data.Mode = "form"
	}
	return data
}

// fragmentHTML writes a fragment as a span whose matched segments are
// wrapped in mark elements.
func (r *Renderer) fragmentHTML(f FragmentView) template.HTML {
	var b strings.Builder
	fmt.Fprintf(&b, `<span data-frag="%s">`, template.HTMLEscapeString(f.ID))
	b.WriteString(search.Mark(escapeSegments(f.Segments),
		`<mark class="`+template.HTMLEscapeString(r.opts.HighlightClass)+`">`, `</mark>`))
	b.WriteString(`</span>`)
	return template.HTML(b.String())
}

func escapeSegments(segs []search.Segment) []search.Segment {
	out := make([]search.Segment, len(segs))
	for i, s := range segs {
		out[i] = search.Segment{Content: template.HTMLEscapeString(s.Content), Matched: s.Matched}
	}
	return out
}
