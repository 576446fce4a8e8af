package site

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/casefile/internal/content"
	"github.com/ziadkadry99/casefile/internal/logging"
	"github.com/ziadkadry99/casefile/internal/search"
)

const (
	defaultSearchLimit = 8
	maxSearchLimit     = 50
	maxHighlightBody   = 1 << 20
)

// Handler serves the live site: HTML pages, the JSON API and the websocket
// search session.
type Handler struct {
	renderer *Renderer
	index    []content.IndexEntry
	assetDir string
	log      *logrus.Entry
}

// NewHandler creates a Handler around a live (non-static) renderer. assetDir
// may be empty.
func NewHandler(r *Renderer, assetDir string) *Handler {
	return &Handler{
		renderer: r,
		index:    SearchIndex(r.Site(), r.Links()),
		assetDir: assetDir,
		log:      logging.Component("site"),
	}
}

// Routes registers every site route on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/about", h.handleAbout)
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/script.js", serveAsset("application/javascript; charset=utf-8", jsContent))
	if h.assetDir != "" {
		r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(h.assetDir))))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/pages", h.handleListPages)
		r.Get("/pages/{slug}/render", h.handleRenderPage)
		r.Get("/search", h.handleSearch)
		r.Post("/highlight", h.handleHighlight)
	})

	r.Get("/ws", h.handleWebSocket)
	r.Get("/{slug}", h.handlePage)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.notFound(w, strings.Trim(r.URL.Path, "/"))
	})
}

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	home := h.renderer.Site().Home()
	if home == nil {
		h.notFound(w, "")
		return
	}
	h.renderPage(w, home.Slug, r.URL.Query().Get("q"))
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, ok := h.renderer.Site().Page(slug); !ok {
		h.notFound(w, slug)
		return
	}
	h.renderPage(w, slug, r.URL.Query().Get("q"))
}

func (h *Handler) renderPage(w http.ResponseWriter, slug, query string) {
	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, slug, query); err != nil {
		h.log.WithError(err).WithField("page", slug).Error("render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (h *Handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.renderer.About(&buf); err != nil {
		h.log.WithError(err).Error("render about")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (h *Handler) notFound(w http.ResponseWriter, slug string) {
	var buf bytes.Buffer
	if err := h.renderer.NotFound(&buf, slug); err != nil {
		http.NotFound(w, nil)
		return
	}
	writeHTML(w, http.StatusNotFound, buf.Bytes())
}

// pageSummary is one entry of GET /api/pages.
type pageSummary struct {
	Slug     string           `json:"slug"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle,omitempty"`
	URL      string           `json:"url"`
	Sections []sectionSummary `json:"sections"`
}

type sectionSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Digest string `json:"digest,omitempty"`
	Parts  int    `json:"parts,omitempty"`
}

func (h *Handler) handleListPages(w http.ResponseWriter, r *http.Request) {
	site := h.renderer.Site()
	out := make([]pageSummary, 0, len(site.Pages))
	for _, p := range site.Pages {
		ps := pageSummary{
			Slug:     p.Slug,
			Title:    p.Title,
			Subtitle: p.Subtitle,
			URL:      h.renderer.Links().Page(p.Slug),
			Sections: make([]sectionSummary, 0, len(p.Sections)),
		}
		for _, sec := range p.Sections {
			ps.Sections = append(ps.Sections, sectionSummary{
				ID:     sec.ID,
				Title:  sec.Title,
				Digest: sec.Digest,
				Parts:  len(sec.Parts),
			})
		}
		out = append(out, ps)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleRenderPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, ok := h.renderer.Site().Page(slug)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown page: "+slug)
		return
	}
	query := h.renderer.ClampQuery(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, RenderPage(page, query))
}

// searchResponse is the JSON response for GET /api/search.
type searchResponse struct {
	Query   string               `json:"query"`
	Results []content.IndexEntry `json:"results"`
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := h.renderer.ClampQuery(r.URL.Query().Get("q"))

	limit := defaultSearchLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxSearchLimit)
	}

	results := content.Lookup(h.index, query, limit)
	if results == nil {
		results = []content.IndexEntry{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: results})
}

// highlightRequest is the JSON body for POST /api/highlight.
type highlightRequest struct {
	Text  string `json:"text"`
	Query string `json:"query"`
}

type highlightResponse struct {
	Segments []search.Segment `json:"segments"`
	Matches  int              `json:"matches"`
}

func (h *Handler) handleHighlight(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxHighlightBody)
	var req highlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m := search.NewMatcher(h.renderer.ClampQuery(req.Query))
	segs := m.Segments(req.Text)
	matches := 0
	for _, s := range segs {
		if s.Matched {
			matches++
		}
	}
	writeJSON(w, http.StatusOK, highlightResponse{Segments: segs, Matches: matches})
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.Write([]byte(body))
	}
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
