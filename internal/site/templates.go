package site

// layoutTemplate wraps every page. Each view defines "title" and "content".
const layoutTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{template "title" .}} - {{.SiteName}}</title>
  <link rel="stylesheet" href="{{asset "style.css"}}">
</head>
<body data-mode="{{.Mode}}" data-page="{{.Slug}}" data-hl="{{.HighlightClass}}" data-max="{{.MaxQueryLength}}" data-index="{{.IndexURL}}">
  <nav class="sidebar" id="sidebar" aria-label="Site menu">
    <div class="sidebar-header">
      <h2 class="project-title">{{.SiteName}}</h2>
      <button class="sidebar-close" id="sidebar-close" aria-label="Close menu">&times;</button>
    </div>
    <ul class="nav-list">
      {{range .Nav}}<li><a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a></li>
      {{end}}
    </ul>
    <div class="nav-pages">
      <h3>Pages</h3>
      <ul class="nav-list">
        {{range .Pages}}<li><a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a></li>
        {{end}}<li><a href="{{.AboutURL}}">About</a></li>
      </ul>
    </div>
    {{if .QuickFacts}}<div class="quick-facts">
      <h3>Quick Facts</h3>
      <ul>
        {{range .QuickFacts}}<li>{{.}}</li>
        {{end}}
      </ul>
    </div>{{end}}
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <header class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Open menu">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      {{if .Searchable}}<form class="search-bar" id="search-form" method="get" action="{{.FormAction}}" role="search">
        <input type="search" id="search-input" name="q" value="{{.Query}}" maxlength="{{.MaxQueryLength}}" placeholder="Search sections..." autocomplete="off" aria-label="Search">
        <button type="button" class="search-clear" id="search-clear" aria-label="Clear search"{{if not .Query}} hidden{{end}}>&times;</button>
        <div class="search-results" id="search-results" hidden></div>
      </form>
      <span class="match-count" id="match-count">{{if .Query}}{{.MatchCount}} matches{{end}}</span>{{end}}
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </header>
    <article class="page-content">
      {{template "content" .}}
    </article>
    <footer class="site-footer">{{.Footer}}</footer>
  </main>
  <script src="{{asset "script.js"}}"></script>
</body>
</html>`

// pageContentTemplate renders the sections of one page.
const pageContentTemplate = `{{define "title"}}{{.Page.Title}}{{end}}
{{define "content"}}
<div class="page-heading">
  <h1>{{.Page.Title}}</h1>
  {{with .Page.Subtitle}}<p class="subtitle">{{.}}</p>{{end}}
</div>
<p class="no-results" id="no-results"{{if not .NoResults}} hidden{{end}}>No sections match your search.</p>
{{range .Page.Sections}}
<section id="{{.ID}}" class="case-section{{if .Container}} container{{end}}"{{if .Container}} data-container{{else}} data-digest="{{.Digest}}"{{end}}{{if not .Visible}} hidden{{end}}>
  {{if .Title.Text}}<h2>{{frag .Title}}</h2>{{end}}
  {{template "blocks" .Blocks}}
  {{range .Parts}}<div id="{{.ID}}" class="part" data-digest="{{.Digest}}"{{if not .Visible}} hidden{{end}}>
    {{template "blocks" .Blocks}}
  </div>
  {{end}}
  {{with .Next}}<a class="next-link" href="#{{.}}">Continue &darr;</a>{{end}}
</section>
{{end}}
{{end}}
{{define "blocks"}}{{range .}}{{template "block" .}}{{end}}{{end}}
{{define "block"}}
{{- if eq .Kind "heading"}}<h3>{{with .Text}}{{frag .}}{{end}}</h3>
{{- else if eq .Kind "paragraph"}}<p>{{with .Text}}{{frag .}}{{end}}</p>
{{- else if eq .Kind "quote"}}<blockquote>{{with .Text}}{{frag .}}{{end}}</blockquote>
{{- else if eq .Kind "list"}}{{with .Text}}<p class="list-title">{{frag .}}</p>{{end}}<ul>{{range .Items}}<li>{{frag .}}</li>{{end}}</ul>
{{- else if eq .Kind "facts"}}{{with .Text}}<p class="list-title">{{frag .}}</p>{{end}}<ul class="facts">{{range .Items}}<li>{{frag .}}</li>{{end}}</ul>
{{- else if eq .Kind "image"}}<figure><img src="{{media .Src}}" alt="{{.Alt}}" loading="lazy">{{with .Caption}}<figcaption>{{frag .}}</figcaption>{{end}}</figure>
{{- else if eq .Kind "video"}}<figure class="video"><div class="video-frame"><iframe src="{{.Src}}" title="{{with .Caption}}{{.Text}}{{else}}Video{{end}}" allow="accelerometer; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share" referrerpolicy="strict-origin-when-cross-origin" allowfullscreen></iframe></div>{{with .Caption}}<figcaption>{{frag .}}</figcaption>{{end}}</figure>
{{- else if eq .Kind "link"}}<p><a class="button" href="{{href .Href}}">{{with .Text}}{{frag .}}{{end}}</a></p>
{{- end}}
{{end}}`

// aboutContentTemplate renders the markdown about page.
const aboutContentTemplate = `{{define "title"}}About{{end}}
{{define "content"}}<div class="markdown">{{.Body}}</div>{{end}}`

// notFoundContentTemplate is served for unknown slugs.
const notFoundContentTemplate = `{{define "title"}}Not found{{end}}
{{define "content"}}
<div class="page-heading">
  <h1>Page not found</h1>
  <p class="subtitle">There is no page called &ldquo;{{.Slug}}&rdquo;.</p>
</div>
<p><a class="button" href="{{.HomeURL}}">Back to the main story</a></p>
{{end}}`

// cssContent is the full CSS for the site.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #c92a2a;
  --accent-hover: #a61e1e;
  --accent-light: #fff5f5;
  --mark-bg: #ffe066;
  --mark-text: #212529;
  --sidebar-width: 300px;
  --content-max-width: 960px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.1);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #ff8787;
  --accent-hover: #ffa8a8;
  --accent-light: #2b1d26;
  --mark-bg: #f59f00;
  --mark-text: #1a1b26;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 4px 12px rgba(0,0,0,0.4);
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html {
  font-size: 16px;
  scroll-behavior: smooth;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
}

[hidden] { display: none !important; }

a { color: var(--accent); }
a:hover { color: var(--accent-hover); }

/* ============ Sidebar ============ */
.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: fixed;
  top: 0;
  left: 0;
  bottom: 0;
  overflow-y: auto;
  z-index: 200;
  transform: translateX(-100%);
  transition: transform 0.25s ease;
  padding-bottom: 24px;
}

.sidebar.open { transform: translateX(0); box-shadow: var(--shadow-lg); }

.sidebar-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 20px 16px 12px;
  border-bottom: 1px solid var(--border);
}

.project-title {
  font-size: 1.1rem;
  font-weight: 700;
  color: var(--accent);
}

.sidebar-close {
  background: none;
  border: none;
  font-size: 1.6rem;
  color: var(--text-muted);
  cursor: pointer;
}

.nav-list { list-style: none; padding: 8px 0; }
.nav-list a {
  display: block;
  padding: 6px 20px;
  color: var(--text-secondary);
  text-decoration: none;
}
.nav-list a:hover, .nav-list a.active { background: var(--accent-light); color: var(--accent); }

.nav-pages h3, .quick-facts h3 {
  font-size: 0.8rem;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--text-muted);
  padding: 12px 20px 0;
}

.quick-facts ul { list-style: none; padding: 8px 20px; font-size: 0.9rem; }
.quick-facts li { padding: 4px 0; border-bottom: 1px dashed var(--border); }

.sidebar-overlay {
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.4);
  z-index: 150;
  display: none;
}
.sidebar-overlay.visible { display: block; }

/* ============ Top bar & search ============ */
.content { max-width: var(--content-max-width); margin: 0 auto; padding: 0 24px 48px; }

.top-bar {
  position: sticky;
  top: 0;
  z-index: 100;
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 12px 0;
  background: var(--bg);
  border-bottom: 1px solid var(--border);
}

.menu-toggle, .theme-toggle {
  background: none;
  border: none;
  color: var(--text-secondary);
  cursor: pointer;
  padding: 4px;
}

.theme-toggle .moon-icon { display: none; }
[data-theme="dark"] .theme-toggle .sun-icon { display: none; }
[data-theme="dark"] .theme-toggle .moon-icon { display: inline; }

.search-bar { position: relative; flex: 1; display: flex; align-items: center; }

#search-input {
  width: 100%;
  padding: 8px 36px 8px 12px;
  border: 1px solid var(--border);
  border-radius: 6px;
  font-size: 0.95rem;
  background: var(--bg-secondary);
  color: var(--text);
  outline: none;
}
#search-input:focus { border-color: var(--accent); }

.search-clear {
  position: absolute;
  right: 8px;
  background: none;
  border: none;
  font-size: 1.2rem;
  color: var(--text-muted);
  cursor: pointer;
}

.search-results {
  position: absolute;
  top: 100%;
  left: 0;
  right: 0;
  margin-top: 4px;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  box-shadow: var(--shadow-lg);
  max-height: 320px;
  overflow-y: auto;
}
.search-results a {
  display: block;
  padding: 8px 12px;
  text-decoration: none;
  color: var(--text);
  border-bottom: 1px solid var(--border);
}
.search-results a:hover { background: var(--accent-light); }
.search-results .result-page { font-size: 0.75rem; color: var(--text-muted); }

.match-count { font-size: 0.85rem; color: var(--text-muted); white-space: nowrap; }

/* ============ Content ============ */
.page-heading { padding: 40px 0 16px; text-align: center; }
.page-heading h1 { font-size: 2.4rem; }
.subtitle { color: var(--text-secondary); font-size: 1.2rem; }

.no-results { padding: 24px; text-align: center; color: var(--text-muted); }

.case-section {
  margin: 24px 0;
  padding: 24px;
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 10px;
  box-shadow: var(--shadow);
  scroll-margin-top: 72px;
}
.case-section h2 { color: var(--accent); margin-bottom: 12px; }
.case-section h3 { margin: 16px 0 8px; }
.case-section p { margin: 8px 0; }
.case-section ul { margin: 8px 0 8px 24px; }
.case-section ul.facts { list-style: none; margin-left: 0; display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 8px; }
.case-section ul.facts li { background: var(--bg); border: 1px solid var(--border); border-radius: 6px; padding: 8px 12px; }
.case-section blockquote { border-left: 4px solid var(--accent); padding: 8px 16px; font-style: italic; color: var(--text-secondary); }
.case-section figure { margin: 16px 0; text-align: center; }
.case-section img { max-width: 100%; border-radius: 8px; }
.case-section figcaption { font-size: 0.85rem; color: var(--text-muted); }
.part { padding: 12px 0; border-top: 1px solid var(--border); }
.part:first-of-type { border-top: none; }

.video-frame { position: relative; padding-top: 56.25%; }
.video-frame iframe { position: absolute; inset: 0; width: 100%; height: 100%; border: 0; border-radius: 8px; }

.button, .next-link {
  display: inline-block;
  margin-top: 12px;
  padding: 8px 16px;
  border-radius: 6px;
  background: var(--accent);
  color: #fff;
  text-decoration: none;
}
.next-link { background: none; color: var(--accent); padding-left: 0; }

mark {
  background: var(--mark-bg);
  color: var(--mark-text);
  border-radius: 2px;
  padding: 0 1px;
}

.markdown h1, .markdown h2 { margin: 24px 0 12px; }
.markdown p, .markdown ul { margin: 8px 0; }
.markdown ul { padding-left: 24px; }

.site-footer {
  margin-top: 48px;
  padding-top: 16px;
  border-top: 1px solid var(--border);
  text-align: center;
  font-size: 0.85rem;
  color: var(--text-muted);
}

@media (max-width: 640px) {
  .page-heading h1 { font-size: 1.8rem; }
  .case-section { padding: 16px; }
  .match-count { display: none; }
}
`

// jsContent drives the menu, theme and search. In live mode the query is
// sent over a websocket and the server answers with visibility and
// highlights. In static mode, or while the socket is down, the same work is
// done locally from the data-digest attributes. Form mode only submits.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var body = document.body;
  var mode = body.getAttribute("data-mode");
  var page = body.getAttribute("data-page");
  var hlClass = body.getAttribute("data-hl") || "hl";
  var maxLen = parseInt(body.getAttribute("data-max"), 10) || 256;

  // ===== Theme toggle =====
  var themeToggle = document.getElementById("theme-toggle");

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("casefile-theme", theme); } catch(e) {}
  }

  var stored = null;
  try { stored = localStorage.getItem("casefile-theme"); } catch(e) {}
  if (stored) {
    setTheme(stored);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  // ===== Slide-out menu =====
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");

  function setMenu(open) {
    sidebar.classList.toggle("open", open);
    overlay.classList.toggle("visible", open);
  }

  var menuToggle = document.getElementById("menu-toggle");
  var sidebarClose = document.getElementById("sidebar-close");
  if (menuToggle) menuToggle.addEventListener("click", function() { setMenu(true); });
  if (sidebarClose) sidebarClose.addEventListener("click", function() { setMenu(false); });
  if (overlay) overlay.addEventListener("click", function() { setMenu(false); });
  sidebar.querySelectorAll("a").forEach(function(a) {
    a.addEventListener("click", function() { setMenu(false); });
  });

  // ===== Search =====
  var form = document.getElementById("search-form");
  var input = document.getElementById("search-input");
  if (!form || !input) return;

  var clearBtn = document.getElementById("search-clear");
  var results = document.getElementById("search-results");
  var countEl = document.getElementById("match-count");
  var noResults = document.getElementById("no-results");

  function escapeHTML(s) {
    return s.replace(/&/g, "&amp;").replace(/</g, "&lt;").replace(/>/g, "&gt;")
      .replace(/"/g, "&quot;").replace(/'/g, "&#39;");
  }

  function escapeRegExp(s) {
    return s.replace(/[.*+?^${}()|[\]\\]/g, "\\$&");
  }

  function segmentsHTML(segs) {
    var out = "";
    segs.forEach(function(s) {
      out += s.matched
        ? '<mark class="' + hlClass + '">' + escapeHTML(s.content) + "</mark>"
        : escapeHTML(s.content);
    });
    return out;
  }

  function fragEl(id) {
    return document.querySelector('[data-frag="' + CSS.escape(id) + '"]');
  }

  function setCount(query, count) {
    if (countEl) countEl.textContent = query ? count + " matches" : "";
  }

  // Local pass: same rules as the server, run over the DOM.
  function splitLocal(text, query) {
    if (query.trim() === "") return [{content: text, matched: false}];
    var re = new RegExp(escapeRegExp(query), "giu");
    var segs = [], pos = 0, m;
    while ((m = re.exec(text)) !== null) {
      if (m.index > pos) segs.push({content: text.slice(pos, m.index), matched: false});
      segs.push({content: m[0], matched: true});
      pos = m.index + m[0].length;
    }
    if (pos < text.length || pos === 0) segs.push({content: text.slice(pos), matched: false});
    return segs;
  }

  function applyLocal(query) {
    var q = query.toLowerCase();
    var shown = 0, count = 0;
    document.querySelectorAll("[data-digest]").forEach(function(el) {
      var visible = query === "" || el.getAttribute("data-digest").toLowerCase().indexOf(q) !== -1;
      el.hidden = !visible;
      if (visible) shown++;
    });
    document.querySelectorAll("[data-frag]").forEach(function(el) {
      var hidden = el.closest("[hidden]") !== null;
      var segs = splitLocal(el.textContent, hidden ? "" : query);
      segs.forEach(function(s) { if (s.matched) count++; });
      el.innerHTML = segmentsHTML(segs);
    });
    if (noResults) noResults.hidden = !(query.trim() !== "" && shown === 0);
    setCount(query, count);
  }

  function applyUpdate(msg) {
    msg.visible.forEach(function(id) {
      var el = document.getElementById(id);
      if (el) el.hidden = false;
    });
    msg.hidden.forEach(function(id) {
      var el = document.getElementById(id);
      if (el) el.hidden = true;
    });
    Object.keys(msg.fragments).forEach(function(id) {
      var el = fragEl(id);
      if (el) el.innerHTML = segmentsHTML(msg.fragments[id]);
    });
    if (noResults) noResults.hidden = !(msg.query.trim() !== "" && msg.shown === 0);
    setCount(msg.query, msg.count);
  }

  // ===== Live session =====
  var socket = null;
  var ready = false;

  function connect() {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    try {
      socket = new WebSocket(proto + "//" + location.host + "/ws?page=" + encodeURIComponent(page));
    } catch(e) {
      socket = null;
      return;
    }
    socket.addEventListener("open", function() {
      ready = true;
      if (input.value !== "") send(input.value);
    });
    socket.addEventListener("message", function(ev) {
      var msg;
      try { msg = JSON.parse(ev.data); } catch(e) { return; }
      if (msg.type === "update") applyUpdate(msg);
    });
    socket.addEventListener("close", function() {
      ready = false;
      socket = null;
    });
  }

  function send(query) {
    if (query === "") {
      socket.send(JSON.stringify({type: "clear"}));
    } else {
      socket.send(JSON.stringify({type: "query", query: query}));
    }
  }

  function apply(query) {
    if (query.length > maxLen) query = query.slice(0, maxLen);
    if (clearBtn) clearBtn.hidden = query === "";
    if (ready && socket) {
      send(query);
    } else {
      applyLocal(query);
    }
  }

  // ===== Dropdown =====
  var index = null;
  var indexURL = body.getAttribute("data-index");

  function lookup(query, cb) {
    if (mode !== "static") {
      fetch("/api/search?limit=8&q=" + encodeURIComponent(query))
        .then(function(r) { return r.json(); })
        .then(function(data) { cb(data.results || []); })
        .catch(function() { cb([]); });
      return;
    }
    var q = query.toLowerCase();
    cb((index || []).filter(function(e) {
      return e.title.toLowerCase().indexOf(q) !== -1 || e.text.toLowerCase().indexOf(q) !== -1;
    }).slice(0, 8));
  }

  if (mode === "static" && indexURL) {
    fetch(indexURL)
      .then(function(r) { return r.json(); })
      .then(function(data) { index = data; })
      .catch(function() { index = null; });
  }

  function showResults(query) {
    if (query.trim() === "") {
      results.hidden = true;
      results.innerHTML = "";
      return;
    }
    lookup(query, function(entries) {
      if (input.value !== query) return;
      if (entries.length === 0) {
        results.hidden = true;
        return;
      }
      results.innerHTML = entries.map(function(e) {
        return '<a href="' + escapeHTML(e.url) + '"><div>' + segmentsHTML(splitLocal(e.title, query)) +
          '</div><div class="result-page">' + escapeHTML(e.page_title) + "</div></a>";
      }).join("");
      results.hidden = false;
    });
  }

  input.addEventListener("input", function() {
    if (mode !== "form") apply(input.value);
    showResults(input.value);
  });

  // Form mode leaves filtering to the server: the query is submitted as ?q=.
  form.addEventListener("submit", function(e) {
    results.hidden = true;
    if (mode === "form") return;
    e.preventDefault();
    apply(input.value);
  });

  if (clearBtn) {
    clearBtn.addEventListener("click", function() {
      input.value = "";
      results.hidden = true;
      if (mode === "form") {
        form.submit();
        return;
      }
      apply("");
      input.focus();
    });
  }

  document.addEventListener("click", function(e) {
    if (!form.contains(e.target)) results.hidden = true;
  });

  if (mode === "live") connect();
})();
`
