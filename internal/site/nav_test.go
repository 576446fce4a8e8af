package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinks(t *testing.T) {
	site := testSite(t)
	live, static := Links{}, Links{Static: true}

	assert.Equal(t, "/trial", live.Page("trial"))
	assert.Equal(t, "trial.html", static.Page("trial"))
	assert.Equal(t, "/about", live.About())
	assert.Equal(t, "about.html", static.About())
	assert.Equal(t, "/static/script.js", live.Asset("script.js"))
	assert.Equal(t, "script.js", static.Asset("script.js"))

	assert.Equal(t, "/files/img/a.jpg", live.Media("/img/a.jpg"))
	assert.Equal(t, "img/a.jpg", static.Media("img/a.jpg"))
	assert.Equal(t, "https://cdn.example.com/a.jpg", live.Media("https://cdn.example.com/a.jpg"))

	assert.Equal(t, "/life#football", live.Href(site, "life#football"))
	assert.Equal(t, "trial.html", static.Href(site, "trial"))
	assert.Equal(t, "#glove", live.Href(site, "#glove"))
	assert.Equal(t, "https://example.com", live.Href(site, "https://example.com"))
	assert.Equal(t, "elsewhere", live.Href(site, "elsewhere"))
}

func TestBuildNav(t *testing.T) {
	site := testSite(t)
	page, _ := site.Page("life")

	got := BuildNav(site, page, Links{})
	assert.Equal(t, []NavLink{
		{Label: "Football", Href: "#football"},
		{Label: "Trial", Href: "/trial"},
		{Label: "Glove", Href: "/trial#glove"},
	}, got)

	pages := PageLinks(site, "trial", Links{Static: true})
	assert.Equal(t, []NavLink{
		{Label: "O.J. Simpson", Href: "life.html"},
		{Label: "Trial of the Century", Href: "trial.html", Active: true},
	}, pages)
}

func TestMarkdownSanitizes(t *testing.T) {
	out, err := NewMarkdown().Render("Hello **world** <img src=x onerror=alert(1)>\n\n<script>alert(1)</script>")
	assert.NoError(t, err)
	assert.Contains(t, string(out), "<strong>world</strong>")
	assert.NotContains(t, string(out), "<script")
	assert.NotContains(t, string(out), "onerror")
}

func TestClampQuery(t *testing.T) {
	assert.Equal(t, "abc", ClampQuery("abcdef", 3))
	assert.Equal(t, "ab", ClampQuery("ab", 3))
	assert.Equal(t, "日本", ClampQuery("日本語", 2))
	assert.Equal(t, "anything", ClampQuery("anything", 0))
}
