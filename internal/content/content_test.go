package content

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSite = `
name: Test Site
quick_facts: ["Case Date: June 12, 1994"]
`

const testPageA = `
slug: alpha
title: Alpha
order: 1
nav:
  - {label: "Top", anchor: "one"}
  - {label: "Beta", page: "beta"}
sections:
  - id: one
    title: One
    digest: "Football Career NFL"
    blocks:
      - kind: heading
        text: "NFL Legend"
      - kind: list
        items: ["Buffalo Bills", "Hall of Fame"]
  - id: people
    title: People
    keywords: "who is who"
    parts:
      - digest: "WHO IS OJ SIMPSON"
        blocks:
          - kind: paragraph
            text: "The Juice"
      - digest: "WHO IS NICOLE"
        blocks:
          - kind: video
            src: "https://www.youtube.com/embed/x"
            caption: "Clip"
`

const testPageB = `
slug: beta
title: Beta
order: 0
sections:
  - id: only
    digest: "Beta digest"
    blocks:
      - kind: paragraph
        text: "hello"
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"site.yaml":        {Data: []byte(testSite)},
		"pages/alpha.yaml": {Data: []byte(testPageA)},
		"pages/beta.yml":   {Data: []byte(testPageB)},
		"README.md":        {Data: []byte("not content")},
	}
}

func TestLoadOrdersPages(t *testing.T) {
	site, err := Load(testFS(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Test Site", site.Name)
	require.Len(t, site.Pages, 2)
	assert.Equal(t, "beta", site.Pages[0].Slug)
	assert.Equal(t, "alpha", site.Pages[1].Slug)
	assert.Equal(t, "beta", site.Home().Slug)

	p, ok := site.Page("alpha")
	require.True(t, ok)
	sec, ok := p.Section("people")
	require.True(t, ok)
	assert.True(t, sec.IsContainer())
	assert.Len(t, sec.Parts, 2)

	_, ok = site.Page("missing")
	assert.False(t, ok)
	_, ok = p.Section("missing")
	assert.False(t, ok)
}

func TestLoadIncludeFilter(t *testing.T) {
	site, err := Load(testFS(), []string{"**/*.yml"})
	require.NoError(t, err)
	require.Len(t, site.Pages, 1)
	assert.Equal(t, "beta", site.Pages[0].Slug)
}

func TestLoadMissingSiteFile(t *testing.T) {
	fsys := testFS()
	delete(fsys, "site.yaml")
	_, err := Load(fsys, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site.yaml")
}

func TestLoadBadYAML(t *testing.T) {
	fsys := testFS()
	fsys["pages/broken.yaml"] = &fstest.MapFile{Data: []byte("slug: [unclosed")}
	_, err := Load(fsys, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pages/broken.yaml")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte(testSite), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "beta.yaml"), []byte(testPageB), 0o644))

	site, err := LoadDir(dir, nil)
	require.NoError(t, err)
	assert.Len(t, site.Pages, 1)

	_, err = LoadDir(filepath.Join(dir, "nope"), nil)
	assert.Error(t, err)
	_, err = LoadDir(filepath.Join(dir, "site.yaml"), nil)
	assert.Error(t, err)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	site := &Site{
		Pages: []Page{
			{
				Slug: "a b",
				Nav:  []NavItem{{Label: "x", Page: "ghost"}, {Label: ""}},
				Sections: []Section{
					{ID: "dup", Digest: "d", Blocks: []Block{{Kind: "table"}}},
					{ID: "dup", Digest: "d", Blocks: []Block{{Kind: KindImage}}},
					{ID: "empty"},
					{Digest: "d", Blocks: []Block{{Kind: KindVideo}, {Kind: KindList}}},
				},
			},
			{Slug: "x", Title: "X", Sections: []Section{{ID: "c", Parts: []Part{{}}}}},
			{Slug: "x", Title: "X again"},
			{Slug: "about", Title: "About"},
		},
	}
	err := site.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"site name is required",
		"must not contain",
		"title is required",
		`unknown kind "table"`,
		"image needs src",
		"duplicate id",
		`section "empty": has no content`,
		"section 3: id is required",
		"video needs src",
		"list needs items",
		`unknown page "ghost"`,
		"label is required",
		"needs an anchor or a page",
		"part 0: digest is required",
		`page "x": duplicate slug`,
		`page "about": slug is reserved`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestFragments(t *testing.T) {
	b := Block{Kind: KindList, Text: "Heading", Items: []string{"one", "two"}, Caption: "cap"}
	got := b.Fragments(BlockPrefix("evidence", 1, 2))
	assert.Equal(t, []Fragment{
		{ID: "evidence/p1/b2/t", Text: "Heading"},
		{ID: "evidence/p1/b2/0", Text: "one"},
		{ID: "evidence/p1/b2/1", Text: "two"},
		{ID: "evidence/p1/b2/c", Text: "cap"},
	}, got)

	assert.Equal(t, "hero/b0", BlockPrefix("hero", -1, 0))
	assert.Equal(t, "people-p1", PartID("people", 1))
	assert.Empty(t, Block{Kind: KindImage, Src: "x.jpg"}.Fragments("p"))
}

func TestSectionText(t *testing.T) {
	site, err := Load(testFS(), nil)
	require.NoError(t, err)
	p, _ := site.Page("alpha")
	sec, _ := p.Section("one")
	assert.Equal(t, "NFL Legend\nBuffalo Bills\nHall of Fame", sec.Text())
	people, _ := p.Section("people")
	assert.Equal(t, "The Juice\nClip", people.Text())
}

func TestIndexLookup(t *testing.T) {
	site, err := Load(testFS(), nil)
	require.NoError(t, err)
	entries := BuildIndex(site, func(slug string) string { return "/" + slug })
	require.Len(t, entries, 3)

	assert.Equal(t, IndexEntry{
		Page: "beta", PageTitle: "Beta", Section: "only", Title: "Beta",
		Text: "Beta digest", URL: "/beta#only",
	}, entries[0])
	assert.Equal(t, "who is who", entries[2].Text)

	assert.Nil(t, Lookup(entries, "", 0))
	assert.Nil(t, Lookup(entries, "   ", 0))

	got := Lookup(entries, "NFL", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "one", got[0].Section)

	got = Lookup(entries, "people", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "people", got[0].Section)

	assert.Len(t, Lookup(entries, "e", 0), 3)
	assert.Len(t, Lookup(entries, "e", 2), 2)
}

func TestEmbeddedContentLoads(t *testing.T) {
	site, err := LoadDefault()
	require.NoError(t, err)
	require.Len(t, site.Pages, 3)
	assert.Equal(t, "life", site.Home().Slug)
	assert.Len(t, site.QuickFacts, 4)

	trial, ok := site.Page("trial")
	require.True(t, ok)
	glove, ok := trial.Section("glove-moment")
	require.True(t, ok)
	assert.Contains(t, glove.Digest, "If it doesn't fit you must acquit")

	study, ok := site.Page("case-study")
	require.True(t, ok)
	people, ok := study.Section("people")
	require.True(t, ok)
	assert.True(t, people.IsContainer())
	assert.Len(t, people.Parts, 2)
}
