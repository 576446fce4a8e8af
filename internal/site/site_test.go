package site

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/casefile/internal/content"
)

// testSite is a small two-page site covering every block kind the renderer
// treats specially.
func testSite(t *testing.T) *content.Site {
	t.Helper()
	site := &content.Site{
		Name:       "Case File",
		Footer:     "Made for **class**. <script>alert(1)</script>",
		About:      "# About\n\nSources listed here.",
		QuickFacts: []string{"Verdict: Not Guilty"},
		Pages: []content.Page{
			{
				Slug:  "life",
				Title: "O.J. Simpson",
				Nav: []content.NavItem{
					{Label: "Football", Anchor: "football"},
					{Label: "Trial", Page: "trial"},
					{Label: "Glove", Page: "trial", Anchor: "glove"},
				},
				Sections: []content.Section{
					{
						ID: "football", Title: "Football Career", Digest: "Football Career NFL Buffalo Bills", Next: "acting",
						Blocks: []content.Block{
							{Kind: content.KindParagraph, Text: "First NFL player to rush 2,000 yards"},
							{Kind: content.KindList, Items: []string{"Buffalo Bills", "NFL MVP"}},
						},
					},
					{
						ID: "acting", Title: "Acting Career", Digest: "Acting Career movies",
						Blocks: []content.Block{
							{Kind: content.KindParagraph, Text: "The Naked Gun <trilogy>"},
							{Kind: content.KindImage, Src: "img/a.jpg", Alt: "Poster"},
						},
					},
					{
						ID: "people", Title: "Key People",
						Parts: []content.Part{
							{Digest: "WHO IS OJ SIMPSON", Blocks: []content.Block{
								{Kind: content.KindParagraph, Text: "The Juice played in the NFL"},
							}},
							{Digest: "WHO IS NICOLE", Blocks: []content.Block{
								{Kind: content.KindVideo, Src: "https://www.youtube.com/embed/x", Caption: "Nicole clip"},
							}},
						},
					},
				},
			},
			{
				Slug:  "trial",
				Title: "Trial of the Century",
				Sections: []content.Section{
					{
						ID: "glove", Title: "The Glove", Digest: "Glove If it doesn't fit you must acquit",
						Blocks: []content.Block{
							{Kind: content.KindQuote, Text: "If it doesn't fit, you must acquit"},
							{Kind: content.KindLink, Text: "Back", Href: "life#football"},
						},
					},
				},
			},
		},
	}
	require.NoError(t, site.Validate())
	return site
}

func lifePage(t *testing.T) *content.Page {
	t.Helper()
	p, ok := testSite(t).Page("life")
	require.True(t, ok)
	return p
}
