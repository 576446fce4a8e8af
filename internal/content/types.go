package content

import "fmt"

// BlockKind identifies how a block is rendered.
type BlockKind string

const (
	KindHeading   BlockKind = "heading"
	KindParagraph BlockKind = "paragraph"
	KindList      BlockKind = "list"
	KindQuote     BlockKind = "quote"
	KindImage     BlockKind = "image"
	KindVideo     BlockKind = "video"
	KindLink      BlockKind = "link"
	KindFacts     BlockKind = "facts"
)

var validKinds = map[BlockKind]bool{
	KindHeading:   true,
	KindParagraph: true,
	KindList:      true,
	KindQuote:     true,
	KindImage:     true,
	KindVideo:     true,
	KindLink:      true,
	KindFacts:     true,
}

// Site is the whole publication: shared chrome plus its pages.
type Site struct {
	Name       string   `yaml:"name"`
	Tagline    string   `yaml:"tagline"`
	Footer     string   `yaml:"footer"` // markdown
	About      string   `yaml:"about"`  // markdown
	QuickFacts []string `yaml:"quick_facts"`
	Pages      []Page   `yaml:"-"`
}

// Page is one routed view of the site.
type Page struct {
	Slug     string    `yaml:"slug"`
	Title    string    `yaml:"title"`
	Subtitle string    `yaml:"subtitle"`
	Order    int       `yaml:"order"`
	Nav      []NavItem `yaml:"nav"`
	Sections []Section `yaml:"sections"`
}

// NavItem is one entry in the slide-out navigation menu. Anchor items point
// at a section on the same page; items with Page set link to another page.
type NavItem struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"`
	Page   string `yaml:"page"`
}

// Section is a content block paired with its digest. A section with an empty
// digest is a container: it and its own blocks are always shown, and its parts
// are filtered one by one instead.
type Section struct {
	ID       string  `yaml:"id"`
	Title    string  `yaml:"title"`
	Digest   string  `yaml:"digest"`
	Keywords string  `yaml:"keywords"`
	Next     string  `yaml:"next"`
	Blocks   []Block `yaml:"blocks"`
	Parts    []Part  `yaml:"parts"`
}

// IsContainer reports whether visibility is decided per part.
func (s Section) IsContainer() bool {
	return s.Digest == ""
}

// SearchKeywords returns the text used by the search dropdown.
func (s Section) SearchKeywords() string {
	if s.Keywords != "" {
		return s.Keywords
	}
	return s.Digest
}

// Part is a separately filtered group of blocks inside a container section.
type Part struct {
	Digest string  `yaml:"digest"`
	Blocks []Block `yaml:"blocks"`
}

// Block is a single renderable element.
type Block struct {
	Kind    BlockKind `yaml:"kind"`
	Text    string    `yaml:"text"`
	Items   []string  `yaml:"items"`
	Src     string    `yaml:"src"`
	Alt     string    `yaml:"alt"`
	Caption string    `yaml:"caption"`
	Href    string    `yaml:"href"`
}

// Fragment is a piece of searchable text inside a block.
type Fragment struct {
	ID   string
	Text string
}

// Fragments returns the block's searchable text in display order. prefix is
// the block's position, e.g. "evidence/0/2"; ids are stable across renders.
func (b Block) Fragments(prefix string) []Fragment {
	var out []Fragment
	if b.Text != "" {
		out = append(out, Fragment{ID: prefix + "/t", Text: b.Text})
	}
	for i, item := range b.Items {
		out = append(out, Fragment{ID: fmt.Sprintf("%s/%d", prefix, i), Text: item})
	}
	if b.Caption != "" {
		out = append(out, Fragment{ID: prefix + "/c", Text: b.Caption})
	}
	return out
}

// BlockPrefix builds the fragment prefix for a block. part is -1 for blocks
// directly on the section.
func BlockPrefix(sectionID string, part, block int) string {
	if part < 0 {
		return fmt.Sprintf("%s/b%d", sectionID, block)
	}
	return fmt.Sprintf("%s/p%d/b%d", sectionID, part, block)
}

// PartID is the DOM id of a part inside a container section.
func PartID(sectionID string, part int) string {
	return fmt.Sprintf("%s-p%d", sectionID, part)
}

// Page looks up a page by slug.
func (s *Site) Page(slug string) (*Page, bool) {
	for i := range s.Pages {
		if s.Pages[i].Slug == slug {
			return &s.Pages[i], true
		}
	}
	return nil, false
}

// Home returns the first page in display order.
func (s *Site) Home() *Page {
	if len(s.Pages) == 0 {
		return nil
	}
	return &s.Pages[0]
}

// Section looks up a section by id.
func (p *Page) Section(id string) (*Section, bool) {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i], true
		}
	}
	return nil, false
}

// Text returns every searchable fragment of the section joined by newlines.
func (s Section) Text() string {
	var out []byte
	add := func(blocks []Block, part int) {
		for bi, b := range blocks {
			for _, f := range b.Fragments(BlockPrefix(s.ID, part, bi)) {
				if len(out) > 0 {
					out = append(out, '\n')
				}
				out = append(out, f.Text...)
			}
		}
	}
	add(s.Blocks, -1)
	for pi, p := range s.Parts {
		add(p.Blocks, pi)
	}
	return string(out)
}
