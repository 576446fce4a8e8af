package content

import (
	"errors"
	"fmt"
	"strings"
)

// reservedSlugs collide with fixed routes of the server or files of the
// static export.
var reservedSlugs = map[string]bool{
	"about":   true,
	"api":     true,
	"files":   true,
	"healthz": true,
	"index":   true,
	"script":  true,
	"static":  true,
	"style":   true,
	"ws":      true,
}

// Validate checks the site for structural problems and reports all of them
// at once.
func (s *Site) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if s.Name == "" {
		add("site name is required")
	}
	if len(s.Pages) == 0 {
		add("at least one page is required")
	}

	slugs := make(map[string]bool)
	for pi, p := range s.Pages {
		where := fmt.Sprintf("page %d", pi)
		if p.Slug != "" {
			where = fmt.Sprintf("page %q", p.Slug)
		}
		switch {
		case p.Slug == "":
			add("%s: slug is required", where)
		case strings.ContainsAny(p.Slug, "/ ?#"):
			add("%s: slug must not contain '/', ' ', '?' or '#'", where)
		case reservedSlugs[p.Slug]:
			add("%s: slug is reserved", where)
		case slugs[p.Slug]:
			add("%s: duplicate slug", where)
		}
		slugs[p.Slug] = true

		if p.Title == "" {
			add("%s: title is required", where)
		}

		ids := make(map[string]bool)
		for si, sec := range p.Sections {
			swhere := fmt.Sprintf("%s section %d", where, si)
			if sec.ID == "" {
				add("%s: id is required", swhere)
			} else {
				swhere = fmt.Sprintf("%s section %q", where, sec.ID)
				if ids[sec.ID] {
					add("%s: duplicate id", swhere)
				}
				ids[sec.ID] = true
			}
			if sec.IsContainer() && len(sec.Parts) == 0 && len(sec.Blocks) == 0 {
				add("%s: has no content", swhere)
			}
			for pi, part := range sec.Parts {
				if part.Digest == "" {
					add("%s part %d: digest is required", swhere, pi)
				}
				validateBlocks(part.Blocks, fmt.Sprintf("%s part %d", swhere, pi), add)
			}
			validateBlocks(sec.Blocks, swhere, add)
		}
	}

	for _, p := range s.Pages {
		for ni, n := range p.Nav {
			if n.Label == "" {
				add("page %q nav %d: label is required", p.Slug, ni)
			}
			if n.Page != "" && !slugs[n.Page] {
				add("page %q nav %d: unknown page %q", p.Slug, ni, n.Page)
			}
			if n.Page == "" && n.Anchor == "" {
				add("page %q nav %d: needs an anchor or a page", p.Slug, ni)
			}
		}
	}

	if len(problems) > 0 {
		return errors.New("invalid content:\n  " + strings.Join(problems, "\n  "))
	}
	return nil
}

func validateBlocks(blocks []Block, where string, add func(string, ...any)) {
	for bi, b := range blocks {
		bwhere := fmt.Sprintf("%s block %d", where, bi)
		if !validKinds[b.Kind] {
			add("%s: unknown kind %q", bwhere, b.Kind)
			continue
		}
		switch b.Kind {
		case KindImage:
			if b.Src == "" {
				add("%s: image needs src", bwhere)
			}
		case KindVideo:
			if b.Src == "" {
				add("%s: video needs src", bwhere)
			}
		case KindLink:
			if b.Href == "" {
				add("%s: link needs href", bwhere)
			}
		case KindList, KindFacts:
			if len(b.Items) == 0 {
				add("%s: %s needs items", bwhere, b.Kind)
			}
		default:
			if b.Text == "" {
				add("%s: %s needs text", bwhere, b.Kind)
			}
		}
	}
}
