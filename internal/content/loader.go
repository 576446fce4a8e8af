package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// SiteFile is the file holding site-wide settings. Every other matched file
// is a page.
const SiteFile = "site.yaml"

// DefaultInclude selects page files when no patterns are configured.
var DefaultInclude = []string{"**/*.yaml", "**/*.yml"}

//go:embed data
var embedded embed.FS

// Embedded returns the built-in content tree.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadDefault loads the built-in content.
func LoadDefault() (*Site, error) {
	return Load(Embedded(), nil)
}

// LoadDir loads content from a directory on disk.
func LoadDir(dir string, include []string) (*Site, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("accessing content dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), include)
}

// Load reads site.yaml and every page file matching include from fsys,
// then validates the result.
func Load(fsys fs.FS, include []string) (*Site, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}

	site := &Site{}
	data, err := fs.ReadFile(fsys, SiteFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", SiteFile, err)
	}
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", SiteFile, err)
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if path.Base(m) == SiteFile || seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	sort.Strings(files)

	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var page Page
		if err := yaml.Unmarshal(data, &page); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		site.Pages = append(site.Pages, page)
	}

	sort.SliceStable(site.Pages, func(i, j int) bool {
		if site.Pages[i].Order != site.Pages[j].Order {
			return site.Pages[i].Order < site.Pages[j].Order
		}
		return site.Pages[i].Slug < site.Pages[j].Slug
	})

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}
