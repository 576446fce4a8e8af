package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/casefile/internal/content"
	"github.com/ziadkadry99/casefile/internal/logging"
	"github.com/ziadkadry99/casefile/internal/progress"
)

// Generator exports the site as static HTML files.
type Generator struct {
	Site      *content.Site
	OutputDir string
	// AssetDir, when set, is copied into OutputDir so relative image paths
	// in content resolve.
	AssetDir string
	Options  Options
	Reporter progress.Reporter
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(site *content.Site, outputDir string, opts Options) *Generator {
	opts.Static = true
	return &Generator{
		Site:      site,
		OutputDir: outputDir,
		Options:   opts,
		Reporter:  progress.Nop{},
	}
}

// Generate writes every page, the about page, the assets and the search
// index. It returns the number of HTML pages written.
func (g *Generator) Generate() (int, error) {
	log := logging.Component("export")
	opts := g.Options
	opts.Static = true
	r, err := NewRenderer(g.Site, opts)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	if err := WriteSearchIndex(SearchIndex(g.Site, r.Links()), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	total := len(g.Site.Pages) + 2 // pages, index.html, about.html
	reporter.Start(total)
	defer reporter.Finish()

	written := 0
	write := func(name string, render func(*bytes.Buffer) error) error {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), buf.Bytes(), 0o644); err != nil {
			return err
		}
		written++
		reporter.Update(written, name)
		log.WithField("file", name).Debug("wrote page")
		return nil
	}

	for _, p := range g.Site.Pages {
		slug := p.Slug
		if err := write(slug+".html", func(b *bytes.Buffer) error { return r.Page(b, slug, "") }); err != nil {
			return written, err
		}
	}
	if home := g.Site.Home(); home != nil {
		if err := write("index.html", func(b *bytes.Buffer) error { return r.Page(b, home.Slug, "") }); err != nil {
			return written, err
		}
	}
	if err := write("about.html", func(b *bytes.Buffer) error { return r.About(b) }); err != nil {
		return written, err
	}

	if g.AssetDir != "" {
		if err := copyDir(g.AssetDir, g.OutputDir); err != nil {
			return written, fmt.Errorf("copying assets: %w", err)
		}
	}

	return written, nil
}

// copyDir recursively copies the contents of src into dst.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
