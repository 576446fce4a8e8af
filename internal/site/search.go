package site

import (
	"encoding/json"
	"os"

	"github.com/ziadkadry99/casefile/internal/content"
)

// SearchIndex builds the dropdown index with links in the renderer's scheme.
func SearchIndex(site *content.Site, links Links) []content.IndexEntry {
	return content.BuildIndex(site, links.Page)
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []content.IndexEntry, outputPath string) error {
	if entries == nil {
		entries = []content.IndexEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
