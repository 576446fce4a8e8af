package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/casefile/internal/content"
)

func writeTestFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestFullSiteGeneration(t *testing.T) {
	assets := t.TempDir()
	writeTestFile(t, filepath.Join(assets, "img", "a.jpg"), "jpeg")

	out := filepath.Join(t.TempDir(), "dist")
	gen := NewGenerator(testSite(t), out, Options{LiveSearch: true})
	gen.AssetDir = assets

	n, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Generate() wrote %d pages, want 4", n)
	}

	for _, name := range []string{
		"life.html", "trial.html", "index.html", "about.html",
		"style.css", "script.js", "search-index.json", "img/a.jpg",
	} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}

	life := readTestFile(t, filepath.Join(out, "life.html"))
	for _, want := range []string{
		`data-mode="static"`,
		`data-index="search-index.json"`,
		`href="style.css"`,
		`src="script.js"`,
		`href="trial.html"`,
		`href="trial.html#glove"`,
		`href="about.html"`,
		`src="img/a.jpg"`,
		`data-digest="Football Career NFL Buffalo Bills"`,
		`<section id="people" class="case-section container" data-container>`,
	} {
		if !strings.Contains(life, want) {
			t.Errorf("life.html missing %q", want)
		}
	}
	if strings.Contains(life, "<mark") {
		t.Error("exported pages should not contain highlights")
	}
	if strings.Contains(life, `data-digest="Acting Career movies" hidden`) {
		t.Error("exported pages should show every section")
	}

	trial := readTestFile(t, filepath.Join(out, "trial.html"))
	if !strings.Contains(trial, `href="life.html#football"`) {
		t.Error("link block should resolve to the exported page")
	}

	if index := readTestFile(t, filepath.Join(out, "index.html")); index != life {
		t.Error("index.html should be the home page")
	}
}

func TestGeneratedSearchIndex(t *testing.T) {
	out := t.TempDir()
	if _, err := NewGenerator(testSite(t), out, Options{}).Generate(); err != nil {
		t.Fatal(err)
	}

	var entries []content.IndexEntry
	if err := json.Unmarshal([]byte(readTestFile(t, filepath.Join(out, "search-index.json"))), &entries); err != nil {
		t.Fatalf("invalid search index: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d index entries, want 4", len(entries))
	}
	if entries[0].URL != "life.html#football" {
		t.Errorf("entries[0].URL = %q", entries[0].URL)
	}
	if entries[3].Page != "trial" || entries[3].Section != "glove" {
		t.Errorf("entries[3] = %+v", entries[3])
	}
}

func TestWriteSearchIndexEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idx.json")
	if err := WriteSearchIndex(nil, path); err != nil {
		t.Fatal(err)
	}
	if got := readTestFile(t, path); got != "[]" {
		t.Errorf("empty index = %q, want []", got)
	}
}

func TestGenerateReportsProgress(t *testing.T) {
	rep := &recordingReporter{}
	gen := NewGenerator(testSite(t), t.TempDir(), Options{})
	gen.Reporter = rep
	if _, err := gen.Generate(); err != nil {
		t.Fatal(err)
	}
	if rep.total != 4 {
		t.Errorf("Start(%d), want 4", rep.total)
	}
	want := []string{"life.html", "trial.html", "index.html", "about.html"}
	if strings.Join(rep.names, ",") != strings.Join(want, ",") {
		t.Errorf("updates = %v, want %v", rep.names, want)
	}
	if !rep.finished {
		t.Error("Finish was not called")
	}
}

func TestGenerateMissingAssetDir(t *testing.T) {
	gen := NewGenerator(testSite(t), t.TempDir(), Options{})
	gen.AssetDir = filepath.Join(t.TempDir(), "missing")
	if _, err := gen.Generate(); err == nil {
		t.Error("expected an error for a missing asset directory")
	}
}

type recordingReporter struct {
	total    int
	names    []string
	finished bool
}

func (r *recordingReporter) Start(total int) { r.total = total }
func (r *recordingReporter) Update(_ int, name string) {
	r.names = append(r.names, name)
}
func (r *recordingReporter) Finish() { r.finished = true }
