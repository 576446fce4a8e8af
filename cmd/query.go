package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/casefile/internal/content"
	"github.com/ziadkadry99/casefile/internal/search"
	"github.com/ziadkadry99/casefile/internal/site"
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the case-study pages from the terminal",
	Long: `Runs the same filter as the search box: lists every section whose digest
contains the text, ignoring case, with each occurrence in its content marked
[like this]. With --interactive, keeps prompting for new queries.`,
	Args: cobra.RangeArgs(0, 1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("page", "", "only search this page slug")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	queryCmd.Flags().BoolP("interactive", "i", false, "prompt for queries until interrupted")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	pageSlug, _ := cmd.Flags().GetString("page")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if !interactive && len(args) == 0 {
		return errors.New("a query is required unless --interactive is set")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := loadSite(cfg)
	if err != nil {
		return err
	}

	pages := s.Pages
	if pageSlug != "" {
		p, ok := s.Page(pageSlug)
		if !ok {
			return fmt.Errorf("unknown page %q", pageSlug)
		}
		pages = []content.Page{*p}
	}

	clamp := func(q string) string { return site.ClampQuery(q, cfg.MaxQueryLength) }

	if interactive {
		initial := ""
		if len(args) == 1 {
			initial = clamp(args[0])
		}
		return runInteractiveQuery(pages, initial, clamp)
	}

	query := clamp(args[0])
	if strings.TrimSpace(query) == "" {
		return errors.New("query must not be blank")
	}
	hits := collectHits(pages, query)
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(toQueryResults(hits))
	}
	writeHits(os.Stdout, query, hits)
	return nil
}

// runInteractiveQuery drives a single query state from a prompt loop. Every
// change re-runs the filter and prints the result; an empty line clears.
func runInteractiveQuery(pages []content.Page, initial string, clamp func(string) string) error {
	state := search.NewQueryState()
	unsubscribe := state.Subscribe(func(q string) {
		if q == "" {
			fmt.Println("Query cleared.")
			return
		}
		writeHits(os.Stdout, q, collectHits(pages, q))
	})
	defer unsubscribe()

	if initial != "" {
		state.Set(initial)
	}

	prompt := promptui.Prompt{Label: "Search (empty line clears, Ctrl+C quits)"}
	for {
		input, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading query: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			state.Clear()
			continue
		}
		state.Set(clamp(input))
	}
}

func collectHits(pages []content.Page, query string) []site.Hit {
	var hits []site.Hit
	for i := range pages {
		hits = append(hits, site.Hits(site.RenderPage(&pages[i], query))...)
	}
	return hits
}

func writeHits(w io.Writer, query string, hits []site.Hit) {
	if len(hits) == 0 {
		fmt.Fprintf(w, "No sections match %q.\n", query)
		return
	}
	fmt.Fprintf(w, "Found %d sections:\n\n", len(hits))
	for i, h := range hits {
		fmt.Fprintf(w, "  %d. %s#%s", i+1, h.Page, h.Section)
		if h.Title != "" {
			fmt.Fprintf(w, " (%s)", h.Title)
		}
		fmt.Fprintln(w)
		for _, f := range h.Fragments {
			fmt.Fprintf(w, "     %s\n", truncate(search.Mark(f.Segments, "[", "]"), 160))
		}
		fmt.Fprintln(w)
	}
}

type queryResultJSON struct {
	Rank    int      `json:"rank"`
	Page    string   `json:"page"`
	Section string   `json:"section"`
	Title   string   `json:"title,omitempty"`
	Digest  string   `json:"digest"`
	Matches int      `json:"matches"`
	Lines   []string `json:"lines"`
}

func toQueryResults(hits []site.Hit) []queryResultJSON {
	out := make([]queryResultJSON, 0, len(hits))
	for i, h := range hits {
		r := queryResultJSON{
			Rank:    i + 1,
			Page:    h.Page,
			Section: h.Section,
			Title:   h.Title,
			Digest:  h.Digest,
			Lines:   []string{},
		}
		for _, f := range h.Fragments {
			for _, seg := range f.Segments {
				if seg.Matched {
					r.Matches++
				}
			}
			r.Lines = append(r.Lines, search.Mark(f.Segments, "[", "]"))
		}
		out = append(out, r)
	}
	return out
}

func truncate(s string, max int) string {
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}
