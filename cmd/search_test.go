package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/kamusis/prodfinder/internal/catalog"
	"github.com/kamusis/prodfinder/internal/config"
	"github.com/kamusis/prodfinder/internal/query"
	"github.com/kamusis/prodfinder/internal/search"
)

// isolate points HOME at a temp dir and resets command flags between runs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{config.EnvCatalog, config.EnvLimit, config.EnvLogLevel, config.EnvLogFormat, config.EnvOutput} {
		t.Setenv(k, "")
	}
	color.NoColor = true
	t.Cleanup(func() {
		flagSearchK, flagSearchAll, flagSearchJSON, flagSearchWhy = 0, false, false, false
		flagShowJSON, flagExplainJSON, flagCatalogJSON = false, false, false
		flagCatalogCategory, flagCatalog, flagDebug, flagVersionJSON = "", "", false, false
		searchCmd.Flags().Lookup("limit").Changed = false
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRenderResults(t *testing.T) {
	color.NoColor = true
	resp := &search.Response{
		Matched: 3,
		Results: []search.Result{
			{Rank: 1, Why: "category=phone sort=default", Product: catalog.Product{ID: 3, Name: "Google Pixel 7a", Label: "Phone", Price: 449, Rating: 4.5}},
		},
	}
	var buf bytes.Buffer
	renderResults(&buf, resp, true)
	out := buf.String()

	for _, want := range []string{"Recommended for You (1 product)", "showing 1 of 3 matches", "Google Pixel 7a", "$449", "★ 4.5", "category=phone"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSearchCommand_JSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "search", "--json", "phone", "under", "$500")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	var resp search.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if resp.Preferences.Category != "phone" {
		t.Fatalf("category: got %q", resp.Preferences.Category)
	}
	if len(resp.Results) != 4 {
		t.Fatalf("expected 4 phones under $500, got %d", len(resp.Results))
	}
	for _, r := range resp.Results {
		if r.Product.Price > 500 {
			t.Fatalf("price filter not applied: %+v", r.Product)
		}
	}
}

func TestSearchCommand_NoMatchesIsNotAnError(t *testing.T) {
	isolate(t)

	out, err := execute(t, "search", "laptop", "under", "$100")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "No products match your preferences") {
		t.Fatalf("expected empty-state message, got:\n%s", out)
	}
}

func TestSearchCommand_Limit(t *testing.T) {
	isolate(t)

	out, err := execute(t, "search", "-k", "2", "headphones")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Recommended for You (2 products)") {
		t.Fatalf("expected 2 results, got:\n%s", out)
	}
}

func TestSearchCommand_NoArgsIsEmptyQuery(t *testing.T) {
	isolate(t)

	_, err := execute(t, "search")
	if !errors.Is(err, query.ErrEmptyQuery) {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestSearchCommand_ConfigLimitZeroShowsAll(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("HOME"), ".prodfinder")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("limit: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "search", "phone")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "Recommended for You (6 products)") {
		t.Fatalf("expected all 6 phones, got:\n%s", out)
	}
}

func TestVersionCommand_JSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var info buildInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if info.Version != version || info.GoVersion == "" || !strings.Contains(info.Platform, "/") {
		t.Fatalf("unexpected build info: %+v", info)
	}
}

func TestShowCommand_Ambiguous(t *testing.T) {
	isolate(t)

	out, err := execute(t, "show", "samsung")
	if err == nil {
		t.Fatalf("expected ambiguity error")
	}
	if !strings.Contains(out, "Did you mean:") || !strings.Contains(out, "Samsung Galaxy S23") {
		t.Fatalf("expected suggestions, got:\n%s", out)
	}
}

func TestBuildRules_AppliesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keywords = map[string][]string{"camera": {"vlog"}}
	cfg.PremiumWords = []string{"deluxe"}

	r := buildRules(cfg)
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	e := search.NewEngine(cat, r, newLogger(cfg))
	prefs, err := e.Explain("deluxe vlog setup")
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if prefs.Category != "camera" || prefs.Sort != "premium" {
		t.Fatalf("unexpected preferences: %+v", prefs)
	}
}
