package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"reelstats/internal/catalog"
	"reelstats/internal/config"
	"reelstats/internal/export"
	"reelstats/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	sourcePath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvSource, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv("NO_COLOR", "1")

	cfg := testsupport.NewConfig(t, testsupport.WithCatalogCSV(testsupport.SampleCSV))
	base := testsupport.BaseDir(cfg)
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		sourcePath: cfg.Source.Path,
		baseDir:    base,
	}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := "[source]\npath = " + quote(cfg.Source.Path) + "\nformat = " + quote(cfg.Source.Format) +
		"\n\n[report]\nvariant = \"full\"\ntop_n = 3\nword_top_n = 5\npreview_rows = 2\nstop_words = [\"the\"]\n" +
		"\n[logging]\nlevel = \"error\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"`
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in output:\n%s", needle, haystack)
	}
}

func TestSummaryFullReport(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"summary"}, env.configPath)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	requireContains(t, out, "8 of 8 titles match")
	requireContains(t, out, "== Top Genres ==")
	requireContains(t, out, "International TV Shows")
	requireContains(t, out, "121.25 minutes")
	requireContains(t, out, "== Titles Preview ==")
}

func TestSummaryFilteredJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"summary", "--json", "--type", "movie", "--year-min", "1990", "--year-max", "2020"}, env.configPath)
	if err != nil {
		t.Fatalf("summary --json: %v", err)
	}
	var payload summaryPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode summary json: %v\n%s", err, out)
	}
	if payload.Total != 8 || payload.Result.Total != 3 {
		t.Fatalf("unexpected totals: total=%d matched=%d", payload.Total, payload.Result.Total)
	}
	if len(payload.Criteria.Types) != 1 || payload.Criteria.Types[0] != catalog.Movie {
		t.Fatalf("unexpected criteria: %+v", payload.Criteria)
	}
	if payload.Result.AverageMins == nil || *payload.Result.AverageMins != (90+125+166)/3.0 {
		t.Fatalf("unexpected average: %v", payload.Result.AverageMins)
	}
	if len(payload.Preview) != 2 {
		t.Fatalf("expected preview_rows from config, got %d", len(payload.Preview))
	}
	if len(payload.Result.Genres) != 3 {
		t.Fatalf("expected top_n from config, got %d genres", len(payload.Result.Genres))
	}
}

func TestSummaryVariantAndSections(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"summary", "--variant", "durations"}, env.configPath)
	if err != nil {
		t.Fatalf("summary --variant: %v", err)
	}
	requireContains(t, out, "== Shortest Movies ==")
	if strings.Contains(out, "Top Genres") {
		t.Fatalf("durations variant should not include genres:\n%s", out)
	}

	out, _, err = runCLI(t, []string{"summary", "--sections", "words"}, env.configPath)
	if err != nil {
		t.Fatalf("summary --sections: %v", err)
	}
	requireContains(t, out, "== Title Words ==")

	if _, _, err := runCLI(t, []string{"summary", "--variant", "bogus"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestSummaryEmptySelectionMatchesNothing(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"summary", "--genre", "", "--sections", "types"}, env.configPath)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	requireContains(t, out, "0 of 8 titles match (genre=(none))")
}

func TestFilterRejectsInvertedRangeAndMissingColumns(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"titles", "--year-min", "2021", "--year-max", "2000"}, env.configPath); err == nil {
		t.Fatal("expected error for inverted year range")
	}

	sparse := testsupport.WriteCatalogCSV(t, "title,type\nA,Movie\n")
	_, _, err := runCLI(t, []string{"--source", sparse, "titles", "--rating", "R"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "--rating unavailable") {
		t.Fatalf("expected unavailable rating filter error, got %v", err)
	}
}

func TestOptionsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"options", "rating", "year"}, env.configPath)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	requireContains(t, out, "rating (3): PG-13, TV-14, TV-MA")
	requireContains(t, out, "release_year (4): 1993, 1998, 2020, 2021")

	out, _, err = runCLI(t, []string{"options", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("options --json: %v", err)
	}
	var payload map[string][]string
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode options json: %v", err)
	}
	if got := payload["type"]; len(got) != 2 || got[0] != "Movie" {
		t.Fatalf("unexpected type options: %v", got)
	}

	if _, _, err := runCLI(t, []string{"options", "director"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestTitlesCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"titles", "--country", "india"}, env.configPath)
	if err != nil {
		t.Fatalf("titles: %v", err)
	}
	requireContains(t, out, "Jeans")
	requireContains(t, out, "Kota Factory")
	requireContains(t, out, "2 of 8 titles shown (2 matched)")
}

func TestExportCommandRoundTrip(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "out", "movies.csv")

	out, _, err := runCLI(t, []string{"export", "--type", "Movie", "--genre", "dramas,comedies", "--out", target}, env.configPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, out, "Wrote 3 titles")

	rows, err := export.ReadFile(target)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var got []string
	for _, row := range rows {
		got = append(got, *row.Title)
	}
	if want := "Sankofa,The Starling,Jeans"; strings.Join(got, ",") != want {
		t.Fatalf("unexpected exported titles: got %v want %s", got, want)
	}

	out, _, err = runCLI(t, []string{"export", "--out", "-", "--rating", "TV-14"}, env.configPath)
	if err != nil {
		t.Fatalf("export to stdout: %v", err)
	}
	if out != "title,type,release_year,rating\nJeans,Movie,1998,TV-14\n" {
		t.Fatalf("unexpected stdout export: %q", out)
	}
}

func TestMissingSourceFails(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.baseDir, "nope.csv")

	_, _, err := runCLI(t, []string{"--source", missing, "summary"}, env.configPath)
	var dsErr *catalog.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
}

func TestConfigInitValidateShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config exists without --overwrite")
	}

	out, _, err = runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	var shown config.Config
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("decode config json: %v", err)
	}
	if shown.Source.Path != env.sourcePath || shown.Report.TopN != 3 {
		t.Fatalf("unexpected effective config: %+v", shown)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestConfigValidateReportsFailingSource(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.baseDir, "missing.csv")

	out, _, err := runCLI(t, []string{"--source", missing, "config", "validate"}, env.configPath)
	if err == nil {
		t.Fatal("expected failing checks error")
	}
	requireContains(t, out, "[ERROR] "+missing+" (error: does not exist)")
	requireContains(t, out, "[OK] "+strings.Join([]string{"types", "years", "added"}, ", "))
}

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Catalog source", statusError, "missing", false)
	want := "  Catalog source:    [ERROR] missing"
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
	colored := renderStatusLine("Catalog source", statusOK, "", true)
	if !strings.HasPrefix(colored, ansiGreen) || !strings.HasSuffix(colored, ansiReset) {
		t.Fatalf("expected green wrapped line, got %q", colored)
	}
}

func TestSingleYearBoundLeavesOtherOpen(t *testing.T) {
	env := setupCLITestEnv(t)
	csv := "title,type,release_year\nOld,Movie,\nNew,Movie,\n"
	if err := os.WriteFile(env.sourcePath, []byte(csv), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	out, _, err := runCLI(t, []string{"titles", "--year-min", "2000"}, env.configPath)
	if err != nil {
		t.Fatalf("titles with only --year-min on null years: %v", err)
	}
	if strings.Contains(out, "Old") || strings.Contains(out, "New") {
		t.Fatalf("null release years must not match a bounded range:\n%s", out)
	}

	env = setupCLITestEnv(t)
	out, _, err = runCLI(t, []string{"titles", "--year-min", "2021"}, env.configPath)
	if err != nil {
		t.Fatalf("titles --year-min 2021: %v", err)
	}
	requireContains(t, out, "Blood & Water")
	if strings.Contains(out, "Sankofa") {
		t.Fatalf("expected 1993 title filtered out:\n%s", out)
	}

	out, _, err = runCLI(t, []string{"titles", "--year-max", "1995"}, env.configPath)
	if err != nil {
		t.Fatalf("titles --year-max 1995: %v", err)
	}
	requireContains(t, out, "Sankofa")
	if strings.Contains(out, "Jeans") {
		t.Fatalf("expected 1998 title filtered out:\n%s", out)
	}
}
