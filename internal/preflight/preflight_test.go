package preflight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelstats/internal/preflight"
	"reelstats/internal/testsupport"
)

func TestCheckSourceFile(t *testing.T) {
	path := testsupport.WriteCatalogCSV(t, "title,type\nA,Movie\n")

	if r := preflight.CheckSourceFile("src", path); !r.Passed {
		t.Fatalf("expected readable source to pass: %+v", r)
	}
	if r := preflight.CheckSourceFile("src", filepath.Join(t.TempDir(), "missing.csv")); r.Passed || !strings.Contains(r.Detail, "does not exist") {
		t.Fatalf("expected missing source to fail: %+v", r)
	}
	if r := preflight.CheckSourceFile("src", t.TempDir()); r.Passed || !strings.Contains(r.Detail, "is a directory") {
		t.Fatalf("expected directory source to fail: %+v", r)
	}
	if r := preflight.CheckSourceFile("src", " "); r.Passed {
		t.Fatalf("expected empty path to fail: %+v", r)
	}
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	if r := preflight.CheckDirectoryAccess("logs", dir); !r.Passed {
		t.Fatalf("expected temp dir to pass: %+v", r)
	}
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if r := preflight.CheckDirectoryAccess("logs", file); r.Passed {
		t.Fatalf("expected file path to fail: %+v", r)
	}
}

func TestCheckReportSettings(t *testing.T) {
	if r := preflight.CheckReportSettings("report", "durations", nil); !r.Passed || r.Detail != "longest, shortest, average" {
		t.Fatalf("unexpected result: %+v", r)
	}
	if r := preflight.CheckReportSettings("report", "nope", nil); r.Passed {
		t.Fatalf("expected unknown variant to fail: %+v", r)
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCatalogCSV(testsupport.SampleCSV), testsupport.WithLogDir())
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	results := preflight.RunAll(cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !preflight.Passed(results) {
		t.Fatalf("expected all checks to pass: %+v", results)
	}

	cfg.Source.Path = filepath.Join(t.TempDir(), "gone.csv")
	if preflight.Passed(preflight.RunAll(cfg)) {
		t.Fatal("expected missing source to fail")
	}
	if preflight.RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
