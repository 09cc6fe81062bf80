package testsupport

import (
	"path/filepath"
	"testing"

	"reelstats/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a per-test temp directory. The source
// path points at catalog.csv inside that directory; nothing is written there.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Source.Path = filepath.Join(base, "catalog.csv")
	cfgVal.Logging.Dir = ""
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{t: t, baseDir: base, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithCatalogCSV writes content into the config's source file.
func WithCatalogCSV(content string) ConfigOption {
	return func(b *configBuilder) {
		b.t.Helper()
		b.cfg.Source.Path = WriteFile(b.t, filepath.Join(b.baseDir, "catalog.csv"), content)
		b.cfg.Source.Format = "csv"
	}
}

// WithLogDir enables the log file under the temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Source.Path)
}
