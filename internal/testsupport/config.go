package testsupport

import (
	"path/filepath"
	"testing"

	"slate/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ProjectDir = filepath.Join(base, "project")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.DataDir = filepath.Join(base, "data")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithProjectDir overrides the default project directory.
func WithProjectDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.ProjectDir = dir
	}
}

// WithSubtitleCandidates overrides the locator's candidate list.
func WithSubtitleCandidates(candidates ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Subtitles.Candidates = candidates
	}
}

// WithHistoryKeep sets the run retention count on the test config.
func WithHistoryKeep(keep int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Keep = keep
	}
}
