package testsupport

import (
	"path/filepath"
	"testing"

	"orcidscout/internal/config"
)

// TargetRORID is the organization test configs check affiliations against.
const TargetRORID = "https://ror.org/03yrm5c26"

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a validated-shape config rooted in a per-test temp
// directory. Pacing is disabled so batch tests run instantly.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Scopus.APIKey = "test-key"
	cfgVal.Affiliation.RORID = TargetRORID
	cfgVal.Batch.RequestIntervalMS = 0
	cfgVal.Output.Path = filepath.Join(base, "orcid_scout_results.csv")
	cfgVal.Logging.Level = "info"

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

// WithServers points the Scopus and ORCID base URLs at the given fakes.
func WithServers(scopus *FakeScopus, registry *FakeORCID) ConfigOption {
	return func(b *configBuilder) {
		if scopus != nil {
			b.cfg.Scopus.BaseURL = scopus.URL()
		}
		if registry != nil {
			b.cfg.ORCID.BaseURL = registry.URL()
		}
	}
}

// WithRORID overrides the target organization.
func WithRORID(id string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Affiliation.RORID = id
	}
}

// WithOutput sets the output format and places the file under the test's
// temp directory.
func WithOutput(format, name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
		b.cfg.Output.Path = filepath.Join(b.baseDir, name)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Output.Path)
}
