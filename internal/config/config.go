package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Scopus contains configuration for the Scopus author retrieval API.
type Scopus struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// ORCID contains configuration for the ORCID public API.
type ORCID struct {
	BaseURL        string `toml:"base_url"`
	IDBaseURL      string `toml:"id_base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Affiliation contains the organization used for affiliation checks.
type Affiliation struct {
	// RORID is the target organization, e.g. https://ror.org/03yrm5c26.
	RORID string `toml:"ror_id"`
	// DisambiguationSource selects which ORCID organization references are
	// compared against RORID. Default: ROR
	DisambiguationSource string `toml:"disambiguation_source"`
}

// Batch contains pacing for the lookup loop.
type Batch struct {
	RequestIntervalMS int `toml:"request_interval_ms"`
}

// Input contains defaults for reading the author id table.
type Input struct {
	Column string `toml:"column"`
	Sheet  string `toml:"sheet"`
}

// Output contains defaults for the results file.
type Output struct {
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config encapsulates all configuration values for orcidscout.
//
// Configuration sections by subsystem:
//   - Scopus: author id to profile resolution
//   - ORCID: public record retrieval and canonical iD form
//   - Affiliation: target organization for employment checks
//   - Batch: delay between rows
//   - Input/Output: table column and file defaults
//   - Logging: log format, level, and optional file sink
type Config struct {
	Scopus      Scopus      `toml:"scopus"`
	ORCID       ORCID       `toml:"orcid"`
	Affiliation Affiliation `toml:"affiliation"`
	Batch       Batch       `toml:"batch"`
	Input       Input       `toml:"input"`
	Output      Output      `toml:"output"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and environment fallbacks applied.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("orcidscout.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// RequestInterval returns the pause between batch rows.
func (c *Config) RequestInterval() time.Duration {
	return time.Duration(c.Batch.RequestIntervalMS) * time.Millisecond
}

// ScopusTimeout returns the HTTP timeout for Scopus requests.
func (c *Config) ScopusTimeout() time.Duration {
	return time.Duration(c.Scopus.TimeoutSeconds) * time.Second
}

// ORCIDTimeout returns the HTTP timeout for ORCID requests.
func (c *Config) ORCIDTimeout() time.Duration {
	return time.Duration(c.ORCID.TimeoutSeconds) * time.Second
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
