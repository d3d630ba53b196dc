package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DotEnvFile is loaded from the working directory, if present, before
// environment fallbacks are read. Variables already set in the process
// environment win over the file.
const DotEnvFile = ".env"

// environment lists the variables consulted when the config file leaves a
// value empty.
type environment struct {
	ScopusAPIKey string `env:"SCOPUS_API_KEY"`
	RORID        string `env:"ORCIDSCOUT_ROR_ID"`
	LogLevel     string `env:"ORCIDSCOUT_LOG_LEVEL"`
}

func (c *Config) normalize() error {
	envValues, err := readEnvironment()
	if err != nil {
		return err
	}
	c.normalizeScopus(envValues)
	c.normalizeORCID()
	c.normalizeAffiliation(envValues)
	c.normalizeBatch()
	c.normalizeInput()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging(envValues)
}

func readEnvironment() (environment, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return environment{}, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}
	values, err := env.ParseAs[environment]()
	if err != nil {
		return environment{}, fmt.Errorf("read environment: %w", err)
	}
	return values, nil
}

func (c *Config) normalizeScopus(envValues environment) {
	c.Scopus.APIKey = strings.TrimSpace(c.Scopus.APIKey)
	if c.Scopus.APIKey == "" {
		c.Scopus.APIKey = strings.TrimSpace(envValues.ScopusAPIKey)
	}
	c.Scopus.BaseURL = strings.TrimSpace(c.Scopus.BaseURL)
	if c.Scopus.BaseURL == "" {
		c.Scopus.BaseURL = defaultScopusBaseURL
	}
	if c.Scopus.TimeoutSeconds <= 0 {
		c.Scopus.TimeoutSeconds = defaultHTTPTimeoutSeconds
	}
}

func (c *Config) normalizeORCID() {
	c.ORCID.BaseURL = strings.TrimRight(strings.TrimSpace(c.ORCID.BaseURL), "/")
	if c.ORCID.BaseURL == "" {
		c.ORCID.BaseURL = defaultORCIDBaseURL
	}
	c.ORCID.IDBaseURL = strings.TrimSpace(c.ORCID.IDBaseURL)
	if c.ORCID.IDBaseURL == "" {
		c.ORCID.IDBaseURL = defaultORCIDIDBaseURL
	}
	if !strings.HasSuffix(c.ORCID.IDBaseURL, "/") {
		c.ORCID.IDBaseURL += "/"
	}
	if c.ORCID.TimeoutSeconds <= 0 {
		c.ORCID.TimeoutSeconds = defaultHTTPTimeoutSeconds
	}
}

func (c *Config) normalizeAffiliation(envValues environment) {
	c.Affiliation.RORID = strings.TrimSpace(c.Affiliation.RORID)
	if c.Affiliation.RORID == "" {
		c.Affiliation.RORID = strings.TrimSpace(envValues.RORID)
	}
	c.Affiliation.DisambiguationSource = strings.TrimSpace(c.Affiliation.DisambiguationSource)
	if c.Affiliation.DisambiguationSource == "" {
		c.Affiliation.DisambiguationSource = defaultDisambiguationSource
	}
}

func (c *Config) normalizeBatch() {
	if c.Batch.RequestIntervalMS < 0 {
		c.Batch.RequestIntervalMS = 0
	}
}

func (c *Config) normalizeInput() {
	c.Input.Column = strings.TrimSpace(c.Input.Column)
	c.Input.Sheet = strings.TrimSpace(c.Input.Sheet)
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	c.Output.Path = strings.TrimSpace(c.Output.Path)
	if c.Output.Path == "" {
		c.Output.Path = defaultOutputPath
	}
	var err error
	if c.Output.Path, err = expandPath(c.Output.Path); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging(envValues environment) error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(envValues.LogLevel))
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
