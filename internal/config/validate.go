package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"orcidscout/internal/services"
)

// OutputFormats lists the supported result file formats.
var OutputFormats = []string{"csv", "xlsx", "json"}

// Validate ensures the configuration is usable. Failures match
// services.ErrConfiguration.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("%w: %w", services.ErrConfiguration, err)
	}
	return nil
}

func (c *Config) validate() error {
	if err := c.validateScopus(); err != nil {
		return err
	}
	if err := c.validateORCID(); err != nil {
		return err
	}
	if err := c.validateAffiliation(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

// RequireTarget reports an error when no target organization is configured.
// Only the lookup command needs one, so Validate leaves it optional.
func (c *Config) RequireTarget() error {
	if strings.TrimSpace(c.Affiliation.RORID) == "" {
		return fmt.Errorf("%w: affiliation.ror_id is required. Pass --ror, set ORCIDSCOUT_ROR_ID, or edit the config file", services.ErrConfiguration)
	}
	return nil
}

func (c *Config) validateScopus() error {
	if c.Scopus.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return fmt.Errorf("scopus.api_key is required. Set SCOPUS_API_KEY env var or edit %s (create with 'orcidscout config init')", defaultPath)
	}
	if err := validateHTTPURL("scopus.base_url", c.Scopus.BaseURL); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateORCID() error {
	if err := validateHTTPURL("orcid.base_url", c.ORCID.BaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("orcid.id_base_url", c.ORCID.IDBaseURL); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAffiliation() error {
	if c.Affiliation.DisambiguationSource == "" {
		return errors.New("affiliation.disambiguation_source must be set")
	}
	return nil
}

func (c *Config) validateOutput() error {
	for _, format := range OutputFormats {
		if c.Output.Format == format {
			return nil
		}
	}
	return fmt.Errorf("output.format must be one of %s, got %q", strings.Join(OutputFormats, ", "), c.Output.Format)
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}

func validateHTTPURL(key, value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) url, got %q", key, value)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", key, value)
	}
	return nil
}
