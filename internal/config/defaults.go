package config

const (
	defaultConfigPath           = "~/.config/orcidscout/config.toml"
	defaultScopusBaseURL        = "https://api.elsevier.com/content/author"
	defaultORCIDBaseURL         = "https://pub.orcid.org/v3.0"
	defaultORCIDIDBaseURL       = "https://orcid.org/"
	defaultHTTPTimeoutSeconds   = 30
	defaultDisambiguationSource = "ROR"
	// Scopus allows roughly three requests per second per key.
	defaultRequestIntervalMS = 340
	defaultOutputFormat      = "csv"
	defaultOutputPath        = "orcid_scout_results.csv"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scopus: Scopus{
			BaseURL:        defaultScopusBaseURL,
			TimeoutSeconds: defaultHTTPTimeoutSeconds,
		},
		ORCID: ORCID{
			BaseURL:        defaultORCIDBaseURL,
			IDBaseURL:      defaultORCIDIDBaseURL,
			TimeoutSeconds: defaultHTTPTimeoutSeconds,
		},
		Affiliation: Affiliation{
			DisambiguationSource: defaultDisambiguationSource,
		},
		Batch: Batch{
			RequestIntervalMS: defaultRequestIntervalMS,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Path:   defaultOutputPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
		},
	}
}
