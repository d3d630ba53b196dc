package scopus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"orcidscout/internal/services"
)

const (
	// DefaultBaseURL is the Scopus author retrieval endpoint.
	DefaultBaseURL     = "https://api.elsevier.com/content/author"
	defaultHTTPTimeout = 30 * time.Second
	apiKeyParam        = "apiKey"
	userAgent          = "orcidscout"
)

// Author is the subset of a Scopus author profile used for ORCID resolution.
// Empty fields mean the profile did not carry the value.
type Author struct {
	IndexedName string
	ORCID       string
}

// The envelope stays raw so a missing key (empty profile) can be told apart
// from an explicit null (malformed response).
type retrievalResponse struct {
	Profiles json.RawMessage `json:"author-retrieval-response"`
}

type profile struct {
	AuthorProfile struct {
		PreferredName struct {
			IndexedName *string `json:"indexed-name"`
		} `json:"preferred-name"`
	} `json:"author-profile"`
	Coredata struct {
		ORCID *string `json:"orcid"`
	} `json:"coredata"`
}

// Client provides access to the Scopus author retrieval API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a Scopus client.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("scopus api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// RetrieveAuthor looks up authorID. The identifier is sent as given; Scopus
// decides whether it is valid. The first profile in the response is used.
func (c *Client) RetrieveAuthor(ctx context.Context, authorID string) (*Author, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse scopus url: %w", err)
	}
	params := endpoint.Query()
	params.Set("author_id", authorID)
	params.Set(apiKeyParam, c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", redact(err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &services.StatusError{Service: "scopus", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload retrievalResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, services.Wrap(services.ErrDecode, "scopus", "author retrieval", "decode response", err)
	}
	if len(payload.Profiles) == 0 {
		return &Author{}, nil
	}
	var profiles []profile
	if err := json.Unmarshal(payload.Profiles, &profiles); err != nil {
		return nil, services.Wrap(services.ErrDecode, "scopus", "author retrieval", "decode author-retrieval-response", err)
	}
	if len(profiles) == 0 {
		return nil, services.Wrap(services.ErrDecode, "scopus", "author retrieval", "author-retrieval-response is null or empty", nil)
	}
	first := profiles[0]
	return &Author{
		IndexedName: deref(first.AuthorProfile.PreferredName.IndexedName),
		ORCID:       strings.TrimSpace(deref(first.Coredata.ORCID)),
	}, nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// redact strips the API key from URLs embedded in transport errors; the error
// text can end up in the results file.
func redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	parsed, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		urlErr.URL = "<redacted>"
		return err
	}
	params := parsed.Query()
	if params.Has(apiKeyParam) {
		params.Set(apiKeyParam, "REDACTED")
		parsed.RawQuery = params.Encode()
	}
	urlErr.URL = parsed.String()
	return err
}
