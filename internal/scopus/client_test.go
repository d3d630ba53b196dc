package scopus_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcidscout/internal/scopus"
	"orcidscout/internal/services"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := scopus.New("  ", "https://example.com")
	require.Error(t, err)
}

func TestRetrieveAuthorSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.URL.Query().Get("apiKey"))
		assert.Equal(t, "123", r.URL.Query().Get("author_id"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"author-retrieval-response":[{
			"author-profile":{"preferred-name":{"indexed-name":"Doe J."}},
			"coredata":{"orcid":" 0000-0001-2345-6789 "}
		},{"author-profile":{"preferred-name":{"indexed-name":"Second"}}}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := scopus.New("key", server.URL)
	require.NoError(t, err)

	author, err := client.RetrieveAuthor(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Doe J.", author.IndexedName)
	assert.Equal(t, "0000-0001-2345-6789", author.ORCID)
}

func TestRetrieveAuthorKeepsExistingQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ENHANCED", r.URL.Query().Get("view"))
		_, _ = w.Write([]byte(`{"author-retrieval-response":[{}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := scopus.New("key", server.URL+"?view=ENHANCED")
	require.NoError(t, err)
	author, err := client.RetrieveAuthor(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, author.IndexedName)
	assert.Empty(t, author.ORCID)
}

func TestRetrieveAuthorMissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"author-retrieval-response":[{"author-profile":{"preferred-name":{"indexed-name":"Roe R."}},"coredata":{"orcid":null}}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := scopus.New("key", server.URL)
	require.NoError(t, err)
	author, err := client.RetrieveAuthor(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Roe R.", author.IndexedName)
	assert.Empty(t, author.ORCID)
}

func TestRetrieveAuthorMissingEnvelopeIsEmptyProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service-error":{}}`))
	}))
	t.Cleanup(server.Close)

	client, err := scopus.New("key", server.URL)
	require.NoError(t, err)
	author, err := client.RetrieveAuthor(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, &scopus.Author{}, author)
}

func TestRetrieveAuthorEmptyEnvelopeIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"author-retrieval-response":[]}`))
	}))
	t.Cleanup(server.Close)

	client, err := scopus.New("key", server.URL)
	require.NoError(t, err)
	_, err = client.RetrieveAuthor(context.Background(), "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrDecode)
}

func TestRetrieveAuthorNullEnvelopeIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"author-retrieval-response":null}`))
	}))
	t.Cleanup(server.Close)

	client, err := scopus.New("key", server.URL)
	require.NoError(t, err)
	author, err := client.RetrieveAuthor(context.Background(), "1")
	require.Error(t, err)
	assert.Nil(t, author)
	assert.ErrorIs(t, err, services.ErrDecode)
}

func TestRetrieveAuthorHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error-response":{"error-code":"TOO_MANY_REQUESTS"}}`))
	}))
	t.Cleanup(server.Close)

	client, err := scopus.New("key", server.URL)
	require.NoError(t, err)
	_, err = client.RetrieveAuthor(context.Background(), "1")
	require.Error(t, err)
	code, ok := services.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, code)
}

func TestRetrieveAuthorMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<author-retrieval-response/>`))
	}))
	t.Cleanup(server.Close)

	client, err := scopus.New("key", server.URL)
	require.NoError(t, err)
	_, err = client.RetrieveAuthor(context.Background(), "1")
	assert.ErrorIs(t, err, services.ErrDecode)
}

func TestRetrieveAuthorTransportErrorRedactsKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	client, err := scopus.New("secret-key", base)
	require.NoError(t, err)
	_, err = client.RetrieveAuthor(context.Background(), "1")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key")
	assert.Contains(t, err.Error(), "REDACTED")
	_, ok := services.StatusCode(err)
	assert.False(t, ok)
}
