package orcid_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcidscout/internal/orcid"
	"orcidscout/internal/services"
)

const recordJSON = `{
  "orcid-identifier": {"path": "0000-0001-2345-6789"},
  "activities-summary": {
    "employments": {
      "affiliation-group": [
        {"summaries": [
          {"employment-summary": {"role-title": "Lecturer", "organization": {"name": "No Ref Univ"}}},
          {"employment-summary": {"organization": {"name": "Example Univ",
            "disambiguated-organization": {"disambiguation-source": "ROR",
              "disambiguated-organization-identifier": "https://ror.org/abc"}}}}
        ]}
      ]
    }
  }
}`

func TestFetchRecordDecodesEmployments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.0/0000-0001-2345-6789", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(recordJSON))
	}))
	t.Cleanup(server.Close)

	client, err := orcid.New(server.URL + "/v3.0/")
	require.NoError(t, err)

	record, err := client.FetchRecord(context.Background(), "0000-0001-2345-6789")
	require.NoError(t, err)

	groups := record.AffiliationGroups()
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Summaries, 2)

	_, ok := groups[0].Summaries[0].OrganizationReference()
	assert.False(t, ok, "summary without disambiguated organization")

	ref, ok := groups[0].Summaries[1].OrganizationReference()
	require.True(t, ok)
	assert.Equal(t, "ROR", ref.Source)
	assert.Equal(t, "https://ror.org/abc", ref.Identifier)
}

func TestFetchRecordNullSections(t *testing.T) {
	for name, body := range map[string]string{
		"no activities":    `{}`,
		"null employments": `{"activities-summary":{"employments":null}}`,
		"null groups":      `{"activities-summary":{"employments":{"affiliation-group":null}}}`,
		"empty groups":     `{"activities-summary":{"employments":{"affiliation-group":[]}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			t.Cleanup(server.Close)

			client, err := orcid.New(server.URL)
			require.NoError(t, err)
			record, err := client.FetchRecord(context.Background(), "x")
			require.NoError(t, err)
			assert.Empty(t, record.AffiliationGroups())
		})
	}
}

func TestFetchRecordStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client, err := orcid.New(server.URL)
	require.NoError(t, err)
	_, err = client.FetchRecord(context.Background(), "0000-0000-0000-0000")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
	code, ok := services.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestFetchRecordDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	t.Cleanup(server.Close)

	client, err := orcid.New(server.URL)
	require.NoError(t, err)
	_, err = client.FetchRecord(context.Background(), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrDecode))
}

func TestFetchRecordRejectsBlankID(t *testing.T) {
	client, err := orcid.New("")
	require.NoError(t, err)
	_, err = client.FetchRecord(context.Background(), " ")
	require.Error(t, err)
}

func TestNilRecordHasNoGroups(t *testing.T) {
	var record *orcid.Record
	assert.Nil(t, record.AffiliationGroups())
	assert.False(t, func() bool { _, ok := orcid.Summary{}.OrganizationReference(); return ok }())
}

func TestIDFromURL(t *testing.T) {
	assert.Equal(t, "0000-0001-2345-6789", orcid.IDFromURL("https://orcid.org/0000-0001-2345-6789"))
	assert.Equal(t, "0000-0001-2345-6789", orcid.IDFromURL("0000-0001-2345-6789"))
	assert.Equal(t, "", orcid.IDFromURL("https://orcid.org/"))
}

func TestCanonicalURL(t *testing.T) {
	assert.Equal(t, "https://orcid.org/0000-0001", orcid.CanonicalURL("https://orcid.org/", "0000-0001"))
	assert.Equal(t, "https://sandbox.orcid.org/0000-0001", orcid.CanonicalURL("https://sandbox.orcid.org", "0000-0001"))
}
