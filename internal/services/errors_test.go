package services_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orcidscout/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrDecode, "scopus", "author retrieval", "invalid body", base)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrDecode)
	assert.ErrorIs(t, err, base)
	for _, fragment := range []string{"scopus", "author retrieval", "invalid body"} {
		assert.Contains(t, err.Error(), fragment)
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := services.Wrap(nil, "", " ", "", nil)
	assert.ErrorIs(t, err, services.ErrExternal)
	assert.Contains(t, err.Error(), "service failure")
}

func TestStatusErrorClassification(t *testing.T) {
	err := fmt.Errorf("fetch record: %w", &services.StatusError{Service: "orcid", StatusCode: http.StatusNotFound, Body: "missing"})

	code, ok := services.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
	assert.ErrorIs(t, err, services.ErrExternal)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Equal(t, "fetch record: orcid returned 404 Not Found: missing", err.Error())

	throttled := &services.StatusError{Service: "scopus", StatusCode: http.StatusTooManyRequests}
	assert.NotErrorIs(t, throttled, services.ErrNotFound)
	assert.Equal(t, "scopus returned 429 Too Many Requests", throttled.Error())

	_, ok = services.StatusCode(errors.New("plain"))
	assert.False(t, ok)
}
