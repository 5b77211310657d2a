package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecoscore/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://search.example.com", 5)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://search.example.com", client.baseURL)
	assert.Equal(t, 5, client.maxResults)
	assert.NotNil(t, client.rateLimiter)
}

func TestNewClient_DefaultMaxResults(t *testing.T) {
	client := NewClient("key", "https://search.example.com", 0)
	assert.Equal(t, 5, client.maxResults)
}

func TestVerifyMaterial_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("q"), "Hemp")
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{
				{"title": "Hemp suppliers", "url": "https://example.org/hemp"},
				{"title": "Certified hemp", "url": "https://example.org/gots"},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 3)

	sources, err := client.VerifyMaterial(context.Background(), "Hemp")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.org/hemp", "https://example.org/gots"}, sources)
}

func TestVerifyMaterial_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"results": []interface{}{}})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 3)

	sources, err := client.VerifyMaterial(context.Background(), "Unobtanium")

	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestVerifyMaterial_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 3)

	sources, err := client.VerifyMaterial(context.Background(), "Hemp")

	assert.Nil(t, sources)
	assert.ErrorIs(t, err, domain.ErrSearchUnavailable)
}

func TestVerifyMaterial_SkipsResultsWithoutURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{
				{"title": "no link"},
				{"title": "with link", "url": "https://example.org"},
			},
		})
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, 3)

	sources, err := client.VerifyMaterial(context.Background(), "Hemp")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.org"}, sources)
}
