package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGithubClientGetRepo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/example/filesystem", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"stargazers_count": 950, "forks_count": 120, "subscribers_count": 45}`))
	}))
	defer server.Close()

	client := NewGithubClient("test-token")
	client.baseURL = server.URL

	stats, err := client.GetRepo(context.Background(), "example/filesystem")
	require.NoError(t, err)
	assert.Equal(t, 950, stats.Stars)
	assert.Equal(t, 120, stats.Forks)
	assert.Equal(t, 45, stats.Watchers)
}

func TestGithubClientGetRepoNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewGithubClient("")
	client.baseURL = server.URL

	_, err := client.GetRepo(context.Background(), "example/missing")
	assert.Error(t, err)
}

func TestGithubClientOmitsAuthHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"stargazers_count": 1}`))
	}))
	defer server.Close()

	client := NewGithubClient("")
	client.baseURL = server.URL

	stats, err := client.GetRepo(context.Background(), "example/public")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Stars)
}
