package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const githubAPIBase = "https://api.github.com"

// RepoStats is the slice of the GitHub repos API the collector cares about.
type RepoStats struct {
	Stars    int `json:"stargazers_count"`
	Forks    int `json:"forks_count"`
	Watchers int `json:"subscribers_count"`
}

// GithubClient fetches repository counters. Requests go through a token
// bucket sized to GitHub's authenticated allowance (5000/hour) so a large
// repo list cannot trip secondary rate limits.
type GithubClient struct {
	httpClient *http.Client
	token      string
	limiter    *rate.Limiter
	baseURL    string
}

func NewGithubClient(token string) *GithubClient {
	return &GithubClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		token:      token,
		limiter:    rate.NewLimiter(rate.Limit(5000.0/3600.0), 10),
		baseURL:    githubAPIBase,
	}
}

func (c *GithubClient) GetRepo(ctx context.Context, fullName string) (RepoStats, error) {
	var stats RepoStats

	if err := c.limiter.Wait(ctx); err != nil {
		return stats, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/repos/%s", c.baseURL, fullName), nil)
	if err != nil {
		return stats, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return stats, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return stats, fmt.Errorf("github: %s returned %d", fullName, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return stats, fmt.Errorf("github: decode %s: %w", fullName, err)
	}

	return stats, nil
}
