package collector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metacode0602/open-mcp-sub000/models"
)

const trendingPage = `<!DOCTYPE html>
<html><body>
<div data-test="post-item-1">
  <a href="/posts/acme-copilot"><span data-test="post-name-1">Acme Copilot</span></a>
  <span data-test="post-tagline-1">Your meetings, summarized</span>
  <button data-test="vote-button">1,204</button>
</div>
<div data-test="post-item-2">
  <a href="https://example.com/launch"><span data-test="post-name-2">LaunchPad</span></a>
  <span data-test="post-tagline-2">Ship side projects faster</span>
  <button data-test="vote-button">87</button>
</div>
<div data-test="post-item-3">
  <span data-test="post-name-3"> </span>
</div>
</body></html>`

func TestParseTrending(t *testing.T) {
	submissions, err := ParseTrending(strings.NewReader(trendingPage))
	require.NoError(t, err)
	require.Len(t, submissions, 2)

	first := submissions[0]
	assert.Equal(t, "Acme Copilot", first.Name)
	assert.Equal(t, models.AppTypeApplication, first.Type)
	assert.Equal(t, "Your meetings, summarized", first.Description)
	assert.Equal(t, "https://www.producthunt.com/posts/acme-copilot", first.Website)
	assert.Equal(t, 1204, first.Stars)

	second := submissions[1]
	assert.Equal(t, "LaunchPad", second.Name)
	assert.Equal(t, "https://example.com/launch", second.Website)
	assert.Equal(t, 87, second.Stars)
}

func TestParseTrendingPreservesPageOrder(t *testing.T) {
	submissions, err := ParseTrending(strings.NewReader(trendingPage))
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.Equal(t, "Acme Copilot", submissions[0].Name)
	assert.Equal(t, "LaunchPad", submissions[1].Name)
}

func TestParseTrendingEmptyPage(t *testing.T) {
	submissions, err := ParseTrending(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, submissions)
}
