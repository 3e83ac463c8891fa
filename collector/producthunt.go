package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/metacode0602/open-mcp-sub000/models"
)

// ProductHuntFetcher scrapes a Product Hunt topic page into rank submissions.
// The page order is preserved, which is what gives the resulting records
// their rank.
type ProductHuntFetcher struct {
	httpClient *http.Client
	url        string
}

func NewProductHuntFetcher(url string) *ProductHuntFetcher {
	return &ProductHuntFetcher{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		url:        url,
	}
}

func (f *ProductHuntFetcher) FetchTrending(ctx context.Context) ([]models.RankSubmission, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "open-mcp-collector/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("producthunt: %s returned %d", f.url, resp.StatusCode)
	}

	return ParseTrending(resp.Body)
}

// ParseTrending extracts post name, tagline and vote count from a trending
// page. Split out from the HTTP fetch so it can be fed canned HTML.
func ParseTrending(r io.Reader) ([]models.RankSubmission, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var submissions []models.RankSubmission
	doc.Find("[data-test^='post-item']").Each(func(_ int, sel *goquery.Selection) {
		name := strings.TrimSpace(sel.Find("[data-test^='post-name']").First().Text())
		if name == "" {
			return
		}

		sub := models.RankSubmission{
			Name:        name,
			Type:        models.AppTypeApplication,
			Description: strings.TrimSpace(sel.Find("[data-test^='post-tagline']").First().Text()),
		}

		if href, ok := sel.Find("a").First().Attr("href"); ok {
			sub.Website = absoluteURL(href)
		}

		votes := strings.TrimSpace(sel.Find("[data-test='vote-button']").First().Text())
		if n, err := strconv.Atoi(strings.ReplaceAll(votes, ",", "")); err == nil {
			sub.Stars = n
		}

		submissions = append(submissions, sub)
	})

	return submissions, nil
}

func absoluteURL(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return "https://www.producthunt.com" + href
}
