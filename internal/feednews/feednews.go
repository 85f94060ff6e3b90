// Package feednews ingests RSS/Atom news feeds and runs ticker extraction
// over each article's body text, grounded on the teacher's
// internal/datasource news.go (RSS parsing) and screener.go (HTML
// scraping) patterns.
package feednews

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"github.com/jzombie/ticker-sniffer-go/internal/matchengine"
)

// FeedSource describes one RSS/Atom feed to poll for extraction, the
// domain-agnostic shape of the teacher's NewsSource minus the
// India-specific BaseURL/scraping fields that don't generalize.
type FeedSource struct {
	Name string
	URL  string
}

// Extractor is anything capable of running ticker extraction over a single
// document, satisfied by *pkg/tickersniffer.Engine.
type Extractor interface {
	Extract(text string) matchengine.FrequencyMap
}

// ArticleResult pairs one feed item with its extracted ticker frequencies.
type ArticleResult struct {
	Title string
	URL   string
	Freqs matchengine.FrequencyMap
}

// Fetcher fetches and parses feeds and their linked articles, rate-limited
// and cached the way the teacher's News data source is.
type Fetcher struct {
	parser    *gofeed.Parser
	cache     *Cache
	limiter   *RateLimiter
	client    *http.Client
	userAgent string
}

// NewFetcher builds a Fetcher with the given cache TTL, request rate limit
// (requests per second), and user agent string.
func NewFetcher(cacheTTL time.Duration, requestsPerSecond int, userAgent string) *Fetcher {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2
	}
	return &Fetcher{
		parser:    gofeed.NewParser(),
		cache:     NewCache(cacheTTL),
		limiter:   NewRateLimiter(requestsPerSecond, time.Second),
		client:    &http.Client{Timeout: 30 * time.Second},
		userAgent: userAgent,
	}
}

// FetchArticleText GETs the article URL and extracts its visible prose via
// goquery, preferring an <article> element and falling back to all <p>
// elements, mirroring screener.go's doc.Find(...) scraping style but
// applied to news prose rather than financial tables.
func (f *Fetcher) FetchArticleText(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	if cached, ok := f.cache.Get("article:" + url); ok {
		return cached.(string), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request for %s: %w", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch article %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("fetch article %s: HTTP %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse article HTML %s: %w", url, err)
	}

	text := extractBodyText(doc)
	f.cache.Set("article:"+url, text)
	return text, nil
}

// extractBodyText prefers the first <article> element's text; if the page
// has none, it falls back to joining every <p> element.
func extractBodyText(doc *goquery.Document) string {
	if article := doc.Find("article").First(); article.Length() > 0 {
		return strings.TrimSpace(article.Text())
	}

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n")
}

// ExtractFromFeed parses source's feed, fetches each item's article body
// concurrently (errgroup, bounded by concurrency), runs extractor.Extract
// per article, and returns one result per successfully-fetched article
// plus a combined frequency map summed across all of them. Cross-document
// aggregation happens here at the application layer, not inside the core
// matching engine.
func ExtractFromFeed(ctx context.Context, f *Fetcher, extractor Extractor, source FeedSource, concurrency int) ([]ArticleResult, matchengine.FrequencyMap, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("parse feed %s: %w", source.Name, err)
	}

	results := make([]ArticleResult, len(feed.Items))
	ok := make([]bool, len(feed.Items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, item := range feed.Items {
		i, item := i, item
		g.Go(func() error {
			text, err := f.FetchArticleText(gctx, item.Link)
			if err != nil {
				// One bad article must not fail the whole feed.
				return nil
			}
			results[i] = ArticleResult{
				Title: item.Title,
				URL:   item.Link,
				Freqs: extractor.Extract(text),
			}
			ok[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var kept []ArticleResult
	combined := make(matchengine.FrequencyMap)
	for i, wasOK := range ok {
		if !wasOK {
			continue
		}
		kept = append(kept, results[i])
		for ticker, count := range results[i].Freqs {
			combined[ticker] += count
		}
	}

	return kept, combined, nil
}
