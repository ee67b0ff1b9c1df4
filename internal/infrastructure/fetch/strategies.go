package fetch

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"DocAuditor/internal/domain"
)

// Strategy is one named way of acquiring a page. The source tries strategies
// in order until one yields usable content.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, pageURL string) (domain.Document, error)
}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/121.0",
}

// fetcher holds what every HTTP strategy shares.
type fetcher struct {
	client    *http.Client
	extractor *Extractor
}

func (f fetcher) get(ctx context.Context, pageURL, referer string) (domain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return domain.Document{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.Document{}, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Document{}, fmt.Errorf("%w: status %s", domain.ErrFetchFailed, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read body: %w", err)
	}

	return f.extractor.Extract(string(raw), pageURL)
}

// DirectStrategy issues a plain GET with rotating browser headers.
type DirectStrategy struct {
	fetcher
}

func NewDirectStrategy(client *http.Client, extractor *Extractor) *DirectStrategy {
	return &DirectStrategy{fetcher{client: client, extractor: extractor}}
}

func (s *DirectStrategy) Name() string { return "direct" }

func (s *DirectStrategy) Fetch(ctx context.Context, pageURL string) (domain.Document, error) {
	return s.get(ctx, pageURL, "")
}

// RefererStrategy primes the site root first, then requests the target with
// the root as referrer, mimicking in-site navigation.
type RefererStrategy struct {
	fetcher
}

func NewRefererStrategy(client *http.Client, extractor *Extractor) *RefererStrategy {
	return &RefererStrategy{fetcher{client: client, extractor: extractor}}
}

func (s *RefererStrategy) Name() string { return "referer" }

func (s *RefererStrategy) Fetch(ctx context.Context, pageURL string) (domain.Document, error) {
	root, err := siteRoot(pageURL)
	if err != nil {
		return domain.Document{}, err
	}

	// Priming failures are not fatal; the referrer request may still work.
	if req, rErr := http.NewRequestWithContext(ctx, http.MethodGet, root, nil); rErr == nil {
		if resp, dErr := s.client.Do(req); dErr == nil {
			io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
		}
	}

	return s.get(ctx, pageURL, root)
}

// AlternateStrategy rewrites article URLs into their canonical ID-only
// variants and tries each one.
type AlternateStrategy struct {
	fetcher
}

func NewAlternateStrategy(client *http.Client, extractor *Extractor) *AlternateStrategy {
	return &AlternateStrategy{fetcher{client: client, extractor: extractor}}
}

func (s *AlternateStrategy) Name() string { return "alternate" }

func (s *AlternateStrategy) Fetch(ctx context.Context, pageURL string) (domain.Document, error) {
	variants, err := alternateURLs(pageURL)
	if err != nil {
		return domain.Document{}, err
	}

	var lastErr error
	for _, variant := range variants {
		doc, fErr := s.get(ctx, variant, "")
		if fErr == nil {
			return doc, nil
		}
		lastErr = fErr
	}
	return domain.Document{}, fmt.Errorf("no alternate url succeeded: %w", lastErr)
}

func siteRoot(pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %s: %w", pageURL, err)
	}
	return parsed.Scheme + "://" + parsed.Host, nil
}

// alternateURLs derives ID-only article URL variants. Errors when the URL
// carries no recognizable article ID.
func alternateURLs(pageURL string) ([]string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %s: %w", pageURL, err)
	}

	idx := strings.Index(parsed.Path, "/articles/")
	if idx < 0 {
		return nil, fmt.Errorf("%w: no article id in %s", domain.ErrFetchFailed, pageURL)
	}

	id := parsed.Path[idx+len("/articles/"):]
	for _, sep := range []string{"-", "#", "?", "/"} {
		if cut := strings.Index(id, sep); cut >= 0 {
			id = id[:cut]
		}
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty article id in %s", domain.ErrFetchFailed, pageURL)
	}

	root := parsed.Scheme + "://" + parsed.Host
	return []string{
		root + "/hc/en-us/articles/" + id,
		root + "/hc/articles/" + id,
	}, nil
}

// politenessDelay sleeps a randomized interval between attempts, respecting
// cancellation.
func politenessDelay(ctx context.Context, min, max time.Duration) {
	if max <= min {
		return
	}
	delay := min + time.Duration(rand.Int63n(int64(max-min)))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
