package fetch

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"DocAuditor/internal/domain"
	"DocAuditor/internal/ports"
)

// Options bound the source's politeness and content acceptance.
type Options struct {
	Timeout          time.Duration
	MinDelay         time.Duration
	MaxDelay         time.Duration
	MinContentLength int
}

func (o Options) withDefaults() Options {
	if o.Timeout == 0 {
		o.Timeout = 20 * time.Second
	}
	if o.MaxDelay == 0 {
		o.MinDelay = time.Second
		o.MaxDelay = 3 * time.Second
	}
	if o.MinContentLength == 0 {
		o.MinContentLength = 100
	}
	return o
}

// Source implements ports.ContentSource by trying an ordered list of named
// strategies with a randomized politeness delay before each attempt. When
// every strategy fails, it returns the static seed document tagged as
// fallback so downstream scoring never mistakes degraded input for live
// content.
type Source struct {
	strategies []Strategy
	opts       Options
	logger     *slog.Logger
}

var _ ports.ContentSource = (*Source)(nil)

// NewSource wires the default strategy order: direct, referer, alternate.
// Pass a nil client to get one with the configured timeout.
func NewSource(client *http.Client, opts Options, logger *slog.Logger) *Source {
	opts = opts.withDefaults()
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	extractor := NewExtractor()
	return &Source{
		strategies: []Strategy{
			NewDirectStrategy(client, extractor),
			NewRefererStrategy(client, extractor),
			NewAlternateStrategy(client, extractor),
		},
		opts:   opts,
		logger: logger,
	}
}

// Fetch runs the strategy ladder. It never returns an error for exhausted
// strategies; the seed fallback keeps the pipeline alive.
func (s *Source) Fetch(ctx context.Context, pageURL string) (domain.Document, error) {
	for _, strategy := range s.strategies {
		politenessDelay(ctx, s.opts.MinDelay, s.opts.MaxDelay)
		if ctx.Err() != nil {
			return domain.Document{}, ctx.Err()
		}

		doc, err := strategy.Fetch(ctx, pageURL)
		if err != nil {
			s.debug("strategy failed", "strategy", strategy.Name(), "url", pageURL, "error", err)
			continue
		}
		if len(doc.Body) < s.opts.MinContentLength {
			s.debug("strategy returned thin content", "strategy", strategy.Name(),
				"url", pageURL, "length", len(doc.Body), "error", domain.ErrEmptyDocument)
			continue
		}

		s.debug("content acquired", "strategy", strategy.Name(), "url", pageURL, "words", doc.WordCount)
		return doc, nil
	}

	if s.logger != nil {
		s.logger.Warn("all fetch strategies failed, using seed content", "url", pageURL)
	}
	return SeedDocument(pageURL), nil
}

func (s *Source) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
