package ports

import (
	"context"

	"DocAuditor/internal/domain"
)

// ContentSource retrieves and extracts a documentation page. Implementations
// must tag the returned Document as live or fallback and may legitimately
// return empty heading/paragraph/list sequences.
type ContentSource interface {
	Fetch(ctx context.Context, url string) (domain.Document, error)
}

// RemoteScorer is the optional external scoring backend. A nil map or any
// error means the caller must fall back to the local dimension scorers;
// remote scoring is never required for correctness.
type RemoteScorer interface {
	Score(ctx context.Context, doc domain.Document) (map[domain.Dimension]domain.DimensionResult, error)
}

// ReportRepository persists finished reports for history and audit.
type ReportRepository interface {
	SaveReport(ctx context.Context, report domain.Report) error
	LastScore(ctx context.Context, url string) (float64, bool, error)
}

// Notifier publishes a human-readable audit summary to an outbound channel.
type Notifier interface {
	PublishSummary(ctx context.Context, summary string) error
}

// Scheduler drives recurring audit runs.
type Scheduler interface {
	Start(ctx context.Context, job func()) error
	Stop(ctx context.Context) error
}
