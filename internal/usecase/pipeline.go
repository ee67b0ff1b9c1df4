package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"DocAuditor/internal/analysis"
	"DocAuditor/internal/domain"
	"DocAuditor/internal/ports"
	"DocAuditor/internal/report"
	"DocAuditor/internal/revision"
)

// PipelineDeps wires all collaborators into the audit workflow. Only Source
// and Engine are required; the rest are optional adapters the pipeline
// tolerates being nil.
type PipelineDeps struct {
	Source     ports.ContentSource
	Engine     *analysis.Engine
	Remote     ports.RemoteScorer
	Repository ports.ReportRepository
	Notifier   ports.Notifier
	Reviser    *revision.Engine
	Logger     *slog.Logger
}

// Pipeline implements the audit workflow: fetch, score, rank, synthesize,
// persist, notify, and optionally revise.
type Pipeline struct {
	source     ports.ContentSource
	engine     *analysis.Engine
	remote     ports.RemoteScorer
	repository ports.ReportRepository
	notifier   ports.Notifier
	reviser    *revision.Engine
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		engine:     deps.Engine,
		remote:     deps.Remote,
		repository: deps.Repository,
		notifier:   deps.Notifier,
		reviser:    deps.Reviser,
		logger:     deps.Logger,
	}
}

// Audit analyzes a single page and returns its report. Fetch degradation is
// recovered upstream (the source substitutes seed content); only synthesis
// problems surface as errors.
func (p *Pipeline) Audit(ctx context.Context, url string) (domain.Report, error) {
	doc, err := p.source.Fetch(ctx, url)
	if err != nil {
		return domain.Report{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	if !doc.Live {
		p.debug("scoring fallback content", "url", url)
	}

	results := p.scoreDocument(ctx, doc)

	rep, err := report.Synthesize(doc, results)
	if err != nil {
		return domain.Report{}, fmt.Errorf("synthesize %s: %w", url, err)
	}

	if p.repository != nil {
		if prev, ok, hErr := p.repository.LastScore(ctx, url); hErr != nil {
			p.debug("score history unavailable", "url", url, "error", hErr)
		} else if ok && p.logger != nil {
			p.logger.Info("score change",
				"url", url, "previous", prev, "current", rep.Overall.WeightedScore,
				"delta", rep.Overall.WeightedScore-prev)
		}
		if err := p.repository.SaveReport(ctx, rep); err != nil {
			return domain.Report{}, fmt.Errorf("persist report %s: %w", url, err)
		}
	}

	if p.notifier != nil {
		if err := p.notifier.PublishSummary(ctx, buildSummary(rep)); err != nil {
			return domain.Report{}, fmt.Errorf("publish summary %s: %w", url, err)
		}
	}

	return rep, nil
}

// scoreDocument prefers the remote backend when configured and falls back to
// the local engine on any remote failure. Remote scoring is an override, not
// a requirement.
func (p *Pipeline) scoreDocument(ctx context.Context, doc domain.Document) map[domain.Dimension]domain.DimensionResult {
	if p.remote != nil {
		results, err := p.remote.Score(ctx, doc)
		if err == nil && results != nil {
			p.debug("using remote scores", "url", doc.URL)
			return results
		}
		p.debug("remote scorer unavailable, using local engine", "url", doc.URL, "error", err)
	}
	return p.engine.Analyze(ctx, doc)
}

// Revise fetches a page and runs the rewrite passes over its body.
func (p *Pipeline) Revise(ctx context.Context, url string) (domain.RevisionResult, error) {
	if p.reviser == nil {
		return domain.RevisionResult{}, fmt.Errorf("revision engine not configured")
	}

	doc, err := p.source.Fetch(ctx, url)
	if err != nil {
		return domain.RevisionResult{}, fmt.Errorf("fetch %s: %w", url, err)
	}

	return p.reviser.Revise(doc.Body), nil
}

// RunAll audits every configured page. Synthesis failures produce a
// structured error report in the log and do not abort the remaining pages.
func (p *Pipeline) RunAll(ctx context.Context, urls []string) error {
	var failures int
	for _, url := range urls {
		rep, err := p.Audit(ctx, url)
		if err != nil {
			failures++
			errReport := report.NewErrorReport(url, err)
			payload, _ := json.Marshal(errReport)
			if p.logger != nil {
				p.logger.Error("audit failed", "url", url, "report", string(payload))
			}
			continue
		}

		if p.logger != nil {
			p.logger.Info("audit complete",
				"url", url,
				"score", rep.Overall.WeightedScore,
				"grade", rep.Overall.LetterGrade,
				"tier", rep.Overall.AccessibilityTier,
				"retrieval", rep.Metadata.Retrieval)
		}

		if p.reviser != nil {
			result, rErr := p.Revise(ctx, url)
			if rErr != nil {
				p.debug("revision skipped", "url", url, "error", rErr)
				continue
			}
			if p.logger != nil {
				p.logger.Info("revision complete",
					"url", url,
					"revisions", result.Summary.TotalRevisions,
					"verdict", result.Summary.ReadabilityVerdict)
			}
		}
	}

	if failures == len(urls) && len(urls) > 0 {
		return fmt.Errorf("all %d audits failed", failures)
	}
	return nil
}

// buildSummary renders the short digest pushed to the notifier.
func buildSummary(rep domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", rep.Metadata.Title)
	fmt.Fprintf(&b, "Score: %.1f/100 (Grade %s, %s accessibility)\n",
		rep.Overall.WeightedScore, rep.Overall.LetterGrade, rep.Overall.AccessibilityTier)
	fmt.Fprintf(&b, "%s\n", rep.Impact.RecommendedAction)

	top := rep.Recommendations
	if len(top) > 3 {
		top = top[:3]
	}
	for i, item := range top {
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, item.Priority, item.Action)
	}

	return b.String()
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
