package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"DocAuditor/internal/analysis"
	"DocAuditor/internal/domain"
	"DocAuditor/internal/infrastructure/fetch"
	"DocAuditor/internal/report"
	"DocAuditor/internal/revision"
)

type stubSource struct {
	doc domain.Document
	err error
}

func (s stubSource) Fetch(ctx context.Context, url string) (domain.Document, error) {
	if s.err != nil {
		return domain.Document{}, s.err
	}
	doc := s.doc
	doc.URL = url
	return doc, nil
}

type stubRemote struct {
	results map[domain.Dimension]domain.DimensionResult
	err     error
}

func (s stubRemote) Score(ctx context.Context, doc domain.Document) (map[domain.Dimension]domain.DimensionResult, error) {
	return s.results, s.err
}

type captureRepository struct {
	saved []domain.Report
}

func (r *captureRepository) SaveReport(ctx context.Context, report domain.Report) error {
	r.saved = append(r.saved, report)
	return nil
}

func (r *captureRepository) LastScore(ctx context.Context, url string) (float64, bool, error) {
	return 0, false, nil
}

type captureNotifier struct {
	summaries []string
}

func (n *captureNotifier) PublishSummary(ctx context.Context, summary string) error {
	n.summaries = append(n.summaries, summary)
	return nil
}

func remoteResults(score int) map[domain.Dimension]domain.DimensionResult {
	results := make(map[domain.Dimension]domain.DimensionResult)
	for _, dim := range domain.Dimensions() {
		results[dim] = domain.DimensionResult{
			Score:       score,
			Assessment:  "remote",
			Suggestions: []string{"remote suggestion"},
		}
	}
	return results
}

func TestAuditWithSeedContent(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(PipelineDeps{
		Source: stubSource{doc: fetch.SeedDocument("https://example.com/articles/1")},
		Engine: analysis.NewEngine(),
	})

	rep, err := pipeline.Audit(context.Background(), "https://example.com/articles/1")
	if err != nil {
		t.Fatalf("Audit returned error: %v", err)
	}

	if rep.Metadata.Retrieval != "fallback" {
		t.Fatalf("expected fallback retrieval, got %s", rep.Metadata.Retrieval)
	}
	if len(rep.Dimensions) != 4 {
		t.Fatalf("expected all dimensions scored, got %d", len(rep.Dimensions))
	}
	// The seed article is third person, so style lands at 60.
	if rep.Dimensions[domain.DimStyle].Score != 60 {
		t.Fatalf("expected style 60 on seed content, got %d", rep.Dimensions[domain.DimStyle].Score)
	}
	if len(rep.Recommendations) == 0 || len(rep.Recommendations) > 8 {
		t.Fatalf("expected 1..8 recommendations, got %d", len(rep.Recommendations))
	}
}

func TestAuditPrefersRemoteScores(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(PipelineDeps{
		Source: stubSource{doc: fetch.SeedDocument("u")},
		Engine: analysis.NewEngine(),
		Remote: stubRemote{results: remoteResults(88)},
	})

	rep, err := pipeline.Audit(context.Background(), "https://example.com/articles/1")
	if err != nil {
		t.Fatalf("Audit returned error: %v", err)
	}
	for _, dim := range domain.Dimensions() {
		if rep.Dimensions[dim].Score != 88 {
			t.Fatalf("expected remote score 88 for %s, got %d", dim, rep.Dimensions[dim].Score)
		}
	}
	if rep.Overall.WeightedScore != 88 {
		t.Fatalf("expected weighted 88, got %f", rep.Overall.WeightedScore)
	}
}

func TestAuditFallsBackToLocalScoring(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(PipelineDeps{
		Source: stubSource{doc: fetch.SeedDocument("u")},
		Engine: analysis.NewEngine(),
		Remote: stubRemote{err: errors.New("remote down")},
	})

	rep, err := pipeline.Audit(context.Background(), "https://example.com/articles/1")
	if err != nil {
		t.Fatalf("Audit returned error: %v", err)
	}
	if rep.Dimensions[domain.DimStyle].Assessment == "remote" {
		t.Fatalf("remote result used despite error")
	}
	if len(rep.Dimensions) != 4 {
		t.Fatalf("expected local scoring to cover all dimensions")
	}
}

func TestAuditPersistsAndNotifies(t *testing.T) {
	t.Parallel()

	repo := &captureRepository{}
	notifier := &captureNotifier{}
	pipeline := NewPipeline(PipelineDeps{
		Source:     stubSource{doc: fetch.SeedDocument("u")},
		Engine:     analysis.NewEngine(),
		Repository: repo,
		Notifier:   notifier,
	})

	rep, err := pipeline.Audit(context.Background(), "https://example.com/articles/1")
	if err != nil {
		t.Fatalf("Audit returned error: %v", err)
	}

	if len(repo.saved) != 1 || repo.saved[0].Metadata.ID != rep.Metadata.ID {
		t.Fatalf("expected report persisted once")
	}
	if len(notifier.summaries) != 1 {
		t.Fatalf("expected one summary published")
	}

	summary := notifier.summaries[0]
	if !strings.Contains(summary, rep.Metadata.Title) {
		t.Fatalf("summary missing title: %q", summary)
	}
	if !strings.Contains(summary, rep.Overall.LetterGrade) {
		t.Fatalf("summary missing grade: %q", summary)
	}
}

func TestAuditPropagatesFetchError(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(PipelineDeps{
		Source: stubSource{err: context.Canceled},
		Engine: analysis.NewEngine(),
	})

	_, err := pipeline.Audit(context.Background(), "https://example.com/articles/1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestAuditSynthesisFailure(t *testing.T) {
	t.Parallel()

	// A remote backend returning an out-of-range score poisons synthesis.
	pipeline := NewPipeline(PipelineDeps{
		Source: stubSource{doc: fetch.SeedDocument("u")},
		Engine: analysis.NewEngine(),
		Remote: stubRemote{results: remoteResults(150)},
	})

	_, err := pipeline.Audit(context.Background(), "https://example.com/articles/1")
	if !errors.Is(err, domain.ErrSynthesis) {
		t.Fatalf("expected ErrSynthesis, got %v", err)
	}
}

func TestReviseRequiresConfiguredEngine(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(PipelineDeps{
		Source: stubSource{doc: fetch.SeedDocument("u")},
		Engine: analysis.NewEngine(),
	})

	if _, err := pipeline.Revise(context.Background(), "https://example.com/articles/1"); err == nil {
		t.Fatalf("expected error without a revision engine")
	}
}

func TestReviseRunsPasses(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(PipelineDeps{
		Source:  stubSource{doc: fetch.SeedDocument("u")},
		Engine:  analysis.NewEngine(),
		Reviser: revision.NewEngine(),
	})

	result, err := pipeline.Revise(context.Background(), "https://example.com/articles/1")
	if err != nil {
		t.Fatalf("Revise returned error: %v", err)
	}
	if result.Summary.TotalRevisions == 0 {
		t.Fatalf("expected the seed article to attract revisions")
	}
	if result.RevisedContent == result.OriginalContent {
		t.Fatalf("expected content changes on the seed article")
	}
}

func TestBuildSummaryCapsRecommendations(t *testing.T) {
	t.Parallel()

	rep := domain.Report{
		Metadata: domain.AnalysisMetadata{Title: "Sample"},
		Overall:  domain.OverallAssessment{WeightedScore: 72.5, LetterGrade: "C", AccessibilityTier: "Medium"},
		Impact:   domain.BusinessImpact{RecommendedAction: "MODERATE: Improve before wider distribution"},
		Recommendations: []domain.ActionItem{
			{Priority: domain.PriorityCritical, Action: "one"},
			{Priority: domain.PriorityHigh, Action: "two"},
			{Priority: domain.PriorityMedium, Action: "three"},
			{Priority: domain.PriorityLow, Action: "four"},
		},
	}

	summary := buildSummary(rep)
	if !strings.Contains(summary, "*Sample*") {
		t.Fatalf("summary missing title line: %q", summary)
	}
	if !strings.Contains(summary, "three") {
		t.Fatalf("expected third recommendation included: %q", summary)
	}
	if strings.Contains(summary, "four") {
		t.Fatalf("expected summary capped at three recommendations: %q", summary)
	}
}

func TestRunAllContinuesPastFailures(t *testing.T) {
	t.Parallel()

	repo := &captureRepository{}
	pipeline := NewPipeline(PipelineDeps{
		Source:     stubSource{doc: fetch.SeedDocument("u")},
		Engine:     analysis.NewEngine(),
		Repository: repo,
	})

	err := pipeline.RunAll(context.Background(), []string{"https://example.com/a", "https://example.com/b"})
	if err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}
	if len(repo.saved) != 2 {
		t.Fatalf("expected both pages audited, got %d", len(repo.saved))
	}
}

func TestRunAllReportsTotalFailure(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(PipelineDeps{
		Source: stubSource{err: errors.New("network gone")},
		Engine: analysis.NewEngine(),
	})

	if err := pipeline.RunAll(context.Background(), []string{"https://example.com/a"}); err == nil {
		t.Fatalf("expected error when every audit fails")
	}
}

// Sanity check: seed content audited end to end produces exactly the
// contractual synthesis shape used by the persisted JSON reports.
func TestAuditReportShape(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(PipelineDeps{
		Source: stubSource{doc: fetch.SeedDocument("u")},
		Engine: analysis.NewEngine(),
	})

	rep, err := pipeline.Audit(context.Background(), "https://example.com/articles/1")
	if err != nil {
		t.Fatalf("Audit returned error: %v", err)
	}

	if rep.Metadata.Version != report.AnalyzerVersion {
		t.Fatalf("unexpected analyzer version %q", rep.Metadata.Version)
	}
	if rep.Profile.WordCount == 0 {
		t.Fatalf("expected profiled word count")
	}
	if rep.Overall.LetterGrade == "" || rep.Overall.AccessibilityTier == "" {
		t.Fatalf("incomplete overall assessment: %+v", rep.Overall)
	}
	if rep.Impact.RecommendedAction == "" {
		t.Fatalf("missing recommended action")
	}
}
