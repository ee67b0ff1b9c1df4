package analysis

import (
	"context"
	"math"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"DocAuditor/internal/domain"
)

// DimensionScorer is a pure function from a Document to one dimension's
// result. Scorers share no state and never fail; degenerate input yields a
// floor score, not an error.
type DimensionScorer interface {
	Dimension() domain.Dimension
	Score(doc domain.Document) domain.DimensionResult
}

// Engine evaluates all four dimensions of a document. The scorers have no
// data dependency on each other, so they run concurrently; results are
// identical to sequential evaluation.
type Engine struct {
	scorers []DimensionScorer
}

// NewEngine builds the default engine with the full readability index
// calculator installed.
func NewEngine() *Engine {
	return NewEngineWithProvider(IndexCalculator{})
}

// NewEngineWithProvider allows swapping the readability index provider,
// primarily so tests can force the approximate path.
func NewEngineWithProvider(provider IndexProvider) *Engine {
	return &Engine{
		scorers: []DimensionScorer{
			ReadabilityScorer{Provider: provider},
			StructureScorer{},
			CompletenessScorer{},
			StyleScorer{},
		},
	}
}

// Analyze runs every scorer against the same immutable document.
func (e *Engine) Analyze(ctx context.Context, doc domain.Document) map[domain.Dimension]domain.DimensionResult {
	results := make(map[domain.Dimension]domain.DimensionResult, len(e.scorers))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(ctx)
	for _, scorer := range e.scorers {
		g.Go(func() error {
			result := scorer.Score(doc)
			mu.Lock()
			results[scorer.Dimension()] = result
			mu.Unlock()
			return nil
		})
	}
	// Scorers are pure and return no errors.
	_ = g.Wait()

	return results
}

// Complexity derives the content-profile indicators from the body text.
func Complexity(body string) domain.ComplexityIndicators {
	words := strings.Fields(body)
	sentences := SplitSentences(body)

	jargonCount := 0
	for _, term := range complexityJargon {
		if strings.Contains(body, term) {
			jargonCount++
		}
	}

	complexWords := 0
	for _, word := range words {
		if len(word) > 8 {
			complexWords++
		}
	}

	ratio := 0.0
	avg := 0.0
	level := 12.0
	if len(words) > 0 {
		ratio = float64(complexWords) / float64(len(words))
	}
	if len(sentences) > 0 {
		avg = float64(len(words)) / float64(len(sentences))
		level = math.Min(16, math.Max(6, avg*0.4+5))
	}

	return domain.ComplexityIndicators{
		AvgSentenceLength:     avg,
		JargonDensity:         jargonCount,
		ComplexWordRatio:      math.Round(ratio*1000) / 1000,
		EstimatedReadingLevel: level,
	}
}
