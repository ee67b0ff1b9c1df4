package analysis

import (
	"fmt"
	"math"
	"strings"

	"DocAuditor/internal/domain"
)

const (
	methodIndices     = "indices"
	methodApproximate = "approximate"
)

// ReadabilityScorer grades prose difficulty for non-technical readers. The
// score is a step function of the reading-ease index, not a continuous
// formula; the bucket boundaries are part of the contract.
type ReadabilityScorer struct {
	Provider IndexProvider
}

func (s ReadabilityScorer) Dimension() domain.Dimension { return domain.DimReadability }

func (s ReadabilityScorer) Score(doc domain.Document) domain.DimensionResult {
	body := doc.Body

	method := methodIndices
	var indices ReadabilityIndices
	if s.Provider != nil {
		var err error
		indices, err = s.Provider.Indices(body)
		if err != nil {
			method = methodApproximate
		}
	} else {
		method = methodApproximate
	}
	if method == methodApproximate {
		indices = approximateIndices(avgSentenceLength(body))
	}

	score, assessment := bucketEase(indices.ReadingEase)

	var suggestions []string
	if indices.GradeLevel > 10 {
		suggestions = append(suggestions,
			fmt.Sprintf("Reading level is Grade %.1f - aim for Grade 8-10 for a non-technical audience", indices.GradeLevel))
	}
	if indices.FogIndex > 12 {
		suggestions = append(suggestions,
			fmt.Sprintf("Gunning Fog index is %.1f - reduce sentence complexity and technical terms", indices.FogIndex))
	}
	if found := detectJargon(body); len(found) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Replace technical jargon: %s with plain-language terms", strings.Join(found, ", ")))
	}
	if long := longSentences(body, 25); len(long) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Break up %d sentences longer than 25 words", len(long)))
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Readability is appropriate for the target audience")
	}

	return domain.DimensionResult{
		Score:      score,
		Assessment: assessment,
		Metrics: map[string]float64{
			"flesch_kincaid_grade": round1(indices.GradeLevel),
			"gunning_fog_index":    round1(indices.FogIndex),
			"reading_ease_score":   round1(indices.ReadingEase),
			"avg_sentence_length":  round1(avgSentenceLength(body)),
		},
		Suggestions: suggestions,
		Method:      method,
	}
}

// bucketEase maps the ease index onto the five contractual score buckets.
func bucketEase(ease float64) (int, string) {
	switch {
	case ease >= 70:
		return 95, "Excellent for non-technical readers"
	case ease >= 60:
		return 80, "Good for non-technical readers"
	case ease >= 50:
		return 65, "Acceptable for non-technical readers"
	case ease >= 40:
		return 45, "Challenging for non-technical readers"
	default:
		return 25, "Too complex for non-technical readers"
	}
}

// detectJargon returns up to three "'term' → 'replacement'" pairs for jargon
// present in the content. Matching is case-sensitive on purpose.
func detectJargon(content string) []string {
	var found []string
	for _, j := range jargonTerms {
		if strings.Contains(content, j.Term) {
			found = append(found, fmt.Sprintf("'%s' → '%s'", j.Term, j.Replacement))
			if len(found) == 3 {
				break
			}
		}
	}
	return found
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
