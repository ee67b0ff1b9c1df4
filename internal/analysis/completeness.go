package analysis

import (
	"strings"

	"DocAuditor/internal/domain"
)

// CompletenessScorer checks whether the article carries the elements a
// non-technical reader needs to succeed: examples, troubleshooting help,
// prerequisites, enough depth, and a stated business value.
type CompletenessScorer struct{}

func (CompletenessScorer) Dimension() domain.Dimension { return domain.DimCompleteness }

func (CompletenessScorer) Score(doc domain.Document) domain.DimensionResult {
	lower := strings.ToLower(doc.Body)
	score := 70
	var suggestions []string

	if !containsAny(lower, exampleMarkers) {
		suggestions = append(suggestions,
			"Add concrete examples to show practical applications")
		score -= 15
	}

	if !containsAny(lower, troubleshootingMarkers) {
		suggestions = append(suggestions,
			"Include a troubleshooting section for common issues readers might face")
		score -= 10
	}

	if !containsAny(lower, prerequisiteMarkers) {
		suggestions = append(suggestions, "Add a prerequisites section to set expectations")
		score -= 5
	}

	wordCount := doc.WordCount
	if wordCount == 0 {
		wordCount = WordCount(doc.Body)
	}
	if wordCount < 300 {
		suggestions = append(suggestions,
			"Content seems brief - consider adding more detailed explanations")
		score -= 15
	} else if wordCount > 2000 {
		suggestions = append(suggestions,
			"Content is quite long - consider breaking it into multiple focused articles")
		score -= 5
	}

	if !containsAny(lower, businessValueMarkers) {
		suggestions = append(suggestions,
			"Add a business value explanation so readers understand why this matters")
		score -= 10
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Content covers what readers need to succeed")
	}

	if score < 30 {
		score = 30
	}

	assessment := "Complete for reader needs"
	if score < 70 {
		assessment = "Missing key information"
	}

	return domain.DimensionResult{
		Score:       score,
		Assessment:  assessment,
		Metrics:     map[string]float64{"word_count": float64(wordCount)},
		Suggestions: suggestions,
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
