package analysis

import (
	"strings"

	"DocAuditor/internal/domain"
)

// StyleScorer checks the prose against reader-focused style rules: direct
// second-person address, action verbs, limited passive voice, no filler
// phrasing, consistent terminology.
type StyleScorer struct{}

func (StyleScorer) Dimension() domain.Dimension { return domain.DimStyle }

func (StyleScorer) Score(doc domain.Document) domain.DimensionResult {
	lower := strings.ToLower(doc.Body)
	score := 75
	var suggestions []string

	if !containsAny(lower, secondPersonMarkers) {
		suggestions = append(suggestions,
			"Use second-person language (you, your) to make instructions more personal")
		score -= 15
	}

	actionCount := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			actionCount++
		}
	}
	if actionCount < 3 {
		suggestions = append(suggestions, "Use more action-oriented language with specific verbs")
		score -= 10
	}

	passiveCount := 0
	for _, indicator := range passiveIndicators {
		if strings.Contains(lower, indicator) {
			passiveCount++
		}
	}
	if passiveCount > 3 {
		suggestions = append(suggestions,
			"Reduce passive voice - use active voice for clearer instructions")
		score -= 10
	}

	if containsAny(lower, wordyPhrases) {
		suggestions = append(suggestions, "Eliminate wordy phrases for more concise communication")
		score -= 5
	}

	if strings.Contains(lower, "login") && strings.Contains(lower, "log in") {
		suggestions = append(suggestions,
			"Use consistent terminology throughout (choose 'log in' or 'login')")
		score -= 5
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Writing style follows good practices for the audience")
	}

	if score < 40 {
		score = 40
	}

	assessment := "Appropriate style for non-technical readers"
	if score < 70 {
		assessment = "Style needs improvement"
	}

	return domain.DimensionResult{
		Score:      score,
		Assessment: assessment,
		Metrics: map[string]float64{
			"action_verb_hits":   float64(actionCount),
			"passive_indicators": float64(passiveCount),
		},
		Suggestions: suggestions,
	}
}
