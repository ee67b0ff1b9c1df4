package analysis

import (
	"strings"
	"testing"

	"DocAuditor/internal/domain"
)

func TestCompletenessScorerComplete(t *testing.T) {
	t.Parallel()

	doc := domain.Document{
		Body: "For example, check the report. If you hit a problem, see the " +
			"troubleshooting notes. Prerequisite: an admin account. " +
			"This data helps you improve campaign results.",
		WordCount: 500,
	}

	result := CompletenessScorer{}.Score(doc)
	if result.Score != 70 {
		t.Fatalf("expected full base score 70, got %d", result.Score)
	}
	if result.Assessment != "Complete for reader needs" {
		t.Fatalf("unexpected assessment: %q", result.Assessment)
	}
	if result.Metrics["word_count"] != 500 {
		t.Fatalf("expected extracted word count in metrics, got %v", result.Metrics)
	}
	if len(result.Suggestions) != 1 {
		t.Fatalf("expected single affirming suggestion, got %v", result.Suggestions)
	}
}

func TestCompletenessScorerAllPenalties(t *testing.T) {
	t.Parallel()

	result := CompletenessScorer{}.Score(domain.Document{Body: "short text only"})

	// 70 - 15 (examples) - 10 (troubleshooting) - 5 (prerequisites)
	//    - 15 (brief) - 10 (business value) = 15 → floor 30.
	if result.Score != 30 {
		t.Fatalf("expected floored score 30, got %d", result.Score)
	}
	if result.Assessment != "Missing key information" {
		t.Fatalf("unexpected assessment: %q", result.Assessment)
	}
	if len(result.Suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %v", result.Suggestions)
	}
}

func TestCompletenessScorerLongContentPenalty(t *testing.T) {
	t.Parallel()

	body := "For example, troubleshoot issues before you improve things. " +
		strings.Repeat("filler ", 2100)

	result := CompletenessScorer{}.Score(domain.Document{Body: body})
	// Only the >2000 word penalty applies: 70 - 5.
	if result.Score != 65 {
		t.Fatalf("expected 65 for overlong content, got %d", result.Score)
	}
}

func TestCompletenessScorerCountsBodyWhenWordCountMissing(t *testing.T) {
	t.Parallel()

	result := CompletenessScorer{}.Score(domain.Document{Body: "one two three"})
	if result.Metrics["word_count"] != 3 {
		t.Fatalf("expected word_count 3 from body, got %v", result.Metrics)
	}
}
