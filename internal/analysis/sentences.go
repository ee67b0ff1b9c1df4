package analysis

import (
	"strings"

	"DocAuditor/internal/domain"
)

// SplitSentences segments text with the one segmentation rule shared by
// every component that counts sentences: normalize '!' and '?' to '.', split
// on '.', trim, drop empties. Keeping a single rule is what makes sentence
// metrics comparable across dimensions and revision summaries.
func SplitSentences(text string) []string {
	normalized := strings.NewReplacer("!", ".", "?", ".").Replace(text)
	parts := strings.Split(normalized, ".")
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ContentStats computes the word/sentence counts used by scorers and by the
// revision summary. Division by zero defaults to a neutral zero average.
func ContentStats(text string) domain.ContentStats {
	words := WordCount(text)
	sentences := len(SplitSentences(text))

	avg := 0.0
	if sentences > 0 {
		avg = float64(words) / float64(sentences)
	}

	return domain.ContentStats{
		Words:             words,
		Sentences:         sentences,
		AvgSentenceLength: avg,
	}
}

// avgSentenceLength returns words per sentence with a safe default of 20
// when the text has no sentences at all, matching the neutral value the
// approximate readability formulas assume.
func avgSentenceLength(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return 20
	}
	return float64(WordCount(text)) / float64(len(sentences))
}

// longSentences returns the sentences with more than limit words.
func longSentences(text string, limit int) []string {
	var long []string
	for _, sentence := range SplitSentences(text) {
		if WordCount(sentence) > limit {
			long = append(long, sentence)
		}
	}
	return long
}
