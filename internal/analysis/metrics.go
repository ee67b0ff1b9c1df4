package analysis

import "strings"

// ReadabilityIndices holds the three established indices the readability
// scorer buckets on.
type ReadabilityIndices struct {
	GradeLevel  float64 // Flesch-Kincaid grade estimate
	FogIndex    float64 // Gunning fog complexity index
	ReadingEase float64 // Flesch reading ease, higher = easier
}

// IndexProvider computes readability indices for a body of text. The full
// calculator is the default; when a provider is absent or errors, the scorer
// switches to a closed-form approximation so that scoring never fails. Both
// paths feed the same buckets.
type IndexProvider interface {
	Indices(text string) (ReadabilityIndices, error)
}

// IndexCalculator is the local, syllable-based implementation of the three
// indices.
type IndexCalculator struct{}

func (IndexCalculator) Indices(text string) (ReadabilityIndices, error) {
	words := strings.Fields(text)
	sentences := SplitSentences(text)

	wordCount := float64(len(words))
	sentenceCount := float64(len(sentences))
	if wordCount == 0 || sentenceCount == 0 {
		// Degenerate text scores as neutral rather than erroring.
		return approximateIndices(20), nil
	}

	syllables := 0.0
	complexWords := 0.0
	for _, word := range words {
		s := countSyllables(word)
		syllables += float64(s)
		if s >= 3 {
			complexWords++
		}
	}

	wps := wordCount / sentenceCount
	spw := syllables / wordCount

	return ReadabilityIndices{
		GradeLevel:  0.39*wps + 11.8*spw - 15.59,
		FogIndex:    0.4 * (wps + 100*complexWords/wordCount),
		ReadingEase: 206.835 - 1.015*wps - 84.6*spw,
	}, nil
}

// approximateIndices is the fallback formula driven by average sentence
// length alone. It produces indices in the same ranges as the calculator so
// callers cannot tell which path ran except via the method tag.
func approximateIndices(avgWordsPerSentence float64) ReadabilityIndices {
	return ReadabilityIndices{
		GradeLevel:  avgWordsPerSentence*0.39 + 11.8 - 15.59,
		FogIndex:    avgWordsPerSentence*0.4 + 12,
		ReadingEase: 206.835 - 1.015*avgWordsPerSentence,
	}
}

// countSyllables estimates syllables as vowel groups, with the usual silent-e
// correction and a minimum of one.
func countSyllables(word string) int {
	word = strings.ToLower(strings.Trim(word, ".,;:!?\"'()[]"))
	if word == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
