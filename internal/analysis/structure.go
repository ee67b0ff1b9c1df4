package analysis

import (
	"fmt"
	"strings"
	"unicode"

	"DocAuditor/internal/domain"
)

const (
	methodRich     = "rich"
	methodTextOnly = "text-only"
)

// StructureScorer grades navigability. Two interchangeable strategies hide
// behind it: the rich path reads the Document's extracted headings, lists and
// paragraphs; the text-only path infers structure from the body alone for
// sources that provide no structural extraction. Rich is the default
// whenever any headings or lists are present.
type StructureScorer struct{}

func (StructureScorer) Dimension() domain.Dimension { return domain.DimStructure }

func (s StructureScorer) Score(doc domain.Document) domain.DimensionResult {
	if len(doc.Headings) > 0 || len(doc.Lists) > 0 {
		return s.scoreRich(doc)
	}
	return s.scoreTextOnly(doc.Body)
}

func (StructureScorer) scoreRich(doc domain.Document) domain.DimensionResult {
	score := 70
	var suggestions []string

	if len(doc.Headings) < 3 {
		suggestions = append(suggestions,
			fmt.Sprintf("Add more section headings to improve navigation (currently %d)", len(doc.Headings)))
		score -= 15
	} else if len(doc.Headings) > 8 {
		suggestions = append(suggestions,
			"Consider consolidating sections - too many headings can confuse readers")
		score -= 5
	}

	if len(doc.Lists) == 0 {
		suggestions = append(suggestions,
			"Convert dense text to bullet points or numbered lists for better scannability")
		score -= 10
	}

	longParagraphs := 0
	for _, p := range doc.Paragraphs {
		if WordCount(p) > 100 {
			longParagraphs++
		}
	}
	if longParagraphs > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("Break up %d paragraphs longer than 100 words", longParagraphs))
		score -= 10
	}

	lower := strings.ToLower(doc.Body)
	hasSteps := strings.Contains(doc.Body, "1.") || strings.Contains(lower, "step")
	if strings.Contains(lower, "how to") && !hasSteps {
		suggestions = append(suggestions, "Add numbered steps for 'how to' procedures")
		score -= 10
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Document structure supports good navigation")
	}

	if score < 30 {
		score = 30
	}

	return domain.DimensionResult{
		Score:       score,
		Assessment:  structureAssessment(score),
		Suggestions: suggestions,
		Method:      methodRich,
	}
}

func (StructureScorer) scoreTextOnly(body string) domain.DimensionResult {
	score := 75
	var suggestions []string

	headings := inferredHeadings(body)
	if len(headings) >= 3 {
		score += 10
	} else if len(headings) < 2 {
		suggestions = append(suggestions, "Add more section headings to improve navigation")
		score -= 15
	}

	if strings.Contains(body, "1.") || strings.Contains(body, "2.") {
		score += 5
	} else {
		suggestions = append(suggestions, "Use numbered lists for step-by-step procedures")
	}
	if strings.Contains(body, "-") || strings.Contains(body, "•") {
		score += 5
	} else {
		suggestions = append(suggestions, "Use bullet points to break up dense text")
	}

	blocks := 0
	for _, block := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(block) != "" {
			blocks++
		}
	}
	if blocks > 10 {
		suggestions = append(suggestions, "Consider splitting the document - it has many separate blocks")
		score -= 5
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Document structure supports good navigation")
	}

	if score < 30 {
		score = 30
	}
	if score > 100 {
		score = 100
	}

	return domain.DimensionResult{
		Score:       score,
		Assessment:  structureAssessment(score),
		Suggestions: suggestions,
		Method:      methodTextOnly,
	}
}

func structureAssessment(score int) string {
	if score >= 75 {
		return "Well-organized for non-technical readers"
	}
	return "Structure needs improvement"
}

// inferredHeadings treats short title-cased lines as headings when no
// structural extraction is available.
func inferredHeadings(body string) []string {
	var headings []string
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) >= 80 {
			continue
		}
		if isTitleCased(trimmed) {
			headings = append(headings, trimmed)
		}
	}
	return headings
}

// isTitleCased reports whether every word of the line starts with an
// uppercase letter, ignoring non-letter tokens.
func isTitleCased(line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}
	sawLetter := false
	for _, word := range words {
		runes := []rune(word)
		first := runes[0]
		if !unicode.IsLetter(first) {
			continue
		}
		sawLetter = true
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return sawLetter
}
