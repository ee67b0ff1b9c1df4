package analysis

import (
	"strings"
	"testing"

	"DocAuditor/internal/domain"
)

func TestStructureScorerRichWellOrganized(t *testing.T) {
	t.Parallel()

	doc := domain.Document{
		Body: "How to use the report\n1. Open it\n2. Read it",
		Headings: []domain.Heading{
			{Level: 1, Text: "Title"},
			{Level: 2, Text: "Setup"},
			{Level: 2, Text: "Usage"},
		},
		Paragraphs: []string{"A short paragraph about the report."},
		Lists:      []domain.List{{Kind: domain.ListOrdered, Items: []string{"Open it", "Read it"}}},
	}

	result := StructureScorer{}.Score(doc)
	if result.Method != "rich" {
		t.Fatalf("expected rich method, got %q", result.Method)
	}
	if result.Score != 70 {
		t.Fatalf("expected base score 70 with no penalties, got %d", result.Score)
	}
	if len(result.Suggestions) != 1 || !strings.Contains(result.Suggestions[0], "good navigation") {
		t.Fatalf("expected affirming suggestion, got %v", result.Suggestions)
	}
}

func TestStructureScorerRichPenalties(t *testing.T) {
	t.Parallel()

	longParagraph := strings.Repeat("word ", 101)
	doc := domain.Document{
		Body:       "How to configure everything without numbered guidance",
		Headings:   []domain.Heading{{Level: 1, Text: "Only One"}},
		Paragraphs: []string{longParagraph},
	}

	result := StructureScorer{}.Score(doc)
	if result.Method != "rich" {
		t.Fatalf("expected rich method (headings present), got %q", result.Method)
	}
	// 70 - 15 (few headings) - 10 (no lists) - 10 (long paragraph) - 10 (how-to without steps) = 25 → floor 30.
	if result.Score != 30 {
		t.Fatalf("expected floored score 30, got %d", result.Score)
	}
	if result.Assessment != "Structure needs improvement" {
		t.Fatalf("unexpected assessment: %q", result.Assessment)
	}
	if len(result.Suggestions) != 4 {
		t.Fatalf("expected 4 suggestions, got %v", result.Suggestions)
	}
}

func TestStructureScorerRichTooManyHeadings(t *testing.T) {
	t.Parallel()

	headings := make([]domain.Heading, 9)
	for i := range headings {
		headings[i] = domain.Heading{Level: 2, Text: "Section"}
	}
	doc := domain.Document{
		Body:     "Plain prose",
		Headings: headings,
		Lists:    []domain.List{{Kind: domain.ListUnordered, Items: []string{"one"}}},
	}

	result := StructureScorer{}.Score(doc)
	if result.Score != 65 {
		t.Fatalf("expected 70-5 for heading overload, got %d", result.Score)
	}
}

func TestStructureScorerTextOnlyGood(t *testing.T) {
	t.Parallel()

	body := "Getting Started\n" +
		"this section explains the basics of the report.\n" +
		"Detailed Steps\n" +
		"1. open the dashboard\n" +
		"- check the filters\n" +
		"Final Notes\n" +
		"that is all."

	result := StructureScorer{}.Score(domain.Document{Body: body})
	if result.Method != "text-only" {
		t.Fatalf("expected text-only method, got %q", result.Method)
	}
	// 75 + 10 (inferred headings) + 5 (numbered) + 5 (bullets) = 95.
	if result.Score != 95 {
		t.Fatalf("expected 95, got %d", result.Score)
	}
	if result.Assessment != "Well-organized for non-technical readers" {
		t.Fatalf("unexpected assessment: %q", result.Assessment)
	}
}

func TestStructureScorerTextOnlyUnstructured(t *testing.T) {
	t.Parallel()

	result := StructureScorer{}.Score(domain.Document{
		Body: "this is plain text without structure markers at all",
	})
	if result.Method != "text-only" {
		t.Fatalf("expected text-only method, got %q", result.Method)
	}
	// 75 - 15 (no headings); list suggestions carry no penalty.
	if result.Score != 60 {
		t.Fatalf("expected 60, got %d", result.Score)
	}
	if len(result.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %v", result.Suggestions)
	}
}

func TestInferredHeadings(t *testing.T) {
	t.Parallel()

	body := "Getting Started\n" +
		"a lowercase line\n" +
		strings.Repeat("Long Title Words ", 10) + "\n" +
		"Another Section"

	headings := inferredHeadings(body)
	if len(headings) != 2 {
		t.Fatalf("expected 2 inferred headings, got %v", headings)
	}
}

func TestIsTitleCased(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"Getting Started":  true,
		"getting started":  false,
		"Getting started":  false,
		"1. Numbered Line": true,
		"":                 false,
		"123 456":          false,
	}
	for line, want := range cases {
		if got := isTitleCased(line); got != want {
			t.Fatalf("isTitleCased(%q): expected %v, got %v", line, want, got)
		}
	}
}
