package report

import (
	"strings"
	"testing"

	"DocAuditor/internal/domain"
)

func TestPriorityForReadabilityOverride(t *testing.T) {
	t.Parallel()

	// 65 would normally be MEDIUM, but readability below 70 is always CRITICAL.
	if got := priorityFor(domain.DimReadability, 65); got != domain.PriorityCritical {
		t.Fatalf("expected CRITICAL for readability 65, got %s", got)
	}
	if got := priorityFor(domain.DimStructure, 65); got != domain.PriorityMedium {
		t.Fatalf("expected MEDIUM for structure 65, got %s", got)
	}
	if got := priorityFor(domain.DimStyle, 55); got != domain.PriorityHigh {
		t.Fatalf("expected HIGH for style 55, got %s", got)
	}
	if got := priorityFor(domain.DimCompleteness, 85); got != domain.PriorityLow {
		t.Fatalf("expected LOW for completeness 85, got %s", got)
	}
	if got := priorityFor(domain.DimReadability, 70); got != domain.PriorityMedium {
		t.Fatalf("expected MEDIUM for readability exactly 70, got %s", got)
	}
}

func TestImpactForThresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		dim   domain.Dimension
		score int
		want  int
	}{
		{domain.DimReadability, 59, 10},
		{domain.DimReadability, 60, 7},
		{domain.DimStructure, 69, 6},
		{domain.DimStructure, 70, 4},
		{domain.DimCompleteness, 64, 8},
		{domain.DimCompleteness, 65, 5},
		{domain.DimStyle, 74, 5},
		{domain.DimStyle, 75, 3},
	}
	for _, tc := range cases {
		if got := impactFor(tc.dim, tc.score); got != tc.want {
			t.Fatalf("impactFor(%s, %d): expected %d, got %d", tc.dim, tc.score, tc.want, got)
		}
	}
}

func TestEffortForVerbs(t *testing.T) {
	t.Parallel()

	cases := map[string]domain.Effort{
		"Add a troubleshooting section":  domain.EffortMedium,
		"Include more concrete examples": domain.EffortMedium,
		"Replace technical jargon":       domain.EffortLow,
		"Simplify the opening sentence":  domain.EffortLow,
		"Restructure the article flow":   domain.EffortHigh,
		"Use second-person language":     domain.EffortLow,
	}
	for suggestion, want := range cases {
		if got := effortFor(suggestion); got != want {
			t.Fatalf("effortFor(%q): expected %s, got %s", suggestion, want, got)
		}
	}
}

func TestRankOrdersByPriorityThenImpact(t *testing.T) {
	t.Parallel()

	results := map[domain.Dimension]domain.DimensionResult{
		domain.DimReadability:  {Score: 55, Suggestions: []string{"Replace technical jargon"}},
		domain.DimStructure:    {Score: 85, Suggestions: []string{"Keep the structure"}},
		domain.DimCompleteness: {Score: 55, Suggestions: []string{"Add examples"}},
		domain.DimStyle:        {Score: 72, Suggestions: []string{"Tighten the prose"}},
	}

	items := Rank(results)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}

	// Readability 55 → CRITICAL, completeness 55 → HIGH, style 72 → MEDIUM,
	// structure 85 → LOW.
	wantOrder := []domain.Priority{
		domain.PriorityCritical,
		domain.PriorityHigh,
		domain.PriorityMedium,
		domain.PriorityLow,
	}
	for i, want := range wantOrder {
		if items[i].Priority != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, items[i].Priority)
		}
	}

	if items[0].Category != "Readability" {
		t.Fatalf("expected Readability first, got %s", items[0].Category)
	}
	if items[0].Rationale != "Current readability score: 55/100" {
		t.Fatalf("unexpected rationale: %q", items[0].Rationale)
	}
}

func TestRankStableWithinEqualRank(t *testing.T) {
	t.Parallel()

	// Structure and completeness both land on MEDIUM; completeness at 70
	// carries impact 5 vs structure's 4, so completeness sorts first. Two
	// suggestions inside one dimension must keep their original order.
	results := map[domain.Dimension]domain.DimensionResult{
		domain.DimStructure:    {Score: 75, Suggestions: []string{"first structure tip", "second structure tip"}},
		domain.DimCompleteness: {Score: 70, Suggestions: []string{"completeness tip"}},
	}

	items := Rank(results)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Category != "Completeness" {
		t.Fatalf("expected higher-impact completeness first, got %s", items[0].Category)
	}
	if !strings.Contains(items[1].Action, "first") || !strings.Contains(items[2].Action, "second") {
		t.Fatalf("suggestion order not preserved: %v", items)
	}
}

func TestRankCapsAtEight(t *testing.T) {
	t.Parallel()

	many := []string{"one", "two", "three", "four", "five"}
	results := map[domain.Dimension]domain.DimensionResult{
		domain.DimReadability: {Score: 50, Suggestions: many},
		domain.DimStructure:   {Score: 50, Suggestions: many},
		domain.DimStyle:       {Score: 50, Suggestions: many},
	}

	items := Rank(results)
	if len(items) != 8 {
		t.Fatalf("expected cap of 8 recommendations, got %d", len(items))
	}
	// All five CRITICAL readability items survive the cut.
	for i := 0; i < 5; i++ {
		if items[i].Priority != domain.PriorityCritical {
			t.Fatalf("position %d: expected CRITICAL, got %s", i, items[i].Priority)
		}
	}
}

func TestRankSkipsMissingDimensions(t *testing.T) {
	t.Parallel()

	items := Rank(map[domain.Dimension]domain.DimensionResult{
		domain.DimStyle: {Score: 90, Suggestions: []string{"keep it up"}},
	})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}
