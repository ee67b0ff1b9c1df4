package report

import (
	"fmt"
	"sort"
	"strings"

	"DocAuditor/internal/domain"
)

const maxRecommendations = 8

var priorityRank = map[domain.Priority]int{
	domain.PriorityCritical: 4,
	domain.PriorityHigh:     3,
	domain.PriorityMedium:   2,
	domain.PriorityLow:      1,
}

// impactThresholds keys the per-dimension impact lookup: score below the
// threshold gets the high impact, otherwise the low one.
var impactThresholds = map[domain.Dimension]struct {
	Threshold int
	Below     int
	AtOrAbove int
}{
	domain.DimReadability:  {60, 10, 7},
	domain.DimStructure:    {70, 6, 4},
	domain.DimCompleteness: {65, 8, 5},
	domain.DimStyle:        {75, 5, 3},
}

// Rank flattens every (dimension, suggestion) pair into ActionItems,
// prioritizes them, and returns at most eight. The sort is stable: equal
// (priority, impact) pairs keep their encounter order, which follows the
// canonical dimension order.
func Rank(results map[domain.Dimension]domain.DimensionResult) []domain.ActionItem {
	var items []domain.ActionItem

	for _, dim := range domain.Dimensions() {
		result, ok := results[dim]
		if !ok {
			continue
		}

		priority := priorityFor(dim, result.Score)
		impact := impactFor(dim, result.Score)

		for _, suggestion := range result.Suggestions {
			items = append(items, domain.ActionItem{
				Category:       titleCase(string(dim)),
				Priority:       priority,
				Action:         suggestion,
				Rationale:      fmt.Sprintf("Current %s score: %d/100", dim, result.Score),
				ExpectedImpact: impact,
				Effort:         effortFor(suggestion),
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if priorityRank[items[i].Priority] != priorityRank[items[j].Priority] {
			return priorityRank[items[i].Priority] > priorityRank[items[j].Priority]
		}
		return items[i].ExpectedImpact > items[j].ExpectedImpact
	})

	if len(items) > maxRecommendations {
		items = items[:maxRecommendations]
	}
	return items
}

// priorityFor applies the readability floor override: any readability score
// below 70 is CRITICAL regardless of how the other dimensions compare.
func priorityFor(dim domain.Dimension, score int) domain.Priority {
	switch {
	case dim == domain.DimReadability && score < 70:
		return domain.PriorityCritical
	case score < 60:
		return domain.PriorityHigh
	case score < 80:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

func impactFor(dim domain.Dimension, score int) int {
	t, ok := impactThresholds[dim]
	if !ok {
		return 5
	}
	if score < t.Threshold {
		return t.Below
	}
	return t.AtOrAbove
}

// effortFor infers implementation effort from the verbs in the suggestion.
func effortFor(suggestion string) domain.Effort {
	lower := strings.ToLower(suggestion)
	switch {
	case containsAny(lower, "add", "include", "create"):
		return domain.EffortMedium
	case containsAny(lower, "replace", "change", "simplify"):
		return domain.EffortLow
	case containsAny(lower, "restructure", "reorganize"):
		return domain.EffortHigh
	default:
		return domain.EffortLow
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
