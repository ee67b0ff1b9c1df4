package report

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"DocAuditor/internal/analysis"
	"DocAuditor/internal/domain"
)

// AnalyzerVersion tags every report with the engine revision that produced it.
const AnalyzerVersion = "1.0"

const targetAudience = "Non-technical readers"

// Weights are the fixed dimension weights of the overall score. They sum to
// 1.0; readability dominates because it gates everything else for the target
// audience.
var Weights = map[domain.Dimension]float64{
	domain.DimReadability:  0.40,
	domain.DimStructure:    0.20,
	domain.DimCompleteness: 0.25,
	domain.DimStyle:        0.15,
}

// Synthesize merges the four dimension results into the final Report. A
// missing dimension is fatal for this analysis and yields ErrSynthesis; the
// caller converts that into an explicit error report rather than a partial
// score.
func Synthesize(doc domain.Document, results map[domain.Dimension]domain.DimensionResult) (domain.Report, error) {
	weighted := 0.0
	for dim, weight := range Weights {
		result, ok := results[dim]
		if !ok {
			return domain.Report{}, fmt.Errorf("%w: missing %s", domain.ErrSynthesis, dim)
		}
		if result.Score < 0 || result.Score > 100 {
			return domain.Report{}, fmt.Errorf("%w: %s score %d out of range", domain.ErrSynthesis, dim, result.Score)
		}
		weighted += float64(result.Score) * weight
	}
	weighted = math.Round(weighted*10) / 10

	retrieval := "live"
	if !doc.Live {
		retrieval = "fallback"
	}

	wordCount := doc.WordCount
	if wordCount == 0 {
		wordCount = analysis.WordCount(doc.Body)
	}

	return domain.Report{
		Metadata: domain.AnalysisMetadata{
			ID:        uuid.NewString(),
			URL:       doc.URL,
			Title:     doc.Title,
			Timestamp: time.Now().UTC(),
			Version:   AnalyzerVersion,
			Retrieval: retrieval,
		},
		Profile: domain.ContentProfile{
			WordCount: wordCount,
			StructureElements: domain.StructureElements{
				Headings:   len(doc.Headings),
				Lists:      len(doc.Lists),
				Paragraphs: len(doc.Paragraphs),
			},
			TargetAudience: targetAudience,
			Complexity:     analysis.Complexity(doc.Body),
		},
		Dimensions: results,
		Overall: domain.OverallAssessment{
			WeightedScore:     weighted,
			LetterGrade:       Grade(weighted),
			AccessibilityTier: AccessibilityTier(weighted),
		},
		Recommendations: Rank(results),
		Impact:          businessImpact(results[domain.DimReadability].Score, weighted),
	}, nil
}

// NewErrorReport builds the structured failure object surfaced to users when
// synthesis cannot complete.
func NewErrorReport(url string, err error) domain.ErrorReport {
	return domain.ErrorReport{
		URL:       url,
		Timestamp: time.Now().UTC(),
		Status:    "error",
		Message:   err.Error(),
	}
}

// Grade buckets a weighted score into a letter grade. Boundaries are exact:
// 90.0 is an A, 89.9 a B.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// AccessibilityTier buckets the weighted score into High/Medium/Low.
func AccessibilityTier(score float64) string {
	switch {
	case score >= 75:
		return "High"
	case score >= 60:
		return "Medium"
	default:
		return "Low"
	}
}

// businessImpact applies the three independent threshold ladders. The cut
// points are contractual, not tunable.
func businessImpact(readabilityScore int, weighted float64) domain.BusinessImpact {
	var ux, risk string
	switch {
	case readabilityScore < 60:
		ux = "Poor - readers likely to struggle"
		risk = "High"
	case readabilityScore < 75:
		ux = "Moderate - some readers may need help"
		risk = "Medium"
	default:
		ux = "Good - accessible to the target audience"
		risk = "Low"
	}

	tickets := "Low"
	switch {
	case weighted < 65:
		tickets = "High"
	case weighted < 80:
		tickets = "Medium"
	}

	var action string
	switch {
	case weighted < 60:
		action = "URGENT: Revise before publishing to the audience"
	case weighted < 75:
		action = "MODERATE: Improve before wider distribution"
	default:
		action = "GOOD: Ready for the target audience"
	}

	return domain.BusinessImpact{
		UserExperienceAssessment: ux,
		FeatureAdoptionRisk:      risk,
		SupportTicketLikelihood:  tickets,
		RecommendedAction:        action,
	}
}
