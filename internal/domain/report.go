package domain

import "time"

// Dimension is one of the four independent quality axes.
type Dimension string

const (
	DimReadability  Dimension = "readability"
	DimStructure    Dimension = "structure"
	DimCompleteness Dimension = "completeness"
	DimStyle        Dimension = "style"
)

// Dimensions lists all axes in canonical order.
func Dimensions() []Dimension {
	return []Dimension{DimReadability, DimStructure, DimCompleteness, DimStyle}
}

// DimensionResult is the output of a single dimension scorer.
// Score stays within the dimension's documented floor/ceiling and
// Suggestions always holds at least one entry (an affirming one when no
// issue triggered).
type DimensionResult struct {
	Score       int                `json:"score"`
	Assessment  string             `json:"assessment"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	Suggestions []string           `json:"suggestions"`
	Method      string             `json:"method,omitempty"`
}

// Priority ranks an action item.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

// Effort is the estimated implementation cost of an action item.
type Effort string

const (
	EffortLow    Effort = "Low"
	EffortMedium Effort = "Medium"
	EffortHigh   Effort = "High"
)

// ActionItem is one row of the prioritized recommendation list. Items are
// regenerated on every analysis run, never persisted on their own.
type ActionItem struct {
	Category       string   `json:"category"`
	Priority       Priority `json:"priority"`
	Action         string   `json:"action"`
	Rationale      string   `json:"rationale"`
	ExpectedImpact int      `json:"expected_impact"`
	Effort         Effort   `json:"effort_estimate"`
}

// AnalysisMetadata identifies one analysis run.
type AnalysisMetadata struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"analyzer_version"`
	Retrieval string    `json:"retrieval"` // "live" or "fallback"
}

// StructureElements counts the structural blocks the extractor found.
type StructureElements struct {
	Headings   int `json:"headings"`
	Lists      int `json:"lists"`
	Paragraphs int `json:"paragraphs"`
}

// ComplexityIndicators summarizes how demanding the prose is.
type ComplexityIndicators struct {
	AvgSentenceLength     float64 `json:"avg_sentence_length"`
	JargonDensity         int     `json:"jargon_density"`
	ComplexWordRatio      float64 `json:"complex_word_ratio"`
	EstimatedReadingLevel float64 `json:"estimated_reading_level"`
}

// ContentProfile describes the analyzed document independent of scoring.
type ContentProfile struct {
	WordCount         int                  `json:"word_count"`
	StructureElements StructureElements    `json:"structure_elements"`
	TargetAudience    string               `json:"target_audience"`
	Complexity        ComplexityIndicators `json:"complexity_indicators"`
}

// OverallAssessment merges the four dimension scores.
type OverallAssessment struct {
	WeightedScore     float64 `json:"weighted_score"`
	LetterGrade       string  `json:"letter_grade"`
	AccessibilityTier string  `json:"accessibility_tier"`
}

// BusinessImpact is the narrative derived from the score ladders.
type BusinessImpact struct {
	UserExperienceAssessment string `json:"user_experience_assessment"`
	FeatureAdoptionRisk      string `json:"feature_adoption_risk"`
	SupportTicketLikelihood  string `json:"support_ticket_likelihood"`
	RecommendedAction        string `json:"recommended_action"`
}

// Report is the aggregate result of one analysis invocation. The JSON field
// names form the on-disk contract consumed by existing tooling.
type Report struct {
	Metadata        AnalysisMetadata              `json:"analysis_metadata"`
	Profile         ContentProfile                `json:"content_profile"`
	Dimensions      map[Dimension]DimensionResult `json:"dimensional_analysis"`
	Overall         OverallAssessment             `json:"overall_assessment"`
	Recommendations []ActionItem                  `json:"prioritized_recommendations"`
	Impact          BusinessImpact                `json:"business_impact"`
}

// ErrorReport is returned instead of a Report when synthesis fails. It
// carries the locator and a description, never a stack trace.
type ErrorReport struct {
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Message   string    `json:"error_message"`
}
