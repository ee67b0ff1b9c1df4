package domain

import "time"

// RevisionEntry records a single edit the revision engine applied.
type RevisionEntry struct {
	Category    Dimension `json:"category"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// ContentStats are the sentence/word counts reported before and after a
// revision run. They use the same sentence segmentation as the scorers.
type ContentStats struct {
	Words             int     `json:"words"`
	Sentences         int     `json:"sentences"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
}

// RevisionSummary aggregates a revision run.
type RevisionSummary struct {
	TotalRevisions     int               `json:"total_revisions"`
	ChangesByCategory  map[Dimension]int `json:"changes_by_category"`
	WordCountChange    string            `json:"word_count"`
	SentenceCountChange string           `json:"sentence_count"`
	ReadabilityVerdict string            `json:"readability_improvement"`
}

// RevisionResult is the full outcome of one revise invocation. The log is
// owned exclusively by that invocation.
type RevisionResult struct {
	OriginalContent string          `json:"original_content"`
	RevisedContent  string          `json:"revised_content"`
	Log             []RevisionEntry `json:"revision_log"`
	Summary         RevisionSummary `json:"summary"`
	Timestamp       time.Time       `json:"timestamp"`
}
