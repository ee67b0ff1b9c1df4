// Package revision rewrites documentation text through an ordered pass
// pipeline: Readability, then Structure, then Completeness, then Style. The
// order matters - later passes assume the normalization done by earlier ones
// (the structure pass decides on an Overview section using the word count
// after jargon expansion). Every pass is a pure transform threading an
// explicit change-log accumulator, so concurrent revision runs share nothing.
package revision

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"DocAuditor/internal/analysis"
	"DocAuditor/internal/domain"
)

const (
	longSentenceWords = 25
	minSplitHalfWords = 8
	overviewMinWords  = 200
)

// Engine applies the rewrite passes. The clock is injectable for tests.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Revise runs all passes in order and returns the revised content together
// with the per-run change log and summary.
func (e *Engine) Revise(content string) domain.RevisionResult {
	log := []domain.RevisionEntry{}

	revised, log := e.readabilityPass(content, log)
	revised, log = e.structurePass(revised, log)
	revised, log = e.completenessPass(revised, log)
	revised, log = e.stylePass(revised, log)

	return domain.RevisionResult{
		OriginalContent: content,
		RevisedContent:  revised,
		Log:             log,
		Summary:         e.summarize(content, revised, log),
		Timestamp:       e.now().UTC(),
	}
}

func (e *Engine) entry(log []domain.RevisionEntry, category domain.Dimension, description string) []domain.RevisionEntry {
	return append(log, domain.RevisionEntry{
		Category:    category,
		Description: description,
		Timestamp:   e.now().UTC(),
	})
}

// readabilityPass expands jargon, splits overlong sentences at a conjunction
// when both halves stay substantial, and strips wordy filler.
func (e *Engine) readabilityPass(text string, log []domain.RevisionEntry) (string, []domain.RevisionEntry) {
	for _, r := range jargonRevisions {
		if strings.Contains(text, r.From) {
			text = strings.ReplaceAll(text, r.From, r.To)
			log = e.entry(log, domain.DimReadability, fmt.Sprintf("Replaced '%s' with '%s'", r.From, r.To))
		}
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, sentence := range analysis.SplitSentences(line) {
			words := analysis.WordCount(sentence)
			if words <= longSentenceWords {
				continue
			}
			split, ok := splitSentence(sentence)
			if !ok {
				continue
			}
			lines[i] = strings.Replace(lines[i], sentence, split, 1)
			log = e.entry(log, domain.DimReadability, fmt.Sprintf("Split long sentence (%d words)", words))
		}
	}
	text = strings.Join(lines, "\n")

	for _, r := range wordyRevisions {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(r.From))
		if re.MatchString(text) {
			text = re.ReplaceAllString(text, r.To)
			log = e.entry(log, domain.DimReadability, fmt.Sprintf("Simplified '%s' to '%s'", r.From, r.To))
		}
	}

	return text, log
}

// splitSentence breaks the sentence at the first conjunction that leaves both
// halves longer than minSplitHalfWords. Returns ok=false when no such break
// exists; micro-splits are worse than one long sentence.
func splitSentence(sentence string) (string, bool) {
	lower := strings.ToLower(sentence)
	for _, conj := range splitConjunctions {
		idx := strings.Index(lower, conj)
		if idx < 0 {
			continue
		}
		head := strings.TrimSpace(sentence[:idx])
		tail := strings.TrimSpace(sentence[idx+len(conj):])
		if analysis.WordCount(head) > minSplitHalfWords && analysis.WordCount(tail) > minSplitHalfWords {
			return head + ". " + capitalize(tail), true
		}
	}
	return sentence, false
}

// structurePass inserts an Overview section after the title when the
// document is long enough to need one, and bullets the lines following a
// list-introducing line.
func (e *Engine) structurePass(text string, log []domain.RevisionEntry) (string, []domain.RevisionEntry) {
	if !strings.Contains(text, "Overview") && analysis.WordCount(text) > overviewMinWords {
		lines := strings.SplitN(text, "\n", 2)
		if len(lines) == 2 {
			text = lines[0] + "\n\nOverview\n" + lines[1]
			log = e.entry(log, domain.DimStructure, "Added Overview section")
		}
	}

	lines := strings.Split(text, "\n")
	var out []string
	i := 0
	for i < len(lines) {
		line := lines[i]
		out = append(out, line)
		i++

		if !introducesList(line) {
			continue
		}

		converted := false
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			item := strings.TrimSpace(lines[i])
			if !alreadyListItem(item) {
				out = append(out, "- "+item)
				converted = true
			} else {
				out = append(out, lines[i])
			}
			i++
		}
		if converted {
			log = e.entry(log, domain.DimStructure, "Converted text to list format")
		}
	}

	return strings.Join(out, "\n"), log
}

func introducesList(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	if lower == "" {
		return false
	}
	for _, marker := range listIntroMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func alreadyListItem(line string) bool {
	for _, prefix := range []string{"-", "•", "1.", "2.", "3.", "4.", "5."} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// completenessPass appends missing support content. It is a no-op on text
// that already carries troubleshooting and example markers, so re-running it
// produces zero log entries.
func (e *Engine) completenessPass(text string, log []domain.RevisionEntry) (string, []domain.RevisionEntry) {
	lower := strings.ToLower(text)

	if !strings.Contains(lower, "troubleshoot") && !strings.Contains(lower, "problem") {
		text += troubleshootingBlock
		log = e.entry(log, domain.DimCompleteness, "Added Troubleshooting section")
	}

	if !strings.Contains(lower, "example") && !strings.Contains(lower, "for instance") {
		if idx := strings.Index(text, "Key Metrics"); idx >= 0 {
			insertAt := idx + len("Key Metrics")
			if nl := strings.Index(text[insertAt:], "\n"); nl >= 0 {
				insertAt += nl
			} else {
				insertAt = len(text)
			}
			text = text[:insertAt] + "\n\n" + metricsExample + text[insertAt:]
			log = e.entry(log, domain.DimCompleteness, "Added usage example")
		}
	}

	return text, log
}

// stylePass upgrades third-person phrasing to second person when the text
// never addresses the reader, rewrites known passive constructions, and
// simplifies two stock verbs.
func (e *Engine) stylePass(text string, log []domain.RevisionEntry) (string, []domain.RevisionEntry) {
	if !strings.Contains(strings.ToLower(text), "you") {
		upgraded := regexp.MustCompile(`\bUsers can\b`).ReplaceAllString(text, "You can")
		upgraded = regexp.MustCompile(`\bThe user should\b`).ReplaceAllString(upgraded, "You should")
		if upgraded != text {
			text = upgraded
			log = e.entry(log, domain.DimStyle, "Added second-person language")
		}
	}

	for _, r := range passiveRevisions {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(r.From))
		if re.MatchString(text) {
			text = re.ReplaceAllString(text, r.To)
			log = e.entry(log, domain.DimStyle, "Changed passive voice to active")
		}
	}

	for _, r := range []replacement{{"Navigate to", "Go to"}, {"Utilize", "Use"}} {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(r.From) + `\b`)
		if re.MatchString(text) {
			text = re.ReplaceAllString(text, r.To)
			log = e.entry(log, domain.DimStyle, fmt.Sprintf("Simplified '%s' to '%s'", r.From, r.To))
		}
	}

	return text, log
}

// summarize reports before/after counts using the same sentence segmentation
// the scorers use, so revised output round-trips consistently.
func (e *Engine) summarize(original, revised string, log []domain.RevisionEntry) domain.RevisionSummary {
	before := analysis.ContentStats(original)
	after := analysis.ContentStats(revised)

	byCategory := map[domain.Dimension]int{}
	for _, entry := range log {
		byCategory[entry.Category]++
	}

	verdict := "Maintained sentence length"
	if after.AvgSentenceLength < before.AvgSentenceLength {
		verdict = fmt.Sprintf("Improved: %.1f → %.1f avg words/sentence",
			before.AvgSentenceLength, after.AvgSentenceLength)
	}

	return domain.RevisionSummary{
		TotalRevisions:    len(log),
		ChangesByCategory: byCategory,
		WordCountChange: fmt.Sprintf("%d → %d (%+d)",
			before.Words, after.Words, after.Words-before.Words),
		SentenceCountChange: fmt.Sprintf("%d → %d (%+d)",
			before.Sentences, after.Sentences, after.Sentences-before.Sentences),
		ReadabilityVerdict: verdict,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
