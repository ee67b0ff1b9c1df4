package analysis

// Heuristic vocabularies. These are contractual design constants: tests
// enumerate them and the revision engine reuses several of them, so changes
// here are behavior changes, not tuning.

// jargonTerm pairs a technical term with its plain-language replacement.
// Detection is case-sensitive: "API" must match as written, while a lowercase
// "api" inside another word is not the jargon the rule targets.
type jargonTerm struct {
	Term        string
	Replacement string
}

var jargonTerms = []jargonTerm{
	{"SDK", "software development kit"},
	{"API", "programming interface"},
	{"implementation", "setup"},
	{"configuration", "settings"},
	{"instantiate", "create"},
	{"utilize", "use"},
	{"facilitate", "help"},
}

// exampleMarkers, troubleshootingMarkers, prerequisiteMarkers and
// businessValueMarkers are matched as lowercase substrings of the body.
var (
	exampleMarkers         = []string{"example", "for instance", "such as"}
	troubleshootingMarkers = []string{"troubleshoot", "problem", "issue"}
	prerequisiteMarkers    = []string{"prerequisite", "before", "first"}
	businessValueMarkers   = []string{"benefit", "improve", "increase", "optimize"}
)

// secondPersonMarkers flag direct, reader-focused language.
var secondPersonMarkers = []string{" you ", " your ", "you'll", "you're"}

// actionVerbs are the verbs instructional prose should lean on.
var actionVerbs = []string{"click", "select", "navigate", "access", "configure", "set up"}

// passiveIndicators is a deliberate substring heuristic, not a grammatical
// parse; passive constructions outside this list go undetected by design.
var passiveIndicators = []string{"is configured", "are displayed", "was created", "were sent"}

// wordyPhrases are filler constructions that dilute instructions.
var wordyPhrases = []string{"in order to", "due to the fact that", "at this point in time"}

// complexityJargon is the smaller term set used for the content profile's
// jargon density indicator.
var complexityJargon = []string{"API", "SDK", "implementation", "configuration", "instantiate", "parameters"}
