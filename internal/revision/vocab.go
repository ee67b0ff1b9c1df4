package revision

// Replacement tables for the rewrite passes. Like the scorer vocabularies,
// these are design constants: tests enumerate them and the log messages quote
// them verbatim.

type replacement struct {
	From string
	To   string
}

// jargonRevisions expand technical terms in place. The first occurrence
// keeps the acronym in parentheses so later references still resolve.
var jargonRevisions = []replacement{
	{"SDK", "software development kit (SDK)"},
	{"API", "programming interface (API)"},
	{"configure", "set up"},
	{"implementation", "setup"},
	{"utilize", "use"},
	{"facilitate", "help with"},
	{"initialize", "start"},
	{"instantiate", "create"},
}

// wordyRevisions strip or shorten filler phrasing; matched case-insensitively.
var wordyRevisions = []replacement{
	{"in order to", "to"},
	{"due to the fact that", "because"},
	{"at this point in time", "now"},
	{"it is important to note that", ""},
	{"please be aware that", ""},
}

// passiveRevisions rewrite the known passive constructions to active voice.
var passiveRevisions = []replacement{
	{"is configured by", "configure"},
	{"are displayed by", "displays"},
	{"is recommended that", "we recommend"},
	{"data is shown", "the report shows data"},
}

// splitConjunctions are the break points tried, in order, when splitting an
// overlong sentence.
var splitConjunctions = []string{" and ", " but ", " however ", " therefore ", " because "}

// listIntroMarkers flag a line that introduces an enumeration whose following
// lines should be bulleted.
var listIntroMarkers = []string{"include:", "following:", "steps:", "features:"}

// troubleshootingBlock is appended when the document has no troubleshooting
// guidance at all.
const troubleshootingBlock = "\n\nTroubleshooting\n\nIf you encounter issues:\n- Check your permissions\n- Verify the data range selected\n- Contact support if problems persist"

// metricsExample is the numeric example injected near Key Metrics when the
// document shows no examples.
const metricsExample = "Example: If you sent 1,000 notifications to 500 users, your average notifications per user would be 2.0."
