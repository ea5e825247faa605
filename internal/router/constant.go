package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// ClassifierInstruction is the system prompt for the fallback classifier.
const ClassifierInstruction = "You are classifying college student questions into categories."

// ClassifierCategories is the closed label set offered to the classifier.
// The last entry is the fallback when the answer is unrecognised.
var ClassifierCategories = []string{
	string(IntentAcademic),
	string(IntentWellness),
	string(IntentCampusLife),
	string(IntentGeneral),
}

// priority is the fixed tie-break order applied after the probes complete.
var priority = []Intent{IntentWellness, IntentAcademic, IntentCampusLife}
