package router

// Intent is the routing category chosen for a message.
type Intent string

const (
	IntentAcademic   Intent = "academic"
	IntentWellness   Intent = "wellness"
	IntentCampusLife Intent = "campus_life"
	IntentGeneral    Intent = "general"
	IntentEmergency  Intent = "emergency"
)

// Source records which stage produced a Decision.
type Source string

const (
	SourceCrisis     Source = "crisis"
	SourceKeyword    Source = "keyword"
	SourceClassifier Source = "classifier"
)

// Decision is the router's output. Exactly one intent per message.
type Decision struct {
	Intent      Intent
	HandlerName string
	Source      Source
	// Danger is set when a physical-safety phrase was found and no crisis
	// phrase was. It never changes the handler.
	Danger bool
	// KeywordVersion is the KeywordTablesVersion used for this decision.
	KeywordVersion string
}

// Handler names, as recorded on assistant turns.
const (
	HandlerAcademic   = "academic"
	HandlerWellness   = "wellness"
	HandlerCampusLife = "campus-life"
	HandlerGeneral    = "general"
)

// HandlerFor maps an intent to the handler that serves it. Emergencies are
// served by the wellness handler.
func HandlerFor(intent Intent) string {
	switch intent {
	case IntentAcademic:
		return HandlerAcademic
	case IntentWellness, IntentEmergency:
		return HandlerWellness
	case IntentCampusLife:
		return HandlerCampusLife
	default:
		return HandlerGeneral
	}
}

// Valid reports whether s names a known intent.
func (i Intent) Valid() bool {
	switch i {
	case IntentAcademic, IntentWellness, IntentCampusLife, IntentGeneral, IntentEmergency:
		return true
	}
	return false
}
