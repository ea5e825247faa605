package router

import "campus-advisor/internal/safety"

// KeywordTablesVersion identifies the keyword tables below. Bump it when a
// list changes so recorded decisions can be traced to the table they used.
const KeywordTablesVersion = "2024.2"

// KeywordTables is the single source of capability keywords per handler.
// Lists overlap on purpose ("schedule" is academic, "study space" is
// campus life); priority resolves ties.
var KeywordTables = map[Intent][]string{
	IntentAcademic: {
		"study", "exam", "test", "quiz", "homework", "assignment",
		"course", "class", "professor", "grade", "gpa",
		"major", "minor", "degree", "credit", "semester",
		"research", "paper", "essay", "presentation",
		"learn", "understand", "memorize", "focus", "concentrate",
		"time management", "productivity", "procrastination",
		"schedule", "calendar", "deadline", "due date",
	},
	IntentWellness: {
		"stress", "anxiety", "worried", "nervous", "overwhelmed",
		"sad", "depressed", "lonely", "isolated", "alone",
		"tired", "exhausted", "burnout", "sleep", "insomnia",
		"feel", "feeling", "emotion", "mood", "mental health",
		"self-care", "wellness", "mindfulness", "meditation",
		"relax", "calm", "cope", "coping", "balance",
		"scared", "afraid", "panic", "angry", "frustrated",
	},
	IntentCampusLife: {
		"club", "organization", "activity", "event",
		"friend", "social", "meet people", "lonely", "roommate",
		"dorm", "housing", "residence", "campus",
		"party", "fun", "weekend", "greek", "fraternity", "sorority",
		"job", "work", "internship", "volunteer",
		"gym", "recreation", "sports", "fitness",
		"dining", "food", "cafeteria", "meal plan",
		"library", "study space", "career center", "health center",
	},
}

// MatchesKeywords reports whether message contains any keyword of intent.
func MatchesKeywords(intent Intent, message string) bool {
	return safety.ContainsAny(message, KeywordTables[intent])
}

// keywordProbe is the default Probe backed by KeywordTables.
type keywordProbe Intent

func (p keywordProbe) Intent() Intent { return Intent(p) }
func (p keywordProbe) CanHandle(message string) bool { return MatchesKeywords(Intent(p), message) }

// KeywordProbes returns one table-backed probe per domain handler.
func KeywordProbes() []Probe {
	return []Probe{
		keywordProbe(IntentAcademic),
		keywordProbe(IntentWellness),
		keywordProbe(IntentCampusLife),
	}
}
