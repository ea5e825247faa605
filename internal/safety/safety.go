// Package safety holds the local, network-free checks that run before any
// message reaches a handler or the LLM.
package safety

import "strings"

const (
	StressHigh       = 8
	StressMediumHigh = 6
	StressLowMedium  = 4
)

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// Normalize lower-cases text, folds typographic apostrophes and collapses
// runs of whitespace to one space.
func Normalize(text string) string {
	s := strings.ToLower(apostrophes.Replace(text))
	return strings.Join(strings.Fields(s), " ")
}

// DetectCrisis reports whether text contains any self-harm phrase.
func DetectCrisis(text string) bool {
	return containsAny(Normalize(text), crisisPhrases)
}

// DetectPotentialDanger reports whether text contains a physical-safety
// phrase. Callers only consult it when DetectCrisis is false.
func DetectPotentialDanger(text string) bool {
	return containsAny(Normalize(text), dangerPhrases)
}

// DetectStressLevel maps tiered keywords to 8, 6 or 4. ok is false when no
// bucket matches.
func DetectStressLevel(text string) (level int, ok bool) {
	s := Normalize(text)
	for _, b := range stressBuckets {
		if containsAny(s, b.phrases) {
			return b.level, true
		}
	}
	return 0, false
}

// ContainsAny reports whether the normalized text contains any phrase.
// Phrases must already be lower case.
func ContainsAny(text string, phrases []string) bool {
	return containsAny(Normalize(text), phrases)
}

func containsAny(normalized string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}
