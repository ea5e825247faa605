package agent

import (
	"strings"

	"campus-advisor/internal/safety"
)

const (
	fallbackStudy   = "I recommend creating a study schedule, breaking down material into manageable chunks, and using active recall techniques like practice problems and self-quizzing. Would you like specific study tips for your subject?"
	fallbackStress  = "It's normal to feel stressed sometimes. Try deep breathing exercises, take regular breaks, and make sure you're getting enough sleep. Consider talking to a campus counselor if stress becomes overwhelming."
	fallbackSocial  = "Making friends in college takes time! Join clubs related to your interests, attend campus events, and don't be afraid to start conversations in class. Quality friendships develop naturally."
	fallbackDefault = "I'm here to help with academic advice, wellness support, or campus life questions. Could you tell me more about what you need help with?"

	cannedMenu = "I'm here to help with:\n\n" +
		"📚 Academic Support: Study tips, time management, exam preparation\n" +
		"💚 Wellness: Stress management, mental health resources\n" +
		"🎓 Campus Life: Clubs, events, resources, and activities\n\n" +
		"What would you like help with?"

	cannedHelp = "I'm your college advisor assistant! I can help you with:\n\n" +
		"- Academic planning - study schedules, exam prep, course advice\n" +
		"- Wellness support - stress management, work-life balance\n" +
		"- Campus resources - finding clubs, services, and activities\n\n" +
		"Just ask me anything about college life!"

	cannedThanks = "You're welcome! Feel free to ask if you need anything else. I'm here to help!"
)

// FallbackText is the canned answer a domain handler serves when
// generation fails.
func FallbackText(message string) string {
	switch {
	case safety.ContainsAny(message, []string{"study", "exam"}):
		return fallbackStudy
	case safety.ContainsAny(message, []string{"stress", "anxiety"}):
		return fallbackStress
	case safety.ContainsAny(message, []string{"friend", "social"}):
		return fallbackSocial
	default:
		return fallbackDefault
	}
}

// CannedGeneral picks the general handler's offline reply.
func CannedGeneral(message, name string) string {
	s := safety.Normalize(message)
	switch {
	case strings.Contains(s, "help") || strings.Contains(s, "what can you do"):
		return cannedHelp
	case strings.Contains(s, "thank"):
		return cannedThanks
	case isGreeting(s):
		if name == "" {
			name = "there"
		}
		return "Hi " + name + "! How can I help you today? I can assist with academics, wellness, or campus life questions."
	default:
		return cannedMenu
	}
}

// isGreeting looks for greeting words rather than substrings so "this" and
// "which" do not count as "hi".
func isGreeting(normalized string) bool {
	for _, w := range strings.FieldsFunc(normalized, func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	}) {
		switch w {
		case "hi", "hello", "hey", "hiya":
			return true
		}
	}
	return false
}
