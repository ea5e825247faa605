package agent

// CrisisReply is the fixed, locally built response to a crisis message.
// It never depends on the generation service.
func CrisisReply(name string) Reply {
	if name == "" {
		name = "friend"
	}

	content := name + ", I hear that you're going through an incredibly difficult time right now, and I want you to know that your life matters. What you're feeling is real, but these feelings can change.\n\n" +
		"🆘 IMMEDIATE HELP - AVAILABLE 24/7:\n\n" +
		"📞 National Suicide Prevention Lifeline:\n" +
		"   • Call/Text: 988\n" +
		"   • Available 24/7, free, confidential support\n\n" +
		"💬 Crisis Text Line:\n" +
		"   • Text \"HELLO\" to 741741\n" +
		"   • Trained crisis counselors available anytime\n\n" +
		"🏥 Campus Counseling Center:\n" +
		"   • Most colleges offer free, confidential mental health services\n" +
		"   • Emergency appointments usually available same-day\n\n" +
		"🚨 If you're in immediate danger:\n" +
		"   • Call 911 or go to your nearest emergency room\n" +
		"   • Campus security can also connect you to help immediately\n\n" +
		"You don't have to face this alone. These trained professionals are there specifically to help people going through what you're experiencing. " +
		"They've helped countless students through similar situations, and they want to help you too.\n\n" +
		"Would you be willing to reach out to one of these resources right now? I'm here to support you, but these trained professionals can provide the immediate help you deserve."

	return Reply{
		Content:    content,
		Confidence: ConfidenceCrisis,
		ToolsUsed:  []string{ToolCrisisDetection, ToolCrisisIntervention},
		Metadata: Metadata{
			AgentType:          AgentTypeWellness,
			SupportType:        SupportCrisis,
			Severity:           SeverityCritical,
			CrisisDetected:     true,
			ShowEmergencyPopup: true,
		},
	}
}
