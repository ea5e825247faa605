package agent

// Log prefixes
const (
	LogPrefixDomainProcess   = "internal.agent.domainHandler.Process"
	LogPrefixWellnessProcess = "internal.agent.WellnessHandler.Process"
	LogPrefixGeneralProcess  = "internal.agent.GeneralHandler.Process"
)

// Agent types recorded in metadata.
const (
	AgentTypeAcademic   = "academic"
	AgentTypeWellness   = "wellness"
	AgentTypeCampusLife = "campus-life"
	AgentTypeGeneral    = "general"
)

// Support types recorded in metadata.
const (
	SupportStudy     = "study-support"
	SupportEmotional = "emotional-wellbeing"
	SupportCrisis    = "crisis-intervention"
	SupportSocial    = "social-resources"
	SeverityCritical = "critical"
)

// Tool tags.
const (
	ToolCrisisDetection    = "crisis-detection"
	ToolCrisisIntervention = "crisis-intervention"
	ToolDangerDetection    = "danger-detection"
	ToolStressDetection    = "stress-detection"
	ToolStressTracking     = "stress-tracking"
)

// Confidences per handler.
const (
	ConfidenceAcademic   = 0.85
	ConfidenceWellness   = 0.9
	ConfidenceCampusLife = 0.8
	ConfidenceGeneral    = 0.8
	ConfidenceCanned     = 0.6
	ConfidenceDegraded   = 0.5
	ConfidenceCrisis     = 1.0
)
