package safety

// crisisPhrases signal possible self-harm. Matching is by substring on
// normalized text, so "suicide" also covers "suicidal thoughts".
var crisisPhrases = []string{
	"want to die", "wanna die", "want 2 die", "going to kill myself", "gonna kill myself",
	"kill myself", "killing myself", "suicide", "suicidal", "end my life", "end it all",
	"no reason to live", "better off dead", "hurt myself", "hurting myself", "harm myself",
	"self harm", "self-harm", "selfharm",
	"can't go on", "cannot go on", "cant go on", "don't want to be here", "dont want to be here",
	"wish i was dead", "wish i were dead", "take my life", "want to disappear", "end this pain",
	"no point in living", "no point living", "life isn't worth", "life isnt worth", "not worth living",
	"rather be dead", "ending it", "thinking about dying", "thoughts of suicide",
	"plan to kill", "feeling suicidal", "want to end", "ready to die",
}

// dangerPhrases signal a physical-safety threat from someone else.
var dangerPhrases = []string{
	"in danger", "are you in danger", "feeling unsafe", "not safe",
	"scared for my life", "afraid of", "threatening", "being threatened",
	"domestic violence", "abusive relationship", "being hurt",
	"someone hurting me", "afraid to go home",
}

// Stress buckets, highest first. The first bucket with a hit wins.
var stressBuckets = []struct {
	level   int
	phrases []string
}{
	{8, []string{"overwhelmed", "can't cope", "cant cope", "breaking down", "panic", "crisis",
		"can't handle", "cant handle", "too much", "drowning", "collapsing", "desperate"}},
	{6, []string{"stressed", "anxious", "worried", "struggling", "hard time",
		"difficult", "challenging", "burnt out", "burned out", "exhausted"}},
	{4, []string{"concerned", "nervous", "unsure", "tired", "busy", "pressure"}},
}
