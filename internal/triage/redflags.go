package triage

// Input is the normalized symptom payload evaluated by the detector and
// the rule engine. Symptoms are lowercase snake_case symptom codes.
type Input struct {
	Symptoms         []string
	BodyPart         string
	Severity         int // 1-10
	DurationDays     int
	Frequency        string // rare | intermittent | continuous
	PreviousEpisodes bool
	Age              *int // nil when unknown
}

type RedFlag struct {
	Code        string
	Description string
}

type RedFlagResult struct {
	HasRedFlag bool
	Flags      []RedFlag
}

type redFlagRule struct {
	RedFlag
	match func(in Input) bool
}

// Fixed ordered rule table. Every matching rule fires, not just the first.
var redFlagRules = []redFlagRule{
	{
		RedFlag: RedFlag{Code: "RF001", Description: "Chest pain with shortness of breath"},
		match: func(in Input) bool {
			return in.has("chest_pain") && in.has("shortness_of_breath")
		},
	},
	{
		RedFlag: RedFlag{Code: "RF002", Description: "Severe headache with vision problems"},
		match: func(in Input) bool {
			return in.has("headache") && in.has("vision_loss") && in.Severity >= 7
		},
	},
	{
		RedFlag: RedFlag{Code: "RF003", Description: "High fever with neck stiffness"},
		match: func(in Input) bool {
			return in.has("fever") && in.has("neck_stiffness") && in.Severity >= 7
		},
	},
	{
		RedFlag: RedFlag{Code: "RF004", Description: "Sudden weakness with speech difficulty"},
		match: func(in Input) bool {
			return in.has("sudden_weakness") && in.has("speech_difficulty")
		},
	},
	{
		RedFlag: RedFlag{Code: "RF005", Description: "Abdominal pain with vomiting blood"},
		match: func(in Input) bool {
			return in.has("abdominal_pain") && in.has("vomiting_blood")
		},
	},
}

func (in Input) has(symptom string) bool {
	for _, s := range in.Symptoms {
		if s == symptom {
			return true
		}
	}
	return false
}

// DetectRedFlags evaluates the rule table. Pure, no error conditions;
// unmatched input yields HasRedFlag=false.
func DetectRedFlags(in Input) RedFlagResult {
	var flags []RedFlag
	for _, rule := range redFlagRules {
		if rule.match(in) {
			flags = append(flags, rule.RedFlag)
		}
	}
	return RedFlagResult{
		HasRedFlag: len(flags) > 0,
		Flags:      flags,
	}
}
