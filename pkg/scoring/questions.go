package scoring

// Question ids for the guided care questionnaire. The intake layer owns the
// question text and valid raw vocabularies; the scorer only sees ids and
// canonical codes.
const (
	QCognition     = "cognition"
	QBehaviors     = "behaviors"
	QSupport       = "caregiver_support"
	QLivesAlone    = "lives_alone"
	QBADL          = "badl"
	QIADL          = "iadl"
	QFalls         = "falls"
	QMobility      = "mobility"
	QMedManagement = "med_management"
	QHealthStatus  = "health_status"
	QMood          = "mood"
	QSocial        = "social"
	QAgeBand       = "age_band"
	QVeteran       = "veteran"
	QRecentDecline = "recent_decline"
)

// AllQuestions lists every question the scorer knows about. The answered
// fraction over this list drives the confidence estimate.
var AllQuestions = []string{
	QCognition,
	QBehaviors,
	QSupport,
	QLivesAlone,
	QBADL,
	QIADL,
	QFalls,
	QMobility,
	QMedManagement,
	QHealthStatus,
	QMood,
	QSocial,
	QAgeBand,
	QVeteran,
	QRecentDecline,
}

// CriticalQuestions must all be answered for the confidence bonus.
// Missing any of them applies the confidence penalty instead.
var CriticalQuestions = []string{
	QCognition,
	QSupport,
	QBADL,
	QFalls,
	QMedManagement,
}

// CodeUnanswered is the stable sentinel for missing, empty, or
// unrecognizable answers. It always scores zero.
const CodeUnanswered = "unanswered"

// severityTables maps each single-answer question's canonical codes to raw
// severity points (0-3). Codes absent from a question's table score zero.
var severityTables = map[string]map[string]int{
	QCognition: {
		"none":     0,
		"mild":     1,
		"moderate": 2,
		"severe":   3,
	},
	QSupport: {
		"around_clock": 0,
		"daily":        1,
		"weekly":       2,
		"none":         3,
	},
	QFalls: {
		"none":     0,
		"one":      1,
		"multiple": 3,
	},
	QMobility: {
		"independent": 0,
		"cane":        1,
		"walker":      2,
		"wheelchair":  3,
		"bedbound":    3,
	},
	QMedManagement: {
		"independent":  0,
		"reminders":    1,
		"assistance":   2,
		"full_support": 3,
	},
	QHealthStatus: {
		"excellent": 0,
		"good":      0,
		"fair":      1,
		"poor":      2,
		"very_poor": 3,
	},
	QMood: {
		"good":      0,
		"low":       1,
		"depressed": 2,
		"severe":    3,
	},
	QSocial: {
		"active":     0,
		"occasional": 1,
		"rare":       2,
		"isolated":   3,
	},
}

// BADL item codes (basic activities of daily living).
var badlItems = []string{"bathing", "dressing", "toileting", "transferring", "eating", "mobility"}

// badlCritical are the BADL items whose impairment marks heavy dependence.
var badlCritical = map[string]bool{
	"toileting":    true,
	"bathing":      true,
	"transferring": true,
	"mobility":     true,
}

// IADL item codes (instrumental activities of daily living).
var iadlItems = []string{"finances", "medications", "housekeeping", "meals", "transportation", "laundry"}

// iadlCritical are the IADL items whose impairment marks heavy dependence.
var iadlCritical = map[string]bool{
	"finances":    true,
	"medications": true,
}

// Behavior item codes (multi-select).
var behaviorItems = []string{"wandering", "aggression", "exit_seeking", "sundowning"}

// answerAliases folds the full-text labels the intake forms present into
// canonical codes. Keys are pre-folded: lowercase, trimmed, with any
// trailing clarifier (after a dash, em dash, or parenthesis) stripped.
// Codes themselves normalize to themselves and need no entry here.
var answerAliases = map[string]map[string]string{
	QCognition: {
		"no memory concerns":       "none",
		"sharp":                    "none",
		"occasional forgetfulness": "mild",
		"mild decline":             "mild",
		"noticeable decline":       "moderate",
		"moderate decline":         "moderate",
		"diagnosed dementia":       "severe",
		"severe decline":           "severe",
		"significant impairment":   "severe",
	},
	QSupport: {
		"around-the-clock support": "around_clock",
		"24/7":                     "around_clock",
		"lives with caregiver":     "around_clock",
		"help most days":           "daily",
		"daily check-ins":          "daily",
		"help a few times a week":  "weekly",
		"occasional help":          "weekly",
		"no regular help":          "none",
		"no caregiver":             "none",
	},
	QFalls: {
		"no falls":           "none",
		"one fall":           "one",
		"a single fall":      "one",
		"more than one fall": "multiple",
		"two or more falls":  "multiple",
		"frequent falls":     "multiple",
	},
	QMobility: {
		"walks independently": "independent",
		"no aid needed":       "independent",
		"uses a cane":         "cane",
		"uses a walker":       "walker",
		"uses a wheelchair":   "wheelchair",
		"mostly bedbound":     "bedbound",
	},
	QMedManagement: {
		"manages independently": "independent",
		"needs reminders":       "reminders",
		"needs some assistance": "assistance",
		"needs full support":    "full_support",
		"caregiver administers": "full_support",
	},
	QHealthStatus: {
		"very poor": "very_poor",
	},
	QMood: {
		"generally good":     "good",
		"feeling down":       "low",
		"often depressed":    "depressed",
		"severely depressed": "severe",
	},
	QSocial: {
		"socially active":          "active",
		"sees people occasionally": "occasional",
		"rarely sees anyone":       "rare",
		"mostly alone":             "isolated",
	},
	QAgeBand: {
		"under 65":    "under_65",
		"65-74":       "65_74",
		"65 to 74":    "65_74",
		"75-84":       "75_84",
		"75 to 84":    "75_84",
		"85+":         "85_plus",
		"85 or older": "85_plus",
	},
	QVeteran:       {"veteran": "yes", "not a veteran": "no", "true": "yes", "false": "no"},
	QLivesAlone:    {"alone": "yes", "with others": "no", "true": "yes", "false": "no"},
	QRecentDecline: {"true": "yes", "false": "no"},
	QBADL: {
		"transfers": "transferring", "transfer": "transferring",
		"walking": "mobility", "getting around": "mobility",
		"using the toilet": "toileting",
	},
	QIADL: {
		"managing finances": "finances", "money management": "finances",
		"managing medications": "medications", "medication management": "medications",
		"meal preparation": "meals", "cooking": "meals",
		"driving": "transportation",
	},
	QBehaviors: {
		"wanders":             "wandering",
		"aggressive episodes": "aggression",
		"tries to leave":      "exit_seeking",
		"exit seeking":        "exit_seeking",
		"evening agitation":   "sundowning",
	},
}

// knownCodes enumerates the valid canonical codes per question, so that
// already-canonical input passes through without an alias entry.
var knownCodes = map[string]map[string]bool{
	QCognition:     codeSet("none", "mild", "moderate", "severe"),
	QSupport:       codeSet("around_clock", "daily", "weekly", "none"),
	QFalls:         codeSet("none", "one", "multiple"),
	QMobility:      codeSet("independent", "cane", "walker", "wheelchair", "bedbound"),
	QMedManagement: codeSet("independent", "reminders", "assistance", "full_support"),
	QHealthStatus:  codeSet("excellent", "good", "fair", "poor", "very_poor"),
	QMood:          codeSet("good", "low", "depressed", "severe"),
	QSocial:        codeSet("active", "occasional", "rare", "isolated"),
	QAgeBand:       codeSet("under_65", "65_74", "75_84", "85_plus"),
	QVeteran:       codeSet("yes", "no"),
	QLivesAlone:    codeSet("yes", "no"),
	QRecentDecline: codeSet("yes", "no"),
	QBADL:          codeSet(badlItems...),
	QIADL:          codeSet(iadlItems...),
	QBehaviors:     codeSet(behaviorItems...),
}

func codeSet(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}
