package intent

// Intent is a user's career-assessment motivation.
type Intent string

const (
	Confused   Intent = "confused"
	Interested Intent = "interested"
	Grow       Intent = "grow"
	Switch     Intent = "switch"
)

func (i Intent) Valid() bool {
	switch i {
	case Confused, Interested, Grow, Switch:
		return true
	}
	return false
}

// ProfileInput is the profile-shaped body a detection request carries.
type ProfileInput struct {
	Experience     string   `json:"experience"`
	CurrentRole    string   `json:"current_role"`
	TargetRoles    []string `json:"target_roles"`
	Purpose        string   `json:"purpose"`
	Education      string   `json:"education"`
	FunctionalArea string   `json:"functional_area"`
	AgeBracket     string   `json:"age_bracket"`
}

// Detection is the classifier's answer for one profile.
type Detection struct {
	Intent                Intent   `json:"intent"`
	Confidence            float64  `json:"confidence"`
	Reasoning             string   `json:"reasoning"`
	RecommendedPath       string   `json:"recommended_path"`
	CareerInsights        []string `json:"career_insights,omitempty"`
	SkillGaps             []string `json:"skill_gaps,omitempty"`
	SuggestedLearningPath []string `json:"suggested_learning_path,omitempty"`
	FallbackUsed          bool     `json:"fallback_used"`
}
