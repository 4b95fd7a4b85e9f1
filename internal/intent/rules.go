package intent

import "strings"

// ruleMatch is a deterministic override produced by the fixed-priority rules.
type ruleMatch struct {
	intent     Intent
	confidence float64
	reasoning  string
}

// IsFresher reports whether an experience bracket means no work experience.
func IsFresher(experience string) bool {
	s := strings.ToLower(experience)
	return strings.Contains(s, "fresher") || strings.HasPrefix(s, "0")
}

// matchRule evaluates the override rules in fixed priority order. Only the
// first matching branch fires; the check order is significant and must not
// be reordered.
func matchRule(p ProfileInput) (ruleMatch, bool) {
	fresher := IsFresher(p.Experience)
	hasTargets := len(p.TargetRoles) > 0
	hasRole := p.CurrentRole != ""

	switch {
	case fresher && !hasTargets:
		return ruleMatch{Confused, 0.85, "Fresher without target roles: needs broad exploration before committing to a direction."}, true
	case fresher && hasTargets:
		return ruleMatch{Interested, 0.80, "Fresher with stated target roles: already drawn toward a specific path."}, true
	case hasRole && !hasTargets:
		return ruleMatch{Grow, 0.80, "Working professional without target roles: focus is depth in the current role."}, true
	case hasRole && hasTargets && p.CurrentRole != p.TargetRoles[0]:
		return ruleMatch{Switch, 0.85, "Current role differs from the primary target role: planning a role change."}, true
	case strings.Contains(strings.ToLower(p.Purpose), "role validation"):
		return ruleMatch{Grow, 0.80, "Stated purpose is role validation: assessing fit within the current role."}, true
	}
	return ruleMatch{}, false
}

// recommendedPath names the assessment track a detected intent leads to.
func recommendedPath(in Intent) string {
	switch in {
	case Confused:
		return "exploration_assessment"
	case Interested:
		return "target_role_assessment"
	case Grow:
		return "depth_assessment"
	case Switch:
		return "transition_assessment"
	}
	return "general_assessment"
}
