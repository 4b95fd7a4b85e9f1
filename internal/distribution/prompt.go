package distribution

import (
	"fmt"
	"sort"
	"strings"

	"assessment-service/internal/registry"
)

const planSystemPrompt = `You are a career-assessment planner. You produce question distribution plans as strict JSON and nothing else. Use only the collection and cluster names you are given.`

// buildPlanPrompt embeds the exact registry name lists so a well-formed model
// response can never trip the invalid-name repairs.
func buildPlanPrompt(req Request) string {
	domains := registry.TechnicalCollections()
	sort.Strings(domains)
	clusters := registry.ClusterIDs()
	sort.Strings(clusters)

	var b strings.Builder
	fmt.Fprintf(&b, "Plan a question distribution for this candidate:\n")
	fmt.Fprintf(&b, "- intent: %s\n", req.Intent)
	fmt.Fprintf(&b, "- experience: %s\n", req.Experience)
	if req.CurrentRole != "" {
		fmt.Fprintf(&b, "- current role: %s\n", req.CurrentRole)
	}
	if len(req.TargetRoles) > 0 {
		fmt.Fprintf(&b, "- target roles: %s\n", strings.Join(req.TargetRoles, ", "))
	}

	b.WriteString("\nValid technical collections (use these names exactly):\n")
	for _, d := range domains {
		fmt.Fprintf(&b, "- %s\n", d)
	}
	b.WriteString("\nValid qualitative clusters (use these names exactly):\n")
	for _, c := range clusters {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	fmt.Fprintf(&b, "\nTechnical counts must sum to exactly %d. Qualitative counts must sum to exactly %d.\n", TechnicalTotal, QualitativeTotal)
	b.WriteString(difficultyGuidance(req.Experience))
	b.WriteString(`
Respond with JSON only, in this shape:
{"technical":[{"collection":"...","count":10,"difficulty_split":{"easy":5,"medium":3,"hard":2}}],"qualitative":[{"cluster":"...","count":10}]}`)
	return b.String()
}

func difficultyGuidance(experience string) string {
	if IsFresher(experience) {
		return "The candidate is a fresher: weight difficulty splits roughly 60% easy and 40% medium, no hard questions.\n"
	}
	return "The candidate has work experience: weight difficulty splits roughly 30% easy, 50% medium, 20% hard.\n"
}
