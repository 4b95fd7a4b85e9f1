package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"assessment-service/internal/llm"
)

// ZeroShot is the remote classification collaborator.
type ZeroShot interface {
	Available() bool
	Classify(ctx context.Context, input string, labels []string) (string, float64, error)
}

// Enricher is the free-text generation collaborator used to flesh out a
// provisional detection.
type Enricher interface {
	Available() bool
	Complete(ctx context.Context, system, user string) (string, error)
}

// candidate label phrasings for zero-shot scoring, mapped back to intents.
var candidateLabels = map[string]Intent{
	"feeling confused and unsure about career direction": Confused,
	"interested in exploring a specific career path":     Interested,
	"wants to grow and advance in the current role":      Grow,
	"wants to switch to a different role or career":      Switch,
}

// Classifier turns a profile into an intent. Remote services are optional:
// every path ends in a valid detection.
type Classifier struct {
	zeroShot ZeroShot
	enricher Enricher
}

func NewClassifier(zeroShot ZeroShot, enricher Enricher) *Classifier {
	return &Classifier{zeroShot: zeroShot, enricher: enricher}
}

// Detect classifies the profile. Remote classification and enrichment run
// first; the deterministic rule overrides then take precedence whenever one
// matches. Any remote error drops to the pure rule fallback.
func (c *Classifier) Detect(ctx context.Context, p ProfileInput) *Detection {
	det, err := c.remoteDetect(ctx, p)
	if err != nil {
		log.Printf("intent: remote classification unavailable, using rule fallback: %v", err)
		return c.RuleFallback(p)
	}

	if m, ok := matchRule(p); ok {
		det.Intent = m.intent
		if det.Confidence < m.confidence {
			det.Confidence = m.confidence
		}
		det.Reasoning = m.reasoning
		det.RecommendedPath = recommendedPath(m.intent)
	}
	return det
}

// RuleFallback is the purely deterministic classifier used when every remote
// collaborator is out of reach.
func (c *Classifier) RuleFallback(p ProfileInput) *Detection {
	in := Interested
	if m, ok := matchRule(p); ok {
		in = m.intent
	} else if len(p.TargetRoles) == 0 {
		in = Confused
	}
	return &Detection{
		Intent:          in,
		Confidence:      0.7,
		Reasoning:       "Rule-based classification from profile structure.",
		RecommendedPath: recommendedPath(in),
		FallbackUsed:    true,
	}
}

func (c *Classifier) remoteDetect(ctx context.Context, p ProfileInput) (*Detection, error) {
	if c.zeroShot == nil || !c.zeroShot.Available() {
		return nil, fmt.Errorf("zero-shot classifier not configured")
	}

	labels := make([]string, 0, len(candidateLabels))
	for label := range candidateLabels {
		labels = append(labels, label)
	}
	top, score, err := c.zeroShot.Classify(ctx, describeProfile(p), labels)
	if err != nil {
		return nil, err
	}
	in, ok := candidateLabels[top]
	if !ok {
		return nil, fmt.Errorf("zero-shot returned unknown label %q", top)
	}

	det := &Detection{
		Intent:          in,
		Confidence:      score,
		Reasoning:       "Zero-shot classification of the profile description.",
		RecommendedPath: recommendedPath(in),
	}

	if c.enricher != nil && c.enricher.Available() {
		if err := c.enrich(ctx, p, det); err != nil {
			return nil, err
		}
	}
	return det, nil
}

// enrichResponse is the JSON shape the enrichment prompt asks for.
type enrichResponse struct {
	Intent                string   `json:"intent"`
	Confidence            float64  `json:"confidence"`
	Reasoning             string   `json:"reasoning"`
	RecommendedPath       string   `json:"recommended_path"`
	CareerInsights        []string `json:"career_insights"`
	SkillGaps             []string `json:"skill_gaps"`
	SuggestedLearningPath []string `json:"suggested_learning_path"`
}

// enrich asks the generation model for a richer reading of the profile and
// overrides the provisional detection when the output carries a valid
// intent. Unparseable output is tolerated; only the transport error counts
// as a failure.
func (c *Classifier) enrich(ctx context.Context, p ProfileInput, det *Detection) error {
	out, err := c.enricher.Complete(ctx, enrichSystemPrompt, buildEnrichPrompt(p, det.Intent))
	if err != nil {
		return err
	}

	block, ok := llm.ExtractJSONObject(out)
	if !ok {
		return nil
	}
	var resp enrichResponse
	if err := json.Unmarshal([]byte(block), &resp); err != nil {
		return nil
	}
	in := Intent(strings.ToLower(resp.Intent))
	if !in.Valid() {
		return nil
	}

	det.Intent = in
	if resp.Confidence > 0 {
		det.Confidence = resp.Confidence
	}
	if resp.Reasoning != "" {
		det.Reasoning = resp.Reasoning
	}
	if resp.RecommendedPath != "" {
		det.RecommendedPath = resp.RecommendedPath
	} else {
		det.RecommendedPath = recommendedPath(in)
	}
	det.CareerInsights = resp.CareerInsights
	det.SkillGaps = resp.SkillGaps
	det.SuggestedLearningPath = resp.SuggestedLearningPath
	return nil
}

const enrichSystemPrompt = `You are a career counsellor. Respond with strict JSON only: {"intent":"confused|interested|grow|switch","confidence":0.0,"reasoning":"...","recommended_path":"...","career_insights":[],"skill_gaps":[],"suggested_learning_path":[]}`

func buildEnrichPrompt(p ProfileInput, provisional Intent) string {
	var b strings.Builder
	b.WriteString("Candidate profile:\n")
	fmt.Fprintf(&b, "- experience: %s\n", p.Experience)
	if p.CurrentRole != "" {
		fmt.Fprintf(&b, "- current role: %s\n", p.CurrentRole)
	}
	if len(p.TargetRoles) > 0 {
		fmt.Fprintf(&b, "- target roles: %s\n", strings.Join(p.TargetRoles, ", "))
	}
	if p.Purpose != "" {
		fmt.Fprintf(&b, "- stated purpose: %s\n", p.Purpose)
	}
	if p.Education != "" {
		fmt.Fprintf(&b, "- education: %s\n", p.Education)
	}
	if p.FunctionalArea != "" {
		fmt.Fprintf(&b, "- functional area: %s\n", p.FunctionalArea)
	}
	fmt.Fprintf(&b, "\nA first-pass classifier read this as %q. Confirm or correct the intent and enrich the assessment.", provisional)
	return b.String()
}

// describeProfile flattens the profile into the free-text input the
// zero-shot model scores.
func describeProfile(p ProfileInput) string {
	parts := []string{fmt.Sprintf("Experience: %s.", p.Experience)}
	if p.CurrentRole != "" {
		parts = append(parts, fmt.Sprintf("Currently working as %s.", p.CurrentRole))
	}
	if len(p.TargetRoles) > 0 {
		parts = append(parts, fmt.Sprintf("Target roles: %s.", strings.Join(p.TargetRoles, ", ")))
	}
	if p.Purpose != "" {
		parts = append(parts, fmt.Sprintf("Purpose: %s.", p.Purpose))
	}
	return strings.Join(parts, " ")
}
