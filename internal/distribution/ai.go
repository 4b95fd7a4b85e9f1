package distribution

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"assessment-service/internal/llm"
)

// ChatClient is the narrow slice of the LLM client the planner needs.
type ChatClient interface {
	Available() bool
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

// AIPlanner asks a chat-completion model to rebalance the question mix for a
// profile. It enforces the same invariants as the rule-based distributor and
// returns nil on any failure, leaving the caller on the deterministic path.
type AIPlanner struct {
	client ChatClient
}

func NewAIPlanner(client ChatClient) *AIPlanner {
	return &AIPlanner{client: client}
}

// aiPlanResponse is the JSON shape requested from the model.
type aiPlanResponse struct {
	Technical []struct {
		Collection string `json:"collection"`
		Count      int    `json:"count"`
		Split      struct {
			Easy   int `json:"easy"`
			Medium int `json:"medium"`
			Hard   int `json:"hard"`
		} `json:"difficulty_split"`
	} `json:"technical"`
	Qualitative []struct {
		Cluster string `json:"cluster"`
		Count   int    `json:"count"`
	} `json:"qualitative"`
}

// BuildPlan returns a repaired plan or nil. It never lets a model or parse
// failure escape.
func (p *AIPlanner) BuildPlan(ctx context.Context, req Request) *Plan {
	if p == nil || p.client == nil || !p.client.Available() {
		return nil
	}

	raw, err := p.client.CompleteJSON(ctx, planSystemPrompt, buildPlanPrompt(req))
	if err != nil {
		log.Printf("ai planner: completion failed, falling back to rules: %v", err)
		return nil
	}

	plan, err := parsePlanResponse(raw, req)
	if err != nil {
		log.Printf("ai planner: invalid model output, falling back to rules: %v", err)
		return nil
	}
	return plan
}

// parsePlanResponse turns untrusted model output into a valid plan, applying
// the name and total repair rules.
func parsePlanResponse(raw string, req Request) (*Plan, error) {
	block, ok := llm.ExtractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var resp aiPlanResponse
	if err := json.Unmarshal([]byte(block), &resp); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	if len(resp.Technical) == 0 {
		return nil, fmt.Errorf("model output has no technical allocations")
	}

	plan := &Plan{Source: SourceAI}
	for _, t := range resp.Technical {
		plan.Technical = append(plan.Technical, TechnicalAllocation{
			Collection: t.Collection,
			Count:      t.Count,
			Split:      DifficultySplit{Easy: t.Split.Easy, Medium: t.Split.Medium, Hard: t.Split.Hard},
		})
	}
	for _, q := range resp.Qualitative {
		plan.Qualitative = append(plan.Qualitative, ClusterAllocation{Cluster: q.Cluster, Count: q.Count})
	}

	RepairCollectionNames(plan)
	if RepairClusterNames(plan, QualitativePlanFor(req.Intent)) {
		log.Printf("ai planner: no valid clusters in model output, substituted rule-based mix for intent %q", req.Intent)
	}
	RepairTechnicalTotal(plan)
	RepairQualitativeTotal(plan)
	return plan, nil
}
