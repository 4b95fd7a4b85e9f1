package distribution

import "assessment-service/internal/intent"

// Totals every plan must hit exactly, whichever path produced it.
const (
	TechnicalTotal   = 40
	QualitativeTotal = 29
)

// Plan sources, surfaced in response metadata.
const (
	SourceRules = "rules"
	SourceAI    = "ai"
)

// DifficultySplit breaks a domain's question count into difficulty buckets.
type DifficultySplit struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

func (s DifficultySplit) Total() int {
	return s.Easy + s.Medium + s.Hard
}

// AsCounts returns the split as a level→count map for the fetcher.
func (s DifficultySplit) AsCounts() map[string]int {
	return map[string]int{
		"easy":   s.Easy,
		"medium": s.Medium,
		"hard":   s.Hard,
	}
}

// TechnicalAllocation assigns a question count and difficulty split to one
// technical collection.
type TechnicalAllocation struct {
	Collection string          `json:"collection"`
	Count      int             `json:"count"`
	Split      DifficultySplit `json:"difficulty_split"`
}

// ClusterAllocation assigns a question count to one qualitative cluster.
type ClusterAllocation struct {
	Cluster string `json:"cluster"`
	Count   int    `json:"count"`
}

// Plan is the transient distribution plan for one assessment instance.
type Plan struct {
	Technical   []TechnicalAllocation `json:"technical"`
	Qualitative []ClusterAllocation   `json:"qualitative"`
	Source      string                `json:"source"`
}

func (p *Plan) TechnicalCount() int {
	total := 0
	for _, a := range p.Technical {
		total += a.Count
	}
	return total
}

func (p *Plan) QualitativeCount() int {
	total := 0
	for _, a := range p.Qualitative {
		total += a.Count
	}
	return total
}

// Request carries the profile attributes that drive distribution.
type Request struct {
	Intent      intent.Intent
	Experience  string
	CurrentRole string
	TargetRoles []string
}
