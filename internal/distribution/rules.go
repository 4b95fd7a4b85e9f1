package distribution

import (
	"math"
	"strings"

	"assessment-service/internal/intent"
	"assessment-service/internal/registry"
)

// difficultyRatio is a fractional easy/medium/hard mix applied to a domain
// count. The hard bucket absorbs the rounding remainder so the split always
// sums back to the count.
type difficultyRatio struct {
	easy   float64
	medium float64
	hard   float64
}

var (
	easySkewRatio    = difficultyRatio{0.6, 0.3, 0.1} // confused exploration
	fresherRatio     = difficultyRatio{0.6, 0.4, 0.0} // interested, no experience
	experiencedRatio = difficultyRatio{0.3, 0.5, 0.2} // interested, has experience
	switchRatio      = difficultyRatio{0.5, 0.3, 0.2} // easy-leaning for role changers
	growSplit        = DifficultySplit{Easy: 5, Medium: 20, Hard: 15}
	defaultSplit     = DifficultySplit{Easy: 20, Medium: 15, Hard: 5}
)

// confusedDomains are the exploration collections probed when the user has no
// direction yet: one generic pool plus two broad analyst tracks.
var confusedDomains = []string{
	registry.DefaultCollection,
	"Data_Science_Analytics_Data_analyst",
	"Strategy_Consulting_Business_analyst",
}

// Qualitative cluster mixes per intent. Counts sum to QualitativeTotal.
var (
	confusedClusters = []ClusterAllocation{
		{Cluster: "Exploration_And_Curiosity", Count: 11},
		{Cluster: "Self_Awareness_And_Growth", Count: 9},
		{Cluster: "Decision_Making_And_Clarity", Count: 9},
	}
	interestedClusters = []ClusterAllocation{
		{Cluster: "Exploration_And_Curiosity", Count: 12},
		{Cluster: "Motivation_And_Drive", Count: 10},
		{Cluster: "Decision_Making_And_Clarity", Count: 7},
	}
	growClusters = []ClusterAllocation{
		{Cluster: "Leadership_And_Ownership", Count: 12},
		{Cluster: "Collaboration_And_Communication", Count: 10},
		{Cluster: "Self_Awareness_And_Growth", Count: 7},
	}
	switchClusters = []ClusterAllocation{
		{Cluster: "Adaptability_And_Resilience", Count: 12},
		{Cluster: "Learning_Agility_And_Openness", Count: 10},
		{Cluster: "Decision_Making_And_Clarity", Count: 7},
	}
	defaultClusters = []ClusterAllocation{
		{Cluster: "Self_Awareness_And_Growth", Count: 12},
		{Cluster: "Motivation_And_Drive", Count: 10},
		{Cluster: "Collaboration_And_Communication", Count: 7},
	}
)

// IsFresher reports whether an experience bracket means no work experience.
func IsFresher(experience string) bool {
	s := strings.ToLower(experience)
	return strings.Contains(s, "fresher") || strings.HasPrefix(s, "0")
}

// BuildRulePlan is the deterministic distributor. It always returns a plan
// whose technical counts sum to exactly TechnicalTotal and whose qualitative
// counts sum to exactly QualitativeTotal.
func BuildRulePlan(req Request) *Plan {
	var technical []TechnicalAllocation
	var qualitative []ClusterAllocation

	switch req.Intent {
	case intent.Confused:
		technical = evenAllocations(confusedDomains, TechnicalTotal, easySkewRatio)
		qualitative = cloneClusters(confusedClusters)

	case intent.Interested:
		domains := targetCollections(req.TargetRoles, "")
		if len(domains) == 0 {
			domains = []string{registry.DefaultCollection}
		}
		ratio := experiencedRatio
		if IsFresher(req.Experience) {
			ratio = fresherRatio
		}
		technical = evenAllocations(domains, TechnicalTotal, ratio)
		qualitative = cloneClusters(interestedClusters)

	case intent.Grow:
		col := registry.CollectionForRole(req.CurrentRole)
		technical = []TechnicalAllocation{{Collection: col, Count: TechnicalTotal, Split: growSplit}}
		qualitative = cloneClusters(growClusters)

	case intent.Switch:
		technical = switchAllocations(req)
		qualitative = cloneClusters(switchClusters)

	default:
		technical = []TechnicalAllocation{{Collection: registry.DefaultCollection, Count: TechnicalTotal, Split: defaultSplit}}
		qualitative = cloneClusters(defaultClusters)
	}

	plan := &Plan{Technical: technical, Qualitative: qualitative, Source: SourceRules}
	RepairTechnicalTotal(plan)
	RepairQualitativeTotal(plan)
	return plan
}

// QualitativePlanFor returns the rule-based qualitative mix for one intent.
// The AI path substitutes this when none of the model's clusters validate.
func QualitativePlanFor(in intent.Intent) []ClusterAllocation {
	switch in {
	case intent.Confused:
		return cloneClusters(confusedClusters)
	case intent.Interested:
		return cloneClusters(interestedClusters)
	case intent.Grow:
		return cloneClusters(growClusters)
	case intent.Switch:
		return cloneClusters(switchClusters)
	}
	return cloneClusters(defaultClusters)
}

// switchAllocations gives the current role half the questions and splits the
// rest evenly across the target roles.
func switchAllocations(req Request) []TechnicalAllocation {
	var allocs []TechnicalAllocation
	remaining := TechnicalTotal
	currentCol := ""

	if req.CurrentRole != "" {
		currentCol = registry.CollectionForRole(req.CurrentRole)
		allocs = append(allocs, TechnicalAllocation{
			Collection: currentCol,
			Count:      TechnicalTotal / 2,
			Split:      splitForCount(TechnicalTotal/2, switchRatio),
		})
		remaining -= TechnicalTotal / 2
	}

	targets := targetCollections(req.TargetRoles, currentCol)
	if len(targets) == 0 {
		targets = []string{registry.DefaultCollection}
	}
	allocs = append(allocs, evenAllocations(targets, remaining, switchRatio)...)
	return allocs
}

// evenAllocations splits total across the given collections, pushing the
// integer-division leftover onto the first one.
func evenAllocations(collections []string, total int, ratio difficultyRatio) []TechnicalAllocation {
	per := total / len(collections)
	leftover := total - per*len(collections)

	allocs := make([]TechnicalAllocation, 0, len(collections))
	for i, col := range collections {
		count := per
		if i == 0 {
			count += leftover
		}
		allocs = append(allocs, TechnicalAllocation{
			Collection: col,
			Count:      count,
			Split:      splitForCount(count, ratio),
		})
	}
	return allocs
}

// splitForCount applies a ratio to a count. Easy and medium round to nearest,
// hard takes the remainder so the buckets always sum to count.
func splitForCount(count int, ratio difficultyRatio) DifficultySplit {
	easy := int(math.Round(ratio.easy * float64(count)))
	medium := int(math.Round(ratio.medium * float64(count)))
	if easy+medium > count {
		medium = count - easy
	}
	return DifficultySplit{Easy: easy, Medium: medium, Hard: count - easy - medium}
}

// targetCollections maps target roles to collections, dropping duplicates and
// anything already covered by exclude.
func targetCollections(roles []string, exclude string) []string {
	seen := map[string]bool{}
	var cols []string
	for _, role := range roles {
		if role == "" {
			continue
		}
		col := registry.CollectionForRole(role)
		if col == exclude || seen[col] {
			continue
		}
		seen[col] = true
		cols = append(cols, col)
	}
	return cols
}

func cloneClusters(src []ClusterAllocation) []ClusterAllocation {
	out := make([]ClusterAllocation, len(src))
	copy(out, src)
	return out
}
