package distribution

import (
	"math"

	"assessment-service/internal/registry"
)

// Repair rules for plans whose counts or names drifted off the invariants.
// Each rule is silent: callers never see a repaired plan as an error.
// Corrections concentrate on the first list entry, which keeps the output
// distribution of the original policy tables intact; only an overdraft too
// large for the first entry spills into the ones after it.

// RepairTechnicalTotal forces the technical counts to sum to exactly
// TechnicalTotal. The whole difference lands on the first domain; when an
// overdraft exceeds the first domain's count it goes to zero and the residual
// cascades into the following domains until the total is exact. Every
// adjusted domain has its difficulty split rescaled proportionally, with
// sub-buckets rounding independently and deliberately not re-summed to the
// parent count.
func RepairTechnicalTotal(plan *Plan) {
	if len(plan.Technical) == 0 {
		return
	}
	diff := TechnicalTotal - plan.TechnicalCount()
	for i := range plan.Technical {
		if diff == 0 {
			return
		}
		alloc := &plan.Technical[i]
		oldCount := alloc.Count
		next := oldCount + diff
		if next < 0 {
			next = 0
		}
		diff -= next - oldCount
		if next != oldCount {
			alloc.Count = next
			alloc.Split = rescaleSplit(alloc.Split, oldCount, next)
		}
	}
}

// RepairQualitativeTotal forces the qualitative counts to sum to exactly
// QualitativeTotal, adjusting the first cluster and cascading any overdraft
// residual the same way as the technical repair.
func RepairQualitativeTotal(plan *Plan) {
	if len(plan.Qualitative) == 0 {
		return
	}
	diff := QualitativeTotal - plan.QualitativeCount()
	for i := range plan.Qualitative {
		if diff == 0 {
			return
		}
		next := plan.Qualitative[i].Count + diff
		if next < 0 {
			next = 0
		}
		diff -= next - plan.Qualitative[i].Count
		plan.Qualitative[i].Count = next
	}
}

// RepairClusterNames drops cluster allocations whose names are not in the
// registry. When nothing survives, the rule-based qualitative mix for the
// intent is substituted wholesale. Returns true if the substitution fired.
func RepairClusterNames(plan *Plan, fallback []ClusterAllocation) bool {
	valid := plan.Qualitative[:0]
	for _, alloc := range plan.Qualitative {
		if registry.IsValidCluster(alloc.Cluster) {
			valid = append(valid, alloc)
		}
	}
	plan.Qualitative = valid
	if len(plan.Qualitative) == 0 {
		plan.Qualitative = fallback
		return true
	}
	return false
}

// RepairCollectionNames remaps technical allocations with unknown collection
// names onto the default collection, merging duplicates that result.
func RepairCollectionNames(plan *Plan) {
	merged := make([]TechnicalAllocation, 0, len(plan.Technical))
	index := map[string]int{}
	for _, alloc := range plan.Technical {
		if !registry.IsValidCollection(alloc.Collection) {
			alloc.Collection = registry.DefaultCollection
		}
		if i, ok := index[alloc.Collection]; ok {
			merged[i].Count += alloc.Count
			merged[i].Split.Easy += alloc.Split.Easy
			merged[i].Split.Medium += alloc.Split.Medium
			merged[i].Split.Hard += alloc.Split.Hard
			continue
		}
		index[alloc.Collection] = len(merged)
		merged = append(merged, alloc)
	}
	plan.Technical = merged
}

// rescaleSplit scales each difficulty bucket by newCount/oldCount, rounding
// every bucket independently. The buckets may drift a question off the
// parent count; that drift is accepted rather than corrected.
func rescaleSplit(split DifficultySplit, oldCount, newCount int) DifficultySplit {
	if oldCount <= 0 {
		return DifficultySplit{Easy: newCount}
	}
	ratio := float64(newCount) / float64(oldCount)
	return DifficultySplit{
		Easy:   int(math.Round(float64(split.Easy) * ratio)),
		Medium: int(math.Round(float64(split.Medium) * ratio)),
		Hard:   int(math.Round(float64(split.Hard) * ratio)),
	}
}
