package distribution

import (
	"testing"

	"assessment-service/internal/intent"
	"assessment-service/internal/registry"
)

func TestRepairTechnicalTotalAdjustsFirstDomain(t *testing.T) {
	plan := &Plan{
		Technical: []TechnicalAllocation{
			{Collection: "Engineering_Development_Software_engineer_or_developer", Count: 10, Split: DifficultySplit{Easy: 5, Medium: 3, Hard: 2}},
			{Collection: "Product_Management_Product_manager", Count: 26, Split: DifficultySplit{Easy: 10, Medium: 10, Hard: 6}},
		},
	}
	RepairTechnicalTotal(plan)

	if plan.TechnicalCount() != TechnicalTotal {
		t.Fatalf("total after repair is %d, want %d", plan.TechnicalCount(), TechnicalTotal)
	}
	if plan.Technical[0].Count != 14 {
		t.Errorf("first domain count is %d, want 14", plan.Technical[0].Count)
	}
	// Second entry is untouched.
	if plan.Technical[1].Count != 26 {
		t.Errorf("second domain count changed to %d", plan.Technical[1].Count)
	}
	// 10 -> 14 scales {5,3,2} by 1.4 with per-bucket rounding.
	want := DifficultySplit{Easy: 7, Medium: 4, Hard: 3}
	if plan.Technical[0].Split != want {
		t.Errorf("rescaled split is %+v, want %+v", plan.Technical[0].Split, want)
	}
}

func TestRepairTechnicalTotalCascadesOverdraft(t *testing.T) {
	// The overdraft of 15 empties the 5-question first domain and the
	// residual 10 comes out of the second, so the total stays exact.
	plan := &Plan{
		Technical: []TechnicalAllocation{
			{Collection: registry.DefaultCollection, Count: 5, Split: DifficultySplit{Easy: 5}},
			{Collection: "Product_Management_Product_manager", Count: 50, Split: DifficultySplit{Easy: 25, Medium: 15, Hard: 10}},
		},
	}
	RepairTechnicalTotal(plan)

	if plan.TechnicalCount() != TechnicalTotal {
		t.Fatalf("total after repair is %d, want %d", plan.TechnicalCount(), TechnicalTotal)
	}
	if plan.Technical[0].Count != 0 {
		t.Errorf("first domain count is %d, want 0", plan.Technical[0].Count)
	}
	if plan.Technical[0].Split != (DifficultySplit{}) {
		t.Errorf("emptied domain kept a split: %+v", plan.Technical[0].Split)
	}
	if plan.Technical[1].Count != 40 {
		t.Errorf("second domain count is %d, want 40", plan.Technical[1].Count)
	}
	// 50 -> 40 scales {25,15,10} by 0.8.
	want := DifficultySplit{Easy: 20, Medium: 12, Hard: 8}
	if plan.Technical[1].Split != want {
		t.Errorf("rescaled split is %+v, want %+v", plan.Technical[1].Split, want)
	}
}

func TestRepairQualitativeTotalCascadesOverdraft(t *testing.T) {
	plan := &Plan{
		Qualitative: []ClusterAllocation{
			{Cluster: "Self_Awareness_And_Growth", Count: 4},
			{Cluster: "Motivation_And_Drive", Count: 40},
		},
	}
	RepairQualitativeTotal(plan)

	if plan.QualitativeCount() != QualitativeTotal {
		t.Fatalf("total after repair is %d, want %d", plan.QualitativeCount(), QualitativeTotal)
	}
	if plan.Qualitative[0].Count != 0 {
		t.Errorf("first cluster count is %d, want 0", plan.Qualitative[0].Count)
	}
	if plan.Qualitative[1].Count != 29 {
		t.Errorf("second cluster count is %d, want 29", plan.Qualitative[1].Count)
	}
}

func TestRepairQualitativeTotalAdjustsFirstCluster(t *testing.T) {
	plan := &Plan{
		Qualitative: []ClusterAllocation{
			{Cluster: "Self_Awareness_And_Growth", Count: 10},
			{Cluster: "Motivation_And_Drive", Count: 10},
		},
	}
	RepairQualitativeTotal(plan)
	if plan.QualitativeCount() != QualitativeTotal {
		t.Fatalf("total after repair is %d, want %d", plan.QualitativeCount(), QualitativeTotal)
	}
	if plan.Qualitative[0].Count != 19 {
		t.Errorf("first cluster count is %d, want 19", plan.Qualitative[0].Count)
	}
	if plan.Qualitative[1].Count != 10 {
		t.Errorf("second cluster count changed to %d", plan.Qualitative[1].Count)
	}
}

func TestRepairClusterNames(t *testing.T) {
	fallback := QualitativePlanFor(intent.Grow)

	t.Run("drops unknown clusters", func(t *testing.T) {
		plan := &Plan{Qualitative: []ClusterAllocation{
			{Cluster: "Self_Awareness_And_Growth", Count: 15},
			{Cluster: "Made_Up_Cluster", Count: 14},
		}}
		if RepairClusterNames(plan, fallback) {
			t.Fatal("substitution fired with a surviving cluster")
		}
		if len(plan.Qualitative) != 1 || plan.Qualitative[0].Cluster != "Self_Awareness_And_Growth" {
			t.Errorf("unexpected clusters after repair: %+v", plan.Qualitative)
		}
	})

	t.Run("substitutes fallback when nothing survives", func(t *testing.T) {
		plan := &Plan{Qualitative: []ClusterAllocation{
			{Cluster: "Nonsense_One", Count: 20},
			{Cluster: "Nonsense_Two", Count: 9},
		}}
		if !RepairClusterNames(plan, fallback) {
			t.Fatal("substitution did not fire")
		}
		if len(plan.Qualitative) != len(fallback) {
			t.Fatalf("got %d clusters, want %d", len(plan.Qualitative), len(fallback))
		}
		for i, alloc := range plan.Qualitative {
			if alloc != fallback[i] {
				t.Errorf("cluster %d is %+v, want %+v", i, alloc, fallback[i])
			}
		}
	})
}

func TestRepairCollectionNamesRemapsAndMerges(t *testing.T) {
	plan := &Plan{Technical: []TechnicalAllocation{
		{Collection: "No_Such_Collection", Count: 10, Split: DifficultySplit{Easy: 6, Medium: 4}},
		{Collection: "Product_Management_Product_manager", Count: 20, Split: DifficultySplit{Easy: 10, Medium: 8, Hard: 2}},
		{Collection: registry.DefaultCollection, Count: 10, Split: DifficultySplit{Easy: 5, Medium: 5}},
	}}
	RepairCollectionNames(plan)

	if len(plan.Technical) != 2 {
		t.Fatalf("got %d allocations, want 2 after merge", len(plan.Technical))
	}
	if plan.Technical[0].Collection != registry.DefaultCollection {
		t.Errorf("first collection is %q", plan.Technical[0].Collection)
	}
	if plan.Technical[0].Count != 20 {
		t.Errorf("merged count is %d, want 20", plan.Technical[0].Count)
	}
	want := DifficultySplit{Easy: 11, Medium: 9, Hard: 0}
	if plan.Technical[0].Split != want {
		t.Errorf("merged split is %+v, want %+v", plan.Technical[0].Split, want)
	}
}

func TestRescaleSplitRoundsBucketsIndependently(t *testing.T) {
	// Each bucket of {3,3,3} scales by 10/9 and rounds back to 3, so the
	// buckets sum to 9 while the parent count is 10. That drift is kept.
	got := rescaleSplit(DifficultySplit{Easy: 3, Medium: 3, Hard: 3}, 9, 10)
	want := DifficultySplit{Easy: 3, Medium: 3, Hard: 3}
	if got != want {
		t.Errorf("rescaled split is %+v, want %+v", got, want)
	}
	if got.Total() == 10 {
		t.Error("expected rounding drift, got an exact re-sum")
	}
}

func TestRescaleSplitFromZero(t *testing.T) {
	got := rescaleSplit(DifficultySplit{}, 0, 12)
	if got != (DifficultySplit{Easy: 12}) {
		t.Errorf("rescale from zero gave %+v", got)
	}
}
