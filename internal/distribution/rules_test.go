package distribution

import (
	"testing"

	"assessment-service/internal/intent"
)

func TestRulePlanTotalsAlwaysExact(t *testing.T) {
	intents := []intent.Intent{intent.Confused, intent.Interested, intent.Grow, intent.Switch, intent.Intent("unknown"), intent.Intent("")}
	experiences := []string{"Fresher (0 years)", "1-3 years", "4-6 years", "10+ years"}
	roleSets := [][]string{
		nil,
		{"Product Manager"},
		{"Product Manager", "Data Scientist"},
		{"Product Manager", "Data Scientist", "UX / UI Designer"},
		{"Some Unknown Role"},
	}

	for _, in := range intents {
		for _, exp := range experiences {
			for _, targets := range roleSets {
				plan := BuildRulePlan(Request{
					Intent:      in,
					Experience:  exp,
					CurrentRole: "Software Engineer / Developer",
					TargetRoles: targets,
				})
				if got := plan.TechnicalCount(); got != TechnicalTotal {
					t.Errorf("intent=%q exp=%q targets=%v: technical total %d, want %d", in, exp, targets, got, TechnicalTotal)
				}
				if got := plan.QualitativeCount(); got != QualitativeTotal {
					t.Errorf("intent=%q exp=%q targets=%v: qualitative total %d, want %d", in, exp, targets, got, QualitativeTotal)
				}
				for _, alloc := range plan.Technical {
					if alloc.Count < 0 {
						t.Errorf("intent=%q: negative count for %s", in, alloc.Collection)
					}
				}
			}
		}
	}
}

func TestRulePlanGrowSingleDomain(t *testing.T) {
	plan := BuildRulePlan(Request{
		Intent:      intent.Grow,
		Experience:  "10+ years",
		CurrentRole: "Software Engineer / Developer",
	})

	if len(plan.Technical) != 1 {
		t.Fatalf("expected 1 technical domain, got %d", len(plan.Technical))
	}
	alloc := plan.Technical[0]
	if alloc.Collection != "Engineering_Development_Software_engineer_or_developer" {
		t.Errorf("unexpected collection %q", alloc.Collection)
	}
	if alloc.Count != 40 {
		t.Errorf("expected 40 questions, got %d", alloc.Count)
	}
	want := DifficultySplit{Easy: 5, Medium: 20, Hard: 15}
	if alloc.Split != want {
		t.Errorf("expected split %+v, got %+v", want, alloc.Split)
	}
}

func TestRulePlanSwitchHalvesAcrossRoles(t *testing.T) {
	plan := BuildRulePlan(Request{
		Intent:      intent.Switch,
		Experience:  "4-6 years",
		CurrentRole: "Data Scientist",
		TargetRoles: []string{"Product Manager"},
	})

	counts := map[string]int{}
	for _, alloc := range plan.Technical {
		counts[alloc.Collection] = alloc.Count
	}
	if counts["Data_Science_Analytics_Data_scientist"] != 20 {
		t.Errorf("current-role domain got %d questions, want 20", counts["Data_Science_Analytics_Data_scientist"])
	}
	if counts["Product_Management_Product_manager"] != 20 {
		t.Errorf("target-role domain got %d questions, want 20", counts["Product_Management_Product_manager"])
	}
}

func TestRulePlanInterestedDifficultyByExperience(t *testing.T) {
	fresher := BuildRulePlan(Request{
		Intent:      intent.Interested,
		Experience:  "Fresher (0 years)",
		TargetRoles: []string{"Product Manager"},
	})
	for _, alloc := range fresher.Technical {
		if alloc.Split.Hard != 0 {
			t.Errorf("fresher plan has hard questions in %s: %+v", alloc.Collection, alloc.Split)
		}
	}

	experienced := BuildRulePlan(Request{
		Intent:      intent.Interested,
		Experience:  "4-6 years",
		TargetRoles: []string{"Product Manager"},
	})
	if experienced.Technical[0].Split.Hard == 0 {
		t.Errorf("experienced plan has no hard questions: %+v", experienced.Technical[0].Split)
	}
}

func TestRulePlanConfusedLeftoverOnFirstDomain(t *testing.T) {
	plan := BuildRulePlan(Request{Intent: intent.Confused, Experience: "Fresher (0 years)"})

	if len(plan.Technical) != 3 {
		t.Fatalf("expected 3 exploration domains, got %d", len(plan.Technical))
	}
	// 40 over 3 domains leaves one extra question on the first.
	if plan.Technical[0].Count != 14 {
		t.Errorf("first domain got %d, want 14", plan.Technical[0].Count)
	}
	if plan.Technical[1].Count != 13 || plan.Technical[2].Count != 13 {
		t.Errorf("remaining domains got %d/%d, want 13/13", plan.Technical[1].Count, plan.Technical[2].Count)
	}
	for _, alloc := range plan.Technical {
		if alloc.Split.Easy <= alloc.Split.Hard {
			t.Errorf("confused plan for %s is not easy-skewed: %+v", alloc.Collection, alloc.Split)
		}
	}
}

func TestRulePlanSplitSumsMatchCounts(t *testing.T) {
	for _, in := range []intent.Intent{intent.Confused, intent.Interested, intent.Grow, intent.Switch, intent.Intent("other")} {
		plan := BuildRulePlan(Request{
			Intent:      in,
			Experience:  "1-3 years",
			CurrentRole: "Data Scientist",
			TargetRoles: []string{"Product Manager", "Financial Analyst"},
		})
		for _, alloc := range plan.Technical {
			if alloc.Split.Total() != alloc.Count {
				t.Errorf("intent=%q %s: split %+v sums to %d, count is %d", in, alloc.Collection, alloc.Split, alloc.Split.Total(), alloc.Count)
			}
		}
	}
}

func TestIsFresher(t *testing.T) {
	cases := []struct {
		experience string
		want       bool
	}{
		{"Fresher (0 years)", true},
		{"fresher", true},
		{"0-1 years", true},
		{"1-3 years", false},
		{"10+ years", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsFresher(tc.experience); got != tc.want {
			t.Errorf("IsFresher(%q) = %v, want %v", tc.experience, got, tc.want)
		}
	}
}
