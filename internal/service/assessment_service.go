package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"assessment-service/internal/cache"
	"assessment-service/internal/distribution"
	"assessment-service/internal/models"
	"assessment-service/internal/registry"
	"assessment-service/internal/selection"
)

const planCacheTTL = 5 * time.Minute

// SelectionMetadata accompanies every selection response.
type SelectionMetadata struct {
	Intent           string               `json:"intent"`
	PlanSource       string               `json:"plan_source"`
	TechnicalCount   int                  `json:"technical_count"`
	QualitativeCount int                  `json:"qualitative_count"`
	Technical        selection.FetchStats `json:"technical_stats"`
	Qualitative      selection.FetchStats `json:"qualitative_stats"`
	GeneratedAt      time.Time            `json:"generated_at"`
}

type SelectionResult struct {
	Questions []models.Question `json:"questions"`
	Metadata  SelectionMetadata `json:"metadata"`
}

// AssessmentService runs the full selection pipeline: plan (AI-assisted or
// rule-based), fetch per allocation, backfill shortfalls, truncate to the
// exact pool targets.
type AssessmentService struct {
	fetcher   *selection.Fetcher
	planner   *distribution.AIPlanner
	planCache *cache.TTLCache
}

func NewAssessmentService(source selection.Source, planner *distribution.AIPlanner) *AssessmentService {
	return &AssessmentService{
		fetcher:   selection.NewFetcher(source),
		planner:   planner,
		planCache: cache.New(planCacheTTL),
	}
}

func (s *AssessmentService) SelectQuestions(ctx context.Context, req distribution.Request, useAI bool) (*SelectionResult, error) {
	plan := s.planFor(ctx, req, useAI)

	var technical []models.Question
	for _, alloc := range plan.Technical {
		qs := s.fetcher.FetchByLevels(ctx, models.KindTechnical, alloc.Collection, alloc.Split.AsCounts())
		technical = append(technical, qs...)
	}
	technical = selection.DedupeByID(technical)
	technicalFetched := len(technical)
	technical, triedTech := s.fetcher.Backfill(ctx, models.KindTechnical, technical, distribution.TechnicalTotal, registry.FallbackDomains)

	var qualitative []models.Question
	for _, alloc := range plan.Qualitative {
		qs := s.fetcher.Fetch(ctx, models.KindQualitative, alloc.Cluster, alloc.Count, "")
		qualitative = append(qualitative, qs...)
	}
	qualitative = selection.DedupeByID(qualitative)
	qualitativeFetched := len(qualitative)
	qualitative, triedQual := s.fetcher.Backfill(ctx, models.KindQualitative, qualitative, distribution.QualitativeTotal, registry.FallbackClusters)

	if len(technical) == 0 && len(qualitative) == 0 {
		return nil, fmt.Errorf("question store returned no documents for any planned collection")
	}

	questions := make([]models.Question, 0, len(technical)+len(qualitative))
	questions = append(questions, technical...)
	questions = append(questions, qualitative...)

	return &SelectionResult{
		Questions: questions,
		Metadata: SelectionMetadata{
			Intent:           string(req.Intent),
			PlanSource:       plan.Source,
			TechnicalCount:   len(technical),
			QualitativeCount: len(qualitative),
			Technical: selection.FetchStats{
				Requested:    distribution.TechnicalTotal,
				Fetched:      technicalFetched,
				Backfilled:   backfilled(len(technical), technicalFetched),
				SourcesTried: triedTech,
			},
			Qualitative: selection.FetchStats{
				Requested:    distribution.QualitativeTotal,
				Fetched:      qualitativeFetched,
				Backfilled:   backfilled(len(qualitative), qualitativeFetched),
				SourcesTried: triedQual,
			},
			GeneratedAt: time.Now().UTC(),
		},
	}, nil
}

// backfilled reports how many questions the fallback walk added. Truncation
// can shrink an over-collected pool below its pre-backfill size, so the
// difference never reports negative.
func backfilled(final, fetched int) int {
	if final < fetched {
		return 0
	}
	return final - fetched
}

// planFor resolves the distribution plan, consulting the short-lived cache
// first. A nil AI plan always degrades to the rule-based distributor.
func (s *AssessmentService) planFor(ctx context.Context, req distribution.Request, useAI bool) *distribution.Plan {
	key := planCacheKey(req, useAI)
	if v, ok := s.planCache.Get(key); ok {
		if plan, ok := v.(*distribution.Plan); ok {
			return plan
		}
	}

	var plan *distribution.Plan
	if useAI {
		plan = s.planner.BuildPlan(ctx, req)
	}
	if plan == nil {
		plan = distribution.BuildRulePlan(req)
	}
	s.planCache.Set(key, plan)
	return plan
}

func planCacheKey(req distribution.Request, useAI bool) string {
	return fmt.Sprintf("%s|%s|%s|%s|%t",
		req.Intent, req.Experience, req.CurrentRole, strings.Join(req.TargetRoles, ","), useAI)
}
