package service

import (
	"context"
	"fmt"

	"assessment-service/internal/models"
	"assessment-service/internal/registry"
	"assessment-service/internal/repository"

	"github.com/google/uuid"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
}

func NewQuestionService(repo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Repo: repo}
}

// ValidateBatch checks an upload batch against the collection and question
// invariants without touching the store. It normalizes kind, domain and ids
// in place. The whole batch is rejected on the first invalid item so a
// partial upload never lands.
func (s *QuestionService) ValidateBatch(kind, domain string, questions []models.Question) error {
	switch kind {
	case models.KindTechnical:
		if !registry.IsValidCollection(domain) {
			return fmt.Errorf("domain: %q is not a registered technical collection", domain)
		}
	case models.KindQualitative:
		if !registry.IsValidCluster(domain) {
			return fmt.Errorf("domain: %q is not a registered qualitative cluster", domain)
		}
	default:
		return fmt.Errorf("kind: must be %q or %q, got %q", models.KindTechnical, models.KindQualitative, kind)
	}
	if len(questions) == 0 {
		return fmt.Errorf("questions: batch is empty")
	}

	for i := range questions {
		questions[i].Kind = kind
		questions[i].Domain = domain
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
		if err := questions[i].Validate(); err != nil {
			return fmt.Errorf("questions[%d]: %w", i, err)
		}
	}
	return nil
}

// BulkUpload stores an administrative question batch into one path-scoped
// collection.
func (s *QuestionService) BulkUpload(ctx context.Context, kind, domain string, questions []models.Question) (int, error) {
	if err := s.ValidateBatch(kind, domain, questions); err != nil {
		return 0, err
	}
	if err := s.Repo.InsertMany(ctx, kind, domain, questions); err != nil {
		return 0, err
	}
	return len(questions), nil
}

// PoolInfo reports per-level document counts for one collection.
func (s *QuestionService) PoolInfo(ctx context.Context, kind, domain string) (map[string]int64, error) {
	return s.Repo.CountByLevel(ctx, kind, domain)
}
