package service

import (
	"strings"
	"testing"

	"assessment-service/internal/models"
)

func validTechnical() models.Question {
	return models.Question{
		Content:       "Which command initializes a module?",
		Options:       map[string]string{"A": "go mod init", "B": "go init", "C": "go new", "D": "go create"},
		CorrectAnswer: "A",
		Level:         models.LevelEasy,
	}
}

func TestValidateBatch(t *testing.T) {
	svc := NewQuestionService(nil)

	t.Run("valid batch is normalized in place", func(t *testing.T) {
		batch := []models.Question{validTechnical(), validTechnical()}
		err := svc.ValidateBatch(models.KindTechnical, "Engineering_Development_Software_engineer_or_developer", batch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, q := range batch {
			if q.Kind != models.KindTechnical {
				t.Errorf("questions[%d] kind not normalized: %q", i, q.Kind)
			}
			if q.Domain != "Engineering_Development_Software_engineer_or_developer" {
				t.Errorf("questions[%d] domain not normalized: %q", i, q.Domain)
			}
			if q.ID == "" {
				t.Errorf("questions[%d] missing a generated id", i)
			}
		}
	})

	t.Run("unknown domain rejects the batch", func(t *testing.T) {
		err := svc.ValidateBatch(models.KindTechnical, "Made_Up_Collection", []models.Question{validTechnical()})
		if err == nil || !strings.HasPrefix(err.Error(), "domain:") {
			t.Errorf("got %v, want a domain error", err)
		}
	})

	t.Run("unknown cluster rejects the batch", func(t *testing.T) {
		err := svc.ValidateBatch(models.KindQualitative, "Made_Up_Cluster", []models.Question{validTechnical()})
		if err == nil || !strings.HasPrefix(err.Error(), "domain:") {
			t.Errorf("got %v, want a domain error", err)
		}
	})

	t.Run("unknown kind rejects the batch", func(t *testing.T) {
		err := svc.ValidateBatch("survey", "Engineering_Development_Software_engineer_or_developer", []models.Question{validTechnical()})
		if err == nil || !strings.HasPrefix(err.Error(), "kind:") {
			t.Errorf("got %v, want a kind error", err)
		}
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		err := svc.ValidateBatch(models.KindTechnical, "Engineering_Development_Software_engineer_or_developer", nil)
		if err == nil || !strings.HasPrefix(err.Error(), "questions:") {
			t.Errorf("got %v, want a batch error", err)
		}
	})

	t.Run("invalid item names its index", func(t *testing.T) {
		bad := validTechnical()
		bad.Level = ""
		batch := []models.Question{validTechnical(), bad}
		err := svc.ValidateBatch(models.KindTechnical, "Engineering_Development_Software_engineer_or_developer", batch)
		if err == nil || !strings.HasPrefix(err.Error(), "questions[1]:") {
			t.Errorf("got %v, want an error naming questions[1]", err)
		}
	})
}
