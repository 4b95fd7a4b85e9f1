package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"assessment-service/internal/models"
	"assessment-service/internal/repository"

	"github.com/google/uuid"
)

// AnswerSubmission is one answer as the survey UI submits it.
type AnswerSubmission struct {
	QuestionID       string `json:"question_id" binding:"required"`
	Domain           string `json:"domain" binding:"required"`
	Kind             string `json:"kind" binding:"required"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// ResultSubmission is one completed assessment.
type ResultSubmission struct {
	UserID      string             `json:"user_id"`
	Intent      string             `json:"intent" binding:"required"`
	Answers     []AnswerSubmission `json:"answers" binding:"required"`
	Profile     models.Profile     `json:"profile"`
	StartedAt   time.Time          `json:"started_at"`
	CompletedAt time.Time          `json:"completed_at"`
}

type ResultService struct {
	Repo         *repository.ResultRepository
	QuestionRepo *repository.QuestionRepository
}

func NewResultService(repo *repository.ResultRepository, questionRepo *repository.QuestionRepository) *ResultService {
	return &ResultService{Repo: repo, QuestionRepo: questionRepo}
}

// CreateResult grades a submission against the stored questions and persists
// the result with a profile snapshot. Qualitative answers are recorded but
// never graded; the score covers technical answers only.
func (s *ResultService) CreateResult(ctx context.Context, sub *ResultSubmission) (*models.SurveyResult, error) {
	if len(sub.Answers) == 0 {
		return nil, fmt.Errorf("answers: at least one answer is required")
	}

	result := &models.SurveyResult{
		ID:              uuid.NewString(),
		UserID:          sub.UserID,
		Intent:          sub.Intent,
		ProfileSnapshot: sub.Profile,
		StartedAt:       sub.StartedAt,
		CompletedAt:     sub.CompletedAt,
		CreatedAt:       time.Now().UTC(),
	}
	if !sub.CompletedAt.IsZero() && !sub.StartedAt.IsZero() {
		result.DurationSeconds = int(sub.CompletedAt.Sub(sub.StartedAt).Seconds())
	}

	technicalAttempted := 0
	for _, ans := range sub.Answers {
		graded := models.AnsweredQuestion{
			QuestionID:       ans.QuestionID,
			Domain:           ans.Domain,
			Kind:             ans.Kind,
			UserAnswer:       ans.Answer,
			TimeSpentSeconds: ans.TimeSpentSeconds,
		}
		question, err := s.QuestionRepo.FindByID(ctx, ans.Kind, ans.Domain, ans.QuestionID)
		if err != nil {
			log.Printf("result: question %s/%s/%s not found while grading, counting as unanswered: %v",
				ans.Kind, ans.Domain, ans.QuestionID, err)
		} else if question.CorrectAnswer != "" {
			graded.CorrectAnswer = question.CorrectAnswer
			graded.IsCorrect = ans.Answer == question.CorrectAnswer
		}
		if ans.Kind == models.KindTechnical {
			technicalAttempted++
			if graded.IsCorrect {
				result.QuestionsCorrect++
			}
		}
		result.Answers = append(result.Answers, graded)
	}
	result.QuestionsAttempted = len(sub.Answers)
	result.Score = float64(result.QuestionsCorrect)
	if technicalAttempted > 0 {
		result.Percentage = float64(result.QuestionsCorrect) / float64(technicalAttempted) * 100
	}

	if err := s.Repo.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *ResultService) GetResult(ctx context.Context, id string) (*models.SurveyResult, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ResultService) GetResultsByUser(ctx context.Context, userID string) ([]models.SurveyResult, error) {
	return s.Repo.FindByUser(ctx, userID)
}

// AttachRecommendations stores cached AI recommendation text on an existing
// result, the only mutation results permit.
func (s *ResultService) AttachRecommendations(ctx context.Context, id, recommendations string) error {
	if recommendations == "" {
		return fmt.Errorf("recommendations: text is required")
	}
	return s.Repo.AttachRecommendations(ctx, id, recommendations)
}
