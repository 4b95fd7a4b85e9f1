package models

import "fmt"

const (
	KindTechnical   = "technical"
	KindQualitative = "qualitative"
)

const (
	LevelEasy   = "easy"
	LevelMedium = "medium"
	LevelHard   = "hard"
)

// Technical questions are 4-option multiple choice; qualitative questions are
// 5-point Likert items without a difficulty level.
const (
	TechnicalOptionCount   = 4
	QualitativeOptionCount = 5
)

type Question struct {
	ID            string            `bson:"_id,omitempty" json:"id"`
	Content       string            `bson:"content" json:"content"`
	Options       map[string]string `bson:"options" json:"options"`
	CorrectAnswer string            `bson:"correct_answer,omitempty" json:"correct_answer,omitempty"`
	Level         string            `bson:"level,omitempty" json:"level,omitempty"`
	Domain        string            `bson:"domain" json:"domain"`
	Kind          string            `bson:"kind" json:"kind"`
}

func IsValidLevel(level string) bool {
	switch level {
	case LevelEasy, LevelMedium, LevelHard:
		return true
	}
	return false
}

// Validate enforces the shape invariants before a question is stored.
// Questions are immutable after upload, so this is the only gate.
func (q *Question) Validate() error {
	if q.Content == "" {
		return fmt.Errorf("content: question text is required")
	}
	switch q.Kind {
	case KindTechnical:
		if len(q.Options) != TechnicalOptionCount {
			return fmt.Errorf("options: technical questions require exactly %d options, got %d", TechnicalOptionCount, len(q.Options))
		}
		if !IsValidLevel(q.Level) {
			return fmt.Errorf("level: technical questions require a difficulty level (easy|medium|hard), got %q", q.Level)
		}
	case KindQualitative:
		if len(q.Options) != QualitativeOptionCount {
			return fmt.Errorf("options: qualitative questions require exactly %d options, got %d", QualitativeOptionCount, len(q.Options))
		}
		if q.Level != "" {
			return fmt.Errorf("level: qualitative questions must not carry a difficulty level")
		}
	default:
		return fmt.Errorf("kind: must be %q or %q, got %q", KindTechnical, KindQualitative, q.Kind)
	}
	if q.CorrectAnswer != "" {
		if _, ok := q.Options[q.CorrectAnswer]; !ok {
			return fmt.Errorf("correct_answer: %q is not an option key", q.CorrectAnswer)
		}
	}
	return nil
}
