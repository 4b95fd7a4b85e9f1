package models

import "time"

// AnsweredQuestion records one graded answer inside a survey result.
type AnsweredQuestion struct {
	QuestionID       string `bson:"question_id" json:"question_id"`
	Domain           string `bson:"domain" json:"domain"`
	Kind             string `bson:"kind" json:"kind"`
	UserAnswer       string `bson:"user_answer" json:"user_answer"`
	CorrectAnswer    string `bson:"correct_answer,omitempty" json:"correct_answer,omitempty"`
	IsCorrect        bool   `bson:"is_correct" json:"is_correct"`
	TimeSpentSeconds int    `bson:"time_spent_seconds" json:"time_spent_seconds"`
}

// SurveyResult is the persisted record of one completed assessment. It is
// immutable after creation except for attaching cached AI recommendations.
type SurveyResult struct {
	ID                 string             `bson:"_id,omitempty" json:"id"`
	UserID             string             `bson:"user_id" json:"user_id"`
	Intent             string             `bson:"intent" json:"intent"`
	Answers            []AnsweredQuestion `bson:"answers" json:"answers"`
	QuestionsAttempted int                `bson:"questions_attempted" json:"questions_attempted"`
	QuestionsCorrect   int                `bson:"questions_correct" json:"questions_correct"`
	Score              float64            `bson:"score" json:"score"`
	Percentage         float64            `bson:"percentage" json:"percentage"`
	DurationSeconds    int                `bson:"duration_seconds" json:"duration_seconds"`
	ProfileSnapshot    Profile            `bson:"profile_snapshot" json:"profile_snapshot"`
	Recommendations    string             `bson:"recommendations,omitempty" json:"recommendations,omitempty"`
	StartedAt          time.Time          `bson:"started_at" json:"started_at"`
	CompletedAt        time.Time          `bson:"completed_at" json:"completed_at"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
}
