package repository

import (
	"context"
	"fmt"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionRepository reads and writes the path-scoped question collections:
// questions_technical_<domain> and questions_qualitative_<cluster>.
type QuestionRepository struct {
	DB *mongo.Database
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) collection(kind, name string) *mongo.Collection {
	return r.DB.Collection(fmt.Sprintf("questions_%s_%s", kind, name))
}

func (r *QuestionRepository) find(ctx context.Context, kind, name string, filter bson.M, limit int64) ([]models.Question, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := r.collection(kind, name).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) FindByLevel(ctx context.Context, kind, name, level string, limit int64) ([]models.Question, error) {
	return r.find(ctx, kind, name, bson.M{"level": level}, limit)
}

func (r *QuestionRepository) FindAny(ctx context.Context, kind, name string, limit int64) ([]models.Question, error) {
	return r.find(ctx, kind, name, bson.M{}, limit)
}

func (r *QuestionRepository) FindByID(ctx context.Context, kind, name, id string) (*models.Question, error) {
	var question models.Question
	err := r.collection(kind, name).FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// InsertMany stores a validated upload batch into one collection.
func (r *QuestionRepository) InsertMany(ctx context.Context, kind, name string, questions []models.Question) error {
	docs := make([]interface{}, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}
	_, err := r.collection(kind, name).InsertMany(ctx, docs)
	return err
}

// CountByLevel returns document counts per difficulty level plus a total,
// for the pool-info endpoint.
func (r *QuestionRepository) CountByLevel(ctx context.Context, kind, name string) (map[string]int64, error) {
	col := r.collection(kind, name)
	counts := map[string]int64{}
	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	counts["total"] = total
	for _, level := range []string{models.LevelEasy, models.LevelMedium, models.LevelHard} {
		n, err := col.CountDocuments(ctx, bson.M{"level": level})
		if err != nil {
			return nil, err
		}
		counts[level] = n
	}
	return counts, nil
}
