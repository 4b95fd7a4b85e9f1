package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("survey_results")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.SurveyResult) error {
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *ResultRepository) FindByID(ctx context.Context, id string) (*models.SurveyResult, error) {
	var result models.SurveyResult
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.SurveyResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.SurveyResult
	for cur.Next(ctx) {
		var res models.SurveyResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}

// AttachRecommendations is the only mutation a stored result permits.
func (r *ResultRepository) AttachRecommendations(ctx context.Context, id, recommendations string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"recommendations": recommendations}})
	return err
}
