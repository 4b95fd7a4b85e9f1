package repository

import (
	"context"

	"assessment-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	Col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{Col: db.Collection("profiles")}
}

// Upsert replaces the user's profile, creating it on first save.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"user_id": profile.UserID}, profile, opts)
	return err
}

func (r *ProfileRepository) FindByUser(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
