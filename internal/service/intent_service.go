package service

import (
	"context"

	"assessment-service/internal/intent"
)

type IntentService struct {
	Classifier *intent.Classifier
}

func NewIntentService(classifier *intent.Classifier) *IntentService {
	return &IntentService{Classifier: classifier}
}

// DetectIntent never fails: the classifier degrades to its rule-based
// fallback internally.
func (s *IntentService) DetectIntent(ctx context.Context, profile intent.ProfileInput) *intent.Detection {
	return s.Classifier.Detect(ctx, profile)
}
