package selection

import (
	"context"

	"assessment-service/internal/models"
)

// Source is the question store the fetcher reads from. Collections are
// path-scoped by kind and domain/cluster name; a limit of 0 means all
// matching documents.
type Source interface {
	FindByLevel(ctx context.Context, kind, name, level string, limit int64) ([]models.Question, error)
	FindAny(ctx context.Context, kind, name string, limit int64) ([]models.Question, error)
}

// FetchStats describes what one pool assembly actually did, for response
// metadata.
type FetchStats struct {
	Requested    int `json:"requested"`
	Fetched      int `json:"fetched"`
	Backfilled   int `json:"backfilled"`
	SourcesTried int `json:"sources_tried"`
}
