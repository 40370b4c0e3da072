package interfaces

import (
	"context"

	"buhuchet_site/internal/domain/entities"
)

// IReviewRepository abstracts review persistence (DynamoDB or a local JSON file).
//
// Lookups return an empty Review (ID == "") when nothing matches; errors are
// reserved for storage failures.
//
// CreateMany is all-or-nothing from the caller's point of view: on error the
// use case reports the whole import as failed.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	CreateMany(ctx context.Context, reviews []entities.Review) error
	GetByID(ctx context.Context, id string) (entities.Review, error)
	List(ctx context.Context) ([]entities.Review, error)
	ListBySource(ctx context.Context, source entities.ReviewSource) ([]entities.Review, error)
	Update(ctx context.Context, r entities.Review) (entities.Review, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) (int, error)
}
