package interfaces

import (
	"context"
	"errors"

	"buhuchet_site/internal/domain/entities"
)

var (
	// ErrReviewSourceUnavailable is returned on transport errors and non-2xx responses.
	ErrReviewSourceUnavailable = errors.New("review source unavailable")
	// ErrReviewSourceEmpty is returned when the page has no review cards.
	ErrReviewSourceEmpty = errors.New("review source returned no review cards")
)

// IReviewSource abstracts an external review provider (e.g. Yandex Maps).
//
// Implementations return reviews with defaults already applied and ratings
// normalized to 1..5. A page that yields no review cards at all must be
// reported as ErrReviewSourceEmpty, so callers can tell "no reviews" from broken markup.
type IReviewSource interface {
	Name() string
	FetchReviews(ctx context.Context) ([]entities.ParsedReview, error)
}
