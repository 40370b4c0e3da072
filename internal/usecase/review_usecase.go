package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound     = errors.New("review not found")
	ErrInvalidReviewID    = errors.New("invalid review id")
	ErrInvalidReviewName  = errors.New("invalid review name")
	ErrInvalidReviewScore = errors.New("invalid review rating")
)

// ReviewInput carries the fields an admin fills in when adding a review by hand.
type ReviewInput struct {
	Name        string
	Text        string
	Rating      int
	IsPublished bool
	IsFeatured  bool
	AdminNotes  *string
}

// ReviewPatch lists the editable review fields. Nil means "keep".
type ReviewPatch struct {
	Name       *string
	Text       *string
	Rating     *int
	AdminNotes *string
}

// IReviewUseCase exposes review administration and the public listing.

type IReviewUseCase interface {
	Create(ctx context.Context, in ReviewInput) (entities.Review, error)
	GetByID(ctx context.Context, id string) (entities.Review, error)
	List(ctx context.Context) ([]entities.Review, error)
	ListPublished(ctx context.Context) ([]entities.Review, error)
	Update(ctx context.Context, id string, patch ReviewPatch) (entities.Review, error)
	SetPublished(ctx context.Context, id string, published bool) (entities.Review, error)
	SetFeatured(ctx context.Context, id string, featured bool) (entities.Review, error)
	Delete(ctx context.Context, id string) error
}

type ReviewUseCase struct {
	repo interfaces.IReviewRepository
	now  func() time.Time
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, now: time.Now}
}

func (u *ReviewUseCase) Create(ctx context.Context, in ReviewInput) (entities.Review, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Review{}, ErrInvalidReviewName
	}
	if in.Rating < entities.MinRating || in.Rating > entities.MaxRating {
		return entities.Review{}, ErrInvalidReviewScore
	}

	now := u.now().UTC()
	r := entities.Review{
		ID:         uuid.NewString(),
		Name:       name,
		Rating:     in.Rating,
		Text:       strings.TrimSpace(in.Text),
		Source:     entities.ReviewSourceManual,
		IsFeatured: in.IsFeatured,
		CreatedAt:  now,
		AdminNotes: in.AdminNotes,
	}
	r.Publish(in.IsPublished, now)

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		return entities.Review{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return created, nil
}

func (u *ReviewUseCase) GetByID(ctx context.Context, id string) (entities.Review, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Review{}, ErrInvalidReviewID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Review{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if r.ID == "" {
		return entities.Review{}, ErrReviewNotFound
	}
	return r, nil
}

// List returns every review, newest first.
func (u *ReviewUseCase) List(ctx context.Context) ([]entities.Review, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

// ListPublished returns what the public site shows: published reviews,
// featured ones first, then by publication date, newest first.
func (u *ReviewUseCase) ListPublished(ctx context.Context) ([]entities.Review, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	published := make([]entities.Review, 0, len(all))
	for _, r := range all {
		if r.IsPublished {
			published = append(published, r)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		a, b := published[i], published[j]
		if a.IsFeatured != b.IsFeatured {
			return a.IsFeatured
		}
		return publishedTime(a).After(publishedTime(b))
	})
	return published, nil
}

func (u *ReviewUseCase) Update(ctx context.Context, id string, patch ReviewPatch) (entities.Review, error) {
	return u.mutate(ctx, id, func(r *entities.Review) error {
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return ErrInvalidReviewName
			}
			r.Name = name
		}
		if patch.Text != nil {
			r.Text = strings.TrimSpace(*patch.Text)
		}
		if patch.Rating != nil {
			if *patch.Rating < entities.MinRating || *patch.Rating > entities.MaxRating {
				return ErrInvalidReviewScore
			}
			r.Rating = *patch.Rating
		}
		if patch.AdminNotes != nil {
			notes := *patch.AdminNotes
			r.AdminNotes = &notes
		}
		return nil
	})
}

func (u *ReviewUseCase) SetPublished(ctx context.Context, id string, published bool) (entities.Review, error) {
	return u.mutate(ctx, id, func(r *entities.Review) error {
		r.Publish(published, u.now())
		return nil
	})
}

func (u *ReviewUseCase) SetFeatured(ctx context.Context, id string, featured bool) (entities.Review, error) {
	return u.mutate(ctx, id, func(r *entities.Review) error {
		r.IsFeatured = featured
		return nil
	})
}

func (u *ReviewUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidReviewID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if !deleted {
		return ErrReviewNotFound
	}
	return nil
}

func (u *ReviewUseCase) mutate(ctx context.Context, id string, apply func(r *entities.Review) error) (entities.Review, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Review{}, err
	}
	if err := apply(&current); err != nil {
		return entities.Review{}, err
	}

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Review{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if updated.ID == "" {
		return entities.Review{}, ErrReviewNotFound
	}
	return updated, nil
}

func publishedTime(r entities.Review) time.Time {
	if r.PublishedAt != nil {
		return *r.PublishedAt
	}
	return r.CreatedAt
}
