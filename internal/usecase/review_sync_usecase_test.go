package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"
	mock_interfaces "buhuchet_site/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newSyncFixture(t *testing.T) (*ReviewSyncUseCase, *mock_interfaces.MockIReviewRepository, *mock_interfaces.MockIReviewSource) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIReviewRepository(ctrl)
	source := mock_interfaces.NewMockIReviewSource(ctrl)
	source.EXPECT().Name().Return("yandex").AnyTimes()

	uc := NewReviewSyncUseCase(repo, source)
	uc.now = fixedClock(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
	return uc, repo, source
}

func TestReviewSyncUseCase_Sync(t *testing.T) {
	t.Run("dedup on name and text", func(t *testing.T) {
		uc, repo, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return([]entities.ParsedReview{
			{Name: "A", Text: "X", Rating: 5},
			{Name: "B", Text: "Y", Rating: 4, PostedAt: "2026-09-30"},
		}, nil)
		repo.EXPECT().ListBySource(gomock.Any(), entities.ReviewSourceScraped).Return([]entities.Review{
			{ID: "r-1", Name: "A", Text: "X", Source: entities.ReviewSourceScraped},
		}, nil)
		repo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reviews []entities.Review) error {
				if len(reviews) != 1 {
					t.Fatalf("expected 1 review to insert, got %d", len(reviews))
				}
				r := reviews[0]
				if r.Name != "B" || r.Text != "Y" || r.Rating != 4 {
					t.Fatalf("unexpected review: %+v", r)
				}
				if r.Source != entities.ReviewSourceScraped || !r.IsPublished || r.IsFeatured {
					t.Fatalf("unexpected flags: %+v", r)
				}
				if r.ID == "" || r.PublishedAt == nil || r.AdminNotes == nil {
					t.Fatalf("expected id, publication date and notes: %+v", r)
				}
				if !strings.Contains(*r.AdminNotes, "yandex") || !strings.Contains(*r.AdminNotes, "2026-09-30") {
					t.Fatalf("unexpected notes: %q", *r.AdminNotes)
				}
				return nil
			},
		)

		res, err := uc.Sync(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Imported != 1 || res.Skipped != 1 || res.Total != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("same name different text is new", func(t *testing.T) {
		uc, repo, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return([]entities.ParsedReview{{Name: "A", Text: "Z", Rating: 5}}, nil)
		repo.EXPECT().ListBySource(gomock.Any(), entities.ReviewSourceScraped).Return([]entities.Review{{Name: "A", Text: "X"}}, nil)
		repo.EXPECT().CreateMany(gomock.Any(), gomock.Len(1)).Return(nil)

		res, err := uc.Sync(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Imported != 1 || res.Skipped != 0 || res.Total != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("repeated card on the page counts as duplicate", func(t *testing.T) {
		uc, repo, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return([]entities.ParsedReview{{Name: "A", Text: "X"}, {Name: "A", Text: "X"}}, nil)
		repo.EXPECT().ListBySource(gomock.Any(), entities.ReviewSourceScraped).Return(nil, nil)
		repo.EXPECT().CreateMany(gomock.Any(), gomock.Len(1)).Return(nil)

		res, err := uc.Sync(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Imported != 1 || res.Skipped != 1 || res.Total != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("nothing new skips insert", func(t *testing.T) {
		uc, repo, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return([]entities.ParsedReview{{Name: "A", Text: "X"}}, nil)
		repo.EXPECT().ListBySource(gomock.Any(), entities.ReviewSourceScraped).Return([]entities.Review{{Name: "A", Text: "X"}}, nil)

		res, err := uc.Sync(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Imported != 0 || res.Skipped != 1 || res.Total != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("fetch failure", func(t *testing.T) {
		uc, _, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return(nil, interfaces.ErrReviewSourceUnavailable)

		_, err := uc.Sync(context.Background())
		if !errors.Is(err, ErrFetchFailed) {
			t.Fatalf("expected ErrFetchFailed, got %v", err)
		}
	})

	t.Run("no review cards", func(t *testing.T) {
		uc, _, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return(nil, interfaces.ErrReviewSourceEmpty)

		_, err := uc.Sync(context.Background())
		if !errors.Is(err, ErrNoReviewsExtracted) {
			t.Fatalf("expected ErrNoReviewsExtracted, got %v", err)
		}
	})

	t.Run("load existing failure", func(t *testing.T) {
		uc, repo, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return([]entities.ParsedReview{{Name: "A"}}, nil)
		repo.EXPECT().ListBySource(gomock.Any(), entities.ReviewSourceScraped).Return(nil, errors.New("db"))

		_, err := uc.Sync(context.Background())
		if !errors.Is(err, ErrStoreFailure) {
			t.Fatalf("expected ErrStoreFailure, got %v", err)
		}
	})

	t.Run("insert failure is reported as a single failure", func(t *testing.T) {
		uc, repo, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return([]entities.ParsedReview{{Name: "A"}, {Name: "B"}}, nil)
		repo.EXPECT().ListBySource(gomock.Any(), entities.ReviewSourceScraped).Return(nil, nil)
		repo.EXPECT().CreateMany(gomock.Any(), gomock.Len(2)).Return(errors.New("transaction cancelled"))

		res, err := uc.Sync(context.Background())
		if !errors.Is(err, ErrStoreFailure) {
			t.Fatalf("expected ErrStoreFailure, got %v", err)
		}
		if res != (SyncResult{}) {
			t.Fatalf("expected empty result on failure, got %+v", res)
		}
	})
}

func TestReviewSyncUseCase_FullReset(t *testing.T) {
	t.Run("fetch failure leaves store untouched", func(t *testing.T) {
		uc, _, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return(nil, errors.New("dial tcp: timeout"))

		_, err := uc.FullReset(context.Background())
		if !errors.Is(err, ErrFetchFailed) {
			t.Fatalf("expected ErrFetchFailed, got %v", err)
		}
	})

	t.Run("delete failure", func(t *testing.T) {
		uc, repo, source := newSyncFixture(t)

		source.EXPECT().FetchReviews(gomock.Any()).Return([]entities.ParsedReview{{Name: "A"}}, nil)
		repo.EXPECT().DeleteAll(gomock.Any()).Return(0, errors.New("db"))

		_, err := uc.FullReset(context.Background())
		if !errors.Is(err, ErrStoreFailure) {
			t.Fatalf("expected ErrStoreFailure, got %v", err)
		}
	})

	t.Run("scraped then seeds", func(t *testing.T) {
		uc, repo, source := newSyncFixture(t)
		now := uc.now()

		gomock.InOrder(
			source.EXPECT().FetchReviews(gomock.Any()).Return([]entities.ParsedReview{{Name: "A", Text: "X", Rating: 5}}, nil),
			repo.EXPECT().DeleteAll(gomock.Any()).Return(7, nil),
			repo.EXPECT().CreateMany(gomock.Any(), gomock.Len(1)).Return(nil),
			repo.EXPECT().CreateMany(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, seeds []entities.Review) error {
					if len(seeds) != len(DefaultSeedReviews()) {
						t.Fatalf("expected %d seeds, got %d", len(DefaultSeedReviews()), len(seeds))
					}
					prev := now
					for _, s := range seeds {
						if s.PublishedAt == nil || !s.PublishedAt.Before(prev) {
							t.Fatalf("seed dates must descend from now: %+v", s)
						}
						prev = *s.PublishedAt
					}
					return nil
				},
			),
		)

		res, err := uc.FullReset(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := ResetResult{Deleted: 7, Imported: 1, Seeded: len(DefaultSeedReviews()), Total: 1 + len(DefaultSeedReviews())}
		if res != want {
			t.Fatalf("expected %+v, got %+v", want, res)
		}
	})
}
