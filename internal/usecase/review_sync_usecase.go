package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrFetchFailed        = errors.New("review source fetch failed")
	ErrNoReviewsExtracted = errors.New("no reviews extracted from source page")
)

// SyncResult reports an import run. Total == Imported + Skipped.
type SyncResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

// ResetResult reports a full reset: how many records were wiped, then what
// the scraped import and the seed reviews added.
type ResetResult struct {
	Deleted  int `json:"deleted"`
	Imported int `json:"imported"`
	Seeded   int `json:"seeded"`
	Total    int `json:"total"`
}

// IReviewSyncUseCase imports reviews from an external source.
//
//   - Sync: append reviews not seen yet (dedup on name + text)
//   - FullReset: wipe every review, import the source, add seed reviews.
//     Destructive; confirmation is the caller's job.

type IReviewSyncUseCase interface {
	Sync(ctx context.Context) (SyncResult, error)
	FullReset(ctx context.Context) (ResetResult, error)
}

type ReviewSyncUseCase struct {
	repo   interfaces.IReviewRepository
	source interfaces.IReviewSource
	seeds  []SeedReview
	now    func() time.Time
}

var _ IReviewSyncUseCase = (*ReviewSyncUseCase)(nil)

func NewReviewSyncUseCase(repo interfaces.IReviewRepository, source interfaces.IReviewSource) *ReviewSyncUseCase {
	return &ReviewSyncUseCase{repo: repo, source: source, seeds: DefaultSeedReviews(), now: time.Now}
}

func (u *ReviewSyncUseCase) Sync(ctx context.Context) (SyncResult, error) {
	log.Printf("[reviews][sync] start source=%s", u.source.Name())

	parsed, err := u.fetch(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	existing, err := u.repo.ListBySource(ctx, entities.ReviewSourceScraped)
	if err != nil {
		log.Printf("[reviews][sync] load existing failed err=%v", err)
		return SyncResult{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	fresh, skipped := partitionNew(parsed, existing)
	if err := u.insert(ctx, u.toReviews(fresh)); err != nil {
		return SyncResult{}, err
	}

	res := SyncResult{Imported: len(fresh), Skipped: skipped, Total: len(parsed)}
	log.Printf("[reviews][sync] success imported=%d skipped=%d total=%d", res.Imported, res.Skipped, res.Total)
	return res, nil
}

// FullReset fetches the source before deleting anything, so an unreachable
// source leaves the store untouched.
func (u *ReviewSyncUseCase) FullReset(ctx context.Context) (ResetResult, error) {
	log.Printf("[reviews][reset] start source=%s", u.source.Name())

	parsed, err := u.fetch(ctx)
	if err != nil {
		return ResetResult{}, err
	}

	deleted, err := u.repo.DeleteAll(ctx)
	if err != nil {
		log.Printf("[reviews][reset] delete all failed err=%v", err)
		return ResetResult{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	fresh, _ := partitionNew(parsed, nil)
	if err := u.insert(ctx, u.toReviews(fresh)); err != nil {
		return ResetResult{}, err
	}

	seeds := u.seedReviews()
	if err := u.insert(ctx, seeds); err != nil {
		return ResetResult{}, err
	}

	res := ResetResult{
		Deleted:  deleted,
		Imported: len(fresh),
		Seeded:   len(seeds),
		Total:    len(fresh) + len(seeds),
	}
	log.Printf("[reviews][reset] success deleted=%d imported=%d seeded=%d", res.Deleted, res.Imported, res.Seeded)
	return res, nil
}

func (u *ReviewSyncUseCase) fetch(ctx context.Context) ([]entities.ParsedReview, error) {
	parsed, err := u.source.FetchReviews(ctx)
	if err != nil {
		log.Printf("[reviews][sync] fetch failed source=%s err=%v", u.source.Name(), err)
		if errors.Is(err, interfaces.ErrReviewSourceEmpty) {
			return nil, fmt.Errorf("%w: %v", ErrNoReviewsExtracted, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return parsed, nil
}

func (u *ReviewSyncUseCase) insert(ctx context.Context, reviews []entities.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	if err := u.repo.CreateMany(ctx, reviews); err != nil {
		log.Printf("[reviews][sync] insert failed count=%d err=%v", len(reviews), err)
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return nil
}

func (u *ReviewSyncUseCase) toReviews(parsed []entities.ParsedReview) []entities.Review {
	now := u.now().UTC()
	out := make([]entities.Review, 0, len(parsed))
	for _, p := range parsed {
		notes := fmt.Sprintf("imported from %s at %s", u.source.Name(), now.Format(time.RFC3339))
		if p.PostedAt != "" {
			notes += "; posted " + p.PostedAt
		}
		publishedAt := now
		out = append(out, entities.Review{
			ID:          uuid.NewString(),
			Name:        p.Name,
			Rating:      entities.ClampRating(p.Rating),
			Text:        p.Text,
			Source:      entities.ReviewSourceScraped,
			IsPublished: true,
			IsFeatured:  false,
			PublishedAt: &publishedAt,
			CreatedAt:   now,
			AdminNotes:  &notes,
		})
	}
	return out
}

func (u *ReviewSyncUseCase) seedReviews() []entities.Review {
	now := u.now().UTC()
	out := make([]entities.Review, 0, len(u.seeds))
	for i, s := range u.seeds {
		publishedAt := now.Add(-time.Duration(i+1) * 24 * time.Hour)
		notes := "seed review"
		out = append(out, entities.Review{
			ID:          uuid.NewString(),
			Name:        s.Name,
			Rating:      entities.ClampRating(s.Rating),
			Text:        s.Text,
			Source:      entities.ReviewSourceManual,
			IsPublished: true,
			IsFeatured:  s.Featured,
			PublishedAt: &publishedAt,
			CreatedAt:   now,
			AdminNotes:  &notes,
		})
	}
	return out
}

// partitionNew splits parsed reviews into the ones not present in existing
// and a count of duplicates. Repeats inside parsed count as duplicates too.
func partitionNew(parsed []entities.ParsedReview, existing []entities.Review) ([]entities.ParsedReview, int) {
	seen := make(map[entities.DedupKey]struct{}, len(existing)+len(parsed))
	for _, r := range existing {
		seen[r.DedupKey()] = struct{}{}
	}

	fresh := make([]entities.ParsedReview, 0, len(parsed))
	skipped := 0
	for _, p := range parsed {
		key := p.DedupKey()
		if _, dup := seen[key]; dup {
			skipped++
			continue
		}
		seen[key] = struct{}{}
		fresh = append(fresh, p)
	}
	return fresh, skipped
}
