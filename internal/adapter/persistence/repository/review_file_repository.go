package repository

import (
	"context"
	"path/filepath"
	"sync"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"
)

const reviewsFileName = "reviews.json"

// ReviewFileRepository keeps every review in DATA_DIR/reviews.json.
//
// Each write rewrites the whole file, so CreateMany is all-or-nothing: either
// the new file with every review is renamed into place or nothing changes.

type ReviewFileRepository struct {
	mu   sync.Mutex
	file jsonFile
}

var _ interfaces.IReviewRepository = (*ReviewFileRepository)(nil)

func NewReviewFileRepository(dataDir string) *ReviewFileRepository {
	return &ReviewFileRepository{file: jsonFile{path: filepath.Join(dataDir, reviewsFileName)}}
}

func (r *ReviewFileRepository) Create(_ context.Context, review entities.Review) (entities.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return entities.Review{}, err
	}
	all = append(all, review)
	if err := r.file.store(all); err != nil {
		return entities.Review{}, err
	}
	return review, nil
}

func (r *ReviewFileRepository) CreateMany(_ context.Context, reviews []entities.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return err
	}
	return r.file.store(append(all, reviews...))
}

func (r *ReviewFileRepository) GetByID(_ context.Context, id string) (entities.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return entities.Review{}, err
	}
	for _, review := range all {
		if review.ID == id {
			return review, nil
		}
	}
	return entities.Review{}, nil
}

func (r *ReviewFileRepository) List(_ context.Context) ([]entities.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}

func (r *ReviewFileRepository) ListBySource(_ context.Context, source entities.ReviewSource) ([]entities.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return nil, err
	}
	out := make([]entities.Review, 0, len(all))
	for _, review := range all {
		if review.Source == source {
			out = append(out, review)
		}
	}
	return out, nil
}

func (r *ReviewFileRepository) Update(_ context.Context, review entities.Review) (entities.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return entities.Review{}, err
	}
	for i := range all {
		if all[i].ID == review.ID {
			all[i] = review
			if err := r.file.store(all); err != nil {
				return entities.Review{}, err
			}
			return review, nil
		}
	}
	return entities.Review{}, nil
}

func (r *ReviewFileRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return false, err
	}
	for i := range all {
		if all[i].ID == id {
			all = append(all[:i], all[i+1:]...)
			return true, r.file.store(all)
		}
	}
	return false, nil
}

func (r *ReviewFileRepository) DeleteAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return 0, err
	}
	if err := r.file.store([]entities.Review{}); err != nil {
		return 0, err
	}
	return len(all), nil
}

func (r *ReviewFileRepository) readAll() ([]entities.Review, error) {
	var all []entities.Review
	if _, err := r.file.load(&all); err != nil {
		return nil, err
	}
	return all, nil
}
