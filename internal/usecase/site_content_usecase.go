package usecase

import (
	"context"
	"errors"
	"fmt"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"
)

// ISiteContentUseCase reads and edits the site copy (logo, contacts, hero,
// navigation) through a typed patch.

type ISiteContentUseCase interface {
	Get(ctx context.Context) (entities.SiteContent, error)
	Patch(ctx context.Context, patch entities.SiteContentPatch) (entities.SiteContent, error)
}

type SiteContentUseCase struct {
	repo interfaces.ISiteContentRepository
}

var _ ISiteContentUseCase = (*SiteContentUseCase)(nil)

func NewSiteContentUseCase(repo interfaces.ISiteContentRepository) *SiteContentUseCase {
	return &SiteContentUseCase{repo: repo}
}

func (u *SiteContentUseCase) Get(ctx context.Context) (entities.SiteContent, error) {
	content, err := u.repo.Load(ctx)
	if err != nil {
		return entities.SiteContent{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return content, nil
}

func (u *SiteContentUseCase) Patch(ctx context.Context, patch entities.SiteContentPatch) (entities.SiteContent, error) {
	current, err := u.Get(ctx)
	if err != nil {
		return entities.SiteContent{}, err
	}

	updated, err := current.Apply(patch)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidNavItem) {
			return entities.SiteContent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return entities.SiteContent{}, err
	}

	if err := u.repo.Save(ctx, updated); err != nil {
		return entities.SiteContent{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return updated, nil
}
