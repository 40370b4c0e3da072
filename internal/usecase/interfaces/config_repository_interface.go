package interfaces

import (
	"context"

	"buhuchet_site/internal/domain/entities"
)

// IPricingConfigRepository is the single source of truth for the calculator
// pricing document. Load returns a fresh copy on every call; when nothing has
// been saved yet it returns entities.DefaultPricingConfig().

type IPricingConfigRepository interface {
	Load(ctx context.Context) (entities.PricingConfig, error)
	Save(ctx context.Context, cfg entities.PricingConfig) error
}

// ISiteContentRepository stores the editable site copy, with the same
// load/save contract as IPricingConfigRepository.

type ISiteContentRepository interface {
	Load(ctx context.Context) (entities.SiteContent, error)
	Save(ctx context.Context, content entities.SiteContent) error
}
