package repository

import (
	"context"
	"path/filepath"
	"sync"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"
)

const (
	pricingFileName     = "pricing.json"
	siteContentFileName = "site_content.json"
)

// PricingConfigFileRepository keeps the pricing document in DATA_DIR/pricing.json.
// Used when STORAGE_BACKEND=file (local development, no DynamoDB).

type PricingConfigFileRepository struct {
	mu   sync.Mutex
	file jsonFile
}

var _ interfaces.IPricingConfigRepository = (*PricingConfigFileRepository)(nil)

func NewPricingConfigFileRepository(dataDir string) *PricingConfigFileRepository {
	return &PricingConfigFileRepository{file: jsonFile{path: filepath.Join(dataDir, pricingFileName)}}
}

func (r *PricingConfigFileRepository) Load(_ context.Context) (entities.PricingConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cfg entities.PricingConfig
	found, err := r.file.load(&cfg)
	if err != nil {
		return entities.PricingConfig{}, err
	}
	if !found {
		return entities.DefaultPricingConfig(), nil
	}
	return normalizePricingConfig(cfg), nil
}

func (r *PricingConfigFileRepository) Save(_ context.Context, cfg entities.PricingConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.store(cfg)
}

// SiteContentFileRepository keeps the site copy in DATA_DIR/site_content.json.

type SiteContentFileRepository struct {
	mu   sync.Mutex
	file jsonFile
}

var _ interfaces.ISiteContentRepository = (*SiteContentFileRepository)(nil)

func NewSiteContentFileRepository(dataDir string) *SiteContentFileRepository {
	return &SiteContentFileRepository{file: jsonFile{path: filepath.Join(dataDir, siteContentFileName)}}
}

func (r *SiteContentFileRepository) Load(_ context.Context) (entities.SiteContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var content entities.SiteContent
	found, err := r.file.load(&content)
	if err != nil {
		return entities.SiteContent{}, err
	}
	if !found {
		return entities.DefaultSiteContent(), nil
	}
	return content, nil
}

func (r *SiteContentFileRepository) Save(_ context.Context, content entities.SiteContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.store(content)
}
