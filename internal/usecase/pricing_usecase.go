package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"buhuchet_site/internal/domain/entities"
	"buhuchet_site/internal/usecase/interfaces"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrStoreFailure         = errors.New("store failure")
	ErrInvalidPricingConfig = errors.New("invalid pricing config")
)

// IPricingUseCase exposes the calculator operations.
//
//   - "Calculator page" => GetConfig() + Quote()
//   - "Admin / pricing editor" => SaveConfig()

type IPricingUseCase interface {
	GetConfig(ctx context.Context) (entities.PricingConfig, error)
	Quote(ctx context.Context, req entities.QuoteRequest) (entities.QuoteResult, error)
	SaveConfig(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error)
}

type PricingUseCase struct {
	repo interfaces.IPricingConfigRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(repo interfaces.IPricingConfigRepository) *PricingUseCase {
	return &PricingUseCase{repo: repo}
}

// ComputePrice prices a quote against a catalog and multiplier snapshot.
//
// Unknown service keys and unknown multiplier keys are ignored (factor 1) so a
// stale calculator page keeps working after an admin edit. The only failure
// is a negative employee count.
func ComputePrice(req entities.QuoteRequest, catalog map[string]entities.ServiceCatalogEntry, multipliers entities.MultiplierTable) (entities.QuoteResult, error) {
	if req.EmployeeCount < 0 {
		return entities.QuoteResult{}, fmt.Errorf("%w: employee count must not be negative", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(req.SelectedServiceKeys))
	base := 0.0
	for _, key := range req.SelectedServiceKeys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if svc, ok := catalog[key]; ok && svc.Price > 0 {
			base += svc.Price
		}
	}

	if req.TaxSystemKey != "" {
		if f, ok := multipliers.TaxSystems[req.TaxSystemKey]; ok && f > 0 {
			base *= f
		}
	}

	if f, ok := multipliers.Employees[entities.ClassifyBracket(req.EmployeeCount)]; ok && f > 0 {
		base *= f
	}

	return entities.QuoteResult{TotalPrice: roundPrice(base)}, nil
}

// roundPrice rounds to whole roubles, saturating at math.MaxInt64.
func roundPrice(v float64) int64 {
	v = math.Round(v)
	switch {
	case !(v > 0):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(v)
}

func (u *PricingUseCase) GetConfig(ctx context.Context) (entities.PricingConfig, error) {
	cfg, err := u.repo.Load(ctx)
	if err != nil {
		return entities.PricingConfig{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return cfg, nil
}

func (u *PricingUseCase) Quote(ctx context.Context, req entities.QuoteRequest) (entities.QuoteResult, error) {
	if req.EmployeeCount < 0 {
		return entities.QuoteResult{}, fmt.Errorf("%w: employee count must not be negative", ErrInvalidInput)
	}

	cfg, err := u.GetConfig(ctx)
	if err != nil {
		return entities.QuoteResult{}, err
	}
	snapshot := cfg.Clone()
	return ComputePrice(req, snapshot.Services, snapshot.Multipliers)
}

func (u *PricingUseCase) SaveConfig(ctx context.Context, cfg entities.PricingConfig) (entities.PricingConfig, error) {
	if err := validatePricingConfig(cfg); err != nil {
		return entities.PricingConfig{}, err
	}

	cfg = cfg.Clone()
	if err := u.repo.Save(ctx, cfg); err != nil {
		return entities.PricingConfig{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return cfg, nil
}

func validatePricingConfig(cfg entities.PricingConfig) error {
	for key, svc := range cfg.Services {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: empty service key", ErrInvalidPricingConfig)
		}
		if svc.Price < 0 || math.IsNaN(svc.Price) || math.IsInf(svc.Price, 0) {
			return fmt.Errorf("%w: service %q has an invalid price", ErrInvalidPricingConfig, key)
		}
	}
	for key, f := range cfg.Multipliers.TaxSystems {
		if !(f > 0) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: tax system %q must have a positive factor", ErrInvalidPricingConfig, key)
		}
	}
	for key, f := range cfg.Multipliers.Employees {
		if !(f > 0) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: employee bracket %q must have a positive factor", ErrInvalidPricingConfig, key)
		}
	}
	return nil
}
