package request

import (
	"errors"
	"fmt"
	"strings"

	"buhuchet_site/internal/domain/entities"
)

var (
	ErrNegativeEmployeeCount = errors.New("employee count must not be negative")
	ErrDuplicatePricingKey   = errors.New("pricing keys collide after trimming")
)

// QuoteRequest is the calculator form: selected services, tax regime and headcount.
type QuoteRequest struct {
	SelectedServices []string `json:"selected_services"`
	TaxSystem        string   `json:"tax_system"`
	EmployeeCount    int      `json:"employee_count"`
}

func (r QuoteRequest) ToEntity() (entities.QuoteRequest, error) {
	if r.EmployeeCount < 0 {
		return entities.QuoteRequest{}, ErrNegativeEmployeeCount
	}

	keys := make([]string, 0, len(r.SelectedServices))
	for _, k := range r.SelectedServices {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	return entities.QuoteRequest{
		SelectedServiceKeys: keys,
		TaxSystemKey:        strings.TrimSpace(r.TaxSystem),
		EmployeeCount:       r.EmployeeCount,
	}, nil
}

type ServiceEntryRequest struct {
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type MultipliersRequest struct {
	TaxSystems map[string]float64 `json:"taxSystems" binding:"required"`
	Employees  map[string]float64 `json:"employees" binding:"required"`
}

// PricingConfigRequest replaces the whole pricing document.
type PricingConfigRequest struct {
	Services    map[string]ServiceEntryRequest `json:"services" binding:"required"`
	Multipliers MultipliersRequest             `json:"multipliers"`
}

func (r PricingConfigRequest) ToEntity() (entities.PricingConfig, error) {
	cfg := entities.PricingConfig{
		Services: make(map[string]entities.ServiceCatalogEntry, len(r.Services)),
		Multipliers: entities.MultiplierTable{
			TaxSystems: make(map[string]float64, len(r.Multipliers.TaxSystems)),
			Employees:  make(map[string]float64, len(r.Multipliers.Employees)),
		},
	}
	for k, s := range r.Services {
		key := strings.TrimSpace(k)
		if _, dup := cfg.Services[key]; dup {
			return entities.PricingConfig{}, fmt.Errorf("%w: service %q", ErrDuplicatePricingKey, key)
		}
		cfg.Services[key] = entities.ServiceCatalogEntry{
			Price:       s.Price,
			Description: strings.TrimSpace(s.Description),
		}
	}
	if err := copyFactors(cfg.Multipliers.TaxSystems, r.Multipliers.TaxSystems, "tax system"); err != nil {
		return entities.PricingConfig{}, err
	}
	if err := copyFactors(cfg.Multipliers.Employees, r.Multipliers.Employees, "employee bracket"); err != nil {
		return entities.PricingConfig{}, err
	}
	return cfg, nil
}

func copyFactors(dst, src map[string]float64, kind string) error {
	for k, v := range src {
		key := strings.TrimSpace(k)
		if _, dup := dst[key]; dup {
			return fmt.Errorf("%w: %s %q", ErrDuplicatePricingKey, kind, key)
		}
		dst[key] = v
	}
	return nil
}
