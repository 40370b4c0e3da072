package repository

import (
	"os"

	"buhuchet_site/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// normalizePricingConfig replaces nil maps left by a partial stored document.
func normalizePricingConfig(cfg entities.PricingConfig) entities.PricingConfig {
	if cfg.Services == nil {
		cfg.Services = map[string]entities.ServiceCatalogEntry{}
	}
	if cfg.Multipliers.TaxSystems == nil {
		cfg.Multipliers.TaxSystems = map[string]float64{}
	}
	if cfg.Multipliers.Employees == nil {
		cfg.Multipliers.Employees = map[string]float64{}
	}
	return cfg
}
