package entities

// Employee-count brackets used as multiplier keys.
const (
	BracketNone   = "0"
	BracketSmall  = "1-5"
	BracketMedium = "6-15"
	BracketLarge  = "16-50"
	BracketHuge   = "50+"
)

// Brackets lists every bracket key, smallest first.
var Brackets = []string{BracketNone, BracketSmall, BracketMedium, BracketLarge, BracketHuge}

// ClassifyBracket maps a non-negative employee count to its bracket key.
// Callers reject negative counts before classifying.
func ClassifyBracket(employees int) string {
	switch {
	case employees <= 0:
		return BracketNone
	case employees <= 5:
		return BracketSmall
	case employees <= 15:
		return BracketMedium
	case employees <= 50:
		return BracketLarge
	default:
		return BracketHuge
	}
}

// ServiceCatalogEntry is one billable service of the calculator.
// The catalog key is the map key in PricingConfig.Services.
type ServiceCatalogEntry struct {
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// MultiplierTable holds the coefficients applied on top of the base price.
type MultiplierTable struct {
	TaxSystems map[string]float64 `json:"taxSystems"`
	Employees  map[string]float64 `json:"employees"`
}

// PricingConfig is the editable pricing document behind the calculator page.
//
// JSON shape:
//
//	{"services": {"accounting": {"price": 3000, "description": "..."}},
//	 "multipliers": {"taxSystems": {"osn": 1.5}, "employees": {"6-15": 1.5}}}
type PricingConfig struct {
	Services    map[string]ServiceCatalogEntry `json:"services"`
	Multipliers MultiplierTable                `json:"multipliers"`
}

// Clone returns a deep copy, so a quote never sees a concurrent admin edit.
func (c PricingConfig) Clone() PricingConfig {
	out := PricingConfig{
		Services: make(map[string]ServiceCatalogEntry, len(c.Services)),
		Multipliers: MultiplierTable{
			TaxSystems: make(map[string]float64, len(c.Multipliers.TaxSystems)),
			Employees:  make(map[string]float64, len(c.Multipliers.Employees)),
		},
	}
	for k, v := range c.Services {
		out.Services[k] = v
	}
	for k, v := range c.Multipliers.TaxSystems {
		out.Multipliers.TaxSystems[k] = v
	}
	for k, v := range c.Multipliers.Employees {
		out.Multipliers.Employees[k] = v
	}
	return out
}

// DefaultPricingConfig is served until an admin saves a pricing document.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		Services: map[string]ServiceCatalogEntry{
			"accounting":    {Price: 3000, Description: "Бухгалтерское обслуживание"},
			"tax_reporting": {Price: 2000, Description: "Сдача налоговой отчётности"},
			"payroll":       {Price: 1500, Description: "Расчёт заработной платы и кадровый учёт"},
			"registration":  {Price: 5000, Description: "Регистрация ИП или ООО"},
			"consulting":    {Price: 1000, Description: "Консультация бухгалтера"},
		},
		Multipliers: MultiplierTable{
			TaxSystems: map[string]float64{
				"usn6":   1.0,
				"usn15":  1.2,
				"osn":    1.5,
				"patent": 0.8,
			},
			Employees: map[string]float64{
				BracketNone:   1.0,
				BracketSmall:  1.2,
				BracketMedium: 1.5,
				BracketLarge:  2.0,
				BracketHuge:   3.0,
			},
		},
	}
}

// QuoteRequest is what the calculator page submits. It is never persisted.
type QuoteRequest struct {
	SelectedServiceKeys []string
	TaxSystemKey        string
	EmployeeCount       int
}

// QuoteResult is the monthly price in whole currency units.
type QuoteResult struct {
	TotalPrice int64 `json:"total_price"`
}
