package domain

// InvestmentAssumptions são as premissas do projeto de investimento.
// Todas as taxas são frações (0.10 = 10%).
type InvestmentAssumptions struct {
	InitialOutlay float64 `json:"initial_outlay" yaml:"initial_outlay" validate:"gte=0"`
	HorizonYears  int     `json:"horizon_years" yaml:"horizon_years" validate:"gte=1,lte=15"`
	DiscountRate  float64 `json:"discount_rate" yaml:"discount_rate" validate:"gte=0,lte=1"`
	Year1Revenue  float64 `json:"year1_revenue" yaml:"year1_revenue" validate:"gte=0"`
	RevenueGrowth float64 `json:"revenue_growth" yaml:"revenue_growth" validate:"gt=-1"`
	COGSRate      float64 `json:"cogs_rate" yaml:"cogs_rate" validate:"gte=0,lte=1"`
	Year1Opex     float64 `json:"year1_opex" yaml:"year1_opex" validate:"gte=0"`
	OpexGrowth    float64 `json:"opex_growth" yaml:"opex_growth" validate:"gte=0"`
	TaxRate       float64 `json:"tax_rate" yaml:"tax_rate" validate:"gte=0,lte=1"`
}

// SaaSAssumptions são as premissas de assinatura recorrente
type SaaSAssumptions struct {
	ARR          float64 `json:"arr" yaml:"arr" validate:"gte=0"`
	MonthlyChurn float64 `json:"monthly_churn" yaml:"monthly_churn" validate:"gte=0,lte=1"`
	ARPU         float64 `json:"arpu" yaml:"arpu" validate:"gte=0"`
	CAC          float64 `json:"cac" yaml:"cac" validate:"gte=0"`
}

// LiquidityAssumptions não têm restrições de sinal
type LiquidityAssumptions struct {
	Cash         float64 `json:"cash" yaml:"cash"`
	LongTermDebt float64 `json:"long_term_debt" yaml:"long_term_debt"`
	DSO          float64 `json:"dso" yaml:"dso"`
	DIO          float64 `json:"dio" yaml:"dio"`
	DPO          float64 `json:"dpo" yaml:"dpo"`
}

type BreakEvenAssumptions struct {
	UnitPrice        float64 `json:"unit_price" yaml:"unit_price" validate:"gte=0"`
	UnitVariableCost float64 `json:"unit_variable_cost" yaml:"unit_variable_cost" validate:"gte=0"`
	FixedCosts       float64 `json:"fixed_costs" yaml:"fixed_costs" validate:"gte=0"`
	Volume           float64 `json:"volume" yaml:"volume" validate:"gte=0"`
}

// StressAssumptions usa apenas números do ano 1. ShockPct é percentual (-20 = queda de 20%).
type StressAssumptions struct {
	Year1Revenue float64 `json:"year1_revenue" yaml:"year1_revenue" validate:"gte=0"`
	COGSRate     float64 `json:"cogs_rate" yaml:"cogs_rate" validate:"gte=0,lte=1"`
	Year1Opex    float64 `json:"year1_opex" yaml:"year1_opex" validate:"gte=0"`
	ShockPct     float64 `json:"shock_pct" yaml:"shock_pct" validate:"gte=-100,lte=100"`
}

// StressFromInvestment monta o cenário de stress a partir do ano 1 do investimento
func StressFromInvestment(inv InvestmentAssumptions, shockPct float64) StressAssumptions {
	return StressAssumptions{
		Year1Revenue: inv.Year1Revenue,
		COGSRate:     inv.COGSRate,
		Year1Opex:    inv.Year1Opex,
		ShockPct:     shockPct,
	}
}

// Assumptions agrupa as premissas de todos os módulos de uma avaliação
type Assumptions struct {
	Investment InvestmentAssumptions `json:"investment" yaml:"investment"`
	SaaS       SaaSAssumptions       `json:"saas" yaml:"saas"`
	Liquidity  LiquidityAssumptions  `json:"liquidity" yaml:"liquidity"`
	BreakEven  BreakEvenAssumptions  `json:"break_even" yaml:"break_even"`
	Stress     StressAssumptions     `json:"stress" yaml:"stress"`
}

// StressInput é a seção stress como chega na avaliação completa e nos cenários.
// Receita, CMV e opex ausentes (nil) vêm do ano 1 do investimento; zero explícito é mantido.
type StressInput struct {
	Year1Revenue *float64 `json:"year1_revenue,omitempty" yaml:"year1_revenue"`
	COGSRate     *float64 `json:"cogs_rate,omitempty" yaml:"cogs_rate"`
	Year1Opex    *float64 `json:"year1_opex,omitempty" yaml:"year1_opex"`
	ShockPct     float64  `json:"shock_pct" yaml:"shock_pct"`
}

func (s StressInput) Resolve(inv InvestmentAssumptions) StressAssumptions {
	stress := StressFromInvestment(inv, s.ShockPct)
	if s.Year1Revenue != nil {
		stress.Year1Revenue = *s.Year1Revenue
	}
	if s.COGSRate != nil {
		stress.COGSRate = *s.COGSRate
	}
	if s.Year1Opex != nil {
		stress.Year1Opex = *s.Year1Opex
	}
	return stress
}

// AssumptionsInput é o corpo de POST /v1/evaluations e o formato das premissas no YAML de cenários
type AssumptionsInput struct {
	Investment InvestmentAssumptions `json:"investment" yaml:"investment"`
	SaaS       SaaSAssumptions       `json:"saas" yaml:"saas"`
	Liquidity  LiquidityAssumptions  `json:"liquidity" yaml:"liquidity"`
	BreakEven  BreakEvenAssumptions  `json:"break_even" yaml:"break_even"`
	Stress     StressInput           `json:"stress" yaml:"stress"`
}

// Resolve fecha a entrada em premissas completas, derivando o stress quando necessário
func (in AssumptionsInput) Resolve() Assumptions {
	return Assumptions{
		Investment: in.Investment,
		SaaS:       in.SaaS,
		Liquidity:  in.Liquidity,
		BreakEven:  in.BreakEven,
		Stress:     in.Stress.Resolve(in.Investment),
	}
}
