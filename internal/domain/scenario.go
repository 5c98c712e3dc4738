package domain

import "time"

// Scenario é um conjunto nomeado de premissas pré-configuradas (somente leitura)
type Scenario struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Assumptions Assumptions `json:"assumptions" yaml:"assumptions"`
}

type ScenarioList struct {
	Scenarios []ScenarioSummary `json:"scenarios"`
	LoadedAt  time.Time         `json:"loaded_at"`
}

type ScenarioSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultAssumptions são os valores padrão do playbook
func DefaultAssumptions() Assumptions {
	return DefaultInput().Resolve()
}

// DefaultInput são os padrões com o stress ainda ligado ao ano 1 do investimento.
// Cenários partem daqui para que o stress acompanhe o investimento sobrescrito.
func DefaultInput() AssumptionsInput {
	return AssumptionsInput{
		Investment: InvestmentAssumptions{
			InitialOutlay: 500000,
			HorizonYears:  5,
			DiscountRate:  0.10,
			Year1Revenue:  300000,
			RevenueGrowth: 0.15,
			COGSRate:      0.40,
			Year1Opex:     50000,
			OpexGrowth:    0.03,
			TaxRate:       0.28,
		},
		SaaS: SaaSAssumptions{
			ARR:          1000000,
			MonthlyChurn: 0.02,
			ARPU:         500,
			CAC:          4000,
		},
		Liquidity: LiquidityAssumptions{
			Cash:         150000,
			LongTermDebt: 400000,
			DSO:          60,
			DIO:          45,
			DPO:          90,
		},
		BreakEven: BreakEvenAssumptions{
			UnitPrice:        100,
			UnitVariableCost: 60,
			FixedCosts:       150000,
			Volume:           5000,
		},
		Stress: StressInput{ShockPct: -20},
	}
}
