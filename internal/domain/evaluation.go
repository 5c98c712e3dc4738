package domain

import "time"

// Charts são as séries numéricas entregues ao renderizador de gráficos
type Charts struct {
	CashFlow           CashFlowSeries     `json:"cash_flow"`
	CumulativeCashFlow []float64          `json:"cumulative_cash_flow"`
	Projection         []YearlyProjection `json:"projection"`
	ROIC               []float64          `json:"roic"`
	HurdleRate         []float64          `json:"hurdle_rate"`
	CCCBreakdown       CCCBreakdown       `json:"ccc_breakdown"`
	Stress             StressResult       `json:"stress"`
}

// Evaluation é o resultado completo de um ciclo de avaliação
type Evaluation struct {
	ID              string           `json:"id"`
	Assumptions     Assumptions      `json:"assumptions"`
	Investment      InvestmentResult `json:"investment"`
	SaaS            SaaSResult       `json:"saas"`
	Liquidity       LiquidityResult  `json:"liquidity"`
	BreakEven       BreakEvenResult  `json:"break_even"`
	Stress          StressResult     `json:"stress"`
	KPIs            KPISet           `json:"kpis"`
	Recommendations []Recommendation `json:"recommendations"`
	Charts          Charts           `json:"charts"`
	EvaluatedAt     time.Time        `json:"evaluated_at"`
}
