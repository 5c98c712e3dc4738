package domain

// YearlyProjection é a linha de um ano projetado (1..horizonte)
type YearlyProjection struct {
	Year         int     `json:"year"`
	Revenue      float64 `json:"revenue"`
	COGS         float64 `json:"cogs"`
	Opex         float64 `json:"opex"`
	EBITDA       float64 `json:"ebitda"`
	Depreciation float64 `json:"depreciation"`
	EBIT         float64 `json:"ebit"`
	Tax          float64 `json:"tax"`
	NOPAT        float64 `json:"nopat"`
	FreeCashFlow float64 `json:"free_cash_flow"`
}

// CashFlowSeries tem tamanho horizonte+1; o índice 0 é o investimento inicial negativo
type CashFlowSeries []float64

type InvestmentResult struct {
	NPV                float64            `json:"npv"`
	IRR                Metric             `json:"irr"`
	PaybackYears       Metric             `json:"payback_years"`
	ROIC               []float64          `json:"roic"`
	CashFlows          CashFlowSeries     `json:"cash_flows"`
	CumulativeCashFlow []float64          `json:"cumulative_cash_flow"`
	Projection         []YearlyProjection `json:"projection"`
}

type SaaSResult struct {
	LTV         Metric `json:"ltv"`
	LTVCACRatio Metric `json:"ltv_cac_ratio"`
}

// CCCBreakdown são as três componentes do ciclo com sinal (DPO negativo)
type CCCBreakdown struct {
	DSO float64 `json:"dso"`
	DIO float64 `json:"dio"`
	DPO float64 `json:"dpo"`
}

type LiquidityResult struct {
	NetFinancialPosition float64      `json:"net_financial_position"`
	CCCDays              float64      `json:"ccc_days"`
	Breakdown            CCCBreakdown `json:"breakdown"`
}

// BreakEvenResult mantém Revenue e SafetyMargin em zero quando o ponto de equilíbrio é
// inalcançável; Reachable indica esse caso para quem consome o resultado.
type BreakEvenResult struct {
	ContributionMargin float64 `json:"contribution_margin"`
	Sales              float64 `json:"sales"`
	Revenue            float64 `json:"revenue"`
	SafetyMargin       float64 `json:"safety_margin"`
	Reachable          bool    `json:"reachable"`
}

type StressResult struct {
	BaseEBITDA    float64 `json:"base_ebitda"`
	ShockedEBITDA float64 `json:"shocked_ebitda"`
}
