package finance

import (
	"math"

	"github.com/vfg2006/cfo-playbook-api/internal/domain"
)

// ProjectCashFlows projeta o P&L de cada ano do horizonte e monta a série de fluxo de caixa
// [-investimento, fcf_1, ..., fcf_n]. Prejuízo não gera crédito fiscal.
func ProjectCashFlows(a domain.InvestmentAssumptions) ([]domain.YearlyProjection, domain.CashFlowSeries) {
	horizon := a.HorizonYears
	if horizon < 0 {
		horizon = 0
	}

	depreciation := 0.0
	if horizon > 0 {
		depreciation = a.InitialOutlay / float64(horizon)
	}

	projection := make([]domain.YearlyProjection, 0, horizon)
	series := make(domain.CashFlowSeries, 0, horizon+1)
	series = append(series, -a.InitialOutlay)

	for year := 1; year <= horizon; year++ {
		revenue := a.Year1Revenue * math.Pow(1+a.RevenueGrowth, float64(year-1))
		cogs := revenue * a.COGSRate
		opex := a.Year1Opex * math.Pow(1+a.OpexGrowth, float64(year-1))
		ebitda := revenue - cogs - opex
		ebit := ebitda - depreciation
		tax := math.Max(0, ebit*a.TaxRate)
		nopat := ebit - tax
		fcf := nopat + depreciation

		projection = append(projection, domain.YearlyProjection{
			Year:         year,
			Revenue:      revenue,
			COGS:         cogs,
			Opex:         opex,
			EBITDA:       ebitda,
			Depreciation: depreciation,
			EBIT:         ebit,
			Tax:          tax,
			NOPAT:        nopat,
			FreeCashFlow: fcf,
		})
		series = append(series, fcf)
	}

	return projection, series
}

// Cumulative retorna a soma acumulada da série
func Cumulative(series domain.CashFlowSeries) []float64 {
	cumulative := make([]float64, len(series))
	running := 0.0
	for i, cf := range series {
		running += cf
		cumulative[i] = running
	}
	return cumulative
}
