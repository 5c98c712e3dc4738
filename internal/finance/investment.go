package finance

import (
	"math"

	"github.com/vfg2006/cfo-playbook-api/internal/domain"
)

const (
	irrInitialGuess     = 0.1
	irrTolerance        = 1e-10
	irrNewtonMaxIter    = 100
	irrBisectionMaxIter = 200
	irrLowerBound       = -0.99
	irrUpperBound       = 10.0
)

// NPV desconta a série na taxa informada: Σ CF_t/(1+r)^t, t=0..n
func NPV(rate float64, series domain.CashFlowSeries) float64 {
	total := 0.0
	for t, cf := range series {
		total += cf / math.Pow(1+rate, float64(t))
	}
	return total
}

// npvDerivative é a derivada do NPV em relação à taxa
func npvDerivative(rate float64, series domain.CashFlowSeries) float64 {
	total := 0.0
	for t, cf := range series {
		if t == 0 {
			continue
		}
		total -= float64(t) * cf / math.Pow(1+rate, float64(t+1))
	}
	return total
}

// IRR resolve NPV(r)=0. Sem troca de sinal na série ou sem convergência, o resultado é indefinido.
func IRR(series domain.CashFlowSeries) domain.Metric {
	if !hasSignChange(series) {
		return domain.Undefined()
	}

	if r, ok := irrNewton(series); ok {
		return domain.Defined(r)
	}

	if r, ok := irrBisection(series); ok {
		return domain.Defined(r)
	}

	return domain.Undefined()
}

func hasSignChange(series domain.CashFlowSeries) bool {
	var positive, negative bool
	for _, cf := range series {
		if cf > 0 {
			positive = true
		}
		if cf < 0 {
			negative = true
		}
	}
	return positive && negative
}

func irrNewton(series domain.CashFlowSeries) (float64, bool) {
	rate := irrInitialGuess
	for i := 0; i < irrNewtonMaxIter; i++ {
		value := NPV(rate, series)
		if math.Abs(value) < irrTolerance {
			return rate, true
		}

		derivative := npvDerivative(rate, series)
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return 0, false
		}

		next := rate - value/derivative
		if next <= -1 || math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}

		if math.Abs(next-rate) < irrTolerance {
			return next, true
		}
		rate = next
	}
	return 0, false
}

func irrBisection(series domain.CashFlowSeries) (float64, bool) {
	lo, hi := irrLowerBound, irrUpperBound
	fLo := NPV(lo, series)
	fHi := NPV(hi, series)

	if fLo == 0 {
		return lo, true
	}
	if fHi == 0 {
		return hi, true
	}
	if math.Signbit(fLo) == math.Signbit(fHi) {
		return 0, false
	}

	for i := 0; i < irrBisectionMaxIter; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, series)
		if math.Abs(fMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid, true
		}

		if math.Signbit(fMid) == math.Signbit(fLo) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	return 0, false
}

// Payback retorna o menor índice t em que o acumulado fica >= 0.
// Se não ocorre dentro do horizonte, é indefinido (nunca o próprio horizonte).
func Payback(series domain.CashFlowSeries) domain.Metric {
	running := 0.0
	for t, cf := range series {
		running += cf
		if running >= 0 {
			return domain.Defined(float64(t))
		}
	}
	return domain.Undefined()
}

// ROIC retorna NOPAT/investimento*100 por ano; zero quando o investimento é zero
func ROIC(projection []domain.YearlyProjection, outlay float64) []float64 {
	roic := make([]float64, len(projection))
	if outlay <= 0 {
		return roic
	}
	for i, p := range projection {
		roic[i] = p.NOPAT / outlay * 100
	}
	return roic
}

// EvaluateInvestment compõe projeção, NPV, IRR, payback e ROIC
func EvaluateInvestment(a domain.InvestmentAssumptions) domain.InvestmentResult {
	projection, series := ProjectCashFlows(a)

	return domain.InvestmentResult{
		NPV:                NPV(a.DiscountRate, series),
		IRR:                IRR(series),
		PaybackYears:       Payback(series),
		ROIC:               ROIC(projection, a.InitialOutlay),
		CashFlows:          series,
		CumulativeCashFlow: Cumulative(series),
		Projection:         projection,
	}
}
