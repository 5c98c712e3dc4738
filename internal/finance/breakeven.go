package finance

import "github.com/vfg2006/cfo-playbook-api/internal/domain"

// EvaluateBreakEven calcula o faturamento de equilíbrio e a margem de segurança.
// Com margem de contribuição <= 0 o equilíbrio é inalcançável: Revenue e SafetyMargin ficam
// em zero e Reachable em false.
func EvaluateBreakEven(a domain.BreakEvenAssumptions) domain.BreakEvenResult {
	cm := a.UnitPrice - a.UnitVariableCost
	sales := a.Volume * a.UnitPrice
	result := domain.BreakEvenResult{ContributionMargin: cm, Sales: sales}

	if cm <= 0 {
		return result
	}

	result.Reachable = true
	result.Revenue = a.FixedCosts / cm * a.UnitPrice

	if sales != 0 {
		result.SafetyMargin = (sales - result.Revenue) / sales
	}

	return result
}
