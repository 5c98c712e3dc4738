package finance

import "github.com/vfg2006/cfo-playbook-api/internal/domain"

// GrossMarginFactor é a margem aplicada ao ARPU no cálculo do LTV
const GrossMarginFactor = 0.85

// EvaluateSaaS calcula LTV e LTV/CAC. Churn <= 0 deixa o LTV (e a razão) indefinidos.
func EvaluateSaaS(a domain.SaaSAssumptions) domain.SaaSResult {
	if a.MonthlyChurn <= 0 {
		return domain.SaaSResult{
			LTV:         domain.Undefined(),
			LTVCACRatio: domain.Undefined(),
		}
	}

	ltv := a.ARPU * GrossMarginFactor / a.MonthlyChurn

	ratio := 0.0
	if a.CAC > 0 {
		ratio = ltv / a.CAC
	}

	return domain.SaaSResult{
		LTV:         domain.Defined(ltv),
		LTVCACRatio: domain.Defined(ratio),
	}
}
