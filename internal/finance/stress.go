package finance

import "github.com/vfg2006/cfo-playbook-api/internal/domain"

// EvaluateStress aplica o choque percentual sobre a receita do ano 1
func EvaluateStress(a domain.StressAssumptions) domain.StressResult {
	margin := 1 - a.COGSRate
	return domain.StressResult{
		BaseEBITDA:    a.Year1Revenue*margin - a.Year1Opex,
		ShockedEBITDA: a.Year1Revenue*(1+a.ShockPct/100)*margin - a.Year1Opex,
	}
}
