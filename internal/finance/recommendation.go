package finance

import "github.com/vfg2006/cfo-playbook-api/internal/domain"

// Limites fixos das regras de decisão
const (
	NPVThreshold       = 0.0
	CCCThresholdDays   = 60.0
	LTVCACThreshold    = 3.0
	ShockedEBITDAFloor = 0.0
)

type rule struct {
	check domain.Check
	key   string
	pass  func(v float64) bool
	okKey string
	koKey string
}

// A ordem das regras é a ordem da lista de recomendações
var rules = []rule{
	{
		check: domain.CheckInvestment,
		key:   domain.KPINPV,
		pass:  func(v float64) bool { return v > NPVThreshold },
		okKey: domain.MessageNPVOk,
		koKey: domain.MessageNPVKo,
	},
	{
		check: domain.CheckLiquidity,
		key:   domain.KPICCCDays,
		pass:  func(v float64) bool { return v < CCCThresholdDays },
		okKey: domain.MessageLiqOk,
		koKey: domain.MessageLiqKo,
	},
	{
		check: domain.CheckSaaS,
		key:   domain.KPILTVCACRatio,
		pass:  func(v float64) bool { return v > LTVCACThreshold },
		okKey: domain.MessageSaaSOk,
		koKey: domain.MessageSaaSKo,
	},
	{
		check: domain.CheckStress,
		key:   domain.KPIShockedEBITDA,
		pass:  func(v float64) bool { return v > ShockedEBITDAFloor },
		okKey: domain.MessageStressOk,
		koKey: domain.MessageStressKo,
	},
}

// Recommend classifica cada regra como pass/fail. KPI indefinido ou ausente reprova.
func Recommend(kpis domain.KPISet) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(rules))
	for _, r := range rules {
		rec := domain.Recommendation{
			Check:      r.check,
			Polarity:   domain.PolarityFail,
			MessageKey: r.koKey,
		}

		if v, ok := kpis.Get(r.key).Value(); ok && r.pass(v) {
			rec.Polarity = domain.PolarityPass
			rec.MessageKey = r.okKey
		}

		recommendations = append(recommendations, rec)
	}
	return recommendations
}
