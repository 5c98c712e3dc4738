package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
)

func defaultKPIs() domain.KPISet {
	a := domain.DefaultAssumptions()
	return BuildKPISet(
		EvaluateInvestment(a.Investment),
		EvaluateSaaS(a.SaaS),
		EvaluateLiquidity(a.Liquidity),
		EvaluateBreakEven(a.BreakEven),
		EvaluateStress(a.Stress),
	)
}

func TestBuildKPISet_HasAllKeys(t *testing.T) {
	kpis := defaultKPIs()

	require.Len(t, kpis, len(domain.KPIKeys))
	for _, key := range domain.KPIKeys {
		_, ok := kpis[key]
		assert.True(t, ok, key)
	}

	be, ok := kpis.Get(domain.KPIBreakEvenRevenue).Value()
	assert.True(t, ok)
	assert.InDelta(t, 375000.0, be, 1e-9)
}

func TestBuildKPISet_UnreachableBreakEven(t *testing.T) {
	be := EvaluateBreakEven(domain.BreakEvenAssumptions{UnitPrice: 50, UnitVariableCost: 60, FixedCosts: 1000, Volume: 10})

	kpis := BuildKPISet(domain.InvestmentResult{}, domain.SaaSResult{}, domain.LiquidityResult{}, be, domain.StressResult{})

	assert.False(t, kpis.Get(domain.KPIBreakEvenRevenue).IsDefined())
	assert.False(t, kpis.Get(domain.KPISafetyMargin).IsDefined())
}

func TestRecommend_DefaultScenarioPassesAll(t *testing.T) {
	recs := Recommend(defaultKPIs())

	require.Len(t, recs, 4)
	assert.Equal(t, []domain.Check{
		domain.CheckInvestment, domain.CheckLiquidity, domain.CheckSaaS, domain.CheckStress,
	}, []domain.Check{recs[0].Check, recs[1].Check, recs[2].Check, recs[3].Check})

	for _, r := range recs {
		assert.True(t, r.Passed(), string(r.Check))
	}
	assert.Equal(t, domain.MessageNPVOk, recs[0].MessageKey)
	assert.Equal(t, domain.MessageStressOk, recs[3].MessageKey)
}

func TestRecommend_Thresholds(t *testing.T) {
	tests := []struct {
		name     string
		kpis     domain.KPISet
		expected []string
	}{
		{
			name: "limites exatos reprovam",
			kpis: domain.KPISet{
				domain.KPINPV:           domain.Defined(0),
				domain.KPICCCDays:       domain.Defined(60),
				domain.KPILTVCACRatio:   domain.Defined(3),
				domain.KPIShockedEBITDA: domain.Defined(0),
			},
			expected: []string{domain.MessageNPVKo, domain.MessageLiqKo, domain.MessageSaaSKo, domain.MessageStressKo},
		},
		{
			name: "acima e abaixo dos limites",
			kpis: domain.KPISet{
				domain.KPINPV:           domain.Defined(1),
				domain.KPICCCDays:       domain.Defined(-10),
				domain.KPILTVCACRatio:   domain.Defined(3.01),
				domain.KPIShockedEBITDA: domain.Defined(0.5),
			},
			expected: []string{domain.MessageNPVOk, domain.MessageLiqOk, domain.MessageSaaSOk, domain.MessageStressOk},
		},
		{
			name: "indefinido reprova",
			kpis: domain.KPISet{
				domain.KPINPV:           domain.Defined(1),
				domain.KPICCCDays:       domain.Defined(10),
				domain.KPILTVCACRatio:   domain.Undefined(),
				domain.KPIShockedEBITDA: domain.Defined(1),
			},
			expected: []string{domain.MessageNPVOk, domain.MessageLiqOk, domain.MessageSaaSKo, domain.MessageStressOk},
		},
		{
			name:     "KPISet vazio reprova tudo",
			kpis:     domain.KPISet{},
			expected: []string{domain.MessageNPVKo, domain.MessageLiqKo, domain.MessageSaaSKo, domain.MessageStressKo},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend(tt.kpis)
			keys := make([]string, 0, len(recs))
			for _, r := range recs {
				keys = append(keys, r.MessageKey)
			}
			assert.Equal(t, tt.expected, keys)
		})
	}
}
