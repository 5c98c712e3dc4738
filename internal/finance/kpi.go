package finance

import "github.com/vfg2006/cfo-playbook-api/internal/domain"

// BuildKPISet achata os resultados dos módulos no mapa de KPIs
func BuildKPISet(
	inv domain.InvestmentResult,
	saas domain.SaaSResult,
	liq domain.LiquidityResult,
	be domain.BreakEvenResult,
	stress domain.StressResult,
) domain.KPISet {
	kpis := domain.KPISet{
		domain.KPINPV:                  domain.Defined(inv.NPV),
		domain.KPIIRR:                  inv.IRR,
		domain.KPIPaybackYears:         inv.PaybackYears,
		domain.KPILTV:                  saas.LTV,
		domain.KPILTVCACRatio:          saas.LTVCACRatio,
		domain.KPINetFinancialPosition: domain.Defined(liq.NetFinancialPosition),
		domain.KPICCCDays:              domain.Defined(liq.CCCDays),
		domain.KPIBaseEBITDA:           domain.Defined(stress.BaseEBITDA),
		domain.KPIShockedEBITDA:        domain.Defined(stress.ShockedEBITDA),
		domain.KPIBreakEvenRevenue:     domain.Undefined(),
		domain.KPISafetyMargin:         domain.Undefined(),
	}

	if be.Reachable {
		kpis[domain.KPIBreakEvenRevenue] = domain.Defined(be.Revenue)
		if be.Sales != 0 {
			kpis[domain.KPISafetyMargin] = domain.Defined(be.SafetyMargin)
		}
	}

	return kpis
}
