package domain

// Chaves do KPISet
const (
	KPINPV                  = "npv"
	KPIIRR                  = "irr"
	KPIPaybackYears         = "payback_years"
	KPILTV                  = "ltv"
	KPILTVCACRatio          = "ltv_cac_ratio"
	KPINetFinancialPosition = "net_financial_position"
	KPICCCDays              = "ccc_days"
	KPIBreakEvenRevenue     = "break_even_revenue"
	KPISafetyMargin         = "safety_margin"
	KPIBaseEBITDA           = "base_ebitda"
	KPIShockedEBITDA        = "shocked_ebitda"
)

// KPIKeys é a ordem canônica das chaves do KPISet
var KPIKeys = []string{
	KPINPV,
	KPIIRR,
	KPIPaybackYears,
	KPILTV,
	KPILTVCACRatio,
	KPINetFinancialPosition,
	KPICCCDays,
	KPIBreakEvenRevenue,
	KPISafetyMargin,
	KPIBaseEBITDA,
	KPIShockedEBITDA,
}

// KPISet é o mapa plano de métricas escalares de todos os módulos
type KPISet map[string]Metric

// Get retorna a métrica da chave; chave ausente é indefinida
func (k KPISet) Get(key string) Metric {
	m, ok := k[key]
	if !ok {
		return Undefined()
	}
	return m
}
