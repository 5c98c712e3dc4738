package finance

import "github.com/vfg2006/cfo-playbook-api/internal/domain"

func EvaluateLiquidity(a domain.LiquidityAssumptions) domain.LiquidityResult {
	return domain.LiquidityResult{
		NetFinancialPosition: a.LongTermDebt - a.Cash,
		CCCDays:              a.DSO + a.DIO - a.DPO,
		Breakdown: domain.CCCBreakdown{
			DSO: a.DSO,
			DIO: a.DIO,
			DPO: -a.DPO,
		},
	}
}
