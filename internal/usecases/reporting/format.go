package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"github.com/vfg2006/cfo-playbook-api/pkg/utils"
	"golang.org/x/text/message"
)

type valueKind int

const (
	kindMoney valueKind = iota
	kindPercent
	kindRatio
	kindYears
	kindDays
)

var kpiKinds = map[string]valueKind{
	domain.KPINPV:                  kindMoney,
	domain.KPIIRR:                  kindPercent,
	domain.KPIPaybackYears:         kindYears,
	domain.KPILTV:                  kindMoney,
	domain.KPILTVCACRatio:          kindRatio,
	domain.KPINetFinancialPosition: kindMoney,
	domain.KPICCCDays:              kindDays,
	domain.KPIBreakEvenRevenue:     kindMoney,
	domain.KPISafetyMargin:         kindPercent,
	domain.KPIBaseEBITDA:           kindMoney,
	domain.KPIShockedEBITDA:        kindMoney,
}

type formatter struct {
	printer *message.Printer
	loc     locale
	symbol  string
}

func newFormatter(loc locale, symbol string) formatter {
	return formatter{
		printer: message.NewPrinter(loc.tag),
		loc:     loc,
		symbol:  symbol,
	}
}

func roundInt(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

func (f formatter) format(key string, m domain.Metric) string {
	v, ok := m.Value()
	if !ok {
		return f.loc.undefined
	}

	switch kpiKinds[key] {
	case kindPercent:
		return f.printer.Sprintf("%.1f%%", utils.Round(v*100, 1))
	case kindRatio:
		return f.printer.Sprintf("%.2fx", utils.RoundWithTwoDecimalPlace(v))
	case kindYears:
		return f.printer.Sprintf("%d %s", roundInt(v), f.loc.years)
	case kindDays:
		return f.printer.Sprintf("%d %s", roundInt(v), f.loc.days)
	default:
		return f.printer.Sprintf("%s %d", f.symbol, roundInt(v))
	}
}
