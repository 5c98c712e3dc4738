package reporting

import (
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"golang.org/x/text/language"
)

const (
	LanguageEnglish = "en"
	LanguageItalian = "it"
)

type locale struct {
	tag             language.Tag
	undefined       string
	years           string
	days            string
	dateLabel       string
	titleSuffix     string
	executiveSuffix string
	labels          map[string]string
	messages        map[string]string
}

var locales = map[string]locale{
	LanguageEnglish: {
		tag:             language.English,
		undefined:       "N/A",
		years:           "Years",
		days:            "days",
		dateLabel:       "Extraction Date",
		titleSuffix:     "Strategic Report",
		executiveSuffix: "Executive",
		labels: map[string]string{
			domain.KPINPV:                  "NPV",
			domain.KPIIRR:                  "IRR",
			domain.KPIPaybackYears:         "Payback",
			domain.KPILTV:                  "LTV",
			domain.KPILTVCACRatio:          "LTV/CAC",
			domain.KPINetFinancialPosition: "Net Debt",
			domain.KPICCCDays:              "Cash Cycle (CCC)",
			domain.KPIBreakEvenRevenue:     "BEP (Value)",
			domain.KPISafetyMargin:         "Safety Margin",
			domain.KPIBaseEBITDA:           "Base EBITDA",
			domain.KPIShockedEBITDA:        "Stressed EBITDA",
		},
		messages: map[string]string{
			domain.MessageNPVOk:    "✅ Green Light: Project creates real value.",
			domain.MessageNPVKo:    "❌ Red Light: Project destroys wealth.",
			domain.MessageLiqOk:    "💧 Liquidity OK: Efficient cash cycle.",
			domain.MessageLiqKo:    "⚠️ Cash Alert: Cycle too long, risk of crisis.",
			domain.MessageSaaSOk:   "🚀 Healthy SaaS Engine: Great sales efficiency.",
			domain.MessageSaaSKo:   "🔻 Broken SaaS Engine: Acquisition cost too high.",
			domain.MessageStressOk: "🛡️ Resilient: Company withstands revenue shock.",
			domain.MessageStressKo: "🌪️ Fragile: Stress test pushes EBITDA to negative.",
		},
	},
	LanguageItalian: {
		tag:             language.Italian,
		undefined:       "N.D.",
		years:           "Anni",
		days:            "giorni",
		dateLabel:       "Data Estrazione",
		titleSuffix:     "Strategic Report",
		executiveSuffix: "Executive",
		labels: map[string]string{
			domain.KPINPV:                  "NPV (VAN)",
			domain.KPIIRR:                  "IRR (TIR)",
			domain.KPIPaybackYears:         "Payback",
			domain.KPILTV:                  "LTV",
			domain.KPILTVCACRatio:          "LTV/CAC",
			domain.KPINetFinancialPosition: "PFN",
			domain.KPICCCDays:              "Ciclo Cassa (CCC)",
			domain.KPIBreakEvenRevenue:     "BEP (Valore)",
			domain.KPISafetyMargin:         "Margine Sicurezza",
			domain.KPIBaseEBITDA:           "EBITDA Base",
			domain.KPIShockedEBITDA:        "EBITDA Stress",
		},
		messages: map[string]string{
			domain.MessageNPVOk:    "✅ Semaforo Verde: Il progetto crea valore economico reale.",
			domain.MessageNPVKo:    "❌ Semaforo Rosso: Il progetto distrugge ricchezza. Non approvare.",
			domain.MessageLiqOk:    "💧 Cassa OK: Nessuna tensione di liquidità a breve.",
			domain.MessageLiqKo:    "⚠️ Allerta Cassa: Ciclo troppo lungo, rischi di finire i soldi.",
			domain.MessageSaaSOk:   "🚀 Motore SaaS Sano: Ottima efficienza commerciale.",
			domain.MessageSaaSKo:   "🔻 Motore SaaS Rotto: Spendi troppo per acquisire clienti.",
			domain.MessageStressOk: "🛡️ Resiliente: L'azienda regge lo shock sui ricavi.",
			domain.MessageStressKo: "🌪️ Fragile: Lo stress test porta l'EBITDA in negativo.",
		},
	},
}

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}
