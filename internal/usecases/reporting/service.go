package reporting

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"golang.org/x/text/encoding/charmap"
)

//go:generate mockgen -source=service.go -destination=mocks/builder.go -package=mocks

var (
	ErrUnsupportedLanguage = errors.New("idioma não suportado")
	ErrUnsupportedCurrency = errors.New("moeda não suportada")
	ErrEmptyEvaluation     = errors.New("avaliação vazia")
)

// Options controla idioma, moeda e empresa do relatório
type Options struct {
	Language string
	Currency string
	Company  string
}

// LabeledValue é uma linha rótulo -> valor formatado
type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report é o payload entregue aos geradores de PDF/PPTX/CSV
type Report struct {
	EvaluationID    string         `json:"evaluation_id"`
	Title           string         `json:"title"`
	ExecutiveTitle  string         `json:"executive_title"`
	Language        string         `json:"language"`
	Currency        string         `json:"currency"`
	KPIs            []LabeledValue `json:"kpis"`
	Recommendations []string       `json:"recommendations"`
	GeneratedAt     time.Time      `json:"generated_at"`
}

type Builder interface {
	Build(evaluation *domain.Evaluation, opts Options) (*Report, error)
}

type Service struct {
	defaults Options
	now      func() time.Time
}

func NewService(defaults Options) Builder {
	return &Service{
		defaults: defaults,
		now:      time.Now,
	}
}

func (s *Service) resolve(opts Options) Options {
	if opts.Language == "" {
		opts.Language = s.defaults.Language
	}
	if opts.Currency == "" {
		opts.Currency = s.defaults.Currency
	}
	if strings.TrimSpace(opts.Company) == "" {
		opts.Company = s.defaults.Company
	}

	opts.Language = strings.ToLower(opts.Language)
	opts.Currency = strings.ToUpper(opts.Currency)
	opts.Company = strings.TrimSpace(opts.Company)
	return opts
}

// Build arredonda e rotula os KPIs na ordem canônica, seguidos da data de extração
func (s *Service) Build(evaluation *domain.Evaluation, opts Options) (*Report, error) {
	if evaluation == nil {
		return nil, ErrEmptyEvaluation
	}

	opts = s.resolve(opts)

	loc, ok := locales[opts.Language]
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedLanguage, opts.Language)
	}

	symbol, ok := currencySymbols[opts.Currency]
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedCurrency, opts.Currency)
	}

	f := newFormatter(loc, symbol)
	generatedAt := s.now().UTC()

	kpis := make([]LabeledValue, 0, len(domain.KPIKeys)+1)
	for _, key := range domain.KPIKeys {
		kpis = append(kpis, LabeledValue{
			Label: loc.labels[key],
			Value: f.format(key, evaluation.KPIs.Get(key)),
		})
	}
	kpis = append(kpis, LabeledValue{Label: loc.dateLabel, Value: generatedAt.Format("2006-01-02")})

	recommendations := make([]string, 0, len(evaluation.Recommendations))
	for _, r := range evaluation.Recommendations {
		recommendations = append(recommendations, loc.messages[r.MessageKey])
	}

	return &Report{
		EvaluationID:    evaluation.ID,
		Title:           opts.Company + " - " + loc.titleSuffix,
		ExecutiveTitle:  opts.Company + " " + loc.executiveSuffix,
		Language:        opts.Language,
		Currency:        opts.Currency,
		KPIs:            kpis,
		Recommendations: recommendations,
		GeneratedAt:     generatedAt,
	}, nil
}

var currencyCodes = strings.NewReplacer("€", "EUR", "£", "GBP", "$", "USD")

// SanitizeText troca símbolos de moeda pelo código ISO e substitui por "?" o que não
// cabe em Latin-1 (fontes padrão de PDF)
func SanitizeText(text string) string {
	text = currencyCodes.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if _, ok := charmap.ISO8859_1.EncodeRune(r); ok {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Sanitize devolve uma cópia do relatório com todos os textos seguros para Latin-1
func Sanitize(report *Report) *Report {
	if report == nil {
		return nil
	}

	out := *report
	out.Title = SanitizeText(report.Title)
	out.ExecutiveTitle = SanitizeText(report.ExecutiveTitle)

	out.KPIs = make([]LabeledValue, len(report.KPIs))
	for i, kv := range report.KPIs {
		out.KPIs[i] = LabeledValue{Label: SanitizeText(kv.Label), Value: SanitizeText(kv.Value)}
	}

	out.Recommendations = make([]string, len(report.Recommendations))
	for i, r := range report.Recommendations {
		out.Recommendations[i] = SanitizeText(r)
	}

	return &out
}
