package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/evaluating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/reporting"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
	"github.com/vfg2006/cfo-playbook-api/pkg/log"
)

// EvaluationReportResponse junta a avaliação e o payload para os geradores de relatório
type EvaluationReportResponse struct {
	Evaluation *domain.Evaluation `json:"evaluation"`
	Report     *reporting.Report  `json:"report"`
}

// Evaluate roda o ciclo completo. Receita, CMV e opex omitidos no stress vêm do investimento.
func Evaluate(service evaluating.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.AssumptionsInput
		if err := decodeBody(r, &input); err != nil {
			writeDecodeError(w, r, err)
			return
		}

		evaluation, err := service.Evaluate(r.Context(), input.Resolve())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, evaluation)
	}
}

// EvaluateReport aceita ?lang=en|it&currency=EUR|USD|GBP&company=...&sanitize=true
func EvaluateReport(service evaluating.Evaluator, builder reporting.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		sanitize := false
		if raw := query.Get("sanitize"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "sanitize must be a boolean", nil)
				return
			}
			sanitize = parsed
		}

		var input domain.AssumptionsInput
		if err := decodeBody(r, &input); err != nil {
			writeDecodeError(w, r, err)
			return
		}

		evaluation, err := service.Evaluate(r.Context(), input.Resolve())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		report, err := builder.Build(evaluation, reporting.Options{
			Language: query.Get("lang"),
			Currency: query.Get("currency"),
			Company:  query.Get("company"),
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		if sanitize {
			report = reporting.Sanitize(report)
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"evaluation_id": evaluation.ID,
			"language":      report.Language,
		}).Debug("handler: report payload built")

		writeJSON(w, r, http.StatusOK, EvaluationReportResponse{Evaluation: evaluation, Report: report})
	}
}

// evaluateModule decodifica as premissas de um único módulo e devolve só o resultado dele
func evaluateModule[A any, R any](evaluate func(ctx context.Context, a A) (*R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var assumptions A
		if err := decodeBody(r, &assumptions); err != nil {
			writeDecodeError(w, r, err)
			return
		}

		result, err := evaluate(r.Context(), assumptions)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func EvaluateInvestment(service evaluating.Evaluator) http.HandlerFunc {
	return evaluateModule(service.EvaluateInvestment)
}

func EvaluateSaaS(service evaluating.Evaluator) http.HandlerFunc {
	return evaluateModule(service.EvaluateSaaS)
}

func EvaluateLiquidity(service evaluating.Evaluator) http.HandlerFunc {
	return evaluateModule(service.EvaluateLiquidity)
}

func EvaluateBreakEven(service evaluating.Evaluator) http.HandlerFunc {
	return evaluateModule(service.EvaluateBreakEven)
}

// EvaluateStress exige receita, CMV e opex; a derivação a partir do investimento só
// acontece no ciclo completo
func EvaluateStress(service evaluating.Evaluator) http.HandlerFunc {
	return evaluateModule(service.EvaluateStress)
}
