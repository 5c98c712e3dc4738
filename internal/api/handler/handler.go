package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cfo-playbook-api/internal/scheduler"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/authenticating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/evaluating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/reporting"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/scenario"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
	"github.com/vfg2006/cfo-playbook-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: error encoding response")
	}
}

// decodeBody rejeita campos desconhecidos para não ignorar premissas digitadas errado
func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("handler: invalid request body")
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", map[string]string{"body": err.Error()})
}

// writeServiceError traduz erros dos casos de uso para o erro padronizado da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var evalErr *evaluating.EvaluationError
	var authErr *authenticating.AuthError

	switch {
	case errors.As(err, &evalErr):
		if evalErr.Code == apiErrors.ErrInvalidAssumptions {
			logger.Warn("handler: assumptions rejected")
			apiErrors.WriteError(w, evalErr.Code, "Assumptions out of accepted ranges", evalErr.Details)
			return
		}
		logger.Error("handler: evaluation failed")
		apiErrors.WriteError(w, evalErr.Code, "Evaluation failed", nil)

	case errors.As(err, &authErr) && authErr.Code != "":
		logger.Warn("handler: authentication failed")
		apiErrors.WriteError(w, authErr.Code, "Authentication failed", nil)

	case errors.Is(err, scenario.ErrScenarioNotFound):
		apiErrors.WriteError(w, apiErrors.ErrScenarioNotFound, "Scenario not found", nil)

	case errors.Is(err, scenario.ErrCatalogLoad), errors.Is(err, scenario.ErrInvalidScenario):
		logger.Error("handler: scenario catalog unavailable")
		apiErrors.WriteError(w, apiErrors.ErrCatalogLoad, "Scenario catalog could not be loaded", nil)

	case errors.Is(err, reporting.ErrUnsupportedLanguage), errors.Is(err, reporting.ErrUnsupportedCurrency):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, scheduler.ErrJobRunning):
		apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Job already running", nil)

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Warn("handler: request cancelled")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Request cancelled", nil)

	default:
		logger.Error("handler: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
	}
}
