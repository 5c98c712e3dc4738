package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/evaluating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/scenario"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
)

func ListScenarios(catalog scenario.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, catalog.List())
	}
}

func GetScenario(catalog scenario.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Scenario name is required", nil)
			return
		}

		sc, err := catalog.Get(name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, sc)
	}
}

// EvaluateScenario roda o ciclo completo sobre as premissas de um cenário do catálogo
func EvaluateScenario(catalog scenario.Catalog, service evaluating.Evaluator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Scenario name is required", nil)
			return
		}

		sc, err := catalog.Get(name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		evaluation, err := service.Evaluate(r.Context(), sc.Assumptions)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, evaluation)
	}
}
