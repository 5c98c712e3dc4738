package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cfo-playbook-api/internal/api/handler/router"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"github.com/vfg2006/cfo-playbook-api/internal/scheduler"
	schedmocks "github.com/vfg2006/cfo-playbook-api/internal/scheduler/mocks"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/cfo-playbook-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/evaluating"
	evalmocks "github.com/vfg2006/cfo-playbook-api/internal/usecases/evaluating/mocks"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/reporting"
	reportmocks "github.com/vfg2006/cfo-playbook-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/scenario"
	scenariomocks "github.com/vfg2006/cfo-playbook-api/internal/usecases/scenario/mocks"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
	"github.com/vfg2006/cfo-playbook-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var (
	adminClaims  = &domain.Claims{UserEmail: "cfo@example.com", UserRoleID: domain.RoleAdmin}
	viewerClaims = &domain.Claims{UserEmail: "board@example.com", UserRoleID: domain.RoleViewer}
)

// serve executa a requisição pelo router, com as claims já no contexto como o AuthMiddleware faria
func serve(routes []router.Route, claims *domain.Claims, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func sampleEvaluation() *domain.Evaluation {
	return &domain.Evaluation{
		ID:          "EVAL00000001",
		Assumptions: domain.DefaultAssumptions(),
		KPIs:        domain.KPISet{domain.KPINPV: domain.Defined(107183.14)},
		Recommendations: []domain.Recommendation{
			{Check: domain.CheckInvestment, Polarity: domain.PolarityPass, MessageKey: domain.MessageNPVOk},
		},
	}
}

const validBody = `{
	"investment": {"initial_outlay": 500000, "horizon_years": 5, "discount_rate": 0.1, "year1_revenue": 300000,
		"revenue_growth": 0.15, "cogs_rate": 0.4, "year1_opex": 50000, "opex_growth": 0.03, "tax_rate": 0.28},
	"saas": {"arr": 1000000, "monthly_churn": 0.02, "arpu": 500, "cac": 4000},
	"liquidity": {"cash": 150000, "long_term_debt": 400000, "dso": 60, "dio": 45, "dpo": 90},
	"break_even": {"unit_price": 100, "unit_variable_cost": 60, "fixed_costs": 150000, "volume": 5000},
	"stress": {"shock_pct": -20}
}`

func TestEvaluate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evaluator := evalmocks.NewMockEvaluator(ctrl)
	builder := reportmocks.NewMockBuilder(ctrl)
	routes := Evaluations(evaluator, builder)

	tests := []struct {
		name       string
		body       string
		claims     *domain.Claims
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{
			name:   "avaliação completa",
			body:   validBody,
			claims: viewerClaims,
			setup: func() {
				evaluator.EXPECT().
					Evaluate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a domain.Assumptions) (*domain.Evaluation, error) {
						// stress sem base herda o ano 1 do investimento
						assert.Equal(t, domain.StressFromInvestment(a.Investment, -20), a.Stress)
						assert.Equal(t, 5, a.Investment.HorizonYears)
						return sampleEvaluation(), nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "stress com receita zero explícita",
			body:   strings.Replace(validBody, `"stress": {"shock_pct": -20}`, `"stress": {"year1_revenue": 0, "shock_pct": -20}`, 1),
			claims: viewerClaims,
			setup: func() {
				evaluator.EXPECT().
					Evaluate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a domain.Assumptions) (*domain.Evaluation, error) {
						assert.Equal(t, 0.0, a.Stress.Year1Revenue)
						assert.Equal(t, 0.4, a.Stress.COGSRate)
						assert.Equal(t, 50000.0, a.Stress.Year1Opex)
						return sampleEvaluation(), nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "json inválido",
			body:       `{"investment":`,
			claims:     adminClaims,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "campo desconhecido",
			body:       `{"investmnet": {}}`,
			claims:     adminClaims,
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "premissas fora do intervalo",
			body:   validBody,
			claims: adminClaims,
			setup: func() {
				evaluator.EXPECT().
					Evaluate(gomock.Any(), gomock.Any()).
					Return(nil, &evaluating.EvaluationError{
						Err:     evaluating.ErrInvalidAssumptions,
						Code:    apiErrors.ErrInvalidAssumptions,
						Details: map[string]string{"investment.horizon_years": "lte=15"},
					})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apiErrors.ErrInvalidAssumptions,
		},
		{
			name:       "sem autenticação",
			body:       validBody,
			setup:      func() {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(routes, tt.claims, http.MethodPost, "/v1/evaluations", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
				return
			}

			var evaluation domain.Evaluation
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &evaluation))
			assert.Equal(t, "EVAL00000001", evaluation.ID)
			npv, ok := evaluation.KPIs.Get(domain.KPINPV).Value()
			assert.True(t, ok)
			assert.Equal(t, 107183.14, npv)
		})
	}
}

func TestEvaluate_ValidationDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evaluator := evalmocks.NewMockEvaluator(ctrl)
	evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, &evaluating.EvaluationError{
		Err:     evaluating.ErrInvalidAssumptions,
		Code:    apiErrors.ErrInvalidAssumptions,
		Details: map[string]string{"saas.monthly_churn": "lte=1"},
	})

	rec := serve(Evaluations(evaluator, nil), adminClaims, http.MethodPost, "/v1/evaluations", validBody)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "lte=1", body.Details["saas.monthly_churn"])
}

func TestEvaluateReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evaluator := evalmocks.NewMockEvaluator(ctrl)
	builder := reportmocks.NewMockBuilder(ctrl)
	routes := Evaluations(evaluator, builder)

	report := &reporting.Report{
		EvaluationID: "EVAL00000001",
		Title:        "Rossi S.p.A. - Report Strategico",
		Language:     "it",
		Currency:     "EUR",
		KPIs:         []reporting.LabeledValue{{Label: "NPV", Value: "€ 107.183"}},
	}

	t.Run("opções da query", func(t *testing.T) {
		evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(sampleEvaluation(), nil)
		builder.EXPECT().
			Build(gomock.Any(), reporting.Options{Language: "it", Currency: "EUR", Company: "Rossi S.p.A."}).
			Return(report, nil)

		rec := serve(routes, adminClaims, http.MethodPost, "/v1/evaluations/report?lang=it&currency=EUR&company=Rossi+S.p.A.", validBody)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp EvaluationReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "EVAL00000001", resp.Evaluation.ID)
		assert.Equal(t, "€ 107.183", resp.Report.KPIs[0].Value)
	})

	t.Run("sanitizado para latin-1", func(t *testing.T) {
		evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(sampleEvaluation(), nil)
		builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(report, nil)

		rec := serve(routes, adminClaims, http.MethodPost, "/v1/evaluations/report?sanitize=true", validBody)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp EvaluationReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "EUR 107.183", resp.Report.KPIs[0].Value)
	})

	t.Run("idioma não suportado", func(t *testing.T) {
		evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(sampleEvaluation(), nil)
		builder.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, reporting.ErrUnsupportedLanguage)

		rec := serve(routes, adminClaims, http.MethodPost, "/v1/evaluations/report?lang=pt", validBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("sanitize inválido", func(t *testing.T) {
		rec := serve(routes, adminClaims, http.MethodPost, "/v1/evaluations/report?sanitize=talvez", validBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestModuleEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evaluator := evalmocks.NewMockEvaluator(ctrl)
	routes := Modules(evaluator)

	t.Run("investimento", func(t *testing.T) {
		evaluator.EXPECT().
			EvaluateInvestment(gomock.Any(), domain.InvestmentAssumptions{InitialOutlay: 1000, HorizonYears: 3}).
			Return(&domain.InvestmentResult{NPV: 12.5, PaybackYears: domain.Defined(2)}, nil)

		rec := serve(routes, viewerClaims, http.MethodPost, "/v1/investment/evaluate", `{"initial_outlay": 1000, "horizon_years": 3}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"npv":12.5`)
	})

	t.Run("saas", func(t *testing.T) {
		evaluator.EXPECT().
			EvaluateSaaS(gomock.Any(), domain.SaaSAssumptions{ARR: 1, MonthlyChurn: 0, ARPU: 500, CAC: 4000}).
			Return(&domain.SaaSResult{LTV: domain.Undefined()}, nil)

		rec := serve(routes, viewerClaims, http.MethodPost, "/v1/saas/evaluate", `{"arr": 1, "monthly_churn": 0, "arpu": 500, "cac": 4000}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ltv":null`)
	})

	t.Run("liquidez", func(t *testing.T) {
		evaluator.EXPECT().EvaluateLiquidity(gomock.Any(), gomock.Any()).Return(&domain.LiquidityResult{CCCDays: 15}, nil)

		rec := serve(routes, viewerClaims, http.MethodPost, "/v1/liquidity/evaluate", `{"dso": 60, "dio": 45, "dpo": 90}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("break-even", func(t *testing.T) {
		evaluator.EXPECT().EvaluateBreakEven(gomock.Any(), gomock.Any()).Return(&domain.BreakEvenResult{Revenue: 375000, Reachable: true}, nil)

		rec := serve(routes, viewerClaims, http.MethodPost, "/v1/breakeven/evaluate", `{"unit_price": 100}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("stress inválido", func(t *testing.T) {
		evaluator.EXPECT().EvaluateStress(gomock.Any(), gomock.Any()).Return(nil, &evaluating.EvaluationError{
			Err:     evaluating.ErrInvalidAssumptions,
			Code:    apiErrors.ErrInvalidAssumptions,
			Details: map[string]string{"stress.shock_pct": "gte=-100"},
		})

		rec := serve(routes, viewerClaims, http.MethodPost, "/v1/stress/evaluate", `{"shock_pct": -150}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("cancelado", func(t *testing.T) {
		evaluator.EXPECT().EvaluateStress(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

		rec := serve(routes, viewerClaims, http.MethodPost, "/v1/stress/evaluate", `{"shock_pct": -10}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestScenarios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := scenariomocks.NewMockCatalog(ctrl)
	evaluator := evalmocks.NewMockEvaluator(ctrl)
	routes := Scenarios(catalog, evaluator)

	recession := &domain.Scenario{Name: "recession", Assumptions: domain.DefaultAssumptions()}
	recession.Assumptions.Stress.ShockPct = -40

	t.Run("lista", func(t *testing.T) {
		catalog.EXPECT().List().Return(domain.ScenarioList{
			Scenarios: []domain.ScenarioSummary{{Name: "base"}, {Name: "recession"}},
		})

		rec := serve(routes, viewerClaims, http.MethodGet, "/v1/scenarios", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var list domain.ScenarioList
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list.Scenarios, 2)
	})

	t.Run("detalhe", func(t *testing.T) {
		catalog.EXPECT().Get("recession").Return(recession, nil)

		rec := serve(routes, viewerClaims, http.MethodGet, "/v1/scenarios/recession", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"shock_pct":-40`)
	})

	t.Run("inexistente", func(t *testing.T) {
		catalog.EXPECT().Get("boom").Return(nil, scenario.ErrScenarioNotFound)

		rec := serve(routes, viewerClaims, http.MethodGet, "/v1/scenarios/boom", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrScenarioNotFound, decodeAPIError(t, rec).Code)
	})

	t.Run("avaliação do cenário", func(t *testing.T) {
		catalog.EXPECT().Get("recession").Return(recession, nil)
		evaluator.EXPECT().Evaluate(gomock.Any(), recession.Assumptions).Return(sampleEvaluation(), nil)

		rec := serve(routes, viewerClaims, http.MethodGet, "/v1/scenarios/recession/evaluation", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("catálogo indisponível", func(t *testing.T) {
		catalog.EXPECT().Get("recession").Return(nil, scenario.ErrCatalogLoad)

		rec := serve(routes, viewerClaims, http.MethodGet, "/v1/scenarios/recession/evaluation", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrCatalogLoad, decodeAPIError(t, rec).Code)
	})
}

func TestCronJobs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := schedmocks.NewMockJob(ctrl)
	job.EXPECT().Name().Return(scheduler.ScenarioReloadJobName).AnyTimes()
	routes := CronJobs(CronJobServices{ScenarioReload: job})

	tests := []struct {
		name       string
		claims     *domain.Claims
		target     string
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{
			name:       "dispara recarga",
			claims:     adminClaims,
			target:     "/v1/cron/scenarios/run",
			setup:      func() { job.EXPECT().TriggerManualSync().Return(nil) },
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "dispara todos",
			claims:     adminClaims,
			target:     "/v1/cron/all/run",
			setup:      func() { job.EXPECT().TriggerManualSync().Return(nil) },
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "já em execução",
			claims:     adminClaims,
			target:     "/v1/cron/scenarios/run",
			setup:      func() { job.EXPECT().TriggerManualSync().Return(scheduler.ErrJobRunning) },
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrJobRunning,
		},
		{
			name:       "job desconhecido",
			claims:     adminClaims,
			target:     "/v1/cron/meta/run",
			setup:      func() {},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrUnknownJob,
		},
		{
			name:       "viewer não pode disparar",
			claims:     viewerClaims,
			target:     "/v1/cron/scenarios/run",
			setup:      func() {},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(routes, tt.claims, http.MethodPost, tt.target, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}

	t.Run("status", func(t *testing.T) {
		job.EXPECT().GetStatus().Return(scheduler.JobStatus{Name: "scenarios", Cron: "*/15 * * * *", Scenarios: 3})

		rec := serve(routes, adminClaims, http.MethodGet, "/v1/cron/status", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var status map[string]scheduler.JobStatus
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.Equal(t, 3, status["scenarios"].Scenarios)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := authmocks.NewMockAuthenticator(ctrl)
	routes := Authentication(auth)

	t.Run("sucesso", func(t *testing.T) {
		auth.EXPECT().LoginUser("cfo@example.com", "s3cret").Return("jwt-token", nil)

		rec := serve(routes, nil, http.MethodPost, "/v1/login", `{"email":"cfo@example.com","password":"s3cret"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "jwt-token", resp.Token)
	})

	t.Run("credenciais inválidas", func(t *testing.T) {
		auth.EXPECT().LoginUser("cfo@example.com", "wrong").Return("", &authenticating.AuthError{
			Err:  authenticating.ErrInvalidCredentials,
			Code: apiErrors.ErrInvalidCredentials,
		})

		rec := serve(routes, nil, http.MethodPost, "/v1/login", `{"email":"cfo@example.com","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeAPIError(t, rec).Code)
	})

	t.Run("me", func(t *testing.T) {
		rec := serve(routes, viewerClaims, http.MethodGet, "/v1/me", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var me MeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
		assert.Equal(t, MeResponse{Email: "board@example.com", Role: "viewer"}, me)
	})
}

func TestHealthcheck(t *testing.T) {
	rec := serve(Healthcheck(), nil, http.MethodGet, "/healthcheck", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthcheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}
