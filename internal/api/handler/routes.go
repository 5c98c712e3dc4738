package handler

import (
	"net/http"

	"github.com/vfg2006/cfo-playbook-api/internal/api/handler/router"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/authenticating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/evaluating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/reporting"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/scenario"
	"github.com/vfg2006/cfo-playbook-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics expõe o handler do Prometheus; a rota é pública no AuthMiddleware
func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Evaluations(service evaluating.Evaluator, builder reporting.Builder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/evaluations",
			Method:      http.MethodPost,
			Handler:     Evaluate(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/evaluations/report",
			Method:      http.MethodPost,
			Handler:     EvaluateReport(service, builder),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Modules expõe cada módulo de forma isolada
func Modules(service evaluating.Evaluator) []router.Route {
	modules := []struct {
		path    string
		handler http.Handler
	}{
		{"/v1/investment/evaluate", EvaluateInvestment(service)},
		{"/v1/saas/evaluate", EvaluateSaaS(service)},
		{"/v1/liquidity/evaluate", EvaluateLiquidity(service)},
		{"/v1/breakeven/evaluate", EvaluateBreakEven(service)},
		{"/v1/stress/evaluate", EvaluateStress(service)},
	}

	routes := make([]router.Route, 0, len(modules))
	for _, m := range modules {
		routes = append(routes, router.Route{
			Path:        m.path,
			Method:      http.MethodPost,
			Handler:     m.handler,
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		})
	}
	return routes
}

func Scenarios(catalog scenario.Catalog, service evaluating.Evaluator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/scenarios",
			Method:      http.MethodGet,
			Handler:     ListScenarios(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/scenarios/:name",
			Method:      http.MethodGet,
			Handler:     GetScenario(catalog),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/scenarios/:name/evaluation",
			Method:      http.MethodGet,
			Handler:     EvaluateScenario(catalog, service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
