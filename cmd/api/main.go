package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vfg2006/cfo-playbook-api/internal/api"
	"github.com/vfg2006/cfo-playbook-api/internal/api/handler"
	"github.com/vfg2006/cfo-playbook-api/internal/config"
	"github.com/vfg2006/cfo-playbook-api/internal/observability"
	"github.com/vfg2006/cfo-playbook-api/internal/scheduler"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/authenticating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/evaluating"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/reporting"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/scenario"
	"github.com/vfg2006/cfo-playbook-api/pkg/log"
)

func main() {
	// Formato dos logs antes da configuração ser lida
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("main: log level set to %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(cfg.Metrics.Namespace, registry)

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		log.L.WithError(err).Fatal("main: invalid AUTH_USERS")
	}

	evaluator := evaluating.NewService(metrics)

	catalog := scenario.NewService(cfg.Scenarios.File, metrics)
	count, err := catalog.Reload(ctx)
	if err != nil {
		log.L.WithError(err).Fatal("main: scenario catalog could not be loaded")
	}
	log.L.WithField("scenarios", count).Info("main: scenario catalog loaded")

	reports := reporting.NewService(reporting.Options{
		Language: cfg.Report.DefaultLanguage,
		Currency: cfg.Report.DefaultCurrency,
		Company:  cfg.Report.DefaultCompany,
	})

	scenarioReloadService := scheduler.NewScenarioReloadService(catalog, cfg)
	if err := scenarioReloadService.Start(ctx); err != nil {
		log.L.WithError(err).Error("main: scenario reload scheduler not started")
	}

	server, err := api.New(cfg, api.Services{
		Evaluator:      evaluator,
		Reports:        reports,
		Catalog:        catalog,
		Authenticator:  authenticator,
		CronJobs:       handler.CronJobServices{ScenarioReload: scenarioReloadService},
		MetricsHandler: metrics.Handler(),
	})
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
