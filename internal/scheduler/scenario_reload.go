package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/cfo-playbook-api/internal/config"
	"github.com/vfg2006/cfo-playbook-api/pkg/log"
)

//go:generate mockgen -source=scenario_reload.go -destination=mocks/job.go -package=mocks

// ScenarioReloadJobName é o tipo usado em /v1/cron/:type/run
const ScenarioReloadJobName = "scenarios"

var ErrJobRunning = errors.New("job já em execução")

// Job é um agendamento que também pode ser disparado manualmente
type Job interface {
	Name() string
	TriggerManualSync() error
	GetStatus() JobStatus
}

// Reloader é implementado pelo catálogo de cenários
type Reloader interface {
	Reload(ctx context.Context) (int, error)
}

type JobStatus struct {
	Name            string    `json:"name"`
	Running         bool      `json:"sync_running"`
	Cron            string    `json:"sync_cron"`
	Enabled         bool      `json:"sync_enabled"`
	LastStartedAt   time.Time `json:"last_sync_started_at"`
	LastCompletedAt time.Time `json:"last_sync_completed_at"`
	LastError       string    `json:"last_error,omitempty"`
	Scenarios       int       `json:"scenarios"`
}

// ScenarioReloadConfig representa a configuração do agendador de recarga de cenários
type ScenarioReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ScenarioReloadService relê periodicamente o arquivo de cenários
type ScenarioReloadService struct {
	scheduler           *gocron.Scheduler
	config              ScenarioReloadConfig
	catalog             Reloader
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
	lastCount           int
	now                 func() time.Time
}

func NewScenarioReloadService(catalog Reloader, appConfig *config.Config) *ScenarioReloadService {
	reloadConfig := ScenarioReloadConfig{
		CronSchedule: appConfig.ScenarioReload.CronSchedule,
		SyncEnabled:  appConfig.ScenarioReload.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"sync_enabled":  reloadConfig.SyncEnabled,
	}).Info("scheduler: scenario reload configuration loaded")

	return &ScenarioReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		catalog:   catalog,
		baseCtx:   context.Background(),
		now:       time.Now,
	}
}

func (s *ScenarioReloadService) Name() string {
	return ScenarioReloadJobName
}

// Start agenda a recarga e para o agendador quando o contexto for cancelado
func (s *ScenarioReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("scheduler: scenario reload disabled by configuration")
		return nil
	}

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: starting scenario reload")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.acquire() {
			log.L.Info("scheduler: scenario reload already running, skipping")
			return
		}
		s.reloadScenarios()
	})
	if err != nil {
		return fmt.Errorf("scheduler: schedule scenario reload: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: stopping scenario reload")
		s.scheduler.Stop()
	}()

	return nil
}

// acquire marca a execução como em andamento; retorna false se já houver uma
func (s *ScenarioReloadService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

// reloadScenarios deve ser chamado somente após acquire
func (s *ScenarioReloadService) reloadScenarios() {
	s.syncMutex.Lock()
	ctx := s.baseCtx
	startTime := s.lastSyncStartedAt
	s.syncMutex.Unlock()

	count, err := s.catalog.Reload(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastError = err.Error()
		log.L.WithError(err).Error("scheduler: scenario reload failed, keeping previous catalog")
		return
	}

	s.lastError = ""
	s.lastCount = count
	s.lastSyncCompletedAt = s.now()

	log.L.WithFields(log.Fields{
		"duration":  s.lastSyncCompletedAt.Sub(startTime).String(),
		"scenarios": count,
	}).Info("scheduler: scenario reload completed")
}

// TriggerManualSync dispara a recarga em background
func (s *ScenarioReloadService) TriggerManualSync() error {
	if !s.acquire() {
		log.L.Info("scheduler: scenario reload already running, ignoring manual request")
		return ErrJobRunning
	}

	log.L.Info("scheduler: manual scenario reload triggered")
	go s.reloadScenarios()
	return nil
}

// GetStatus retorna o status atual da recarga
func (s *ScenarioReloadService) GetStatus() JobStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return JobStatus{
		Name:            s.Name(),
		Running:         s.syncRunning,
		Cron:            s.config.CronSchedule,
		Enabled:         s.config.SyncEnabled,
		LastStartedAt:   s.lastSyncStartedAt,
		LastCompletedAt: s.lastSyncCompletedAt,
		LastError:       s.lastError,
		Scenarios:       s.lastCount,
	}
}
