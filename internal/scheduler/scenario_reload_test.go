package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cfo-playbook-api/internal/config"
)

// blockingReloader segura o Reload até receber um valor em release
type blockingReloader struct {
	started chan struct{}
	release chan error
	count   int
}

func newBlockingReloader(count int) *blockingReloader {
	return &blockingReloader{
		started: make(chan struct{}, 1),
		release: make(chan error),
		count:   count,
	}
}

func (r *blockingReloader) Reload(ctx context.Context) (int, error) {
	r.started <- struct{}{}
	if err := <-r.release; err != nil {
		return 0, err
	}
	return r.count, nil
}

func newTestReloadService(reloader Reloader, enabled bool) *ScenarioReloadService {
	cfg := &config.Config{
		ScenarioReload: config.ScenarioReload{
			CronSchedule: "*/15 * * * *",
			Enabled:      enabled,
		},
	}
	s := NewScenarioReloadService(reloader, cfg)
	s.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestTriggerManualSync(t *testing.T) {
	reloader := newBlockingReloader(3)
	s := newTestReloadService(reloader, true)

	require.NoError(t, s.TriggerManualSync())
	<-reloader.started

	status := s.GetStatus()
	assert.True(t, status.Running)
	assert.Equal(t, ScenarioReloadJobName, status.Name)

	// Segunda solicitação enquanto a primeira está em andamento
	assert.ErrorIs(t, s.TriggerManualSync(), ErrJobRunning)

	reloader.release <- nil

	assert.Eventually(t, func() bool {
		return !s.GetStatus().Running
	}, time.Second, 5*time.Millisecond)

	status = s.GetStatus()
	assert.Equal(t, 3, status.Scenarios)
	assert.Empty(t, status.LastError)
	assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), status.LastCompletedAt)
	assert.True(t, status.Enabled)
	assert.Equal(t, "*/15 * * * *", status.Cron)
}

func TestTriggerManualSync_ReloadFailure(t *testing.T) {
	reloader := newBlockingReloader(0)
	s := newTestReloadService(reloader, true)

	require.NoError(t, s.TriggerManualSync())
	<-reloader.started
	reloader.release <- errors.New("yaml: line 3: did not find expected key")

	assert.Eventually(t, func() bool {
		return !s.GetStatus().Running
	}, time.Second, 5*time.Millisecond)

	status := s.GetStatus()
	assert.Contains(t, status.LastError, "did not find expected key")
	assert.True(t, status.LastCompletedAt.IsZero())

	// Após a falha uma nova execução é aceita
	require.NoError(t, s.TriggerManualSync())
	<-reloader.started
	reloader.release <- nil
}

func TestStart_Disabled(t *testing.T) {
	s := newTestReloadService(newBlockingReloader(0), false)

	assert.NoError(t, s.Start(context.Background()))
	assert.False(t, s.scheduler.IsRunning())
}

func TestStart_InvalidCron(t *testing.T) {
	s := newTestReloadService(newBlockingReloader(0), true)
	s.config.CronSchedule = "not a cron"

	assert.Error(t, s.Start(context.Background()))
}

func TestStart_StopsWithContext(t *testing.T) {
	s := newTestReloadService(newBlockingReloader(0), true)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	assert.True(t, s.scheduler.IsRunning())

	cancel()
	assert.Eventually(t, func() bool {
		return !s.scheduler.IsRunning()
	}, time.Second, 5*time.Millisecond)
}
