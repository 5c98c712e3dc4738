package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cfo-playbook-api/internal/scheduler"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
	"github.com/vfg2006/cfo-playbook-api/pkg/log"
)

// CronJobTypeAll dispara todos os jobs registrados
const CronJobTypeAll = "all"

// CronJobServices contém os jobs que podem ser executados manualmente
type CronJobServices struct {
	ScenarioReload scheduler.Job
}

func (s CronJobServices) jobs() []scheduler.Job {
	var jobs []scheduler.Job
	if s.ScenarioReload != nil {
		jobs = append(jobs, s.ScenarioReload)
	}
	return jobs
}

type RunCronJobResponse struct {
	Message string   `json:"message"`
	Type    string   `json:"type"`
	Jobs    []string `json:"jobs"`
}

// RunCronJob executa manualmente uma cron job específica (ou todas com "all")
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		var selected []scheduler.Job
		for _, job := range services.jobs() {
			if cronType == CronJobTypeAll || job.Name() == cronType {
				selected = append(selected, job)
			}
		}

		if len(selected) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Unknown cron job type", map[string]string{"type": cronType})
			return
		}

		started := make([]string, 0, len(selected))
		for _, job := range selected {
			if err := job.TriggerManualSync(); err != nil {
				writeServiceError(w, r, err)
				return
			}
			started = append(started, job.Name())
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"job":  cronType,
			"jobs": started,
		}).Info("cron: manual run triggered")

		writeJSON(w, r, http.StatusAccepted, RunCronJobResponse{
			Message: "Cron job started",
			Type:    cronType,
			Jobs:    started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs por nome
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]scheduler.JobStatus)
		for _, job := range services.jobs() {
			status[job.Name()] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
