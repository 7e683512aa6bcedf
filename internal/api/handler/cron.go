package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/mataweb/livraison-manager-api/internal/scheduler"
	"github.com/mataweb/livraison-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Types de cron jobs déclenchables manuellement
const (
	CronJobTypeDailyStats = "daily-stats"
)

// CronJobServices regroupe les planificateurs exposés aux endpoints de cron
type CronJobServices struct {
	DailyStatsSyncService *scheduler.DailyStatsSyncService
}

// RunCronJob déclenche manuellement un cron job
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Type de cron job non spécifié", nil)
			return
		}

		switch cronType {
		case CronJobTypeDailyStats:
			if services.DailyStatsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Planificateur d'instantanés non disponible", nil)
				return
			}
			services.DailyStatsSyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Type de cron job invalide. Valeur acceptée: daily-stats", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job déclenché manuellement")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job déclenché avec succès",
			"type":    cronType,
		})
	}
}

// GetCronStatus retourne l'état des cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			CronJobTypeDailyStats: services.DailyStatsSyncService.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
