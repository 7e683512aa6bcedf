package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/mataweb/livraison-manager-api/internal/usecases/reporting"
	"github.com/mataweb/livraison-manager-api/pkg/apiErrors"
	"github.com/mataweb/livraison-manager-api/pkg/log"
	"github.com/mataweb/livraison-manager-api/pkg/utils"
)

// GetDailyLivreurStats sert le rapport statistique quotidien des livreurs.
// Les quatre paramètres de requête (date, seuil_mata, seuil_mlc,
// seuil_mata_panier) sont obligatoires.
func GetDailyLivreurStats(service reporting.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		date, err := utils.ParseDate(query.Get("date"))
		if err != nil || date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Paramètre date absent ou invalide (format attendu: AAAA-MM-JJ)", nil)
			return
		}

		seuils, err := parseSeuils(query)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSeuil, err.Error(), nil)
			return
		}

		report, err := service.GetDailyStats(*date, seuils)
		if err != nil {
			handleStatsError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"date":     report.Date,
			"livreurs": len(report.Details),
		}).Info("Rapport quotidien généré")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("Erreur lors de l'envoi du rapport")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'envoi du rapport", nil)
		}
	}
}

// GetDailyStatsSnapshot sert l'instantané persisté du jour demandé, tel que
// calculé par le planificateur avec les seuils par défaut. Le tableau de
// bord le lit sans déclencher de recalcul.
func GetDailyStatsSnapshot(repo repository.StatsSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil || date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Paramètre date absent ou invalide (format attendu: AAAA-MM-JJ)", nil)
			return
		}

		snapshot, err := repo.GetByDate(*date)
		if err != nil {
			logger.WithError(err).Error("Erreur lors de la lecture de l'instantané")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erreur lors de la lecture de l'instantané", nil)
			return
		}

		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Aucun instantané pour cette date", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithError(err).Error("Erreur lors de l'envoi de l'instantané")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'envoi de l'instantané", nil)
		}
	}
}

// parseSeuils lit les trois seuils obligatoires de la query string.
// Un seuil absent, non numérique ou négatif est rejeté.
func parseSeuils(query map[string][]string) (domain.SeuilSet, error) {
	var seuils domain.SeuilSet

	for _, param := range []struct {
		name  string
		value *int64
	}{
		{"seuil_mata", &seuils.Mata},
		{"seuil_mlc", &seuils.Mlc},
		{"seuil_mata_panier", &seuils.MataPanier},
	} {
		values, ok := query[param.name]
		if !ok || len(values) == 0 || values[0] == "" {
			return domain.SeuilSet{}, errors.New("Paramètre " + param.name + " obligatoire")
		}

		parsed, err := strconv.ParseInt(values[0], 10, 64)
		if err != nil || parsed < 0 {
			return domain.SeuilSet{}, errors.New("Paramètre " + param.name + " invalide: entier positif attendu")
		}

		*param.value = parsed
	}

	return seuils, nil
}

func handleStatsError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, reporting.ErrDateInvalide):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Date invalide", nil)

	case errors.Is(err, reporting.ErrSeuilInvalide):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSeuil, "Seuil invalide", nil)

	case errors.Is(err, reporting.ErrDonneesIndisponibles):
		logger.WithError(err).Error("Données amont indisponibles pour le rapport quotidien")
		apiErrors.WriteError(w, apiErrors.ErrUpstreamData, "Données amont indisponibles, rapport non généré", nil)

	default:
		logger.WithError(err).Error("Erreur lors de la génération du rapport quotidien")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de la génération du rapport", nil)
	}
}
