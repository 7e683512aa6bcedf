package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/mataweb/livraison-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// ListLivreurs retourne l'annuaire des livreurs. Le paramètre optionnel
// status filtre sur ACTIF ou INACTIF.
func ListLivreurs(repo repository.LivreurRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var statuses []domain.LivreurStatus

		if status := r.URL.Query().Get("status"); status != "" {
			switch domain.LivreurStatus(status) {
			case domain.LivreurStatusActif, domain.LivreurStatusInactif:
				statuses = append(statuses, domain.LivreurStatus(status))
			default:
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Statut inconnu: valeurs acceptées ACTIF, INACTIF", nil)
				return
			}
		}

		livreurs, err := repo.ListLivreurs(statuses)
		if err != nil {
			logrus.WithError(err).Error("Erreur lors de la récupération des livreurs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erreur lors de la récupération des livreurs", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(livreurs)
	}
}
