package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/mataweb/livraison-manager-api/pkg/apiErrors"
	"github.com/mataweb/livraison-manager-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ListCommandes retourne les commandes du jour demandé, filtrables par
// livreur via le paramètre optionnel livreur_id.
func ListCommandes(repo repository.CommandeRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		date, err := utils.ParseDate(query.Get("date"))
		if err != nil || date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Paramètre date absent ou invalide (format attendu: AAAA-MM-JJ)", nil)
			return
		}

		var commandes []*domain.Commande
		if livreurID := query.Get("livreur_id"); livreurID != "" {
			commandes, err = repo.GetByLivreurAndDate(livreurID, *date)
		} else {
			commandes, err = repo.GetByDate(*date)
		}
		if err != nil {
			logrus.WithError(err).Error("Erreur lors de la récupération des commandes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erreur lors de la récupération des commandes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(commandes)
	}
}
