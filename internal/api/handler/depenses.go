package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/pkg/apiErrors"
	"github.com/mataweb/livraison-manager-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ListDepenses retourne les dépenses du jour demandé.
func ListDepenses(repo repository.DepenseRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil || date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Paramètre date absent ou invalide (format attendu: AAAA-MM-JJ)", nil)
			return
		}

		depenses, err := repo.GetByDate(*date)
		if err != nil {
			logrus.WithError(err).Error("Erreur lors de la récupération des dépenses")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erreur lors de la récupération des dépenses", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(depenses)
	}
}
