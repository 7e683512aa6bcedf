package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/mataweb/livraison-manager-api/internal/usecases/tracking"
	"github.com/mataweb/livraison-manager-api/pkg/apiErrors"
	"github.com/mataweb/livraison-manager-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type RecordPositionRequest struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	RecordedAt *time.Time `json:"recorded_at,omitempty"`
}

// RecordPosition enregistre la dernière position connue du livreur connecté.
// L'identifiant livreur vient du token, jamais du corps de la requête.
func RecordPosition(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Utilisateur non authentifié", nil)
			return
		}

		if userClaims.UserLivreurID == nil || *userClaims.UserLivreurID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Compte non rattaché à un livreur", nil)
			return
		}

		var req RecordPositionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format de requête invalide", nil)
			return
		}

		recordedAt := time.Time{}
		if req.RecordedAt != nil {
			recordedAt = *req.RecordedAt
		}

		err := service.RecordPosition(*userClaims.UserLivreurID, req.Latitude, req.Longitude, recordedAt)
		if err != nil {
			handleTrackingError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListLastPositions retourne la dernière position connue de chaque livreur.
func ListLastPositions(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positions, err := service.ListLastPositions()
		if err != nil {
			logrus.WithError(err).Error("Erreur lors de la récupération des positions")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erreur lors de la récupération des positions", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(positions)
	}
}

func handleTrackingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tracking.ErrPositionInvalide):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, tracking.ErrLivreurInconnu):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Livreur introuvable", nil)

	default:
		logrus.WithError(err).Error("Erreur lors de l'enregistrement de la position")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erreur lors de l'enregistrement de la position", nil)
	}
}
