package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Codes d'erreur exposés aux clients de l'API
const (
	// Erreurs d'authentification (AUTH_xxx)
	ErrInvalidCredentials    = "AUTH_001" // Identifiants invalides
	ErrUserDisabled          = "AUTH_002" // Utilisateur désactivé
	ErrUserNotFound          = "AUTH_003" // Utilisateur introuvable
	ErrInvalidToken          = "AUTH_004" // Token invalide
	ErrExpiredToken          = "AUTH_005" // Token expiré
	ErrInsufficientPrivilege = "AUTH_006" // Privilèges insuffisants

	// Erreurs de validation (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // Requête invalide
	ErrMissingRequiredData = "VAL_002" // Données obligatoires absentes
	ErrInvalidDate         = "VAL_003" // Date absente ou inexploitable
	ErrInvalidSeuil        = "VAL_004" // Seuil absent ou négatif

	// Erreurs serveur (SRV_xxx)
	ErrInternalServer     = "SRV_001" // Erreur interne
	ErrDatabaseOperation  = "SRV_002" // Erreur d'accès aux données
	ErrUpstreamData       = "SRV_003" // Données amont indisponibles
	ErrNotFound           = "SRV_004" // Ressource introuvable
	ErrServiceUnavailable = "SRV_005" // Service indisponible
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidDate:           http.StatusBadRequest,
	ErrInvalidSeuil:          http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrUpstreamData:          http.StatusBadGateway,
	ErrNotFound:              http.StatusNotFound,
	ErrServiceUnavailable:    http.StatusServiceUnavailable,
}

// APIError est l'enveloppe d'erreur standard de l'API
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError écrit l'erreur standardisée dans la réponse HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError enveloppe une erreur Go dans une erreur d'API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erreur inconnue",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
