package authenticating

import (
	"errors"
	"fmt"
)

// Erreurs d'authentification
var (
	ErrInvalidCredentials  = errors.New("identifiants invalides")
	ErrUserDisabled        = errors.New("utilisateur désactivé")
	ErrUserNotFound        = errors.New("utilisateur introuvable")
	ErrInvalidToken        = errors.New("token invalide")
	ErrMissingRequiredData = errors.New("données obligatoires absentes")
	ErrDatabaseOperation   = errors.New("erreur lors de l'accès aux données")
)

// AuthError est une erreur d'authentification enrichie du code d'erreur API
// et de l'utilisateur concerné
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError indique si l'erreur relève d'identifiants invalides
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled)
}

// NewAuthError crée une erreur d'authentification
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError crée une erreur d'authentification rattachée à un
// utilisateur
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
