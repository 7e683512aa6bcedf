package middleware

import (
	"net/http"

	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/mataweb/livraison-manager-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Identifiants des rôles
const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleLivreur = 3
)

// RoleMiddleware restreint l'accès aux rôles listés dans allowedRoles
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentative d'accès sans authentification")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Utilisateur non authentifié", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Accès refusé pour l'utilisateur ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Vous n'avez pas la permission d'accéder à cette ressource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly n'autorise que les administrateurs
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

// AdminOrManager autorise les administrateurs et les gestionnaires
func AdminOrManager() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleManager})
}

// LivreurOnly n'autorise que les comptes livreur (remontée GPS)
func LivreurOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleLivreur})
}

// AllRoles autorise tous les rôles connus
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleManager, RoleLivreur})
}
