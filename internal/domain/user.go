package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User est un utilisateur du back office (gestionnaire ou livreur).
type User struct {
	ID           int        `json:"id"`
	Nom          string     `json:"nom"`
	Prenom       string     `json:"prenom"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	// LivreurID est renseigné pour les comptes de rôle livreur
	LivreurID *string    `json:"livreur_id"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Claims porte les informations utilisateur embarquées dans le token JWT.
type Claims struct {
	UserID        int
	UserNom       string
	UserPrenom    string
	UserEmail     string
	UserActive    bool
	UserRoleID    int
	UserLivreurID *string
	jwt.RegisteredClaims
}
