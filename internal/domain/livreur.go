package domain

import "time"

// LivreurStatus représente le statut d'un livreur dans le back office
type LivreurStatus string

const (
	LivreurStatusActif   LivreurStatus = "ACTIF"
	LivreurStatusInactif LivreurStatus = "INACTIF"
)

// Livreur représente un livreur connu du back office. C'est l'unité
// d'agrégation du rapport statistique quotidien.
type Livreur struct {
	ID        string        `json:"id"`
	Nom       string        `json:"nom"`
	Telephone *string       `json:"telephone"`
	Status    LivreurStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
