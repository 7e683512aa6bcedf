package domain

import "time"

// Position est la dernière position GPS connue d'un livreur. Seule la
// dernière position est conservée, il n'y a pas d'historique de trajet.
type Position struct {
	LivreurID  string    `json:"livreur_id"`
	LivreurNom string    `json:"livreur_nom,omitempty"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
