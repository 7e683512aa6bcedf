package domain

import "time"

// StatsSnapshot est un instantané persisté du rapport quotidien, calculé
// par le planificateur avec les seuils par défaut. Sert au tableau de bord
// sans recalcul à chaque affichage.
type StatsSnapshot struct {
	ID        string            `json:"id"`
	Date      time.Time         `json:"date"`
	Report    *DailyStatsReport `json:"report"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
