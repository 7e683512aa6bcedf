package domain

import "time"

// CategorieNonCategorise est le seau par défaut pour les dépenses sans
// catégorie exploitable.
const CategorieNonCategorise = "non_categorise"

// Depense représente une dépense rattachée à un livreur pour une journée.
// Lecture seule pour le moteur de statistiques.
type Depense struct {
	ID        string    `json:"id"`
	LivreurID string    `json:"livreur_id"`
	Categorie string    `json:"categorie"`
	// Montant en unité monétaire minimale (FCFA), toujours positif ou nul
	Montant   int64     `json:"montant"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
