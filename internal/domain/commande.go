package domain

import "time"

// Ligne représente la ligne métier d'une commande. La valeur vient de la
// donnée externe, elle n'est jamais inférée par le moteur.
type Ligne string

const (
	LigneMata Ligne = "MATA"
	LigneMlc  Ligne = "MLC"
)

// Commande représente une course livrée, telle que retournée par le dépôt
// de données pour une journée. Lecture seule pour le moteur de statistiques.
type Commande struct {
	ID         string    `json:"id"`
	Reference  string    `json:"reference"`
	LivreurID  string    `json:"livreur_id"`
	LivreurNom string    `json:"livreur_nom"`
	Ligne      Ligne     `json:"ligne"`
	// Montant du panier en unité monétaire minimale (FCFA), jamais fractionné
	Montant   int64     `json:"montant"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
