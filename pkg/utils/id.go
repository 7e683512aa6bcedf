package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID produit un identifiant court pour les instantanés de stats et
// les références de commandes
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
