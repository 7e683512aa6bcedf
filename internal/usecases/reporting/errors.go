package reporting

import "errors"

// Erreurs du moteur de statistiques. ErrLigneInconnue est signalée par
// commande et n'interrompt jamais le rapport ; les autres font échouer la
// requête entière, jamais de rapport partiel.
var (
	ErrLigneInconnue        = errors.New("ligne métier inconnue")
	ErrDateInvalide         = errors.New("date invalide")
	ErrSeuilInvalide        = errors.New("seuil invalide")
	ErrDonneesIndisponibles = errors.New("données amont indisponibles")
)
