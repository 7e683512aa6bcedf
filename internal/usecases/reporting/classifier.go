package reporting

import (
	"fmt"

	"github.com/mataweb/livraison-manager-api/internal/domain"
)

// Classification porte la ligne métier d'une commande et ses indicateurs de
// seuil. Produite par ClassifyCommande, consommée par le constructeur de
// résumés.
type Classification struct {
	Ligne          domain.Ligne
	SupSeuilMata   bool
	PanierInfSeuil bool
	SupSeuilMlc    bool
}

// ClassifyCommande classifie une commande selon sa ligne métier et les
// seuils actifs. Fonction pure de (commande, seuils).
//
// Les comparaisons sont strictes (> et <) : une commande dont le montant
// égale un seuil n'est jamais classée "grande" ni "petit panier". Ce
// comportement aux bornes conditionne l'éligibilité aux commissions en
// aval et doit être préservé tel quel.
func ClassifyCommande(commande *domain.Commande, seuils domain.SeuilSet) (Classification, error) {
	switch commande.Ligne {
	case domain.LigneMata:
		return Classification{
			Ligne:          domain.LigneMata,
			SupSeuilMata:   commande.Montant > seuils.Mata,
			PanierInfSeuil: commande.Montant < seuils.MataPanier,
		}, nil
	case domain.LigneMlc:
		return Classification{
			Ligne:       domain.LigneMlc,
			SupSeuilMlc: commande.Montant > seuils.Mlc,
		}, nil
	default:
		return Classification{}, fmt.Errorf("%w: %q (commande %s)", ErrLigneInconnue, commande.Ligne, commande.ID)
	}
}
