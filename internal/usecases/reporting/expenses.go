package reporting

import (
	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// depenseAgg accumule le total et les sous-totaux par catégorie des
// dépenses d'un livreur
type depenseAgg struct {
	total        int64
	parCategorie map[string]int64
}

// aggregateDepenses somme les dépenses par livreur pour la journée.
//
// bucketNonCategorise pilote la politique des dépenses sans catégorie :
// true = sous-total dans le seau non_categorise, false = dépense rejetée
// du rapport avec un avertissement journalisé.
func aggregateDepenses(depenses []*domain.Depense, bucketNonCategorise bool) map[string]*depenseAgg {
	aggs := make(map[string]*depenseAgg)

	for _, depense := range depenses {
		categorie := depense.Categorie
		if categorie == "" {
			if !bucketNonCategorise {
				logrus.WithFields(logrus.Fields{
					"depense_id": depense.ID,
					"livreur_id": depense.LivreurID,
					"montant":    depense.Montant,
				}).Warn("Dépense sans catégorie rejetée du rapport")
				continue
			}
			categorie = domain.CategorieNonCategorise
		}

		agg, ok := aggs[depense.LivreurID]
		if !ok {
			agg = &depenseAgg{parCategorie: make(map[string]int64)}
			aggs[depense.LivreurID] = agg
		}

		agg.total += depense.Montant
		agg.parCategorie[categorie] += depense.Montant
	}

	return aggs
}
