package reporting

import (
	"errors"
	"sort"

	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// SummaryOptions porte la politique du constructeur de résumés
type SummaryOptions struct {
	BucketNonCategorise bool
}

// BuildSummaries construit un résumé financier par livreur ayant au moins
// une commande OU une dépense ce jour-là. Les livreurs sans aucune activité
// sont omis : ils n'ont pas travaillé ce jour-là.
//
// Une commande de ligne métier inconnue est journalisée et exclue des
// compteurs de classification, mais son montant compte dans le chiffre
// d'affaires brut : une seule ligne malformée n'invalide jamais le reste
// de la journée.
//
// Le résultat est trié par identifiant livreur croissant pour garantir une
// sortie reproductible octet pour octet quel que soit l'ordre d'entrée.
func BuildSummaries(
	commandes []*domain.Commande,
	depenses []*domain.Depense,
	livreurs []*domain.Livreur,
	seuils domain.SeuilSet,
	opts SummaryOptions,
) []*domain.LivreurSummary {
	nomByID := make(map[string]string, len(livreurs))
	for _, livreur := range livreurs {
		nomByID[livreur.ID] = livreur.Nom
	}

	summaries := make(map[string]*domain.LivreurSummary)

	resolve := func(livreurID, nom string) *domain.LivreurSummary {
		summary, ok := summaries[livreurID]
		if !ok {
			if nom == "" {
				nom = nomByID[livreurID]
			}
			summary = &domain.LivreurSummary{
				LivreurID:  livreurID,
				LivreurNom: nom,
				Depenses: domain.DepensesDetail{
					ParCategorie: make(map[string]int64),
				},
			}
			summaries[livreurID] = summary
		}
		return summary
	}

	for _, commande := range commandes {
		summary := resolve(commande.LivreurID, commande.LivreurNom)

		// Le chiffre d'affaires est agnostique de la ligne métier
		summary.TotalCourses++
		summary.Revenus += commande.Montant

		classification, err := ClassifyCommande(commande, seuils)
		if err != nil {
			if errors.Is(err, ErrLigneInconnue) {
				logrus.WithFields(logrus.Fields{
					"commande_id": commande.ID,
					"livreur_id":  commande.LivreurID,
					"ligne":       string(commande.Ligne),
				}).Warn("Commande de ligne métier inconnue exclue des compteurs de classification")
				continue
			}
			// ClassifyCommande ne retourne que ErrLigneInconnue ; toute
			// autre erreur est une erreur de programmation
			panic(err)
		}

		switch classification.Ligne {
		case domain.LigneMata:
			summary.CoursesMata.Total++
			if classification.SupSeuilMata {
				summary.CoursesMata.SupSeuil++
			}
			if classification.PanierInfSeuil {
				summary.CoursesMata.PanierInfSeuil++
			}
		case domain.LigneMlc:
			summary.CoursesMlc.Total++
			if classification.SupSeuilMlc {
				summary.CoursesMlc.SupSeuil++
			}
		}
	}

	// Un livreur sans commande mais avec des dépenses apparaît quand même
	// dans le rapport, avec un chiffre d'affaires à zéro, s'il figure dans
	// la liste du personnel
	for livreurID, agg := range aggregateDepenses(depenses, opts.BucketNonCategorise) {
		if _, connu := nomByID[livreurID]; !connu {
			if _, aDesCommandes := summaries[livreurID]; !aDesCommandes {
				logrus.WithField("livreur_id", livreurID).Warn("Dépense rattachée à un livreur hors liste du personnel, ignorée")
				continue
			}
		}

		summary := resolve(livreurID, "")
		summary.Depenses.Total = agg.total
		for categorie, sousTotal := range agg.parCategorie {
			summary.Depenses.ParCategorie[categorie] = sousTotal
		}
	}

	// Le bénéfice peut être négatif et doit le rester
	for _, summary := range summaries {
		summary.Benefice = summary.Revenus - summary.Depenses.Total
	}

	result := make([]*domain.LivreurSummary, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, summary)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].LivreurID < result[j].LivreurID
	})

	return result
}
