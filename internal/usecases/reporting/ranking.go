package reporting

import (
	"sort"

	"github.com/mataweb/livraison-manager-api/internal/domain"
)

// BuildClassement ordonne les résumés par bénéfice décroissant et assigne
// les rangs.
//
// Le rang est dense : deux livreurs à bénéfice égal partagent le même rang
// et le bénéfice distinct suivant reçoit rang+1 (1,1,2 et non 1,1,3). À
// bénéfice égal, l'ordre secondaire est l'identifiant livreur croissant
// pour garantir un ordre total déterministe indépendant de la séquence
// d'entrée.
func BuildClassement(summaries []*domain.LivreurSummary) []*domain.ClassementEntry {
	ordered := make([]*domain.LivreurSummary, len(summaries))
	copy(ordered, summaries)

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Benefice != ordered[j].Benefice {
			return ordered[i].Benefice > ordered[j].Benefice
		}
		return ordered[i].LivreurID < ordered[j].LivreurID
	})

	classement := make([]*domain.ClassementEntry, 0, len(ordered))

	rang := 0
	var beneficePrecedent int64
	for i, summary := range ordered {
		if i == 0 || summary.Benefice != beneficePrecedent {
			rang++
			beneficePrecedent = summary.Benefice
		}

		classement = append(classement, &domain.ClassementEntry{
			Rang:       rang,
			LivreurID:  summary.LivreurID,
			LivreurNom: summary.LivreurNom,
			Benefice:   summary.Benefice,
		})
	}

	return classement
}
