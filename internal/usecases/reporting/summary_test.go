package reporting

import (
	"testing"

	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeuils = domain.SeuilSet{Mata: 20000, Mlc: 1750, MataPanier: 10000}

var testOpts = SummaryOptions{BucketNonCategorise: true}

func testLivreurs() []*domain.Livreur {
	return []*domain.Livreur{
		{ID: "LIV001", Nom: "Aliou"},
		{ID: "LIV002", Nom: "Ousmane"},
		{ID: "LIV003", Nom: "Fatou"},
	}
}

func TestBuildSummariesScenarioComplet(t *testing.T) {
	// Scénario de référence : Aliou a deux commandes MATA (25000 et 8000)
	// et une dépense de 5000 ; Ousmane a une commande MLC de 12000 et
	// aucune dépense
	commandes := []*domain.Commande{
		{ID: "CMD001", LivreurID: "LIV001", LivreurNom: "Aliou", Ligne: domain.LigneMata, Montant: 25000},
		{ID: "CMD002", LivreurID: "LIV001", LivreurNom: "Aliou", Ligne: domain.LigneMata, Montant: 8000},
		{ID: "CMD003", LivreurID: "LIV002", LivreurNom: "Ousmane", Ligne: domain.LigneMlc, Montant: 12000},
	}
	depenses := []*domain.Depense{
		{ID: "DEP001", LivreurID: "LIV001", Categorie: "carburant", Montant: 5000},
	}

	summaries := BuildSummaries(commandes, depenses, testLivreurs(), testSeuils, testOpts)

	require.Len(t, summaries, 2)

	aliou := summaries[0]
	assert.Equal(t, "LIV001", aliou.LivreurID)
	assert.Equal(t, "Aliou", aliou.LivreurNom)
	assert.Equal(t, 2, aliou.TotalCourses)
	assert.Equal(t, int64(33000), aliou.Revenus)
	assert.Equal(t, int64(5000), aliou.Depenses.Total)
	assert.Equal(t, int64(28000), aliou.Benefice)
	assert.Equal(t, 2, aliou.CoursesMata.Total)
	assert.Equal(t, 1, aliou.CoursesMata.SupSeuil)       // la commande à 25000
	assert.Equal(t, 1, aliou.CoursesMata.PanierInfSeuil) // la commande à 8000
	assert.Equal(t, 0, aliou.CoursesMlc.Total)

	ousmane := summaries[1]
	assert.Equal(t, "LIV002", ousmane.LivreurID)
	assert.Equal(t, "Ousmane", ousmane.LivreurNom)
	assert.Equal(t, 1, ousmane.TotalCourses)
	assert.Equal(t, int64(12000), ousmane.Revenus)
	assert.Equal(t, int64(0), ousmane.Depenses.Total)
	assert.Equal(t, int64(12000), ousmane.Benefice)
	assert.Equal(t, 1, ousmane.CoursesMlc.Total)
	assert.Equal(t, 1, ousmane.CoursesMlc.SupSeuil)
}

func TestBuildSummariesLivreurSansActivite(t *testing.T) {
	commandes := []*domain.Commande{
		{ID: "CMD001", LivreurID: "LIV001", LivreurNom: "Aliou", Ligne: domain.LigneMata, Montant: 5000},
	}

	summaries := BuildSummaries(commandes, nil, testLivreurs(), testSeuils, testOpts)

	// LIV002 et LIV003 n'ont ni commande ni dépense : ils n'apparaissent pas
	require.Len(t, summaries, 1)
	assert.Equal(t, "LIV001", summaries[0].LivreurID)
}

func TestBuildSummariesLivreurAvecDepensesSeules(t *testing.T) {
	depenses := []*domain.Depense{
		{ID: "DEP001", LivreurID: "LIV003", Categorie: "carburant", Montant: 2000},
	}

	summaries := BuildSummaries(nil, depenses, testLivreurs(), testSeuils, testOpts)

	// Un livreur sans commande mais avec des dépenses apparaît avec un
	// chiffre d'affaires à zéro et un bénéfice négatif
	require.Len(t, summaries, 1)
	fatou := summaries[0]
	assert.Equal(t, "LIV003", fatou.LivreurID)
	assert.Equal(t, "Fatou", fatou.LivreurNom)
	assert.Equal(t, int64(0), fatou.Revenus)
	assert.Equal(t, int64(2000), fatou.Depenses.Total)
	assert.Equal(t, int64(-2000), fatou.Benefice)
}

func TestBuildSummariesDepenseLivreurInconnu(t *testing.T) {
	depenses := []*domain.Depense{
		{ID: "DEP001", LivreurID: "LIV999", Categorie: "carburant", Montant: 2000},
	}

	summaries := BuildSummaries(nil, depenses, testLivreurs(), testSeuils, testOpts)

	// Une dépense rattachée à un livreur hors liste du personnel est ignorée
	assert.Empty(t, summaries)
}

func TestBuildSummariesLigneInconnue(t *testing.T) {
	commandes := []*domain.Commande{
		{ID: "CMD001", LivreurID: "LIV001", LivreurNom: "Aliou", Ligne: domain.LigneMata, Montant: 25000},
		{ID: "CMD002", LivreurID: "LIV001", LivreurNom: "Aliou", Ligne: "EXPRESS", Montant: 4000},
	}

	summaries := BuildSummaries(commandes, nil, testLivreurs(), testSeuils, testOpts)

	require.Len(t, summaries, 1)
	aliou := summaries[0]

	// La commande malformée compte dans le chiffre d'affaires brut et le
	// total des courses, mais pas dans les compteurs de classification
	assert.Equal(t, 2, aliou.TotalCourses)
	assert.Equal(t, int64(29000), aliou.Revenus)
	assert.Equal(t, 1, aliou.CoursesMata.Total)
	assert.Equal(t, 0, aliou.CoursesMlc.Total)
}

func TestBuildSummariesDeterministe(t *testing.T) {
	commandes := []*domain.Commande{
		{ID: "CMD003", LivreurID: "LIV003", LivreurNom: "Fatou", Ligne: domain.LigneMlc, Montant: 3000},
		{ID: "CMD001", LivreurID: "LIV001", LivreurNom: "Aliou", Ligne: domain.LigneMata, Montant: 15000},
		{ID: "CMD002", LivreurID: "LIV002", LivreurNom: "Ousmane", Ligne: domain.LigneMata, Montant: 7000},
	}
	depenses := []*domain.Depense{
		{ID: "DEP002", LivreurID: "LIV002", Categorie: "carburant", Montant: 500},
		{ID: "DEP001", LivreurID: "LIV001", Categorie: "reparation", Montant: 900},
	}

	first := BuildSummaries(commandes, depenses, testLivreurs(), testSeuils, testOpts)

	// Mêmes données dans un autre ordre d'arrivée
	commandesInverse := []*domain.Commande{commandes[1], commandes[2], commandes[0]}
	depensesInverse := []*domain.Depense{depenses[1], depenses[0]}

	second := BuildSummaries(commandesInverse, depensesInverse, testLivreurs(), testSeuils, testOpts)

	assert.Equal(t, first, second)

	// Tri par identifiant livreur croissant
	require.Len(t, first, 3)
	assert.Equal(t, "LIV001", first[0].LivreurID)
	assert.Equal(t, "LIV002", first[1].LivreurID)
	assert.Equal(t, "LIV003", first[2].LivreurID)
}
