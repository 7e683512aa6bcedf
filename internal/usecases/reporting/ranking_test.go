package reporting

import (
	"testing"

	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClassement(t *testing.T) {
	summaries := []*domain.LivreurSummary{
		{LivreurID: "LIV002", LivreurNom: "Ousmane", Benefice: 12000},
		{LivreurID: "LIV001", LivreurNom: "Aliou", Benefice: 28000},
		{LivreurID: "LIV003", LivreurNom: "Fatou", Benefice: 5000},
	}

	classement := BuildClassement(summaries)

	require.Len(t, classement, 3)
	assert.Equal(t, 1, classement[0].Rang)
	assert.Equal(t, "Aliou", classement[0].LivreurNom)
	assert.Equal(t, int64(28000), classement[0].Benefice)
	assert.Equal(t, 2, classement[1].Rang)
	assert.Equal(t, "Ousmane", classement[1].LivreurNom)
	assert.Equal(t, 3, classement[2].Rang)
	assert.Equal(t, "Fatou", classement[2].LivreurNom)
}

func TestBuildClassementRangDense(t *testing.T) {
	summaries := []*domain.LivreurSummary{
		{LivreurID: "LIV001", LivreurNom: "Aliou", Benefice: 10000},
		{LivreurID: "LIV002", LivreurNom: "Ousmane", Benefice: 10000},
		{LivreurID: "LIV003", LivreurNom: "Fatou", Benefice: 4000},
	}

	classement := BuildClassement(summaries)

	require.Len(t, classement, 3)

	// Bénéfices égaux : même rang, et le bénéfice distinct suivant reçoit
	// rang+1 (1,1,2), pas de saut de rang (1,1,3)
	assert.Equal(t, 1, classement[0].Rang)
	assert.Equal(t, 1, classement[1].Rang)
	assert.Equal(t, 2, classement[2].Rang)

	// À bénéfice égal, ordre secondaire par identifiant livreur croissant
	assert.Equal(t, "LIV001", classement[0].LivreurID)
	assert.Equal(t, "LIV002", classement[1].LivreurID)
}

func TestBuildClassementBeneficeNegatif(t *testing.T) {
	summaries := []*domain.LivreurSummary{
		{LivreurID: "LIV001", LivreurNom: "Aliou", Benefice: -3000},
		{LivreurID: "LIV002", LivreurNom: "Ousmane", Benefice: 7000},
	}

	classement := BuildClassement(summaries)

	require.Len(t, classement, 2)
	assert.Equal(t, "LIV002", classement[0].LivreurID)
	assert.Equal(t, int64(-3000), classement[1].Benefice)
	assert.Equal(t, 2, classement[1].Rang)
}

func TestBuildClassementMonotone(t *testing.T) {
	summaries := []*domain.LivreurSummary{
		{LivreurID: "LIV004", Benefice: 500},
		{LivreurID: "LIV001", Benefice: 9000},
		{LivreurID: "LIV003", Benefice: 500},
		{LivreurID: "LIV002", Benefice: 9000},
		{LivreurID: "LIV005", Benefice: -100},
	}

	classement := BuildClassement(summaries)
	require.Len(t, classement, 5)

	for i := 1; i < len(classement); i++ {
		assert.LessOrEqual(t, classement[i].Benefice, classement[i-1].Benefice)
		assert.GreaterOrEqual(t, classement[i].Rang, classement[i-1].Rang)
		if classement[i].Benefice == classement[i-1].Benefice {
			assert.Equal(t, classement[i-1].Rang, classement[i].Rang)
		}
	}
}

func TestBuildClassementNeModifiePasLesResumes(t *testing.T) {
	summaries := []*domain.LivreurSummary{
		{LivreurID: "LIV002", Benefice: 100},
		{LivreurID: "LIV001", Benefice: 200},
	}

	_ = BuildClassement(summaries)

	// L'ordre d'entrée (tri par identifiant du constructeur de résumés)
	// est préservé
	assert.Equal(t, "LIV002", summaries[0].LivreurID)
	assert.Equal(t, "LIV001", summaries[1].LivreurID)
}
