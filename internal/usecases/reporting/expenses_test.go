package reporting

import (
	"testing"

	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAggregateDepenses(t *testing.T) {
	depenses := []*domain.Depense{
		{ID: "DEP001", LivreurID: "LIV001", Categorie: "carburant", Montant: 3000},
		{ID: "DEP002", LivreurID: "LIV001", Categorie: "carburant", Montant: 2000},
		{ID: "DEP003", LivreurID: "LIV001", Categorie: "reparation", Montant: 1500},
		{ID: "DEP004", LivreurID: "LIV002", Categorie: "carburant", Montant: 1000},
	}

	aggs := aggregateDepenses(depenses, true)

	assert.Len(t, aggs, 2)
	assert.Equal(t, int64(6500), aggs["LIV001"].total)
	assert.Equal(t, int64(5000), aggs["LIV001"].parCategorie["carburant"])
	assert.Equal(t, int64(1500), aggs["LIV001"].parCategorie["reparation"])
	assert.Equal(t, int64(1000), aggs["LIV002"].total)
}

func TestAggregateDepensesSansCategorie(t *testing.T) {
	depenses := []*domain.Depense{
		{ID: "DEP001", LivreurID: "LIV001", Categorie: "carburant", Montant: 3000},
		{ID: "DEP002", LivreurID: "LIV001", Categorie: "", Montant: 700},
	}

	t.Run("politique seau non_categorise", func(t *testing.T) {
		aggs := aggregateDepenses(depenses, true)

		assert.Equal(t, int64(3700), aggs["LIV001"].total)
		assert.Equal(t, int64(700), aggs["LIV001"].parCategorie[domain.CategorieNonCategorise])
	})

	t.Run("politique rejet", func(t *testing.T) {
		aggs := aggregateDepenses(depenses, false)

		assert.Equal(t, int64(3000), aggs["LIV001"].total)
		assert.NotContains(t, aggs["LIV001"].parCategorie, domain.CategorieNonCategorise)
	})
}

func TestAggregateDepensesVide(t *testing.T) {
	aggs := aggregateDepenses(nil, true)
	assert.Empty(t, aggs)
}
