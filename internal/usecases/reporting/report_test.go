package reporting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture(t *testing.T) *domain.DailyStatsReport {
	t.Helper()

	commandes := []*domain.Commande{
		{ID: "CMD001", LivreurID: "LIV001", LivreurNom: "Aliou", Ligne: domain.LigneMata, Montant: 25000},
		{ID: "CMD002", LivreurID: "LIV001", LivreurNom: "Aliou", Ligne: domain.LigneMata, Montant: 8000},
		{ID: "CMD003", LivreurID: "LIV002", LivreurNom: "Ousmane", Ligne: domain.LigneMlc, Montant: 12000},
	}
	depenses := []*domain.Depense{
		{ID: "DEP001", LivreurID: "LIV001", Categorie: "carburant", Montant: 5000},
	}

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	summaries := BuildSummaries(commandes, depenses, testLivreurs(), testSeuils, testOpts)
	return AssembleReport(date, testSeuils, summaries)
}

func TestAssembleReportParametresRenvoyes(t *testing.T) {
	report := reportFixture(t)

	// La date et les seuils sont renvoyés tels quels pour que l'appelant
	// confirme les paramètres qui ont produit les chiffres
	assert.Equal(t, "2024-03-15", report.Date)
	assert.Equal(t, int64(20000), report.SeuilMata)
	assert.Equal(t, int64(1750), report.SeuilMlc)
	assert.Equal(t, int64(10000), report.SeuilMataPanier)
}

func TestAssembleReportInvariantDeSommation(t *testing.T) {
	report := reportFixture(t)

	var totalCourses int
	var revenus, depenses, benefice int64
	var mataTotal, mataSup, mataPanier, mlcTotal, mlcSup int

	for _, detail := range report.Details {
		totalCourses += detail.TotalCourses
		revenus += detail.Revenus
		depenses += detail.Depenses.Total
		benefice += detail.Benefice
		mataTotal += detail.CoursesMata.Total
		mataSup += detail.CoursesMata.SupSeuil
		mataPanier += detail.CoursesMata.PanierInfSeuil
		mlcTotal += detail.CoursesMlc.Total
		mlcSup += detail.CoursesMlc.SupSeuil
	}

	assert.Equal(t, totalCourses, report.Summary.TotalCourses)
	assert.Equal(t, revenus, report.Summary.Revenus)
	assert.Equal(t, depenses, report.Summary.Depenses)
	assert.Equal(t, benefice, report.Summary.Benefice)
	assert.Equal(t, mataTotal, report.Summary.CoursesMata.Total)
	assert.Equal(t, mataSup, report.Summary.CoursesMata.SupSeuil)
	assert.Equal(t, mataPanier, report.Summary.CoursesMata.PanierInfSeuil)
	assert.Equal(t, mlcTotal, report.Summary.CoursesMlc.Total)
	assert.Equal(t, mlcSup, report.Summary.CoursesMlc.SupSeuil)
}

func TestAssembleReportBeneficeParLigne(t *testing.T) {
	report := reportFixture(t)

	for _, detail := range report.Details {
		assert.Equal(t, detail.Revenus-detail.Depenses.Total, detail.Benefice)
	}
}

func TestAssembleReportClassement(t *testing.T) {
	report := reportFixture(t)

	require.Len(t, report.Classement, 2)
	assert.Equal(t, 1, report.Classement[0].Rang)
	assert.Equal(t, "Aliou", report.Classement[0].LivreurNom)
	assert.Equal(t, int64(28000), report.Classement[0].Benefice)
	assert.Equal(t, 2, report.Classement[1].Rang)
	assert.Equal(t, "Ousmane", report.Classement[1].LivreurNom)
	assert.Equal(t, int64(12000), report.Classement[1].Benefice)
}

func TestAssembleReportIdempotent(t *testing.T) {
	first := reportFixture(t)
	second := reportFixture(t)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	// Deux exécutions sur les mêmes données produisent une sortie
	// identique octet pour octet
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAssembleReportJourSansActivite(t *testing.T) {
	date := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	summaries := BuildSummaries(nil, nil, testLivreurs(), testSeuils, testOpts)
	report := AssembleReport(date, testSeuils, summaries)

	assert.Empty(t, report.Details)
	assert.Empty(t, report.Classement)
	assert.Equal(t, 0, report.Summary.TotalCourses)
	assert.Equal(t, int64(0), report.Summary.Revenus)
}

func TestAssembleReportNomsDesChamps(t *testing.T) {
	report := reportFixture(t)

	payload, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))

	// Les noms de champs du payload sont figés pour compatibilité avec les
	// consommateurs existants
	for _, key := range []string{"date", "seuil_mata", "seuil_mlc", "seuil_mata_panier", "summary", "details", "classement"} {
		assert.Contains(t, decoded, key)
	}

	summary := decoded["summary"].(map[string]any)
	for _, key := range []string{"total_courses", "revenus", "depenses", "benefice", "courses_mata", "courses_mlc"} {
		assert.Contains(t, summary, key)
	}

	coursesMata := summary["courses_mata"].(map[string]any)
	for _, key := range []string{"total", "sup_seuil", "panier_inf_seuil"} {
		assert.Contains(t, coursesMata, key)
	}

	details := decoded["details"].([]any)
	require.NotEmpty(t, details)
	detail := details[0].(map[string]any)
	for _, key := range []string{"livreur_nom", "revenus", "depenses", "benefice", "courses_mata", "courses_mlc"} {
		assert.Contains(t, detail, key)
	}

	classement := decoded["classement"].([]any)
	require.NotEmpty(t, classement)
	entry := classement[0].(map[string]any)
	for _, key := range []string{"rang", "livreur_nom", "benefice"} {
		assert.Contains(t, entry, key)
	}
}
