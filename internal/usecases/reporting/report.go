package reporting

import (
	"time"

	"github.com/mataweb/livraison-manager-api/internal/domain"
)

// AssembleReport enveloppe les résumés classés dans le rapport final avec
// les totaux globaux et les paramètres de la requête renvoyés tels quels.
//
// Les totaux globaux sont calculés par sommation des lignes de détail,
// jamais recalculés depuis les lignes brutes : les totaux annoncés égalent
// toujours la somme des détails.
func AssembleReport(date time.Time, seuils domain.SeuilSet, summaries []*domain.LivreurSummary) *domain.DailyStatsReport {
	summary := domain.GlobalSummary{}

	for _, detail := range summaries {
		summary.TotalCourses += detail.TotalCourses
		summary.Revenus += detail.Revenus
		summary.Depenses += detail.Depenses.Total
		summary.Benefice += detail.Benefice

		summary.CoursesMata.Total += detail.CoursesMata.Total
		summary.CoursesMata.SupSeuil += detail.CoursesMata.SupSeuil
		summary.CoursesMata.PanierInfSeuil += detail.CoursesMata.PanierInfSeuil

		summary.CoursesMlc.Total += detail.CoursesMlc.Total
		summary.CoursesMlc.SupSeuil += detail.CoursesMlc.SupSeuil
	}

	return &domain.DailyStatsReport{
		Date:            date.Format(time.DateOnly),
		SeuilMata:       seuils.Mata,
		SeuilMlc:        seuils.Mlc,
		SeuilMataPanier: seuils.MataPanier,
		Summary:         summary,
		Details:         summaries,
		Classement:      BuildClassement(summaries),
	}
}
