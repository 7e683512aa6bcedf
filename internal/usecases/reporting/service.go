package reporting

import (
	"fmt"
	"time"

	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/internal/config"
	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// StatsService expose la génération du rapport statistique quotidien des
// livreurs
type StatsService interface {
	GetDailyStats(date time.Time, seuils domain.SeuilSet) (*domain.DailyStatsReport, error)
}

type Service struct {
	commandeRepo repository.CommandeRepository
	depenseRepo  repository.DepenseRepository
	livreurRepo  repository.LivreurRepository
	opts         SummaryOptions
}

func NewService(
	commandeRepo repository.CommandeRepository,
	depenseRepo repository.DepenseRepository,
	livreurRepo repository.LivreurRepository,
	cfg *config.Config,
) StatsService {
	return &Service{
		commandeRepo: commandeRepo,
		depenseRepo:  depenseRepo,
		livreurRepo:  livreurRepo,
		opts: SummaryOptions{
			BucketNonCategorise: cfg.Stats.BucketNonCategorise,
		},
	}
}

// GetDailyStats génère le rapport du jour demandé. Calcul pur et synchrone
// sur un instantané immuable des données : la seule suspension est la
// lecture amont, et si elle échoue la requête entière échoue sans rapport
// partiel.
func (s *Service) GetDailyStats(date time.Time, seuils domain.SeuilSet) (*domain.DailyStatsReport, error) {
	if date.IsZero() {
		return nil, ErrDateInvalide
	}

	if seuils.Mata < 0 || seuils.Mlc < 0 || seuils.MataPanier < 0 {
		return nil, fmt.Errorf("%w: les seuils doivent être positifs ou nuls", ErrSeuilInvalide)
	}

	commandes, err := s.commandeRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: lecture des commandes: %v", ErrDonneesIndisponibles, err)
	}

	depenses, err := s.depenseRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: lecture des dépenses: %v", ErrDonneesIndisponibles, err)
	}

	livreurs, err := s.livreurRepo.ListLivreurs(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: lecture des livreurs: %v", ErrDonneesIndisponibles, err)
	}

	summaries := BuildSummaries(commandes, depenses, livreurs, seuils, s.opts)
	report := AssembleReport(date, seuils, summaries)

	logrus.WithFields(logrus.Fields{
		"date":          report.Date,
		"livreurs":      len(report.Details),
		"total_courses": report.Summary.TotalCourses,
	}).Debug("Rapport statistique quotidien généré")

	return report, nil
}
