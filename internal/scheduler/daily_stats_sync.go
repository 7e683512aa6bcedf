// Package scheduler contient les services planifiés du back office
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/internal/config"
	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/mataweb/livraison-manager-api/internal/usecases/reporting"
	"github.com/mataweb/livraison-manager-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// DailyStatsSyncConfig est la configuration du planificateur d'instantanés
type DailyStatsSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetentionDays int
	Seuils        domain.SeuilSet
}

// DailyStatsSyncService calcule chaque matin le rapport de la veille avec
// les seuils par défaut et persiste l'instantané pour le tableau de bord
type DailyStatsSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyStatsSyncConfig
	statsService        reporting.StatsService
	snapshotRepo        repository.StatsSnapshotRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// SyncStatus est l'état du planificateur exposé par l'endpoint de cron
type SyncStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

func NewDailyStatsSyncService(
	statsService reporting.StatsService,
	snapshotRepo repository.StatsSnapshotRepository,
	cfg *config.Config,
) *DailyStatsSyncService {
	syncConfig := DailyStatsSyncConfig{
		CronSchedule:  cfg.DailyStatsSync.CronSchedule,
		SyncEnabled:   cfg.DailyStatsSync.Enabled,
		RetentionDays: cfg.DailyStatsSync.RetentionDays,
		Seuils: domain.SeuilSet{
			Mata:       cfg.Stats.SeuilMataDefaut,
			Mlc:        cfg.Stats.SeuilMlcDefaut,
			MataPanier: cfg.Stats.SeuilMataPanierDefaut,
		},
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     syncConfig.CronSchedule,
		"sync_enabled":      syncConfig.SyncEnabled,
		"seuil_mata":        syncConfig.Seuils.Mata,
		"seuil_mlc":         syncConfig.Seuils.Mlc,
		"seuil_mata_panier": syncConfig.Seuils.MataPanier,
	}).Info("Configuration du planificateur d'instantanés de stats chargée")

	return &DailyStatsSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		statsService: statsService,
		snapshotRepo: snapshotRepo,
	}
}

func (s *DailyStatsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Planificateur d'instantanés de stats désactivé par configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Démarrage du planificateur d'instantanés de stats")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncYesterdaySnapshot(); err != nil {
			logrus.WithError(err).Error("Erreur lors de la génération de l'instantané quotidien")
		}
	})
	if err != nil {
		return fmt.Errorf("erreur lors de la planification de l'instantané quotidien: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Arrêt du planificateur d'instantanés de stats")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncYesterdaySnapshot calcule et persiste l'instantané de la veille.
// Une seule exécution à la fois ; les déclenchements concurrents sont
// ignorés.
func (s *DailyStatsSyncService) SyncYesterdaySnapshot() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Génération d'instantané déjà en cours, déclenchement ignoré")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	return s.syncSnapshotFor(previousDay(time.Now()))
}

// previousDay retourne la veille de now à minuit UTC. La date calendaire est
// prise dans le fuseau de now : une troncature UTC décalerait la journée
// pour les déploiements hors UTC.
func previousDay(now time.Time) time.Time {
	year, month, day := now.AddDate(0, 0, -1).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *DailyStatsSyncService) syncSnapshotFor(date time.Time) error {
	logrus.WithField("date", date.Format(time.DateOnly)).Info("Génération de l'instantané de stats")

	report, err := s.statsService.GetDailyStats(date, s.config.Seuils)
	if err != nil {
		return fmt.Errorf("erreur lors de la génération du rapport: %w", err)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erreur lors de la génération de l'identifiant d'instantané: %w", err)
	}

	snapshot := &domain.StatsSnapshot{
		ID:     id,
		Date:   date,
		Report: report,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		return fmt.Errorf("erreur lors de la persistance de l'instantané: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"date":     date.Format(time.DateOnly),
		"livreurs": len(report.Details),
	}).Info("Instantané de stats persisté")

	s.purgeOldSnapshots()

	return nil
}

// purgeOldSnapshots applique la rétention configurée. Un échec de purge
// n'invalide pas l'instantané qui vient d'être persisté.
func (s *DailyStatsSyncService) purgeOldSnapshots() {
	if s.config.RetentionDays <= 0 {
		return
	}

	deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erreur lors de la purge des anciens instantanés")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"supprimes":       deleted,
			"retention_jours": s.config.RetentionDays,
		}).Info("Anciens instantanés purgés")
	}
}

// TriggerManualSync déclenche la génération hors planification
func (s *DailyStatsSyncService) TriggerManualSync() {
	go func() {
		if err := s.SyncYesterdaySnapshot(); err != nil {
			logrus.WithError(err).Error("Erreur lors du déclenchement manuel de l'instantané")
		}
	}()
}

// Status retourne l'état courant du planificateur
func (s *DailyStatsSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{Running: s.syncRunning}
	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}
