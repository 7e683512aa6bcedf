package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/mataweb/livraison-manager-api/infrastructure/database/postgres"
	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/internal/api"
	"github.com/mataweb/livraison-manager-api/internal/config"
	"github.com/mataweb/livraison-manager-api/internal/scheduler"
	"github.com/mataweb/livraison-manager-api/internal/usecases/authenticating"
	"github.com/mataweb/livraison-manager-api/internal/usecases/reporting"
	"github.com/mataweb/livraison-manager-api/internal/usecases/tracking"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Niveau de log invalide: %s, utilisation de 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Niveau de log configuré: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	livreurRepo := repository.NewLivreurRepository(pgConn)
	commandeRepo := repository.NewCommandeRepository(pgConn)
	depenseRepo := repository.NewDepenseRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	positionRepo := repository.NewPositionRepository(pgConn)
	statsSnapshotRepo := repository.NewStatsSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	statsService := reporting.NewService(commandeRepo, depenseRepo, livreurRepo, cfg)
	trackingService := tracking.NewService(positionRepo, livreurRepo)

	dailyStatsSyncService := scheduler.NewDailyStatsSyncService(statsService, statsSnapshotRepo, cfg)

	if err := dailyStatsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erreur au démarrage du planificateur d'instantanés de stats")
	} else {
		logrus.Info("Planificateur d'instantanés de stats démarré")
	}

	server, err := api.New(
		cfg,
		statsService,
		authenticator,
		trackingService,
		api.Repositories{
			Livreurs:       livreurRepo,
			Commandes:      commandeRepo,
			Depenses:       depenseRepo,
			StatsSnapshots: statsSnapshotRepo,
		},
		dailyStatsSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configure le format des logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn ouvre la connexion au PostgreSQL
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erreur de connexion à PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erreur lors du test de connexion à PostgreSQL")
	}

	logrus.Info("Connexion à PostgreSQL établie")
	return conn
}
