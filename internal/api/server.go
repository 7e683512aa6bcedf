package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/internal/api/handler"
	"github.com/mataweb/livraison-manager-api/internal/api/handler/router"
	"github.com/mataweb/livraison-manager-api/internal/config"
	"github.com/mataweb/livraison-manager-api/internal/scheduler"
	"github.com/mataweb/livraison-manager-api/internal/usecases/authenticating"
	"github.com/mataweb/livraison-manager-api/internal/usecases/reporting"
	"github.com/mataweb/livraison-manager-api/internal/usecases/tracking"
	"github.com/mataweb/livraison-manager-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

type Repositories struct {
	Livreurs       repository.LivreurRepository
	Commandes      repository.CommandeRepository
	Depenses       repository.DepenseRepository
	StatsSnapshots repository.StatsSnapshotRepository
}

func New(
	config *config.Config,
	statsService reporting.StatsService,
	authenticator authenticating.Authenticator,
	trackingService tracking.Tracker,
	repos Repositories,
	dailyStatsSyncService *scheduler.DailyStatsSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		DailyStatsSyncService: dailyStatsSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Livreurs(repos.Livreurs)...),
		router.WithRoutes(handler.Commandes(repos.Commandes)...),
		router.WithRoutes(handler.Depenses(repos.Depenses)...),
		router.WithRoutes(handler.LivreurStats(statsService, repos.StatsSnapshots)...),
		router.WithRoutes(handler.Tracking(trackingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Démarrage du serveur")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erreur pendant l'exécution du serveur")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Signal d'interruption reçu")
	case <-ctx.Done():
		logrus.Info("Contexte de l'application annulé")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Début de l'arrêt gracieux du serveur")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erreur pendant l'arrêt du serveur")
		return err
	}

	logrus.Info("Serveur arrêté avec succès")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
