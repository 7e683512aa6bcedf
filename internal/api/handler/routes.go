package handler

import (
	"net/http"

	"github.com/mataweb/livraison-manager-api/infrastructure/repository"
	"github.com/mataweb/livraison-manager-api/internal/api/handler/router"
	"github.com/mataweb/livraison-manager-api/internal/usecases/authenticating"
	"github.com/mataweb/livraison-manager-api/internal/usecases/reporting"
	"github.com/mataweb/livraison-manager-api/internal/usecases/tracking"
	"github.com/mataweb/livraison-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Livreurs(repo repository.LivreurRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/livreurs",
			Method:      http.MethodGet,
			Handler:     ListLivreurs(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Commandes(repo repository.CommandeRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/commandes",
			Method:      http.MethodGet,
			Handler:     ListCommandes(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Depenses(repo repository.DepenseRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/depenses",
			Method:      http.MethodGet,
			Handler:     ListDepenses(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func LivreurStats(service reporting.StatsService, snapshotRepo repository.StatsSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/livreurStats/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyLivreurStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
		{
			Path:        "/v1/livreurStats/snapshot",
			Method:      http.MethodGet,
			Handler:     GetDailyStatsSnapshot(snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func Tracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/positions",
			Method:      http.MethodPost,
			Handler:     RecordPosition(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.LivreurOnly()},
		},
		{
			Path:        "/v1/positions/last",
			Method:      http.MethodGet,
			Handler:     ListLastPositions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrManager()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
