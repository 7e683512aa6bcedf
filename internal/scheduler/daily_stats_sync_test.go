package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/mataweb/livraison-manager-api/infrastructure/repository/mocks"
	"github.com/mataweb/livraison-manager-api/internal/domain"
	reportingmocks "github.com/mataweb/livraison-manager-api/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(statsService *reportingmocks.MockStatsService, snapshotRepo *mocks.MockStatsSnapshotRepository) *DailyStatsSyncService {
	return &DailyStatsSyncService{
		config: DailyStatsSyncConfig{
			CronSchedule: "0 5 * * *",
			SyncEnabled:  true,
			Seuils:       domain.SeuilSet{Mata: 20000, Mlc: 1750, MataPanier: 10000},
		},
		statsService: statsService,
		snapshotRepo: snapshotRepo,
	}
}

func TestDailyStatsSyncService_syncSnapshotFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	mockSnapshotRepo := mocks.NewMockStatsSnapshotRepository(ctrl)
	service := newTestSyncService(mockStats, mockSnapshotRepo)

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local)
	report := &domain.DailyStatsReport{
		Date: "2026-01-15",
		Details: []*domain.LivreurSummary{
			{LivreurID: "LIV001", LivreurNom: "Aliou Diop"},
		},
	}

	mockStats.EXPECT().
		GetDailyStats(date, service.config.Seuils).
		Return(report, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *domain.StatsSnapshot) error {
			assert.NotEmpty(t, snapshot.ID)
			assert.Equal(t, date, snapshot.Date)
			assert.Equal(t, report, snapshot.Report)
			return nil
		})

	err := service.syncSnapshotFor(date)
	require.NoError(t, err)
}

func TestDailyStatsSyncService_syncSnapshotFor_ReportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	mockSnapshotRepo := mocks.NewMockStatsSnapshotRepository(ctrl)
	service := newTestSyncService(mockStats, mockSnapshotRepo)

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local)

	mockStats.EXPECT().
		GetDailyStats(date, service.config.Seuils).
		Return(nil, errors.New("base indisponible"))

	err := service.syncSnapshotFor(date)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erreur lors de la génération du rapport")
}

func TestDailyStatsSyncService_SyncYesterdaySnapshot_IgnoresConcurrentTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	mockSnapshotRepo := mocks.NewMockStatsSnapshotRepository(ctrl)
	service := newTestSyncService(mockStats, mockSnapshotRepo)

	// Simule une exécution en cours : le déclenchement doit être ignoré
	// sans toucher au service de stats ni au dépôt.
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	err := service.SyncYesterdaySnapshot()
	require.NoError(t, err)
}

func TestDailyStatsSyncService_syncSnapshotFor_PurgeRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	mockSnapshotRepo := mocks.NewMockStatsSnapshotRepository(ctrl)
	service := newTestSyncService(mockStats, mockSnapshotRepo)
	service.config.RetentionDays = 90

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	mockStats.EXPECT().
		GetDailyStats(date, service.config.Seuils).
		Return(&domain.DailyStatsReport{Date: "2026-01-15"}, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil)

	mockSnapshotRepo.EXPECT().
		DeleteOlderThan(90).
		Return(int64(3), nil)

	require.NoError(t, service.syncSnapshotFor(date))
}

func TestDailyStatsSyncService_syncSnapshotFor_PurgeErrorNonFatale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	mockSnapshotRepo := mocks.NewMockStatsSnapshotRepository(ctrl)
	service := newTestSyncService(mockStats, mockSnapshotRepo)
	service.config.RetentionDays = 30

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	mockStats.EXPECT().
		GetDailyStats(date, service.config.Seuils).
		Return(&domain.DailyStatsReport{Date: "2026-01-15"}, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil)

	mockSnapshotRepo.EXPECT().
		DeleteOlderThan(30).
		Return(int64(0), errors.New("timeout"))

	// L'instantané est persisté : un échec de purge ne fait pas échouer la
	// génération.
	require.NoError(t, service.syncSnapshotFor(date))
}

func TestPreviousDay(t *testing.T) {
	dakar := time.FixedZone("GMT", 0)
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "jour plein UTC",
			now:  time.Date(2026, 1, 15, 5, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "fuseau GMT",
			now:  time.Date(2026, 3, 1, 5, 0, 0, 0, dakar),
			want: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			// À 5h à Tokyo il est encore la veille en UTC ; la date
			// calendaire doit suivre le fuseau local, pas UTC.
			name: "fuseau en avance sur UTC",
			now:  time.Date(2026, 1, 15, 5, 0, 0, 0, tokyo),
			want: time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, previousDay(tt.now))
		})
	}
}

func TestDailyStatsSyncService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	mockSnapshotRepo := mocks.NewMockStatsSnapshotRepository(ctrl)
	service := newTestSyncService(mockStats, mockSnapshotRepo)

	status := service.Status()
	assert.False(t, status.Running)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)

	startedAt := time.Now().Add(-time.Minute)
	completedAt := time.Now()
	service.syncMutex.Lock()
	service.lastSyncStartedAt = startedAt
	service.lastSyncCompletedAt = completedAt
	service.syncMutex.Unlock()

	status = service.Status()
	require.NotNil(t, status.LastStartedAt)
	require.NotNil(t, status.LastCompletedAt)
	assert.Equal(t, startedAt, *status.LastStartedAt)
	assert.Equal(t, completedAt, *status.LastCompletedAt)
}
