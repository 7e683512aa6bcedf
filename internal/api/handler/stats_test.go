package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	repomocks "github.com/mataweb/livraison-manager-api/infrastructure/repository/mocks"
	"github.com/mataweb/livraison-manager-api/internal/domain"
	"github.com/mataweb/livraison-manager-api/internal/usecases/reporting"
	reportingmocks "github.com/mataweb/livraison-manager-api/internal/usecases/reporting/mocks"
	"github.com/mataweb/livraison-manager-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func statsRequest(query string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/v1/livreurStats/daily?"+query, nil)
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestGetDailyLivreurStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	handler := GetDailyLivreurStats(mockStats)

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	seuils := domain.SeuilSet{Mata: 20000, Mlc: 1750, MataPanier: 10000}
	report := &domain.DailyStatsReport{
		Date:            "2026-01-15",
		SeuilMata:       seuils.Mata,
		SeuilMlc:        seuils.Mlc,
		SeuilMataPanier: seuils.MataPanier,
	}

	mockStats.EXPECT().
		GetDailyStats(date, seuils).
		Return(report, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, statsRequest("date=2026-01-15&seuil_mata=20000&seuil_mlc=1750&seuil_mata_panier=10000"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got domain.DailyStatsReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "2026-01-15", got.Date)
	assert.Equal(t, int64(20000), got.SeuilMata)
}

func TestGetDailyLivreurStats_DateInvalide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	handler := GetDailyLivreurStats(mockStats)

	for _, query := range []string{
		"seuil_mata=20000&seuil_mlc=1750&seuil_mata_panier=10000",
		"date=15/01/2026&seuil_mata=20000&seuil_mlc=1750&seuil_mata_panier=10000",
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, statsRequest(query))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidDate, decodeAPIError(t, rec).Code)
	}
}

func TestGetDailyLivreurStats_SeuilsObligatoires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	handler := GetDailyLivreurStats(mockStats)

	tests := []struct {
		name  string
		query string
	}{
		{"seuil mata absent", "date=2026-01-15&seuil_mlc=1750&seuil_mata_panier=10000"},
		{"seuil mlc negatif", "date=2026-01-15&seuil_mata=20000&seuil_mlc=-1&seuil_mata_panier=10000"},
		{"seuil panier non numerique", "date=2026-01-15&seuil_mata=20000&seuil_mlc=1750&seuil_mata_panier=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, statsRequest(tt.query))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, apiErrors.ErrInvalidSeuil, decodeAPIError(t, rec).Code)
		})
	}
}

func TestGetDailyStatsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockStatsSnapshotRepository(ctrl)
	handler := GetDailyStatsSnapshot(mockRepo)

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	snapshot := &domain.StatsSnapshot{
		ID:     "abc123",
		Date:   date,
		Report: &domain.DailyStatsReport{Date: "2026-01-15"},
	}

	mockRepo.EXPECT().
		GetByDate(date).
		Return(snapshot, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/livreurStats/snapshot?date=2026-01-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.StatsSnapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "abc123", got.ID)
	require.NotNil(t, got.Report)
	assert.Equal(t, "2026-01-15", got.Report.Date)
}

func TestGetDailyStatsSnapshot_Introuvable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockStatsSnapshotRepository(ctrl)
	handler := GetDailyStatsSnapshot(mockRepo)

	mockRepo.EXPECT().
		GetByDate(gomock.Any()).
		Return(nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/livreurStats/snapshot?date=2026-01-15", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
}

func TestGetDailyStatsSnapshot_DateObligatoire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repomocks.NewMockStatsSnapshotRepository(ctrl)
	handler := GetDailyStatsSnapshot(mockRepo)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/livreurStats/snapshot", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidDate, decodeAPIError(t, rec).Code)
}

func TestGetDailyLivreurStats_DonneesIndisponibles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStats := reportingmocks.NewMockStatsService(ctrl)
	handler := GetDailyLivreurStats(mockStats)

	mockStats.EXPECT().
		GetDailyStats(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: lecture des commandes", reporting.ErrDonneesIndisponibles))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, statsRequest("date=2026-01-15&seuil_mata=20000&seuil_mlc=1750&seuil_mata_panier=10000"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, apiErrors.ErrUpstreamData, decodeAPIError(t, rec).Code)
}
