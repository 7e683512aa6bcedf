package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mataweb/livraison-manager-api/infrastructure/database/postgres"
	"github.com/mataweb/livraison-manager-api/internal/domain"
)

const (
	statsSnapshotsTable = "stats_snapshots s"
)

type StatsSnapshotRepository interface {
	GetByDate(date time.Time) (*domain.StatsSnapshot, error)
	SaveOrUpdate(snapshot *domain.StatsSnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type statsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewStatsSnapshotRepository(conn *postgres.Connection) StatsSnapshotRepository {
	return &statsSnapshotRepository{
		conn: conn,
	}
}

func (r *statsSnapshotRepository) GetByDate(date time.Time) (*domain.StatsSnapshot, error) {
	query, args, err := squirrel.
		Select("s.id, s.date, s.report, s.created_at, s.updated_at").
		From(statsSnapshotsTable).
		Where(squirrel.Eq{"s.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	snapshot := &domain.StatsSnapshot{}
	var reportJSON []byte

	err = row.Scan(
		&snapshot.ID,
		&snapshot.Date,
		&reportJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erreur lors du scan de l'instantané: %w", err)
	}

	if reportJSON != nil {
		report := &domain.DailyStatsReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, fmt.Errorf("erreur lors de la désérialisation du rapport: %w", err)
		}
		snapshot.Report = report
	}

	return snapshot, nil
}

func (r *statsSnapshotRepository) SaveOrUpdate(snapshot *domain.StatsSnapshot) error {
	var reportJSON []byte
	var err error

	if snapshot.Report != nil {
		reportJSON, err = json.Marshal(snapshot.Report)
		if err != nil {
			return fmt.Errorf("erreur lors de la sérialisation du rapport: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("stats_snapshots").
		Columns("id", "date", "report").
		Values(
			snapshot.ID,
			snapshot.Date.Format(time.DateOnly),
			reportJSON,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				report = EXCLUDED.report,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erreur lors de la construction de la requête: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erreur base de données: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erreur lors de l'exécution de la requête: %w", err)
	}

	return nil
}

func (r *statsSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("stats_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erreur lors de la construction de la requête: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erreur lors de l'exécution de la requête: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erreur lors de la lecture du nombre de lignes affectées: %w", err)
	}

	return rowsAffected, nil
}
