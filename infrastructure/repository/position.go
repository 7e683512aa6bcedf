package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/mataweb/livraison-manager-api/infrastructure/database/postgres"
	"github.com/mataweb/livraison-manager-api/internal/domain"
)

const (
	positionsTable = "livreur_positions p"
)

// PositionRepository ne conserve que la dernière position connue par
// livreur ; chaque remontée GPS écrase la précédente.
type PositionRepository interface {
	SaveOrUpdate(position *domain.Position) error
	ListLast() ([]*domain.Position, error)
}

type positionRepository struct {
	conn *postgres.Connection
}

func NewPositionRepository(conn *postgres.Connection) PositionRepository {
	return &positionRepository{
		conn: conn,
	}
}

func (r *positionRepository) SaveOrUpdate(position *domain.Position) error {
	query := squirrel.StatementBuilder.
		Insert("livreur_positions").
		Columns("livreur_id", "latitude", "longitude", "recorded_at").
		Values(
			position.LivreurID,
			position.Latitude,
			position.Longitude,
			position.RecordedAt,
		).
		Suffix(`
			ON CONFLICT (livreur_id) DO UPDATE SET
				latitude = EXCLUDED.latitude,
				longitude = EXCLUDED.longitude,
				recorded_at = EXCLUDED.recorded_at,
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

func (r *positionRepository) ListLast() ([]*domain.Position, error) {
	query, args, err := squirrel.
		Select("p.livreur_id, l.nom, p.latitude, p.longitude, p.recorded_at, p.updated_at").
		From(positionsTable).
		Join("livreurs l ON l.id = p.livreur_id").
		OrderBy("p.livreur_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erreur lors de l'exécution de la requête: %w", err)
	}
	defer rows.Close()

	positions := make([]*domain.Position, 0)
	for rows.Next() {
		position := &domain.Position{}
		err := rows.Scan(
			&position.LivreurID,
			&position.LivreurNom,
			&position.Latitude,
			&position.Longitude,
			&position.RecordedAt,
			&position.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erreur lors du scan des positions: %w", err)
		}
		positions = append(positions, position)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur pendant l'itération des lignes: %w", err)
	}

	return positions, nil
}
