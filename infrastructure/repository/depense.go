package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mataweb/livraison-manager-api/infrastructure/database/postgres"
	"github.com/mataweb/livraison-manager-api/internal/domain"
)

const (
	depensesTable = "depenses d"
)

type DepenseRepository interface {
	GetByDate(date time.Time) ([]*domain.Depense, error)
}

type depenseRepository struct {
	conn *postgres.Connection
}

func NewDepenseRepository(conn *postgres.Connection) DepenseRepository {
	return &depenseRepository{
		conn: conn,
	}
}

func (r *depenseRepository) GetByDate(date time.Time) ([]*domain.Depense, error) {
	query, args, err := squirrel.
		Select("d.id, d.livreur_id, d.categorie, d.montant, d.date, d.created_at").
		From(depensesTable).
		Where(squirrel.Eq{"d.date": date.Format(time.DateOnly)}).
		OrderBy("d.livreur_id ASC", "d.id ASC").
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

	depenses := make([]*domain.Depense, 0)
	for rows.Next() {
		depense, err := r.scanDepense(rows)
		if err != nil {
			return nil, fmt.Errorf("erreur lors du scan des dépenses: %w", err)
		}
		depenses = append(depenses, depense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur pendant l'itération des lignes: %w", err)
	}

	return depenses, nil
}

func (r *depenseRepository) scanDepense(rows *sql.Rows) (*domain.Depense, error) {
	depense := &domain.Depense{}
	var categorie sql.NullString

	err := rows.Scan(
		&depense.ID,
		&depense.LivreurID,
		&categorie,
		&depense.Montant,
		&depense.Date,
		&depense.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Catégorie NULL laissée vide ; l'agrégateur applique la politique du
	// seau non_categorise
	if categorie.Valid {
		depense.Categorie = categorie.String
	}

	return depense, nil
}
