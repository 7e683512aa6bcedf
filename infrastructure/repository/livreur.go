package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mataweb/livraison-manager-api/infrastructure/database/postgres"
	"github.com/mataweb/livraison-manager-api/internal/domain"
)

const (
	livreursTable = "livreurs l"
)

type LivreurRepository interface {
	ListLivreurs(statuses []domain.LivreurStatus) ([]*domain.Livreur, error)
	GetByID(id string) (*domain.Livreur, error)
}

type livreurRepository struct {
	conn *postgres.Connection
}

func NewLivreurRepository(conn *postgres.Connection) LivreurRepository {
	return &livreurRepository{
		conn: conn,
	}
}

func (r *livreurRepository) ListLivreurs(statuses []domain.LivreurStatus) ([]*domain.Livreur, error) {
	builder := squirrel.
		Select("l.id, l.nom, l.telephone, l.status, l.created_at, l.updated_at").
		From(livreursTable).
		OrderBy("l.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"l.status": statuses})
	}

	query, args, err := builder.ToSql()
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

	livreurs := make([]*domain.Livreur, 0)
	for rows.Next() {
		livreur, err := scanLivreur(rows)
		if err != nil {
			return nil, fmt.Errorf("erreur lors du scan des livreurs: %w", err)
		}
		livreurs = append(livreurs, livreur)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur pendant l'itération des lignes: %w", err)
	}

	return livreurs, nil
}

func (r *livreurRepository) GetByID(id string) (*domain.Livreur, error) {
	query, args, err := squirrel.
		Select("l.id, l.nom, l.telephone, l.status, l.created_at, l.updated_at").
		From(livreursTable).
		Where(squirrel.Eq{"l.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	livreur := &domain.Livreur{}
	var telephone sql.NullString
	var status string

	err = row.Scan(
		&livreur.ID,
		&livreur.Nom,
		&telephone,
		&status,
		&livreur.CreatedAt,
		&livreur.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erreur lors du scan du livreur: %w", err)
	}

	livreur.Status = domain.LivreurStatus(status)
	if telephone.Valid {
		livreur.Telephone = &telephone.String
	}

	return livreur, nil
}

func scanLivreur(rows *sql.Rows) (*domain.Livreur, error) {
	livreur := &domain.Livreur{}
	var telephone sql.NullString
	var status string

	err := rows.Scan(
		&livreur.ID,
		&livreur.Nom,
		&telephone,
		&status,
		&livreur.CreatedAt,
		&livreur.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	livreur.Status = domain.LivreurStatus(status)
	if telephone.Valid {
		livreur.Telephone = &telephone.String
	}

	return livreur, nil
}
