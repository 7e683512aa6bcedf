// Package repository contient les implémentations d'accès aux données
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
	commandesTable = "commandes c"
)

type CommandeRepository interface {
	GetByDate(date time.Time) ([]*domain.Commande, error)
	GetByLivreurAndDate(livreurID string, date time.Time) ([]*domain.Commande, error)
}

type commandeRepository struct {
	conn *postgres.Connection
}

func NewCommandeRepository(conn *postgres.Connection) CommandeRepository {
	return &commandeRepository{
		conn: conn,
	}
}

func (r *commandeRepository) GetByDate(date time.Time) ([]*domain.Commande, error) {
	query, args, err := squirrel.
		Select("c.id, c.reference, c.livreur_id, l.nom, c.ligne, c.montant, c.date, c.created_at").
		From(commandesTable).
		Join("livreurs l ON l.id = c.livreur_id").
		Where(squirrel.Eq{"c.date": date.Format(time.DateOnly)}).
		OrderBy("c.livreur_id ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête: %w", err)
	}

	return r.queryCommandes(query, args...)
}

func (r *commandeRepository) GetByLivreurAndDate(livreurID string, date time.Time) ([]*domain.Commande, error) {
	query, args, err := squirrel.
		Select("c.id, c.reference, c.livreur_id, l.nom, c.ligne, c.montant, c.date, c.created_at").
		From(commandesTable).
		Join("livreurs l ON l.id = c.livreur_id").
		Where(squirrel.Eq{"c.livreur_id": livreurID, "c.date": date.Format(time.DateOnly)}).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête: %w", err)
	}

	return r.queryCommandes(query, args...)
}

func (r *commandeRepository) queryCommandes(query string, args ...interface{}) ([]*domain.Commande, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erreur lors de l'exécution de la requête: %w", err)
	}
	defer rows.Close()

	commandes := make([]*domain.Commande, 0)
	for rows.Next() {
		commande, err := r.scanCommande(rows)
		if err != nil {
			return nil, fmt.Errorf("erreur lors du scan des commandes: %w", err)
		}
		commandes = append(commandes, commande)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur pendant l'itération des lignes: %w", err)
	}

	return commandes, nil
}

func (r *commandeRepository) scanCommande(rows *sql.Rows) (*domain.Commande, error) {
	commande := &domain.Commande{}
	var reference sql.NullString
	var ligne string

	err := rows.Scan(
		&commande.ID,
		&reference,
		&commande.LivreurID,
		&commande.LivreurNom,
		&ligne,
		&commande.Montant,
		&commande.Date,
		&commande.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	// La ligne métier est stockée telle quelle ; la validation des variantes
	// connues appartient au classificateur, pas au dépôt
	commande.Ligne = domain.Ligne(ligne)

	if reference.Valid {
		commande.Reference = reference.String
	}

	return commande, nil
}
