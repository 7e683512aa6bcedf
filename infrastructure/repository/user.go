package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/mataweb/livraison-manager-api/infrastructure/database/postgres"
	"github.com/mataweb/livraison-manager-api/internal/domain"
)

const (
	usersTable = "users u"

	userColumns = "u.id, u.nom, u.prenom, u.email, u.password_hash, u.active, u.role_id, u.livreur_id, u.deleted, u.deleted_at, u.created_at, u.updated_at"
)

type UserRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id int) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"u.email": email, "u.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête: %w", err)
	}

	return r.scanUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) GetUserByID(id int) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(squirrel.Eq{"u.id": id, "u.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la construction de la requête: %w", err)
	}

	return r.scanUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var livreurID sql.NullString
	var deletedAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Nom,
		&user.Prenom,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&livreurID,
		&user.Deleted,
		&deletedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erreur lors du scan de l'utilisateur: %w", err)
	}

	if livreurID.Valid {
		user.LivreurID = &livreurID.String
	}
	if deletedAt.Valid {
		user.DeletedAt = &deletedAt.Time
	}

	return user, nil
}
