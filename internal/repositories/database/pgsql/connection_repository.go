package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/FurkanErogluu/shopping-cart/internal/apperrors"
	"github.com/FurkanErogluu/shopping-cart/internal/core/domain"
	portsrepo "github.com/FurkanErogluu/shopping-cart/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxConnectionRepository struct {
	BaseRepository
}

func newPgxConnectionRepository(pool *pgxpool.Pool) portsrepo.ConnectionRepository {
	return &PgxConnectionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxConnectionRepository implements portsrepo.ConnectionRepository
var _ portsrepo.ConnectionRepository = (*PgxConnectionRepository)(nil)

func (r *PgxConnectionRepository) SaveConnection(ctx context.Context, connection domain.UserConnection) error {
	query := `
		INSERT INTO user_connections (connection_id, user1_id, user2_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		connection.ConnectionID,
		connection.User1ID,
		connection.User2ID,
		connection.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to save connection: %w", err)
	}
	return nil
}

func (r *PgxConnectionRepository) FindConnectionByID(ctx context.Context, connectionID string) (*domain.UserConnection, error) {
	query := `
		SELECT connection_id, user1_id, user2_id, created_at
		FROM user_connections
		WHERE connection_id = $1;
	`
	var connection domain.UserConnection
	err := r.Pool.QueryRow(ctx, query, connectionID).Scan(
		&connection.ConnectionID,
		&connection.User1ID,
		&connection.User2ID,
		&connection.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find connection by ID %s: %w", connectionID, err)
	}
	return &connection, nil
}

func (r *PgxConnectionRepository) FindConnectionBetween(ctx context.Context, userAID, userBID string) (*domain.UserConnection, error) {
	user1ID, user2ID := domain.CanonicalPair(userAID, userBID)
	query := `
		SELECT connection_id, user1_id, user2_id, created_at
		FROM user_connections
		WHERE user1_id = $1 AND user2_id = $2;
	`
	var connection domain.UserConnection
	err := r.Pool.QueryRow(ctx, query, user1ID, user2ID).Scan(
		&connection.ConnectionID,
		&connection.User1ID,
		&connection.User2ID,
		&connection.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find connection between users: %w", err)
	}
	return &connection, nil
}

func (r *PgxConnectionRepository) ListConnectionsByUserID(ctx context.Context, userID string) ([]domain.UserConnection, error) {
	query := `
		SELECT connection_id, user1_id, user2_id, created_at
		FROM user_connections
		WHERE user1_id = $1 OR user2_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer rows.Close()

	connections := []domain.UserConnection{}
	for rows.Next() {
		var connection domain.UserConnection
		if err := rows.Scan(
			&connection.ConnectionID,
			&connection.User1ID,
			&connection.User2ID,
			&connection.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan connection row: %w", err)
		}
		connections = append(connections, connection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating connection rows: %w", err)
	}
	return connections, nil
}

func (r *PgxConnectionRepository) AreUsersConnected(ctx context.Context, userAID, userBID string) (bool, error) {
	user1ID, user2ID := domain.CanonicalPair(userAID, userBID)
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_connections
			WHERE user1_id = $1 AND user2_id = $2
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, user1ID, user2ID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check connection existence: %w", err)
	}
	return exists, nil
}

func (r *PgxConnectionRepository) DeleteConnection(ctx context.Context, connectionID string) error {
	query := `DELETE FROM user_connections WHERE connection_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, connectionID)
	if err != nil {
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
