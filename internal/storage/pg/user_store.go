package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(pool *ConnectionPool) *UserStore {
	return &UserStore{db: pool.conn}
}

func (s *UserStore) CreateUser(ctx context.Context, user domain.User) (int64, error) {
	var topicsJSON []byte
	if user.PreferredTopics != nil {
		var err error
		topicsJSON, err = json.Marshal(user.PreferredTopics)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal preferred topics: %w", err)
		}
	}

	cmd := `
		INSERT INTO users (full_name, email, password, preferred_topics)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := s.db.QueryRow(ctx, cmd, user.FullName, user.Email, user.PasswordHash, topicsJSON).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("create user: %w", storage.ErrConflict)
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *UserStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := `
		SELECT id, full_name, email, password, preferred_topics, created_at
		FROM users
		WHERE email = $1
	`
	var (
		u          domain.User
		topicsJSON []byte
	)
	err := s.db.QueryRow(ctx, q, email).Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&topicsJSON,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if len(topicsJSON) > 0 {
		if err := json.Unmarshal(topicsJSON, &u.PreferredTopics); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preferred topics: %w", err)
		}
	}
	return &u, nil
}

var _ storage.UserStorer = (*UserStore)(nil)
