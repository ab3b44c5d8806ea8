package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
)

// ArticleStorer persists catalog articles.
type ArticleStorer interface {
	// Insert creates a single article and returns it with its row id.
	// A duplicate article id yields ErrConflict.
	Insert(ctx context.Context, article domain.Article) (*domain.Article, error)
	// UpsertBulk inserts articles, overwriting every column of rows that
	// already exist with the same article id.
	UpsertBulk(ctx context.Context, articles []domain.Article) error
}

type UserStorer interface {
	// CreateUser returns the new user id, or ErrConflict for a taken email.
	CreateUser(ctx context.Context, user domain.User) (int64, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type StorerError string

const (
	ErrNotFound StorerError = "record not found"
	ErrConflict StorerError = "record already exists"
)

func (e StorerError) Error() string {
	return string(e)
}
