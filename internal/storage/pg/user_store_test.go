package pg

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/news-pulse/internal/domain"
	"github.com/DjordjeVuckovic/news-pulse/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_CreateAndFind(t *testing.T) {
	requirePool(t)
	truncateTables(t)
	store := NewUserStore(testPool)

	id, err := store.CreateUser(testCtx, domain.User{
		FullName:        "Ada Lovelace",
		Email:           "ada@example.com",
		PasswordHash:    "$2a$10$hash",
		PreferredTopics: []string{"science", "technology"},
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	u, err := store.FindUserByEmail(testCtx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)
	assert.Equal(t, []string{"science", "technology"}, u.PreferredTopics)
}

func TestUserStore_NilTopicsAndDuplicates(t *testing.T) {
	requirePool(t)
	truncateTables(t)
	store := NewUserStore(testPool)

	user := domain.User{FullName: "Bob", Email: "bob@example.com", PasswordHash: "h"}
	_, err := store.CreateUser(testCtx, user)
	require.NoError(t, err)

	u, err := store.FindUserByEmail(testCtx, "bob@example.com")
	require.NoError(t, err)
	assert.Nil(t, u.PreferredTopics)

	_, err = store.CreateUser(testCtx, user)
	assert.True(t, errors.Is(err, storage.ErrConflict))

	_, err = store.FindUserByEmail(testCtx, "nobody@example.com")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}
