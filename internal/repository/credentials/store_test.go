package credentials

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourguide-client/internal/domain"
)

func TestStore_SaveAndRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, ".tourguide/credentials.json", zap.NewNop())
	ctx := context.Background()

	user := &domain.User{
		ID:        "u1",
		Name:      "Ana",
		Email:     "ana@example.com",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Save(ctx, "token-123", user))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)

	cached, err := store.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, user.ID, cached.ID)
	assert.Equal(t, user.Email, cached.Email)
}

func TestStore_EmptyWhenMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "credentials.json", zap.NewNop())
	ctx := context.Background()

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	user, err := store.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestStore_ClearRemovesBoth(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "credentials.json", zap.NewNop())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-123", &domain.User{ID: "u1"}))
	require.NoError(t, store.Clear(ctx))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	user, err := store.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	// Clearing an already empty store is not an error.
	assert.NoError(t, store.Clear(ctx))
}

func TestStore_CorruptedFileTreatedAsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "credentials.json", []byte("{not json"), 0o600))

	store := NewStore(fs, "credentials.json", zap.NewNop())

	token, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}
