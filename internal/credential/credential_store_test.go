package credential_test

import (
	"context"
	"testing"

	"go-guardconsole/internal/credential"
	"go-guardconsole/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_PriorityOrder(t *testing.T) {
	store := credential.NewMemoryStore()
	ctx := contextutil.WithSessionID(context.Background(), "sess-1")

	_, ok, err := credential.Lookup(ctx, store)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, credential.KeyAccessToken, "legacy-access"))
	token, ok, err := credential.Lookup(ctx, store)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "legacy-access", token)

	require.NoError(t, store.Set(ctx, credential.KeyAuthToken, "legacy-auth"))
	token, _, _ = credential.Lookup(ctx, store)
	assert.Equal(t, "legacy-auth", token)

	require.NoError(t, store.Set(ctx, credential.KeyToken, "current"))
	token, _, _ = credential.Lookup(ctx, store)
	assert.Equal(t, "current", token)
}

func TestClearAll(t *testing.T) {
	store := credential.NewMemoryStore()
	ctx := contextutil.WithSessionID(context.Background(), "sess-1")
	other := contextutil.WithSessionID(context.Background(), "sess-2")

	for _, k := range credential.Keys {
		require.NoError(t, store.Set(ctx, k, "v-"+k))
	}
	require.NoError(t, store.Set(other, credential.KeyToken, "other"))

	require.NoError(t, credential.ClearAll(ctx, store))

	_, ok, err := credential.Lookup(ctx, store)
	require.NoError(t, err)
	assert.False(t, ok)

	token, ok, _ := credential.Lookup(other, store)
	assert.True(t, ok)
	assert.Equal(t, "other", token)
}

func TestMemoryStore_WithoutSession(t *testing.T) {
	store := credential.NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, store.Set(ctx, credential.KeyToken, "x"), credential.ErrNoSession)
	_, ok, err := store.Get(ctx, credential.KeyToken)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, store.Delete(ctx, credential.Keys...))
}
