package credential_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-guardconsole/internal/credential"
	"go-guardconsole/internal/shared/contextutil"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := credential.NewRedisStore(rdb, time.Hour)
	ctx := contextutil.WithSessionID(context.Background(), "sess-9")

	t.Run("set writes the session key with ttl", func(t *testing.T) {
		mock.ExpectSet(credential.RedisKey("sess-9", credential.KeyToken), "abc", time.Hour).SetVal("OK")
		assert.NoError(t, store.Set(ctx, credential.KeyToken, "abc"))
	})

	t.Run("lookup falls through missing keys", func(t *testing.T) {
		mock.ExpectGet(credential.RedisKey("sess-9", credential.KeyToken)).RedisNil()
		mock.ExpectGet(credential.RedisKey("sess-9", credential.KeyAuthToken)).SetVal("legacy")

		token, ok, err := credential.Lookup(ctx, store)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "legacy", token)
	})

	t.Run("get surfaces redis errors", func(t *testing.T) {
		mock.ExpectGet(credential.RedisKey("sess-9", credential.KeyToken)).SetErr(errors.New("redis down"))
		_, _, err := store.Get(ctx, credential.KeyToken)
		assert.Error(t, err)
	})

	t.Run("clear deletes every key", func(t *testing.T) {
		mock.ExpectDel(
			credential.RedisKey("sess-9", credential.KeyToken),
			credential.RedisKey("sess-9", credential.KeyAuthToken),
			credential.RedisKey("sess-9", credential.KeyAccessToken),
		).SetVal(1)
		assert.NoError(t, credential.ClearAll(ctx, store))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
