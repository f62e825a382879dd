package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"bezbot/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapterGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectGet("bezbot:answer:question:abc").SetVal("cached value")

	val, err := cacheAdapter.Get(context.Background(), "bezbot:answer:question:abc")
	require.NoError(t, err)
	assert.Equal(t, "cached value", val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterGetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectGet("missing").RedisNil()

	_, err := cacheAdapter.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCacheAdapterGetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectGet("key").SetErr(errors.New("connection reset"))

	_, err := cacheAdapter.Get(context.Background(), "key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCacheAdapterSet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectSet("key", "value", time.Hour).SetVal("OK")

	assert.NoError(t, cacheAdapter.Set(context.Background(), "key", "value", time.Hour))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectDel("key").SetVal(1)

	assert.NoError(t, cacheAdapter.Delete(context.Background(), "key"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapterPing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cacheAdapter := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")

	assert.NoError(t, cacheAdapter.Ping(context.Background()))
}
