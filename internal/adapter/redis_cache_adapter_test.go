package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"cs-quiz/internal/cache"
	"cs-quiz/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

var errRedisDown = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")

func dailySetKey() string {
	return cache.DailySetKey(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
}

func TestRedisCacheAdapter_Get(t *testing.T) {
	key := dailySetKey()
	payload := `{"id":"01HQ3Z6V6B4M2N7Q8R9S0T1V2W","date":"2024-03-01","question_ids":["db001","al003"]}`

	tests := []struct {
		name    string
		setup   func(mock redismock.ClientMock)
		want    string
		wantErr error
	}{
		{
			name:  "hit",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet(key).SetVal(payload) },
			want:  payload,
		},
		{
			name:    "miss is translated",
			setup:   func(mock redismock.ClientMock) { mock.ExpectGet(key).SetErr(redis.Nil) },
			wantErr: domain.ErrCacheMiss,
		},
		{
			name:    "transport error is passed through",
			setup:   func(mock redismock.ClientMock) { mock.ExpectGet(key).SetErr(errRedisDown) },
			wantErr: errRedisDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			adapter := NewRedisCacheAdapter(client)
			tt.setup(mock)

			val, err := adapter.Get(context.Background(), key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, val)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, val)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(client)
	ctx := context.Background()
	key := dailySetKey()

	mock.ExpectSet(key, "v1", 24*time.Hour).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, key, "v1", 24*time.Hour))

	mock.ExpectSet(key, "v2", time.Hour).SetErr(errRedisDown)
	assert.ErrorIs(t, adapter.Set(ctx, key, "v2", time.Hour), errRedisDown)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(client)
	ctx := context.Background()
	key := dailySetKey()

	mock.ExpectDel(key).SetVal(1)
	assert.NoError(t, adapter.Delete(ctx, key))

	// Deleting an absent key is not an error.
	mock.ExpectDel(key).SetVal(0)
	assert.NoError(t, adapter.Delete(ctx, key))

	mock.ExpectDel(key).SetErr(errRedisDown)
	assert.ErrorIs(t, adapter.Delete(ctx, key), errRedisDown)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	client, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(client)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(context.Background()))

	mock.ExpectPing().SetErr(errRedisDown)
	assert.ErrorIs(t, adapter.Ping(context.Background()), errRedisDown)

	assert.NoError(t, mock.ExpectationsWereMet())
}
