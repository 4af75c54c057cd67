package sessionstate

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/mentorlink/internal/app/models"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	state := &State{
		Authenticated: true,
		Identity: &models.Identity{
			UserID: "usr_1",
			Name:   "Ayse Demir",
			Email:  "ayse.demir@campus.edu",
			Type:   models.TypeFaculty,
			IsHOD:  true,
			Labels: []string{"mentor"},
		},
	}

	require.NoError(t, store.Save(ctx, "client-1", state))

	loaded, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state, loaded)
}

func TestRedisStoreMissReturnsNil(t *testing.T) {
	store, _ := newTestRedisStore(t)

	loaded, err := store.Load(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStoreClearIsIdempotent(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "client-1", &State{Authenticated: true}))
	require.NoError(t, store.Clear(ctx, "client-1"))
	require.NoError(t, store.Clear(ctx, "client-1"))

	loaded, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStoreCorruptValueBehavesLikeMiss(t *testing.T) {
	store, mr := newTestRedisStore(t)

	require.NoError(t, mr.Set(stateKey("client-1"), "{not json"))

	loaded, err := store.Load(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state := &State{Authenticated: true, Identity: &models.Identity{UserID: "usr_1", Type: models.TypeAdmin}}
	require.NoError(t, store.Save(ctx, "client-1", state))

	loaded, err := store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, state, loaded)

	require.NoError(t, store.Clear(ctx, "client-1"))
	loaded, err = store.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
