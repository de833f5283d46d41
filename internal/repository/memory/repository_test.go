package memoryrepository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hedgeapi/internal/repository"
)

type item struct {
	ID        string         `bson:"_id,omitempty"`
	Kind      string         `bson:"kind"`
	N         int            `bson:"n"`
	Meta      map[string]any `bson:"meta"`
	CreatedAt *time.Time     `bson:"created_at,omitempty"`
}

func TestInsertFind(t *testing.T) {
	s := New()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 6000000, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		kind := "a"
		if i%2 == 1 {
			kind = "b"
		}
		id, err := s.Insert(ctx, "items", item{ID: "ignored", Kind: kind, N: i, Meta: map[string]any{"k": "v"}})
		require.NoError(t, err)
		require.Len(t, id, 24)
		assert.NotEqual(t, "ignored", id)
	}

	var all []item
	require.NoError(t, s.Find(ctx, "items", nil, 0, &all))
	require.Len(t, all, 4)
	assert.Equal(t, 0, all[0].N)
	assert.Equal(t, "v", all[0].Meta["k"])
	require.NotNil(t, all[0].CreatedAt)
	assert.True(t, all[0].CreatedAt.Equal(fixed))

	var bs []item
	require.NoError(t, s.Find(ctx, "items", repository.Filter{"kind": "b"}, 0, &bs))
	assert.Len(t, bs, 2)

	var limited []item
	require.NoError(t, s.Find(ctx, "items", nil, 3, &limited))
	assert.Len(t, limited, 3)

	var none []item
	require.NoError(t, s.Find(ctx, "missing", nil, 10, &none))
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFind_RequiresSlicePointer(t *testing.T) {
	var out item
	err := New().Find(context.Background(), "items", nil, 0, &out)
	var se *repository.StorageError
	assert.ErrorAs(t, err, &se)
}

func TestCanceledContextIsUnavailable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := New()
	_, err := s.Insert(ctx, "items", item{})
	assert.True(t, repository.IsUnavailable(err))
	assert.True(t, repository.IsUnavailable(s.Ping(ctx)))
	assert.NoError(t, s.Ping(context.Background()))
}

func TestCollectionNames(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, _ = s.Insert(ctx, "trade", item{})
	_, _ = s.Insert(ctx, "signal", item{})
	names, err := s.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"signal", "trade"}, names)
	assert.Equal(t, 1, s.Len("trade"))
}
