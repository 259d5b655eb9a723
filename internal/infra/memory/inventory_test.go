//go:build unit

package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"stayfinder/internal/domain/review"
	"stayfinder/internal/infra/memory"
	"stayfinder/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addReview(t *testing.T, store *memory.Store, hotelID uuid.UUID, rating int) {
	t.Helper()
	rev, err := review.New(uuid.New(), hotelID, rating, nil, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, store.Reviews().Create(context.Background(), rev))
}

func TestFetchedHotelIsASnapshot(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	h := builder.NewHotelBuilder().WithApproved(false).Build()
	require.NoError(t, store.Inventory().CreateHotel(ctx, h))

	snapshot, err := store.Inventory().FindHotelByID(ctx, h.ID())
	require.NoError(t, err)

	addReview(t, store, h.ID(), 5)
	_, err = store.Inventory().ApproveHotel(ctx, h.ID())
	require.NoError(t, err)

	// The earlier fetch must not observe writes that happened after it.
	assert.Equal(t, 0, snapshot.ReviewCount())
	assert.Nil(t, snapshot.Rating())
	assert.False(t, snapshot.Approved())

	current, err := store.Inventory().FindHotelByID(ctx, h.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, current.ReviewCount())
	require.NotNil(t, current.Rating())
	assert.InDelta(t, 5.0, *current.Rating(), 0.001)
	assert.True(t, current.Approved())
}

func TestListedHotelsAreSnapshots(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	h := builder.NewHotelBuilder().Build()
	require.NoError(t, store.Inventory().CreateHotel(ctx, h))

	listed, err := store.Inventory().ListAllHotels(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	addReview(t, store, h.ID(), 4)
	assert.Equal(t, 0, listed[0].ReviewCount())
}

func TestConcurrentReadsAndReviewWrites(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	h := builder.NewHotelBuilder().Build()
	require.NoError(t, store.Inventory().CreateHotel(ctx, h))

	const writes = 20
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			rev, err := review.New(uuid.New(), h.ID(), 4, nil, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
			if assert.NoError(t, err) {
				assert.NoError(t, store.Reviews().Create(ctx, rev))
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			got, err := store.Inventory().FindHotelByID(ctx, h.ID())
			assert.NoError(t, err)
			assert.Equal(t, h.ID(), got.ID())
		}
	}()
	wg.Wait()

	final, err := store.Inventory().FindHotelByID(ctx, h.ID())
	require.NoError(t, err)
	assert.Equal(t, writes, final.ReviewCount())
}
