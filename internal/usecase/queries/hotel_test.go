//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stayfinder/internal/infra/memory"
	"stayfinder/internal/usecase/commands"
	"stayfinder/internal/usecase/queries"
	"stayfinder/internal/usecase/shared"
	"stayfinder/tests/common/builder"
	"stayfinder/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type hotelQueryFixture struct {
	ctx     context.Context
	store   *memory.Store
	cache   *testutil.MemCache
	queries queries.HotelQueries
}

func newHotelQueryFixture() *hotelQueryFixture {
	store := memory.NewStore()
	cache := testutil.NewMemCache()
	return &hotelQueryFixture{
		ctx:     context.Background(),
		store:   store,
		cache:   cache,
		queries: queries.NewHotelQueries(store.Inventory(), cache, time.Minute),
	}
}

func (f *hotelQueryFixture) addHotel(t *testing.T, b *builder.HotelBuilder) uuid.UUID {
	t.Helper()
	h := b.Build()
	require.NoError(t, f.store.Inventory().CreateHotel(f.ctx, h))
	return h.ID()
}

func (f *hotelQueryFixture) addRoom(t *testing.T, hotelID uuid.UUID, price float64) {
	t.Helper()
	room := builder.NewRoomBuilder().WithHotelID(hotelID).WithPrice(price).Build()
	require.NoError(t, f.store.Inventory().CreateRoom(f.ctx, room))
}

func TestListHotelsFilter(t *testing.T) {
	f := newHotelQueryFixture()

	hammamet := f.addHotel(t, builder.NewHotelBuilder().WithName("Royal Azur Thalasso").WithCity("Hammamet").WithStars(5))
	sousse := f.addHotel(t, builder.NewHotelBuilder().WithName("Movenpick Resort").WithCity("Sousse").WithStars(5))
	yasmine := f.addHotel(t, builder.NewHotelBuilder().WithName("Diar Lemdina").WithCity("Yasmine Hammamet").WithStars(4))
	f.addHotel(t, builder.NewHotelBuilder().WithName("Hidden Riad").WithCity("Tunis").WithApproved(false))

	f.addRoom(t, hammamet, 90)
	f.addRoom(t, hammamet, 250)
	f.addRoom(t, sousse, 150)
	f.addRoom(t, yasmine, 90)

	ids := func(filter shared.HotelFilter) []uuid.UUID {
		hotels, err := f.queries.List(f.ctx, filter)
		require.NoError(t, err)
		out := make([]uuid.UUID, len(hotels))
		for i, h := range hotels {
			out[i] = h.ID()
		}
		return out
	}

	t.Run("no filter returns approved hotels only", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{hammamet, sousse, yasmine}, ids(shared.HotelFilter{}))
	})

	t.Run("city match is case-insensitive substring", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{hammamet, yasmine}, ids(shared.HotelFilter{City: ptr("hammamet")}))
	})

	t.Run("stars is exact", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{yasmine}, ids(shared.HotelFilter{Stars: ptr(4)}))
	})

	t.Run("text query spans name and city", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{sousse}, ids(shared.HotelFilter{Query: ptr("movenpick")}))
	})

	t.Run("min price matches through rooms", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{hammamet}, ids(shared.HotelFilter{MinPrice: ptr(200.0)}))
	})

	t.Run("max price matches through rooms", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{hammamet, yasmine}, ids(shared.HotelFilter{MaxPrice: ptr(100.0)}))
	})

	t.Run("price bounds may be satisfied by different rooms", func(t *testing.T) {
		// Each bound checks the room list independently: 250 covers the min
		// bound and 90 the max, even though no single room sits in [100, 200].
		assert.Equal(t, []uuid.UUID{hammamet, sousse},
			ids(shared.HotelFilter{MinPrice: ptr(100.0), MaxPrice: ptr(200.0)}))
	})

	t.Run("combined filters intersect", func(t *testing.T) {
		assert.Equal(t, []uuid.UUID{hammamet},
			ids(shared.HotelFilter{City: ptr("Hammamet"), Stars: ptr(5), MaxPrice: ptr(100.0)}))
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		assert.Empty(t, ids(shared.HotelFilter{City: ptr("Djerba")}))
	})
}

func TestGetByIDCaching(t *testing.T) {
	f := newHotelQueryFixture()
	id := f.addHotel(t, builder.NewHotelBuilder().WithName("Royal Azur Thalasso"))

	first, err := f.queries.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.Misses)

	second, err := f.queries.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.Hits)
	assert.Equal(t, first.Name(), second.Name())
	assert.Equal(t, first.ID(), second.ID())

	_, err = f.queries.GetByID(f.ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrHotelNotFound)
}

func TestRegisterThenApproveVisibility(t *testing.T) {
	f := newHotelQueryFixture()
	cmds := commands.NewHotelCommands(f.store.Inventory(), f.cache)

	h, err := cmds.RegisterHotel(f.ctx, commands.RegisterHotelInput{
		Name: "Dar Said",
		City: "Sidi Bou Said",
	})
	require.NoError(t, err)

	// invisible to the public list, visible to admins
	public, err := f.queries.List(f.ctx, shared.HotelFilter{})
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := f.queries.ListAll(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	approved, err := cmds.ApproveHotel(f.ctx, h.ID())
	require.NoError(t, err)
	assert.True(t, approved.Approved())

	public, err = f.queries.List(f.ctx, shared.HotelFilter{})
	require.NoError(t, err)
	assert.Len(t, public, 1)

	// approving again is still fine
	_, err = cmds.ApproveHotel(f.ctx, h.ID())
	assert.NoError(t, err)

	_, err = cmds.ApproveHotel(f.ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrHotelNotFound)
}

func TestRoomQueries(t *testing.T) {
	f := newHotelQueryFixture()
	id := f.addHotel(t, builder.NewHotelBuilder())
	f.addRoom(t, id, 90)
	f.addRoom(t, id, 150)

	t.Run("rooms for hotel", func(t *testing.T) {
		rooms, err := f.queries.RoomsForHotel(f.ctx, id)
		require.NoError(t, err)
		assert.Len(t, rooms, 2)
	})

	t.Run("unknown hotel yields empty slice", func(t *testing.T) {
		rooms, err := f.queries.RoomsForHotel(f.ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, rooms)
	})

	t.Run("unknown room is not found", func(t *testing.T) {
		_, err := f.queries.GetRoom(f.ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrRoomNotFound)
	})
}
