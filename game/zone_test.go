package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Len(t, b.Zones, 6)

	wantCapacity := map[ZoneID]int{
		Left: 3, Center: 3, Right: 3, Reserve: 4, HQ: 2, Supply: 2,
	}
	for id, capacity := range wantCapacity {
		z := b.Zone(id)
		require.NotNil(t, z)
		assert.Equal(t, id, z.ID)
		assert.Equal(t, capacity, z.Capacity)
		assert.Empty(t, z.Units, "a new board starts with no units")
	}
}

func TestBoardAdjacency(t *testing.T) {
	b := NewBoard()

	t.Run("HQ and Supply connect only to Reserve", func(t *testing.T) {
		assert.Equal(t, []ZoneID{Reserve}, b.AdjacentTo(HQ))
		assert.Equal(t, []ZoneID{Reserve}, b.AdjacentTo(Supply))
	})

	t.Run("Reserve connects to every other zone", func(t *testing.T) {
		assert.ElementsMatch(t, []ZoneID{HQ, Supply, Left, Center, Right}, b.AdjacentTo(Reserve))
	})

	t.Run("lanes connect through Center, not directly", func(t *testing.T) {
		assert.ElementsMatch(t, []ZoneID{Reserve, Center}, b.AdjacentTo(Left))
		assert.ElementsMatch(t, []ZoneID{Reserve, Left, Right}, b.AdjacentTo(Center))
		assert.ElementsMatch(t, []ZoneID{Reserve, Center}, b.AdjacentTo(Right))
		assert.False(t, b.AreAdjacent(Left, Right))
	})

	t.Run("adjacency is symmetric", func(t *testing.T) {
		for _, from := range ZoneOrder {
			for _, to := range b.AdjacentTo(from) {
				assert.True(t, b.AreAdjacent(to, from),
					"expected %s adjacent to %s", to, from)
			}
		}
	})
}

func TestZoneHasSpace(t *testing.T) {
	b := NewBoard()
	z := b.Zone(HQ)
	card := Catalog()[0]

	require.True(t, z.HasSpace())
	z.Units = append(z.Units, NewUnit(card, 1, HQ))
	require.True(t, z.HasSpace())
	z.Units = append(z.Units, NewUnit(card, 2, HQ))
	require.False(t, z.HasSpace(), "HQ capacity is 2")
	require.LessOrEqual(t, len(z.Units), z.Capacity)
}

func TestParseZoneID(t *testing.T) {
	for _, id := range ZoneOrder {
		got, err := ParseZoneID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}

	_, err := ParseZoneID("MOON")
	assert.Error(t, err)
}
