package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	cards := Catalog()
	require.Len(t, cards, 10)

	counts := map[CardKind]int{}
	ids := map[string]bool{}
	for _, c := range cards {
		counts[c.Kind]++
		assert.False(t, ids[c.ID], "duplicate card id %s", c.ID)
		ids[c.ID] = true
	}
	assert.Equal(t, 5, counts[TroopCard])
	assert.Equal(t, 3, counts[StratagemCard])
	assert.Equal(t, 2, counts[AmbushCard])

	for _, c := range cards {
		switch c.Kind {
		case TroopCard:
			assert.Positive(t, c.Stats.Cohesion, "%s needs cohesion to field a unit", c.Name)
			assert.Positive(t, c.Stats.Strength, c.Name)
		case AmbushCard:
			assert.Equal(t, TriggerOnEnter, c.Trigger, c.Name)
		}
	}
}

func TestBaseDeck(t *testing.T) {
	deck := BaseDeck()
	require.Len(t, deck, 15)

	perID := map[string]int{}
	for _, c := range deck {
		perID[c.ID]++
	}
	for _, c := range Catalog() {
		want := 1
		if c.IsTroop() {
			want = 2
		}
		assert.Equal(t, want, perID[c.ID], c.ID)
	}
}

func TestNewDeck(t *testing.T) {
	assert.Len(t, NewDeck(2), 30)
	assert.Empty(t, NewDeck(0))
}
