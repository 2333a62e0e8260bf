package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestDraw(t *testing.T) {
	t.Run("draws from the top of the deck", func(t *testing.T) {
		p := NewPlayerState(1, BaseDeck(), NewStandardRules())
		top := p.Deck[len(p.Deck)-1]

		drawn := p.Draw(1, testRNG())

		require.Equal(t, 1, drawn)
		require.Len(t, p.Hand, 1)
		assert.Equal(t, top, p.Hand[0])
		assert.Len(t, p.Deck, 14)
	})

	t.Run("reshuffles discard into an empty deck", func(t *testing.T) {
		p := NewPlayerState(1, nil, NewStandardRules())
		p.Discard = BaseDeck()
		prior := append([]Card(nil), p.Discard...)

		drawn := p.Draw(3, testRNG())

		require.Equal(t, 3, drawn)
		assert.Empty(t, p.Discard, "discard is emptied by the reshuffle")
		assert.Len(t, p.Hand, 3)
		assert.Len(t, p.Deck, len(prior)-3)
		assert.ElementsMatch(t, prior, append(append([]Card(nil), p.Deck...), p.Hand...),
			"the reshuffled pool is exactly the prior discard contents")
	})

	t.Run("yields a partial draw when deck and discard run out", func(t *testing.T) {
		p := NewPlayerState(1, BaseDeck()[:2], NewStandardRules())

		drawn := p.Draw(5, testRNG())

		assert.Equal(t, 2, drawn)
		assert.Len(t, p.Hand, 2)
		assert.Empty(t, p.Deck)
	})

	t.Run("yields nothing when both piles are empty", func(t *testing.T) {
		p := NewPlayerState(1, nil, NewStandardRules())

		drawn := p.Draw(1, testRNG())

		assert.Zero(t, drawn)
		assert.Empty(t, p.Hand)
	})
}

func TestDrawConservesCards(t *testing.T) {
	p := NewPlayerState(1, NewDeck(2), NewStandardRules())
	rng := testRNG()
	total := p.OwnedCards()

	// Churn through several draw/spend cycles covering a reshuffle.
	for i := 0; i < 20; i++ {
		p.Draw(3, rng)
		for len(p.Hand) > 0 {
			p.SpendFromHand(0)
		}
		require.Equal(t, total, p.OwnedCards(), "every card stays in exactly one pile")
	}
}

func TestGainCommandPoints(t *testing.T) {
	rules := NewStandardRules()
	cases := []struct {
		name string
		from int
		want int
	}{
		{"from zero", 0, 2},
		{"near the cap", 4, 5},
		{"at the cap", 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayerState(1, nil, rules)
			p.CommandPoints = tc.from
			p.GainCommandPoints(rules)
			assert.Equal(t, tc.want, p.CommandPoints)
		})
	}
}

func TestSpendFromHand(t *testing.T) {
	p := NewPlayerState(1, BaseDeck(), NewStandardRules())
	p.Draw(3, testRNG())
	spent := p.Hand[1]
	remaining := []Card{p.Hand[0], p.Hand[2]}

	got := p.SpendFromHand(1)

	assert.Equal(t, spent, got)
	assert.Equal(t, remaining, p.Hand)
	assert.Equal(t, []Card{spent}, p.Discard)
}

func TestCardAt(t *testing.T) {
	p := NewPlayerState(1, BaseDeck(), NewStandardRules())
	p.Draw(2, testRNG())

	_, ok := p.CardAt(-1)
	assert.False(t, ok)
	_, ok = p.CardAt(2)
	assert.False(t, ok)

	card, ok := p.CardAt(0)
	require.True(t, ok)
	assert.Equal(t, p.Hand[0], card)
}
