package game

import "golang.org/x/exp/rand"

// PlayerState is one player's side of the match: morale, command points and
// the three card piles. Every card the player owns sits in exactly one of
// Deck, Hand or Discard; all pile mutation goes through PlayerState methods
// so that invariant holds. The top of the deck is the last element.
type PlayerState struct {
	ID            int
	Morale        int
	CommandPoints int
	Deck          []Card
	Hand          []Card
	Discard       []Card
}

// NewPlayerState creates a player with a full (unshuffled) deck, starting
// morale and no command points.
func NewPlayerState(id int, deck []Card, rules Rules) *PlayerState {
	return &PlayerState{
		ID:     id,
		Morale: rules.StartingMorale,
		Deck:   deck,
	}
}

// ShuffleDeck permutates the draw pile in place.
func (p *PlayerState) ShuffleDeck(rng *rand.Rand) {
	rng.Shuffle(len(p.Deck), func(i, j int) {
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	})
}

// Draw moves up to n cards from the top of the deck into the hand, one at a
// time. An empty deck reshuffles the discard pile back in; when discard is
// empty too the draw silently yields fewer cards. Returns the number of
// cards actually drawn.
func (p *PlayerState) Draw(n int, rng *rand.Rand) int {
	drawn := 0
	for i := 0; i < n; i++ {
		if len(p.Deck) == 0 {
			if len(p.Discard) == 0 {
				break
			}
			p.Deck = append(p.Deck, p.Discard...)
			p.Discard = nil
			p.ShuffleDeck(rng)
		}
		top := len(p.Deck) - 1
		p.Hand = append(p.Hand, p.Deck[top])
		p.Deck = p.Deck[:top]
		drawn++
	}
	return drawn
}

// GainCommandPoints applies the per-turn command point income, clamped to
// the rules cap.
func (p *PlayerState) GainCommandPoints(rules Rules) {
	p.CommandPoints += rules.CommandPointGain
	if p.CommandPoints > rules.CommandPointCap {
		p.CommandPoints = rules.CommandPointCap
	}
}

// CardAt returns the hand card at index i, if the index is in range.
func (p *PlayerState) CardAt(i int) (Card, bool) {
	if i < 0 || i >= len(p.Hand) {
		return Card{}, false
	}
	return p.Hand[i], true
}

// SpendFromHand removes the card at hand index i and puts it in the discard
// pile. The index must be valid. The physical card is consumed even when a
// deployed unit keeps a copy of its definition.
func (p *PlayerState) SpendFromHand(i int) Card {
	card := p.Hand[i]
	p.Discard = append(p.Discard, card)
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card
}

// OwnedCards is the total number of cards across all three piles.
func (p *PlayerState) OwnedCards() int {
	return len(p.Deck) + len(p.Hand) + len(p.Discard)
}
