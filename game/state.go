package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

type Phase int

const (
	StartPhase Phase = iota
	MainPhase
	EndPhase
	GameOverPhase
)

// Deploy failure modes. Each leaves the game state untouched.
var (
	ErrHandIndex = errors.New("hand index out of range")
	ErrNotTroop  = errors.New("card is not a troop")
	ErrZoneFull  = errors.New("zone is full")
)

// GameState is the dynamic state of a match: the turn counter, the active
// player, the board and both player states. Everything except the board
// topology and the rules mutates in place over the course of the match.
type GameState struct {
	Turn         int // counts full rounds: increments when control returns to player 1
	ActivePlayer int // 1 or 2
	Phase        Phase
	Board        *Board
	Rules        Rules
	P1           *PlayerState
	P2           *PlayerState

	rng *rand.Rand
}

// NewGameState constructs a fresh match: empty board, both players with a
// shuffled deck and a starting hand, player 1 to act on turn 1. The rng
// drives every shuffle, so a fixed seed reproduces the whole match setup.
func NewGameState(rules Rules, rng *rand.Rand) *GameState {
	gs := &GameState{
		Turn:         1,
		ActivePlayer: 1,
		Phase:        StartPhase,
		Board:        NewBoard(),
		Rules:        rules,
		rng:          rng,
	}
	gs.P1 = NewPlayerState(1, NewDeck(rules.DeckCopies), rules)
	gs.P2 = NewPlayerState(2, NewDeck(rules.DeckCopies), rules)
	gs.P1.ShuffleDeck(rng)
	gs.P2.ShuffleDeck(rng)
	gs.P1.Draw(rules.StartingHandSize, rng)
	gs.P2.Draw(rules.StartingHandSize, rng)
	return gs
}

// Player returns the state of the given player id.
func (gs *GameState) Player(id int) *PlayerState {
	if id == 1 {
		return gs.P1
	}
	return gs.P2
}

// Active returns the state of the player whose turn it is.
func (gs *GameState) Active() *PlayerState {
	return gs.Player(gs.ActivePlayer)
}

// OtherPlayer returns the opponent of the given player id.
func (gs *GameState) OtherPlayer(id int) int {
	if id == 1 {
		return 2
	}
	return 1
}

// BeginTurn runs the start phase for the active player: command point gain,
// one draw, and the attacked-this-turn reset on that player's units only.
// The match then sits in the main phase until an explicit end of turn.
func (gs *GameState) BeginTurn() {
	p := gs.Active()
	p.GainCommandPoints(gs.Rules)
	p.Draw(gs.Rules.DrawPerTurn, gs.rng)
	for _, z := range gs.Board.Zones {
		for _, u := range z.Units {
			if u.Owner == p.ID {
				u.Attacked = false
			}
		}
	}
	gs.Phase = MainPhase
}

// Deploy instantiates the troop card at the player's hand index into the
// target zone. This is the only unit-creation path. Fails without mutation
// when the index is out of range, the card is not a troop, or the zone has
// no free capacity. On success the card moves from hand to discard and the
// new unit joins the zone's occupant sequence.
func (gs *GameState) Deploy(playerID, handIndex int, target ZoneID) error {
	p := gs.Player(playerID)
	card, ok := p.CardAt(handIndex)
	if !ok {
		return fmt.Errorf("deploy position %d: %w", handIndex, ErrHandIndex)
	}
	if !card.IsTroop() {
		return fmt.Errorf("deploy %s: %w", card.Name, ErrNotTroop)
	}
	z := gs.Board.Zone(target)
	if !z.HasSpace() {
		return fmt.Errorf("deploy to %s: %w", target, ErrZoneFull)
	}

	z.Units = append(z.Units, NewUnit(card, p.ID, target))
	p.SpendFromHand(handIndex)
	return nil
}

// EndTurn passes control to the other player. The turn counter ticks only
// when control returns to player 1, so it counts full round pairs.
func (gs *GameState) EndTurn() {
	gs.Phase = EndPhase
	gs.ActivePlayer = gs.OtherPlayer(gs.ActivePlayer)
	if gs.ActivePlayer == 1 {
		gs.Turn++
	}
	gs.Phase = StartPhase
}

// Concede drops the player's morale to zero; the next win check ends the
// match in the opponent's favor.
func (gs *GameState) Concede(playerID int) {
	gs.Player(playerID).Morale = 0
}

// Winner reports the match result: the winning player id, or 0 while the
// game is still running. A player wins when the opponent's morale is <= 0.
// Player 2's morale is evaluated first, so a simultaneous double knockout
// deterministically reports player 1. Policy choice kept for
// reproducibility; no mutation happens here.
func (gs *GameState) Winner() int {
	if gs.P2.Morale <= 0 {
		return 1
	}
	if gs.P1.Morale <= 0 {
		return 2
	}
	return 0
}
