// Package engine drives a match turn by turn. It owns the game state and is
// the single arbiter for mutations: one commander decision is processed at a
// time, so there is no concurrent access to the state.
package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"clash/game"
)

// Commander supplies one player's decisions during the main phase. The
// engine calls it with fresh board and hand snapshots and blocks until a
// decision is available.
type Commander interface {
	NextAction(board []game.ZoneView, hand game.HandView) game.Action
}

// Action-level rejections. Component-level failures (deploy) surface as the
// game package's sentinel errors; none of them are fatal to the match.
var (
	ErrNotYourTurn    = errors.New("not the active player")
	ErrWrongPhase     = errors.New("action outside the main phase")
	ErrZoneNotAllowed = errors.New("zone not deployable in this version")
)

// Engine runs one match between two commanders.
type Engine struct {
	State      *game.GameState
	Commanders map[int]Commander
}

// New wires a game state to the two players' commanders.
func New(state *game.GameState, p1, p2 Commander) *Engine {
	return &Engine{
		State:      state,
		Commanders: map[int]Commander{1: p1, 2: p2},
	}
}

// Run executes the game loop until a winner is found and returns the
// winning player id. The win check runs before each turn.
func (e *Engine) Run() int {
	for {
		if w := e.State.Winner(); w != 0 {
			e.State.Phase = game.GameOverPhase
			log.Info().Int("winner", w).Int("turn", e.State.Turn).Msg("game over")
			return w
		}
		e.playTurn()
	}
}

// playTurn drives one player turn through its phases: start (resources,
// draw, attack-flag reset), then main until the commander ends the turn.
func (e *Engine) playTurn() {
	pid := e.State.ActivePlayer
	log.Info().Int("turn", e.State.Turn).Int("player", pid).Msg("turn started")

	e.State.BeginTurn()
	for e.State.Phase == game.MainPhase {
		action := e.Commanders[pid].NextAction(e.State.BoardView(), e.State.HandViewFor(pid))
		if err := e.Apply(action); err != nil {
			log.Warn().Err(err).Int("player", pid).Msg("action rejected")
		}
	}
}

// Apply validates and executes a single action request. Failures are
// reported to the caller and leave the state unchanged; the commander is
// free to retry with a different action.
func (e *Engine) Apply(a game.Action) error {
	if a.PlayerID != e.State.ActivePlayer {
		return fmt.Errorf("player %d: %w", a.PlayerID, ErrNotYourTurn)
	}
	if e.State.Phase != game.MainPhase {
		return ErrWrongPhase
	}
	switch a.Type {
	case game.EndTurnAction:
		e.State.EndTurn()
		return nil
	case game.ConcedeAction:
		e.State.Concede(a.PlayerID)
		e.State.EndTurn()
		return nil
	case game.DeployAction:
		if !e.State.Rules.CanDeployTo(a.Zone) {
			return fmt.Errorf("zone %s: %w", a.Zone, ErrZoneNotAllowed)
		}
		return e.State.Deploy(a.PlayerID, a.HandIndex, a.Zone)
	default:
		return fmt.Errorf("unknown action type %d", a.Type)
	}
}
