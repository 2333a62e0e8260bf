// Package cli is the text presentation layer: it renders board and hand
// snapshots and translates typed commands into engine action requests. It
// holds no game state of its own.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"clash/game"
)

// Commander reads player decisions from a text stream. Both players can
// share one Commander for hot-seat play.
type Commander struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewCommander builds a text commander over the given input and output.
func NewCommander(in io.Reader, out io.Writer) *Commander {
	return &Commander{in: bufio.NewScanner(in), out: out}
}

// NextAction renders the current snapshots and prompts until the player
// produces a well-formed action. Malformed input never reaches the engine:
// the player is told what was wrong and re-prompted. End of input concedes.
func (c *Commander) NextAction(board []game.ZoneView, hand game.HandView) game.Action {
	c.RenderBoard(board)
	c.RenderHand(hand)

	for {
		fmt.Fprint(c.out, "Type 'd' to deploy a troop, or 'end' to end turn: ")
		line, ok := c.readLine()
		if !ok {
			return game.Action{PlayerID: hand.PlayerID, Type: game.ConcedeAction}
		}
		switch line {
		case "end":
			return game.Action{PlayerID: hand.PlayerID, Type: game.EndTurnAction}
		case "quit":
			return game.Action{PlayerID: hand.PlayerID, Type: game.ConcedeAction}
		case "d":
			action, ok := c.promptDeploy(hand.PlayerID)
			if !ok {
				continue
			}
			return action
		default:
			fmt.Fprintln(c.out, "Unknown command.")
		}
	}
}

// promptDeploy collects and validates the hand position and target zone.
// Hand positions are 1-based on screen, 0-based in actions.
func (c *Commander) promptDeploy(playerID int) (game.Action, bool) {
	fmt.Fprint(c.out, "Which hand number? ")
	idxText, ok := c.readLine()
	if !ok {
		return game.Action{}, false
	}
	idx, err := strconv.Atoi(idxText)
	if err != nil {
		fmt.Fprintln(c.out, "Not a number.")
		return game.Action{}, false
	}

	fmt.Fprint(c.out, "Zone (HQ or RESERVE): ")
	zoneText, ok := c.readLine()
	if !ok {
		return game.Action{}, false
	}
	zone, err := game.ParseZoneID(strings.ToUpper(zoneText))
	if err != nil || (zone != game.HQ && zone != game.Reserve) {
		fmt.Fprintln(c.out, "Only HQ or RESERVE for now.")
		return game.Action{}, false
	}

	return game.Action{
		PlayerID:  playerID,
		Type:      game.DeployAction,
		HandIndex: idx - 1,
		Zone:      zone,
	}, true
}

func (c *Commander) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(c.in.Text())), true
}

// RenderBoard prints every zone in canonical order with its occupancy.
func (c *Commander) RenderBoard(board []game.ZoneView) {
	fmt.Fprintln(c.out, "\n=== BATTLEFIELD ===")
	for _, zv := range board {
		var units []string
		for _, u := range zv.Units {
			units = append(units, fmt.Sprintf("P%d:%s(COH %d)", u.Owner, u.Name, u.Cohesion))
		}
		desc := strings.Join(units, ", ")
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(c.out, "%-8s [%d/%d]: %s\n", zv.ID, len(zv.Units), zv.Capacity, desc)
	}
	fmt.Fprintln(c.out, "===================")
}

// RenderHand prints the player's resources and hand with kind-specific
// detail.
func (c *Commander) RenderHand(hand game.HandView) {
	fmt.Fprintf(c.out, "P%d Hand (CP %d, Morale %d):\n", hand.PlayerID, hand.CommandPoints, hand.Morale)
	for i, entry := range hand.Cards {
		extra := ""
		switch entry.Kind {
		case game.TroopCard:
			extra = fmt.Sprintf(" STR %d ARM %d COH %d", entry.Strength, entry.Armor, entry.Cohesion)
		case game.StratagemCard:
			extra = fmt.Sprintf(" (CP %d)", entry.CostCP)
		case game.AmbushCard:
			extra = fmt.Sprintf(" (CP %d, %s)", entry.CostCP, entry.Trigger)
		}
		fmt.Fprintf(c.out, "  %d. [%s] %s%s\n", i+1, entry.Kind, entry.Name, extra)
	}
	fmt.Fprintln(c.out)
}
