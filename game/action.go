package game

// ActionType represents the type of action a player can request during the
// main phase.
type ActionType int

const (
	DeployAction ActionType = iota
	EndTurnAction
	ConcedeAction
)

// Action is a single decision from the presentation layer. HandIndex and
// Zone are only meaningful for DeployAction.
type Action struct {
	PlayerID  int
	Type      ActionType
	HandIndex int
	Zone      ZoneID
}
