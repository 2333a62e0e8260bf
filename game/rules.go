package game

// Rules holds the tunable numbers of a match. The engine reads them instead
// of hard-coded constants so variants can be configured without code
// changes.
type Rules struct {
	StartingMorale   int
	CommandPointGain int
	CommandPointCap  int
	StartingHandSize int
	DrawPerTurn      int
	DeckCopies       int
	// DeployZones are the zones a troop may be deployed to from hand in
	// this version. The zone graph itself supports all six.
	DeployZones []ZoneID
}

// NewStandardRules returns the reference rule set.
func NewStandardRules() Rules {
	return Rules{
		StartingMorale:   25,
		CommandPointGain: 2,
		CommandPointCap:  5,
		StartingHandSize: 5,
		DrawPerTurn:      1,
		DeckCopies:       2,
		DeployZones:      []ZoneID{HQ, Reserve},
	}
}

// CanDeployTo reports whether the zone is in the allowed deploy set.
func (r Rules) CanDeployTo(id ZoneID) bool {
	for _, z := range r.DeployZones {
		if z == id {
			return true
		}
	}
	return false
}
