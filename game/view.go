package game

// Read-only snapshots handed to the presentation layer. Views copy the
// values they expose, so holding one across a mutation is safe.

// UnitView summarizes one occupant of a zone.
type UnitView struct {
	Owner    int
	Name     string
	Cohesion int
}

// ZoneView summarizes one zone: occupants and remaining headroom.
type ZoneView struct {
	ID       ZoneID
	Capacity int
	Units    []UnitView
}

// HandEntryView is one hand card with its kind-specific detail: combat stats
// for troops, command point cost for stratagems and ambushes, trigger for
// ambushes.
type HandEntryView struct {
	Kind     CardKind
	Name     string
	Strength int
	Armor    int
	Cohesion int
	CostCP   int
	Trigger  Trigger
}

// HandView is one player's visible side: resources plus the ordered hand.
type HandView struct {
	PlayerID      int
	CommandPoints int
	Morale        int
	Cards         []HandEntryView
}

// BoardView returns the zones in canonical order with per-unit summaries.
func (gs *GameState) BoardView() []ZoneView {
	views := make([]ZoneView, 0, len(ZoneOrder))
	for _, id := range ZoneOrder {
		z := gs.Board.Zone(id)
		zv := ZoneView{ID: id, Capacity: z.Capacity}
		for _, u := range z.Units {
			zv.Units = append(zv.Units, UnitView{Owner: u.Owner, Name: u.Name(), Cohesion: u.Cohesion})
		}
		views = append(views, zv)
	}
	return views
}

// HandViewFor returns the hand snapshot for the given player.
func (gs *GameState) HandViewFor(id int) HandView {
	p := gs.Player(id)
	hv := HandView{
		PlayerID:      p.ID,
		CommandPoints: p.CommandPoints,
		Morale:        p.Morale,
	}
	for _, c := range p.Hand {
		entry := HandEntryView{Kind: c.Kind, Name: c.Name}
		switch c.Kind {
		case TroopCard:
			entry.Strength = c.Stats.Strength
			entry.Armor = c.Stats.Armor
			entry.Cohesion = c.Stats.Cohesion
		case StratagemCard:
			entry.CostCP = c.CostCP
		case AmbushCard:
			entry.CostCP = c.CostCP
			entry.Trigger = c.Trigger
		}
		hv.Cards = append(hv.Cards, entry)
	}
	return hv
}
