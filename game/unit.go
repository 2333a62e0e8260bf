package game

import "github.com/google/uuid"

// Unit is a troop card instance on the battlefield. It keeps a read-only
// reference to its originating card; live values (cohesion, ammo, the
// attacked flag) belong to the unit itself.
type Unit struct {
	ID       uuid.UUID
	Card     Card
	Owner    int
	Zone     ZoneID
	Cohesion int
	Ammo     int
	Attacked bool // attacked this turn; reset at the start of the owner's turn
}

// NewUnit instantiates a troop card for a player in a zone. Cohesion and
// ammunition start at the card's stats.
func NewUnit(card Card, owner int, zone ZoneID) *Unit {
	return &Unit{
		ID:       uuid.New(),
		Card:     card,
		Owner:    owner,
		Zone:     zone,
		Cohesion: card.Stats.Cohesion,
		Ammo:     card.Stats.MaxAmmo,
	}
}

// Alive reports whether the unit is still fighting. Removal of dead units
// belongs to a future combat subsystem.
func (u *Unit) Alive() bool { return u.Cohesion > 0 }

func (u *Unit) Name() string { return u.Card.Name }

func (u *Unit) Strength() int { return u.Card.Stats.Strength }

func (u *Unit) Armor() int { return u.Card.Stats.Armor }
