package game

// CardKind tags the variant of a Card.
type CardKind int

const (
	TroopCard     CardKind = iota // 0
	StratagemCard                 // 1
	AmbushCard                    // 2
)

func (k CardKind) String() string {
	switch k {
	case TroopCard:
		return "TROOP"
	case StratagemCard:
		return "STRATAGEM"
	case AmbushCard:
		return "AMBUSH"
	default:
		return "UNKNOWN"
	}
}

// Trigger names the condition a future effect-resolution subsystem would
// react to. Inert data for now.
type Trigger string

const TriggerOnEnter Trigger = "ON_ENTER"

// TroopStats holds the combat profile of a troop card.
type TroopStats struct {
	Strength int
	Armor    int
	Cohesion int
	Speed    int
	MaxAmmo  int
}

// Card is an immutable card definition. The Kind tag selects which of the
// variant fields carry meaning: Stats for troops, CostCP for stratagems and
// ambushes, Trigger for ambushes only. Deck copies of the same card are
// equal values, not shared instances.
type Card struct {
	ID   string
	Name string
	Kind CardKind
	Text string

	Stats   TroopStats
	CostCP  int
	Trigger Trigger
}

func (c Card) IsTroop() bool { return c.Kind == TroopCard }

// NewTroopCard builds a troop card definition.
func NewTroopCard(id, name, text string, stats TroopStats) Card {
	return Card{ID: id, Name: name, Kind: TroopCard, Text: text, Stats: stats}
}

// NewStratagemCard builds a stratagem card definition.
func NewStratagemCard(id, name, text string, costCP int) Card {
	return Card{ID: id, Name: name, Kind: StratagemCard, Text: text, CostCP: costCP}
}

// NewAmbushCard builds an ambush card definition.
func NewAmbushCard(id, name, text string, costCP int, trigger Trigger) Card {
	return Card{ID: id, Name: name, Kind: AmbushCard, Text: text, CostCP: costCP, Trigger: trigger}
}
