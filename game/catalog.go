package game

// Reference card content. These are static sample definitions used to build
// each player's deck; the card text describes effects that the engine does
// not resolve yet.

// Catalog returns one of each card definition: 5 troop types, 3 stratagems,
// 2 ambushes.
func Catalog() []Card {
	return []Card{
		NewTroopCard("troop_marines", "Tactical Marines",
			"+1 STR if another Infantry is in zone (not implemented yet).",
			TroopStats{Strength: 6, Armor: 4, Cohesion: 6, Speed: 1}),
		NewTroopCard("troop_scouts", "Scouts",
			"Ranged unit (ammo 2, range 1 later).",
			TroopStats{Strength: 4, Armor: 2, Cohesion: 4, Speed: 1, MaxAmmo: 2}),
		NewTroopCard("troop_cavalry", "Assault Cavalry",
			"Fast movers.",
			TroopStats{Strength: 5, Armor: 3, Cohesion: 5, Speed: 2}),
		NewTroopCard("troop_heavy", "Heavy Weapons Team",
			"Artillery-ish (ammo 2 later).",
			TroopStats{Strength: 7, Armor: 2, Cohesion: 4, Speed: 1, MaxAmmo: 2}),
		NewTroopCard("troop_elite", "Elite Veterans",
			"Hard hitters.",
			TroopStats{Strength: 7, Armor: 4, Cohesion: 6, Speed: 1}),
		NewStratagemCard("strat_suppression", "Suppressive Fire",
			"Choose a zone; enemy can't move next turn (not implemented yet).", 2),
		NewStratagemCard("strat_march", "Forced March",
			"One troop gets +1 move this turn (not implemented yet).", 1),
		NewStratagemCard("strat_dig_in", "Dig In",
			"Target zone gets +1 ARM for your troops this turn (not implemented yet).", 1),
		NewAmbushCard("amb_killzone", "Prepared Killzone",
			"When enemy enters zone: deal 3 damage to one troop (not implemented yet).", 1, TriggerOnEnter),
		NewAmbushCard("amb_booby", "Booby Traps",
			"When enemy enters zone: deal 2 damage (not implemented yet).", 0, TriggerOnEnter),
	}
}

// BaseDeck returns the 15-card reference deck list: two copies of every
// troop, one of each stratagem and ambush.
func BaseDeck() []Card {
	var deck []Card
	for _, c := range Catalog() {
		deck = append(deck, c)
		if c.IsTroop() {
			deck = append(deck, c)
		}
	}
	return deck
}

// NewDeck builds a player deck out of `copies` base decks, unshuffled.
func NewDeck(copies int) []Card {
	var deck []Card
	for i := 0; i < copies; i++ {
		deck = append(deck, BaseDeck()...)
	}
	return deck
}
