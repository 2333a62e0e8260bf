package game

import "fmt"

// ZoneID identifies one of the six fixed battlefield locations.
type ZoneID int

const (
	Left ZoneID = iota
	Center
	Right
	Reserve
	HQ
	Supply
)

// zoneNames indexed by ZoneID.
var zoneNames = []string{"LEFT", "CENTER", "RIGHT", "RESERVE", "HQ", "SUPPLY"}

// ZoneOrder is the canonical presentation order of the battlefield.
var ZoneOrder = []ZoneID{Left, Center, Right, Reserve, HQ, Supply}

func (id ZoneID) String() string {
	if id < 0 || int(id) >= len(zoneNames) {
		return fmt.Sprintf("ZONE(%d)", int(id))
	}
	return zoneNames[id]
}

// ParseZoneID resolves an upper-cased zone name to its identity.
func ParseZoneID(name string) (ZoneID, error) {
	for id, n := range zoneNames {
		if n == name {
			return ZoneID(id), nil
		}
	}
	return 0, fmt.Errorf("unknown zone %q", name)
}

// zoneCapacities defines how many units each location can host.
var zoneCapacities = map[ZoneID]int{
	Left:    3,
	Center:  3,
	Right:   3,
	Reserve: 4,
	HQ:      2,
	Supply:  2,
}

// adjacencyData: mapping of each zone to its neighbors. HQ and Supply reach
// the field only through Reserve; the three combat lanes connect to Reserve
// and laterally through Center.
var adjacencyData = map[ZoneID][]ZoneID{
	HQ:      {Reserve},
	Supply:  {Reserve},
	Reserve: {HQ, Supply, Left, Center, Right},
	Left:    {Reserve, Center},
	Center:  {Reserve, Left, Right},
	Right:   {Reserve, Center},
}

// Zone is a capacity-limited battlefield location hosting an ordered
// sequence of units. Invariant: len(Units) <= Capacity.
type Zone struct {
	ID       ZoneID
	Capacity int
	Units    []*Unit
}

// HasSpace reports whether another unit fits in the zone.
func (z *Zone) HasSpace() bool {
	return len(z.Units) < z.Capacity
}

// Board is the static zone graph: the six zones plus the adjacency relation.
// Topology is computed once at construction and never mutated; adjacency is
// not enforced by any current operation and exists for future movement
// legality.
type Board struct {
	Zones     map[ZoneID]*Zone
	adjacency map[ZoneID][]ZoneID
}

// NewBoard creates the battlefield with its fixed capacities and adjacency.
func NewBoard() *Board {
	b := &Board{
		Zones:     make(map[ZoneID]*Zone),
		adjacency: make(map[ZoneID][]ZoneID),
	}
	for _, id := range ZoneOrder {
		b.Zones[id] = &Zone{ID: id, Capacity: zoneCapacities[id]}
		b.adjacency[id] = append([]ZoneID(nil), adjacencyData[id]...)
	}
	return b
}

// Zone returns the zone with the given identity.
func (b *Board) Zone(id ZoneID) *Zone {
	return b.Zones[id]
}

// AdjacentTo returns the set of zones reachable from the given zone.
func (b *Board) AdjacentTo(id ZoneID) []ZoneID {
	return b.adjacency[id]
}

// AreAdjacent checks if two zones border each other.
func (b *Board) AreAdjacent(a, c ZoneID) bool {
	for _, adj := range b.adjacency[a] {
		if adj == c {
			return true
		}
	}
	return false
}
