// Package carriermodel tracks where each yarn carrier sits on the bed
// as the kickback scheduler replays a program pass by pass (spec §3
// "Carrier simulation model", grounded on the carrier_system state the
// original implementation's virtual knitting machine maintains).
package carriermodel

import "github.com/knitout2dat/knitout2dat/internal/knitinst"

// Model holds the simulated position of every carrier brought into use
// so far, plus whether each was most recently parked by an ordinary
// pass or pushed aside by a kickback. The zero value is not useful;
// construct with NewModel.
type Model struct {
	position map[int]int
	kicked   map[int]knitinst.Direction

	lastDirection knitinst.Direction
}

func NewModel() *Model {
	return &Model{position: map[int]int{}, kicked: map[int]knitinst.Direction{}}
}

// LastDirection returns the direction of the most recent carriage pass
// (NoDirection before the first pass runs).
func (m *Model) LastDirection() knitinst.Direction { return m.lastDirection }

// SetLastDirection records the direction of the carriage pass that just ran.
func (m *Model) SetLastDirection(dir knitinst.Direction) { m.lastDirection = dir }

func (m *Model) IsActive(carrier int) bool {
	_, ok := m.position[carrier]
	return ok
}

// Activate brings a carrier into use (inhook) at slot.
func (m *Model) Activate(carrier, slot int) {
	m.position[carrier] = slot
	delete(m.kicked, carrier)
}

// Deactivate removes a carrier from simulation (outhook).
func (m *Model) Deactivate(carrier int) {
	delete(m.position, carrier)
	delete(m.kicked, carrier)
}

// SetPosition records that carrier came to rest at slot because it ran
// in a carriage pass, clearing any earlier kicked flag (the carrier's
// resting slot is now exact again).
func (m *Model) SetPosition(carrier, slot int) {
	m.position[carrier] = slot
	delete(m.kicked, carrier)
}

// MarkKicked records that carrier was pushed to slot by a kickback run
// in the given direction, leaving it with an uncertain resting range
// rather than an exact position.
func (m *Model) MarkKicked(carrier, slot int, dir knitinst.Direction) {
	m.position[carrier] = slot
	m.kicked[carrier] = dir
}

// ClearKick drops the kicked flag without moving the carrier (a yarn
// carrier instruction other than releasehook resets a carrier's
// kickback memory even though it doesn't move it).
func (m *Model) ClearKick(carrier int) {
	delete(m.kicked, carrier)
}

// Position returns carrier's exact last simulated slot.
func (m *Model) Position(carrier int) (int, bool) {
	p, ok := m.position[carrier]
	return p, ok
}

// PositionRange returns the band of slots carrier might actually occupy:
// its exact position when not kicked, or a margin-wide band toward the
// side it was kicked on, since a kickback's stopping point is not exact.
func (m *Model) PositionRange(carrier int, margin int) (lo, hi int, ok bool) {
	pos, active := m.position[carrier]
	if !active {
		return 0, 0, false
	}
	dir, isKicked := m.kicked[carrier]
	if !isKicked {
		return pos, pos, true
	}
	if dir == knitinst.Leftward {
		return pos - margin, pos, true
	}
	return pos, pos + margin, true
}

// ActiveCarriers returns every carrier currently in use, in no
// particular order; callers that need determinism should sort.
func (m *Model) ActiveCarriers() []int {
	out := make([]int, 0, len(m.position))
	for cid := range m.position {
		out = append(out, cid)
	}
	return out
}
