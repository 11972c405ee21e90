// Package kickback computes the carrier-management "kickback" miss
// passes a carriage pass needs run before it, so that carriers parked
// or drifting near the pass's travel range get pushed clear before the
// pass's own carriers cross them (spec §4.2).
package kickback

import (
	"sort"

	"github.com/knitout2dat/knitout2dat/internal/carriermodel"
	"github.com/knitout2dat/knitout2dat/internal/errs"
	"github.com/knitout2dat/knitout2dat/internal/knitinst"
	"github.com/knitout2dat/knitout2dat/internal/passbuild"
)

// StoppingDistance is the slack, in needle slots, a kicked carrier is
// assumed to need beyond its nominal rest point before it is provably
// clear of traffic.
const StoppingDistance = 10

// KicksBefore returns the kick instructions that must run immediately
// before pass, given model's current carrier positions. It does not
// mutate model; the caller applies the kicks (and then the pass itself)
// to the model once it has decided to accept them. bedWidth bounds
// every emitted kick to the front-bed needle range [0, bedWidth] (spec
// §4.2 failure semantics): a pattern that forces a kick outside that
// range is reported, not silently clamped.
func KicksBefore(pass *passbuild.CarriagePass, model *carriermodel.Model, bedWidth int) ([]knitinst.Instruction, error) {
	zone, ok := conflictZone(pass, model)
	if !ok {
		return nil, nil
	}
	exempt := map[int]bool{}
	for _, cid := range pass.Carriers {
		exempt[cid] = true
	}
	return kicksOutOfZone(zone.lo, zone.hi, exempt, model, true, true, bedWidth)
}

// Apply plays kicks against model (each kick parks its carriers at its
// target slot, marked kicked in its direction), then records that
// pass's own carriers come to rest at the pass's ending slot.
func Apply(pass *passbuild.CarriagePass, kicks []knitinst.Instruction, model *carriermodel.Model) {
	for _, k := range kicks {
		for _, cid := range k.Carriers {
			model.MarkKicked(cid, k.Needle.Position, k.Direction)
		}
	}
	end := pass.EndSlot()
	for _, cid := range pass.Carriers {
		model.SetPosition(cid, end)
	}
	if pass.Direction != knitinst.NoDirection {
		model.SetLastDirection(pass.Direction)
	}
}

// AlignmentKick computes the one-off carriage-direction-correction kick
// a releasehook or outhook needs before it can run: the original
// implementation's virtual machine cannot execute either hook operation
// immediately after a pass that leaves the carriage already moving in
// the direction that operation requires as its exit, so a single
// reversing kick runs first. Releasehook's required exit direction is
// Leftward; outhook's is Rightward (the case the original's exporter
// always emits for a single active carrier). needed reports false when
// the carriage isn't misaligned, or when carrier isn't active.
func AlignmentKick(carrier int, model *carriermodel.Model, kind knitinst.Kind) (kick knitinst.Instruction, needed bool) {
	required := knitinst.Rightward
	if kind == knitinst.Releasehook {
		required = knitinst.Leftward
	}
	if model.LastDirection() != required {
		return knitinst.Instruction{}, false
	}
	pos, active := model.Position(carrier)
	if !active {
		return knitinst.Instruction{}, false
	}
	reverse := required.Opposite()
	target := pos + 1
	if reverse == knitinst.Leftward {
		target = pos - 1
	}
	return knitinst.NewKick(target, reverse, knitinst.CarrierSet{carrier}), true
}

// ApplyAlignmentKick records kick's effect on model: the carrier parks,
// kicked, at its target, and the carriage's last movement direction
// becomes the kick's direction.
func ApplyAlignmentKick(kick knitinst.Instruction, model *carriermodel.Model) {
	for _, cid := range kick.Carriers {
		model.MarkKicked(cid, kick.Needle.Position, kick.Direction)
	}
	model.SetLastDirection(kick.Direction)
}

type zoneRange struct{ lo, hi int }

// conflictZone computes the band of slots this pass's travel, plus its
// own carriers' current whereabouts, will sweep through. A pass with no
// carriers (transfers) never has a conflict zone.
func conflictZone(pass *passbuild.CarriagePass, model *carriermodel.Model) (zoneRange, bool) {
	if len(pass.Carriers) == 0 {
		return zoneRange{}, false
	}
	lo, hi, ok := pass.SlotRange()
	if !ok {
		return zoneRange{}, false
	}
	if pass.Direction == knitinst.Leftward {
		lo -= StoppingDistance
	} else {
		hi += StoppingDistance
	}
	for _, cid := range pass.Carriers {
		rlo, rhi, active := model.PositionRange(cid, StoppingDistance)
		if !active {
			continue
		}
		if rlo < lo {
			lo = rlo
		}
		if rhi > hi {
			hi = rhi
		}
	}
	return zoneRange{lo, hi}, true
}

// carriersInZone returns every active carrier (other than an exempt
// one) whose exact position falls within [lo, hi].
func carriersInZone(lo, hi int, exempt map[int]bool, model *carriermodel.Model) map[int]int {
	found := map[int]int{}
	for _, cid := range model.ActiveCarriers() {
		if exempt[cid] {
			continue
		}
		pos, ok := model.Position(cid)
		if ok && pos >= lo && pos <= hi {
			found[cid] = pos
		}
	}
	return found
}

// kicksOutOfZone recursively computes the kicks needed to clear every
// conflicting carrier from [leftmostConflict, rightmostConflict],
// pushing carriers in the left half of the zone leftward and carriers
// in the right half rightward, exterior-first so a farther-out carrier
// never has to cross one already kicked nearer the zone. Every emitted
// kick's position is checked against [0, bedWidth]; a pattern that
// pushes a kick past the needle bed is a reported error, not a panic
// (spec §4.2 failure semantics).
func kicksOutOfZone(leftmostConflict, rightmostConflict int, exempt map[int]bool, model *carriermodel.Model, allowLeft, allowRight bool, bedWidth int) ([]knitinst.Instruction, error) {
	conflictCarriers := carriersInZone(leftmostConflict, rightmostConflict, exempt, model)
	nestedExempt := map[int]bool{}
	for cid := range exempt {
		nestedExempt[cid] = true
	}
	for cid := range conflictCarriers {
		nestedExempt[cid] = true
	}

	leftwardCarriers := map[int]int{}
	rightwardCarriers := map[int]int{}
	switch {
	case allowLeft && allowRight:
		split := leftmostConflict + (rightmostConflict-leftmostConflict)/2
		for cid, pos := range conflictCarriers {
			if pos <= split {
				leftwardCarriers[cid] = pos
			} else {
				rightwardCarriers[cid] = pos
			}
		}
	case allowLeft:
		leftwardCarriers = conflictCarriers
	default:
		rightwardCarriers = conflictCarriers
	}

	leftwardByPos := groupByPosition(leftwardCarriers)
	rightwardByPos := groupByPosition(rightwardCarriers)

	var kicks []knitinst.Instruction

	if len(leftwardByPos) > 0 {
		extension := 1 + len(leftwardByPos)*StoppingDistance
		nested, err := kicksOutOfZone(leftmostConflict-extension, leftmostConflict, nestedExempt, model, true, false, bedWidth)
		if err != nil {
			return nil, err
		}
		kicks = nested
		insertAt := len(kicks)
		positions := sortedKeys(leftwardByPos)
		sort.Sort(sort.Reverse(sort.IntSlice(positions)))
		for group, pos := range positions {
			carriers := leftwardByPos[pos]
			kickPos := leftmostConflict - 1 - group*StoppingDistance
			if err := checkKickBound(kickPos, bedWidth); err != nil {
				return nil, err
			}
			kick := knitinst.NewKick(kickPos, knitinst.Leftward, carriers)
			kicks = insertInstruction(kicks, insertAt, kick)
		}
	}

	if len(rightwardByPos) > 0 {
		extension := 1 + len(rightwardByPos)*StoppingDistance
		nested, err := kicksOutOfZone(rightmostConflict, rightmostConflict+extension, nestedExempt, model, false, true, bedWidth)
		if err != nil {
			return nil, err
		}
		kicks = append(kicks, nested...)
		insertAt := len(kicks)
		positions := sortedKeys(rightwardByPos)
		for group, pos := range positions {
			carriers := rightwardByPos[pos]
			kickPos := rightmostConflict + 1 + group*StoppingDistance
			if err := checkKickBound(kickPos, bedWidth); err != nil {
				return nil, err
			}
			kick := knitinst.NewKick(kickPos, knitinst.Rightward, carriers)
			kicks = insertInstruction(kicks, insertAt, kick)
		}
	}

	return kicks, nil
}

// checkKickBound reports a PatternTooWide error when pos falls outside
// the front-bed needle range [0, bedWidth] (spec §4.2: "a kick at a
// position outside [0, 540] is a bug in inputs... report and stop").
func checkKickBound(pos, bedWidth int) error {
	if pos < 0 || pos > bedWidth {
		return errs.New(errs.PatternTooWide, "kickback pushed a carrier past the needle bed")
	}
	return nil
}

// conflictSpan returns a prospective kick's conflict span (spec §4.2):
// [pos-D, pos] for a left kick, [pos, pos+D] for a right kick.
func conflictSpan(kick knitinst.Instruction) (lo, hi int) {
	pos := kick.Needle.Position
	if kick.Direction == knitinst.Leftward {
		return pos - StoppingDistance, pos
	}
	return pos, pos + StoppingDistance
}

// TryMergeKick attempts step (c) of the scheduler algorithm (spec
// §4.2): if the last emitted pass used the same carrier set as kick,
// in the same direction, and kick's conflict span holds no other
// active carrier, kick is appended onto that pass instead of running
// as its own standalone pass. Reports whether the merge happened.
func TryMergeKick(kick knitinst.Instruction, lastPass *passbuild.CarriagePass, model *carriermodel.Model) bool {
	if lastPass == nil {
		return false
	}
	if !lastPass.Carriers.Equal(kick.Carriers) || lastPass.Direction != kick.Direction {
		return false
	}
	lo, hi := conflictSpan(kick)
	for _, cid := range model.ActiveCarriers() {
		if kick.Carriers.Contains(cid) {
			continue
		}
		if pos, ok := model.Position(cid); ok && pos >= lo && pos <= hi {
			return false
		}
	}
	return lastPass.TryAppend(kick, lastPass.Rack)
}

func groupByPosition(carriers map[int]int) map[int]knitinst.CarrierSet {
	out := map[int]knitinst.CarrierSet{}
	for cid, pos := range carriers {
		out[pos] = append(out[pos], cid)
	}
	for pos := range out {
		sort.Ints(out[pos])
	}
	return out
}

func sortedKeys(m map[int]knitinst.CarrierSet) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// insertInstruction inserts v into s at index i, matching Python list.insert's
// semantics of shifting everything at or after i one slot to the right.
func insertInstruction(s []knitinst.Instruction, i int, v knitinst.Instruction) []knitinst.Instruction {
	s = append(s, knitinst.Instruction{})
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
