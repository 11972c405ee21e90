// Package passbuild folds a flat, already-parsed knitout instruction
// stream into carriage passes (spec §4.1).
package passbuild

import (
	"math"

	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

// Class groups the needle-instruction kinds that may share one pass.
type Class int

const (
	KnitTuckClass Class = iota
	TransferClass
	SplitClass
	MissClass
)

func classify(k knitinst.Kind) Class {
	switch k {
	case knitinst.Xfer:
		return TransferClass
	case knitinst.Split:
		return SplitClass
	case knitinst.Miss, knitinst.Kick:
		return MissClass
	default: // Knit, Tuck
		return KnitTuckClass
	}
}

// CarriagePass is an ordered group of needle instructions sharing one
// rack state, direction, carrier set, and pass class (spec §3).
type CarriagePass struct {
	Class        Class
	Rack         knitinst.RackState
	Direction    knitinst.Direction
	Carriers     knitinst.CarrierSet
	Instructions []knitinst.Instruction

	slotBeds map[int][]knitinst.Bed
}

// NewCarriagePass starts a new pass with a single instruction.
func NewCarriagePass(in knitinst.Instruction, rack knitinst.RackState) *CarriagePass {
	cls := classify(in.Kind)
	dir := in.Direction
	if cls == TransferClass {
		dir = knitinst.NoDirection
	}
	p := &CarriagePass{Class: cls, Rack: rack, Direction: dir, Carriers: in.Carriers}
	p.forceAppend(in)
	return p
}

func (p *CarriagePass) forceAppend(in knitinst.Instruction) {
	slot := in.Needle.Slot(p.Rack)
	if p.slotBeds == nil {
		p.slotBeds = map[int][]knitinst.Bed{}
	}
	p.slotBeds[slot] = append(p.slotBeds[slot], in.Needle.Bed)
	p.Instructions = append(p.Instructions, in)
}

// TryAppend attempts to append in to the pass under the spec §4.1
// compatibility rules (i)-(v). It reports whether the append happened.
func (p *CarriagePass) TryAppend(in knitinst.Instruction, rack knitinst.RackState) bool {
	if rack != p.Rack {
		return false
	}
	if in.Direction != p.Direction {
		return false
	}
	if !p.Carriers.Equal(in.Carriers) {
		return false
	}
	if classify(in.Kind) != p.Class {
		return false
	}

	slot := in.Needle.Slot(rack)
	if beds, used := p.slotBeds[slot]; used {
		if !p.canShareSlot(beds, in) {
			return false
		}
	} else if len(p.Instructions) > 0 && p.Direction != knitinst.NoDirection {
		lastSlot := p.lastSlot()
		switch p.Direction {
		case knitinst.Rightward:
			if slot < lastSlot {
				return false
			}
		case knitinst.Leftward:
			if slot > lastSlot {
				return false
			}
		}
	}

	p.forceAppend(in)
	return true
}

// canShareSlot reports whether in may join a slot already holding beds,
// i.e. the all-needle exception: opposite bed, knit/tuck class, all_needle rack.
func (p *CarriagePass) canShareSlot(beds []knitinst.Bed, in knitinst.Instruction) bool {
	if !p.Rack.AllNeedle || p.Class != KnitTuckClass {
		return false
	}
	if len(beds) != 1 {
		return false
	}
	return beds[0] != in.Needle.Bed
}

func (p *CarriagePass) lastSlot() int {
	last := p.Instructions[len(p.Instructions)-1]
	return last.Needle.Slot(p.Rack)
}

// SlotRange returns the leftmost and rightmost occupied slot of the pass.
func (p *CarriagePass) SlotRange() (min, max int, ok bool) {
	if len(p.Instructions) == 0 {
		return 0, 0, false
	}
	min, max = math.MaxInt, math.MinInt
	for _, in := range p.Instructions {
		s := in.Needle.Slot(p.Rack)
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max, true
}

// StartSlot returns the slot of the first needle operation executed in
// the pass's travel order (leftmost for a rightward pass, rightmost for
// a leftward one).
func (p *CarriagePass) StartSlot() int {
	minS, maxS, ok := p.SlotRange()
	if !ok {
		return 0
	}
	if p.Direction == knitinst.Leftward {
		return maxS
	}
	return minS
}

// EndSlot returns the slot of the last needle operation executed in
// the pass's travel order: the far end from StartSlot, i.e. where a
// carrier riding this pass comes to rest.
func (p *CarriagePass) EndSlot() int {
	minS, maxS, ok := p.SlotRange()
	if !ok {
		return 0
	}
	if p.Direction == knitinst.Leftward {
		return minS
	}
	return maxS
}
