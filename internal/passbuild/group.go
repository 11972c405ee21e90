package passbuild

import "github.com/knitout2dat/knitout2dat/internal/knitinst"

// ElementKind tags whether a grouped Element is a free-standing
// instruction or a carriage pass.
type ElementKind int

const (
	StandaloneElement ElementKind = iota
	PassElement
)

// Element is one item of the grouped, interleaved stream the pass
// grouper and kickback scheduler pass between each other.
type Element struct {
	Kind       ElementKind
	Standalone knitinst.Instruction
	Pass       *CarriagePass
}

// Standalone-forming kinds: rack changes, hook ops, and pause always
// interrupt pass accumulation; they never join a carriage pass.
func breaksPass(k knitinst.Kind) bool {
	switch k {
	case knitinst.RackChange, knitinst.Inhook, knitinst.Releasehook, knitinst.Outhook, knitinst.Pause:
		return true
	default:
		return false
	}
}

// Group folds a flat instruction stream into an interleaved sequence of
// standalone instructions and carriage passes (spec §4.1).
func Group(instructions []knitinst.Instruction) []Element {
	var out []Element
	var current *CarriagePass
	currentRack := knitinst.RackState{}

	flush := func() {
		if current != nil {
			out = append(out, Element{Kind: PassElement, Pass: current})
			current = nil
		}
	}

	for _, in := range instructions {
		if in.Kind == knitinst.RackChange {
			if in.Rack == currentRack {
				continue // elide a rack instruction that repeats the current state
			}
			flush()
			currentRack = in.Rack
			out = append(out, Element{Kind: StandaloneElement, Standalone: in})
			continue
		}
		if breaksPass(in.Kind) {
			flush()
			out = append(out, Element{Kind: StandaloneElement, Standalone: in})
			continue
		}
		// Needle operation.
		if current != nil && current.TryAppend(in, currentRack) {
			continue
		}
		flush()
		current = NewCarriagePass(in, currentRack)
	}
	flush()
	return out
}
