package knitinst

// Kind tags the variant an Instruction holds. The needle-op variants
// (Knit, Tuck, Miss, Split, Xfer, Kick) share the Needle/Direction/
// Carriers payload; the remaining variants use only the fields they need.
type Kind int

const (
	Knit Kind = iota
	Tuck
	Miss
	Split
	Xfer
	// Kick is a subtype of Miss generated by the kickback scheduler: a
	// soft-miss that relocates an idle carrier without forming a loop.
	Kick
	RackChange
	Inhook
	Releasehook
	Outhook
	Pause
)

func (k Kind) String() string {
	switch k {
	case Knit:
		return "knit"
	case Tuck:
		return "tuck"
	case Miss:
		return "miss"
	case Split:
		return "split"
	case Xfer:
		return "xfer"
	case Kick:
		return "kick"
	case RackChange:
		return "rack"
	case Inhook:
		return "inhook"
	case Releasehook:
		return "releasehook"
	case Outhook:
		return "outhook"
	case Pause:
		return "pause"
	default:
		return "unknown"
	}
}

// IsNeedleOp reports whether this kind operates directly on a needle
// and therefore participates in carriage-pass grouping.
func (k Kind) IsNeedleOp() bool {
	switch k {
	case Knit, Tuck, Miss, Split, Xfer, Kick:
		return true
	default:
		return false
	}
}

// Instruction is a single tagged element of the knitout instruction
// stream. Only the fields relevant to Kind are meaningful; see the
// per-kind constructors below for the expected shape.
type Instruction struct {
	Kind Kind

	Needle Needle
	// Target is the second needle of a Split or Xfer instruction.
	Target Needle
	// Direction carries the carriage direction for Knit/Tuck/Miss/Split/Kick.
	Direction Direction
	// Carriers holds the carrier set for needle ops, or the single
	// carrier id (as a one-element set) for hook ops.
	Carriers CarrierSet

	// Rack is the new rack state for a RackChange instruction.
	Rack RackState

	Comment string
}

// NewKnit builds a Knit instruction.
func NewKnit(n Needle, dir Direction, cs CarrierSet) Instruction {
	return Instruction{Kind: Knit, Needle: n, Direction: dir, Carriers: cs}
}

// NewTuck builds a Tuck instruction.
func NewTuck(n Needle, dir Direction, cs CarrierSet) Instruction {
	return Instruction{Kind: Tuck, Needle: n, Direction: dir, Carriers: cs}
}

// NewMiss builds a Miss instruction.
func NewMiss(n Needle, dir Direction, cs CarrierSet) Instruction {
	return Instruction{Kind: Miss, Needle: n, Direction: dir, Carriers: cs}
}

// NewSplit builds a Split instruction with its target needle.
func NewSplit(n, target Needle, dir Direction, cs CarrierSet) Instruction {
	return Instruction{Kind: Split, Needle: n, Target: target, Direction: dir, Carriers: cs}
}

// NewXfer builds a Xfer instruction. Xfer carries no direction or carrier set.
func NewXfer(n, target Needle) Instruction {
	return Instruction{Kind: Xfer, Needle: n, Target: target}
}

// NewKick builds a kickback Miss at a front-bed position.
func NewKick(position int, dir Direction, cs CarrierSet) Instruction {
	return Instruction{Kind: Kick, Needle: Needle{Bed: Front, Position: position}, Direction: dir, Carriers: cs}
}

// NewRack builds a RackChange instruction.
func NewRack(state RackState) Instruction {
	return Instruction{Kind: RackChange, Rack: state}
}

// NewInhook builds an Inhook instruction for the given carrier.
func NewInhook(carrier int) Instruction {
	return Instruction{Kind: Inhook, Carriers: CarrierSet{carrier}}
}

// NewReleasehook builds a Releasehook instruction for the given carrier.
func NewReleasehook(carrier int) Instruction {
	return Instruction{Kind: Releasehook, Carriers: CarrierSet{carrier}}
}

// NewOuthook builds an Outhook instruction for the given carrier.
func NewOuthook(carrier int) Instruction {
	return Instruction{Kind: Outhook, Carriers: CarrierSet{carrier}}
}

// NewPause builds a Pause instruction.
func NewPause() Instruction {
	return Instruction{Kind: Pause}
}

// CarrierID returns the single carrier id of a hook instruction, or 0
// if this is not a hook instruction or carries none.
func (in Instruction) CarrierID() int {
	if len(in.Carriers) == 0 {
		return 0
	}
	return in.Carriers[0]
}
