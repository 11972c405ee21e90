package convert

import (
	"github.com/knitout2dat/knitout2dat/internal/errs"
	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

// resolvePositionDelta computes the uniform needle-position shift that
// places a program's used needle range onto the physical bed according
// to header.Position (spec §6): Center centers it, Keep uses the
// source indices verbatim (and errors if they fall outside the bed),
// Left shifts its minimum to 1, and Right applies no shift at all —
// the machine itself right-justifies a program that was never told to
// move. Programs with no needle operations shift by zero.
func resolvePositionDelta(instructions []knitinst.Instruction, header knitinst.MachineHeader) (int, error) {
	min, max, ok := frontPositionRange(instructions)
	if !ok {
		return 0, nil
	}
	width := max - min + 1
	switch header.Position {
	case knitinst.PolicyKeep:
		if min < 0 || max > header.BedWidth-1 {
			return 0, errs.New(errs.ParseShape, "Keep position policy requires source needle indices within the bed")
		}
		return 0, nil
	case knitinst.PolicyRight:
		return 0, nil
	case knitinst.PolicyCenter:
		return (header.BedWidth-width)/2 - min, nil
	default: // PolicyLeft
		return 1 - min, nil
	}
}

// frontPositionRange scans every needle operand (needle and, for
// splits and transfers, target) and returns the min/max raw position across both
// beds; rack is not yet known at this point in the pipeline, so bed
// offset is ignored and positions are compared directly, matching how
// the source format itself measures the pattern's footprint before
// racking is applied.
func frontPositionRange(instructions []knitinst.Instruction) (min, max int, ok bool) {
	for _, in := range instructions {
		if !in.Kind.IsNeedleOp() {
			continue
		}
		positions := []int{in.Needle.Position}
		if in.Kind == knitinst.Split || in.Kind == knitinst.Xfer {
			positions = append(positions, in.Target.Position)
		}
		for _, p := range positions {
			if !ok || p < min {
				min = p
			}
			if !ok || p > max {
				max = p
			}
			ok = true
		}
	}
	return min, max, ok
}

// shiftInstructions returns a copy of instructions with every needle
// and target position offset by delta. Carriers, directions, rack
// state and comments are untouched.
func shiftInstructions(instructions []knitinst.Instruction, delta int) []knitinst.Instruction {
	if delta == 0 {
		return instructions
	}
	out := make([]knitinst.Instruction, len(instructions))
	for i, in := range instructions {
		shifted := in
		if in.Kind.IsNeedleOp() {
			shifted.Needle.Position += delta
			shifted.Target.Position += delta
		}
		out[i] = shifted
	}
	return out
}
