package convert

import (
	"sort"

	"github.com/knitout2dat/knitout2dat/internal/dat"
	"github.com/knitout2dat/knitout2dat/internal/datcodes"
	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

// Decompile reads a DAT file buffer back into a flat knitout
// instruction stream (spec §4.6). Two pieces of information the
// source format never persists inside the file are resolved by
// convention rather than recovered: the option/pattern spacing (opts
// must supply the same values Compile used, or the defaults) and the
// pattern's absolute needle numbering, which Decompile reports
// column-relative to the rendered raster rather than reconstructing
// whatever position policy the original compile applied (spec §9).
func Decompile(buf []byte, opts Options) ([]knitinst.Instruction, []knitinst.Warning, error) {
	_, rows, err := dat.Decode(buf)
	if err != nil {
		return nil, nil, err
	}
	optionSpace, patternSpace := opts.optionSpace(), opts.patternSpace()

	var out []knitinst.Instruction
	runningRack := knitinst.RackState{}
	first := true

	for _, row := range rows {
		if isRulerRow(row, optionSpace, patternSpace) {
			continue
		}
		rp, err := decodeRow(row, optionSpace, patternSpace)
		if err != nil {
			return out, nil, err
		}
		if rp.isStructural() {
			continue
		}

		if !first && rp.rack == runningRack {
			// elide, matching the grouping pass's own elision rule
		} else {
			out = append(out, knitinst.NewRack(rp.rack))
			runningRack = rp.rack
		}
		first = false

		carrier := 0
		if len(rp.carriers) > 0 {
			carrier = rp.carriers[0]
		}
		switch rp.hook {
		case datcodes.InHookOperation:
			out = append(out, knitinst.NewInhook(carrier))
		case datcodes.ReleaseHookOperation:
			out = append(out, knitinst.NewReleasehook(carrier))
		}
		if rp.pause {
			out = append(out, knitinst.NewPause())
		}

		out = append(out, rp.instructions...)

		if rp.hook == datcodes.OutHookOperation {
			out = append(out, knitinst.NewOuthook(carrier))
		}
	}
	return out, nil, nil
}

type decodedRow struct {
	rack         knitinst.RackState
	direction    knitinst.Direction
	carriers     knitinst.CarrierSet
	hook         int
	pause        bool
	instructions []knitinst.Instruction
}

// isStructural reports whether this row is a bed-seating or
// carriage-parking row this implementation's own Compile inserts
// (sequences.Startup/Finish): full-width, carrierless, knit-or-miss-only.
func (d decodedRow) isStructural() bool {
	if len(d.carriers) != 0 {
		return false
	}
	for _, in := range d.instructions {
		if in.Kind != knitinst.Knit && in.Kind != knitinst.Miss {
			return false
		}
	}
	return len(d.instructions) > 0
}

func decodeRow(row []int, optionSpace, patternSpace int) (decodedRow, error) {
	leftMarkers := reversed(row[optionSpace : optionSpace+datcodes.OptionLineCount*2])
	rightStart := len(row) - optionSpace - datcodes.OptionLineCount*2
	rightMarkers := row[rightStart : rightStart+datcodes.OptionLineCount*2]

	leftOpts := decodeMarkers(leftMarkers, datcodes.AllLeftOptionLines, func(l datcodes.LeftOptionLine) bool {
		return l == datcodes.DirectionSpecificationLeft
	})
	rightOpts := decodeMarkers(rightMarkers, datcodes.AllRightOptionLines, func(l datcodes.RightOptionLine) bool {
		return l == datcodes.DirectionSpecificationRight
	})

	needleStart := optionSpace + datcodes.OptionLineCount*2 + patternSpace
	patternWidth := rightStart - needleStart - patternSpace - 2

	rackPitch := leftOpts[datcodes.RackPitch]
	rack := -rackPitch
	if leftOpts[datcodes.RackDirection] == datcodes.RackDirectionRight {
		rack = rackPitch + 1
	}
	rackState := knitinst.RackState{Rack: rack, AllNeedle: leftOpts[datcodes.RackAlignment] == datcodes.RackPitchAllNeedle}

	dir := knitinst.NoDirection
	switch rightOpts[datcodes.DirectionSpecificationRight] {
	case datcodes.DirectionColorRightward:
		dir = knitinst.Rightward
	case datcodes.DirectionColorLeftward:
		dir = knitinst.Leftward
	}

	carriers, err := datcodes.PixelToCarriers(rightOpts[datcodes.YarnCarrierNumber])
	if err != nil {
		return decodedRow{}, err
	}

	result := decodedRow{
		rack:      rackState,
		direction: dir,
		carriers:  carriers,
		hook:      rightOpts[datcodes.HookOperation],
		pause:     leftOpts[datcodes.PauseOption] == datcodes.PauseColor,
	}

	type slotOp struct {
		slot int
		op   datcodes.PartialOp
	}
	var ops []slotOp
	for slot := -1; slot <= patternWidth; slot++ {
		idx := needleStart + slot + 1
		color := datcodes.OperationColor(row[idx])
		for _, partial := range datcodes.ExpandColor(color) {
			ops = append(ops, slotOp{slot, partial})
		}
	}
	if dir == knitinst.Leftward {
		sort.SliceStable(ops, func(i, j int) bool { return ops[i].slot > ops[j].slot })
	}

	for _, so := range ops {
		needle := bedNeedle(so.op.Bed, so.slot, rack)
		switch so.op.Kind {
		case knitinst.Knit:
			result.instructions = append(result.instructions, knitinst.NewKnit(needle, dir, carriers))
		case knitinst.Tuck:
			result.instructions = append(result.instructions, knitinst.NewTuck(needle, dir, carriers))
		case knitinst.Miss:
			result.instructions = append(result.instructions, knitinst.NewMiss(needle, dir, carriers))
		case knitinst.Xfer:
			result.instructions = append(result.instructions, knitinst.NewXfer(needle, oppositeNeedle(so.op.Bed, so.slot, rack)))
		case knitinst.Split:
			result.instructions = append(result.instructions, knitinst.NewSplit(needle, oppositeNeedle(so.op.Bed, so.slot, rack), dir, carriers))
		}
	}
	return result, nil
}

// bedNeedle inverts Needle.Slot: front positions equal their slot
// directly, back positions are offset by the current rack.
func bedNeedle(bed knitinst.Bed, slot, rack int) knitinst.Needle {
	if bed == knitinst.Front {
		return knitinst.Needle{Bed: knitinst.Front, Position: slot}
	}
	return knitinst.Needle{Bed: knitinst.Back, Position: slot - rack}
}

func oppositeNeedle(bed knitinst.Bed, slot, rack int) knitinst.Needle {
	if bed == knitinst.Front {
		return bedNeedle(knitinst.Back, slot, rack)
	}
	return bedNeedle(knitinst.Front, slot, rack)
}

func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

func decodeMarkers[L ~int](markers []int, lines []L, isDirectionLine func(L) bool) map[L]int {
	out := make(map[L]int, len(lines))
	for _, line := range lines {
		pos := (int(line) - 1) * 2
		if !isDirectionLine(line) {
			pos++
		}
		out[line] = markers[pos]
	}
	return out
}

// isRulerRow reports whether row is the width-marker row Compile
// optionally inserts: every option-line marker is zero and only
// multiple-of-ten needle columns carry a WidthSpecifier pixel.
func isRulerRow(row []int, optionSpace, patternSpace int) bool {
	needleStart := optionSpace + datcodes.OptionLineCount*2 + patternSpace
	for i := 0; i < needleStart; i++ {
		if row[i] != 0 {
			return false
		}
	}
	for i := len(row) - optionSpace - datcodes.OptionLineCount*2; i < len(row); i++ {
		if row[i] != 0 {
			return false
		}
	}
	sawMarker := false
	for i := needleStart; i < len(row)-optionSpace-datcodes.OptionLineCount*2; i++ {
		switch row[i] {
		case 0:
		case datcodes.WidthSpecifier:
			sawMarker = true
		default:
			return false
		}
	}
	return sawMarker
}
