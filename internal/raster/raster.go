// Package raster turns a carriage pass into the pixel row and option-line
// settings a DAT raster image encodes it as (spec §4.4).
package raster

import (
	"sort"

	"github.com/knitout2dat/knitout2dat/internal/datcodes"
	"github.com/knitout2dat/knitout2dat/internal/errs"
	"github.com/knitout2dat/knitout2dat/internal/knitinst"
	"github.com/knitout2dat/knitout2dat/internal/passbuild"
)

// PresserSetting selects how Pass computes the presser-mode option.
type PresserSetting int

const (
	PresserAuto PresserSetting = iota
	PresserForceOn
	PresserForceOff
)

// Context carries the per-pass settings that in the source format come
// from standalone instructions (hook ops, pause) or from running state
// (stitch/speed number) rather than from the pass itself.
type Context struct {
	HookOperation int // one of datcodes.{No,In,Out,Release}HookOperation
	StitchNumber  int
	SpeedNumber   int
	Presser       PresserSetting
	Pause         bool
	DropSinker    bool
	MaxRack       int
}

// Pass is the raster-ready projection of one carriage pass: a slot->color
// map plus fully resolved left/right option-line settings.
type Pass struct {
	Source *passbuild.CarriagePass

	SlotColors    map[int]datcodes.OperationColor
	LeftOptions   map[datcodes.LeftOptionLine]int
	RightOptions  map[datcodes.RightOptionLine]int
}

// NewPass builds a Pass from a grouped carriage pass plus the ambient
// context (spec §4.4, grounded on Raster_Carriage_Pass.__init__/_process_operations).
func NewPass(p *passbuild.CarriagePass, ctx Context) (*Pass, error) {
	rp := &Pass{
		Source:       p,
		SlotColors:   map[int]datcodes.OperationColor{},
		LeftOptions:  map[datcodes.LeftOptionLine]int{},
		RightOptions: map[datcodes.RightOptionLine]int{},
	}
	for _, l := range datcodes.AllLeftOptionLines {
		rp.LeftOptions[l] = 0
	}
	for _, r := range datcodes.AllRightOptionLines {
		rp.RightOptions[r] = 0
	}

	if ctx.MaxRack > 0 {
		rack := p.Rack.Rack
		if rack < 0 {
			rack = -rack
		}
		if rack > ctx.MaxRack {
			return nil, errs.New(errs.RackExceedsMachine, "racking value exceeds machine maximum")
		}
	}

	if err := rp.processOperations(); err != nil {
		return nil, err
	}
	rp.setOptionLines(ctx)
	return rp, nil
}

func (rp *Pass) processOperations() error {
	instrs := append([]knitinst.Instruction(nil), rp.Source.Instructions...)
	sort.SliceStable(instrs, func(i, j int) bool {
		return instrs[i].Needle.Slot(rp.Source.Rack) < instrs[j].Needle.Slot(rp.Source.Rack)
	})
	for _, in := range instrs {
		color, ok := datcodes.OperationColorFor(in)
		if !ok {
			continue // rack/hook/pause instructions never reach here
		}
		slot := in.Needle.Slot(rp.Source.Rack)
		if existing, used := rp.SlotColors[slot]; used {
			if !rp.Source.Rack.AllNeedle {
				return errs.New(errs.InvalidAllNeedle, "two operations share a slot outside all-needle racking")
			}
			combo, ok := color.CombineAllNeedle(existing)
			if !ok {
				combo, ok = existing.CombineAllNeedle(color)
			}
			if !ok {
				return errs.New(errs.InvalidAllNeedle, "operations cannot combine into an all-needle pixel")
			}
			color = combo
		}
		rp.SlotColors[slot] = color
	}
	return nil
}

func (rp *Pass) isTransfer() bool { return rp.Source.Class == passbuild.TransferClass }

func (rp *Pass) isEmpty() bool { return len(rp.SlotColors) == 0 }

// SlotRange mirrors min_slot/max_slot: 0,0 for an empty pass.
func (rp *Pass) SlotRange() (min, max int) {
	if rp.isEmpty() {
		return 0, 0
	}
	first := true
	for s := range rp.SlotColors {
		if first || s < min {
			min = s
		}
		if first || s > max {
			max = s
		}
		first = false
	}
	return min, max
}

func (rp *Pass) stoppingMarks() (left, right int) {
	if rp.isEmpty() {
		return 0, 0
	}
	mn, mx := rp.SlotRange()
	return mn - 1, mx + 1
}

func (rp *Pass) setOptionLines(ctx Context) {
	rp.RightOptions[datcodes.LinksProcess] = datcodes.LinkProcessIgnore

	if rp.isTransfer() {
		rp.RightOptions[datcodes.YarnCarrierNumber] = 0
	} else {
		carriers := datcodes.CarriersToInt(rp.Source.Carriers)
		rp.RightOptions[datcodes.YarnCarrierNumber] = carriers
		rp.RightOptions[datcodes.HookOperation] = ctx.HookOperation
		switch ctx.HookOperation {
		case datcodes.InHookOperation:
			rp.RightOptions[datcodes.CarrierGripper] = carriers
		case datcodes.OutHookOperation:
			rp.RightOptions[datcodes.CarrierGripper] = 100 + carriers
		}
	}

	rack := rp.Source.Rack.Rack
	if rack >= 1 {
		rp.LeftOptions[datcodes.RackDirection] = datcodes.RackDirectionRight
		rp.LeftOptions[datcodes.RackPitch] = rack - 1
	} else {
		rp.LeftOptions[datcodes.RackDirection] = datcodes.RackDirectionLeft
		negRack := rack
		if negRack < 0 {
			negRack = -negRack
		}
		rp.LeftOptions[datcodes.RackPitch] = negRack
	}
	if rp.Source.Rack.AllNeedle {
		rp.LeftOptions[datcodes.RackAlignment] = datcodes.RackPitchAllNeedle
	} else {
		rp.LeftOptions[datcodes.RackAlignment] = datcodes.RackPitchStandard
	}

	stitch := ctx.StitchNumber
	knitCancel := datcodes.KnitCancelStandard
	if rp.isTransfer() {
		stitch = 0
		knitCancel = datcodes.KnitCancel
	}
	rp.RightOptions[datcodes.StitchNumber] = stitch
	rp.RightOptions[datcodes.KnitCancelOrCarriageMove] = knitCancel

	speed := 0
	if ctx.SpeedNumber != 0 {
		speed = ctx.SpeedNumber + 10
	}
	rp.LeftOptions[datcodes.KnitSpeed] = speed
	rp.LeftOptions[datcodes.TransferSpeed] = speed

	rp.RightOptions[datcodes.PresserMode] = rp.presserOption(ctx.Presser)

	if ctx.Pause {
		rp.LeftOptions[datcodes.PauseOption] = datcodes.PauseColor
	}

	dirColor := rp.directionColor()
	rp.LeftOptions[datcodes.DirectionSpecificationLeft] = dirColor
	rp.RightOptions[datcodes.DirectionSpecificationRight] = dirColor

	if ctx.DropSinker {
		rp.RightOptions[datcodes.DropSinker] = datcodes.DropSinkerActive
	}

	if rp.Source.Class == passbuild.SplitClass {
		rp.LeftOptions[datcodes.AMissSplitFlag] = datcodes.AmissSplitHook
	}
}

func (rp *Pass) directionColor() int {
	switch rp.Source.Direction {
	case knitinst.Leftward:
		return datcodes.DirectionColorLeftward
	case knitinst.Rightward:
		return datcodes.DirectionColorRightward
	default:
		return datcodes.DirectionColorUnspecified
	}
}

func (rp *Pass) presserOption(p PresserSetting) int {
	switch p {
	case PresserForceOn:
		return datcodes.PresserOn
	case PresserForceOff:
		return datcodes.PresserOff
	default:
		hasFront, hasBack := false, false
		for _, in := range rp.Source.Instructions {
			if in.Needle.Bed == knitinst.Front {
				hasFront = true
			} else {
				hasBack = true
			}
		}
		if hasFront && hasBack {
			return datcodes.PresserOff
		}
		return datcodes.PresserOn
	}
}

// RasterWidth returns the total pixel width of a raster row for the
// given pattern width and spacing parameters (spec §4.4).
func RasterWidth(patternWidth, optionSpace, patternSpace int) int {
	return 2*((datcodes.OptionLineCount*2)+optionSpace+patternSpace) + patternWidth + 2
}

// Row renders the full pixel row for this pass: left option block,
// needle operations, right option block.
func (rp *Pass) Row(patternWidth, optionSpace, patternSpace, offsetSlots int) []int {
	row := rp.leftOptionBlock(optionSpace)
	row = append(row, rp.needleOperations(patternWidth, offsetSlots, patternSpace)...)
	row = append(row, rp.rightOptionBlock(optionSpace)...)
	return row
}

func (rp *Pass) needleOperations(patternWidth, offsetSlots, patternSpace int) []int {
	out := make([]int, patternSpace, patternSpace*2+patternWidth+2+patternSpace)
	leftMark, rightMark := rp.stoppingMarks()
	leftMark += offsetSlots
	rightMark += offsetSlots
	for slot := -1; slot <= patternWidth; slot++ {
		switch {
		case slot == leftMark || slot == rightMark:
			out = append(out, datcodes.StoppingMark)
		default:
			if color, ok := rp.SlotColors[slot-offsetSlots]; ok {
				out = append(out, int(color))
			} else {
				out = append(out, 0)
			}
		}
	}
	for i := 0; i < patternSpace; i++ {
		out = append(out, 0)
	}
	return out
}

func optionLineMarkers() []int {
	markers := make([]int, 0, datcodes.OptionLineCount*2)
	for i := 1; i <= datcodes.OptionLineCount; i++ {
		markers = append(markers, i, 0)
	}
	return markers
}

func (rp *Pass) leftOptionBlock(leftSpace int) []int {
	markers := optionLineMarkers()
	for _, line := range datcodes.AllLeftOptionLines {
		pos := (int(line) - 1) * 2
		if line != datcodes.DirectionSpecificationLeft {
			pos++
		}
		markers[pos] = rp.LeftOptions[line]
	}
	out := make([]int, leftSpace, leftSpace+len(markers))
	for i := 0; i < leftSpace; i++ {
		out[i] = 0
	}
	for i := len(markers) - 1; i >= 0; i-- {
		out = append(out, markers[i])
	}
	return out
}

func (rp *Pass) rightOptionBlock(rightSpace int) []int {
	markers := optionLineMarkers()
	for _, line := range datcodes.AllRightOptionLines {
		pos := (int(line) - 1) * 2
		if line != datcodes.DirectionSpecificationRight {
			pos++
		}
		markers[pos] = rp.RightOptions[line]
	}
	out := append([]int(nil), markers...)
	for i := 0; i < rightSpace; i++ {
		out = append(out, 0)
	}
	return out
}
