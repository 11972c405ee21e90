// Package convert wires the grouping, kickback-scheduling, sequence,
// raster, and container layers into the two end-to-end operations the
// compiler exists to perform: knitout instructions to a DAT file, and
// back (spec §4, §6).
package convert

import (
	"github.com/knitout2dat/knitout2dat/internal/carriermodel"
	"github.com/knitout2dat/knitout2dat/internal/dat"
	"github.com/knitout2dat/knitout2dat/internal/datcodes"
	"github.com/knitout2dat/knitout2dat/internal/kickback"
	"github.com/knitout2dat/knitout2dat/internal/knitinst"
	"github.com/knitout2dat/knitout2dat/internal/passbuild"
	"github.com/knitout2dat/knitout2dat/internal/raster"
	"github.com/knitout2dat/knitout2dat/internal/sequences"
)

// Default option/pattern spacing this implementation renders with,
// matching the original raster builder's own defaults (spec §4.4). The
// source format never persists these two widths in the file itself; a
// reader has to assume a convention, so Compile and Decompile share
// this one (spec §9 Open Questions).
const (
	DefaultOptionSpace  = 10
	DefaultPatternSpace = 4
)

// Options carries the settings a Compile call needs beyond the raw
// instruction stream: the machine header (as parsed from the knitout
// comment block) and the rendering knobs spec §4.4/§6 leaves to the
// caller.
type Options struct {
	Header        knitinst.MachineHeader
	PositionToken string
	StitchNumber  int
	SpeedNumber   int
	Presser       raster.PresserSetting
	OptionSpace   int
	PatternSpace  int
	IncludeRuler  bool
}

func (o Options) optionSpace() int {
	if o.OptionSpace != 0 {
		return o.OptionSpace
	}
	return DefaultOptionSpace
}

func (o Options) patternSpace() int {
	if o.PatternSpace != 0 {
		return o.PatternSpace
	}
	return DefaultPatternSpace
}

type scheduledPass struct {
	pass *passbuild.CarriagePass
	ctx  raster.Context
}

// Compile turns a flat knitout instruction stream into a complete DAT
// file buffer: position the pattern on the bed, group it into carriage
// passes, schedule kickbacks, bracket it with the startup/finish
// sequences, render every pass to a raster row, and encode the result
// (spec §4, §6).
func Compile(instructions []knitinst.Instruction, opts Options) ([]byte, []knitinst.Warning, error) {
	header, warnings := knitinst.Normalize(opts.Header, opts.PositionToken)

	delta, err := resolvePositionDelta(instructions, header)
	if err != nil {
		return nil, warnings, err
	}
	shifted := shiftInstructions(instructions, delta)

	scheduled, err := schedule(shifted, header, opts)
	if err != nil {
		return nil, warnings, err
	}

	// patternWidth is the actual footprint of the scheduled program
	// (including any kickback extension beyond the user's own needle
	// range), not the full machine bed; the startup/finish sequences are
	// built to exactly this width (spec §4.3: "for a given pattern width
	// w"), so their own stopping marks always land inside the render
	// loop's slot range.
	var globalMin, globalMax int
	haveRange := false
	for _, sp := range scheduled {
		if lo, hi, ok := sp.pass.SlotRange(); ok {
			if !haveRange || lo < globalMin {
				globalMin = lo
			}
			if !haveRange || hi > globalMax {
				globalMax = hi
			}
			haveRange = true
		}
	}
	patternWidth := 0
	if haveRange {
		patternWidth = globalMax - globalMin + 1
	}
	offsetSlots := -globalMin
	optionSpace, patternSpace := opts.optionSpace(), opts.patternSpace()

	startupPasses := sequences.Startup(patternWidth)
	finishPass, dropSinker := sequences.Finish(patternWidth)

	var rows [][]int
	// Startup/finish passes already sit on pattern-relative slots
	// [0, patternWidth), so they render with no offset.
	renderRow := func(p *passbuild.CarriagePass, ctx raster.Context, offset int) error {
		rp, err := raster.NewPass(p, ctx)
		if err != nil {
			return err
		}
		rows = append(rows, rp.Row(patternWidth, optionSpace, patternSpace, offset))
		return nil
	}

	if opts.IncludeRuler {
		rows = append(rows, rulerRow(patternWidth, optionSpace, patternSpace, offsetSlots))
	}
	for _, p := range startupPasses {
		if err := renderRow(p, raster.Context{MaxRack: header.MaxRack}, 0); err != nil {
			return nil, warnings, err
		}
	}
	for _, sp := range scheduled {
		if err := renderRow(sp.pass, sp.ctx, offsetSlots); err != nil {
			return nil, warnings, err
		}
	}
	if finishPass != nil {
		if err := renderRow(finishPass, raster.Context{MaxRack: header.MaxRack, DropSinker: dropSinker}, 0); err != nil {
			return nil, warnings, err
		}
	}

	return dat.Encode(rows), warnings, nil
}

// schedule walks the grouped instruction stream, threading the carrier
// model through kickback scheduling and folding in the hook-operation
// and pause context that in knitout text rides on standalone
// instructions rather than the carriage pass itself.
//
// Hook-operation attribution is a documented simplification: inhook and
// releasehook are assumed to apply to the next carriage pass that uses
// the named carrier; outhook is attributed retroactively to the most
// recent pass that used it, since that is the pass whose yarn the
// machine is releasing (spec §4.2, §9).
func schedule(instructions []knitinst.Instruction, header knitinst.MachineHeader, opts Options) ([]scheduledPass, error) {
	elements := passbuild.Group(instructions)
	model := carriermodel.NewModel()

	pendingHook := map[int]int{}
	lastPassIndex := map[int]int{}
	pause := false

	var out []scheduledPass
	for _, el := range elements {
		if el.Kind == passbuild.StandaloneElement {
			in := el.Standalone
			switch in.Kind {
			case knitinst.Inhook:
				pendingHook[in.CarrierID()] = datcodes.InHookOperation
			case knitinst.Releasehook:
				if kick, needed := kickback.AlignmentKick(in.CarrierID(), model, knitinst.Releasehook); needed {
					out = append(out, scheduledPass{
						pass: passbuild.NewCarriagePass(kick, knitinst.RackState{}),
						ctx:  raster.Context{MaxRack: header.MaxRack},
					})
					kickback.ApplyAlignmentKick(kick, model)
				}
				pendingHook[in.CarrierID()] = datcodes.ReleaseHookOperation
			case knitinst.Outhook:
				if kick, needed := kickback.AlignmentKick(in.CarrierID(), model, knitinst.Outhook); needed {
					out = append(out, scheduledPass{
						pass: passbuild.NewCarriagePass(kick, knitinst.RackState{}),
						ctx:  raster.Context{MaxRack: header.MaxRack},
					})
					kickback.ApplyAlignmentKick(kick, model)
				}
				if idx, ok := lastPassIndex[in.CarrierID()]; ok {
					out[idx].ctx.HookOperation = datcodes.OutHookOperation
				}
				model.Deactivate(in.CarrierID())
			case knitinst.Pause:
				pause = true
			}
			continue
		}

		pass := el.Pass
		kicks, err := kickback.KicksBefore(pass, model, header.BedWidth)
		if err != nil {
			return nil, err
		}
		// Step (c): the first remaining kick may extend the immediately
		// preceding emitted pass instead of running standalone (spec
		// §4.2); at most one merge per scheduler step.
		standalone := kicks
		if len(kicks) > 0 && len(out) > 0 && kickback.TryMergeKick(kicks[0], out[len(out)-1].pass, model) {
			standalone = kicks[1:]
		}
		for _, k := range standalone {
			kickPass := passbuild.NewCarriagePass(k, pass.Rack)
			out = append(out, scheduledPass{pass: kickPass, ctx: raster.Context{MaxRack: header.MaxRack}})
		}
		kickback.Apply(pass, kicks, model)

		ctx := raster.Context{
			StitchNumber: opts.StitchNumber,
			SpeedNumber:  opts.SpeedNumber,
			Presser:      opts.Presser,
			MaxRack:      header.MaxRack,
		}
		for _, c := range pass.Carriers {
			if hook, ok := pendingHook[c]; ok {
				ctx.HookOperation = hook
				delete(pendingHook, c)
				break
			}
		}
		if pause {
			ctx.Pause = true
			pause = false
		}

		out = append(out, scheduledPass{pass: pass, ctx: ctx})
		idx := len(out) - 1
		for _, c := range pass.Carriers {
			lastPassIndex[c] = idx
		}
	}
	return out, nil
}

// rulerRow marks every tenth needle position across the pattern's
// footprint, independent of any carriage pass; a quick visual check a
// viewer can overlay on a rendered DAT file (spec §8).
func rulerRow(patternWidth, optionSpace, patternSpace, offsetSlots int) []int {
	row := make([]int, raster.RasterWidth(patternWidth, optionSpace, patternSpace))
	needleStart := optionSpace + datcodes.OptionLineCount*2 + patternSpace
	for slot := -1; slot <= patternWidth; slot++ {
		raw := slot - offsetSlots
		if raw%10 == 0 {
			row[needleStart+slot+1] = datcodes.WidthSpecifier
		}
	}
	return row
}
