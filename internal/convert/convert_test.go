package convert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knitout2dat/knitout2dat/internal/dat"
	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

func tuckAndKnitProgram() []knitinst.Instruction {
	f := func(pos int) knitinst.Needle { return knitinst.Needle{Bed: knitinst.Front, Position: pos} }
	return []knitinst.Instruction{
		knitinst.NewInhook(3),
		knitinst.NewTuck(f(0), knitinst.Rightward, knitinst.CarrierSet{3}),
		knitinst.NewTuck(f(1), knitinst.Rightward, knitinst.CarrierSet{3}),
		knitinst.NewTuck(f(2), knitinst.Rightward, knitinst.CarrierSet{3}),
		knitinst.NewKnit(f(2), knitinst.Leftward, knitinst.CarrierSet{3}),
		knitinst.NewKnit(f(1), knitinst.Leftward, knitinst.CarrierSet{3}),
		knitinst.NewKnit(f(0), knitinst.Leftward, knitinst.CarrierSet{3}),
		knitinst.NewOuthook(3),
	}
}

func smallOptions() Options {
	h := knitinst.DefaultHeader()
	h.BedWidth = 20
	return Options{Header: h, PositionToken: "keep"}
}

func TestCompileProducesWellFormedDat(t *testing.T) {
	buf, warnings, err := Compile(tuckAndKnitProgram(), smallOptions())
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, uint8(0), buf[0x00])
	require.Greater(t, len(buf), 0x600)
}

func TestCompileRejectsExcessiveRack(t *testing.T) {
	f := func(pos int) knitinst.Needle { return knitinst.Needle{Bed: knitinst.Front, Position: pos} }
	instrs := []knitinst.Instruction{
		knitinst.NewRack(knitinst.RackState{Rack: 99}),
		knitinst.NewKnit(f(0), knitinst.Rightward, knitinst.CarrierSet{1}),
	}
	_, _, err := Compile(instrs, smallOptions())
	require.Error(t, err)
}

func TestCompileDecompileRoundTripPreservesNeedleOps(t *testing.T) {
	buf, _, err := Compile(tuckAndKnitProgram(), smallOptions())
	require.NoError(t, err)

	decoded, _, err := Decompile(buf, smallOptions())
	require.NoError(t, err)

	var knits, tucks int
	for _, in := range decoded {
		switch in.Kind {
		case knitinst.Knit:
			knits++
		case knitinst.Tuck:
			tucks++
		}
	}
	require.Equal(t, 3, knits)
	require.Equal(t, 3, tucks)
}

func TestCompileIncludesRulerRowWhenRequested(t *testing.T) {
	opts := smallOptions()
	opts.IncludeRuler = true
	buf, _, err := Compile(tuckAndKnitProgram(), opts)
	require.NoError(t, err)

	plain, _, err := Compile(tuckAndKnitProgram(), smallOptions())
	require.NoError(t, err)
	_, plainRows, err := dat.Decode(plain)
	require.NoError(t, err)
	_, rulerRows, err := dat.Decode(buf)
	require.NoError(t, err)
	require.Len(t, rulerRows, len(plainRows)+1)

	decoded, _, err := Decompile(buf, opts)
	require.NoError(t, err)
	// The ruler row itself must not leak into the decoded instruction stream.
	for _, in := range decoded {
		require.NotEqual(t, knitinst.Kind(99), in.Kind)
	}
}

func TestCompileInsertsAlignmentKickBeforeMisalignedOuthook(t *testing.T) {
	f := func(pos int) knitinst.Needle { return knitinst.Needle{Bed: knitinst.Front, Position: pos} }
	instrs := []knitinst.Instruction{
		knitinst.NewInhook(1),
		knitinst.NewKnit(f(0), knitinst.Rightward, knitinst.CarrierSet{1}),
		knitinst.NewKnit(f(1), knitinst.Rightward, knitinst.CarrierSet{1}),
		knitinst.NewOuthook(1),
	}
	_, _, err := Compile(instrs, smallOptions())
	require.NoError(t, err)

	opts := smallOptions()
	header, _ := knitinst.Normalize(opts.Header, opts.PositionToken)
	scheduled, err := schedule(instrs, header, opts)
	require.NoError(t, err)
	require.Len(t, scheduled, 2)
	require.Equal(t, knitinst.Kick, scheduled[1].pass.Instructions[0].Kind)
	require.Equal(t, knitinst.Leftward, scheduled[1].pass.Direction)
}

func TestResolvePositionDeltaLeftJustifies(t *testing.T) {
	h := knitinst.DefaultHeader()
	h.BedWidth = 100
	h.Position = knitinst.PolicyLeft
	instrs := []knitinst.Instruction{
		knitinst.NewKnit(knitinst.Needle{Bed: knitinst.Front, Position: 40}, knitinst.Rightward, knitinst.CarrierSet{1}),
		knitinst.NewKnit(knitinst.Needle{Bed: knitinst.Front, Position: 45}, knitinst.Rightward, knitinst.CarrierSet{1}),
	}
	delta, err := resolvePositionDelta(instrs, h)
	require.NoError(t, err)
	require.Equal(t, 1-40, delta)
}

func TestResolvePositionDeltaKeepIsNoop(t *testing.T) {
	h := knitinst.DefaultHeader()
	h.Position = knitinst.PolicyKeep
	instrs := []knitinst.Instruction{
		knitinst.NewKnit(knitinst.Needle{Bed: knitinst.Front, Position: 40}, knitinst.Rightward, knitinst.CarrierSet{1}),
	}
	delta, err := resolvePositionDelta(instrs, h)
	require.NoError(t, err)
	require.Equal(t, 0, delta)
}

func TestResolvePositionDeltaKeepRejectsOutOfBedRange(t *testing.T) {
	h := knitinst.DefaultHeader()
	h.Position = knitinst.PolicyKeep
	h.BedWidth = 10
	instrs := []knitinst.Instruction{
		knitinst.NewKnit(knitinst.Needle{Bed: knitinst.Front, Position: 40}, knitinst.Rightward, knitinst.CarrierSet{1}),
	}
	_, err := resolvePositionDelta(instrs, h)
	require.Error(t, err)
}
