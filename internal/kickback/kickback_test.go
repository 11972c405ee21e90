package kickback

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knitout2dat/knitout2dat/internal/carriermodel"
	"github.com/knitout2dat/knitout2dat/internal/knitinst"
	"github.com/knitout2dat/knitout2dat/internal/passbuild"
)

func rightwardKnitPass(carrier int, from, to int) *passbuild.CarriagePass {
	pass := passbuild.NewCarriagePass(
		knitinst.NewKnit(knitinst.Needle{Bed: knitinst.Front, Position: from}, knitinst.Rightward, knitinst.CarrierSet{carrier}),
		knitinst.RackState{},
	)
	for p := from + 1; p <= to; p++ {
		pass.TryAppend(
			knitinst.NewKnit(knitinst.Needle{Bed: knitinst.Front, Position: p}, knitinst.Rightward, knitinst.CarrierSet{carrier}),
			knitinst.RackState{},
		)
	}
	return pass
}

func TestNoConflictWhenNoOtherCarriersActive(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(1, 0)
	pass := rightwardKnitPass(1, 0, 5)
	kicks, err := KicksBefore(pass, model, 540)
	require.NoError(t, err)
	require.Empty(t, kicks)
}

func TestKicksIdleCarrierOutOfZone(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(1, 20)
	model.Activate(2, 23)
	pass := rightwardKnitPass(1, 20, 25)

	kicks, err := KicksBefore(pass, model, 540)
	require.NoError(t, err)
	require.Len(t, kicks, 1)
	k := kicks[0]
	require.Equal(t, knitinst.Kick, k.Kind)
	require.Equal(t, knitinst.Leftward, k.Direction)
	require.Equal(t, 19, k.Needle.Position)
	require.Equal(t, knitinst.CarrierSet{2}, k.Carriers)
}

func TestExemptCarrierNeverKicked(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(1, 20)
	model.Activate(2, 22)
	pass := rightwardKnitPass(2, 20, 25)

	kicks, err := KicksBefore(pass, model, 540)
	require.NoError(t, err)
	for _, k := range kicks {
		require.NotContains(t, k.Carriers, 2)
	}
}

func TestAlignmentKickNeededWhenDirectionsMatch(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(1, 5)
	model.SetLastDirection(knitinst.Rightward)

	kick, needed := AlignmentKick(1, model, knitinst.Outhook)
	require.True(t, needed)
	require.Equal(t, knitinst.Leftward, kick.Direction)
	require.Equal(t, 4, kick.Needle.Position)

	ApplyAlignmentKick(kick, model)
	require.Equal(t, knitinst.Leftward, model.LastDirection())
	pos, ok := model.Position(1)
	require.True(t, ok)
	require.Equal(t, 4, pos)
}

func TestAlignmentKickNotNeededWhenAlreadyAligned(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(1, 5)
	model.SetLastDirection(knitinst.Leftward)

	_, needed := AlignmentKick(1, model, knitinst.Outhook)
	require.False(t, needed)
}

func TestKicksBeforeReportsPatternTooWideWhenKickExceedsBedWidth(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(1, 0)
	model.Activate(2, 12)
	pass := rightwardKnitPass(1, 0, 5)

	_, err := KicksBefore(pass, model, 10)
	require.Error(t, err)
}

func TestTryMergeKickExtendsCompatiblePreviousKickPass(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(2, 5)
	lastPass := passbuild.NewCarriagePass(
		knitinst.NewKick(5, knitinst.Rightward, knitinst.CarrierSet{2}),
		knitinst.RackState{},
	)
	kick := knitinst.NewKick(6, knitinst.Rightward, knitinst.CarrierSet{2})

	require.True(t, TryMergeKick(kick, lastPass, model))
	require.Len(t, lastPass.Instructions, 2)
}

func TestTryMergeKickRejectsWhenConflictSpanHasOtherCarrier(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(2, 5)
	model.Activate(3, 7)
	lastPass := passbuild.NewCarriagePass(
		knitinst.NewKick(5, knitinst.Rightward, knitinst.CarrierSet{2}),
		knitinst.RackState{},
	)
	kick := knitinst.NewKick(6, knitinst.Rightward, knitinst.CarrierSet{2})

	require.False(t, TryMergeKick(kick, lastPass, model))
	require.Len(t, lastPass.Instructions, 1)
}

func TestTryMergeKickRejectsDifferentCarrierSet(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(2, 5)
	lastPass := passbuild.NewCarriagePass(
		knitinst.NewKick(5, knitinst.Rightward, knitinst.CarrierSet{2}),
		knitinst.RackState{},
	)
	kick := knitinst.NewKick(6, knitinst.Rightward, knitinst.CarrierSet{3})

	require.False(t, TryMergeKick(kick, lastPass, model))
}

func TestApplyUpdatesModel(t *testing.T) {
	model := carriermodel.NewModel()
	model.Activate(1, 20)
	model.Activate(2, 23)
	pass := rightwardKnitPass(1, 20, 25)
	kicks, err := KicksBefore(pass, model, 540)
	require.NoError(t, err)
	Apply(pass, kicks, model)

	pos, ok := model.Position(1)
	require.True(t, ok)
	require.Equal(t, 25, pos) // pass ends at slot 25, rightward

	pos, ok = model.Position(2)
	require.True(t, ok)
	require.Equal(t, 19, pos)
	lo, hi, ok := model.PositionRange(2, StoppingDistance)
	require.True(t, ok)
	require.Equal(t, 9, lo)
	require.Equal(t, 19, hi)
}
