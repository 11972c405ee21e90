package passbuild

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

func f(pos int) knitinst.Needle { return knitinst.Needle{Bed: knitinst.Front, Position: pos} }
func b(pos int) knitinst.Needle { return knitinst.Needle{Bed: knitinst.Back, Position: pos} }

func TestGroupSingleTuck(t *testing.T) {
	instrs := []knitinst.Instruction{
		knitinst.NewTuck(f(1), knitinst.Leftward, knitinst.CarrierSet{1}),
	}
	elems := Group(instrs)
	require.Len(t, elems, 1)
	require.Equal(t, PassElement, elems[0].Kind)
	require.Len(t, elems[0].Pass.Instructions, 1)
}

func TestGroupKnitTuckMixFreely(t *testing.T) {
	instrs := []knitinst.Instruction{
		knitinst.NewKnit(f(0), knitinst.Rightward, knitinst.CarrierSet{1}),
		knitinst.NewTuck(f(1), knitinst.Rightward, knitinst.CarrierSet{1}),
		knitinst.NewKnit(f(2), knitinst.Rightward, knitinst.CarrierSet{1}),
	}
	elems := Group(instrs)
	require.Len(t, elems, 1)
	require.Len(t, elems[0].Pass.Instructions, 3)
}

func TestGroupBreaksOnDirectionChange(t *testing.T) {
	instrs := []knitinst.Instruction{
		knitinst.NewKnit(f(0), knitinst.Rightward, knitinst.CarrierSet{1}),
		knitinst.NewKnit(f(1), knitinst.Leftward, knitinst.CarrierSet{1}),
	}
	elems := Group(instrs)
	require.Len(t, elems, 2)
}

func TestGroupBreaksOnBackwardNeedle(t *testing.T) {
	instrs := []knitinst.Instruction{
		knitinst.NewKnit(f(5), knitinst.Rightward, knitinst.CarrierSet{1}),
		knitinst.NewKnit(f(2), knitinst.Rightward, knitinst.CarrierSet{1}),
	}
	elems := Group(instrs)
	require.Len(t, elems, 2)
}

func TestGroupAllNeedleCombo(t *testing.T) {
	rack := knitinst.NewRack(knitinst.RackState{Rack: 0, AllNeedle: true})
	instrs := []knitinst.Instruction{
		rack,
		knitinst.NewKnit(f(0), knitinst.Rightward, knitinst.CarrierSet{1}),
		knitinst.NewKnit(b(0), knitinst.Rightward, knitinst.CarrierSet{1}),
	}
	elems := Group(instrs)
	require.Len(t, elems, 2) // the rack change, then one merged pass
	require.Equal(t, PassElement, elems[1].Kind)
	require.Len(t, elems[1].Pass.Instructions, 2)
}

func TestGroupTransferRejectsRepeatNeedle(t *testing.T) {
	instrs := []knitinst.Instruction{
		knitinst.NewXfer(f(0), b(0)),
		knitinst.NewXfer(f(0), b(1)),
	}
	elems := Group(instrs)
	require.Len(t, elems, 2)
}

func TestGroupElidesRedundantRack(t *testing.T) {
	instrs := []knitinst.Instruction{
		knitinst.NewRack(knitinst.RackState{Rack: 0}),
		knitinst.NewKnit(f(0), knitinst.Rightward, knitinst.CarrierSet{1}),
	}
	elems := Group(instrs)
	require.Len(t, elems, 1)
	require.Equal(t, PassElement, elems[0].Kind)
}

func TestGroupHookOpsBreakPasses(t *testing.T) {
	instrs := []knitinst.Instruction{
		knitinst.NewInhook(1),
		knitinst.NewTuck(f(0), knitinst.Leftward, knitinst.CarrierSet{1}),
		knitinst.NewReleasehook(1),
	}
	elems := Group(instrs)
	require.Len(t, elems, 3)
	require.Equal(t, StandaloneElement, elems[0].Kind)
	require.Equal(t, PassElement, elems[1].Kind)
	require.Equal(t, StandaloneElement, elems[2].Kind)
}
