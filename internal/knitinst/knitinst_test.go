package knitinst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeedleSlot(t *testing.T) {
	rack := RackState{Rack: 2}
	require.Equal(t, 5, Needle{Bed: Front, Position: 5}.Slot(rack))
	require.Equal(t, 7, Needle{Bed: Back, Position: 5}.Slot(rack))
}

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, Rightward, Leftward.Opposite())
	require.Equal(t, Leftward, Rightward.Opposite())
	require.Equal(t, NoDirection, NoDirection.Opposite())
}

func TestCarrierSetEqual(t *testing.T) {
	require.True(t, CarrierSet{1, 2}.Equal(CarrierSet{1, 2}))
	require.False(t, CarrierSet{1, 2}.Equal(CarrierSet{2, 1}))
	require.False(t, CarrierSet{1}.Equal(CarrierSet{1, 2}))
}

func TestNormalizeDefaults(t *testing.T) {
	h, warnings := Normalize(MachineHeader{}, "")
	require.Equal(t, DefaultHeader(), h)
	require.Empty(t, warnings)
}

func TestNormalizeWarnsOnUnexpectedCarrierCount(t *testing.T) {
	h, warnings := Normalize(MachineHeader{CarrierCount: 6}, "")
	require.Equal(t, 6, h.CarrierCount)
	require.Len(t, warnings, 1)
	require.Equal(t, "carrier count", warnings[0].Field)
}

func TestNormalizeUnknownPositionToken(t *testing.T) {
	h, warnings := Normalize(MachineHeader{}, "diagonal")
	require.Equal(t, PolicyLeft, h.Position)
	require.Len(t, warnings, 1)
}
