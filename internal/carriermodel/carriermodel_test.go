package carriermodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

func TestActivateAndSetPosition(t *testing.T) {
	m := NewModel()
	require.False(t, m.IsActive(1))
	m.Activate(1, 5)
	require.True(t, m.IsActive(1))

	m.SetPosition(1, 20)
	pos, ok := m.Position(1)
	require.True(t, ok)
	require.Equal(t, 20, pos)
}

func TestPositionRangeNotKicked(t *testing.T) {
	m := NewModel()
	m.Activate(1, 10)
	lo, hi, ok := m.PositionRange(1, 10)
	require.True(t, ok)
	require.Equal(t, 10, lo)
	require.Equal(t, 10, hi)
}

func TestPositionRangeKicked(t *testing.T) {
	m := NewModel()
	m.Activate(1, 10)
	m.MarkKicked(1, 0, knitinst.Leftward)
	lo, hi, ok := m.PositionRange(1, 10)
	require.True(t, ok)
	require.Equal(t, -10, lo)
	require.Equal(t, 0, hi)

	m.MarkKicked(1, 20, knitinst.Rightward)
	lo, hi, ok = m.PositionRange(1, 10)
	require.True(t, ok)
	require.Equal(t, 20, lo)
	require.Equal(t, 30, hi)
}

func TestSetPositionClearsKick(t *testing.T) {
	m := NewModel()
	m.Activate(1, 10)
	m.MarkKicked(1, 0, knitinst.Leftward)
	m.SetPosition(1, 5)
	lo, hi, ok := m.PositionRange(1, 10)
	require.True(t, ok)
	require.Equal(t, 5, lo)
	require.Equal(t, 5, hi)
}

func TestDeactivate(t *testing.T) {
	m := NewModel()
	m.Activate(1, 5)
	m.Deactivate(1)
	require.False(t, m.IsActive(1))
	_, ok := m.Position(1)
	require.False(t, ok)
}

func TestActiveCarriers(t *testing.T) {
	m := NewModel()
	m.Activate(1, 5)
	m.Activate(2, 8)
	require.ElementsMatch(t, []int{1, 2}, m.ActiveCarriers())
}

func TestLastDirectionDefaultsToNone(t *testing.T) {
	m := NewModel()
	require.Equal(t, knitinst.NoDirection, m.LastDirection())
	m.SetLastDirection(knitinst.Rightward)
	require.Equal(t, knitinst.Rightward, m.LastDirection())
}
