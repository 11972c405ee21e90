package datcodes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

func TestCarriersToIntSingle(t *testing.T) {
	require.Equal(t, 4, CarriersToInt(knitinst.CarrierSet{4}))
	require.Equal(t, NoCarriers, CarriersToInt(nil))
}

func TestCarriersToIntPairs(t *testing.T) {
	require.Equal(t, 23, CarriersToInt(knitinst.CarrierSet{2, 3}))
	require.Equal(t, 103, CarriersToInt(knitinst.CarrierSet{10, 3}))
	require.Equal(t, 20, CarriersToInt(knitinst.CarrierSet{2, 10}))
}

func TestPixelToCarriersRoundTrip(t *testing.T) {
	cases := []knitinst.CarrierSet{
		{4},
		{2, 3},
		{10, 3},
		{2, 10},
	}
	for _, cs := range cases {
		pixel := CarriersToInt(cs)
		decoded, err := PixelToCarriers(pixel)
		require.NoError(t, err)
		require.True(t, decoded.Equal(cs), "round trip of %v via pixel %d gave %v", cs, pixel, decoded)
	}
}

func TestPixelToCarriersNoCarriers(t *testing.T) {
	decoded, err := PixelToCarriers(NoCarriers)
	require.NoError(t, err)
	require.Nil(t, decoded)

	decoded, err = PixelToCarriers(0)
	require.NoError(t, err)
	require.Nil(t, decoded)
}

func TestPixelToCarriersUndecodable(t *testing.T) {
	_, err := PixelToCarriers(999)
	require.Error(t, err)
}

func TestOperationColorCombination(t *testing.T) {
	combo, ok := KnitFront.CombineAllNeedle(TuckBack)
	require.True(t, ok)
	require.Equal(t, KnitFrontTuckBack, combo)

	_, ok = KnitFront.CombineAllNeedle(KnitFront)
	require.False(t, ok)

	require.True(t, KnitFront.IsFront())
	require.True(t, KnitBack.IsBack())
	require.False(t, SoftMiss.CanConvertToAllNeedle())
}

func TestPaletteSize(t *testing.T) {
	require.Len(t, Palette, 768)
}
