package knitparse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

const sample = `;!knitout-2
;;Carriers: 1 2 3 4 5 6 7 8 9 10
;;Gauge: 15
;;Position: Left
inhook 3
tuck + f0 3
tuck + f1 3
knit - f1 3
knit - f0 3
outhook 3
`

func TestParseReadsHeaderAndInstructions(t *testing.T) {
	prog, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 10, prog.Header.CarrierCount)
	require.Equal(t, 15, prog.Header.Gauge)
	require.Equal(t, "Left", prog.PositionToken)
	require.Len(t, prog.Instructions, 6)
	require.Equal(t, knitinst.Inhook, prog.Instructions[0].Kind)
	require.Equal(t, knitinst.Tuck, prog.Instructions[1].Kind)
	require.Equal(t, knitinst.Front, prog.Instructions[1].Needle.Bed)
	require.Equal(t, 0, prog.Instructions[1].Needle.Position)
}

func TestParseSkipsUnrecognizedLines(t *testing.T) {
	prog, err := Parse(strings.NewReader("; just a comment\nbogus op here\nknit + f0 1\n"))
	require.NoError(t, err)
	require.Len(t, prog.Instructions, 1)
}

func TestParseRackAllNeedle(t *testing.T) {
	prog, err := Parse(strings.NewReader("rack 1.25\n"))
	require.NoError(t, err)
	require.Len(t, prog.Instructions, 1)
	require.Equal(t, 1, prog.Instructions[0].Rack.Rack)
	require.True(t, prog.Instructions[0].Rack.AllNeedle)
}

func TestWriteRoundTripsOperationShape(t *testing.T) {
	instrs := []knitinst.Instruction{
		knitinst.NewInhook(3),
		knitinst.NewTuck(knitinst.Needle{Bed: knitinst.Front, Position: 0}, knitinst.Rightward, knitinst.CarrierSet{3}),
		knitinst.NewOuthook(3),
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, instrs))

	reparsed, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, reparsed.Instructions, 3)
	require.Equal(t, knitinst.Tuck, reparsed.Instructions[1].Kind)
	require.Equal(t, 0, reparsed.Instructions[1].Needle.Position)
}
