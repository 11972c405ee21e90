// Package dat encodes and decodes the Shima Seiki DAT raster container:
// a fixed-size header, a fixed-size palette block, and a run-length
// encoded stream of pixel rows (spec §4.5, §4.6).
package dat

import (
	"encoding/binary"

	"github.com/knitout2dat/knitout2dat/internal/datcodes"
	"github.com/knitout2dat/knitout2dat/internal/errs"
)

const (
	HeaderSize = 0x200
	PaletteSize = 0x400
	DataOffset = 0x600

	headerMagic = 1000
)

// Header is the parsed form of the fixed-size DAT header block.
type Header struct {
	XMin, YMin int
	XMax, YMax int
}

// Width and Height derive the raster dimensions a header describes.
func (h Header) Width() int  { return h.XMax - h.XMin + 1 }
func (h Header) Height() int { return h.YMax - h.YMin + 1 }

// Encode serializes rows (each a slice of palette indices, all equal
// length) into a complete DAT file buffer: header, palette, RLE data.
func Encode(rows [][]int) []byte {
	width, height := 0, len(rows)
	if height > 0 {
		width = len(rows[0])
	}
	header := Header{XMin: 0, YMin: 0, XMax: width - 1, YMax: height - 1}

	encoded := runLengthEncode(rows)

	buf := make([]byte, DataOffset+len(encoded))
	writeHeader(buf[:HeaderSize], header)
	copy(buf[HeaderSize:HeaderSize+PaletteSize], datcodes.Palette[:])
	copy(buf[DataOffset:], encoded)
	return buf
}

func writeHeader(b []byte, h Header) {
	binary.LittleEndian.PutUint16(b[0x00:], uint16(h.XMin))
	binary.LittleEndian.PutUint16(b[0x02:], uint16(h.YMin))
	binary.LittleEndian.PutUint16(b[0x04:], uint16(h.XMax))
	binary.LittleEndian.PutUint16(b[0x06:], uint16(h.YMax))
	binary.LittleEndian.PutUint16(b[0x08:], headerMagic)
	binary.LittleEndian.PutUint16(b[0x10:], headerMagic)
}

func readHeader(b []byte) Header {
	return Header{
		XMin: int(binary.LittleEndian.Uint16(b[0x00:])),
		YMin: int(binary.LittleEndian.Uint16(b[0x02:])),
		XMax: int(binary.LittleEndian.Uint16(b[0x04:])),
		YMax: int(binary.LittleEndian.Uint16(b[0x06:])),
	}
}

// runLengthEncode flattens rows into alternating (color, run-length)
// byte pairs, splitting any run longer than 255 pixels (spec §4.5).
func runLengthEncode(rows [][]int) []byte {
	var out []byte
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		current := row[0]
		run := 0
		for x, pixel := range row {
			if pixel == current && run < 255 {
				run++
			} else {
				out = append(out, byte(current), byte(run))
				current = pixel
				run = 1
			}
			if x == len(row)-1 {
				out = append(out, byte(current), byte(run))
			}
		}
	}
	return out
}

// Decode parses a complete DAT file buffer back into its header and
// decoded pixel rows (spec §4.6), validating the two magic-number
// fields every DAT file in the wild carries.
func Decode(buf []byte) (Header, [][]int, error) {
	if len(buf) < DataOffset {
		return Header{}, nil, errs.New(errs.BadDatMagic, "buffer shorter than the fixed header+palette region")
	}
	magic1 := binary.LittleEndian.Uint16(buf[0x08:])
	magic2 := binary.LittleEndian.Uint16(buf[0x10:])
	if magic1 != headerMagic || magic2 != headerMagic {
		return Header{}, nil, errs.New(errs.BadDatMagic, "missing DAT magic numbers")
	}
	header := readHeader(buf[:HeaderSize])
	width, height := header.Width(), header.Height()
	if width <= 0 || height <= 0 {
		return header, nil, nil
	}

	pixels := runLengthDecode(buf[DataOffset:])
	rows := make([][]int, 0, height)
	for y := 0; y < height; y++ {
		start := y * width
		if start+width > len(pixels) {
			return header, rows, errs.New(errs.IO, "RLE data too short for declared raster dimensions")
		}
		rows = append(rows, pixels[start:start+width])
	}
	return header, rows, nil
}

func runLengthDecode(data []byte) []int {
	pixels := make([]int, 0, len(data))
	for i := 0; i+1 < len(data); i += 2 {
		color, run := int(data[i]), int(data[i+1])
		for j := 0; j < run; j++ {
			pixels = append(pixels, color)
		}
	}
	return pixels
}
