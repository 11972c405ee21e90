package datcodes

import (
	"strconv"

	"github.com/knitout2dat/knitout2dat/internal/errs"
	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

// CarriersToInt encodes a carrier set as the single integer a DAT pixel
// or option-line value carries. An empty set encodes to NoCarriers. A
// lone carrier encodes to its own id. A pair [10, b] encodes as the
// digits "10" followed by b (100+b), a pair [a, 10] with a != 1 as a
// followed by "0" (a*10), and a pair of two single-digit ids as their
// two-digit concatenation (a*10+b).
func CarriersToInt(cs knitinst.CarrierSet) int {
	switch len(cs) {
	case 0:
		return NoCarriers
	case 1:
		return cs[0]
	case 2:
		a, b := cs[0], cs[1]
		if a == 10 {
			return 10*10 + b
		}
		if b == 10 && a != 1 {
			return a * 10
		}
		return a*10 + b
	default:
		// No combination wider than two carriers has a pixel encoding;
		// the leading carrier stands in for the whole set.
		return cs[0]
	}
}

// PixelToCarriers decodes a DAT pixel/option value back into the
// carrier set CarriersToInt would have produced, the inverse used by
// the DAT-to-knitout reader (spec §4.6).
func PixelToCarriers(pixel int) (knitinst.CarrierSet, error) {
	if pixel == 0 || pixel == NoCarriers {
		return nil, nil
	}
	if pixel >= 1 && pixel <= 10 {
		return knitinst.CarrierSet{pixel}, nil
	}

	digits := strconv.Itoa(pixel)
	if len(digits) == 3 && digits[:2] == "10" {
		second := int(digits[2] - '0')
		if second >= 1 && second <= 9 {
			return knitinst.CarrierSet{10, second}, nil
		}
	}
	if len(digits) == 2 {
		if digits[1] == '0' {
			first := int(digits[0] - '0')
			if first >= 2 && first <= 9 {
				return knitinst.CarrierSet{first, 10}, nil
			}
		}
		first, second := int(digits[0]-'0'), int(digits[1]-'0')
		if first >= 1 && first <= 9 && second >= 1 && second <= 9 {
			return knitinst.CarrierSet{first, second}, nil
		}
	}
	return nil, errs.New(errs.UndecodableCarrierInteger, "pixel value "+digits)
}
