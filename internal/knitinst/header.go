package knitinst

import "strings"

// PositionPolicy selects how a scheduled program's used needle range is
// placed onto the physical bed (spec §6).
type PositionPolicy int

const (
	// PolicyLeft left-justifies the pattern onto the bed. This is the default.
	PolicyLeft PositionPolicy = iota
	PolicyCenter
	PolicyKeep
	PolicyRight
)

func (p PositionPolicy) String() string {
	switch p {
	case PolicyCenter:
		return "Center"
	case PolicyKeep:
		return "Keep"
	case PolicyRight:
		return "Right"
	default:
		return "Left"
	}
}

// ParsePositionPolicy parses a header token into a PositionPolicy. An
// unrecognized token reports ok=false so the caller can warn and default.
func ParsePositionPolicy(token string) (PositionPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "center":
		return PolicyCenter, true
	case "keep":
		return PolicyKeep, true
	case "left":
		return PolicyLeft, true
	case "right":
		return PolicyRight, true
	default:
		return PolicyLeft, false
	}
}

// MachineHeader holds the machine parameters a knitout header may
// specify, with the defaults spec §6 assigns when a field is absent or
// malformed.
type MachineHeader struct {
	CarrierCount int
	Position     PositionPolicy
	Gauge        int
	BedWidth     int
	// MaxRack bounds |rack|; the source format never pins a concrete
	// number, so this carries the conservative default used throughout
	// this implementation (spec §9 Open Questions does not resolve it
	// either, so it is a documented implementation choice, not a guess
	// about an existing answer).
	MaxRack int
}

// DefaultHeader returns the header spec §6 describes: 10 carriers,
// left-justified positioning, 15 needles/inch gauge, a 540-needle bed.
func DefaultHeader() MachineHeader {
	return MachineHeader{
		CarrierCount: 10,
		Position:     PolicyLeft,
		Gauge:        15,
		BedWidth:     540,
		MaxRack:      30,
	}
}

// Warning describes a defaulted header field (spec §7 ParseShape: warn
// and default where the original tolerates it).
type Warning struct {
	Field   string
	Problem string
}

// Normalize validates raw header fields against spec §6/§7, returning a
// fully-populated header plus any warnings for defaulted fields. Zero
// values in raw mean "unspecified" and take the default silently; a
// non-positive gauge or bed width, or an unrecognized position token, is
// defaulted WITH a warning. A carrier count other than 10 is kept as
// given, with a warning.
func Normalize(raw MachineHeader, positionToken string) (MachineHeader, []Warning) {
	h := DefaultHeader()
	var warnings []Warning

	if raw.CarrierCount != 0 {
		if raw.CarrierCount != 10 {
			warnings = append(warnings, Warning{"carrier count", "expected 10 carriers"})
		}
		h.CarrierCount = raw.CarrierCount
	}
	if raw.Gauge != 0 {
		if raw.Gauge <= 0 {
			warnings = append(warnings, Warning{"gauge", "must be positive"})
		} else {
			h.Gauge = raw.Gauge
		}
	}
	if raw.BedWidth != 0 {
		if raw.BedWidth <= 0 {
			warnings = append(warnings, Warning{"bed width", "must be positive"})
		} else {
			h.BedWidth = raw.BedWidth
		}
	}
	if positionToken != "" {
		if policy, ok := ParsePositionPolicy(positionToken); ok {
			h.Position = policy
		} else {
			warnings = append(warnings, Warning{"position", "unrecognized policy token " + positionToken})
		}
	}
	return h, warnings
}
