package datcodes

import "github.com/knitout2dat/knitout2dat/internal/knitinst"

// OperationColorFor maps a single needle instruction to the pixel color
// it contributes to a raster row, before any all-needle combination
// with an opposite-bed instruction in the same slot.
func OperationColorFor(in knitinst.Instruction) (OperationColor, bool) {
	front := in.Needle.Bed == knitinst.Front
	switch in.Kind {
	case knitinst.Knit:
		if front {
			return KnitFront, true
		}
		return KnitBack, true
	case knitinst.Tuck:
		if front {
			return TuckFront, true
		}
		return TuckBack, true
	case knitinst.Miss:
		if front {
			return MissFront, true
		}
		return MissBack, true
	case knitinst.Kick:
		return SoftMiss, true
	case knitinst.Split:
		// The split pulls the new loop to the opposite bed, so the color
		// names the bed it lands ON, not the bed the instruction's needle sits on.
		if front {
			return SplitToBack, true
		}
		return SplitToFront, true
	case knitinst.Xfer:
		if front {
			return XferToBack, true
		}
		return XferToFront, true
	default:
		return 0, false
	}
}

// PartialOp is one bed's half of a (possibly all-needle combined)
// operation color, as recovered by ExpandColor.
type PartialOp struct {
	Kind knitinst.Kind
	Bed  knitinst.Bed
}

// ExpandColor reverses OperationColorFor (and its all-needle
// combinations), returning the one or two bed operations a pixel color
// names. SoftMiss (a kickback artifact) and StoppingMark expand to
// nothing: they never round-trip back into knitout instructions.
func ExpandColor(c OperationColor) []PartialOp {
	switch c {
	case KnitFront:
		return []PartialOp{{knitinst.Knit, knitinst.Front}}
	case KnitBack:
		return []PartialOp{{knitinst.Knit, knitinst.Back}}
	case TuckFront:
		return []PartialOp{{knitinst.Tuck, knitinst.Front}}
	case TuckBack:
		return []PartialOp{{knitinst.Tuck, knitinst.Back}}
	case MissFront:
		return []PartialOp{{knitinst.Miss, knitinst.Front}}
	case MissBack:
		return []PartialOp{{knitinst.Miss, knitinst.Back}}
	case XferToBack:
		return []PartialOp{{knitinst.Xfer, knitinst.Front}}
	case XferToFront:
		return []PartialOp{{knitinst.Xfer, knitinst.Back}}
	case SplitToBack:
		return []PartialOp{{knitinst.Split, knitinst.Front}}
	case SplitToFront:
		return []PartialOp{{knitinst.Split, knitinst.Back}}
	case KnitFrontKnitBack:
		return []PartialOp{{knitinst.Knit, knitinst.Front}, {knitinst.Knit, knitinst.Back}}
	case KnitFrontTuckBack:
		return []PartialOp{{knitinst.Knit, knitinst.Front}, {knitinst.Tuck, knitinst.Back}}
	case TuckFrontKnitBack:
		return []PartialOp{{knitinst.Tuck, knitinst.Front}, {knitinst.Knit, knitinst.Back}}
	case TuckFrontTuckBack:
		return []PartialOp{{knitinst.Tuck, knitinst.Front}, {knitinst.Tuck, knitinst.Back}}
	default:
		return nil
	}
}

// AllLeftOptionLines lists the left option lines a raster row sets,
// in the same order Left_Option_Lines is declared.
var AllLeftOptionLines = []LeftOptionLine{
	DirectionSpecificationLeft, RackPitch, RackAlignment, RackDirection,
	KnitSpeed, TransferSpeed, PauseOption, AMissSplitFlag, TransferType,
}

// AllRightOptionLines lists the right option lines a raster row sets,
// in the same order Right_Option_Lines is declared.
var AllRightOptionLines = []RightOptionLine{
	DirectionSpecificationRight, YarnCarrierNumber, KnitCancelOrCarriageMove,
	StitchNumber, DropSinker, LinksProcess, CarrierGripper, PresserMode,
	ApplyStitchToTransfer, HookOperation,
}
