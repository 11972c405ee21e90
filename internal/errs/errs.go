// Package errs defines the typed error kinds raised by the compiler
// pipeline (see spec §7) and wraps them with a stack trace so the
// driver can report the originating instruction or pass.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the closed error categories the pipeline can raise.
type Kind int

const (
	// ParseShape marks a malformed or out-of-range knitout header field or
	// position setting. Defaulted header fields are reported as
	// knitinst.Warning values rather than as this error; it is returned as
	// an error when Keep positioning finds needles outside the bed.
	ParseShape Kind = iota
	// PatternTooWide marks a kickback whose target position falls
	// outside the needle bed.
	PatternTooWide
	// InvalidAllNeedle marks two non-combinable operations on one slot.
	InvalidAllNeedle
	// RackExceedsMachine marks |rack| > machine.max_rack.
	RackExceedsMachine
	// BadDatMagic marks a DAT header whose magic numbers don't read 1000.
	BadDatMagic
	// UndecodableCarrierInteger marks a pixel value with no carrier decoding.
	UndecodableCarrierInteger
	// IO wraps a failed file operation.
	IO
)

func (k Kind) String() string {
	switch k {
	case ParseShape:
		return "ParseShape"
	case PatternTooWide:
		return "PatternTooWide"
	case InvalidAllNeedle:
		return "InvalidAllNeedle"
	case RackExceedsMachine:
		return "RackExceedsMachine"
	case BadDatMagic:
		return "BadDatMagic"
	case UndecodableCarrierInteger:
		return "UndecodableCarrierInteger"
	case IO:
		return "IO"
	default:
		return "Unknown"
	}
}

// Error is a typed pipeline error carrying the kind and, where known,
// the originating instruction or pass as free text context.
type Error struct {
	Kind    Kind
	Context string
	cause   error
}

func (e *Error) Error() string {
	if e.Context == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Context)
}

func (e *Error) Unwrap() error { return e.cause }

// New creates a Kind error with the given context, wrapped with a stack trace.
func New(kind Kind, context string) error {
	return errors.WithStack(&Error{Kind: kind, Context: context})
}

// Wrap wraps an existing error as the given Kind, preserving its stack.
func Wrap(kind Kind, context string, cause error) error {
	if cause == nil {
		return New(kind, context)
	}
	return errors.WithStack(&Error{Kind: kind, Context: context, cause: cause})
}

// Is reports whether err (or something it wraps) is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if as, ok := err.(*Error); ok {
			e = as
			break
		}
		err = errors.Unwrap(err)
	}
	return e != nil && e.Kind == kind
}
