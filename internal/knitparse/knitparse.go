// Package knitparse reads and writes the line-oriented knitout text
// format: a header comment block followed by one operation per line
// (spec §6). It covers the operations this compiler acts on; anything
// it doesn't recognize is kept as a warning rather than a hard failure,
// since a knitout file commonly carries comments and directives this
// compiler has no use for.
package knitparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/knitout2dat/knitout2dat/internal/knitinst"
)

// Program is a fully parsed knitout file: its header and its flat
// instruction stream.
type Program struct {
	Header        knitinst.MachineHeader
	PositionToken string
	Instructions  []knitinst.Instruction
}

// Parse reads a knitout text stream into a Program. Malformed or
// unrecognized lines are skipped with a logged warning rather than
// aborting the parse, matching how the rest of this pipeline defaults
// and warns instead of failing outright on header trouble (spec §7).
func Parse(r io.Reader) (Program, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var prog Program
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ";!") {
			continue
		}
		if strings.HasPrefix(line, ";;") {
			parseHeaderDirective(&prog, line[2:])
			continue
		}
		if strings.HasPrefix(line, ";") {
			continue
		}
		in, ok := parseInstruction(line)
		if !ok {
			glog.Warningf("knitparse: line %d: unrecognized instruction %q", lineNo, line)
			continue
		}
		prog.Instructions = append(prog.Instructions, in)
	}
	if err := scanner.Err(); err != nil {
		return prog, err
	}
	return prog, nil
}

func parseHeaderDirective(prog *Program, body string) {
	key, value, ok := strings.Cut(body, ":")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	switch strings.ToLower(key) {
	case "carriers":
		prog.Header.CarrierCount = len(strings.Fields(value))
	case "gauge":
		if n, err := strconv.Atoi(value); err == nil {
			prog.Header.Gauge = n
		}
	case "width":
		if n, err := strconv.Atoi(value); err == nil {
			prog.Header.BedWidth = n
		}
	case "position":
		prog.PositionToken = value
	}
}

func parseInstruction(line string) (knitinst.Instruction, bool) {
	if idx := strings.Index(line, ";"); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return knitinst.Instruction{}, false
	}
	op := strings.ToLower(fields[0])
	args := fields[1:]

	switch op {
	case "in", "inhook":
		c, ok := soleCarrier(args)
		if !ok {
			return knitinst.Instruction{}, false
		}
		return knitinst.NewInhook(c), true
	case "releasehook":
		c, ok := soleCarrier(args)
		if !ok {
			return knitinst.Instruction{}, false
		}
		return knitinst.NewReleasehook(c), true
	case "out", "outhook":
		c, ok := soleCarrier(args)
		if !ok {
			return knitinst.Instruction{}, false
		}
		return knitinst.NewOuthook(c), true
	case "pause":
		return knitinst.NewPause(), true
	case "rack":
		if len(args) == 0 {
			return knitinst.Instruction{}, false
		}
		r, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return knitinst.Instruction{}, false
		}
		allNeedle := r != float64(int(r))
		return knitinst.NewRack(knitinst.RackState{Rack: int(r), AllNeedle: allNeedle}), true
	case "tuck", "knit", "miss":
		if len(args) < 2 {
			return knitinst.Instruction{}, false
		}
		dir, ok := parseDirection(args[0])
		if !ok {
			return knitinst.Instruction{}, false
		}
		needle, ok := parseNeedle(args[1])
		if !ok {
			return knitinst.Instruction{}, false
		}
		cs := parseCarriers(args[2:])
		switch op {
		case "tuck":
			return knitinst.NewTuck(needle, dir, cs), true
		case "knit":
			return knitinst.NewKnit(needle, dir, cs), true
		default:
			return knitinst.NewMiss(needle, dir, cs), true
		}
	case "split":
		if len(args) < 3 {
			return knitinst.Instruction{}, false
		}
		dir, ok := parseDirection(args[0])
		if !ok {
			return knitinst.Instruction{}, false
		}
		needle, ok := parseNeedle(args[1])
		if !ok {
			return knitinst.Instruction{}, false
		}
		target, ok := parseNeedle(args[2])
		if !ok {
			return knitinst.Instruction{}, false
		}
		cs := parseCarriers(args[3:])
		return knitinst.NewSplit(needle, target, dir, cs), true
	case "xfer":
		if len(args) < 2 {
			return knitinst.Instruction{}, false
		}
		needle, ok := parseNeedle(args[0])
		if !ok {
			return knitinst.Instruction{}, false
		}
		target, ok := parseNeedle(args[1])
		if !ok {
			return knitinst.Instruction{}, false
		}
		return knitinst.NewXfer(needle, target), true
	default:
		return knitinst.Instruction{}, false
	}
}

func soleCarrier(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseDirection(tok string) (knitinst.Direction, bool) {
	switch tok {
	case "+":
		return knitinst.Rightward, true
	case "-":
		return knitinst.Leftward, true
	default:
		return knitinst.NoDirection, false
	}
}

func parseNeedle(tok string) (knitinst.Needle, bool) {
	if len(tok) < 2 {
		return knitinst.Needle{}, false
	}
	var bed knitinst.Bed
	switch tok[0] {
	case 'f', 'F':
		bed = knitinst.Front
	case 'b', 'B':
		bed = knitinst.Back
	default:
		return knitinst.Needle{}, false
	}
	pos, err := strconv.Atoi(tok[1:])
	if err != nil {
		return knitinst.Needle{}, false
	}
	return knitinst.Needle{Bed: bed, Position: pos}, true
}

func parseCarriers(toks []string) knitinst.CarrierSet {
	var cs knitinst.CarrierSet
	for _, tok := range toks {
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		cs = append(cs, n)
	}
	return cs
}

// Write renders a flat instruction stream back to knitout text, one
// operation per line, in the same surface syntax Parse reads.
func Write(w io.Writer, instructions []knitinst.Instruction) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, ";!knitout-2"); err != nil {
		return err
	}
	for _, in := range instructions {
		if _, err := fmt.Fprintln(bw, formatInstruction(in)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func formatInstruction(in knitinst.Instruction) string {
	switch in.Kind {
	case knitinst.Inhook:
		return fmt.Sprintf("inhook %d", in.CarrierID())
	case knitinst.Releasehook:
		return fmt.Sprintf("releasehook %d", in.CarrierID())
	case knitinst.Outhook:
		return fmt.Sprintf("outhook %d", in.CarrierID())
	case knitinst.Pause:
		return "pause"
	case knitinst.RackChange:
		if in.Rack.AllNeedle {
			return fmt.Sprintf("rack %.1f", float64(in.Rack.Rack)+0.25)
		}
		return fmt.Sprintf("rack %d", in.Rack.Rack)
	case knitinst.Xfer:
		return fmt.Sprintf("xfer %s %s", formatNeedle(in.Needle), formatNeedle(in.Target))
	case knitinst.Split:
		return fmt.Sprintf("split %s %s %s%s", formatDirection(in.Direction), formatNeedle(in.Needle), formatNeedle(in.Target), formatCarriers(in.Carriers))
	default:
		return fmt.Sprintf("%s %s %s%s", in.Kind, formatDirection(in.Direction), formatNeedle(in.Needle), formatCarriers(in.Carriers))
	}
}

func formatDirection(d knitinst.Direction) string {
	if d == knitinst.Leftward {
		return "-"
	}
	return "+"
}

func formatNeedle(n knitinst.Needle) string {
	if n.Bed == knitinst.Front {
		return fmt.Sprintf("f%d", n.Position)
	}
	return fmt.Sprintf("b%d", n.Position)
}

func formatCarriers(cs knitinst.CarrierSet) string {
	var b strings.Builder
	for _, c := range cs {
		fmt.Fprintf(&b, " %d", c)
	}
	return b.String()
}
