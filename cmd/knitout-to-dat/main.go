// Command knitout-to-dat compiles a knitout text program into a
// Shima Seiki DAT raster file (spec §6).
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/knitout2dat/knitout2dat/internal/convert"
	"github.com/knitout2dat/knitout2dat/internal/knitparse"
	"github.com/knitout2dat/knitout2dat/internal/raster"
)

func main() {
	stitch := flag.Int("stitch", 0, "stitch number to render for every pass (0 uses the machine default)")
	speed := flag.Int("speed", 0, "carriage speed number to render for every pass (0 uses the machine default)")
	presser := flag.String("presser", "auto", "presser mode: auto, on, or off")
	ruler := flag.Bool("ruler", false, "prepend a width-ruler row marking every tenth needle")
	flag.Parse()

	if flag.NArg() != 2 {
		glog.Fatalln("usage: knitout-to-dat [flags] input.k output.dat")
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	in, err := os.Open(inPath)
	if err != nil {
		glog.Fatalln(err)
	}
	defer in.Close()

	prog, err := knitparse.Parse(in)
	if err != nil {
		glog.Fatalln(err)
	}

	pressing, ok := parsePresser(*presser)
	if !ok {
		glog.Fatalln("invalid -presser value: ", *presser)
	}

	opts := convert.Options{
		Header:        prog.Header,
		PositionToken: prog.PositionToken,
		StitchNumber:  *stitch,
		SpeedNumber:   *speed,
		Presser:       pressing,
		IncludeRuler:  *ruler,
	}

	buf, warnings, err := convert.Compile(prog.Instructions, opts)
	for _, w := range warnings {
		glog.Warningf("%s: %s", w.Field, w.Problem)
	}
	if err != nil {
		glog.Fatalln(err)
	}

	if err := os.WriteFile(outPath, buf, 0644); err != nil {
		glog.Fatalln(err)
	}
}

func parsePresser(tok string) (raster.PresserSetting, bool) {
	switch tok {
	case "auto":
		return raster.PresserAuto, true
	case "on":
		return raster.PresserForceOn, true
	case "off":
		return raster.PresserForceOff, true
	default:
		return raster.PresserAuto, false
	}
}
