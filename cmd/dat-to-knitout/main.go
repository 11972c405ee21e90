// Command dat-to-knitout decompiles a Shima Seiki DAT raster file back
// into a knitout text program (spec §4.6, §6).
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/knitout2dat/knitout2dat/internal/convert"
	"github.com/knitout2dat/knitout2dat/internal/knitparse"
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		glog.Fatalln("usage: dat-to-knitout [flags] input.dat output.k")
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	buf, err := os.ReadFile(inPath)
	if err != nil {
		glog.Fatalln(err)
	}

	instructions, warnings, err := convert.Decompile(buf, convert.Options{})
	for _, w := range warnings {
		glog.Warningf("%s: %s", w.Field, w.Problem)
	}
	if err != nil {
		glog.Fatalln(err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		glog.Fatalln(err)
	}
	defer out.Close()

	if err := knitparse.Write(out, instructions); err != nil {
		glog.Fatalln(err)
	}
}
