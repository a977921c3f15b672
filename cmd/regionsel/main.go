// Package main prints the shell's ordered monitor list and clamps selections.
package main

import (
	"flag"
	"os"
)

// main is the entrypoint for the regionsel CLI.
func main() {
	var opts options
	flag.BoolVar(&opts.debug, "debug", false, "Enable verbose debug logging")
	flag.StringVar(&opts.format, "format", "", "Output format: json or yaml (default from OUTPUT_FORMAT)")
	flag.StringVar(&opts.region, "region", "", "Region to clamp as x,y,width,height")
	flag.StringVar(&opts.monitor, "monitor", "", "Monitor to clamp against (default: first in order)")
	flag.Parse()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		logFatal(err)
	}
}
