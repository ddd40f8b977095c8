package main

import (
	"flag"
	"log"
	"os"

	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
)

func main() {
	configPath := flag.String("config", "", "config file (default config.yml or ./config/config.yml when present)")
	format := flag.String("format", "", "json|text (overrides config output.format)")
	input := flag.String("input", "", "request file (default stdin)")
	gtfsFeed := flag.String("gtfs", "", "GTFS zip path or feed name from config.feeds[], loaded before the requests")
	mapPath := flag.String("map", "", "also write the rendered SVG map to this file")
	indent := flag.Bool("indent", false, "indent JSON output")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	internal.InitLogging(os.Stderr, *verbose)

	opts := options{
		configPath: *configPath,
		format:     *format,
		input:      *input,
		gtfs:       *gtfsFeed,
		mapPath:    *mapPath,
		indent:     *indent,
		verbose:    *verbose,
	}
	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
