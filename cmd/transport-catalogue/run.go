package main

import (
	"fmt"
	"io"
	"log"
	"os"

	transportcatalogue "github.com/theoremus-urban-solutions/transport-catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/gtfs"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal"
	"github.com/theoremus-urban-solutions/transport-catalogue/requests"
)

type options struct {
	configPath string
	format     string
	input      string
	gtfs       string
	mapPath    string
	indent     bool
	verbose    bool
}

// run loads the network, answers every stat request and writes the responses to out
func run(opts options, stdin io.Reader, out io.Writer) error {
	var paths []string
	if opts.configPath != "" {
		paths = append(paths, opts.configPath)
	}
	if err := config.LoadAppConfig(paths...); err != nil {
		return err
	}
	cfg := config.Config
	if cfg.Logging.Verbose && !opts.verbose {
		internal.InitLogging(os.Stderr, true)
	}

	format := cfg.Output.Format
	if opts.format != "" {
		format = opts.format
	}

	cat := catalogue.New()
	if opts.gtfs != "" {
		if err := preload(cat, opts.gtfs); err != nil {
			return err
		}
	}

	in, closeInput, err := openInput(opts.input, stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	var h *transportcatalogue.Handler
	switch format {
	case "json":
		doc, err := requests.ReadDocument(in)
		if err != nil {
			return err
		}
		if err := doc.Apply(cat); err != nil {
			return err
		}
		if h, err = transportcatalogue.NewHandler(cat, doc.Routing(cfg.Routing), doc.Render(cfg.Render)); err != nil {
			return err
		}
		if err := formatter.WriteJSON(out, doc.Process(h), opts.indent || cfg.Output.Indent); err != nil {
			return err
		}
	case "text":
		batch, err := requests.ReadText(in)
		if err != nil {
			return err
		}
		if err := batch.Apply(cat); err != nil {
			return err
		}
		if h, err = transportcatalogue.NewHandler(cat, cfg.Routing, cfg.Render); err != nil {
			return err
		}
		if err := requests.WriteTextStats(out, h, batch.Queries); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if opts.mapPath != "" {
		if err := os.WriteFile(opts.mapPath, []byte(h.RenderMap()), 0644); err != nil {
			return fmt.Errorf("write map: %w", err)
		}
	}
	return nil
}

// preload imports a GTFS feed given by config feed name or by path
func preload(cat *catalogue.TransportCatalogue, feed string) error {
	path := feed
	if src, ok := config.SelectFeed(feed); ok {
		path = src.Path
	}
	index, err := gtfs.LoadFile(path)
	if err != nil {
		return err
	}
	summary, err := index.Populate(cat)
	if err != nil {
		return err
	}
	log.Printf("gtfs %s: %d stops, %d buses, %d distances, %d skipped",
		path, summary.Stops, summary.Buses, summary.Distances, summary.Skipped)
	return nil
}

// openInput opens path, or falls back to stdin for "" and "-"
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
