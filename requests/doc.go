/*
Package requests implements the two input protocols of the catalogue.

The JSON document protocol reads one document with base requests (stops and buses),
optional routing and render settings, and stat requests:

	doc, err := requests.ReadDocument(os.Stdin)
	if err != nil {
	    log.Fatal(err)
	}
	if err := doc.Apply(cat); err != nil {
	    log.Fatal(err)
	}
	h, _ := transportcatalogue.NewHandler(cat, doc.Routing(cfg.Routing), doc.Render(cfg.Render))
	responses := doc.Process(h)

The text protocol reads a count followed by that many "Stop" and "Bus" lines, then a
count followed by that many stat lines:

	2
	Stop A: 55.611087, 37.208290, 3900m to B
	Bus 1: A - B
	1
	Bus 1

Base requests are always ingested as all stops first, then all road distances, then all
buses, whatever their order in the input. Road distances naming an unknown stop are
logged and skipped. Duplicate names are hard errors.
*/
package requests
