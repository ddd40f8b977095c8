/*
Package gtfs imports GTFS static feeds into a transport catalogue.

Loading is split in two steps. The zip is parsed into an in-memory GTFSIndex, and
the index then populates a catalogue:

	index, err := gtfs.LoadFile("sofia.zip")
	if err != nil {
	    log.Fatal(err)
	}
	summary, err := index.Populate(cat)

Only stops.txt, routes.txt, trips.txt and stop_times.txt are read. Every route
becomes one bus named after its short name, built from its trip with the most stops.
A trip that starts and ends at the same stop is a roundtrip, any other trip is a
linear route. GTFS stops sharing a name, such as the platforms of one station, are
merged into the first of them. Hops with no declared road distance get the
great-circle distance rounded to whole meters.
*/
package gtfs
