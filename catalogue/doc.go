/*
Package catalogue is the in-memory entity store of the transit network.

It owns stops, buses and the directed road distances between stops, and answers
name-keyed lookups and per-bus statistics.

# Ingestion order

The catalogue is filled once, in three phases:

	cat := catalogue.New()
	cat.AddStop("A", geo.Coordinates{Lat: 0, Lng: 0})
	cat.AddStop("B", geo.Coordinates{Lat: 0, Lng: 1})
	cat.AddDistance("A", "B", 1000)
	cat.AddBus("1", []string{"A", "B"}, false)

Buses resolve stop names against the stops registered so far. Names that are not
registered are dropped from the bus without error.

# Distances

Distances are directed. A lookup for (to, from) falls back to the declared (from, to)
value when no explicit reverse entry exists.

# Thread safety

The catalogue is not synchronized. Once ingestion is finished it is only read, and
concurrent readers are safe.
*/
package catalogue
