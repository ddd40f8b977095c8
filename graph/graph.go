// Package graph provides a directed weighted graph and a shortest-path router over it.
//
// A graph is filled with AddEdge, then frozen. Routers only accept frozen graphs, and
// any number of queries may run against one router concurrently.
package graph

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	ErrNegativeWeight   = errors.New("negative edge weight")
	ErrVertexOutOfRange = errors.New("vertex out of range")
	ErrFrozen           = errors.New("graph is frozen")
)

// VertexID indexes a vertex in [0, VertexCount).
type VertexID int

// EdgeID indexes an edge in insertion order.
type EdgeID int

// Weight is any numeric edge weight.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is a directed weighted edge.
type Edge[W Weight] struct {
	From   VertexID
	To     VertexID
	Weight W
}

// DirectedWeightedGraph is an adjacency-list graph with a fixed vertex count.
type DirectedWeightedGraph[W Weight] struct {
	edges     []Edge[W]
	incidence [][]EdgeID // vertex -> outgoing edges
	frozen    bool
}

// NewDirectedWeightedGraph creates a graph with vertexCount vertices and no edges
func NewDirectedWeightedGraph[W Weight](vertexCount int) *DirectedWeightedGraph[W] {
	return &DirectedWeightedGraph[W]{
		incidence: make([][]EdgeID, vertexCount),
	}
}

// AddEdge appends an edge and returns its id
func (g *DirectedWeightedGraph[W]) AddEdge(e Edge[W]) (EdgeID, error) {
	if g.frozen {
		return 0, ErrFrozen
	}
	if e.Weight < 0 {
		return 0, fmt.Errorf("edge %d->%d: %w", e.From, e.To, ErrNegativeWeight)
	}
	if !g.hasVertex(e.From) || !g.hasVertex(e.To) {
		return 0, fmt.Errorf("edge %d->%d with %d vertices: %w", e.From, e.To, len(g.incidence), ErrVertexOutOfRange)
	}
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)
	return id, nil
}

func (g *DirectedWeightedGraph[W]) hasVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.incidence)
}

// Freeze makes the graph read-only. It is idempotent.
func (g *DirectedWeightedGraph[W]) Freeze() { g.frozen = true }

// Frozen reports whether Freeze was called.
func (g *DirectedWeightedGraph[W]) Frozen() bool { return g.frozen }

func (g *DirectedWeightedGraph[W]) VertexCount() int { return len(g.incidence) }

func (g *DirectedWeightedGraph[W]) EdgeCount() int { return len(g.edges) }

// Edge returns the edge with the given id. It panics on an unknown id.
func (g *DirectedWeightedGraph[W]) Edge(id EdgeID) Edge[W] { return g.edges[id] }

// IncidentEdges returns the ids of the edges leaving v. The slice must not be modified.
func (g *DirectedWeightedGraph[W]) IncidentEdges(v VertexID) []EdgeID {
	if !g.hasVertex(v) {
		return nil
	}
	return g.incidence[v]
}
