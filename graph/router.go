package graph

import (
	"container/heap"
	"errors"
)

// RouteInfo is a shortest path: its total weight and the edges walked, in order.
type RouteInfo[W Weight] struct {
	Weight W
	Edges  []EdgeID
}

// Router answers point-to-point shortest-path queries with Dijkstra's algorithm.
//
// Each query keeps its own scratch state and only reads the graph, so BuildRoute is
// safe for concurrent use.
type Router[W Weight] struct {
	graph *DirectedWeightedGraph[W]
}

// NewRouter freezes g and returns a router over it
func NewRouter[W Weight](g *DirectedWeightedGraph[W]) (*Router[W], error) {
	if g == nil {
		return nil, errors.New("graph: nil graph")
	}
	g.Freeze()
	return &Router[W]{graph: g}, nil
}

// Graph returns the frozen graph the router runs on.
func (r *Router[W]) Graph() *DirectedWeightedGraph[W] { return r.graph }

// BuildRoute returns the cheapest path from one vertex to another. The second result
// is false when to is unreachable or either vertex is out of range. A route from a
// vertex to itself is empty with zero weight.
func (r *Router[W]) BuildRoute(from, to VertexID) (RouteInfo[W], bool) {
	g := r.graph
	if !g.hasVertex(from) || !g.hasVertex(to) {
		return RouteInfo[W]{}, false
	}
	if from == to {
		return RouteInfo[W]{Edges: []EdgeID{}}, true
	}

	n := g.VertexCount()
	dist := make([]W, n)
	reached := make([]bool, n)
	done := make([]bool, n)
	prevEdge := make([]EdgeID, n)

	reached[from] = true
	pq := &priorityQueue[W]{}
	heap.Push(pq, &pqItem[W]{vertex: from, priority: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem[W])
		current := item.vertex
		if done[current] {
			continue
		}
		done[current] = true
		if current == to {
			break
		}
		for _, id := range g.incidence[current] {
			e := g.edges[id]
			tentative := dist[current] + e.Weight
			if !reached[e.To] || tentative < dist[e.To] {
				reached[e.To] = true
				dist[e.To] = tentative
				prevEdge[e.To] = id
				heap.Push(pq, &pqItem[W]{vertex: e.To, priority: tentative})
			}
		}
	}

	if !reached[to] {
		return RouteInfo[W]{}, false
	}
	return RouteInfo[W]{Weight: dist[to], Edges: reconstructPath(g, prevEdge, from, to)}, true
}

func reconstructPath[W Weight](g *DirectedWeightedGraph[W], prevEdge []EdgeID, from, to VertexID) []EdgeID {
	var path []EdgeID
	for v := to; v != from; {
		id := prevEdge[v]
		path = append(path, id)
		v = g.edges[id].From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type pqItem[W Weight] struct {
	vertex   VertexID
	priority W
}

type priorityQueue[W Weight] []*pqItem[W]

func (pq priorityQueue[W]) Len() int           { return len(pq) }
func (pq priorityQueue[W]) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue[W]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue[W]) Push(x any) {
	*pq = append(*pq, x.(*pqItem[W]))
}

func (pq *priorityQueue[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
