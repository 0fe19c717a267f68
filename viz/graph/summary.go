package graph

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Summary describes the shape of a built graph.
type Summary struct {
	Nodes        int
	Edges        int
	Active       int
	MinDegree    int
	MaxDegree    int
	MaxHubDegree int
	Isolated     int
	Components   int
}

// Summarize computes degree statistics and the number of connected components.
func Summarize(g *Graph) Summary {
	s := Summary{
		Nodes:  g.Len(),
		Edges:  len(g.Edges),
		Active: g.ActiveCount(),
	}
	if s.Nodes == 0 {
		return s
	}

	s.MinDegree = g.Degree(0)
	ug := simple.NewUndirectedGraph()
	for i := 0; i < s.Nodes; i++ {
		ug.AddNode(simple.Node(i))
		d := g.Degree(i)
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
		if g.Active(i) && g.HubDegree(i) > s.MaxHubDegree {
			s.MaxHubDegree = g.HubDegree(i)
		}
	}
	for _, e := range g.Edges {
		ug.SetEdge(simple.Edge{F: simple.Node(e.A), T: simple.Node(e.B)})
	}
	s.Components = len(topo.ConnectedComponents(ug))
	return s
}
