package graph

import (
	"fmt"
	"math/rand"
	"testing"

	"skillnet/viz/sphere"
)

func layout(t *testing.T, n int) []sphere.Node {
	t.Helper()
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("n%d", i)
	}
	nodes, err := sphere.Layout(labels, 0.56)
	if err != nil {
		t.Fatalf("Layout(%d): %v", n, err)
	}
	return nodes
}

func checkGraph(t *testing.T, g *Graph, n int) {
	t.Helper()
	if g.Len() != n {
		t.Fatalf("graph covers %d nodes, want %d", g.Len(), n)
	}
	seen := map[Edge]bool{}
	for _, e := range g.Edges {
		if e.A == e.B {
			t.Fatalf("self loop %+v", e)
		}
		if e.A > e.B {
			t.Fatalf("edge not normalized: %+v", e)
		}
		if seen[e] {
			t.Fatalf("duplicate edge %+v", e)
		}
		seen[e] = true
	}
	activeCount := g.ActiveCount()
	for i := 0; i < n; i++ {
		if g.Degree(i) < 1 {
			t.Fatalf("node %d isolated (n=%d)", i, n)
		}
		if g.Active(i) && g.HubDegree(i) > 5 {
			t.Fatalf("active node %d hub degree %d > 5", i, g.HubDegree(i))
		}
		if !g.Active(i) {
			if g.HubDegree(i) != 0 {
				t.Fatalf("inactive node %d has hub links", i)
			}
			if activeCount >= 2 && g.Degree(i) > 2 {
				t.Fatalf("inactive node %d degree %d > 2", i, g.Degree(i))
			}
		}
		if len(g.Incident(i)) != g.Degree(i) {
			t.Fatalf("node %d incidence %d != degree %d", i, len(g.Incident(i)), g.Degree(i))
		}
	}
}

func TestBuildPropertiesRandomized(t *testing.T) {
	for n := 2; n <= 40; n++ {
		nodes := layout(t, n)
		for seed := int64(0); seed < 25; seed++ {
			g := Build(nodes, rand.New(rand.NewSource(seed)))
			checkGraph(t, g, n)
		}
	}
}

func TestBuildActiveCount(t *testing.T) {
	cases := map[int]int{2: 2, 3: 3, 4: 3, 5: 4, 10: 7, 29: 21}
	for n, want := range cases {
		if got := ActiveCount(n); got != want {
			t.Fatalf("ActiveCount(%d) = %d, want %d", n, got, want)
		}
		g := Build(layout(t, n), rand.New(rand.NewSource(1)))
		if got := g.ActiveCount(); got != want {
			t.Fatalf("Build(%d) active = %d, want %d", n, got, want)
		}
	}
}

func TestBuildHubsReachMinimumDegree(t *testing.T) {
	nodes := layout(t, 29)
	for seed := int64(0); seed < 50; seed++ {
		g := Build(nodes, rand.New(rand.NewSource(seed)))
		low := 0
		for i := 0; i < g.Len(); i++ {
			if g.Active(i) && g.HubDegree(i) < 4 {
				low++
			}
		}
		// The greedy pass can strand a hub whose neighbors are all capped;
		// most hubs still land in [4,5].
		if low > g.ActiveCount()/2 {
			t.Fatalf("seed %d: %d of %d hubs below degree 4", seed, low, g.ActiveCount())
		}
	}
}

func TestBuildSameSeedSameTopology(t *testing.T) {
	nodes := layout(t, 29)
	a := Build(nodes, rand.New(rand.NewSource(7)))
	b := Build(nodes, rand.New(rand.NewSource(7)))
	if len(a.Edges) != len(b.Edges) {
		t.Fatalf("edge counts differ: %d vs %d", len(a.Edges), len(b.Edges))
	}
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			t.Fatalf("edge %d differs: %+v vs %+v", i, a.Edges[i], b.Edges[i])
		}
	}
}

type identity struct{}

func (identity) Shuffle(int, func(i, j int)) {}

func TestBuildGreedyPicksShortestPairs(t *testing.T) {
	nodes := []sphere.Node{
		{Label: "a", X: 0},
		{Label: "b", X: 1},
		{Label: "c", X: 3},
	}
	g := Build(nodes, identity{})
	if len(g.Edges) != 3 {
		t.Fatalf("got %d edges, want 3", len(g.Edges))
	}
	want := []Edge{{0, 1}, {1, 2}, {0, 2}}
	for i, e := range want {
		if g.Edges[i] != e {
			t.Fatalf("edge %d = %+v, want %+v", i, g.Edges[i], e)
		}
	}
}

func TestBuildDegreeCapHolds(t *testing.T) {
	// Ten hubs on a line: the cap must stop the closest pairs from
	// saturating the middle nodes.
	nodes := make([]sphere.Node, 10)
	for i := range nodes {
		nodes[i] = sphere.Node{Label: fmt.Sprint(i), X: float64(i)}
	}
	g := Build(nodes, identity{}, WithActiveFraction(1), WithDegreeCap(2), WithMinDegree(2))
	for i := range nodes {
		if g.Degree(i) > 2 {
			t.Fatalf("node %d degree %d > cap 2", i, g.Degree(i))
		}
	}
}

func TestBuildAttachesInactiveToNearestHubs(t *testing.T) {
	nodes := []sphere.Node{
		{Label: "h0", X: 0},
		{Label: "h1", X: 10},
		{Label: "h2", X: 20},
		{Label: "leaf", X: 11},
	}
	// Identity order with 3 active nodes leaves node 3 inactive.
	g := Build(nodes, identity{})
	if g.Active(3) {
		t.Fatal("expected node 3 inactive")
	}
	if !g.Has(3, 1) || !g.Has(3, 2) {
		t.Fatalf("leaf should link to h1 and h2, got neighbors %v", g.Neighbors(3))
	}
	if g.Has(3, 0) {
		t.Fatal("leaf should not link to the farthest hub")
	}
}

func TestBuildDegradesWithFewHubs(t *testing.T) {
	nodes := layout(t, 6)

	g := Build(nodes, identity{}, WithActiveFraction(0), WithMinActive(1))
	if g.ActiveCount() != 1 {
		t.Fatalf("active = %d, want 1", g.ActiveCount())
	}
	for i := 1; i < 6; i++ {
		if g.Degree(i) != 1 {
			t.Fatalf("node %d degree %d, want 1", i, g.Degree(i))
		}
	}

	g = Build(nodes, identity{}, WithActiveFraction(0), WithMinActive(0))
	if len(g.Edges) != 0 {
		t.Fatalf("expected no edges without hubs, got %d", len(g.Edges))
	}
}

func TestBuildNilRand(t *testing.T) {
	g := Build(layout(t, 12), nil)
	checkGraph(t, g, 12)
}

func TestSummarize(t *testing.T) {
	nodes := layout(t, 29)
	for seed := int64(0); seed < 10; seed++ {
		g := Build(nodes, rand.New(rand.NewSource(seed)))
		s := Summarize(g)
		if s.Nodes != 29 || s.Active != 21 {
			t.Fatalf("seed %d: summary %+v", seed, s)
		}
		if s.Isolated != 0 || s.MinDegree < 1 {
			t.Fatalf("seed %d: isolated nodes in %+v", seed, s)
		}
		if s.MaxHubDegree > 5 {
			t.Fatalf("seed %d: hub degree %d", seed, s.MaxHubDegree)
		}
		if s.Components < 1 || s.Edges != len(g.Edges) {
			t.Fatalf("seed %d: summary %+v", seed, s)
		}
	}
}

func TestDegreeSplitsIntoHubAndAttachment(t *testing.T) {
	for n := 2; n <= 60; n += 3 {
		nodes := layout(t, n)
		for seed := int64(0); seed < 8; seed++ {
			g := Build(nodes, rand.New(rand.NewSource(seed)))
			hub := make([]int, n)
			attach := make([]int, n)
			for _, e := range g.Edges {
				if g.Active(e.A) && g.Active(e.B) {
					hub[e.A]++
					hub[e.B]++
					continue
				}
				attach[e.A]++
				attach[e.B]++
			}
			for i := 0; i < n; i++ {
				if g.HubDegree(i) != hub[i] || g.HubDegree(i) > 5 {
					t.Fatalf("n=%d seed=%d node %d: hub degree %d, counted %d", n, seed, i, g.HubDegree(i), hub[i])
				}
				if g.Degree(i) != hub[i]+attach[i] {
					t.Fatalf("n=%d seed=%d node %d: degree %d != %d hub + %d attached",
						n, seed, i, g.Degree(i), hub[i], attach[i])
				}
			}
		}
	}
}

func TestBuildTypedNilRand(t *testing.T) {
	var rng *rand.Rand
	g := Build(layout(t, 12), rng)
	checkGraph(t, g, 12)
}
