// Package graph connects sphere nodes into a sparse, degree-bounded network.
//
// Construction is greedy and order-sensitive:
//
//	shuffle → active set → shortest active pairs under the degree cap →
//	top up weak hubs → attach inactive nodes to their nearest hubs.
//
// The only randomness is the initial shuffle, which is supplied by the caller
// so tests can pin it with a seeded source.
package graph

import (
	"math"
	"math/rand"
	"sort"

	"skillnet/viz/sphere"
)

// Shuffler permutes n elements via swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Edge is an undirected link between two node indices, stored with A < B.
type Edge struct {
	A, B int
}

// Other returns the endpoint of e that is not i.
func (e Edge) Other(i int) int {
	if e.A == i {
		return e.B
	}
	return e.A
}

func normalize(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Graph is the immutable result of Build.
//
// The degree cap bounds HubDegree, the links between active nodes. Links
// from inactive nodes to their nearest hubs are not capped, so Degree of an
// active node can exceed the cap.
type Graph struct {
	// Edges is in insertion order; the index of an edge is stable.
	Edges []Edge

	active   []bool
	order    []int
	degree   []int
	hub      []int
	incident [][]int
	keys     map[Edge]struct{}
}

// Len returns the number of nodes covered by the graph.
func (g *Graph) Len() int { return len(g.degree) }

// Active reports whether node i was selected as a hub.
func (g *Graph) Active(i int) bool { return g.active[i] }

// ActiveCount returns the size of the active set.
func (g *Graph) ActiveCount() int {
	n := 0
	for _, a := range g.active {
		if a {
			n++
		}
	}
	return n
}

// Order returns the shuffled node order used during construction.
func (g *Graph) Order() []int { return append([]int(nil), g.order...) }

// Degree returns the number of edges incident to node i, attachment links
// included. See HubDegree for the capped count.
func (g *Graph) Degree(i int) int { return g.degree[i] }

// HubDegree returns the number of edges joining node i to active nodes,
// counting only links made between hubs (not attachment links).
func (g *Graph) HubDegree(i int) int { return g.hub[i] }

// Incident returns the indices into Edges of the edges touching node i.
func (g *Graph) Incident(i int) []int { return g.incident[i] }

// Has reports whether a and b are linked.
func (g *Graph) Has(a, b int) bool {
	_, ok := g.keys[normalize(a, b)]
	return ok
}

// Neighbors returns the nodes linked to i, in edge order.
func (g *Graph) Neighbors(i int) []int {
	out := make([]int, 0, len(g.incident[i]))
	for _, ei := range g.incident[i] {
		out = append(out, g.Edges[ei].Other(i))
	}
	return out
}

func (g *Graph) add(a, b int, hub bool) bool {
	if a == b {
		return false
	}
	e := normalize(a, b)
	if _, ok := g.keys[e]; ok {
		return false
	}
	g.keys[e] = struct{}{}
	idx := len(g.Edges)
	g.Edges = append(g.Edges, e)
	g.degree[a]++
	g.degree[b]++
	if hub {
		g.hub[a]++
		g.hub[b]++
	}
	g.incident[a] = append(g.incident[a], idx)
	g.incident[b] = append(g.incident[b], idx)
	return true
}

type params struct {
	degreeCap int
	minDegree int
	fraction  float64
	minActive int
	attach    int
}

func defaultParams() params {
	return params{
		degreeCap: 5,
		minDegree: 4,
		fraction:  0.7,
		minActive: 3,
		attach:    2,
	}
}

// Option adjusts Build.
type Option func(*params)

// WithDegreeCap sets the hub degree cap (default 5).
func WithDegreeCap(n int) Option { return func(p *params) { p.degreeCap = n } }

// WithMinDegree sets the hub degree the top-up pass aims for (default 4).
func WithMinDegree(n int) Option { return func(p *params) { p.minDegree = n } }

// WithActiveFraction sets the share of nodes selected as hubs (default 0.7).
func WithActiveFraction(f float64) Option { return func(p *params) { p.fraction = f } }

// WithMinActive sets the lower bound on the active set size (default 3).
func WithMinActive(n int) Option { return func(p *params) { p.minActive = n } }

// WithAttachLinks sets how many hubs each inactive node links to (default 2).
func WithAttachLinks(n int) Option { return func(p *params) { p.attach = n } }

type pair struct {
	i, j int
	d    float64
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// ActiveCount returns how many of n nodes Build selects as hubs by default.
func ActiveCount(n int) int {
	p := defaultParams()
	return p.activeCount(n)
}

func (p params) activeCount(n int) int {
	c := int(math.Ceil(float64(n) * p.fraction))
	if c < p.minActive {
		c = p.minActive
	}
	if c > n {
		c = n
	}
	if c < 0 {
		c = 0
	}
	return c
}

// Build links nodes into a graph. A nil rng uses the math/rand global source.
//
// Build never fails; small or degenerate inputs get as many edges as the
// active set allows.
func Build(nodes []sphere.Node, rng Shuffler, opts ...Option) *Graph {
	p := defaultParams()
	for _, o := range opts {
		o(&p)
	}
	if r, ok := rng.(*rand.Rand); rng == nil || (ok && r == nil) {
		rng = globalShuffler{}
	}

	n := len(nodes)
	g := &Graph{
		active:   make([]bool, n),
		degree:   make([]int, n),
		hub:      make([]int, n),
		incident: make([][]int, n),
		keys:     make(map[Edge]struct{}),
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	g.order = order

	active := append([]int(nil), order[:p.activeCount(n)]...)
	for _, idx := range active {
		g.active[idx] = true
	}

	// Shortest pairs first, each endpoint below the cap.
	pairs := make([]pair, 0, len(active)*(len(active)-1)/2+1)
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i], active[j]
			pairs = append(pairs, pair{i: a, j: b, d: sphere.Dist(nodes[a], nodes[b])})
		}
	}
	sort.SliceStable(pairs, func(x, y int) bool { return pairs[x].d < pairs[y].d })

	for _, pr := range pairs {
		if g.degree[pr.i] < p.degreeCap && g.degree[pr.j] < p.degreeCap {
			g.add(pr.i, pr.j, true)
		}
	}

	// Top up hubs that ended below the minimum degree.
	candidates := make(map[int][]pair, len(active))
	for _, pr := range pairs {
		candidates[pr.i] = append(candidates[pr.i], pr)
		candidates[pr.j] = append(candidates[pr.j], pr)
	}
	for _, idx := range active {
		if g.degree[idx] >= p.minDegree {
			continue
		}
		for _, pr := range candidates[idx] {
			if g.degree[idx] >= p.minDegree {
				break
			}
			other := pr.i
			if other == idx {
				other = pr.j
			}
			if g.degree[other] >= p.degreeCap {
				continue
			}
			g.add(idx, other, true)
		}
	}

	// Attach every remaining node to its nearest hubs.
	near := make([]pair, 0, len(active))
	for _, idx := range order {
		if g.active[idx] {
			continue
		}
		near = near[:0]
		for _, j := range active {
			near = append(near, pair{i: idx, j: j, d: sphere.Dist(nodes[idx], nodes[j])})
		}
		sort.SliceStable(near, func(x, y int) bool { return near[x].d < near[y].d })
		for k := 0; k < p.attach && k < len(near); k++ {
			g.add(idx, near[k].j, false)
		}
	}

	return g
}
