// Package scene bundles the immutable geometry of one visualization.
package scene

import (
	"fmt"
	"math/rand"

	"skillnet/viz/graph"
	"skillnet/viz/project"
	"skillnet/viz/sphere"
)

// DefaultRadius is the sphere radius the projection constants are tuned for.
const DefaultRadius = 0.56

// Rand is the randomness a scene consumes: one shuffle for the active set
// and one draw per node for the z-jitter. *rand.Rand satisfies it.
type Rand interface {
	graph.Shuffler
	project.Float64er
}

// Scene is built once per label set and never mutated afterwards, so it can
// be shared by reference between loops.
type Scene struct {
	Nodes     []sphere.Node
	Graph     *graph.Graph
	Projector *project.Projector
}

// Options tune scene construction. The zero value uses the defaults.
type Options struct {
	Radius  float64
	Params  *project.Params
	GraphOp []graph.Option
}

// New lays out labels, connects them and draws the projection jitter.
// A nil rng, typed or untyped, uses the math/rand global source.
func New(labels []string, rng Rand, opts Options) (*Scene, error) {
	radius := opts.Radius
	if radius == 0 {
		radius = DefaultRadius
	}
	nodes, err := sphere.Layout(labels, radius)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	params := project.DefaultParams()
	if opts.Params != nil {
		params = *opts.Params
	}

	// Shuffle before jitter so a seed reproduces both.
	if r, ok := rng.(*rand.Rand); ok && r == nil {
		rng = nil
	}
	var sh graph.Shuffler
	var fl project.Float64er
	if rng != nil {
		sh, fl = rng, rng
	}
	g := graph.Build(nodes, sh, opts.GraphOp...)
	pr := project.New(len(nodes), fl, params)

	return &Scene{Nodes: nodes, Graph: g, Projector: pr}, nil
}

// Len returns the number of nodes.
func (s *Scene) Len() int { return len(s.Nodes) }

// Labels returns the node labels in index order.
func (s *Scene) Labels() []string {
	out := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		out[i] = n.Label
	}
	return out
}

// Project projects the scene at time t onto a w×h surface, reusing dst.
func (s *Scene) Project(t float64, w, h int, dst []project.Position) []project.Position {
	return s.Projector.Project(s.Nodes, t, w, h, dst)
}
