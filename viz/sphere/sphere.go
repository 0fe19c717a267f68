// Package sphere places labeled nodes on a sphere with a golden-angle spiral.
//
// The layout is fully deterministic: identical labels and radius always
// produce identical positions. There is no relaxation step.
package sphere

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput reports a label set the layout cannot place.
var ErrInvalidInput = errors.New("sphere: invalid input")

// GoldenAngle is the spiral increment between consecutive nodes.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Node is a labeled point on (or near) the sphere.
type Node struct {
	Label   string
	X, Y, Z float64
}

// Dist returns the Euclidean distance between two nodes.
func Dist(a, b Node) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Layout places one node per label, index-aligned with labels.
//
// At least two labels are required and labels must be unique.
func Layout(labels []string, radius float64) ([]Node, error) {
	n := len(labels)
	if n < 2 {
		return nil, fmt.Errorf("layout %d labels: need at least 2: %w", n, ErrInvalidInput)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("layout radius %v: %w", radius, ErrInvalidInput)
	}

	seen := make(map[string]int, n)
	for i, l := range labels {
		if j, ok := seen[l]; ok {
			return nil, fmt.Errorf("layout label %q at %d duplicates %d: %w", l, i, j, ErrInvalidInput)
		}
		seen[l] = i
	}

	nodes := make([]Node, n)
	last := float64(n - 1)
	for i, l := range labels {
		y := 1 - (float64(i)/last)*2
		r := math.Sqrt(1 - y*y)
		theta := GoldenAngle * float64(i)
		nodes[i] = Node{
			Label: l,
			X:     math.Cos(theta) * r * radius,
			Y:     y * radius,
			Z:     math.Sin(theta) * r * radius,
		}
	}
	return nodes, nil
}
