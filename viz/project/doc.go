// Package project maps sphere nodes to surface coordinates.
//
// Pipeline (fixed, per node):
//
//	offset/jitter → scale → rotate Y → rotate X → perspective divide → clamp.
//
// Projection is a pure function of (nodes, t, surface size) once a Projector
// has been created: the only randomness is the per-node z-jitter, drawn once
// from a caller-provided source in New.
package project
