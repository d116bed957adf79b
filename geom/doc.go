// Package geom provides the curve primitives used by the loft exporter:
// points and vectors in 3D, supporting planes, and the curve types that a
// scene document can contain (lines, polylines, arcs, circles, and cubic
// Bézier splines).
//
// # Curves and capabilities
//
// [Curve] is the required interface: every curve has a parametric domain,
// can be evaluated at a parameter, and knows its endpoints and whether it
// is closed. Everything else is an optional capability discovered by type
// assertion: [Arclener] for arc length, [Circular] for center/radius/plane
// access on arcs and circles, [Exploder] for splitting a curve into
// simpler pieces, and [PolylineApproximator] for chord approximation with
// bounded edge counts. Callers that need a capability a curve does not
// provide are expected to degrade rather than fail.
//
// The parametric domains are deliberately not uniform: lines and arcs use
// [0, 1], circles use [0, 2π], polylines use [0, n−1] (parametrized by
// segment index), and splines use [0, n]. Sampling code must query
// [Curve.Domain] rather than assume a range.
package geom
