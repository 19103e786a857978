// Package polyoffset computes offset curves of polylines: for a polyline
// drawn vertex by vertex, a second polyline running alongside it at a fixed
// distance. It is meant for interactive drawing tools that show the offset
// while the user is still adding vertices.
//
// # Algorithm
//
// Every edge of the source polyline is shifted sideways by the offset
// distance along its [Normal]. Consecutive shifted edges generally no longer
// meet, so the new joint vertex is found by intersecting the infinite lines
// through them ([Line.CrossingPoint]), which is a simple miter join. The
// start of the first shifted edge and the end of the last one complete the
// offset polyline. See [Offset], [OffsetEdges], [Joint] and [Assemble].
//
// The side the offset lies on follows from the drawing order alone: the
// normal of an edge a→b is b−a rotated by 90° ([Vec2.Perp]). A negative
// distance selects the other side.
//
// Shifted edges of collinear source edges are parallel and already share
// their endpoint, so they produce no joint of their own. Joints of very sharp
// turns are not clamped and may lie far outside both edges; there is no miter
// limit.
//
// # Degenerate edges
//
// An edge whose endpoints coincide has no direction. [Normal] and
// [Vec2.Normalize] panic when given such input rather than produce NaN
// coordinates. [OffsetEdges] skips such edges. [Polyline.Validate] reports them
// and [Polyline.Compact] removes them.
//
// # Points and vectors
//
// [Point] is a location and [Vec2] a displacement. Subtracting two points
// yields a vector, translating a point by a vector yields a point, and only
// vectors can be scaled, normalized and measured.
//
// Offsetting is a pure function of its inputs. It keeps no state between
// calls and never retains the polyline passed to it, so callers may keep
// appending to their polylines between calls.
package polyoffset
