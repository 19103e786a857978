package polyoffset

import (
	"iter"
	"log/slog"
	"slices"
)

// Polyline is an ordered sequence of vertices, connected by straight edges
// in order. Polylines are open; the last vertex isn't connected back to the
// first.
type Polyline []Point

// Edges returns the polyline's edges in order. A polyline with n ≥ 2 vertices
// has n−1 edges, shorter polylines have none.
func (pl Polyline) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pl); i++ {
			if !yield(Line{pl[i-1], pl[i]}) {
				return
			}
		}
	}
}

// Validate returns a *[DegenerateEdgeError] for the first edge whose endpoints
// coincide, or nil if there is no such edge.
func (pl Polyline) Validate() error {
	for i := 1; i < len(pl); i++ {
		if pl[i-1] == pl[i] {
			return &DegenerateEdgeError{Index: i - 1, At: pl[i]}
		}
	}
	return nil
}

// Compact returns a copy of the polyline without consecutive duplicate
// vertices. The result has no degenerate edges.
func (pl Polyline) Compact() Polyline {
	if pl == nil {
		return nil
	}
	return slices.Compact(slices.Clone(pl))
}

// Clone returns a copy of the polyline that shares no memory with pl.
func (pl Polyline) Clone() Polyline {
	return slices.Clone(pl)
}

// BoundingBox returns the smallest rectangle containing all vertices. It
// returns the zero Rect for an empty polyline.
func (pl Polyline) BoundingBox() Rect {
	if len(pl) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(pl[0], pl[0])
	for _, pt := range pl[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// PathElements returns the drawing commands for the polyline: a move to the
// first vertex followed by a line to each remaining vertex. The path is not
// closed.
func (pl Polyline) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range pl {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}

// Offset returns the offset polyline of pl at distance d. See [Offset].
func (pl Polyline) Offset(d float64) Polyline {
	return Offset(pl, d)
}

// Offset computes a polyline running parallel to pl at distance d, with
// simple miter joins.
//
// Every edge of pl is shifted sideways by d along its [Normal], consecutive
// shifted edges are intersected to find the joints, and the start of the first
// and the end of the last shifted edge are added as endpoints. See
// [OffsetEdges] and [Assemble] for the individual steps.
//
// Polylines with fewer than two vertices produce an empty result. Offset
// neither modifies nor retains pl.
func Offset(pl Polyline, d float64) Polyline {
	return Assemble(OffsetEdges(pl, d))
}

// OffsetEdges returns the edges of pl, each translated by its normal scaled by
// d. The result is in the order of the source edges.
//
// Degenerate edges, whose two vertices coincide, have no normal and are
// skipped. So are edges that have a NaN or infinite coordinate, either in the
// source or after offsetting. Each skip is logged at debug level.
func OffsetEdges(pl Polyline, d float64) []Line {
	if len(pl) < 2 {
		return nil
	}
	out := make([]Line, 0, len(pl)-1)
	for i := 1; i < len(pl); i++ {
		e := Line{pl[i-1], pl[i]}
		if e.IsDegenerate() {
			Logger().Debug("skipping degenerate edge",
				slog.Int("index", i-1),
				slog.String("at", e.P0.String()))
			continue
		}
		if !e.isFinite() {
			Logger().Debug("skipping non-finite edge", slog.Int("index", i-1))
			continue
		}
		o := e.Offset(d)
		if !o.isFinite() {
			Logger().Debug("skipping non-finite offset edge",
				slog.Int("index", i-1),
				slog.Float64("distance", d))
			continue
		}
		out = append(out, o)
	}
	return out
}

// Joint returns the vertex joining two consecutive offset edges: the crossing
// point of the infinite lines through them.
//
// It returns false if the edges are parallel. Offset edges are parallel only
// if their source edges are, in which case the end of e0 and the start of e1
// already coincide and no joint is needed. It also returns false if the
// crossing point overflows.
func Joint(e0, e1 Line) (Point, bool) {
	pt, ok := e0.CrossingPoint(e1)
	if !ok || pt.IsNaN() || pt.IsInf() {
		return Point{}, false
	}
	return pt, true
}

// Assemble strings offset edges together into a polyline. The result starts
// at the start of the first edge, continues with the [Joint] of each pair of
// consecutive edges, and ends at the end of the last edge. Pairs of parallel
// edges contribute no vertex.
//
// Assemble returns nil if there are no edges.
func Assemble(edges []Line) Polyline {
	if len(edges) == 0 {
		return nil
	}
	out := make(Polyline, 0, len(edges)+1)
	out = append(out, edges[0].P0)
	for i := 1; i < len(edges); i++ {
		if pt, ok := Joint(edges[i-1], edges[i]); ok {
			out = append(out, pt)
		}
	}
	out = append(out, edges[len(edges)-1].P1)
	return out
}
