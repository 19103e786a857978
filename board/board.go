// Package board holds the drawing state of an interactive offset-curve
// editor: the polylines drawn so far and the pointer position. Input handlers
// mutate a [Board], and the redraw loop takes a [Frame] from it once per tick.
package board

import (
	"log/slog"
	"sync"

	"honnef.co/go/polyoffset"
)

// DefaultDistance is the offset distance used by editors that don't
// configure one.
const DefaultDistance = 50

// Board is the single owner of the drawing state. All methods are safe for
// concurrent use, but the intended discipline is one writer (the input
// handlers) and one reader (the redraw loop).
type Board struct {
	mu        sync.Mutex
	distance  float64
	polylines []polyoffset.Polyline
	// active reports whether the last polyline still accepts vertices.
	active  bool
	pointer *polyoffset.Point
}

// New returns an empty board whose polylines are offset by distance.
func New(distance float64) *Board {
	return &Board{distance: distance}
}

// Distance returns the offset distance.
func (b *Board) Distance() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.distance
}

// SetDistance changes the offset distance for subsequent frames.
func (b *Board) SetDistance(d float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.distance = d
}

// Click appends pt to the active polyline, starting a new polyline if there
// is none. It reports whether a vertex was added; a click on the previous
// vertex is ignored, so boards never contain degenerate edges.
func (b *Board) Click(pt polyoffset.Point) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active {
		b.polylines = append(b.polylines, nil)
		b.active = true
		polyoffset.Logger().Debug("started polyline", slog.Int("polyline", len(b.polylines)-1))
	}
	i := len(b.polylines) - 1
	pl := b.polylines[i]
	if n := len(pl); n > 0 && pl[n-1] == pt {
		polyoffset.Logger().Debug("ignoring repeated vertex", slog.Int("polyline", i), slog.String("at", pt.String()))
		return false
	}
	b.polylines[i] = append(pl, pt)
	return true
}

// Finish ends the active polyline. The next click starts a new one.
func (b *Board) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active {
		polyoffset.Logger().Debug("finished polyline",
			slog.Int("polyline", len(b.polylines)-1),
			slog.Int("vertices", len(b.polylines[len(b.polylines)-1])))
	}
	b.active = false
}

// PointerEnter records that the pointer entered the drawing area at pt.
func (b *Board) PointerEnter(pt polyoffset.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pointer = &pt
}

// PointerMove updates the pointer position. Moves are ignored while the
// pointer is outside the drawing area.
func (b *Board) PointerMove(pt polyoffset.Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pointer != nil {
		*b.pointer = pt
	}
}

// PointerLeave records that the pointer left the drawing area.
func (b *Board) PointerLeave() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pointer = nil
}

// Clear removes all polylines. The pointer is unaffected.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.polylines = nil
	b.active = false
	polyoffset.Logger().Debug("cleared board")
}

// Len returns the number of polylines on the board.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.polylines)
}

// Frame returns a snapshot of the board with offsets computed. The frame
// shares no memory with the board.
func (b *Board) Frame() Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	f := Frame{
		Distance:  b.distance,
		Polylines: make([]polyoffset.Polyline, len(b.polylines)),
		Offsets:   make([]polyoffset.Polyline, len(b.polylines)),
	}
	for i, pl := range b.polylines {
		f.Polylines[i] = pl.Clone()
		f.Offsets[i] = polyoffset.Offset(pl, b.distance)
		f.Vertices = append(f.Vertices, pl...)
	}
	if b.pointer != nil {
		f.Pointer = *b.pointer
		f.HasPointer = true
	}
	if b.active && b.pointer != nil {
		pl := b.polylines[len(b.polylines)-1]
		if len(pl) > 0 {
			f.Preview = polyoffset.Line{P0: pl[len(pl)-1], P1: *b.pointer}
			f.HasPreview = true
		}
	}
	return f
}
