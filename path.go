package polyoffset

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
)

// PathElement is a single drawing command.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s%s", kind, el.P0)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	default:
		return PathElement{}
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// Segments converts a sequence of path elements into the line segments they
// draw. Elements before the first MoveTo are ignored.
func Segments(seq iter.Seq[PathElement]) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var cur Point
		started := false
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				cur = el.P0
				started = true
			case LineToKind:
				if !started {
					continue
				}
				if !yield(Line{cur, el.P0}) {
					return
				}
				cur = el.P0
			}
		}
	}
}

// Transform applies aff to every value in seq.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
