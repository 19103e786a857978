// Package svg writes board frames as SVG documents.
package svg

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/jbeda/geom"
	"honnef.co/go/polyoffset"
	"honnef.co/go/polyoffset/board"
	"honnef.co/go/polyoffset/raster"
)

// Writer emits SVG elements. The first write error is kept and all
// subsequent writes are skipped; see [Writer.Err].
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered while writing.
func (svg *Writer) Err() error { return svg.err }

func (svg *Writer) printf(format string, args ...any) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.w, format, args...)
}

// attrs formats extra element attributes. Strings containing '=' are used
// verbatim, anything else becomes a style attribute.
func attrs(s []string) string {
	var sb strings.Builder
	for _, a := range s {
		if a == "" {
			continue
		}
		if strings.Contains(a, "=") {
			sb.WriteString(a)
		} else {
			fmt.Fprintf(&sb, "style='%s'", a)
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

func (svg *Writer) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%g %g %g %g"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height(), attrs(s))
}

func (svg *Writer) End() {
	svg.printf("</svg>\n")
}

func (svg *Writer) Rect(r geom.Rect, s ...string) {
	svg.printf("<rect x='%g' y='%g' width='%g' height='%g' %s/>\n",
		r.Min.X, r.Min.Y, r.Width(), r.Height(), attrs(s))
}

func (svg *Writer) Circle(c polyoffset.Point, r float64, s ...string) {
	svg.printf("<circle cx='%g' cy='%g' r='%g' %s/>\n", c.X, c.Y, r, attrs(s))
}

// Path writes pl as an open path. Polylines with fewer than two vertices are
// skipped.
func (svg *Writer) Path(pl polyoffset.Polyline, s ...string) {
	if len(pl) < 2 {
		return
	}
	svg.printf("<path %sd='", attrs(s))
	for el := range pl.PathElements() {
		switch el.Kind {
		case polyoffset.MoveToKind:
			svg.printf("M%g,%g", el.P0.X, el.P0.Y)
		case polyoffset.LineToKind:
			svg.printf("\n  L%g,%g", el.P0.X, el.P0.Y)
		}
	}
	svg.printf("'/>\n")
}

func coord(pt polyoffset.Point) geom.Coord {
	return geom.Coord{X: pt.X, Y: pt.Y}
}

// Bounds returns the region covered by the frame's geometry, grown by margin
// on every side. Empty frames cover the margin around the origin.
func Bounds(f board.Frame, margin float64) geom.Rect {
	bb, _ := f.BoundingBox()
	r := geom.Rect{Min: coord(bb.Origin()), Max: coord(bb.Origin())}
	r.ExpandToContainCoord(coord(polyoffset.Pt(bb.X1, bb.Y1)))
	r.Min.X -= margin
	r.Min.Y -= margin
	r.Max.X += margin
	r.Max.Y += margin
	return r
}

// Encode writes f as a complete SVG document styled by st. Line widths and
// marker radii are in frame units.
func Encode(w io.Writer, f board.Frame, st raster.Style, margin float64) error {
	svg := NewWriter(w)
	vb := Bounds(f, margin)
	svg.Start(vb)
	svg.Rect(vb, "fill="+quote(hex(st.Background)))

	stroke := func(c color.Color) []string {
		return []string{
			"fill='none'",
			"stroke=" + quote(hex(c)),
			fmt.Sprintf("stroke-width='%g'", st.LineWidth),
		}
	}
	for _, pl := range f.Offsets {
		svg.Path(pl, stroke(st.Offset)...)
	}
	for _, pl := range f.Polylines {
		svg.Path(pl, stroke(st.Polyline)...)
	}
	if f.HasPreview {
		svg.Path(polyoffset.Polyline{f.Preview.P0, f.Preview.P1}, stroke(st.Preview)...)
	}
	if st.VertexRadius > 0 {
		for _, v := range f.Vertices {
			svg.Circle(v, st.VertexRadius, "fill="+quote(hex(st.Vertex)))
		}
	}
	svg.End()
	if err := svg.Err(); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	return nil
}

func quote(s string) string { return "'" + s + "'" }

// hex formats c as #rrggbb, ignoring alpha.
func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
