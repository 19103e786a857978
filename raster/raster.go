// Package raster draws board frames into RGBA images.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"honnef.co/go/polyoffset"
	"honnef.co/go/polyoffset/board"
)

// Style describes how frames are drawn. Widths and radii are in device
// pixels and don't scale with the transform.
type Style struct {
	Background   color.Color
	Polyline     color.Color
	Offset       color.Color
	Preview      color.Color
	Vertex       color.Color
	LineWidth    float64
	VertexRadius float64
}

// DefaultStyle draws black polylines with blue-grey vertex markers on white,
// the pending segment in red and offsets in green.
var DefaultStyle = Style{
	Background:   color.RGBA{255, 255, 255, 255},
	Polyline:     color.RGBA{0, 0, 0, 255},
	Offset:       color.RGBA{0, 128, 0, 255},
	Preview:      color.RGBA{255, 0, 0, 255},
	Vertex:       color.RGBA{100, 100, 200, 255},
	LineWidth:    1,
	VertexRadius: 5,
}

// circleSegments is the number of edges used to approximate vertex markers.
const circleSegments = 32

type Renderer struct {
	image *image.RGBA
	ras   *vector.Rasterizer
	style Style
	aff   polyoffset.Affine
}

// New returns a renderer drawing into img. If img is nil, a new image of the
// given size is allocated.
func New(img *image.RGBA, width, height int, style Style) *Renderer {
	if img == nil {
		img = NewImage(width, height)
	}
	b := img.Bounds()
	return &Renderer{
		image: img,
		ras:   vector.NewRasterizer(b.Dx(), b.Dy()),
		style: style,
		aff:   polyoffset.Identity,
	}
}

// NewImage allocates a width×height image.
func NewImage(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (rs *Renderer) Image() *image.RGBA { return rs.image }

// SetTransform sets the transform from frame coordinates to pixels.
func (rs *Renderer) SetTransform(aff polyoffset.Affine) { rs.aff = aff }

// Viewport returns a transform that fits the frame's geometry into a
// width×height image, leaving margin pixels on every side. Empty frames get
// the identity transform.
func Viewport(f board.Frame, width, height int, margin float64) polyoffset.Affine {
	bb, ok := f.BoundingBox()
	if !ok {
		return polyoffset.Identity
	}
	return polyoffset.FitRect(bb, polyoffset.Rect{X1: float64(width), Y1: float64(height)}, margin)
}

// Render clears the image and draws the frame: offsets first, then the
// polylines, the preview segment and finally the vertex markers.
func (rs *Renderer) Render(f board.Frame) {
	draw.Draw(rs.image, rs.image.Bounds(), image.NewUniform(rs.style.Background), image.Point{}, draw.Src)

	for _, pl := range f.Offsets {
		rs.strokePolyline(pl, rs.style.Offset)
	}
	for _, pl := range f.Polylines {
		rs.strokePolyline(pl, rs.style.Polyline)
	}
	if f.HasPreview {
		rs.strokePolyline(polyoffset.Polyline{f.Preview.P0, f.Preview.P1}, rs.style.Preview)
	}
	if rs.style.VertexRadius > 0 && len(f.Vertices) > 0 {
		rs.ras.Reset(rs.image.Bounds().Dx(), rs.image.Bounds().Dy())
		for _, v := range f.Vertices {
			rs.addCircle(v.Transform(rs.aff), rs.style.VertexRadius)
		}
		rs.fill(rs.style.Vertex)
	}
}

// strokePolyline draws pl as an open path of width LineWidth, one quad per
// edge. The normal is always left of the edge direction, so every quad winds
// the same way and overlapping quads never cancel.
func (rs *Renderer) strokePolyline(pl polyoffset.Polyline, c color.Color) {
	if len(pl) < 2 || rs.style.LineWidth <= 0 {
		return
	}
	rs.ras.Reset(rs.image.Bounds().Dx(), rs.image.Bounds().Dy())
	hw := rs.style.LineWidth / 2
	for l := range polyoffset.Transform(pl.Edges(), rs.aff) {
		if l.IsDegenerate() {
			continue
		}
		n := l.Normal().Mul(hw)
		rs.moveTo(l.P0.Translate(n))
		rs.lineTo(l.P1.Translate(n))
		rs.lineTo(l.P1.Untranslate(n))
		rs.lineTo(l.P0.Untranslate(n))
		rs.ras.ClosePath()
	}
	rs.fill(c)
}

func (rs *Renderer) addCircle(center polyoffset.Point, r float64) {
	for i := range circleSegments {
		pt := center.Translate(polyoffset.VecFromAngle(2 * math.Pi * float64(i) / circleSegments).Mul(r))
		if i == 0 {
			rs.moveTo(pt)
		} else {
			rs.lineTo(pt)
		}
	}
	rs.ras.ClosePath()
}

func (rs *Renderer) moveTo(pt polyoffset.Point) {
	rs.ras.MoveTo(float32(pt.X), float32(pt.Y))
}

func (rs *Renderer) lineTo(pt polyoffset.Point) {
	rs.ras.LineTo(float32(pt.X), float32(pt.Y))
}

func (rs *Renderer) fill(c color.Color) {
	rs.ras.Draw(rs.image, rs.image.Bounds(), image.NewUniform(c), image.Point{})
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
