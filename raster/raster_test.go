package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/polyoffset"
	"honnef.co/go/polyoffset/board"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	green = color.RGBA{0, 128, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{100, 100, 200, 255}
)

func horizontalFrame() board.Frame {
	b := board.New(20)
	b.Click(polyoffset.Pt(10, 50))
	b.Click(polyoffset.Pt(90, 50))
	return b.Frame()
}

func TestRenderFrame(t *testing.T) {
	st := DefaultStyle
	st.LineWidth = 2
	rs := New(nil, 100, 100, st)
	rs.Render(horizontalFrame())
	img := rs.Image()

	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, white, img.RGBAAt(50, 20), "background")
	assert.Equal(t, black, img.RGBAAt(50, 50), "polyline")
	// The normal of a left-to-right edge points towards +y, which is down on
	// screen.
	assert.Equal(t, green, img.RGBAAt(50, 70), "offset")
	assert.Equal(t, white, img.RGBAAt(50, 30), "no offset on the other side")
	assert.Equal(t, blue, img.RGBAAt(10, 46), "vertex marker")
}

func TestRenderPreview(t *testing.T) {
	b := board.New(20)
	b.Click(polyoffset.Pt(50, 10))
	b.PointerEnter(polyoffset.Pt(50, 90))

	st := DefaultStyle
	st.LineWidth = 2
	rs := New(nil, 100, 100, st)
	rs.Render(b.Frame())
	assert.Equal(t, red, rs.Image().RGBAAt(50, 60))

	b.PointerLeave()
	rs.Render(b.Frame())
	assert.Equal(t, white, rs.Image().RGBAAt(50, 60))
}

func TestRenderReversal(t *testing.T) {
	st := DefaultStyle
	st.LineWidth = 2
	st.VertexRadius = 0
	rs := New(nil, 100, 100, st)
	rs.Render(board.Frame{
		Polylines: []polyoffset.Polyline{{
			polyoffset.Pt(10, 50),
			polyoffset.Pt(90, 50),
			polyoffset.Pt(30, 50),
		}},
	})
	img := rs.Image()
	assert.Equal(t, black, img.RGBAAt(20, 50), "outbound edge only")
	assert.Equal(t, black, img.RGBAAt(50, 50), "both edges")
	assert.Equal(t, black, img.RGBAAt(50, 49), "both edges")
	assert.Equal(t, white, img.RGBAAt(50, 47))
}

func TestRenderViewport(t *testing.T) {
	b := board.New(0.1)
	b.Click(polyoffset.Pt(0, 0))
	b.Click(polyoffset.Pt(1, 0))
	f := b.Frame()

	st := DefaultStyle
	st.LineWidth = 2
	st.VertexRadius = 0
	rs := New(nil, 100, 100, st)
	rs.SetTransform(Viewport(f, 100, 100, 10))
	rs.Render(f)
	img := rs.Image()

	// The line and its offset span 80 pixels horizontally, centered.
	assert.Equal(t, white, img.RGBAAt(5, 50))
	assert.Equal(t, white, img.RGBAAt(95, 50))
	found := false
	for y := range 100 {
		if img.RGBAAt(50, y) == black {
			found = true
		}
	}
	assert.True(t, found, "polyline not drawn")
}

func TestRenderEmpty(t *testing.T) {
	f := board.New(5).Frame()
	assert.Equal(t, polyoffset.Identity, Viewport(f, 10, 10, 1))
	rs := New(NewImage(10, 10), 0, 0, DefaultStyle)
	rs.Render(f)
	assert.Equal(t, white, rs.Image().RGBAAt(5, 5))
}

func TestEncodePNG(t *testing.T) {
	rs := New(nil, 100, 100, DefaultStyle)
	rs.Render(horizontalFrame())

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, rs.Image()))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, rs.Image().Bounds(), img.Bounds())
}
