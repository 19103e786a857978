package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"honnef.co/go/polyoffset"
	"honnef.co/go/polyoffset/board"
)

// readPoints feeds points from r to b, one "x y" or "x,y" pair per line, as
// clicks. Blank lines finish the current polyline and '#' starts a comment.
func readPoints(r io.Reader, b *board.Board) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line, _, _ := strings.Cut(sc.Text(), "#")
		line = strings.TrimSpace(line)
		if line == "" {
			b.Finish()
			continue
		}
		pt, err := parsePoint(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		b.Click(pt)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading points: %w", err)
	}
	b.Finish()
	return nil
}

func parsePoint(s string) (polyoffset.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return polyoffset.Point{}, fmt.Errorf("want two coordinates, got %q", s)
	}
	var xy [2]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return polyoffset.Point{}, fmt.Errorf("invalid coordinate %q", f)
		}
		xy[i] = v
	}
	return polyoffset.Pt(xy[0], xy[1]), nil
}

// writeText writes every offset polyline as "x y" lines, separating
// polylines by a blank line. Empty offsets are skipped.
func writeText(w io.Writer, f board.Frame) error {
	bw := bufio.NewWriter(w)
	first := true
	for _, pl := range f.Offsets {
		if len(pl) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(bw)
		}
		first = false
		for _, pt := range pl {
			fmt.Fprintf(bw, "%g %g\n", pt.X, pt.Y)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
