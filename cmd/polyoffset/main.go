// Command polyoffset reads polylines and writes their offset curves.
//
// Points are read from standard input (or the file named by -in), one "x y"
// or "x,y" pair per line. A blank line ends a polyline. The output is either
// the offset polylines as text, or a picture of the polylines, their offsets
// and vertices as PNG or SVG.
//
// Usage:
//
//	polyoffset [flags] < points.txt
//
// Settings can also be read from a TOML file given by -config; flags that are
// set explicitly take precedence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/polyoffset"
	"honnef.co/go/polyoffset/board"
	"honnef.co/go/polyoffset/raster"
	"honnef.co/go/polyoffset/svg"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "polyoffset:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("polyoffset", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML configuration `file`")
		distance   = fs.Float64("d", board.DefaultDistance, "offset `distance`; negative values offset to the other side")
		format     = fs.String("format", "text", "output format: text, png or svg")
		size       = fs.String("size", "800x600", "image size as `WxH` (png)")
		fit        = fs.Bool("fit", false, "scale the drawing to fill the image (png)")
		in         = fs.String("in", "", "read points from `file` instead of standard input")
		out        = fs.String("o", "", "write output to `file` instead of standard output")
		verbose    = fs.Bool("v", false, "log debug information")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	polyoffset.SetLogger(logger)
	defer polyoffset.SetLogger(nil)

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "d":
			cfg.Distance = *distance
		case "format":
			cfg.Format = *format
		case "fit":
			cfg.Fit = *fit
		case "size":
			w, h, err := parseSize(*size)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Width, cfg.Height = w, h
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	style, err := cfg.Style.Style()
	if err != nil {
		return err
	}

	r := stdin
	if *in != "" {
		fd, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer fd.Close()
		r = fd
	}

	b := board.New(cfg.Distance)
	if err := readPoints(r, b); err != nil {
		return err
	}
	f := b.Frame()
	logger.Debug("read input", slog.Int("polylines", len(f.Polylines)), slog.Int("vertices", len(f.Vertices)))

	w := stdout
	var outFile *os.File
	if *out != "" {
		if outFile, err = os.Create(*out); err != nil {
			return err
		}
		defer outFile.Close()
		w = outFile
	}

	switch cfg.Format {
	case "text":
		err = writeText(w, f)
	case "svg":
		err = svg.Encode(w, f, style, cfg.Margin)
	case "png":
		rs := raster.New(nil, cfg.Width, cfg.Height, style)
		if cfg.Fit {
			rs.SetTransform(raster.Viewport(f, cfg.Width, cfg.Height, cfg.Margin))
		}
		rs.Render(f)
		err = raster.EncodePNG(w, rs.Image())
	}
	if err != nil {
		return err
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return err
		}
	}
	logger.Info("wrote output", slog.String("format", cfg.Format), slog.Int("polylines", len(f.Offsets)))
	return nil
}
