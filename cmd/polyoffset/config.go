package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"honnef.co/go/polyoffset/board"
	"honnef.co/go/polyoffset/raster"
)

// Config is the command's configuration. It is read from a TOML file and
// overridden by flags.
type Config struct {
	Distance float64     `toml:"distance"`
	Format   string      `toml:"format"`
	Width    int         `toml:"width"`
	Height   int         `toml:"height"`
	Fit      bool        `toml:"fit"`
	Margin   float64     `toml:"margin"`
	Style    StyleConfig `toml:"style"`
}

// StyleConfig names colours as CSS colour names or #rgb / #rrggbb.
type StyleConfig struct {
	Background   string  `toml:"background"`
	Polyline     string  `toml:"polyline"`
	Offset       string  `toml:"offset"`
	Preview      string  `toml:"preview"`
	Vertex       string  `toml:"vertex"`
	LineWidth    float64 `toml:"line_width"`
	VertexRadius float64 `toml:"vertex_radius"`
}

func DefaultConfig() Config {
	return Config{
		Distance: board.DefaultDistance,
		Format:   "text",
		Width:    800,
		Height:   600,
		Margin:   20,
		Style: StyleConfig{
			Background:   "white",
			Polyline:     "#000000",
			Offset:       "green",
			Preview:      "#ff0000",
			Vertex:       "#6464c8",
			LineWidth:    raster.DefaultStyle.LineWidth,
			VertexRadius: raster.DefaultStyle.VertexRadius,
		},
	}
}

// LoadConfig reads a TOML file on top of the default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	switch cfg.Format {
	case "text", "png", "svg":
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}
	return nil
}

// Style resolves the configured colours.
func (sc StyleConfig) Style() (raster.Style, error) {
	st := raster.Style{
		LineWidth:    sc.LineWidth,
		VertexRadius: sc.VertexRadius,
	}
	for _, c := range []struct {
		name string
		in   string
		out  *color.Color
	}{
		{"background", sc.Background, &st.Background},
		{"polyline", sc.Polyline, &st.Polyline},
		{"offset", sc.Offset, &st.Offset},
		{"preview", sc.Preview, &st.Preview},
		{"vertex", sc.Vertex, &st.Vertex},
	} {
		col, err := parseColor(c.in)
		if err != nil {
			return st, fmt.Errorf("style %s: %w", c.name, err)
		}
		*c.out = col
	}
	return st, nil
}

func parseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return nil, fmt.Errorf("invalid colour %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid colour %q", s)
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown colour %q", s)
}

// parseSize parses sizes of the form WxH.
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return w, h, nil
}
