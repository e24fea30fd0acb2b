// Package config loads optional chart configuration from a TOML file.
//
// Every knob has a default matching the reference chart constants, so a
// missing or partial file is fine; CLI flags still override whatever the
// file sets.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/schedkit/schedkit/pkg/errors"
	"github.com/schedkit/schedkit/pkg/gantt"
)

// Config is the schedkit configuration file shape.
type Config struct {
	Layout   Layout   `toml:"layout"`
	Geometry Geometry `toml:"geometry"`
	Palette  Palette  `toml:"palette"`
}

// Layout holds chart-wide behavior settings.
type Layout struct {
	Topology  string  `toml:"topology"`
	TimeScale float64 `toml:"time_scale"`
	Grid      bool    `toml:"grid"`
}

// Geometry mirrors the engine's pixel constants.
type Geometry struct {
	TimeScale      float64 `toml:"time_scale"`
	RowHeight      float64 `toml:"row_height"`
	HeaderWidth    float64 `toml:"header_width"`
	Padding        float64 `toml:"padding"`
	TimeAxisHeight float64 `toml:"time_axis_height"`
	BlockVPad      float64 `toml:"block_v_pad"`
	LabelInset     float64 `toml:"label_inset"`
	OverlapGap     float64 `toml:"overlap_gap"`
}

// Palette optionally replaces the job color cycle.
type Palette struct {
	Colors []string `toml:"colors"`
}

// Default returns the configuration matching the built-in constants.
func Default() Config {
	geo := gantt.DefaultGeometry()
	return Config{
		Layout: Layout{
			Topology:  string(gantt.TopologyGroupInstance),
			TimeScale: geo.TimeScale,
			Grid:      true,
		},
		Geometry: Geometry{
			TimeScale:      geo.TimeScale,
			RowHeight:      geo.RowHeight,
			HeaderWidth:    geo.HeaderWidth,
			Padding:        geo.Padding,
			TimeAxisHeight: geo.TimeAxisHeight,
			BlockVPad:      geo.BlockVPad,
			LabelInset:     geo.LabelInset,
			OverlapGap:     geo.OverlapGap,
		},
	}
}

// Load reads a TOML config file over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if !gantt.ValidTopologies[gantt.Topology(c.Layout.Topology)] {
		return errors.New(errors.ErrCodeInvalidTopology,
			"unknown topology %q (must be group_instance or machine)", c.Layout.Topology)
	}
	if c.Layout.TimeScale <= 0 {
		return errors.New(errors.ErrCodeInvalidScale, "time_scale must be positive, got %v", c.Layout.TimeScale)
	}
	if c.Geometry.RowHeight <= 0 || c.Geometry.HeaderWidth < 0 || c.Geometry.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "geometry values out of range")
	}
	if len(c.Palette.Colors) > 0 {
		if _, err := gantt.NewPalette(c.Palette.Colors); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette")
		}
	}
	return nil
}

// ToGeometry converts the file shape into engine geometry.
func (c Config) ToGeometry() gantt.Geometry {
	return gantt.Geometry{
		TimeScale:      c.Geometry.TimeScale,
		RowHeight:      c.Geometry.RowHeight,
		HeaderWidth:    c.Geometry.HeaderWidth,
		Padding:        c.Geometry.Padding,
		TimeAxisHeight: c.Geometry.TimeAxisHeight,
		BlockVPad:      c.Geometry.BlockVPad,
		LabelInset:     c.Geometry.LabelInset,
		OverlapGap:     c.Geometry.OverlapGap,
	}
}

// BuildPalette returns the configured palette, or the engine default when
// no colors are set.
func (c Config) BuildPalette() (*gantt.Palette, error) {
	if len(c.Palette.Colors) == 0 {
		return gantt.DefaultPalette(), nil
	}
	return gantt.NewPalette(c.Palette.Colors)
}
