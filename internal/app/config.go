package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config carries the startup parameters for the application.
type Config struct {
	Width            int   `json:"width"`
	Height           int   `json:"height"`
	CellSize         int   `json:"cell_size"`
	UpdatesPerSecond int   `json:"updates_per_second"`
	LiveCells        int   `json:"live_cells"`
	Seed             int64 `json:"seed"`
	HUD              bool  `json:"hud"`
}

// NewConfig returns a Config populated with the documented defaults: a
// 100x100 grid of 10px cells at 20 updates per second, seeded empty.
func NewConfig() *Config {
	return &Config{
		Width:            100,
		Height:           100,
		CellSize:         10,
		UpdatesPerSecond: 20,
		LiveCells:        0,
		Seed:             42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.UpdatesPerSecond, "ups", c.UpdatesPerSecond, "simulation updates per second")
	fs.IntVar(&c.LiveCells, "live", c.LiveCells, "randomly seeded live cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board fill")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status line")
}

// ApplyFile overlays values from a JSON file. Flags that were explicitly
// set on the command line keep their values; everything else takes the
// file's value over the default.
func (c *Config) ApplyFile(path string, fs *flag.FlagSet) error {
	loaded := *NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err = json.Unmarshal(data, &loaded); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}

	set := map[string]bool{}
	if fs != nil {
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	}
	if !set["width"] {
		c.Width = loaded.Width
	}
	if !set["height"] {
		c.Height = loaded.Height
	}
	if !set["cell"] {
		c.CellSize = loaded.CellSize
	}
	if !set["ups"] {
		c.UpdatesPerSecond = loaded.UpdatesPerSecond
	}
	if !set["live"] {
		c.LiveCells = loaded.LiveCells
	}
	if !set["seed"] {
		c.Seed = loaded.Seed
	}
	if !set["hud"] {
		c.HUD = loaded.HUD
	}
	return nil
}

// Normalize clamps out-of-range values back to the defaults.
func (c *Config) Normalize() {
	def := NewConfig()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.CellSize <= 0 {
		c.CellSize = def.CellSize
	}
	if c.UpdatesPerSecond <= 0 {
		c.UpdatesPerSecond = def.UpdatesPerSecond
	}
	if c.LiveCells < 0 {
		c.LiveCells = 0
	}
}


