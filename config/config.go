package config

import (
	"encoding/json"
	"os"

	"github.com/soocke/pixel-picker-go/domain/colorspace"
)

// Allowed ranges. Validate clamps into these instead of failing so a
// hand-edited or stale settings file can never prevent startup.
const (
	MinGridRadius = 1
	MaxGridRadius = 16
	MinCellSize   = 4
	MaxCellSize   = 48
	MinTickMillis = 16
	MaxTickMillis = 1000
	MinHistoryCap = 1
	MaxHistoryCap = 64
)

// Config holds runtime configuration for the picker. Fields may be loaded
// from a JSON file and are written back on exit, including the color history.
type Config struct {
	Debug bool `json:"debug"`
	Dark  bool `json:"dark"`

	// Sampling parameters
	GridRadius int `json:"grid_radius"` // half-width of the capture square in cells
	CellSize   int `json:"cell_size"`   // magnified pixel size in the preview, px
	TickMillis int `json:"tick_millis"` // capture poll interval

	// History persistence
	HistoryCapacity int      `json:"history_capacity"`
	History         []string `json:"history"` // hex colors, most recent first
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		Dark:            false,
		GridRadius:      7,
		CellSize:        12,
		TickMillis:      50,
		HistoryCapacity: 12,
	}
}

// Validate clamps values to safe ranges and truncates the persisted history
// to the configured capacity. It never fails.
func (c *Config) Validate() error {
	if c.GridRadius < MinGridRadius {
		c.GridRadius = MinGridRadius
	}
	if c.GridRadius > MaxGridRadius {
		c.GridRadius = MaxGridRadius
	}
	if c.CellSize < MinCellSize {
		c.CellSize = MinCellSize
	}
	if c.CellSize > MaxCellSize {
		c.CellSize = MaxCellSize
	}
	if c.TickMillis < MinTickMillis {
		c.TickMillis = MinTickMillis
	}
	if c.TickMillis > MaxTickMillis {
		c.TickMillis = MaxTickMillis
	}
	if c.HistoryCapacity < MinHistoryCap {
		c.HistoryCapacity = DefaultConfig().HistoryCapacity
	}
	if c.HistoryCapacity > MaxHistoryCap {
		c.HistoryCapacity = MaxHistoryCap
	}
	if len(c.History) > c.HistoryCapacity {
		c.History = c.History[:c.HistoryCapacity]
	}
	return nil
}

// HistoryColors decodes the persisted history, dropping malformed entries.
func (c *Config) HistoryColors() []colorspace.Color {
	out := make([]colorspace.Color, 0, len(c.History))
	for _, s := range c.History {
		col, err := colorspace.ParseHex(s)
		if err != nil {
			continue
		}
		out = append(out, col)
	}
	return out
}

// SetHistory stores colors for persistence, most recent first.
func (c *Config) SetHistory(colors []colorspace.Color) {
	c.History = make([]string, len(colors))
	for i, col := range colors {
		c.History[i] = col.Hex()
	}
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
