package config

import "fmt"

// SimConfig controls how many cycles are run and how fast.
type SimConfig struct {
	// Cycles is the number of simulation cycles to run.
	Cycles int `json:"cycles"`
	// IntervalMS is the pause between cycles in milliseconds. Zero means
	// cycles run back to back.
	IntervalMS int `json:"interval_ms"`
	// StopWhenDone ends the run early once every mission is completed.
	StopWhenDone bool `json:"stop_when_done"`
	// CheckLocation is the location used by the pre-run fleet check.
	CheckLocation string `json:"check_location"`
}

// SetDefaults applies sane defaults.
func (c *SimConfig) SetDefaults() {
	if c.Cycles == 0 {
		c.Cycles = 2
	}
	if c.CheckLocation == "" {
		c.CheckLocation = "proving ground"
	}
}

// Validate checks mandatory fields.
func (c SimConfig) Validate() error {
	if c.Cycles < 0 {
		return fmt.Errorf("cycles must not be negative")
	}
	if c.IntervalMS < 0 {
		return fmt.Errorf("interval_ms must not be negative")
	}
	return nil
}
