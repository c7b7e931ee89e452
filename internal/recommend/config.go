// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"fmt"
)

// Config contains the tunable parts of ranking. The 70/30 similarity and
// popularity split is fixed and deliberately not configurable.
type Config struct {
	// Age bounds accepted from callers.
	Age RangeConfig `json:"age"`

	// Count bounds the number of recommendations per request.
	Count CountConfig `json:"count"`

	// MaxAgeAdjustment caps the age-affinity boost or penalty as a fraction
	// of the similarity magnitude. 0.15 means at most ±15%.
	MaxAgeAdjustment float64 `json:"max_age_adjustment"`
}

// RangeConfig is an inclusive integer range.
type RangeConfig struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CountConfig bounds the result count. Default applies when a request asks
// for zero results.
type CountConfig struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// DefaultConfig returns the production configuration.
func DefaultConfig() *Config {
	return &Config{
		Age:              RangeConfig{Min: 13, Max: 100},
		Count:            CountConfig{Min: 5, Max: 20, Default: 10},
		MaxAgeAdjustment: 0.15,
	}
}

// Validate checks internal consistency.
func (c *Config) Validate() error {
	if c.Age.Min < 0 {
		return fmt.Errorf("age.min must be non-negative, got %d", c.Age.Min)
	}
	if c.Age.Max < c.Age.Min {
		return fmt.Errorf("age.max (%d) must be >= age.min (%d)", c.Age.Max, c.Age.Min)
	}
	if c.Count.Min < 1 {
		return fmt.Errorf("count.min must be positive, got %d", c.Count.Min)
	}
	if c.Count.Max < c.Count.Min {
		return fmt.Errorf("count.max (%d) must be >= count.min (%d)", c.Count.Max, c.Count.Min)
	}
	if c.Count.Default < c.Count.Min || c.Count.Default > c.Count.Max {
		return fmt.Errorf("count.default must be in [%d, %d], got %d", c.Count.Min, c.Count.Max, c.Count.Default)
	}
	if c.MaxAgeAdjustment < 0 || c.MaxAgeAdjustment > 0.5 {
		return fmt.Errorf("max_age_adjustment must be in [0, 0.5], got %f", c.MaxAgeAdjustment)
	}
	return nil
}

// Clone returns a copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
