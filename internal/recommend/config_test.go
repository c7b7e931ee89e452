// Tunematch - Age-Aware Song Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tunematch

package recommend

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Age.Min != 13 || cfg.Age.Max != 100 {
		t.Errorf("Age = %+v, want 13-100", cfg.Age)
	}
	if cfg.Count.Min != 5 || cfg.Count.Max != 20 {
		t.Errorf("Count = %+v, want 5-20", cfg.Count)
	}
	if cfg.MaxAgeAdjustment != 0.15 {
		t.Errorf("MaxAgeAdjustment = %v, want 0.15", cfg.MaxAgeAdjustment)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative min age", func(c *Config) { c.Age.Min = -1 }},
		{"inverted age range", func(c *Config) { c.Age.Max = 10 }},
		{"zero min count", func(c *Config) { c.Count.Min = 0 }},
		{"inverted count range", func(c *Config) { c.Count.Max = 4 }},
		{"default below min", func(c *Config) { c.Count.Default = 1 }},
		{"default above max", func(c *Config) { c.Count.Default = 50 }},
		{"negative adjustment", func(c *Config) { c.MaxAgeAdjustment = -0.1 }},
		{"adjustment too large", func(c *Config) { c.MaxAgeAdjustment = 0.9 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Count.Default = 7

	if cfg.Count.Default != 10 {
		t.Errorf("modifying clone changed original: %d", cfg.Count.Default)
	}
}

func TestValidateAge(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	tests := []struct {
		age     int
		wantErr bool
	}{
		{12, true},
		{13, false},
		{55, false},
		{100, false},
		{101, true},
	}
	for _, tt := range tests {
		err := cfg.ValidateAge(tt.age)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAge(%d) = %v, wantErr %v", tt.age, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ValidateAge(%d) error %v does not wrap ErrInvalidInput", tt.age, err)
		}
	}
}
