// Package config defines the declarative world description loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cargoways/internal/models"
)

const (
	DefaultStartingCash = 1_000_000.0
	DefaultFuelInterval = 6
)

// WorldConfig describes a world to build. Zero values for tunables mean
// "use the default"; defaults are applied by Parse/Load.
type WorldConfig struct {
	// Optional seed for the generated pieces; nil means seed 0. An empty
	// airport list requires num_airports regardless of the seed.
	Seed *uint64 `yaml:"seed" json:"seed"`
	// Generate this many airports instead of listing them explicitly.
	NumAirports int `yaml:"num_airports" json:"num_airports"`
	// Starting cash for the player.
	StartingCash float64 `yaml:"starting_cash" json:"starting_cash"`
	// Whether to auto-generate orders based on airports and seed.
	GenerateOrders *bool `yaml:"generate_orders" json:"generate_orders"`
	// Explicit airports to load into the map.
	Airports []AirportConfig `yaml:"airports" json:"airports"`
	// Gameplay tuning.
	Gameplay GameplayConfig `yaml:"gameplay" json:"gameplay"`
}

type AirportConfig struct {
	ID       int      `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Location Location `yaml:"location" json:"location"`
	// meters
	RunwayLengthM float64 `yaml:"runway_length_m" json:"runway_length_m"`
	// $/L
	FuelPricePerL float64 `yaml:"fuel_price_per_l" json:"fuel_price_per_l"`
	// $ per ton of MTOW
	LandingFeePerTon float64 `yaml:"landing_fee_per_ton" json:"landing_fee_per_ton"`
	// $ per hour
	ParkingFeePerHour float64 `yaml:"parking_fee_per_hour" json:"parking_fee_per_hour"`
}

type Location struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

type GameplayConfig struct {
	RestockCycleHours uint64                       `yaml:"restock_cycle_hours" json:"restock_cycle_hours"`
	FuelIntervalHours uint64                       `yaml:"fuel_interval_hours" json:"fuel_interval_hours"`
	Orders            models.OrderGenerationParams `yaml:"orders" json:"orders"`
}

// ApplyDefaults fills every unset tunable.
func (c *WorldConfig) ApplyDefaults() {
	if c.StartingCash == 0 {
		c.StartingCash = DefaultStartingCash
	}
	if c.GenerateOrders == nil {
		t := true
		c.GenerateOrders = &t
	}
	o := &c.Gameplay.Orders
	if o.MaxDeadlineHours == 0 {
		o.MaxDeadlineHours = models.DefaultMaxDeadlineHours
	}
	if o.MinWeight == 0 {
		o.MinWeight = models.DefaultMinWeight
	}
	if o.MaxWeight == 0 {
		o.MaxWeight = models.DefaultMaxWeight
	}
	if o.Alpha == 0 {
		o.Alpha = models.DefaultAlpha
	}
	if o.Beta == 0 {
		o.Beta = models.DefaultBeta
	}
	if c.Gameplay.RestockCycleHours == 0 {
		c.Gameplay.RestockCycleHours = uint64(o.MaxDeadlineHours)
	}
	if c.Gameplay.FuelIntervalHours == 0 {
		c.Gameplay.FuelIntervalHours = DefaultFuelInterval
	}
}

// Validate checks the document against the config contract.
func (c *WorldConfig) Validate() error {
	if len(c.Airports) == 0 && c.NumAirports <= 0 {
		return fmt.Errorf("invalid config: airports list empty and num_airports not set")
	}

	seenIDs := map[int]bool{}
	seenNames := map[string]bool{}
	for _, a := range c.Airports {
		if seenIDs[a.ID] {
			return fmt.Errorf("invalid config: duplicate airport id %d", a.ID)
		}
		seenIDs[a.ID] = true
		if seenNames[a.Name] {
			return fmt.Errorf("invalid config: duplicate airport name %q", a.Name)
		}
		seenNames[a.Name] = true

		if a.Location.X < 0 || a.Location.X > 10_000 || a.Location.Y < 0 || a.Location.Y > 10_000 {
			return fmt.Errorf("invalid config: airport %d location (%.1f, %.1f) out of bounds", a.ID, a.Location.X, a.Location.Y)
		}
		if a.RunwayLengthM <= 0 {
			return fmt.Errorf("invalid config: airport %d runway_length_m must be > 0", a.ID)
		}
		if a.FuelPricePerL <= 0 {
			return fmt.Errorf("invalid config: airport %d fuel_price_per_l must be > 0", a.ID)
		}
		if a.LandingFeePerTon <= 0 {
			return fmt.Errorf("invalid config: airport %d landing_fee_per_ton must be > 0", a.ID)
		}
		if a.ParkingFeePerHour <= 0 {
			return fmt.Errorf("invalid config: airport %d parking_fee_per_hour must be > 0", a.ID)
		}
	}

	o := c.Gameplay.Orders
	if o.MinWeight > o.MaxWeight {
		return fmt.Errorf("invalid config: orders.max_weight %.1f is below orders.min_weight %.1f", o.MaxWeight, o.MinWeight)
	}
	return nil
}

// Parse decodes a YAML document, applies defaults, and validates it.
func Parse(data []byte) (*WorldConfig, error) {
	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses a config file.
func Load(path string) (*WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
