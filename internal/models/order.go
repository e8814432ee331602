package models

import (
	"math"

	"cargoways/internal/rand"
	"cargoways/internal/util"
)

// Default tuning values used when no custom configuration is provided.
const (
	DefaultAlpha            = 0.5
	DefaultBeta             = 0.7
	DefaultMaxDeadlineHours = 14 * 24
	DefaultMinWeight        = 100.0
	DefaultMaxWeight        = 20_000.0
)

// OrderGenerationParams controls how random cargo orders are generated.
type OrderGenerationParams struct {
	MaxDeadlineHours GameTime `json:"max_deadline_hours" yaml:"max_deadline_hours"`
	MinWeight        float64  `json:"min_weight" yaml:"min_weight"`
	MaxWeight        float64  `json:"max_weight" yaml:"max_weight"`
	Alpha            float64  `json:"alpha" yaml:"alpha"`
	Beta             float64  `json:"beta" yaml:"beta"`
}

func DefaultOrderParams() OrderGenerationParams {
	return OrderGenerationParams{
		MaxDeadlineHours: DefaultMaxDeadlineHours,
		MinWeight:        DefaultMinWeight,
		MaxWeight:        DefaultMaxWeight,
		Alpha:            DefaultAlpha,
		Beta:             DefaultBeta,
	}
}

// Order is a delivery task sitting at an airport or riding in a manifest.
// Everything but the deadline is fixed at creation.
type Order struct {
	ID            int       `json:"id"`
	Kind          CargoKind `json:"kind"`
	Weight        float64   `json:"weight"`
	Value         float64   `json:"value"`
	Deadline      GameTime  `json:"deadline"`
	OriginID      int       `json:"origin_id"`
	DestinationID int       `json:"destination_id"`
}

// NewOrder generates an order from its own seeded stream. The destination is
// never the origin: a collision is bumped to the next airport.
func NewOrder(seed uint64, orderID, originID int, coords []Coordinate, numAirports int, params OrderGenerationParams) Order {
	rng := rand.New(seed)

	kind := CargoKinds[rng.Intn(len(CargoKinds))]

	maxDeadline := params.MaxDeadlineHours
	if maxDeadline < 1 {
		maxDeadline = 1
	}
	deadline := GameTime(rng.IntRange(1, int(maxDeadline)))

	destinationID := rng.Intn(numAirports)
	if destinationID == originID {
		destinationID = (destinationID + 1) % numAirports
	}

	distance := coords[originID].Distance(coords[destinationID])

	weight := rng.FloatRange(params.MinWeight, params.MaxWeight)

	// Value scales with cargo tier, weight, distance, and urgency: heavy,
	// expensive cargo on a long leg with a tight deadline pays the most.
	minPrice, maxPrice := kind.PriceRange()
	pricePerKg := rng.FloatRange(minPrice, maxPrice)
	base := weight * pricePerKg

	distanceFactor := 1.0 + params.Alpha*(distance/10_000.0)
	normalized := util.Clamp((float64(maxDeadline)-float64(deadline))/float64(maxDeadline), 0.0, 1.0)
	timeFactor := 1.0 + params.Beta*normalized

	value := math.Round(base * distanceFactor * timeFactor)

	return Order{
		ID:            orderID,
		Kind:          kind,
		Weight:        weight,
		Value:         value,
		Deadline:      deadline,
		OriginID:      originID,
		DestinationID: destinationID,
	}
}
