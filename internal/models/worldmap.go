package models

import "cargoways/internal/rand"

// Map holds the airports of one world along with the seed and tuning used to
// regenerate their stock.
type Map struct {
	Seed        uint64                `json:"seed"`
	NumAirports int                   `json:"num_airports"`
	Airports    []*Airport            `json:"airports"`
	NextOrderID int                   `json:"next_order_id"`
	OrderParams OrderGenerationParams `json:"order_params"`
}

// GenerateMap builds a world from a seed. numAirports <= 0 lets the seed
// decide (4 to 10). Coordinates land on integer points of the [0,10000]^2
// plane so planes can be located by exact match.
func GenerateMap(seed uint64, numAirports int, params OrderGenerationParams) *Map {
	rng := rand.New(seed)

	if numAirports <= 0 {
		numAirports = rng.IntRange(4, 10)
	}

	airports := make([]*Airport, 0, numAirports)
	for i := 0; i < numAirports; i++ {
		x := rng.IntRange(0, 10_000)
		y := rng.IntRange(0, 10_000)
		airports = append(airports, GenerateAirport(seed, i, Coordinate{X: float64(x), Y: float64(y)}))
	}

	return &Map{
		Seed:        seed,
		NumAirports: numAirports,
		Airports:    airports,
		OrderParams: params,
	}
}

// NewMapFromAirports wraps explicitly configured airports.
func NewMapFromAirports(seed uint64, airports []*Airport, params OrderGenerationParams) *Map {
	return &Map{
		Seed:        seed,
		NumAirports: len(airports),
		Airports:    airports,
		OrderParams: params,
	}
}

// Coordinates returns every airport position, indexed by the airport's place
// in the Airports list (the same as its id for generated maps).
func (m *Map) Coordinates() []Coordinate {
	coords := make([]Coordinate, len(m.Airports))
	for i, a := range m.Airports {
		coords[i] = a.Location
	}
	return coords
}

// RestockAll regenerates every airport's order list.
func (m *Map) RestockAll() {
	coords := m.Coordinates()
	for _, a := range m.Airports {
		a.Restock(m.Seed, coords, m.NumAirports, &m.NextOrderID, m.OrderParams)
	}
}

// UpdateDeadlines ticks every pending order down one hour.
func (m *Map) UpdateDeadlines() {
	for _, a := range m.Airports {
		a.UpdateDeadlines()
	}
}

// ByID returns the airport with the given id, or nil.
func (m *Map) ByID(id int) *Airport {
	for _, a := range m.Airports {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// AirportAt resolves a coordinate to the airport sitting on it, or nil.
func (m *Map) AirportAt(c Coordinate) *Airport {
	for _, a := range m.Airports {
		if a.Location == c {
			return a
		}
	}
	return nil
}

// ClosestPair returns the index of the first airport of the closest pair.
func (m *Map) ClosestPair() int {
	best := 0
	bestDist := -1.0
	for i := 0; i < len(m.Airports); i++ {
		for j := i + 1; j < len(m.Airports); j++ {
			d := m.Airports[i].Location.Distance(m.Airports[j].Location)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = i
			}
		}
	}
	return best
}
