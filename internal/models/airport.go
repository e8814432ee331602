package models

import "cargoways/internal/rand"

// Airport is a node on the map: fixed runway and fee attributes plus the
// queue of orders waiting for pickup.
type Airport struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	RunwayLength float64    `json:"runway_length"` // limits which airplanes can use it (m)
	FuelPrice    float64    `json:"fuel_price"`    // $/L
	LandingFee   float64    `json:"landing_fee"`   // $ per ton of MTOW
	ParkingFee   float64    `json:"parking_fee"`   // $ per hour
	Location     Coordinate `json:"location"`
	Orders       []Order    `json:"orders"`
}

// AirportName derives the three-letter code for an id: 0 -> AAA, 25 -> AAZ,
// 26 -> ABA.
func AirportName(id int) string {
	bytes := []byte{'A', 'A', 'A'}
	for i := 2; i >= 0; i-- {
		bytes[i] = 'A' + byte(id%26)
		id /= 26
	}
	return string(bytes)
}

// GenerateAirport rolls an airport's attributes from the stream derived from
// the world seed and the airport id. The runway length drives the fee tiers:
// bigger airports charge more.
func GenerateAirport(seed uint64, id int, location Coordinate) *Airport {
	rng := rand.New(seed + uint64(id))

	runwayLength := rng.FloatRange(245, 5500)
	fuelPrice := rng.FloatRange(0.5, 2.5)

	var landingFee float64
	switch {
	case runwayLength < 500:
		landingFee = rng.FloatRange(2.4, 3.0)
	case runwayLength < 1500:
		landingFee = rng.FloatRange(3.1, 4.0)
	case runwayLength < 2500:
		landingFee = rng.FloatRange(4.1, 5.0)
	case runwayLength < 3500:
		landingFee = rng.FloatRange(5.1, 6.0)
	default:
		landingFee = rng.FloatRange(6.1, 9.0)
	}

	var parkingFee float64
	switch {
	case runwayLength <= 1000:
		parkingFee = rng.FloatRange(5, 15)
	case runwayLength <= 3000:
		parkingFee = rng.FloatRange(15, 30)
	default:
		parkingFee = rng.FloatRange(30, 50)
	}

	return &Airport{
		ID:           id,
		Name:         AirportName(id),
		RunwayLength: runwayLength,
		FuelPrice:    fuelPrice,
		LandingFee:   landingFee,
		ParkingFee:   parkingFee,
		Location:     location,
		Orders:       []Order{},
	}
}

// Restock clears the order list and generates a fresh, runway-tiered batch.
// Each order claims the next sequential id from the shared counter.
func (a *Airport) Restock(seed uint64, coords []Coordinate, numAirports int, nextOrderID *int, params OrderGenerationParams) {
	rng := rand.New(seed + uint64(a.ID))

	var count int
	switch {
	case a.RunwayLength < 500:
		count = rng.IntRange(2, 4)
	case a.RunwayLength < 1500:
		count = rng.IntRange(5, 8)
	case a.RunwayLength < 2500:
		count = rng.IntRange(9, 15)
	case a.RunwayLength < 3500:
		count = rng.IntRange(15, 24)
	default:
		count = rng.IntRange(25, 40)
	}

	a.Orders = a.Orders[:0]
	for i := 0; i < count; i++ {
		orderID := *nextOrderID
		*nextOrderID++

		orderSeed := seed + uint64(a.ID) + uint64(orderID)
		a.Orders = append(a.Orders, NewOrder(orderSeed, orderID, a.ID, coords, numAirports, params))
	}
}

// UpdateDeadlines drops orders whose deadline already ran out, then ticks the
// remaining deadlines down one hour.
func (a *Airport) UpdateDeadlines() {
	kept := a.Orders[:0]
	for _, o := range a.Orders {
		if o.Deadline != 0 {
			kept = append(kept, o)
		}
	}
	a.Orders = kept
	for i := range a.Orders {
		a.Orders[i].Deadline--
	}
}

// AircraftLandingFee is the landing charge for a given airplane, scaled by
// its max take-off weight in tons.
func (a *Airport) AircraftLandingFee(plane *Airplane) float64 {
	return a.LandingFee * (plane.Specs.MTOW / 1000.0)
}

// FuelingFee is the cost of topping up the given airplane.
func (a *Airport) FuelingFee(plane *Airplane) float64 {
	return a.FuelPrice * (plane.Specs.FuelCapacity - plane.CurrentFuel)
}

// LoadOrder moves one order from the airport's stock into the airplane.
func (a *Airport) LoadOrder(orderID int, plane *Airplane) error {
	for i, o := range a.Orders {
		if o.ID == orderID {
			if err := plane.LoadOrder(o); err != nil {
				return err
			}
			a.Orders = append(a.Orders[:i], a.Orders[i+1:]...)
			return nil
		}
	}
	return OrderIDInvalidError{ID: orderID}
}

// LoadOrders loads several orders, stopping at the first failure.
func (a *Airport) LoadOrders(orderIDs []int, plane *Airplane) error {
	for _, id := range orderIDs {
		if err := a.LoadOrder(id, plane); err != nil {
			return err
		}
	}
	return nil
}
