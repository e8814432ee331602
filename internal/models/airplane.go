package models

import "math"

// Airplane is a mobile agent with fuel, payload, a manifest of orders, and a
// status state machine driven by the engine's scheduled events.
type Airplane struct {
	ID             int            `json:"id"`
	Model          AirplaneModel  `json:"model"`
	Specs          AirplaneSpecs  `json:"specs"`
	Status         AirplaneStatus `json:"status"`
	Location       Coordinate     `json:"location"`
	CurrentFuel    float64        `json:"current_fuel"`
	CurrentPayload float64        `json:"current_payload"`
	Manifest       []Order        `json:"manifest"`
}

// NewAirplane creates a fresh airplane, parked and fueled up at home.
func NewAirplane(id int, model AirplaneModel, home Coordinate) *Airplane {
	specs := model.Specs()
	return &Airplane{
		ID:          id,
		Model:       model,
		Specs:       specs,
		Status:      Parked(),
		Location:    home,
		CurrentFuel: specs.FuelCapacity,
		Manifest:    []Order{},
	}
}

func (a *Airplane) DistanceTo(target Coordinate) float64 {
	return a.Location.Distance(target)
}

// EnduranceHours is how long the plane can stay airborne on current fuel.
func (a *Airplane) EnduranceHours() float64 {
	return a.CurrentFuel / a.Specs.FuelConsumption
}

// MaxRange is the distance coverable before refueling (km).
func (a *Airplane) MaxRange() float64 {
	return a.EnduranceHours() * a.Specs.CruiseSpeed
}

// CanFlyTo checks fuel range and the destination runway.
func (a *Airplane) CanFlyTo(airport *Airport) error {
	distance := a.DistanceTo(airport.Location)
	if distance > a.MaxRange() {
		return OutOfRangeError{Distance: distance, Range: a.MaxRange()}
	}
	if airport.RunwayLength < a.Specs.MinRunwayLength {
		return RunwayTooShortError{Required: a.Specs.MinRunwayLength, Available: airport.RunwayLength}
	}
	return nil
}

// LoadOrder adds an order to the manifest if the payload allows it and marks
// the plane Loading.
func (a *Airplane) LoadOrder(order Order) error {
	if a.CurrentPayload+order.Weight > a.Specs.PayloadCapacity {
		return MaxPayloadReachedError{
			CurrentCapacity: a.CurrentPayload,
			MaximumCapacity: a.Specs.PayloadCapacity,
			AddedWeight:     order.Weight,
		}
	}
	a.CurrentPayload += order.Weight
	a.Manifest = append(a.Manifest, order)
	a.Status = Loading()
	return nil
}

// UnloadOrder removes one order by id, marking the plane Unloading.
func (a *Airplane) UnloadOrder(orderID int) (Order, error) {
	for i, o := range a.Manifest {
		if o.ID == orderID {
			a.Manifest = append(a.Manifest[:i], a.Manifest[i+1:]...)
			a.CurrentPayload -= o.Weight
			a.Status = Unloading()
			return o, nil
		}
	}
	return Order{}, OrderIDInvalidError{ID: orderID}
}

// UnloadAll empties the manifest and resets the payload.
func (a *Airplane) UnloadAll() []Order {
	unloaded := a.Manifest
	a.Manifest = []Order{}
	a.CurrentPayload = 0
	a.Status = Unloading()
	return unloaded
}

// ConsumeFlightFuel validates the trip and burns the fuel for it, returning
// the flight duration in whole hours. Flights occupy whole ticks, so the
// hour count is rounded up before the fuel draw.
func (a *Airplane) ConsumeFlightFuel(airport *Airport) (GameTime, error) {
	if err := a.CanFlyTo(airport); err != nil {
		return 0, err
	}
	distance := a.DistanceTo(airport.Location)
	hours := math.Ceil(distance / a.Specs.CruiseSpeed)
	fuelNeeded := hours * a.Specs.FuelConsumption
	if fuelNeeded > a.CurrentFuel {
		return 0, InsufficientFuelError{Have: a.CurrentFuel, Need: fuelNeeded}
	}
	a.CurrentFuel -= fuelNeeded
	return GameTime(hours), nil
}

// Refuel fills the tank and switches status to Refueling.
func (a *Airplane) Refuel() {
	a.CurrentFuel = a.Specs.FuelCapacity
	a.Status = Refueling()
}
