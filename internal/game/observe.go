package game

import "cargoways/internal/models"

// Observation is the externally visible snapshot of the world. Field names
// and ordering are the contract with bindings and front-ends; two engines in
// the same state produce byte-identical encodings.
type Observation struct {
	Time            models.GameTime     `json:"time"`
	Cash            float64             `json:"cash"`
	Airports        []AirportView       `json:"airports"`
	Planes          []PlaneView         `json:"planes"`
	DailyIncome     float64             `json:"daily_income"`
	DailyExpenses   float64             `json:"daily_expenses"`
	OrdersDelivered int                 `json:"orders_delivered"`
	FleetSize       int                 `json:"fleet_size"`
	Stats           []models.DailyStats `json:"stats"`
}

type AirportView struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Location     models.Coordinate `json:"location"`
	RunwayLength float64           `json:"runway_length"`
	FuelPrice    float64           `json:"fuel_price"`
	LandingFee   float64           `json:"landing_fee"`
	ParkingFee   float64           `json:"parking_fee"`
	OrderIDs     []int             `json:"order_ids"`
}

type PlaneView struct {
	ID               int               `json:"id"`
	Model            string            `json:"model"`
	Status           string            `json:"status"`
	Transit          *TransitView      `json:"in_transit,omitempty"`
	Location         models.Coordinate `json:"location"`
	CurrentFuel      float64           `json:"current_fuel"`
	FuelCapacity     float64           `json:"fuel_capacity"`
	CurrentPayload   float64           `json:"current_payload"`
	PayloadCapacity  float64           `json:"payload_capacity"`
	ManifestIDs      []int             `json:"manifest_ids"`
	CurrentAirportID *int              `json:"current_airport_id,omitempty"`
}

type TransitView struct {
	HoursRemaining models.GameTime `json:"hours_remaining"`
	Destination    int             `json:"destination"`
}

// Observe builds the current snapshot.
func (e *Engine) Observe() Observation {
	airports := make([]AirportView, 0, len(e.Map.Airports))
	for _, a := range e.Map.Airports {
		ids := make([]int, 0, len(a.Orders))
		for _, o := range a.Orders {
			ids = append(ids, o.ID)
		}
		airports = append(airports, AirportView{
			ID:           a.ID,
			Name:         a.Name,
			Location:     a.Location,
			RunwayLength: a.RunwayLength,
			FuelPrice:    a.FuelPrice,
			LandingFee:   a.LandingFee,
			ParkingFee:   a.ParkingFee,
			OrderIDs:     ids,
		})
	}

	planes := make([]PlaneView, 0, len(e.Player.Fleet))
	for _, p := range e.Player.Fleet {
		manifest := make([]int, 0, len(p.Manifest))
		for _, o := range p.Manifest {
			manifest = append(manifest, o.ID)
		}
		view := PlaneView{
			ID:              p.ID,
			Model:           string(p.Model),
			Status:          string(p.Status.Tag),
			Location:        p.Location,
			CurrentFuel:     p.CurrentFuel,
			FuelCapacity:    p.Specs.FuelCapacity,
			CurrentPayload:  p.CurrentPayload,
			PayloadCapacity: p.Specs.PayloadCapacity,
			ManifestIDs:     manifest,
		}
		if p.Status.Tag == models.StatusInTransit {
			view.Transit = &TransitView{
				HoursRemaining: p.Status.Transit.HoursRemaining,
				Destination:    p.Status.Transit.Destination,
			}
		} else if a := e.Map.AirportAt(p.Location); a != nil {
			id := a.ID
			view.CurrentAirportID = &id
		}
		planes = append(planes, view)
	}

	return Observation{
		Time:            e.Time,
		Cash:            e.Player.Cash,
		Airports:        airports,
		Planes:          planes,
		DailyIncome:     e.DailyIncome,
		DailyExpenses:   e.DailyExpenses,
		OrdersDelivered: e.Player.OrdersDelivered,
		FleetSize:       e.Player.FleetSize,
		Stats:           e.Stats,
	}
}

// ModelInfo is one row of the purchasable-model catalog.
type ModelInfo struct {
	Name string `json:"name"`
	models.AirplaneSpecs
}

// ListModels returns the full airplane catalog.
func (e *Engine) ListModels() []ModelInfo {
	out := make([]ModelInfo, 0, len(models.Models))
	for _, m := range models.Models {
		out = append(out, ModelInfo{Name: string(m), AirplaneSpecs: m.Specs()})
	}
	return out
}
