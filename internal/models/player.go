package models

// Player tracks the company: cash on hand (allowed to go negative), the
// fleet, and cumulative deliveries. The fleet slice here is the single
// authoritative store of airplanes; everything else reads through it.
type Player struct {
	Cash            float64     `json:"cash"`
	FleetSize       int         `json:"fleet_size"`
	Fleet           []*Airplane `json:"fleet"`
	OrdersDelivered int         `json:"orders_delivered"`
}

// NewPlayer creates a player with one starter airplane. The plane is based
// at the airport of the closest pair, and the model is the cheapest one that
// can take off there and reach at least one other airport on full tanks,
// falling back to CometRegional when nothing qualifies.
func NewPlayer(startingCash float64, m *Map) *Player {
	startIdx := m.ClosestPair()
	start := m.Airports[startIdx]

	var best AirplaneModel
	bestPrice := -1.0
	for _, model := range Models {
		specs := model.Specs()
		maxRange := specs.FuelCapacity / specs.FuelConsumption * specs.CruiseSpeed

		if start.RunwayLength < specs.MinRunwayLength {
			continue
		}

		reachable := false
		for _, other := range m.Airports {
			if other.ID == start.ID {
				continue
			}
			dist := start.Location.Distance(other.Location)
			if dist <= maxRange && other.RunwayLength >= specs.MinRunwayLength {
				reachable = true
				break
			}
		}
		if !reachable {
			continue
		}

		if bestPrice < 0 || specs.PurchasePrice < bestPrice {
			bestPrice = specs.PurchasePrice
			best = model
		}
	}
	if bestPrice < 0 {
		best = CometRegional
	}

	return &Player{
		Cash:      startingCash,
		FleetSize: 1,
		Fleet:     []*Airplane{NewAirplane(0, best, start.Location)},
	}
}

// FindPlane returns the airplane with the given id, or nil.
func (p *Player) FindPlane(id int) *Airplane {
	for _, plane := range p.Fleet {
		if plane.ID == id {
			return plane
		}
	}
	return nil
}

// AddPlane appends a plane and keeps the fleet counter in sync.
func (p *Player) AddPlane(plane *Airplane) {
	p.Fleet = append(p.Fleet, plane)
	p.FleetSize = len(p.Fleet)
}

// RemovePlane sells a plane out of the fleet, returning the refund.
func (p *Player) RemovePlane(id int) (*Airplane, float64, error) {
	for i, plane := range p.Fleet {
		if plane.ID == id {
			p.Fleet = append(p.Fleet[:i], p.Fleet[i+1:]...)
			p.FleetSize = len(p.Fleet)
			refund := plane.Specs.PurchasePrice * 0.6
			p.Cash += refund
			return plane, refund, nil
		}
	}
	return nil, 0, PlaneIDInvalidError{ID: id}
}

// RecordDelivery bumps the delivered-orders counter.
func (p *Player) RecordDelivery() {
	p.OrdersDelivered++
}
