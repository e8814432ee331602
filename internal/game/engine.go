package game

import (
	"fmt"

	"cargoways/internal/models"
	"cargoways/internal/rand"
)

const (
	// DefaultRestockCycle is how often airports regenerate their stock.
	DefaultRestockCycle models.GameTime = models.DefaultMaxDeadlineHours
	// DefaultFuelInterval is how often fuel prices re-roll.
	DefaultFuelInterval models.GameTime = 6
	// DailyStatsInterval is the end-of-day report cadence.
	DailyStatsInterval models.GameTime = 24
)

// Engine owns all mutable world state and drives the simulation via
// scheduled events. It is single-threaded: callers needing concurrent access
// wrap it in their own guard.
type Engine struct {
	Time           models.GameTime         `json:"time"`
	Map            *models.Map             `json:"map"`
	Player         *models.Player          `json:"player"`
	ArrivalTimes   map[int]models.GameTime `json:"arrival_times"`
	Events         *EventQueue             `json:"events"`
	DailyIncome    float64                 `json:"daily_income"`
	DailyExpenses  float64                 `json:"daily_expenses"`
	Stats          []models.DailyStats     `json:"stats"`
	RestockCycle   models.GameTime         `json:"restock_cycle"`
	FuelInterval   models.GameTime         `json:"fuel_interval"`
	NextPlaneID    int                     `json:"next_plane_id"`
	GenerateOrders bool                    `json:"generate_orders"`

	log []string
}

// New initializes a game with numAirports airports (<= 0 lets the seed
// decide), seeded randomness, and the player's starting cash.
func New(seed uint64, numAirports int, startingCash float64) *Engine {
	m := models.GenerateMap(seed, numAirports, models.DefaultOrderParams())
	m.RestockAll()

	player := models.NewPlayer(startingCash, m)

	e := &Engine{
		Map:            m,
		Player:         player,
		ArrivalTimes:   map[int]models.GameTime{},
		Events:         NewEventQueue(),
		Stats:          []models.DailyStats{},
		RestockCycle:   DefaultRestockCycle,
		FuelInterval:   DefaultFuelInterval,
		NextPlaneID:    len(player.Fleet),
		GenerateOrders: true,
	}
	for _, plane := range player.Fleet {
		e.ArrivalTimes[plane.ID] = 0
	}

	e.Events.Schedule(e.RestockCycle, EventRestock, nil)
	e.Events.Schedule(e.FuelInterval, EventFuelPriceUpdate, nil)
	e.Events.Schedule(DailyStatsInterval, EventDailyStats, nil)

	return e
}

// Fleet is the authoritative airplane store.
func (e *Engine) Fleet() []*models.Airplane {
	return e.Player.Fleet
}

func (e *Engine) findPlane(id int) (*models.Airplane, error) {
	if plane := e.Player.FindPlane(id); plane != nil {
		return plane, nil
	}
	return nil, models.PlaneIDInvalidError{ID: id}
}

// airportOf resolves the airport a plane is sitting at by exact coordinate
// match.
func (e *Engine) airportOf(plane *models.Airplane) (*models.Airport, error) {
	if a := e.Map.AirportAt(plane.Location); a != nil {
		return a, nil
	}
	return nil, models.PlaneNotAtAirportError{PlaneID: plane.ID}
}

func (e *Engine) logf(format string, args ...any) {
	e.log = append(e.log, fmt.Sprintf(format, args...))
}

// DrainLog returns and clears the accumulated event messages.
func (e *Engine) DrainLog() []string {
	out := e.log
	e.log = nil
	return out
}

// BuyPlane purchases a model (case-insensitive name) and parks the new
// plane, fueled up, at the given airport.
func (e *Engine) BuyPlane(modelName string, airportID int) error {
	model, err := models.ParseModel(modelName)
	if err != nil {
		return err
	}
	airport := e.Map.ByID(airportID)
	if airport == nil {
		return models.AirportIDInvalidError{ID: airportID}
	}

	specs := model.Specs()
	if e.Player.Cash < specs.PurchasePrice {
		return models.InsufficientFundsError{Have: e.Player.Cash, Need: specs.PurchasePrice}
	}
	if airport.RunwayLength < specs.MinRunwayLength {
		return models.RunwayTooShortError{Required: specs.MinRunwayLength, Available: airport.RunwayLength}
	}

	e.Player.Cash -= specs.PurchasePrice
	e.DailyExpenses += specs.PurchasePrice

	plane := models.NewAirplane(e.NextPlaneID, model, airport.Location)
	e.NextPlaneID++
	e.Player.AddPlane(plane)
	e.ArrivalTimes[plane.ID] = e.Time

	e.logf("Bought %s (plane %d) at %s", model, plane.ID, airport.Name)
	return nil
}

// SellPlane removes a plane from the fleet, refunding 60% of its purchase
// price. Any of its still-queued events are dropped when they fire.
func (e *Engine) SellPlane(planeID int) (float64, error) {
	plane, refund, err := e.Player.RemovePlane(planeID)
	if err != nil {
		return 0, err
	}
	delete(e.ArrivalTimes, planeID)
	e.logf("Sold %s (plane %d) for $%.2f", plane.Model, plane.ID, refund)
	return refund, nil
}

// LoadOrder moves one order from the plane's airport into its manifest and
// busies the plane for an hour.
func (e *Engine) LoadOrder(orderID, planeID int) error {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return err
	}
	if plane.Status.Tag != models.StatusParked {
		return models.PlaneNotReadyError{Status: plane.Status}
	}
	airport, err := e.airportOf(plane)
	if err != nil {
		return err
	}
	if err := airport.LoadOrder(orderID, plane); err != nil {
		return err
	}
	e.scheduleForPlane(e.Time+1, EventLoading, planeID)
	return nil
}

// LoadOrders loads several orders in sequence, stopping at the first
// failure. Already-loaded orders stay aboard.
func (e *Engine) LoadOrders(orderIDs []int, planeID int) error {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return err
	}
	if plane.Status.Tag != models.StatusParked {
		return models.PlaneNotReadyError{Status: plane.Status}
	}
	airport, err := e.airportOf(plane)
	if err != nil {
		return err
	}
	loadErr := airport.LoadOrders(orderIDs, plane)
	if plane.Status.Tag == models.StatusLoading {
		e.scheduleForPlane(e.Time+1, EventLoading, planeID)
	}
	return loadErr
}

// UnloadOrder takes one order off the plane. At its destination before the
// deadline it pays out; expired it is discarded; anywhere else it returns to
// the airport's stock.
func (e *Engine) UnloadOrder(orderID, planeID int) error {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return err
	}
	if plane.Status.Tag != models.StatusParked {
		return models.PlaneNotReadyError{Status: plane.Status}
	}
	airport, err := e.airportOf(plane)
	if err != nil {
		return err
	}
	delivery, err := plane.UnloadOrder(orderID)
	if err != nil {
		return err
	}
	e.settleUnload(delivery, airport)
	e.scheduleForPlane(e.Time+1, EventLoading, planeID)
	return nil
}

// UnloadOrders unloads the listed orders, stopping at the first bad id.
func (e *Engine) UnloadOrders(orderIDs []int, planeID int) error {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return err
	}
	if plane.Status.Tag != models.StatusParked {
		return models.PlaneNotReadyError{Status: plane.Status}
	}
	airport, err := e.airportOf(plane)
	if err != nil {
		return err
	}
	var unloadErr error
	for _, id := range orderIDs {
		delivery, err := plane.UnloadOrder(id)
		if err != nil {
			unloadErr = err
			break
		}
		e.settleUnload(delivery, airport)
	}
	if plane.Status.Tag == models.StatusUnloading {
		e.scheduleForPlane(e.Time+1, EventLoading, planeID)
	}
	return unloadErr
}

// UnloadAll empties the plane's manifest.
func (e *Engine) UnloadAll(planeID int) error {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return err
	}
	if plane.Status.Tag != models.StatusParked {
		return models.PlaneNotReadyError{Status: plane.Status}
	}
	airport, err := e.airportOf(plane)
	if err != nil {
		return err
	}
	if len(plane.Manifest) == 0 {
		return models.ErrNoCargo
	}
	for _, delivery := range plane.UnloadAll() {
		e.settleUnload(delivery, airport)
	}
	e.scheduleForPlane(e.Time+1, EventLoading, planeID)
	return nil
}

func (e *Engine) settleUnload(delivery models.Order, airport *models.Airport) {
	if delivery.DestinationID == airport.ID {
		if delivery.Deadline != 0 {
			e.Player.Cash += delivery.Value
			e.DailyIncome += delivery.Value
			e.Player.RecordDelivery()
			e.logf("Successfully delivered order %d", delivery.ID)
		} else {
			e.logf("Order %d: deadline expired", delivery.ID)
		}
		return
	}
	// not the destination, so the order goes into stock here
	airport.Orders = append(airport.Orders, delivery)
	e.logf("Order %d being stored at airport %d", delivery.ID, airport.ID)
}

// DepartPlane validates the trip, charges parking for the stay, burns the
// fuel, and puts the plane in transit. Nothing changes when validation
// fails.
func (e *Engine) DepartPlane(planeID, destinationID int) error {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return err
	}
	origin, err := e.airportOf(plane)
	if err != nil {
		return err
	}
	dest := e.Map.ByID(destinationID)
	if dest == nil {
		return models.AirportIDInvalidError{ID: destinationID}
	}
	if dest.ID == origin.ID {
		return models.ErrSameAirport
	}
	if plane.Status.Tag != models.StatusParked {
		return models.PlaneNotReadyError{Status: plane.Status}
	}
	if err := plane.CanFlyTo(dest); err != nil {
		return err
	}

	parkedHours := float64(e.Time - e.ArrivalTimes[planeID])
	parkingFee := origin.ParkingFee * parkedHours

	originCoord := plane.Location
	flightHours, err := plane.ConsumeFlightFuel(dest)
	if err != nil {
		return err
	}

	e.Player.Cash -= parkingFee
	e.DailyExpenses += parkingFee

	plane.Status = models.InTransit(flightHours, destinationID, originCoord, flightHours)
	e.scheduleForPlane(e.Time+1, EventFlightProgress, planeID)
	return nil
}

// RefuelPlane fills the tank at the airport's fuel price.
func (e *Engine) RefuelPlane(planeID int) error {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return err
	}
	if plane.Status.Tag != models.StatusParked {
		return models.PlaneNotReadyError{Status: plane.Status}
	}
	airport, err := e.airportOf(plane)
	if err != nil {
		return err
	}

	fee := airport.FuelingFee(plane)
	plane.Refuel()
	e.Player.Cash -= fee
	e.DailyExpenses += fee

	e.scheduleForPlane(e.Time+1, EventRefuelComplete, planeID)
	return nil
}

// MaintenanceOnAirplane services a plane for an hour at the model's fixed
// operating cost. Broken planes must pass through here before departing
// again.
func (e *Engine) MaintenanceOnAirplane(planeID int) error {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return err
	}
	if plane.Status.Tag != models.StatusParked && plane.Status.Tag != models.StatusBroken {
		return models.PlaneNotReadyError{Status: plane.Status}
	}
	if _, err := e.airportOf(plane); err != nil {
		return err
	}

	cost := plane.Specs.OperatingCost
	e.Player.Cash -= cost
	e.DailyExpenses += cost
	plane.Status = models.Maintenance()

	e.scheduleForPlane(e.Time+1, EventMaintenanceComplete, planeID)
	return nil
}

// HoldPlane keeps a plane where it is. The verb is reserved for dispatch
// plans; today it only validates the id.
func (e *Engine) HoldPlane(planeID int) error {
	_, err := e.findPlane(planeID)
	return err
}

// PlaneCanFlyTo reports whether the plane could reach and land at the
// destination right now.
func (e *Engine) PlaneCanFlyTo(planeID, destID int) (bool, error) {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return false, err
	}
	dest := e.Map.ByID(destID)
	if dest == nil {
		return false, models.AirportIDInvalidError{ID: destID}
	}
	return plane.CanFlyTo(dest) == nil, nil
}

// Reachability is the explained variant of PlaneCanFlyTo.
type Reachability struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

func (e *Engine) PlaneReachability(planeID, destID int) (Reachability, error) {
	plane, err := e.findPlane(planeID)
	if err != nil {
		return Reachability{}, err
	}
	dest := e.Map.ByID(destID)
	if dest == nil {
		return Reachability{}, models.AirportIDInvalidError{ID: destID}
	}
	if err := plane.CanFlyTo(dest); err != nil {
		return Reachability{OK: false, Reason: err.Error()}, nil
	}
	return Reachability{OK: true}, nil
}

func (e *Engine) scheduleForPlane(t models.GameTime, kind EventKind, planeID int) {
	id := planeID
	e.Events.Schedule(t, kind, &id)
}

// Advance runs the simulation forward. Each hour processes due events in
// (time, insertion) order, then ticks order deadlines. Idle hours still
// pass: the clock always reaches the target.
func (e *Engine) Advance(hours models.GameTime) {
	for h := models.GameTime(0); h < hours; h++ {
		target := e.Time + 1
		for {
			next := e.Events.Peek()
			if next == nil || next.Time > target {
				break
			}
			ev := e.Events.Pop()
			e.Time = ev.Time
			e.handleEvent(ev)
		}
		e.Time = target
		e.tickDeadlines()
	}
}

func (e *Engine) handleEvent(ev *ScheduledEvent) {
	switch ev.Kind {
	case EventRestock:
		if e.GenerateOrders {
			e.Map.RestockAll()
		}
		e.Events.Schedule(ev.Time+e.RestockCycle, EventRestock, nil)

	case EventFuelPriceUpdate:
		for _, a := range e.Map.Airports {
			rng := rand.New(e.Map.Seed + uint64(e.Time) + uint64(a.ID))
			a.FuelPrice = rng.FloatRange(0.5, 2.5)
		}
		e.Events.Schedule(ev.Time+e.FuelInterval, EventFuelPriceUpdate, nil)

	case EventLoading, EventRefuelComplete, EventMaintenanceComplete:
		if plane := e.Player.FindPlane(*ev.Plane); plane != nil {
			plane.Status = models.Parked()
		}

	case EventFlightProgress:
		e.progressFlight(*ev.Plane)

	case EventDailyStats:
		e.Stats = append(e.Stats, models.DailyStats{
			Day:             uint64(e.Time / 24),
			Income:          e.DailyIncome,
			Expenses:        e.DailyExpenses,
			NetCash:         e.Player.Cash,
			FleetSize:       e.Player.FleetSize,
			TotalDeliveries: e.Player.OrdersDelivered,
		})
		e.DailyIncome = 0
		e.DailyExpenses = 0
		e.Events.Schedule(ev.Time+DailyStatsInterval, EventDailyStats, nil)
	}
}

// progressFlight advances one hour of transit. Intermediate hours move the
// plane along the straight line without ever matching an airport coordinate;
// the final hour snaps to the destination, charges the landing fee, and
// parks the plane.
func (e *Engine) progressFlight(planeID int) {
	plane := e.Player.FindPlane(planeID)
	if plane == nil || plane.Status.Tag != models.StatusInTransit {
		return
	}
	transit := plane.Status.Transit
	dest := e.Map.ByID(transit.Destination)

	if transit.HoursRemaining > 1 {
		elapsed := transit.TotalHours - transit.HoursRemaining + 1
		fraction := float64(elapsed) / float64(transit.TotalHours)
		plane.Location = models.Coordinate{
			X: transit.Origin.X + (dest.Location.X-transit.Origin.X)*fraction,
			Y: transit.Origin.Y + (dest.Location.Y-transit.Origin.Y)*fraction,
		}
		plane.Status = models.InTransit(transit.HoursRemaining-1, transit.Destination, transit.Origin, transit.TotalHours)
		e.scheduleForPlane(e.Time+1, EventFlightProgress, planeID)
		return
	}

	landingFee := dest.AircraftLandingFee(plane)
	e.Player.Cash -= landingFee
	e.DailyExpenses += landingFee

	e.ArrivalTimes[planeID] = e.Time
	plane.Location = dest.Location
	plane.Status = models.Parked()
	e.logf("Plane %d landed at %s", planeID, dest.Name)
}

// tickDeadlines ages every pending and loaded order by one hour. Airport
// stock that already hit zero is dropped; manifest cargo stays aboard so the
// unload rules can judge it.
func (e *Engine) tickDeadlines() {
	e.Map.UpdateDeadlines()
	for _, plane := range e.Player.Fleet {
		for i := range plane.Manifest {
			if plane.Manifest[i].Deadline > 0 {
				plane.Manifest[i].Deadline--
			}
		}
	}
}
