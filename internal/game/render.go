package game

import (
	"fmt"
	"strings"

	"cargoways/internal/models"
)

// Text renderers backing the SHOW verbs. They only read state; all output
// is returned so the CLI and bindings decide where it goes.

func daysAndHours(total models.GameTime) string {
	days := total / 24
	hours := total % 24
	switch {
	case days == 0:
		return fmt.Sprintf("%dh", hours)
	case hours == 0:
		return fmt.Sprintf("%dd", days)
	default:
		return fmt.Sprintf("%dd %dh", days, hours)
	}
}

func (e *Engine) renderOrders(b *strings.Builder, orders []models.Order) {
	if len(orders) == 0 {
		b.WriteString("  No pending orders.\n")
		return
	}
	b.WriteString("  Orders:\n")
	for _, o := range orders {
		destName := ""
		if dest := e.Map.ByID(o.DestinationID); dest != nil {
			destName = dest.Name
		}
		fmt.Fprintf(b, "    [%d] %s -> %s | weight: %.1fkg | value: $%.2f | deadline: %s | destination: %d\n",
			o.ID, o.Kind, destName, o.Weight, o.Value, daysAndHours(o.Deadline), o.DestinationID)
	}
}

func (e *Engine) renderAirportLine(b *strings.Builder, a *models.Airport) {
	fmt.Fprintf(b, "ID: %d | %s at (%.2f, %.2f) | Runway: %.0fm | Fuel: $%.2f/L | Parking: $%.2f/hr | Landing Fee: $%.2f/ton\n",
		a.ID, a.Name, a.Location.X, a.Location.Y, a.RunwayLength, a.FuelPrice, a.ParkingFee, a.LandingFee)
}

// RenderAirports summarizes every airport, optionally with its orders.
func (e *Engine) RenderAirports(withOrders bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Airports (%d total):\n", e.Map.NumAirports)
	for _, a := range e.Map.Airports {
		e.renderAirportLine(&b, a)
		if withOrders {
			e.renderOrders(&b, a.Orders)
		}
	}
	return b.String()
}

// RenderAirport summarizes a single airport.
func (e *Engine) RenderAirport(id int, withOrders bool) (string, error) {
	a := e.Map.ByID(id)
	if a == nil {
		return "", models.AirportIDInvalidError{ID: id}
	}
	var b strings.Builder
	e.renderAirportLine(&b, a)
	if withOrders {
		e.renderOrders(&b, a.Orders)
	}
	return b.String(), nil
}

func (e *Engine) renderPlaneLine(b *strings.Builder, p *models.Airplane) error {
	if p.Status.Tag == models.StatusInTransit {
		destName := ""
		if dest := e.Map.ByID(p.Status.Transit.Destination); dest != nil {
			destName = dest.Name
		}
		fmt.Fprintf(b, "ID: %d | %s en-route to airport %s | Location: (%.2f, %.2f) | Fuel: %.2f/%.2fL | Payload: %.2f/%.2fkg | Status: InTransit - arrival in %s\n",
			p.ID, p.Model, destName, p.Location.X, p.Location.Y,
			p.CurrentFuel, p.Specs.FuelCapacity, p.CurrentPayload, p.Specs.PayloadCapacity,
			daysAndHours(p.Status.Transit.HoursRemaining))
		return nil
	}
	airport := e.Map.AirportAt(p.Location)
	if airport == nil {
		return models.AirportLocationInvalidError{Location: p.Location}
	}
	fmt.Fprintf(b, "ID: %d | %s at airport %s (%.2f, %.2f) | Fuel: %.2f/%.2fL | Payload: %.2f/%.2fkg | Status: %s\n",
		p.ID, p.Model, airport.Name, p.Location.X, p.Location.Y,
		p.CurrentFuel, p.Specs.FuelCapacity, p.CurrentPayload, p.Specs.PayloadCapacity, p.Status.Tag)
	return nil
}

// RenderPlanes summarizes the whole fleet.
func (e *Engine) RenderPlanes() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Airplanes (%d total):\n", len(e.Player.Fleet))
	for _, p := range e.Player.Fleet {
		if err := e.renderPlaneLine(&b, p); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// RenderPlane summarizes a single plane, including its manifest when it is not
// in transit.
func (e *Engine) RenderPlane(id int) (string, error) {
	p, err := e.findPlane(id)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := e.renderPlaneLine(&b, p); err != nil {
		return "", err
	}
	if p.Status.Tag != models.StatusInTransit && len(p.Manifest) > 0 {
		b.WriteString("  Manifest:\n")
		for _, o := range p.Manifest {
			destName := ""
			if dest := e.Map.ByID(o.DestinationID); dest != nil {
				destName = dest.Name
			}
			fmt.Fprintf(&b, "    [%d] %s -> %s | weight: %.1fkg | value: $%.2f | deadline: %s | destination: %d\n",
				o.ID, o.Kind, destName, o.Weight, o.Value, daysAndHours(o.Deadline), o.DestinationID)
		}
	}
	return b.String(), nil
}

// RenderDistances lists every airport with its distance from the plane and
// whether the plane could go there now.
func (e *Engine) RenderDistances(planeID int) (string, error) {
	p, err := e.findPlane(planeID)
	if err != nil {
		return "", err
	}
	if p.Status.Tag == models.StatusInTransit {
		return "Plane currently in transit\n", nil
	}
	var b strings.Builder
	for _, a := range e.Map.Airports {
		distance := p.DistanceTo(a.Location)
		canLand := p.CanFlyTo(a) == nil
		fmt.Fprintf(&b, "ID: %d | %s at (%.2f, %.2f) | Runway: %.0fm | Distance to: %.2fkm | Can land: %t\n",
			a.ID, a.Name, a.Location.X, a.Location.Y, a.RunwayLength, distance, canLand)
	}
	return b.String(), nil
}

// RenderStats formats the lifetime daily report as an aligned table.
func (e *Engine) RenderStats() string {
	headers := []string{"Day", "Income", "Expense", "End Cash", "Fleet", "Delivered"}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	rows := make([][]string, 0, len(e.Stats))
	for _, s := range e.Stats {
		row := []string{
			fmt.Sprintf("%d", s.Day),
			fmt.Sprintf("%.2f", s.Income),
			fmt.Sprintf("%.2f", s.Expenses),
			fmt.Sprintf("%.2f", s.NetCash),
			fmt.Sprintf("%d", s.FleetSize),
			fmt.Sprintf("%d", s.TotalDeliveries),
		}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString(" | ")
		}
		fmt.Fprintf(&b, "%-*s", widths[i], h)
	}
	b.WriteByte('\n')

	total := 3 * (len(headers) - 1)
	for _, w := range widths {
		total += w
	}
	b.WriteString(strings.Repeat("-", total))
	b.WriteByte('\n')

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteString(" | ")
			}
			fmt.Fprintf(&b, "%*s", widths[i], cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderModels formats the airplane catalog.
func (e *Engine) RenderModels() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-16s %8s %8s %7s %8s %10s %12s %12s\n",
		"Model", "Cruise", "Fuel", "Burn", "Oper/h", "Payload", "Price", "Runway")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 16+1+8+1+8+1+7+1+8+1+10+1+12+1+12))
	for _, m := range models.Models {
		s := m.Specs()
		fmt.Fprintf(&b, "%-16s %8.0f %8.0f %7.0f %8.0f %10.0f %12.0f %12.0f\n",
			string(m), s.CruiseSpeed, s.FuelCapacity, s.FuelConsumption,
			s.OperatingCost, s.PayloadCapacity, s.PurchasePrice, s.MinRunwayLength)
	}
	return b.String()
}

// RenderCash formats the player's balance.
func (e *Engine) RenderCash() string {
	return fmt.Sprintf("$%.2f\n", e.Player.Cash)
}

// RenderTime formats the clock as days and hours.
func (e *Engine) RenderTime() string {
	return daysAndHours(e.Time) + "\n"
}
