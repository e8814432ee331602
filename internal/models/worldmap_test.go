package models

import "testing"

func TestGenerateMapDeterministic(t *testing.T) {
	a := GenerateMap(1, 5, DefaultOrderParams())
	b := GenerateMap(1, 5, DefaultOrderParams())
	if a.NumAirports != 5 || b.NumAirports != 5 {
		t.Fatalf("airport counts %d/%d, want 5", a.NumAirports, b.NumAirports)
	}
	for i := range a.Airports {
		if a.Airports[i].Location != b.Airports[i].Location {
			t.Fatalf("airport %d locations differ", i)
		}
		if a.Airports[i].RunwayLength != b.Airports[i].RunwayLength {
			t.Fatalf("airport %d runways differ", i)
		}
	}
}

func TestGenerateMapDrawsAirportCount(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		m := GenerateMap(seed, 0, DefaultOrderParams())
		if m.NumAirports < 4 || m.NumAirports > 10 {
			t.Fatalf("seed %d: %d airports outside [4, 10]", seed, m.NumAirports)
		}
	}
}

func TestGenerateMapCoordinateBounds(t *testing.T) {
	m := GenerateMap(3, 8, DefaultOrderParams())
	for _, a := range m.Airports {
		if a.Location.X < 0 || a.Location.X > 10_000 || a.Location.Y < 0 || a.Location.Y > 10_000 {
			t.Fatalf("airport %d at %+v outside the world plane", a.ID, a.Location)
		}
	}
}

func TestRestockAllGivesEveryAirportOrders(t *testing.T) {
	m := GenerateMap(1, 5, DefaultOrderParams())
	m.RestockAll()
	seen := map[int]bool{}
	for _, a := range m.Airports {
		if len(a.Orders) == 0 {
			t.Fatalf("airport %d has no orders after restock", a.ID)
		}
		for _, o := range a.Orders {
			if seen[o.ID] {
				t.Fatalf("order id %d assigned twice", o.ID)
			}
			seen[o.ID] = true
			if o.DestinationID == o.OriginID {
				t.Fatalf("order %d delivers to its origin", o.ID)
			}
		}
	}
	if m.NextOrderID != len(seen) {
		t.Fatalf("next order id %d, want %d", m.NextOrderID, len(seen))
	}
}

func TestAirportAt(t *testing.T) {
	m := GenerateMap(1, 5, DefaultOrderParams())
	for _, a := range m.Airports {
		if got := m.AirportAt(a.Location); got != a {
			t.Fatalf("AirportAt(%+v) did not find airport %d", a.Location, a.ID)
		}
	}
	if m.AirportAt(Coordinate{X: -1, Y: -1}) != nil {
		t.Fatalf("AirportAt found an airport off the map")
	}
}

func TestClosestPair(t *testing.T) {
	m := NewMapFromAirports(0, []*Airport{
		{ID: 0, Location: Coordinate{X: 0, Y: 0}},
		{ID: 1, Location: Coordinate{X: 5000, Y: 5000}},
		{ID: 2, Location: Coordinate{X: 5100, Y: 5000}},
	}, DefaultOrderParams())
	if got := m.ClosestPair(); got != 1 {
		t.Fatalf("closest pair index %d, want 1", got)
	}
}
