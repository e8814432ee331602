package models

import "testing"

func TestAirportNameEncoding(t *testing.T) {
	cases := []struct {
		id   int
		want string
	}{
		{0, "AAA"},
		{1, "AAB"},
		{25, "AAZ"},
		{26, "ABA"},
		{26*26 + 26 + 1, "BBB"},
	}
	for _, c := range cases {
		if got := AirportName(c.id); got != c.want {
			t.Errorf("AirportName(%d) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestGenerateAirportRanges(t *testing.T) {
	for id := 0; id < 50; id++ {
		a := GenerateAirport(99, id, Coordinate{X: 1, Y: 2})
		if a.RunwayLength < 245 || a.RunwayLength > 5500 {
			t.Errorf("airport %d: runway %f outside [245, 5500]", id, a.RunwayLength)
		}
		if a.FuelPrice < 0.5 || a.FuelPrice > 2.5 {
			t.Errorf("airport %d: fuel price %f outside [0.5, 2.5]", id, a.FuelPrice)
		}
		if a.LandingFee < 2.4 || a.LandingFee > 9.0 {
			t.Errorf("airport %d: landing fee %f outside [2.4, 9.0]", id, a.LandingFee)
		}
		if a.ParkingFee < 5 || a.ParkingFee > 50 {
			t.Errorf("airport %d: parking fee %f outside [5, 50]", id, a.ParkingFee)
		}
		if a.Name != AirportName(id) {
			t.Errorf("airport %d: name %q, want %q", id, a.Name, AirportName(id))
		}
	}
}

func TestGenerateAirportDeterministic(t *testing.T) {
	a := GenerateAirport(7, 3, Coordinate{X: 10, Y: 20})
	b := GenerateAirport(7, 3, Coordinate{X: 10, Y: 20})
	if a.RunwayLength != b.RunwayLength || a.FuelPrice != b.FuelPrice ||
		a.LandingFee != b.LandingFee || a.ParkingFee != b.ParkingFee {
		t.Fatalf("same seed and id produced different airports:\n%+v\n%+v", a, b)
	}
}

func TestRestockCountsByRunway(t *testing.T) {
	coords := []Coordinate{{0, 0}, {100, 100}}
	cases := []struct {
		runway float64
		lo, hi int
	}{
		{300, 2, 4},
		{1000, 5, 8},
		{2000, 9, 15},
		{3000, 15, 24},
		{5000, 25, 40},
	}
	for _, c := range cases {
		a := &Airport{ID: 0, RunwayLength: c.runway, Location: coords[0]}
		next := 0
		a.Restock(1, coords, 2, &next, DefaultOrderParams())
		if len(a.Orders) < c.lo || len(a.Orders) > c.hi {
			t.Errorf("runway %.0f: %d orders, want [%d, %d]", c.runway, len(a.Orders), c.lo, c.hi)
		}
		if next != len(a.Orders) {
			t.Errorf("runway %.0f: counter advanced %d, want %d", c.runway, next, len(a.Orders))
		}
	}
}

func TestRestockAssignsSequentialIDs(t *testing.T) {
	coords := []Coordinate{{0, 0}, {100, 100}}
	a := &Airport{ID: 0, RunwayLength: 2000, Location: coords[0]}
	next := 40
	a.Restock(1, coords, 2, &next, DefaultOrderParams())
	for i, o := range a.Orders {
		if o.ID != 40+i {
			t.Fatalf("order %d has id %d, want %d", i, o.ID, 40+i)
		}
		if o.OriginID != 0 {
			t.Fatalf("order %d origin %d, want 0", i, o.OriginID)
		}
	}
}

func TestUpdateDeadlinesDropsExpired(t *testing.T) {
	a := &Airport{Orders: []Order{
		{ID: 0, Deadline: 0},
		{ID: 1, Deadline: 1},
		{ID: 2, Deadline: 5},
	}}
	a.UpdateDeadlines()
	if len(a.Orders) != 2 {
		t.Fatalf("got %d orders after update, want 2", len(a.Orders))
	}
	if a.Orders[0].ID != 1 || a.Orders[0].Deadline != 0 {
		t.Errorf("order 1: deadline %d, want 0", a.Orders[0].Deadline)
	}
	if a.Orders[1].Deadline != 4 {
		t.Errorf("order 2: deadline %d, want 4", a.Orders[1].Deadline)
	}
}

func TestFees(t *testing.T) {
	a := &Airport{LandingFee: 5, FuelPrice: 2}
	plane := NewAirplane(0, TitanHeavy, Coordinate{})
	if got := a.AircraftLandingFee(plane); got != 5*(100_000/1000.0) {
		t.Errorf("landing fee %f, want %f", got, 5*(100_000/1000.0))
	}
	plane.CurrentFuel = plane.Specs.FuelCapacity / 2
	want := 2 * (plane.Specs.FuelCapacity - plane.CurrentFuel)
	if got := a.FuelingFee(plane); got != want {
		t.Errorf("fueling fee %f, want %f", got, want)
	}
}

func TestLoadOrderMovesStock(t *testing.T) {
	a := &Airport{ID: 0, Orders: []Order{{ID: 9, Weight: 100, DestinationID: 1}}}
	plane := NewAirplane(0, Atlas, Coordinate{})
	if err := a.LoadOrder(9, plane); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(a.Orders) != 0 {
		t.Fatalf("order still in stock")
	}
	if len(plane.Manifest) != 1 || plane.Manifest[0].ID != 9 {
		t.Fatalf("order not in manifest")
	}
	if plane.Status.Tag != StatusLoading {
		t.Fatalf("status %s, want Loading", plane.Status.Tag)
	}
}

func TestLoadOrderUnknownID(t *testing.T) {
	a := &Airport{Orders: []Order{}}
	plane := NewAirplane(0, Atlas, Coordinate{})
	err := a.LoadOrder(5, plane)
	if _, ok := err.(OrderIDInvalidError); !ok {
		t.Fatalf("got %v, want OrderIDInvalidError", err)
	}
}

func TestLoadOrderTooHeavyStaysInStock(t *testing.T) {
	plane := NewAirplane(0, SparrowLight, Coordinate{})
	a := &Airport{Orders: []Order{{ID: 1, Weight: plane.Specs.PayloadCapacity + 1}}}
	err := a.LoadOrder(1, plane)
	if _, ok := err.(MaxPayloadReachedError); !ok {
		t.Fatalf("got %v, want MaxPayloadReachedError", err)
	}
	if len(a.Orders) != 1 {
		t.Fatalf("overweight order was removed from stock")
	}
}
