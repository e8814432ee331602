package models

import "testing"

func twoAirportMap(runway0, runway1, separation float64) *Map {
	return NewMapFromAirports(0, []*Airport{
		{ID: 0, Name: "AAA", RunwayLength: runway0, Location: Coordinate{X: 0, Y: 0}},
		{ID: 1, Name: "AAB", RunwayLength: runway1, Location: Coordinate{X: separation, Y: 0}},
	}, DefaultOrderParams())
}

func TestNewPlayerStartsWithOnePlane(t *testing.T) {
	m := GenerateMap(1, 5, DefaultOrderParams())
	p := NewPlayer(1_000_000, m)
	if len(p.Fleet) != 1 || p.FleetSize != 1 {
		t.Fatalf("fleet size %d, want 1", len(p.Fleet))
	}
	if p.Cash != 1_000_000 {
		t.Fatalf("cash %f, want 1000000", p.Cash)
	}
	start := m.Airports[m.ClosestPair()]
	if p.Fleet[0].Location != start.Location {
		t.Fatalf("starter plane at %+v, want closest-pair airport %+v", p.Fleet[0].Location, start.Location)
	}
}

func TestStarterModelCheapestFeasible(t *testing.T) {
	// Big runways, airports close together: every model qualifies, so the
	// cheapest overall wins.
	m := twoAirportMap(5500, 5500, 100)
	p := NewPlayer(0, m)
	if p.Fleet[0].Model != SparrowLight {
		t.Fatalf("starter %s, want SparrowLight", p.Fleet[0].Model)
	}
}

func TestStarterModelSkipsOutOfRange(t *testing.T) {
	// 3000 km apart: SparrowLight (about 1667 km full-tank range) cannot make
	// the hop, so the cheapest model that can is picked.
	m := twoAirportMap(3000, 3000, 3000)
	p := NewPlayer(0, m)
	if p.Fleet[0].Model != FalconJet {
		t.Fatalf("starter %s, want FalconJet", p.Fleet[0].Model)
	}
}

func TestStarterModelFallback(t *testing.T) {
	// Nothing can reach the other airport, so the fallback applies.
	m := twoAirportMap(5500, 5500, 25_000)
	p := NewPlayer(0, m)
	if p.Fleet[0].Model != CometRegional {
		t.Fatalf("starter %s, want CometRegional fallback", p.Fleet[0].Model)
	}
}

func TestRemovePlaneRefunds(t *testing.T) {
	m := twoAirportMap(5500, 5500, 100)
	p := NewPlayer(0, m)
	plane := p.Fleet[0]
	removed, refund, err := p.RemovePlane(plane.ID)
	if err != nil {
		t.Fatalf("sell: %v", err)
	}
	if removed != plane {
		t.Fatalf("removed the wrong plane")
	}
	want := plane.Specs.PurchasePrice * 0.6
	if refund != want || p.Cash != want {
		t.Fatalf("refund %f, want %f", refund, want)
	}
	if p.FleetSize != 0 || len(p.Fleet) != 0 {
		t.Fatalf("fleet not emptied")
	}

	if _, _, err := p.RemovePlane(99); err == nil {
		t.Fatalf("selling a missing plane should fail")
	}
}

func TestRecordDelivery(t *testing.T) {
	p := &Player{}
	p.RecordDelivery()
	p.RecordDelivery()
	if p.OrdersDelivered != 2 {
		t.Fatalf("deliveries %d, want 2", p.OrdersDelivered)
	}
}
