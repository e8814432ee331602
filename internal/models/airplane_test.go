package models

import "testing"

func sampleAirport(runway, x, y float64) *Airport {
	a := GenerateAirport(0, 0, Coordinate{X: x, Y: y})
	a.RunwayLength = runway
	return a
}

func makeOrder(id int, weight, value float64, dest int) Order {
	return Order{
		ID:            id,
		Kind:          CargoElectronics,
		Weight:        weight,
		Value:         value,
		Deadline:      10,
		OriginID:      0,
		DestinationID: dest,
	}
}

func TestModelCount(t *testing.T) {
	if len(Models) != 8 {
		t.Fatalf("got %d models, want 8", len(Models))
	}
}

func TestSpecTable(t *testing.T) {
	sparrow := SparrowLight.Specs()
	if sparrow.MTOW != 5_000 || sparrow.CruiseSpeed != 250 || sparrow.FuelCapacity != 200 ||
		sparrow.FuelConsumption != 30 || sparrow.OperatingCost != 300 ||
		sparrow.PayloadCapacity != 500 || sparrow.PurchasePrice != 200_000 {
		t.Fatalf("unexpected SparrowLight specs: %+v", sparrow)
	}

	titan := TitanHeavy.Specs()
	if titan.MTOW != 100_000 || titan.CruiseSpeed != 650 {
		t.Fatalf("unexpected TitanHeavy specs: %+v", titan)
	}
	if titan.FuelCapacity <= 10_000 || titan.PayloadCapacity <= 40_000 {
		t.Fatalf("TitanHeavy should be a heavy freighter: %+v", titan)
	}
}

func TestMinRunwayDerivation(t *testing.T) {
	sparrow := SparrowLight.Specs()
	if !approxEq(sparrow.MinRunwayLength, 407.5, 1e-2) {
		t.Fatalf("SparrowLight runway %f, want approx 407.5", sparrow.MinRunwayLength)
	}

	// faster needs longer
	if Lightning.Specs().MinRunwayLength <= sparrow.MinRunwayLength {
		t.Fatalf("Lightning should need a longer runway than SparrowLight")
	}
	// heavier needs longer
	if Goliath.Specs().MinRunwayLength <= sparrow.MinRunwayLength {
		t.Fatalf("Goliath should need a longer runway than SparrowLight")
	}
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel("sparrowlight")
	if err != nil || m != SparrowLight {
		t.Fatalf("ParseModel(sparrowlight) = %v, %v", m, err)
	}

	_, err = ParseModel("FalconJot")
	ue, ok := err.(UnknownModelError)
	if !ok {
		t.Fatalf("got %v, want UnknownModelError", err)
	}
	if ue.Suggestion != "FalconJet" {
		t.Fatalf("suggestion %q, want FalconJet", ue.Suggestion)
	}

	_, err = ParseModel("CESSNA")
	ue, ok = err.(UnknownModelError)
	if !ok {
		t.Fatalf("got %v, want UnknownModelError", err)
	}
	if ue.Suggestion != "" {
		t.Fatalf("suggestion %q for a far-off name, want none", ue.Suggestion)
	}
}

func TestNewPlaneFueledAndEmpty(t *testing.T) {
	home := Coordinate{X: 100, Y: 100}
	plane := NewAirplane(42, FalconJet, home)
	if plane.ID != 42 {
		t.Errorf("id %d, want 42", plane.ID)
	}
	if plane.Location != home {
		t.Errorf("location %+v, want %+v", plane.Location, home)
	}
	if plane.CurrentFuel != plane.Specs.FuelCapacity {
		t.Errorf("fuel %f, want full %f", plane.CurrentFuel, plane.Specs.FuelCapacity)
	}
	if plane.CurrentPayload != 0 || len(plane.Manifest) != 0 {
		t.Errorf("new plane is not empty")
	}
	if plane.Status.Tag != StatusParked {
		t.Errorf("status %s, want Parked", plane.Status.Tag)
	}
}

func TestDistanceEnduranceRange(t *testing.T) {
	plane := NewAirplane(0, SparrowLight, Coordinate{})
	if d := plane.DistanceTo(Coordinate{X: 3, Y: 4}); !approxEq(d, 5, 1e-9) {
		t.Errorf("distance %f, want 5", d)
	}
	hours := plane.EnduranceHours()
	if hours <= 0 {
		t.Fatalf("endurance %f, want > 0", hours)
	}
	if !approxEq(plane.MaxRange(), hours*plane.Specs.CruiseSpeed, 1e-9) {
		t.Errorf("range %f, want endurance*speed", plane.MaxRange())
	}
}

func TestCanFlyToErrors(t *testing.T) {
	plane := NewAirplane(0, SparrowLight, Coordinate{})
	plane.CurrentFuel = 1

	far := sampleAirport(10_000, 1000, 0)
	if _, ok := plane.CanFlyTo(far).(OutOfRangeError); !ok {
		t.Fatalf("want OutOfRangeError, got %v", plane.CanFlyTo(far))
	}

	plane.CurrentFuel = plane.Specs.FuelCapacity
	short := sampleAirport(100, 10, 0)
	if _, ok := plane.CanFlyTo(short).(RunwayTooShortError); !ok {
		t.Fatalf("want RunwayTooShortError, got %v", plane.CanFlyTo(short))
	}

	good := sampleAirport(1000, 10, 0)
	if err := plane.CanFlyTo(good); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
}

func TestLoadAndUnload(t *testing.T) {
	plane := NewAirplane(0, Atlas, Coordinate{})

	big := makeOrder(1, plane.Specs.PayloadCapacity+1, 1000, 0)
	if _, ok := plane.LoadOrder(big).(MaxPayloadReachedError); !ok {
		t.Fatalf("want MaxPayloadReachedError")
	}

	small := makeOrder(2, plane.Specs.PayloadCapacity-1, 1000, 0)
	if err := plane.LoadOrder(small); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(plane.Manifest) != 1 || plane.CurrentPayload != small.Weight {
		t.Fatalf("manifest/payload not updated")
	}
	if plane.Status.Tag != StatusLoading {
		t.Fatalf("status %s, want Loading", plane.Status.Tag)
	}

	unloaded := plane.UnloadAll()
	if len(unloaded) != 1 || len(plane.Manifest) != 0 || plane.CurrentPayload != 0 {
		t.Fatalf("unload_all did not drain the plane")
	}
	if plane.Status.Tag != StatusUnloading {
		t.Fatalf("status %s, want Unloading", plane.Status.Tag)
	}
}

func TestUnloadSingleOrder(t *testing.T) {
	plane := NewAirplane(0, Atlas, Coordinate{})
	if err := plane.LoadOrder(makeOrder(1, 100, 10, 1)); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := plane.LoadOrder(makeOrder(2, 200, 10, 1)); err != nil {
		t.Fatalf("load: %v", err)
	}

	o, err := plane.UnloadOrder(1)
	if err != nil || o.ID != 1 {
		t.Fatalf("unload: %v %+v", err, o)
	}
	if plane.CurrentPayload != 200 {
		t.Fatalf("payload %f, want 200", plane.CurrentPayload)
	}
	if _, err := plane.UnloadOrder(99); err == nil {
		t.Fatalf("unloading a missing order should fail")
	}
}

func TestConsumeFlightFuel(t *testing.T) {
	plane := NewAirplane(0, SparrowLight, Coordinate{})
	dest := sampleAirport(1000, 100, 0)

	before := plane.CurrentFuel
	hours, err := plane.ConsumeFlightFuel(dest)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	// 100 km at 250 km/h rounds up to one hour
	if hours != 1 {
		t.Fatalf("hours %d, want 1", hours)
	}
	if plane.CurrentFuel != before-plane.Specs.FuelConsumption {
		t.Fatalf("fuel %f, want one hour burned", plane.CurrentFuel)
	}
	// departure never teleports the plane
	if plane.Location != (Coordinate{}) {
		t.Fatalf("location changed during fuel draw")
	}
}

func TestConsumeFlightFuelInsufficient(t *testing.T) {
	plane := NewAirplane(0, SparrowLight, Coordinate{})
	// enough endurance to be "in range" for a long trip, but only just:
	// ceil rounding pushes the needed fuel past what's in the tank
	plane.CurrentFuel = plane.Specs.FuelConsumption * 1.5
	dest := sampleAirport(1000, 300, 0) // 1.2 h flight, needs 2 whole hours of fuel
	_, err := plane.ConsumeFlightFuel(dest)
	if _, ok := err.(InsufficientFuelError); !ok {
		t.Fatalf("want InsufficientFuelError, got %v", err)
	}
}

func TestRefuel(t *testing.T) {
	plane := NewAirplane(0, FalconJet, Coordinate{})
	plane.CurrentFuel = 0
	plane.Refuel()
	if plane.CurrentFuel != plane.Specs.FuelCapacity {
		t.Fatalf("fuel %f, want full", plane.CurrentFuel)
	}
	if plane.Status.Tag != StatusRefueling {
		t.Fatalf("status %s, want Refueling", plane.Status.Tag)
	}
}
