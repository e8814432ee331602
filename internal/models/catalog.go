package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AirplaneModel names one of the eight airframes the player can buy.
type AirplaneModel string

const (
	SparrowLight  AirplaneModel = "SparrowLight"  // small prop plane
	FalconJet     AirplaneModel = "FalconJet"     // light biz jet
	CometRegional AirplaneModel = "CometRegional" // regional turbofan
	Atlas         AirplaneModel = "Atlas"         // narrow-body jet
	TitanHeavy    AirplaneModel = "TitanHeavy"    // wide-body freighter
	Goliath       AirplaneModel = "Goliath"       // super-heavy lift
	Zephyr        AirplaneModel = "Zephyr"        // long-range twin-aisle
	Lightning     AirplaneModel = "Lightning"     // supersonic small jet
)

// Models lists every model in catalog order.
var Models = []AirplaneModel{
	SparrowLight,
	FalconJet,
	CometRegional,
	Atlas,
	TitanHeavy,
	Goliath,
	Zephyr,
	Lightning,
}

// AirplaneSpecs is the fixed performance and economics record for a model.
type AirplaneSpecs struct {
	// Max take-off weight (kg)
	MTOW float64 `json:"mtow"`
	// Cruise speed (km/h)
	CruiseSpeed float64 `json:"cruise_speed"`
	// Fuel tank capacity (liters)
	FuelCapacity float64 `json:"fuel_capacity"`
	// Fuel burn rate (liters per hour)
	FuelConsumption float64 `json:"fuel_consumption"`
	// Operating cost ($ per hour)
	OperatingCost float64 `json:"operating_cost"`
	// Cargo payload capacity (kg)
	PayloadCapacity float64 `json:"payload_capacity"`
	// Purchase price
	PurchasePrice float64 `json:"purchase_price"`
	// Shortest runway the plane can use (m)
	MinRunwayLength float64 `json:"min_runway_length"`
}

var specTable = map[AirplaneModel]AirplaneSpecs{
	SparrowLight: {
		MTOW:            5_000,
		CruiseSpeed:     250,
		FuelCapacity:    200,
		FuelConsumption: 30,
		OperatingCost:   300,
		PayloadCapacity: 500,
		PurchasePrice:   200_000,
	},
	FalconJet: {
		MTOW:            8_000,
		CruiseSpeed:     800,
		FuelCapacity:    2_000,
		FuelConsumption: 250,
		OperatingCost:   1_500,
		PayloadCapacity: 1_500,
		PurchasePrice:   1_500_000,
	},
	CometRegional: {
		MTOW:            20_000,
		CruiseSpeed:     700,
		FuelCapacity:    5_000,
		FuelConsumption: 600,
		OperatingCost:   3_000,
		PayloadCapacity: 5_000,
		PurchasePrice:   10_000_000,
	},
	Atlas: {
		MTOW:            40_000,
		CruiseSpeed:     750,
		FuelCapacity:    12_000,
		FuelConsumption: 1_500,
		OperatingCost:   6_000,
		PayloadCapacity: 15_000,
		PurchasePrice:   30_000_000,
	},
	TitanHeavy: {
		MTOW:            100_000,
		CruiseSpeed:     650,
		FuelCapacity:    20_000,
		FuelConsumption: 3_000,
		OperatingCost:   10_000,
		PayloadCapacity: 50_000,
		PurchasePrice:   60_000_000,
	},
	Goliath: {
		MTOW:            200_000,
		CruiseSpeed:     550,
		FuelCapacity:    40_000,
		FuelConsumption: 6_000,
		OperatingCost:   20_000,
		PayloadCapacity: 100_000,
		PurchasePrice:   120_000_000,
	},
	Zephyr: {
		MTOW:            50_000,
		CruiseSpeed:     900,
		FuelCapacity:    25_000,
		FuelConsumption: 1_200,
		OperatingCost:   8_000,
		PayloadCapacity: 25_000,
		PurchasePrice:   50_000_000,
	},
	Lightning: {
		MTOW:            15_000,
		CruiseSpeed:     1_800,
		FuelCapacity:    5_000,
		FuelConsumption: 1_000,
		OperatingCost:   12_000,
		PayloadCapacity: 2_000,
		PurchasePrice:   80_000_000,
	},
}

// Specs returns the spec record for the model. The runway requirement is the
// longer of the takeoff and landing rolls: takeoff grows with weight and
// cruise speed, landing with cruise speed alone.
func (m AirplaneModel) Specs() AirplaneSpecs {
	s := specTable[m]
	takeoff := s.MTOW/1000.0*20.0 + s.CruiseSpeed*1.23
	landing := s.CruiseSpeed * 1.02
	s.MinRunwayLength = max(takeoff, landing)
	return s
}

// ParseModel resolves a case-insensitive model name, suggesting the nearest
// catalog name when the input is close to one.
func ParseModel(name string) (AirplaneModel, error) {
	for _, m := range Models {
		if strings.EqualFold(string(m), name) {
			return m, nil
		}
	}
	return "", UnknownModelError{Input: name, Suggestion: suggestModel(name)}
}

// StatusTag labels an airplane's state.
type StatusTag string

const (
	StatusParked      StatusTag = "Parked"
	StatusLoading     StatusTag = "Loading"
	StatusUnloading   StatusTag = "Unloading"
	StatusRefueling   StatusTag = "Refueling"
	StatusMaintenance StatusTag = "Maintenance"
	StatusInTransit   StatusTag = "InTransit"
	StatusBroken      StatusTag = "Broken"
)

// TransitInfo is the payload of an InTransit status.
type TransitInfo struct {
	HoursRemaining GameTime   `json:"hours_remaining"`
	Destination    int        `json:"destination"`
	Origin         Coordinate `json:"origin"`
	TotalHours     GameTime   `json:"total_hours"`
}

// AirplaneStatus is a tagged variant: every state but InTransit is nullary.
type AirplaneStatus struct {
	Tag     StatusTag
	Transit *TransitInfo
}

func Parked() AirplaneStatus      { return AirplaneStatus{Tag: StatusParked} }
func Loading() AirplaneStatus     { return AirplaneStatus{Tag: StatusLoading} }
func Unloading() AirplaneStatus   { return AirplaneStatus{Tag: StatusUnloading} }
func Refueling() AirplaneStatus   { return AirplaneStatus{Tag: StatusRefueling} }
func Maintenance() AirplaneStatus { return AirplaneStatus{Tag: StatusMaintenance} }

func InTransit(hoursRemaining GameTime, destination int, origin Coordinate, totalHours GameTime) AirplaneStatus {
	return AirplaneStatus{
		Tag: StatusInTransit,
		Transit: &TransitInfo{
			HoursRemaining: hoursRemaining,
			Destination:    destination,
			Origin:         origin,
			TotalHours:     totalHours,
		},
	}
}

// Nullary states serialize as their bare tag; InTransit carries its payload
// under the tag key, matching the persisted-state contract.
func (s AirplaneStatus) MarshalJSON() ([]byte, error) {
	if s.Tag == StatusInTransit {
		return json.Marshal(map[string]*TransitInfo{string(StatusInTransit): s.Transit})
	}
	return json.Marshal(string(s.Tag))
}

func (s *AirplaneStatus) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch StatusTag(tag) {
		case StatusParked, StatusLoading, StatusUnloading, StatusRefueling, StatusMaintenance, StatusBroken:
			*s = AirplaneStatus{Tag: StatusTag(tag)}
			return nil
		default:
			return fmt.Errorf("unknown airplane status %q", tag)
		}
	}
	var tagged map[string]*TransitInfo
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	info, ok := tagged[string(StatusInTransit)]
	if !ok || info == nil {
		return fmt.Errorf("malformed airplane status %s", string(data))
	}
	*s = AirplaneStatus{Tag: StatusInTransit, Transit: info}
	return nil
}
