package game

import (
	"cargoways/internal/config"
	"cargoways/internal/models"
)

// FromConfig builds an engine from a declarative world description. Explicit
// airports are used as given; otherwise num_airports worth are generated
// from the seed.
func FromConfig(cfg *config.WorldConfig) (*Engine, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var seed uint64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	var m *models.Map
	if len(cfg.Airports) > 0 {
		airports := make([]*models.Airport, 0, len(cfg.Airports))
		for _, ac := range cfg.Airports {
			airports = append(airports, &models.Airport{
				ID:           ac.ID,
				Name:         ac.Name,
				RunwayLength: ac.RunwayLengthM,
				FuelPrice:    ac.FuelPricePerL,
				LandingFee:   ac.LandingFeePerTon,
				ParkingFee:   ac.ParkingFeePerHour,
				Location:     models.Coordinate{X: ac.Location.X, Y: ac.Location.Y},
				Orders:       []models.Order{},
			})
		}
		m = models.NewMapFromAirports(seed, airports, cfg.Gameplay.Orders)
	} else {
		m = models.GenerateMap(seed, cfg.NumAirports, cfg.Gameplay.Orders)
	}

	generateOrders := cfg.GenerateOrders == nil || *cfg.GenerateOrders
	if generateOrders {
		m.RestockAll()
	}

	player := models.NewPlayer(cfg.StartingCash, m)

	e := &Engine{
		Map:            m,
		Player:         player,
		ArrivalTimes:   map[int]models.GameTime{},
		Events:         NewEventQueue(),
		Stats:          []models.DailyStats{},
		RestockCycle:   models.GameTime(cfg.Gameplay.RestockCycleHours),
		FuelInterval:   models.GameTime(cfg.Gameplay.FuelIntervalHours),
		NextPlaneID:    len(player.Fleet),
		GenerateOrders: generateOrders,
	}
	for _, plane := range player.Fleet {
		e.ArrivalTimes[plane.ID] = 0
	}

	e.Events.Schedule(e.RestockCycle, EventRestock, nil)
	e.Events.Schedule(e.FuelInterval, EventFuelPriceUpdate, nil)
	e.Events.Schedule(DailyStatsInterval, EventDailyStats, nil)

	return e, nil
}
