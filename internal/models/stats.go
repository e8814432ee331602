package models

// DailyStats is one row of the end-of-day report.
type DailyStats struct {
	Day             uint64  `json:"day"`
	Income          float64 `json:"income"`
	Expenses        float64 `json:"expenses"`
	NetCash         float64 `json:"net_cash"`
	FleetSize       int     `json:"fleet_size"`
	TotalDeliveries int     `json:"total_deliveries"`
}
