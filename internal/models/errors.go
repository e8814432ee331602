package models

import (
	"errors"
	"fmt"
	"strings"
)

// The engine reports failures through this closed set of error types. Each
// action surfaces the offending values so callers (CLI, HTTP, bindings) can
// render them without string matching.

var (
	ErrNoCargo     = errors.New("No cargo to unload")
	ErrSameAirport = errors.New("Cannot fly to the airport the plane is currently at")
)

type OutOfRangeError struct {
	Distance float64 `json:"distance"`
	Range    float64 `json:"range"`
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("Distance %.2f is outside of the airplane range %.2f", e.Distance, e.Range)
}

type RunwayTooShortError struct {
	Required  float64 `json:"required"`
	Available float64 `json:"available"`
}

func (e RunwayTooShortError) Error() string {
	return fmt.Sprintf("Airplane requires at least %.2f m of runway. Destination has a length of %.2f", e.Required, e.Available)
}

type MaxPayloadReachedError struct {
	CurrentCapacity float64 `json:"current_capacity"`
	MaximumCapacity float64 `json:"maximum_capacity"`
	AddedWeight     float64 `json:"added_weight"`
}

func (e MaxPayloadReachedError) Error() string {
	return fmt.Sprintf("Cannot load order of weight %.2f. Airplane capacity: %.2f. Current Capacity: %.2f",
		e.AddedWeight, e.MaximumCapacity, e.CurrentCapacity)
}

type OrderIDInvalidError struct {
	ID int `json:"id"`
}

func (e OrderIDInvalidError) Error() string {
	return fmt.Sprintf("Order with id %d does not exist", e.ID)
}

type PlaneIDInvalidError struct {
	ID int `json:"id"`
}

func (e PlaneIDInvalidError) Error() string {
	return fmt.Sprintf("Plane with id %d does not exist", e.ID)
}

type AirportIDInvalidError struct {
	ID int `json:"id"`
}

func (e AirportIDInvalidError) Error() string {
	return fmt.Sprintf("Airport with id %d does not exist", e.ID)
}

type AirportLocationInvalidError struct {
	Location Coordinate `json:"location"`
}

func (e AirportLocationInvalidError) Error() string {
	return fmt.Sprintf("No airport found at coordinate (%.2f, %.2f)", e.Location.X, e.Location.Y)
}

type PlaneNotAtAirportError struct {
	PlaneID int `json:"plane_id"`
}

func (e PlaneNotAtAirportError) Error() string {
	return fmt.Sprintf("Plane %d is not located at any known airport", e.PlaneID)
}

type PlaneNotReadyError struct {
	Status AirplaneStatus `json:"status"`
}

func (e PlaneNotReadyError) Error() string {
	return fmt.Sprintf("Airplane not ready. Current status: %s", e.Status.Tag)
}

type InsufficientFundsError struct {
	Have float64 `json:"have"`
	Need float64 `json:"need"`
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("Insufficient funds. Need: $%.2f. Currently have: $%.2f", e.Need, e.Have)
}

type InsufficientFuelError struct {
	Have float64 `json:"have"`
	Need float64 `json:"need"`
}

func (e InsufficientFuelError) Error() string {
	return fmt.Sprintf("Insufficient fuel. Need: %.2fL. Currently have: %.2fL", e.Need, e.Have)
}

type UnknownModelError struct {
	Input      string `json:"input"`
	Suggestion string `json:"suggestion,omitempty"`
}

func (e UnknownModelError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("`%s` doesn't exist. Did you mean `%s`?", e.Input, e.Suggestion)
	}
	return fmt.Sprintf("`%s` doesn't exist.", e.Input)
}

// suggestModel returns the closest model name to input if its edit distance
// is at most 3, otherwise the empty string.
func suggestModel(input string) string {
	lower := strings.ToLower(input)
	best := ""
	bestDist := -1
	for _, m := range Models {
		d := levenshtein(lower, strings.ToLower(string(m)))
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = string(m)
		}
	}
	if bestDist >= 0 && bestDist <= 3 {
		return best
	}
	return ""
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
