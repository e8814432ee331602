package game

import (
	"errors"
	"fmt"

	"cargoways/internal/commands"
	"cargoways/internal/models"
)

// ErrExit is returned by Execute for the EXIT command so interactive front
// ends can end their loop.
var ErrExit = errors.New("exit")

// Execute parses and applies one command line, returning any output a SHOW
// verb produced. Executing "ADVANCE h" is equivalent to calling Advance(h)
// directly. LOAD <name> replaces the receiver's state with the saved game.
func (e *Engine) Execute(line string) (string, error) {
	cmd, err := commands.Parse(line)
	if err != nil {
		return "", err
	}
	return e.Apply(cmd)
}

// Apply runs an already-parsed command.
func (e *Engine) Apply(cmd commands.Command) (string, error) {
	switch c := cmd.(type) {
	case commands.ShowAirports:
		return e.RenderAirports(c.WithOrders), nil
	case commands.ShowAirport:
		return e.RenderAirport(c.ID, c.WithOrders)
	case commands.ShowPlanes:
		return e.RenderPlanes()
	case commands.ShowPlane:
		return e.RenderPlane(c.ID)
	case commands.ShowDistances:
		return e.RenderDistances(c.Plane)
	case commands.ShowModels:
		return e.RenderModels(), nil
	case commands.ShowCash:
		return e.RenderCash(), nil
	case commands.ShowTime:
		return e.RenderTime(), nil
	case commands.ShowStats:
		return e.RenderStats(), nil

	case commands.BuyPlane:
		return "", e.BuyPlane(c.Model, c.Airport)
	case commands.LoadOrder:
		return "", e.LoadOrder(c.Order, c.Plane)
	case commands.LoadOrders:
		return "", e.LoadOrders(c.Orders, c.Plane)
	case commands.UnloadOrder:
		return "", e.UnloadOrder(c.Order, c.Plane)
	case commands.UnloadOrders:
		return "", e.UnloadOrders(c.Orders, c.Plane)
	case commands.UnloadAll:
		return "", e.UnloadAll(c.Plane)
	case commands.Refuel:
		return "", e.RefuelPlane(c.Plane)
	case commands.Maintenance:
		return "", e.MaintenanceOnAirplane(c.Plane)
	case commands.DepartPlane:
		return "", e.DepartPlane(c.Plane, c.Dest)
	case commands.HoldPlane:
		return "", e.HoldPlane(c.Plane)

	case commands.Advance:
		e.Advance(models.GameTime(c.Hours))
		return "", nil

	case commands.SaveGame:
		return "", e.SaveGame(c.Name)
	case commands.LoadGame:
		loaded, err := LoadGame(c.Name)
		if err != nil {
			return "", err
		}
		*e = *loaded
		return "", nil

	case commands.Exit:
		return "", ErrExit
	}
	return "", fmt.Errorf("unhandled command %T", cmd)
}
