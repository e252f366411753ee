// Package deliveries defines the problem input value object and the
// sentinel errors shared by the relaxed and strict models.
package deliveries

import (
	"errors"

	"github.com/fuelway/fuelway/ways"
)

// Sentinel errors returned by constructors and the input loader.
var (
	// ErrNonPositiveFuel indicates a state or input with fuel ≤ 0.
	ErrNonPositiveFuel = errors.New("deliveries: fuel must be positive")

	// ErrNonPositiveCapacity indicates a tank capacity ≤ 0.
	ErrNonPositiveCapacity = errors.New("deliveries: tank capacity must be positive")

	// ErrNilStart indicates a problem input without a start junction.
	ErrNilStart = errors.New("deliveries: start junction is nil")

	// ErrStartIsDropPoint indicates that the start junction is itself a
	// drop point, which the model forbids.
	ErrStartIsDropPoint = errors.New("deliveries: start junction is a drop point")

	// ErrUnknownJunction indicates that a problem file references a
	// junction ID that its junction list does not define.
	ErrUnknownJunction = errors.New("deliveries: reference to undefined junction ID")
)

// ProblemInput is the value object a deliveries problem is built from:
// instance name, start junction, the goal set of drop points, the gas
// stations, the tank capacity, and the fuel at departure.
//
// Inputs are validated by the problem constructors, not here, so one
// input can seed both a relaxed and a strict instance.
type ProblemInput struct {
	// Name labels the instance in logs and problem names.
	Name string

	// Start is the departure junction. Must not be a drop point.
	Start *ways.Junction

	// DropPoints is the set of junctions with pending deliveries.
	DropPoints ways.JunctionSet

	// GasStations is the set of junctions that refuel the tank to full.
	GasStations ways.JunctionSet

	// TankCapacity is the fuel level a gas station resets to. Must be > 0.
	TankCapacity float64

	// InitialFuel is the fuel at the start junction. Must be > 0.
	InitialFuel float64
}
