// Package deliveries_test shared fixtures.
//
// The canonical fixture mirrors the collinear instance used throughout
// the package documentation: drop points A(0), B(10), C(20) on a line,
// one gas station at 5, start co-located with A, fuel 12, capacity 30.
// Its optimal relaxed cost is 20 (serve A for free, refuel at 5, then
// B and C).
package deliveries_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fuelway/fuelway/deliveries"
	"github.com/fuelway/fuelway/ways"
)

// collinear bundles the junctions of the canonical fixture.
type collinear struct {
	start   *ways.Junction
	a, b, c *ways.Junction
	gas     *ways.Junction
	input   deliveries.ProblemInput
}

func newCollinear() collinear {
	f := collinear{
		start: ways.NewJunction(0, 0, 0),
		a:     ways.NewJunction(1, 0, 0),
		b:     ways.NewJunction(2, 10, 0),
		c:     ways.NewJunction(3, 20, 0),
		gas:   ways.NewJunction(4, 5, 0),
	}
	f.input = deliveries.ProblemInput{
		Name:         "collinear",
		Start:        f.start,
		DropPoints:   ways.NewJunctionSet(f.a, f.b, f.c),
		GasStations:  ways.NewJunctionSet(f.gas),
		TankCapacity: 30,
		InitialFuel:  12,
	}

	return f
}

// mustRelaxed builds the canonical relaxed problem or fails the test.
func mustRelaxed(t *testing.T) (collinear, *deliveries.RelaxedProblem) {
	t.Helper()
	f := newCollinear()
	p, err := deliveries.NewRelaxedProblem(f.input)
	require.NoError(t, err)

	return f, p
}

// mustState builds a state or fails the test.
func mustState(t *testing.T, loc *ways.Junction, dropped ways.JunctionSet, fuel float64) *deliveries.State {
	t.Helper()
	s, err := deliveries.NewState(loc, dropped, fuel)
	require.NoError(t, err)

	return s
}
