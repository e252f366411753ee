// Package deliveries_test - relaxed model semantics.
//
// Focus:
//  1. Constructor validation sentinels, in contract order.
//  2. Expansion correctness: no negative fuel, stations refuel to
//     exactly the capacity, drops add exactly one point, the current
//     location and served drops are never emitted.
//  3. Goal status depends on the dropped set alone.
//  4. Deterministic successor order.
package deliveries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelway/fuelway/deliveries"
	"github.com/fuelway/fuelway/search"
	"github.com/fuelway/fuelway/ways"
)

func TestNewRelaxedProblem_Validation(t *testing.T) {
	f := newCollinear()

	in := f.input
	in.Start = nil
	_, err := deliveries.NewRelaxedProblem(in)
	assert.ErrorIs(t, err, deliveries.ErrNilStart)

	in = f.input
	in.Start = f.b // a drop point
	_, err = deliveries.NewRelaxedProblem(in)
	assert.ErrorIs(t, err, deliveries.ErrStartIsDropPoint)

	in = f.input
	in.TankCapacity = 0
	_, err = deliveries.NewRelaxedProblem(in)
	assert.ErrorIs(t, err, deliveries.ErrNonPositiveCapacity)

	in = f.input
	in.InitialFuel = -1
	_, err = deliveries.NewRelaxedProblem(in)
	assert.ErrorIs(t, err, deliveries.ErrNonPositiveFuel)
}

func TestRelaxedProblem_StartState(t *testing.T) {
	f, p := mustRelaxed(t)

	s := p.Start()
	assert.Equal(t, f.start.ID, s.Location().ID)
	assert.Zero(t, s.Dropped().Len())
	assert.InDelta(t, 12.0, s.Fuel(), 1e-12)
}

func TestRelaxedProblem_ExpandFromStart(t *testing.T) {
	f, p := mustRelaxed(t)

	succs := p.Expand(p.Start())

	// Fuel 12 reaches A (0), B (10) and the station (5); C (20) is out
	// of range. Emission order is ascending junction ID: A, B, gas.
	require.Len(t, succs, 3)
	assert.Equal(t, f.a.ID, succs[0].State.Location().ID)
	assert.Equal(t, f.b.ID, succs[1].State.Location().ID)
	assert.Equal(t, f.gas.ID, succs[2].State.Location().ID)

	// Costs are air distances.
	assert.InDelta(t, 0.0, succs[0].Cost, 1e-12)
	assert.InDelta(t, 10.0, succs[1].Cost, 1e-12)
	assert.InDelta(t, 5.0, succs[2].Cost, 1e-12)

	// Drop successors: the point joins the dropped set, fuel shrinks.
	assert.True(t, succs[0].State.Dropped().Has(f.a))
	assert.Equal(t, 1, succs[0].State.Dropped().Len())
	assert.InDelta(t, 12.0, succs[0].State.Fuel(), 1e-12)
	assert.True(t, succs[1].State.Dropped().Has(f.b))
	assert.InDelta(t, 2.0, succs[1].State.Fuel(), 1e-12)

	// Station successor: dropped unchanged, fuel exactly at capacity.
	assert.Zero(t, succs[2].State.Dropped().Len())
	assert.Equal(t, 30.0, succs[2].State.Fuel())

	// No successor ever carries negative fuel.
	for _, sc := range succs {
		assert.GreaterOrEqual(t, sc.State.Fuel(), 0.0)
	}
}

func TestRelaxedProblem_ExpandSkipsServedDropsAndSelf(t *testing.T) {
	f, p := mustRelaxed(t)

	// Standing at A with A served: A must not be emitted (current
	// location and served drop), B and the station must be.
	s := mustState(t, f.a, ways.NewJunctionSet(f.a), 12)
	succs := p.Expand(s)

	require.Len(t, succs, 2)
	assert.Equal(t, f.b.ID, succs[0].State.Location().ID)
	assert.Equal(t, f.gas.ID, succs[1].State.Location().ID)
}

func TestRelaxedProblem_GasStationStaysRevisitable(t *testing.T) {
	f, p := mustRelaxed(t)

	// After refueling, moving away and coming back to the same station
	// is still a legal (if pointless) transition.
	atB := mustState(t, f.b, nil, 30)
	succs := p.Expand(atB)

	var sawStation bool
	for _, sc := range succs {
		if sc.State.Location().ID == f.gas.ID {
			sawStation = true
			assert.Equal(t, 30.0, sc.State.Fuel())
		}
	}
	assert.True(t, sawStation, "gas station must remain a successor")
}

func TestRelaxedProblem_ExpandRespectsFuel(t *testing.T) {
	f := newCollinear()
	in := f.input
	in.InitialFuel = 3 // reaches only A (0)
	p, err := deliveries.NewRelaxedProblem(in)
	require.NoError(t, err)

	succs := p.Expand(p.Start())
	require.Len(t, succs, 1)
	assert.Equal(t, f.a.ID, succs[0].State.Location().ID)
}

func TestRelaxedProblem_IsGoal(t *testing.T) {
	f, p := mustRelaxed(t)

	all := ways.NewJunctionSet(f.a, f.b, f.c)
	some := ways.NewJunctionSet(f.a, f.b)

	// Goal iff every drop point is served; fuel and location are
	// irrelevant.
	assert.True(t, p.IsGoal(mustState(t, f.c, all, 0.5)))
	assert.True(t, p.IsGoal(mustState(t, f.gas, all, 30)))
	assert.False(t, p.IsGoal(mustState(t, f.c, some, 30)))
	assert.False(t, p.IsGoal(p.Start()))
}

func TestRelaxedProblem_OptimalCostOnCollinear(t *testing.T) {
	_, p := mustRelaxed(t)

	// Optimal route: start→A (0), A→station (5), station→B (5),
	// B→C (10); total 20.
	solver := search.NewAStar[*deliveries.State]()
	res, err := solver.Solve(p, deliveries.NewMSTAirDistHeuristic(p))
	require.NoError(t, err)
	assert.InDelta(t, 20.0, res.Cost, 1e-9)
	assert.True(t, p.IsGoal(res.Path[len(res.Path)-1]))
}

func TestRelaxedProblem_NoPathWhenFuelTooLow(t *testing.T) {
	f := newCollinear()
	in := f.input
	in.InitialFuel = 3  // cannot reach the station (5) or B (10)
	in.TankCapacity = 3 // refueling would not help either
	p, err := deliveries.NewRelaxedProblem(in)
	require.NoError(t, err)

	solver := search.NewAStar[*deliveries.State]()
	_, err = solver.Solve(p, deliveries.NewMSTAirDistHeuristic(p))
	assert.ErrorIs(t, err, search.ErrNoPath)
}
