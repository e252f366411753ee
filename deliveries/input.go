package deliveries

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fuelway/fuelway/ways"
)

// problemFile is the on-disk JSON shape of a problem instance. All
// junctions are declared once in "junctions"; everything else refers
// to them by ID.
type problemFile struct {
	Name         string         `json:"name"`
	Junctions    []junctionFile `json:"junctions"`
	Start        int            `json:"start"`
	DropPoints   []int          `json:"drop_points"`
	GasStations  []int          `json:"gas_stations"`
	TankCapacity float64        `json:"tank_capacity"`
	InitialFuel  float64        `json:"initial_fuel"`
}

type junctionFile struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// LoadProblemInput reads a problem instance from a JSON file.
//
// Every ID referenced by start, drop_points or gas_stations must be
// declared in junctions; a dangling reference surfaces as
// ErrUnknownJunction wrapped with the offending ID. Semantic
// validation (positive fuel, start not a drop point, …) is left to the
// problem constructors.
func LoadProblemInput(path string) (ProblemInput, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ProblemInput{}, fmt.Errorf("deliveries: reading problem file: %w", err)
	}

	var pf problemFile
	if err = json.Unmarshal(raw, &pf); err != nil {
		return ProblemInput{}, fmt.Errorf("deliveries: parsing problem file: %w", err)
	}

	byID := make(map[int]*ways.Junction, len(pf.Junctions))
	for _, jf := range pf.Junctions {
		byID[jf.ID] = ways.NewJunction(jf.ID, jf.X, jf.Y)
	}

	resolve := func(ids []int) (ways.JunctionSet, error) {
		set := ways.NewJunctionSet()
		for _, id := range ids {
			j, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("%w: %d", ErrUnknownJunction, id)
			}
			set[j.ID] = j
		}

		return set, nil
	}

	start, ok := byID[pf.Start]
	if !ok {
		return ProblemInput{}, fmt.Errorf("%w: %d", ErrUnknownJunction, pf.Start)
	}
	drops, err := resolve(pf.DropPoints)
	if err != nil {
		return ProblemInput{}, err
	}
	stations, err := resolve(pf.GasStations)
	if err != nil {
		return ProblemInput{}, err
	}

	return ProblemInput{
		Name:         pf.Name,
		Start:        start,
		DropPoints:   drops,
		GasStations:  stations,
		TankCapacity: pf.TankCapacity,
		InitialFuel:  pf.InitialFuel,
	}, nil
}
