// Command fuelway loads a deliveries problem instance, runs A* under a
// selected admissible heuristic, and reports the route and its cost.
//
// Configuration comes from app.env (or environment variables):
//
//	PROBLEM_PATH=instances/collinear.json
//	HEURISTIC=mst-air        # max-air | mst-air | relaxed
//	STRICT=false             # relaxed heuristic requires STRICT=true
//	MAX_EXPANSIONS=0         # 0 = unlimited
//	PRETTY_LOG=true
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fuelway/fuelway/deliveries"
	"github.com/fuelway/fuelway/search"
)

func main() {
	config, err := LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.PrettyLog {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if config.ProblemPath == "" {
		log.Fatal().Msg("PROBLEM_PATH is required")
	}

	input, err := deliveries.LoadProblemInput(config.ProblemPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", config.ProblemPath).Msg("cannot load problem instance")
	}

	log.Info().
		Str("problem", input.Name).
		Int("drop_points", input.DropPoints.Len()).
		Int("gas_stations", input.GasStations.Len()).
		Float64("tank_capacity", input.TankCapacity).
		Float64("initial_fuel", input.InitialFuel).
		Msg("instance loaded")

	opts := []search.Option{}
	if config.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(config.MaxExpansions))
	}
	solver := search.NewAStar[*deliveries.State](opts...)

	problem, heuristic, err := buildProblem(config, input)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build problem")
	}

	started := time.Now()
	res, err := solver.Solve(problem, heuristic)
	elapsed := time.Since(started)
	switch {
	case errors.Is(err, search.ErrNoPath):
		log.Warn().
			Str("problem", problem.Name()).
			Dur("elapsed", elapsed).
			Msg("no feasible route: the fuel model admits no solution")
		os.Exit(1)
	case err != nil:
		log.Fatal().Err(err).Msg("search failed")
	}

	route := make([]string, len(res.Path))
	for i, s := range res.Path {
		route[i] = s.String()
	}
	log.Info().
		Str("problem", problem.Name()).
		Str("heuristic", heuristic.Name()).
		Float64("cost", res.Cost).
		Int("expanded", res.Expanded).
		Dur("elapsed", elapsed).
		Str("route", strings.Join(route, " -> ")).
		Msg("route found")
}

// buildProblem wires the configured model and heuristic together. The
// relaxed-sub-problem heuristic is only defined over the strict model;
// the two air-distance heuristics only over the relaxed one.
func buildProblem(config Config, input deliveries.ProblemInput) (search.Problem[*deliveries.State], search.Heuristic[*deliveries.State], error) {
	if config.Strict {
		if config.Heuristic != "relaxed" {
			return nil, nil, fmt.Errorf("heuristic %q is not defined over the strict model", config.Heuristic)
		}
		strict, err := deliveries.NewStrictProblem(input, nil)
		if err != nil {
			return nil, nil, err
		}

		return strict, deliveries.NewRelaxedProblemHeuristic(strict, nil), nil
	}

	relaxed, err := deliveries.NewRelaxedProblem(input)
	if err != nil {
		return nil, nil, err
	}
	switch config.Heuristic {
	case "max-air":
		return relaxed, deliveries.NewMaxAirDistHeuristic(relaxed), nil
	case "mst-air":
		return relaxed, deliveries.NewMSTAirDistHeuristic(relaxed), nil
	default:
		return nil, nil, fmt.Errorf("unknown heuristic %q", config.Heuristic)
	}
}
