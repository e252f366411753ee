// Package mstweight_test verifies the dense Prim weight computation.
// Focus:
//  1. Known totals on small hand-checked matrices.
//  2. Degenerate sizes (n=0, n=1) yield weight 0.
//  3. Sentinels on ragged matrices and +Inf-disconnected graphs.
package mstweight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fuelway/fuelway/mstweight"
)

func TestWeight_PathGraph(t *testing.T) {
	// Unique MST is the path 0-1-2-3 of total weight 3: path edges cost 1,
	// cross edges cost 2.
	dist := [][]float64{
		{0, 1, 2, 2},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{2, 2, 1, 0},
	}
	total, err := mstweight.Weight(dist)
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, total, 1e-12)
}

func TestWeight_UniformStar(t *testing.T) {
	// All off-diagonal weights 1: any spanning tree has n-1 edges of
	// weight 1, so the total is exactly n-1.
	const n = 6
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = 1
			}
		}
	}
	total, err := mstweight.Weight(dist)
	assert.NoError(t, err)
	assert.InDelta(t, float64(n-1), total, 1e-12)
}

func TestWeight_CollinearPoints(t *testing.T) {
	// Points at 0, 10, 20 on a line: the MST is the chain of weight 20.
	dist := [][]float64{
		{0, 10, 20},
		{10, 0, 10},
		{20, 10, 0},
	}
	total, err := mstweight.Weight(dist)
	assert.NoError(t, err)
	assert.InDelta(t, 20.0, total, 1e-12)
}

func TestWeight_DegenerateSizes(t *testing.T) {
	total, err := mstweight.Weight(nil)
	assert.NoError(t, err)
	assert.Zero(t, total)

	total, err = mstweight.Weight([][]float64{{0}})
	assert.NoError(t, err)
	assert.Zero(t, total)
}

func TestWeight_NonSquare(t *testing.T) {
	dist := [][]float64{
		{0, 1},
		{1},
	}
	_, err := mstweight.Weight(dist)
	assert.ErrorIs(t, err, mstweight.ErrNonSquare)
}

func TestWeight_DisconnectedViaInf(t *testing.T) {
	// Vertex 2 is isolated behind +Inf edges: no spanning tree exists.
	inf := math.Inf(1)
	dist := [][]float64{
		{0, 1, inf},
		{1, 0, inf},
		{inf, inf, 0},
	}
	_, err := mstweight.Weight(dist)
	assert.ErrorIs(t, err, mstweight.ErrDisconnected)
}
