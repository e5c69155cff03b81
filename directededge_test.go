// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sanFranciscoAtResolution(t *testing.T, res int) H3Index {
	t.Helper()
	lat := 0.659966917655
	lng := 2*math.Pi - 2.1364398519396

	sf, err := LatLngToCell(lat, lng, res)
	require.NoError(t, err)
	return sf
}

func TestCellsToDirectedEdgeRoundTrip(t *testing.T) {
	sf := sanFranciscoAtResolution(t, 9)

	ring, err := GridRingUnsafe(sf, 1)
	require.NoError(t, err)
	require.NotEmpty(t, ring)
	neighbor := ring[0]

	edge, err := CellsToDirectedEdge(sf, neighbor)
	require.NoError(t, err)

	origin, err := edge.Origin()
	require.NoError(t, err)
	assert.Equal(t, sf, origin)

	destination, err := edge.Destination()
	require.NoError(t, err)
	assert.Equal(t, neighbor, destination)

	assert.True(t, edge.IsValid())
}

func TestCellsToDirectedEdgeRejectsNonNeighbors(t *testing.T) {
	sf := sanFranciscoAtResolution(t, 9)

	ring2, err := GridRingUnsafe(sf, 2)
	require.NoError(t, err)
	require.NotEmpty(t, ring2)

	_, err = CellsToDirectedEdge(sf, ring2[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Code: ErrNotNeighbors})
}

func TestCellsToDirectedEdgeRejectsSameCell(t *testing.T) {
	sf := sanFranciscoAtResolution(t, 9)
	_, err := CellsToDirectedEdge(sf, sf)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Code: ErrNotNeighbors})
}

func TestOriginToDirectedEdgesHexagonHasSixValidEdges(t *testing.T) {
	sf := sanFranciscoAtResolution(t, 9)

	edges, err := sf.OriginToDirectedEdges()
	require.NoError(t, err)

	for _, e := range edges {
		assert.True(t, e.IsValid())
		origin, err := e.Origin()
		require.NoError(t, err)
		assert.Equal(t, sf, origin)
	}
}

func TestOriginToDirectedEdgesPentagonHasDeletedKAxisSlot(t *testing.T) {
	polar := _setH3Index(0, 4, CENTER_DIGIT)
	require.True(t, polar.IsPentagon())

	edges, err := polar.OriginToDirectedEdges()
	require.NoError(t, err)

	assert.Equal(t, DirectedEdge(H3_NULL), edges[0])
	for i := 1; i < 6; i++ {
		assert.True(t, edges[i].IsValid())
	}
}

func TestDirectedEdgeOriginRejectsWrongMode(t *testing.T) {
	sf := sanFranciscoAtResolution(t, 9)
	edge := DirectedEdge(sf)
	_, err := edge.Origin()
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Code: ErrDirectedEdgeInvalid})
}

func TestDirectedEdgeIsValidRejectsCenterDirection(t *testing.T) {
	sf := sanFranciscoAtResolution(t, 9)
	h := sf
	H3_SET_MODE(&h, H3_UNIEDGE_MODE)
	H3_SET_RESERVED_BITS(&h, int(CENTER_DIGIT))
	assert.False(t, DirectedEdge(h).IsValid())
}
