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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridDiskDistancesSanFranciscoRadiusOne(t *testing.T) {
	origin := H3Index(0x8029fffffffffff)

	cells, dists, err := GridDiskDistances(origin, 1)
	require.NoError(t, err)
	require.Len(t, cells, 7)

	want := []H3Index{
		0x8029fffffffffff,
		0x801dfffffffffff,
		0x8013fffffffffff,
		0x8027fffffffffff,
		0x8049fffffffffff,
		0x8051fffffffffff,
		0x8037fffffffffff,
	}
	assert.ElementsMatch(t, want, cells)

	for i, c := range cells {
		if c == origin {
			assert.Equal(t, 0, dists[i])
		} else {
			assert.Equal(t, 1, dists[i])
		}
	}
}

func TestGridDiskDistancesUnsafeFailsOnPentagon(t *testing.T) {
	polar := _setH3Index(0, 4, CENTER_DIGIT)
	_, _, err := GridDiskDistancesUnsafe(polar, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Code: ErrPentagon})
}

func TestGridDiskDistancesPolarPentagonRadiusOne(t *testing.T) {
	polar := _setH3Index(0, 4, CENTER_DIGIT)
	require.True(t, polar.IsPentagon())

	cells, dists, err := GridDiskDistances(polar, 1)
	require.NoError(t, err)

	want := []H3Index{
		0x8009fffffffffff,
		0x8007fffffffffff,
		0x8001fffffffffff,
		0x8011fffffffffff,
		0x801ffffffffffff,
		0x8019fffffffffff,
	}
	assert.ElementsMatch(t, want, cells)
	assert.Contains(t, cells, polar)

	for i, c := range cells {
		if c == polar {
			assert.Equal(t, 0, dists[i])
		} else {
			assert.Equal(t, 1, dists[i])
		}
	}
}

func TestGridDiskDistancesRepeatCallsReturnSameSet(t *testing.T) {
	origin := H3Index(0x8029fffffffffff)

	first, _, err := GridDiskDistances(origin, 2)
	require.NoError(t, err)

	second, _, err := GridDiskDistances(origin, 2)
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
}

func TestGridRingUnsafeZeroIsOrigin(t *testing.T) {
	origin := H3Index(0x8029fffffffffff)
	ring, err := GridRingUnsafe(origin, 0)
	require.NoError(t, err)
	assert.Equal(t, []H3Index{origin}, ring)
}

func TestGridRingUnsafeMatchesDiskShell(t *testing.T) {
	origin := sanFranciscoAtResolution(t, 9)

	ring, err := GridRingUnsafe(origin, 1)
	require.NoError(t, err)
	assert.Len(t, ring, 6)

	disk, dists, err := GridDiskDistances(origin, 1)
	require.NoError(t, err)

	var shell []H3Index
	for i, c := range disk {
		if dists[i] == 1 {
			shell = append(shell, c)
		}
	}
	assert.ElementsMatch(t, shell, ring)
}

func TestGridRingUnsafeFailsOnPentagon(t *testing.T) {
	polar := _setH3Index(0, 4, CENTER_DIGIT)
	_, err := GridRingUnsafe(polar, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Code: ErrPentagon})
}

func TestDirectionForNeighborIsInverseOfNeighborRotations(t *testing.T) {
	origin := H3Index(0x8029fffffffffff)

	for d := K_AXES_DIGIT; d < INVALID_DIGIT; d++ {
		rotations := 0
		neighbor, err := h3NeighborRotations(origin, d, &rotations)
		require.NoError(t, err)

		got := directionForNeighbor(origin, neighbor)
		assert.Equal(t, d, got)
	}
}

func TestDirectionForNeighborRejectsNonNeighbors(t *testing.T) {
	origin := sanFranciscoAtResolution(t, 9)
	ring2, err := GridRingUnsafe(origin, 2)
	require.NoError(t, err)
	require.NotEmpty(t, ring2)

	got := directionForNeighbor(origin, ring2[0])
	assert.Equal(t, INVALID_DIGIT, got)
}

func TestMaxGridDiskSize(t *testing.T) {
	assert.EqualValues(t, 1, MaxGridDiskSize(0))
	assert.EqualValues(t, 7, MaxGridDiskSize(1))
	assert.EqualValues(t, 19, MaxGridDiskSize(2))
}
