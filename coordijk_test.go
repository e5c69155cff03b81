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
)

func TestCoordIJKNormalizeRemovesNegativesAndMin(t *testing.T) {
	ijk := CoordIJK{i: 2, j: -3, k: 1}
	ijk.Normalize()
	assert.True(t, ijk.i >= 0 && ijk.j >= 0 && ijk.k >= 0)
	assert.True(t, ijk.i == 0 || ijk.j == 0 || ijk.k == 0)
}

func TestCoordIJKUnitToDigitRoundTrip(t *testing.T) {
	for d := CENTER_DIGIT; d < Direction(NUM_DIGITS); d++ {
		unit := UNIT_VECS[d]
		assert.Equal(t, d, unit.UnitToDigit())
	}
}

func TestCoordIJKRotate60OnceIsNotIdentity(t *testing.T) {
	ijk := CoordIJK{i: 1, j: 0, k: 0}
	rotated := ijk
	rotated.Rotate60ccw()
	assert.NotEqual(t, ijk, rotated)
}

func TestCoordIJKRotateCcwThenCwIsIdentity(t *testing.T) {
	ijk := CoordIJK{i: 2, j: 1, k: 0}
	ijk.Normalize()
	original := ijk

	ijk.Rotate60ccw()
	ijk.Rotate60cw()
	assert.Equal(t, original, ijk)
}

func TestCoordIJKSixRotationsIsIdentity(t *testing.T) {
	ijk := CoordIJK{i: 1, j: 0, k: 0}
	original := ijk
	for i := 0; i < 6; i++ {
		ijk.Rotate60ccw()
	}
	assert.Equal(t, original, ijk)
}

func TestRotate60DigitRoundTrip(t *testing.T) {
	for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		assert.Equal(t, d, _rotate60cw(_rotate60ccw(d)))
	}
}

func TestRotate60DigitLeavesCenterAndInvalidUnchanged(t *testing.T) {
	assert.Equal(t, CENTER_DIGIT, _rotate60ccw(CENTER_DIGIT))
	assert.Equal(t, INVALID_DIGIT, _rotate60ccw(INVALID_DIGIT))
}

func TestCoordIJKNeighborMovesAwayFromHome(t *testing.T) {
	home := CoordIJK{i: 0, j: 0, k: 0}

	for d := K_AXES_DIGIT; d <= IJ_AXES_DIGIT; d++ {
		moved := home
		moved.neighbor(d)
		assert.NotEqual(t, home, moved)
	}
}
