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

func TestRes0CellCountMatchesNumBaseCells(t *testing.T) {
	assert.Equal(t, NUM_BASE_CELLS, Res0CellCount())
}

func TestGetRes0CellsAreAllValidAndDistinct(t *testing.T) {
	cells := GetRes0Cells()
	assert.Len(t, cells, NUM_BASE_CELLS)

	seen := make(map[H3Index]bool, len(cells))
	for bc, h := range cells {
		require.True(t, h.IsValid(), "base cell %d", bc)
		assert.Equal(t, 0, h.Resolution())
		assert.Equal(t, bc, h.BaseCell())
		assert.False(t, seen[h], "duplicate cell for base cell %d", bc)
		seen[h] = true
	}
}

func TestGetRes0CellsHasTwelvePentagons(t *testing.T) {
	cells := GetRes0Cells()

	pentagons := 0
	for _, h := range cells {
		if h.IsPentagon() {
			pentagons++
		}
	}
	assert.Equal(t, 12, pentagons)
}

func TestIsBaseCellPentagonOutOfRangeIsFalse(t *testing.T) {
	assert.False(t, _isBaseCellPentagon(-1))
	assert.False(t, _isBaseCellPentagon(NUM_BASE_CELLS))
}

func TestIsBaseCellPolarPentagon(t *testing.T) {
	assert.True(t, _isBaseCellPolarPentagon(4))
	assert.True(t, _isBaseCellPolarPentagon(117))
	assert.False(t, _isBaseCellPolarPentagon(0))
}
