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

func TestStringToH3RoundTrip(t *testing.T) {
	h := StringToH3("8029fffffffffff")
	assert.Equal(t, H3Index(0x8029fffffffffff), h)
	assert.Equal(t, "8029fffffffffff", h.String())
}

func TestStringToH3Invalid(t *testing.T) {
	assert.Equal(t, H3_NULL, StringToH3("not-hex"))
}

func TestIsValidRejectsBadMode(t *testing.T) {
	h := H3Index(0x8029fffffffffff)
	require.True(t, h.IsValid())

	bad := h
	H3_SET_MODE(&bad, H3_UNIEDGE_MODE)
	assert.False(t, bad.IsValid())
}

func TestIsValidRejectsOutOfRangeResolution(t *testing.T) {
	h := _setH3Index(0, 0, CENTER_DIGIT)
	H3_SET_RESOLUTION(&h, 16)
	assert.False(t, h.IsValid())
}

func TestLatLngToCellResolutionZeroSanFrancisco(t *testing.T) {
	lat := 0.659966917655
	lng := 2*math.Pi - 2.1364398519396

	h, err := LatLngToCell(lat, lng, 0)
	require.NoError(t, err)
	assert.Equal(t, H3Index(0x8029fffffffffff), h)
	assert.True(t, h.IsValid())
}

func TestLatLngToCellResolutionSeven(t *testing.T) {
	lat := DegsToRads(74.883263)
	lng := DegsToRads(341.40712)

	h, err := LatLngToCell(lat, lng, 7)
	require.NoError(t, err)
	assert.Equal(t, H3Index(0x8707ac082ffffff), h)
}

func TestLatLngToCellRejectsBadResolution(t *testing.T) {
	_, err := LatLngToCell(0, 0, 16)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Code: ErrResDomain})
}

func TestLatLngToCellExtremeCoordinatesDoNotPanic(t *testing.T) {
	h, err := LatLngToCell(0, 1e45, 14)
	require.NoError(t, err)
	assert.True(t, h.IsValid())

	h2, err := LatLngToCell(1e46, 1e45, 15)
	require.NoError(t, err)
	assert.True(t, h2.IsValid())
}

func TestToLatLngRoundTrip(t *testing.T) {
	h := H3Index(0x8707ac082ffffff)
	lat, lng, err := h.ToLatLng()
	require.NoError(t, err)

	back, err := LatLngToCell(lat, lng, h.Resolution())
	require.NoError(t, err)
	assert.Equal(t, h, back)
}

func TestToLatLngRejectsInvalidCell(t *testing.T) {
	invalid := H3Index(0)
	_, _, err := invalid.ToLatLng()
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Code: ErrCellInvalid})
}

func TestToParent(t *testing.T) {
	h := H3Index(0x8707ac082ffffff)
	parent := h.ToParent(5)
	assert.Equal(t, 5, parent.Resolution())
	assert.Equal(t, h.BaseCell(), parent.BaseCell())
}

func TestChildrenResNineOfResEightHexagon(t *testing.T) {
	parent := H3Index(0x88283080ddfffff)
	children, err := parent.Children(9)
	require.NoError(t, err)

	want := []H3Index{
		0x89283080dc3ffff,
		0x89283080dc7ffff,
		0x89283080dcbffff,
		0x89283080dcfffff,
		0x89283080dd3ffff,
		0x89283080dd7ffff,
		0x89283080ddbffff,
	}
	assert.ElementsMatch(t, want, children)
}

func TestChildrenSizeHexagon(t *testing.T) {
	parent := H3Index(0x88283080ddfffff)
	size, err := parent.ChildrenSize(9)
	require.NoError(t, err)
	assert.EqualValues(t, 7, size)
}

func TestChildrenSizePentagon(t *testing.T) {
	pentagon := _setH3Index(0, 4, CENTER_DIGIT)
	require.True(t, pentagon.IsPentagon())

	size, err := pentagon.ChildrenSize(1)
	require.NoError(t, err)
	assert.EqualValues(t, 6, size)

	size2, err := pentagon.ChildrenSize(2)
	require.NoError(t, err)
	assert.EqualValues(t, 41, size2)
}

func TestChildPosToCellMatchesChildrenEnumeration(t *testing.T) {
	parent := H3Index(0x88283080ddfffff)
	children, err := parent.Children(9)
	require.NoError(t, err)

	for pos, want := range children {
		got, err := ChildPosToCell(int64(pos), parent, 9)
		require.NoError(t, err)
		assert.Equal(t, want, got, "position %d", pos)
	}
}

func TestChildPosToCellPentagonMatchesChildrenEnumeration(t *testing.T) {
	pentagon := _setH3Index(0, 4, CENTER_DIGIT)
	children, err := pentagon.Children(2)
	require.NoError(t, err)

	for pos, want := range children {
		got, err := ChildPosToCell(int64(pos), pentagon, 2)
		require.NoError(t, err)
		assert.Equal(t, want, got, "position %d", pos)
	}
}

func TestChildPosToCellRejectsOutOfRangePosition(t *testing.T) {
	parent := H3Index(0x88283080ddfffff)
	_, err := ChildPosToCell(7, parent, 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Code: ErrDomain})
}

func TestIsPentagonPolarBaseCell(t *testing.T) {
	polar := _setH3Index(0, 4, CENTER_DIGIT)
	assert.True(t, polar.IsPentagon())

	nonPentagon := _setH3Index(0, 0, CENTER_DIGIT)
	assert.False(t, nonPentagon.IsPentagon())
}

func TestIsResClassIII(t *testing.T) {
	assert.False(t, H3Index(0x8029fffffffffff).IsResClassIII())
	assert.True(t, H3Index(0x8707ac082ffffff).IsResClassIII())
}
