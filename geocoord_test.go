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
)

func TestDegsToRadsRoundTrip(t *testing.T) {
	degrees := 74.883263
	rads := DegsToRads(degrees)
	assert.InDelta(t, degrees, RadsToDegs(rads), 1e-9)
}

func TestPosAngleRadsWraps(t *testing.T) {
	assert.InDelta(t, 0, _posAngleRads(2*math.Pi), 1e-12)
	assert.InDelta(t, math.Pi, _posAngleRads(-math.Pi), 1e-12)
}

func TestGeoAlmostEqual(t *testing.T) {
	p1 := GeoCoord{lat: 0.1, lon: 0.2}
	p2 := GeoCoord{lat: 0.1 + EPSILON_RAD/10, lon: 0.2}
	assert.True(t, geoAlmostEqual(&p1, &p2))

	p3 := GeoCoord{lat: 0.5, lon: 0.2}
	assert.False(t, geoAlmostEqual(&p1, &p3))
}

func TestSetGeoDegsCStyleMatchesGoStyle(t *testing.T) {
	var cStyle GeoCoord
	setGeoDegs(&cStyle, 45, 90)

	var goStyle GeoCoord
	goStyle.setGeoDegs(45, 90)

	assert.Equal(t, cStyle, goStyle)
	assert.InDelta(t, DegsToRads(45), cStyle.lat, 1e-12)
	assert.InDelta(t, DegsToRads(90), cStyle.lon, 1e-12)
}

func TestGeoAzDistanceRadsCStyleMatchesGoStyle(t *testing.T) {
	origin := GeoCoord{lat: DegsToRads(10), lon: DegsToRads(20)}
	az := DegsToRads(30)
	dist := 0.05

	var cStyle GeoCoord
	_geoAzDistanceRads(&origin, az, dist, &cStyle)

	goStyle := origin.geoAzDistanceRads(az, dist)

	assert.InDelta(t, cStyle.lat, goStyle.lat, 1e-12)
	assert.InDelta(t, cStyle.lon, goStyle.lon, 1e-12)
}

func TestGeoAzDistanceRadsZeroDistanceReturnsSamePoint(t *testing.T) {
	origin := GeoCoord{lat: 0.3, lon: 0.4}
	result := origin.geoAzDistanceRads(0, 0)
	assert.Equal(t, origin, result)
}

func TestConstrainLatLng(t *testing.T) {
	assert.InDelta(t, 0, constrainLat(math.Pi), 1e-12)
	assert.InDelta(t, 0, constrainLng(2*math.Pi), 1e-9)
	assert.InDelta(t, 0, constrainLng(-2*math.Pi), 1e-9)
}
