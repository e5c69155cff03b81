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

// directions lists the 6 non-center ijk+ directions in the order used to
// traverse a hexagonal ring counterclockwise around {1, 0, 0}.
//
//      _
//    _/ \_
//   / \5/ \
//   \0/ \4/
//   / \_/ \
//   \1/ \3/
//     \2/
var directions = [6]Direction{
	J_AXES_DIGIT,
	JK_AXES_DIGIT,
	K_AXES_DIGIT,
	IK_AXES_DIGIT,
	I_AXES_DIGIT,
	IJ_AXES_DIGIT,
}

// nextRingDirection is the direction used to traverse to the next outward
// hexagonal ring.
const nextRingDirection = I_AXES_DIGIT

// newDigitII gives, for a Class II grid, the new digit reached when moving
// the current digit one step in a given direction.
var newDigitII = [7][7]Direction{
	{CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT},
	{K_AXES_DIGIT, I_AXES_DIGIT, JK_AXES_DIGIT, IJ_AXES_DIGIT, IK_AXES_DIGIT, J_AXES_DIGIT, CENTER_DIGIT},
	{J_AXES_DIGIT, JK_AXES_DIGIT, K_AXES_DIGIT, I_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, IK_AXES_DIGIT},
	{JK_AXES_DIGIT, IJ_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT},
	{I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, K_AXES_DIGIT},
	{IK_AXES_DIGIT, J_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, JK_AXES_DIGIT, IJ_AXES_DIGIT, I_AXES_DIGIT},
	{IJ_AXES_DIGIT, CENTER_DIGIT, IK_AXES_DIGIT, J_AXES_DIGIT, K_AXES_DIGIT, I_AXES_DIGIT, JK_AXES_DIGIT},
}

// newAdjustmentII gives, for a Class II grid, the extra ap7 move at the
// coarser level required when moving the current digit in a given direction.
var newAdjustmentII = [7][7]Direction{
	{CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, K_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, CENTER_DIGIT, IK_AXES_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, CENTER_DIGIT, CENTER_DIGIT, J_AXES_DIGIT},
	{CENTER_DIGIT, K_AXES_DIGIT, JK_AXES_DIGIT, JK_AXES_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, I_AXES_DIGIT, I_AXES_DIGIT, IJ_AXES_DIGIT},
	{CENTER_DIGIT, IK_AXES_DIGIT, CENTER_DIGIT, CENTER_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, J_AXES_DIGIT, CENTER_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, IJ_AXES_DIGIT},
}

// newDigitIII gives, for a Class III grid, the new digit reached when moving
// the current digit one step in a given direction.
var newDigitIII = [7][7]Direction{
	{CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT},
	{K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT},
	{J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT},
	{JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT},
	{I_AXES_DIGIT, IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT},
	{IK_AXES_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT},
	{IJ_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT},
}

// newAdjustmentIII gives, for a Class III grid, the extra ap7 move at the
// coarser level required when moving the current digit in a given direction.
var newAdjustmentIII = [7][7]Direction{
	{CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, K_AXES_DIGIT, CENTER_DIGIT, JK_AXES_DIGIT, CENTER_DIGIT, K_AXES_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, J_AXES_DIGIT, J_AXES_DIGIT, CENTER_DIGIT, CENTER_DIGIT, IJ_AXES_DIGIT},
	{CENTER_DIGIT, JK_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, CENTER_DIGIT, I_AXES_DIGIT, IK_AXES_DIGIT, I_AXES_DIGIT},
	{CENTER_DIGIT, K_AXES_DIGIT, CENTER_DIGIT, CENTER_DIGIT, IK_AXES_DIGIT, IK_AXES_DIGIT, CENTER_DIGIT},
	{CENTER_DIGIT, CENTER_DIGIT, IJ_AXES_DIGIT, CENTER_DIGIT, I_AXES_DIGIT, CENTER_DIGIT, IJ_AXES_DIGIT},
}

// MaxGridDiskSize returns the maximum number of cells that can result from
// GridDiskDistances with the given k.
func MaxGridDiskSize(k int) int64 {
	kk := int64(k)
	return 3*kk*(kk+1) + 1
}

// h3NeighborRotations returns the cell neighboring origin in direction dir.
// rotations is both the number of ccw rotations to apply to dir before
// stepping and, on return, the updated rotation count after crossing any
// face or base cell boundary. Returns ErrPentagon when the step starts at a
// pentagon cell and would move onto its deleted k-subsequence; steps that
// enter a pentagon base cell from a neighbor are rotated around it instead.
func h3NeighborRotations(origin H3Index, dir Direction, rotations *int) (H3Index, error) {
	current := origin

	if dir < CENTER_DIGIT || dir >= INVALID_DIGIT {
		return 0, newError("h3NeighborRotations", ErrFailed)
	}
	for i := 0; i < *rotations; i++ {
		dir = _rotate60ccw(dir)
	}

	newRotations := 0
	oldBaseCell := H3_GET_BASE_CELL(current)
	if oldBaseCell < 0 || oldBaseCell >= NUM_BASE_CELLS {
		return 0, newError("h3NeighborRotations", ErrCellInvalid)
	}
	oldLeadingDigit := _h3LeadingNonZeroDigit(current)

	r := H3_GET_RESOLUTION(current) - 1
	for {
		if r == -1 {
			H3_SET_BASE_CELL(&current, baseCellNeighbors[oldBaseCell][dir])
			newRotations = baseCellNeighbor60CCWRots[oldBaseCell][dir]

			if H3_GET_BASE_CELL(current) == INVALID_BASE_CELL {
				H3_SET_BASE_CELL(&current, baseCellNeighbors[oldBaseCell][IK_AXES_DIGIT])
				newRotations = baseCellNeighbor60CCWRots[oldBaseCell][IK_AXES_DIGIT]

				current = _h3Rotate60ccw(current)
				*rotations = *rotations + 1
			}
			break
		}

		oldDigit := H3_GET_INDEX_DIGIT(current, r+1)
		if oldDigit == INVALID_DIGIT {
			return 0, newError("h3NeighborRotations", ErrCellInvalid)
		}

		var nextDir Direction
		if isResClassIII(r + 1) {
			H3_SET_INDEX_DIGIT(&current, r+1, newDigitII[oldDigit][dir])
			nextDir = newAdjustmentII[oldDigit][dir]
		} else {
			H3_SET_INDEX_DIGIT(&current, r+1, newDigitIII[oldDigit][dir])
			nextDir = newAdjustmentIII[oldDigit][dir]
		}

		if nextDir != CENTER_DIGIT {
			dir = nextDir
			r--
		} else {
			break
		}
	}

	newBaseCell := H3_GET_BASE_CELL(current)
	if _isBaseCellPentagon(newBaseCell) {
		alreadyAdjustedKSubsequence := false

		if _h3LeadingNonZeroDigit(current) == K_AXES_DIGIT {
			if oldBaseCell != newBaseCell {
				if _baseCellIsCwOffset(newBaseCell, baseCellData[oldBaseCell].homeFijk.face) {
					current = _h3Rotate60cw(current)
				} else {
					current = _h3Rotate60ccw(current)
				}
				alreadyAdjustedKSubsequence = true
			} else {
				switch oldLeadingDigit {
				case CENTER_DIGIT:
					return 0, newError("h3NeighborRotations", ErrPentagon)
				case JK_AXES_DIGIT:
					current = _h3Rotate60ccw(current)
					*rotations = *rotations + 1
				case IK_AXES_DIGIT:
					current = _h3Rotate60cw(current)
					*rotations = *rotations + 5
				default:
					return 0, newError("h3NeighborRotations", ErrFailed)
				}
			}
		}

		for i := 0; i < newRotations; i++ {
			current = _h3RotatePent60ccw(current)
		}

		if oldBaseCell != newBaseCell {
			if _isBaseCellPolarPentagon(newBaseCell) {
				if oldBaseCell != 118 && oldBaseCell != 8 &&
					_h3LeadingNonZeroDigit(current) != JK_AXES_DIGIT {
					*rotations = *rotations + 1
				}
			} else if _h3LeadingNonZeroDigit(current) == IK_AXES_DIGIT && !alreadyAdjustedKSubsequence {
				*rotations = *rotations + 1
			}
		}
	} else {
		for i := 0; i < newRotations; i++ {
			current = _h3Rotate60ccw(current)
		}
	}

	*rotations = (*rotations + newRotations) % 6

	return current, nil
}

// directionForNeighbor returns the direction from origin to destination, the
// reverse operation of h3NeighborRotations. Returns INVALID_DIGIT if the
// cells are not neighbors.
func directionForNeighbor(origin, destination H3Index) Direction {
	start := K_AXES_DIGIT
	if origin.IsPentagon() {
		start = J_AXES_DIGIT
	}
	for d := start; d < INVALID_DIGIT; d++ {
		rotations := 0
		neighbor, err := h3NeighborRotations(origin, d, &rotations)
		if err == nil && neighbor == destination {
			return d
		}
	}
	return INVALID_DIGIT
}

// GridDiskDistancesUnsafe produces cells within k distance of origin, paired
// with their distance, in order of increasing distance from origin. Fails
// with ErrPentagon if a pentagon or the pentagonal distortion area is
// encountered anywhere along the walk.
func GridDiskDistancesUnsafe(origin H3Index, k int) ([]H3Index, []int, error) {
	if k < 0 {
		return nil, nil, newError("GridDiskDistancesUnsafe", ErrDomain)
	}

	cells := make([]H3Index, 0, MaxGridDiskSize(k))
	dists := make([]int, 0, MaxGridDiskSize(k))

	cells = append(cells, origin)
	dists = append(dists, 0)

	if origin.IsPentagon() {
		return nil, nil, newError("GridDiskDistancesUnsafe", ErrPentagon)
	}

	rotations := 0
	current := origin
	ring := 1
	direction := 0
	i := 0

	for ring <= k {
		if direction == 0 && i == 0 {
			var err error
			current, err = h3NeighborRotations(current, nextRingDirection, &rotations)
			if err != nil {
				return nil, nil, err
			}
			if current.IsPentagon() {
				return nil, nil, newError("GridDiskDistancesUnsafe", ErrPentagon)
			}
		}

		var err error
		current, err = h3NeighborRotations(current, directions[direction], &rotations)
		if err != nil {
			return nil, nil, err
		}
		cells = append(cells, current)
		dists = append(dists, ring)

		i++
		if i == ring {
			i = 0
			direction++
			if direction == 6 {
				direction = 0
				ring++
			}
		}

		if current.IsPentagon() {
			return nil, nil, newError("GridDiskDistancesUnsafe", ErrPentagon)
		}
	}

	return cells, dists, nil
}

// GridDiskDistances produces every cell within k grid distance of origin,
// along with each cell's distance from origin. It tries the fast unsafe walk
// first and falls back to an open-addressed hash-set accumulation (stable
// even across pentagons) if that fails.
func GridDiskDistances(origin H3Index, k int) ([]H3Index, []int, error) {
	if cells, dists, err := GridDiskDistancesUnsafe(origin, k); err == nil {
		return cells, dists, nil
	}

	maxIdx := int(MaxGridDiskSize(k))
	cellSet := make([]H3Index, maxIdx)
	distSet := make([]int, maxIdx)
	present := make([]bool, maxIdx)

	if err := gridDiskDistancesInternal(origin, k, cellSet, distSet, present, maxIdx, 0); err != nil {
		return nil, nil, err
	}

	cells := make([]H3Index, 0, maxIdx)
	dists := make([]int, 0, maxIdx)
	for i, ok := range present {
		if ok {
			cells = append(cells, cellSet[i])
			dists = append(dists, distSet[i])
		}
	}
	return cells, dists, nil
}

// gridDiskDistancesInternal is the safe but slow recursive accumulation used
// by GridDiskDistances, treating cellSet/distSet/present as an open-addressed
// hash set keyed by origin % maxIdx.
func gridDiskDistancesInternal(origin H3Index, k int, cellSet []H3Index, distSet []int, present []bool, maxIdx, curK int) error {
	off := int(uint64(origin) % uint64(maxIdx))
	for present[off] && cellSet[off] != origin {
		off = (off + 1) % maxIdx
	}

	if present[off] && cellSet[off] == origin && distSet[off] <= curK {
		return nil
	}

	present[off] = true
	cellSet[off] = origin
	distSet[off] = curK

	if curK >= k {
		return nil
	}

	for i := 0; i < 6; i++ {
		rotations := 0
		neighbor, err := h3NeighborRotations(origin, directions[i], &rotations)
		if err != nil {
			if e, ok := err.(*Error); !ok || e.Code != ErrPentagon {
				return err
			}
			continue
		}
		if err := gridDiskDistancesInternal(neighbor, k, cellSet, distSet, present, maxIdx, curK+1); err != nil {
			return err
		}
	}
	return nil
}

// GridRingUnsafe returns the hollow ring of cells at exactly grid distance k
// from origin. k=0 returns just the origin. Fails with ErrPentagon if a
// pentagon or pentagonal distortion is encountered.
func GridRingUnsafe(origin H3Index, k int) ([]H3Index, error) {
	out := make([]H3Index, 0, 6*k)

	if k == 0 {
		return append(out, origin), nil
	}

	rotations := 0
	if origin.IsPentagon() {
		return nil, newError("GridRingUnsafe", ErrPentagon)
	}

	current := origin
	for i := 0; i < k; i++ {
		var err error
		current, err = h3NeighborRotations(current, nextRingDirection, &rotations)
		if err != nil {
			return nil, err
		}
		if current.IsPentagon() {
			return nil, newError("GridRingUnsafe", ErrPentagon)
		}
	}

	lastIndex := current
	out = append(out, current)

	for direction := 0; direction < 6; direction++ {
		for pos := 0; pos < k; pos++ {
			var err error
			current, err = h3NeighborRotations(current, directions[direction], &rotations)
			if err != nil {
				return nil, err
			}

			if pos != k-1 || direction != 5 {
				out = append(out, current)
				if current.IsPentagon() {
					return nil, newError("GridRingUnsafe", ErrPentagon)
				}
			}
		}
	}

	if lastIndex != current {
		return nil, newError("GridRingUnsafe", ErrPentagon)
	}
	return out, nil
}
