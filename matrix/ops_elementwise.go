// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Private cell-by-cell comparison kernels (ew*) behind the public
//     Equal / NotEqual / EqualApprox facades.
//
// Design:
//   - Shapes are checked by the callers; kernels assume identical shapes.
//   - A read failure on a foreign Matrix counts as "not equal".

package matrix

import "math"

// ewAll reports whether same(a[i,j], b[i,j]) holds for every cell.
// Stops at the first mismatch.
func ewAll(a, b Matrix, same func(x, y float64) bool) bool {
	da, err := denseOf(a)
	if err != nil {
		return false
	}
	db, err := denseOf(b)
	if err != nil {
		return false
	}
	for idx, x := range da.data {
		if !same(x, db.data[idx]) {
			return false
		}
	}

	return true
}

// ewEqual is exact == per cell: NaN never matches, +0 matches -0.
func ewEqual(a, b Matrix) bool {
	return ewAll(a, b, func(x, y float64) bool { return x == y })
}

// ewWithin is |a[i,j] − b[i,j]| <= eps per cell. Equal infinities match.
func ewWithin(a, b Matrix, eps float64) bool {
	return ewAll(a, b, func(x, y float64) bool {
		return x == y || math.Abs(x-y) <= eps
	})
}
