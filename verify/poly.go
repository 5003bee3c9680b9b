// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package verify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// realRootEpsilon bounds how far off the real axis a companion-matrix
// eigenvalue may sit and still be accepted as a real root: LAPACK's Geev
// returns exact complex conjugate pairs for numerically-near-real roots,
// never a clean zero imaginary part.
const realRootEpsilon = 1e-9

// RealRoots returns the real roots of the polynomial whose coefficients
// are given in ascending-degree order (coeffs[0] is the constant term),
// via the companion-matrix eigenvalue technique: the roots of a monic
// polynomial are exactly the eigenvalues of its companion matrix, so
// gonum's general Eigen decomposition (mat.Eigen, the non-symmetric
// counterpart of EigenSym) stands in for a dedicated root-finder. This is
// package verify's reference implementation of the step spec §3's
// PolynomialRoots node defers to "the external code generator".
func RealRoots(coeffs []float64) ([]float64, error) {
	trimmed := trimTrailingZeros(coeffs)
	n := len(trimmed) - 1
	if n < 1 {
		return nil, fmt.Errorf("verify: RealRoots: degree-%d polynomial has no companion matrix", n)
	}
	if n == 1 {
		return []float64{-trimmed[0] / trimmed[1]}, nil
	}

	lead := trimmed[n]
	companion := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		companion.Set(i, i-1, 1)
	}
	for i := 0; i < n; i++ {
		companion.Set(i, n-1, -trimmed[i]/lead)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(companion, false, false); !ok {
		return nil, fmt.Errorf("verify: RealRoots: eigendecomposition failed for degree-%d polynomial", n)
	}
	vals := eig.Values(nil)

	var roots []float64
	for _, z := range vals {
		if math.Abs(imag(z)) < realRootEpsilon {
			roots = append(roots, real(z))
		}
	}
	return roots, nil
}

// trimTrailingZeros drops leading-degree coefficients that are exactly
// zero, so a polynomial bag that overshot its true degree (e.g. a
// quartic construction whose quartic term cancelled for this particular
// pose) still yields a well-formed companion matrix.
func trimTrailingZeros(coeffs []float64) []float64 {
	end := len(coeffs)
	for end > 1 && coeffs[end-1] == 0 {
		end--
	}
	return coeffs[:end]
}
