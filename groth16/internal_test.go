// Copyright 2020 ConsenSys Software Inc.
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

package groth16

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgroves-zk/groth16/internal/smallfield"
)

// TestVanishingPolynomialIsZeroOnDomain mirrors the reference
// implementation's zero_polynomial_is_zero scenario: t(k) = 0 for every
// k in the interpolation domain.
func TestVanishingPolynomialIsZeroOnDomain(t *testing.T) {
	d := 3
	poly, err := vanishingPolynomial(d, smallfield.FromUint)
	require.NoError(t, err)

	for k := 1; k <= d; k++ {
		got := poly.Evaluate(smallfield.FromUint(uint64(k)))
		require.True(t, got.IsZero(), "t(%d) = %v, want 0", k, got)
	}
}

func TestVanishingPolynomialDegreeZeroFails(t *testing.T) {
	_, err := vanishingPolynomial(0, smallfield.FromUint)
	require.Error(t, err)
}

// groupElem is a trivial one-dimensional "group" over smallfield.Elem
// (its own multiplicative structure standing in for scalar
// multiplication), used only to exercise srsPowers without a real curve.
type groupElem struct{ smallfield.Elem }

func (g groupElem) Add(o groupElem) groupElem { return groupElem{g.Elem.Add(o.Elem)} }
func (g groupElem) ScalarMul(s smallfield.Elem) groupElem {
	return groupElem{g.Elem.Mul(s)}
}

// TestSRSPowersAreConsecutiveExponents mirrors the group_1_srs scenario:
// srs[i] = tau^i * generator.
func TestSRSPowersAreConsecutiveExponents(t *testing.T) {
	tau := smallfield.New(5)
	gen := groupElem{smallfield.New(1)}

	srs := srsPowers[groupElem](5, tau, gen)
	power := smallfield.New(1)
	for i, got := range srs {
		require.True(t, got.Elem.Equal(power), "srs[%d] = %v, want %v", i, got, power)
		power = power.Mul(tau)
	}
}
