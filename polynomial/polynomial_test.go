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

package polynomial_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	bn254curve "github.com/mgroves-zk/groth16/curve/bn254"
	"github.com/mgroves-zk/groth16/fault"
	"github.com/mgroves-zk/groth16/internal/smallfield"
	"github.com/mgroves-zk/groth16/polynomial"
)

func e(v int64) smallfield.Elem { return smallfield.New(v) }

func poly(vs ...int64) *polynomial.Polynomial[smallfield.Elem] {
	cs := make([]smallfield.Elem, len(vs))
	for i, v := range vs {
		cs[i] = e(v)
	}
	return polynomial.New(cs)
}

func TestAddIsAssociative(t *testing.T) {
	a, b, c := poly(1, 2, 3), poly(4, 5), poly(6, 7, 8, 9)

	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))

	require.Equal(t, left.Coefficients(), right.Coefficients())
}

func TestMulIsAssociative(t *testing.T) {
	a, b, c := poly(1, 2), poly(3, 4), poly(5, 6)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))

	require.Equal(t, left.Coefficients(), right.Coefficients())
}

func TestMulDistributesOverAdd(t *testing.T) {
	a, b, c := poly(1, 2, 3), poly(4, 0, 5), poly(6, 1)

	left := a.Mul(b.Add(c))
	right := a.Mul(b).Add(a.Mul(c))

	require.Equal(t, left.Coefficients(), right.Coefficients())
}

func TestDivUndoesMul(t *testing.T) {
	p := poly(5, 0, 3, 1)
	q := poly(1, 2)

	product := p.Mul(q)
	quotient, err := product.Div(q)
	require.NoError(t, err)

	require.Equal(t, p.Coefficients(), quotient.Coefficients())
}

func TestDivLeadFormFastPath(t *testing.T) {
	p := poly(0, 0, 0, 6) // 6x^3
	q := poly(0, 2)       // 2x

	quotient, err := p.Div(q)
	require.NoError(t, err)
	require.Equal(t, poly(0, 0, 3).Coefficients(), quotient.Coefficients()) // 3x^2
}

func TestDivByZeroFails(t *testing.T) {
	p := poly(1, 2, 3)
	zero := poly()

	_, err := p.Div(zero)
	require.Error(t, err)
	require.True(t, fault.Is(err, fault.DivisionByZero))
}

func TestDivNonZeroRemainderFails(t *testing.T) {
	p := poly(1, 1) // 1 + x
	q := poly(0, 0, 1) // x^2, does not divide p exactly

	_, err := p.Div(q)
	require.Error(t, err)
	require.True(t, fault.Is(err, fault.NonZeroRemainder))
}

func TestInterpolateRoundTrips(t *testing.T) {
	ys := []smallfield.Elem{e(10), e(20), e(30), e(40), e(50)}

	p := polynomial.Interpolate(ys, smallfield.FromUint)

	for i, y := range ys {
		got := p.Evaluate(smallfield.FromUint(uint64(i + 1)))
		require.True(t, got.Equal(y), "interpolate(%v).evaluate(%d) = %v, want %v", ys, i+1, got, y)
	}
}

func TestEvaluateOverSRSAgreesWithScalarEvaluation(t *testing.T) {
	c := bn254curve.New()
	tau, err := c.SampleScalar(rand.Reader)
	require.NoError(t, err)

	p := polynomial.New([]bn254curve.Scalar{
		bn254curve.FromUint(3),
		bn254curve.FromUint(5),
		bn254curve.FromUint(10),
		bn254curve.FromUint(20),
	})

	srs := make([]bn254curve.G1, 16)
	power := bn254curve.FromUint(1)
	for i := range srs {
		srs[i] = c.Generator1.ScalarMul(power)
		power = power.Mul(tau)
	}

	viaSRS, err := polynomial.EvaluateOverSRS[bn254curve.G1](p, srs)
	require.NoError(t, err)

	viaScalar := c.Generator1.ScalarMul(p.Evaluate(tau))

	require.True(t, viaSRS.Equal(viaScalar))
}

func TestEvaluateOverSRSTooSmall(t *testing.T) {
	c := bn254curve.New()
	p := polynomial.New([]bn254curve.Scalar{bn254curve.FromUint(1), bn254curve.FromUint(2), bn254curve.FromUint(3)})
	srs := []bn254curve.G1{c.Generator1}

	_, err := polynomial.EvaluateOverSRS[bn254curve.G1](p, srs)
	require.Error(t, err)
	require.True(t, fault.Is(err, fault.SrsTooSmall))
}

func TestEvaluateOverSRSNoCoefficients(t *testing.T) {
	c := bn254curve.New()
	p := polynomial.New([]bn254curve.Scalar{})

	_, err := polynomial.EvaluateOverSRS[bn254curve.G1](p, []bn254curve.G1{c.Generator1})
	require.Error(t, err)
	require.True(t, fault.Is(err, fault.NoCoefficients))
}
