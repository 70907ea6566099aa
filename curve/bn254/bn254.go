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

// Package bn254 adapts github.com/consensys/gnark-crypto's BN254 curve to
// the curve.Field / curve.Group1 / curve.Group2 / curve.TargetGroup
// interfaces, and exposes a ready-built curve.Curve value via New.
package bn254

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/mgroves-zk/groth16/curve"
	"github.com/mgroves-zk/groth16/fault"
)

// Scalar wraps the BN254 scalar field element fr.Element as a value type
// satisfying curve.Field[Scalar].
type Scalar struct {
	e fr.Element
}

func (s Scalar) Add(o Scalar) Scalar {
	var r Scalar
	r.e.Add(&s.e, &o.e)
	return r
}

func (s Scalar) Sub(o Scalar) Scalar {
	var r Scalar
	r.e.Sub(&s.e, &o.e)
	return r
}

func (s Scalar) Mul(o Scalar) Scalar {
	var r Scalar
	r.e.Mul(&s.e, &o.e)
	return r
}

func (s Scalar) Div(o Scalar) Scalar {
	var r Scalar
	r.e.Div(&s.e, &o.e)
	return r
}

func (s Scalar) Exp(exponent uint64) Scalar {
	var r Scalar
	r.e.Exp(s.e, new(big.Int).SetUint64(exponent))
	return r
}

func (s Scalar) IsZero() bool {
	return s.e.IsZero()
}

func (s Scalar) Equal(o Scalar) bool {
	return s.e.Equal(&o.e)
}

func (s Scalar) Bytes() []byte {
	b := s.e.Bytes()
	return b[:]
}

// FromUint embeds a small non-negative integer into the scalar field.
func FromUint(v uint64) Scalar {
	var r Scalar
	r.e.SetUint64(v)
	return r
}

// ScalarFromBytes is the inverse of Scalar.Bytes, for deserialize (see
// package serialize).
func ScalarFromBytes(b []byte) (Scalar, error) {
	var r Scalar
	r.e.SetBytes(b)
	return r, nil
}

// scalarByteLen is the size of the buffer the rejection sampler fills on
// each attempt, ported from the reference implementation's rand_scalar,
// which samples 256 bytes. Only the buffer's leading bits, as many as the
// field modulus has, form the candidate.
const scalarByteLen = 256

// SampleScalar draws a uniform BN254 scalar by rejection sampling: fill a
// fixed-size buffer from rnd, take its leading bits (as many as the field
// modulus has) as a candidate, and retry with a freshly filled buffer if
// the candidate is not below the modulus. Mirrors helpers.rs::rand_scalar
// from the reference implementation.
func SampleScalar(rnd io.Reader) (Scalar, error) {
	modulus := fr.Modulus()
	buf := make([]byte, scalarByteLen)
	shift := uint(len(buf)*8 - modulus.BitLen())
	for {
		if _, err := io.ReadFull(rnd, buf); err != nil {
			return Scalar{}, fault.Wrap(err, fault.EntropyUnavailable, "bn254: sampling scalar")
		}
		candidate := new(big.Int).SetBytes(buf)
		candidate.Rsh(candidate, shift)
		if candidate.Cmp(modulus) < 0 {
			var s Scalar
			s.e.SetBigInt(candidate)
			return s, nil
		}
	}
}

// G1 wraps a BN254 G1 point in Jacobian coordinates, satisfying
// curve.Group1[G1, Scalar].
type G1 struct {
	p bn254.G1Jac
}

func (g G1) Add(o G1) G1 {
	var r G1
	r.p.Set(&g.p)
	r.p.AddAssign(&o.p)
	return r
}

func (g G1) Sub(o G1) G1 {
	var r G1
	r.p.Set(&g.p)
	r.p.SubAssign(&o.p)
	return r
}

func (g G1) ScalarMul(s Scalar) G1 {
	var r G1
	k := new(big.Int)
	s.e.BigInt(k)
	r.p.ScalarMultiplication(&g.p, k)
	return r
}

func (g G1) Equal(o G1) bool {
	var a, b bn254.G1Affine
	a.FromJacobian(&g.p)
	b.FromJacobian(&o.p)
	return a.Equal(&b)
}

func (g G1) Bytes() []byte {
	var a bn254.G1Affine
	a.FromJacobian(&g.p)
	b := a.Bytes()
	return b[:]
}

// G1FromBytes is the inverse of G1.Bytes, for deserialize (see package
// serialize).
func G1FromBytes(b []byte) (G1, error) {
	var a bn254.G1Affine
	if _, err := a.SetBytes(b); err != nil {
		return G1{}, err
	}
	var g G1
	g.p.FromAffine(&a)
	return g, nil
}

// G2 wraps a BN254 G2 point in Jacobian coordinates, satisfying
// curve.Group2[G2, Scalar].
type G2 struct {
	p bn254.G2Jac
}

func (g G2) Add(o G2) G2 {
	var r G2
	r.p.Set(&g.p)
	r.p.AddAssign(&o.p)
	return r
}

func (g G2) Sub(o G2) G2 {
	var r G2
	r.p.Set(&g.p)
	r.p.SubAssign(&o.p)
	return r
}

func (g G2) ScalarMul(s Scalar) G2 {
	var r G2
	k := new(big.Int)
	s.e.BigInt(k)
	r.p.ScalarMultiplication(&g.p, k)
	return r
}

func (g G2) Equal(o G2) bool {
	var a, b bn254.G2Affine
	a.FromJacobian(&g.p)
	b.FromJacobian(&o.p)
	return a.Equal(&b)
}

func (g G2) Bytes() []byte {
	var a bn254.G2Affine
	a.FromJacobian(&g.p)
	b := a.Bytes()
	return b[:]
}

// G2FromBytes is the inverse of G2.Bytes, for deserialize (see package
// serialize).
func G2FromBytes(b []byte) (G2, error) {
	var a bn254.G2Affine
	if _, err := a.SetBytes(b); err != nil {
		return G2{}, err
	}
	var g G2
	g.p.FromAffine(&a)
	return g, nil
}

// GT wraps the BN254 pairing target group element. Gt is written
// multiplicatively in gnark-crypto; Add maps onto that Mul per the
// convention documented on curve.TargetGroup.
type GT struct {
	e bn254.GT
}

func (g GT) Add(o GT) GT {
	var r GT
	r.e.Mul(&g.e, &o.e)
	return r
}

func (g GT) Equal(o GT) bool {
	return g.e.Equal(&o.e)
}

// New builds a curve.Curve value wired to BN254: both generators, the
// Optimal-Ate pairing, and the rejection-sampling scalar constructor. The
// returned value is safe to share across concurrent Setup/Prove/Verify
// calls; it holds no mutable state of its own.
func New() curve.Curve[Scalar, G1, G2, GT] {
	_, _, gen1Aff, gen2Aff := bn254.Generators()
	var gen1Jac G1
	gen1Jac.p.FromAffine(&gen1Aff)
	var gen2Jac G2
	gen2Jac.p.FromAffine(&gen2Aff)

	return curve.Curve[Scalar, G1, G2, GT]{
		Generator1: gen1Jac,
		Generator2: gen2Jac,
		Pair: func(a G1, b G2) GT {
			var aAff bn254.G1Affine
			aAff.FromJacobian(&a.p)
			var bAff bn254.G2Affine
			bAff.FromJacobian(&b.p)
			gt, err := bn254.Pair([]bn254.G1Affine{aAff}, []bn254.G2Affine{bAff})
			if err != nil {
				// Pair only fails on a malformed Miller loop input; every
				// argument here came from ScalarMultiplication of a valid
				// generator, so this is unreachable in practice.
				panic(err)
			}
			return GT{e: gt}
		},
		SampleScalar: SampleScalar,
		FromUint:     FromUint,
		Zero:         Scalar{},
	}
}
