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

// Package curve declares the capability set that polynomial, r1cs, qap and
// groth16 are generic over: a scalar field and the two source groups and
// target group of a bilinear pairing. Concrete curves (see curve/bn254)
// implement these interfaces; dispatch between curves resolves once, at
// construction of a Curve[...] value, never per arithmetic operation.
package curve

import "io"

// Field is the scalar field F of a pairing-friendly curve. Implementations
// are value types: every operation returns a fresh value rather than
// mutating the receiver.
type Field[S any] interface {
	Add(S) S
	Sub(S) S
	Mul(S) S
	Div(S) S
	// Exp raises the receiver to an integer power.
	Exp(exponent uint64) S
	IsZero() bool
	Equal(S) bool
	// Bytes returns a canonical fixed-length big-endian encoding.
	Bytes() []byte
}

// Group1 is the first source group G1 of the pairing, additively written.
type Group1[G any, S any] interface {
	Add(G) G
	Sub(G) G
	ScalarMul(S) G
	Equal(G) bool
	Bytes() []byte
}

// Group2 is the second source group G2 of the pairing, additively written.
type Group2[G any, S any] interface {
	Add(G) G
	Sub(G) G
	ScalarMul(S) G
	Equal(G) bool
	Bytes() []byte
}

// TargetGroup is the pairing's target group Gt. The pairing-product
// verification equation writes this operation additively
// ("e(A,B) = e(..) + e(..) + e(..)"); concretely this is implemented as the
// multiplicative group operation of the curve's Gt, see curve/bn254 for the
// mapping.
type TargetGroup[T any] interface {
	Add(T) T
	Equal(T) bool
}

// Curve bundles everything the Groth16 protocol needs from a concrete
// pairing-friendly curve: both generators, the pairing itself, and a
// rejection-sampling scalar constructor. A Curve value is built once,
// passed to groth16.Setup and kept on the resulting TrustedSetup for Prove
// and Verify — one v-table per setup,
// construction-time dispatch rather than a virtual call per field/group
// operation.
type Curve[S any, G1 any, G2 any, GT any] struct {
	Generator1 G1
	Generator2 G2

	// Pair computes the bilinear pairing e(a, b) in GT.
	Pair func(a G1, b G2) GT

	// SampleScalar draws a uniform field element via rejection sampling,
	// reading entropy from rnd.
	SampleScalar func(rnd io.Reader) (S, error)

	// FromUint embeds a small non-negative integer (e.g. a Lagrange
	// evaluation point 1..n, or the field unit) into F.
	FromUint func(uint64) S

	// Zero is the additive identity of F.
	Zero S
}
