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

// Package smallfield implements arithmetic mod 641, the toy prime field
// the classical "x^3 + x + 5" R1CS/QAP reference vectors (RisenCrypto's
// tutorial) are stated over. It exists only to exercise polynomial, qap
// and groth16's internal helpers against a literal, hand-checkable test
// oracle; production code always goes through curve/bn254.
package smallfield

// Modulus is the field's prime.
const Modulus = 641

// Elem is an element of Z/641Z, always held in [0, 641) by construction.
type Elem struct {
	v int64
}

// New reduces v into the canonical representative of its residue class.
func New(v int64) Elem {
	r := v % Modulus
	if r < 0 {
		r += Modulus
	}
	return Elem{v: r}
}

func (e Elem) Add(o Elem) Elem { return New(e.v + o.v) }
func (e Elem) Sub(o Elem) Elem { return New(e.v - o.v) }
func (e Elem) Mul(o Elem) Elem { return New(e.v * o.v) }

// Div multiplies by o's modular inverse, computed via Fermat's little
// theorem (Modulus is prime). Panics if o is zero; this is a test fixture,
// not part of the error taxonomy any real field implementation surfaces.
func (e Elem) Div(o Elem) Elem {
	return e.Mul(o.inverse())
}

func (e Elem) inverse() Elem {
	if e.v == 0 {
		panic("smallfield: division by zero")
	}
	return e.Exp(Modulus - 2)
}

func (e Elem) Exp(exponent uint64) Elem {
	result := New(1)
	base := e
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exponent >>= 1
	}
	return result
}

func (e Elem) IsZero() bool { return e.v == 0 }

func (e Elem) Equal(o Elem) bool { return e.v == o.v }

func (e Elem) Bytes() []byte {
	return []byte{byte(e.v >> 8), byte(e.v)}
}

// FromUint embeds a small non-negative integer into the field, for use as
// a curve.Curve.FromUint implementation in tests.
func FromUint(v uint64) Elem {
	return New(int64(v))
}

// Int returns the canonical representative as a plain int, for test
// assertions against literal expected values.
func (e Elem) Int() int64 { return e.v }
