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

// Package polynomial implements dense univariate polynomials over a field
// generic in curve.Field[S]: addition, subtraction, scalar and polynomial
// multiplication, exact division, Lagrange interpolation over the domain
// {1..n}, scalar evaluation and evaluation-in-the-exponent over an SRS.
package polynomial

import (
	"github.com/mgroves-zk/groth16/curve"
	"github.com/mgroves-zk/groth16/fault"
)

// Polynomial is a sequence of coefficients a0, a1, ..., ak denoting
// Σ ai·x^i. The zero polynomial is the empty sequence (or all-zero); after
// multiplication trailing zeros are truncated to canonical form.
type Polynomial[S curve.Field[S]] struct {
	coefficients []S
}

// New builds a polynomial from an explicit coefficient sequence with no
// canonicalization: the caller's slice is copied, not truncated.
func New[S curve.Field[S]](coefficients []S) *Polynomial[S] {
	cs := make([]S, len(coefficients))
	copy(cs, coefficients)
	return &Polynomial[S]{coefficients: cs}
}

// Convert builds a polynomial from a sequence of some other element type,
// mapping each element into F with conv.
func Convert[S curve.Field[S], T any](values []T, conv func(T) S) *Polynomial[S] {
	cs := make([]S, len(values))
	for i, v := range values {
		cs[i] = conv(v)
	}
	return &Polynomial[S]{coefficients: cs}
}

// Coefficients returns a copy of the polynomial's coefficient sequence.
func (p *Polynomial[S]) Coefficients() []S {
	cs := make([]S, len(p.coefficients))
	copy(cs, p.coefficients)
	return cs
}

// IsZero reports whether the polynomial is the zero polynomial: empty, or
// every coefficient equal to the field zero.
func (p *Polynomial[S]) IsZero() bool {
	for _, c := range p.coefficients {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Degree is len-1 for a non-empty polynomial, 0 otherwise.
func (p *Polynomial[S]) Degree() int {
	if len(p.coefficients) == 0 {
		return 0
	}
	return len(p.coefficients) - 1
}

func zeroExtend[S curve.Field[S]](cs []S, n int, zero S) []S {
	if len(cs) >= n {
		return cs
	}
	out := make([]S, n)
	copy(out, cs)
	for i := len(cs); i < n; i++ {
		out[i] = zero
	}
	return out
}

// Add zero-extends the shorter operand and combines elementwise. The
// result is not truncated.
func (p *Polynomial[S]) Add(q *Polynomial[S]) *Polynomial[S] {
	n := len(p.coefficients)
	if len(q.coefficients) > n {
		n = len(q.coefficients)
	}
	var zero S
	a := zeroExtend(p.coefficients, n, zero)
	b := zeroExtend(q.coefficients, n, zero)
	out := make([]S, n)
	for i := 0; i < n; i++ {
		out[i] = a[i].Add(b[i])
	}
	return &Polynomial[S]{coefficients: out}
}

// Sub zero-extends the shorter operand and combines elementwise. The
// result is not truncated.
func (p *Polynomial[S]) Sub(q *Polynomial[S]) *Polynomial[S] {
	n := len(p.coefficients)
	if len(q.coefficients) > n {
		n = len(q.coefficients)
	}
	var zero S
	a := zeroExtend(p.coefficients, n, zero)
	b := zeroExtend(q.coefficients, n, zero)
	out := make([]S, n)
	for i := 0; i < n; i++ {
		out[i] = a[i].Sub(b[i])
	}
	return &Polynomial[S]{coefficients: out}
}

// Scale multiplies every coefficient by s, producing a polynomial of the
// same length.
func (p *Polynomial[S]) Scale(s S) *Polynomial[S] {
	out := make([]S, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Mul(s)
	}
	return &Polynomial[S]{coefficients: out}
}

// ScaleDiv divides every coefficient by s, producing a polynomial of the
// same length.
func (p *Polynomial[S]) ScaleDiv(s S) *Polynomial[S] {
	out := make([]S, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Div(s)
	}
	return &Polynomial[S]{coefficients: out}
}

func trim[S curve.Field[S]](cs []S) []S {
	last := len(cs)
	for last > 0 && cs[last-1].IsZero() {
		last--
	}
	return cs[:last]
}

// Mul computes the convolution of p and q, truncating trailing zero
// coefficients to canonical form. Complexity is O(n*m); FFT-based
// multiplication is out of scope.
func (p *Polynomial[S]) Mul(q *Polynomial[S]) *Polynomial[S] {
	if len(p.coefficients) == 0 || len(q.coefficients) == 0 {
		return &Polynomial[S]{}
	}
	n := len(p.coefficients) + len(q.coefficients) - 1
	var zero S
	out := make([]S, n)
	for i := range out {
		out[i] = zero
	}
	for i, a := range p.coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coefficients {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return &Polynomial[S]{coefficients: trim(out)}
}

// isLeadForm reports whether all but the highest-index coefficient are
// zero: a single monomial c*x^degree (or the zero polynomial).
func (p *Polynomial[S]) isLeadForm() (degree int, lead S, ok bool) {
	if len(p.coefficients) == 0 {
		var zero S
		return 0, zero, true
	}
	hi := len(p.coefficients) - 1
	for ; hi >= 0 && p.coefficients[hi].IsZero(); hi-- {
	}
	if hi < 0 {
		var zero S
		return 0, zero, true
	}
	for i := 0; i < hi; i++ {
		if !p.coefficients[i].IsZero() {
			return 0, p.coefficients[0], false
		}
	}
	return hi, p.coefficients[hi], true
}

// Div performs exact polynomial division, returning fault.NonZeroRemainder
// if q does not divide p exactly and fault.DivisionByZero if q is zero.
func (p *Polynomial[S]) Div(q *Polynomial[S]) (*Polynomial[S], error) {
	if q.IsZero() {
		return nil, fault.New(fault.DivisionByZero, "polynomial division").
			Attach("dividend", p.coefficients)
	}
	if p.IsZero() {
		return &Polynomial[S]{}, nil
	}

	if pDeg, pLead, pOK := p.isLeadForm(); pOK {
		if qDeg, qLead, qOK := q.isLeadForm(); qOK {
			if pDeg < qDeg {
				return nil, fault.New(fault.NonZeroRemainder, "polynomial division").
					Attach("remainder", p.coefficients)
			}
			return monomialDiv(pDeg, pLead, qDeg, qLead)
		}
	}

	qc := trim(q.coefficients)
	qDeg := len(qc) - 1
	qLead := qc[qDeg]

	remainder := New(trim(p.coefficients))
	quotient := &Polynomial[S]{}
	for !remainder.IsZero() && remainder.Degree() >= qDeg {
		rc := trim(remainder.coefficients)
		rDeg := len(rc) - 1
		rLead := rc[rDeg]
		tmp, err := monomialDiv(rDeg, rLead, qDeg, qLead)
		if err != nil {
			return nil, err
		}
		quotient = quotient.Add(tmp)
		remainder = New(trim(remainder.Sub(tmp.Mul(q)).coefficients))
	}
	if !remainder.IsZero() {
		return nil, fault.New(fault.NonZeroRemainder, "polynomial division").
			Attach("remainder", remainder.coefficients)
	}
	return New(trim(quotient.coefficients)), nil
}

// monomialDiv divides the single monomial pLead*x^pDeg by qLead*x^qDeg.
// Callers guarantee pDeg >= qDeg whenever pLead is non-zero.
func monomialDiv[S curve.Field[S]](pDeg int, pLead S, qDeg int, qLead S) (*Polynomial[S], error) {
	if pLead.IsZero() {
		return &Polynomial[S]{}, nil
	}
	degree := pDeg - qDeg
	coeff := pLead.Div(qLead)
	cs := make([]S, degree+1)
	var zero S
	for i := range cs {
		cs[i] = zero
	}
	cs[degree] = coeff
	return &Polynomial[S]{coefficients: trim(cs)}, nil
}

// Interpolate returns the unique polynomial of degree <= len(ys)-1 passing
// through (1, ys[0]), (2, ys[1]), ..., (n, ys[n-1]) — the 1-indexed domain
// used for QAP derivation and vanishing-polynomial construction. Built
// entirely from Add/Scale, neither of which truncates (truncation is a
// multiplication-only canonicalization), so a column of all-zero
// evaluations interpolates to an all-zero polynomial of length n, not the
// empty polynomial.
func Interpolate[S curve.Field[S]](ys []S, fromUint func(uint64) S) *Polynomial[S] {
	n := len(ys)
	result := &Polynomial[S]{}
	for i := 0; i < n; i++ {
		li := lagrangeBasis(n, i, fromUint)
		result = result.Add(li.Scale(ys[i]))
	}
	return New(result.coefficients)
}

// lagrangeBasis builds Li(x) = Π_{j != i} (x - j) / Π_{j != i} (xi - j),
// for xi = i+1 over the domain {1..n}.
func lagrangeBasis[S curve.Field[S]](n, i int, fromUint func(uint64) S) *Polynomial[S] {
	one := fromUint(1)
	num := New([]S{one})
	var zero S
	denom := one
	xi := fromUint(uint64(i + 1))
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		xj := fromUint(uint64(j + 1))
		// (x - xj)
		factor := New([]S{zero.Sub(xj), one})
		num = num.Mul(factor)
		denom = denom.Mul(xi.Sub(xj))
	}
	return num.ScaleDiv(denom)
}

// Evaluate computes P(x) = Σ ai·x^i. The zero polynomial evaluates to the
// field zero.
func (p *Polynomial[S]) Evaluate(x S) S {
	var acc S
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coefficients[i])
	}
	return acc
}

// group is the minimal capability EvaluateOverSRS needs from a source
// group: addition and scalar multiplication by F.
type group[G any, S any] interface {
	Add(G) G
	ScalarMul(S) G
}

// EvaluateOverSRS computes Σ ai·srs[i] in G, given srs[i] = τ^i·G for a
// hidden τ. Fails with fault.SrsTooSmall if srs cannot index every
// coefficient, and fault.NoCoefficients if the polynomial is empty.
func EvaluateOverSRS[G group[G, S], S curve.Field[S]](p *Polynomial[S], srs []G) (G, error) {
	var zero G
	if len(p.coefficients) == 0 {
		return zero, fault.New(fault.NoCoefficients, "evaluate_over_srs")
	}
	if len(srs) < len(p.coefficients) {
		return zero, fault.New(fault.SrsTooSmall, "evaluate_over_srs").
			Attach("srs_len", len(srs)).
			Attach("poly_len", len(p.coefficients))
	}
	acc := srs[0].ScalarMul(p.coefficients[0])
	for i := 1; i < len(p.coefficients); i++ {
		acc = acc.Add(srs[i].ScalarMul(p.coefficients[i]))
	}
	return acc, nil
}
