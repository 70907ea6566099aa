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

// Package qap derives a Quadratic Arithmetic Program from an R1CS: one
// polynomial per witness slot per matrix, obtained by Lagrange
// interpolation of that slot's column over the domain {1..n_constraints}.
package qap

import (
	"github.com/mgroves-zk/groth16/curve"
	"github.com/mgroves-zk/groth16/fault"
	"github.com/mgroves-zk/groth16/polynomial"
	"github.com/mgroves-zk/groth16/r1cs"
)

// QAP holds u, v, w — one polynomial per witness slot — plus the
// public-witness prefix carried through from the source R1CS.
type QAP[S curve.Field[S]] struct {
	U, V, W       []*polynomial.Polynomial[S]
	PublicWitness []S
}

// From interpolates each column of L, R, O into u, v, w respectively, over
// the 1-indexed domain {1, 2, ..., n_constraints}.
func From[S curve.Field[S]](r *r1cs.R1CS[S], fromUint func(uint64) S) *QAP[S] {
	return &QAP[S]{
		U:             interpolateColumns(r.L, fromUint),
		V:             interpolateColumns(r.R, fromUint),
		W:             interpolateColumns(r.O, fromUint),
		PublicWitness: append([]S(nil), r.PublicWitness...),
	}
}

func interpolateColumns[S curve.Field[S]](cols [][]S, fromUint func(uint64) S) []*polynomial.Polynomial[S] {
	out := make([]*polynomial.Polynomial[S], len(cols))
	for i, col := range cols {
		out[i] = polynomial.Interpolate(col, fromUint)
	}
	return out
}

// Degree returns n_constraints, i.e. max_poly_degree + 1: the coefficient
// length each of u, v, w's polynomials was interpolated to, NOT the number
// of witness slots (len(q.U) == n_witness, a different quantity).
func (q *QAP[S]) Degree() int {
	if len(q.U) == 0 {
		return 0
	}
	return len(q.U[0].Coefficients())
}

// sumWeighted computes Σ wi·polys[i].
func sumWeighted[S curve.Field[S]](polys []*polynomial.Polynomial[S], w []S) *polynomial.Polynomial[S] {
	acc := &polynomial.Polynomial[S]{}
	for i, p := range polys {
		acc = acc.Add(p.Scale(w[i]))
	}
	return acc
}

// Verify is a probabilistic (NOT cryptographically sound) satisfiability
// check used only in tests: sample tau, form A = Σwi·ui, B = Σwi·vi,
// W = Σwi·wi, HT = A·B − W, and accept iff A(tau)·B(tau) = W(tau) + HT(tau).
// Also rejects if len(w) disagrees with any of U, V, W.
func (q *QAP[S]) Verify(w []S, tau S) (bool, error) {
	if len(w) != len(q.U) || len(w) != len(q.V) || len(w) != len(q.W) {
		return false, fault.New(fault.WitnessSizeMismatch, "QAP.Verify").
			Attach("witness_len", len(w)).
			Attach("qap_len", len(q.U))
	}
	a := sumWeighted(q.U, w)
	b := sumWeighted(q.V, w)
	ww := sumWeighted(q.W, w)
	ht := a.Mul(b).Sub(ww)

	lhs := a.Evaluate(tau).Mul(b.Evaluate(tau))
	rhs := ww.Evaluate(tau).Add(ht.Evaluate(tau))
	return lhs.Equal(rhs), nil
}
