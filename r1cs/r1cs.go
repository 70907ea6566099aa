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

// Package r1cs holds a Rank-1 Constraint System: three column-major
// matrices L, R, O and the public-witness prefix, with witness
// verification of L·w ∘ R·w = O·w.
package r1cs

import (
	"github.com/mgroves-zk/groth16/curve"
	"github.com/mgroves-zk/groth16/fault"
)

// R1CS stores L, R, O column-major: cols[i] is the i-th witness slot's
// column, of length n_constraints. len(L) == len(R) == len(O) ==
// n_witness is expected of the matrices passed to New; New does not check
// it.
type R1CS[S curve.Field[S]] struct {
	L, R, O       [][]S
	PublicWitness []S
}

// New builds an R1CS from column-major matrices and a public-witness
// prefix. The caller is responsible for len(L) == len(R) == len(O) and
// uniform column length across all three; Verify and QAP derivation
// operate on whatever shape is given.
func New[S curve.Field[S]](l, r, o [][]S, publicWitness []S) *R1CS[S] {
	return &R1CS[S]{L: copyCols(l), R: copyCols(r), O: copyCols(o), PublicWitness: append([]S(nil), publicWitness...)}
}

func copyCols[S curve.Field[S]](cols [][]S) [][]S {
	out := make([][]S, len(cols))
	for i, c := range cols {
		out[i] = append([]S(nil), c...)
	}
	return out
}

// NWitness returns the number of witness slots (columns per matrix).
func (c *R1CS[S]) NWitness() int {
	return len(c.L)
}

// NConstraints returns the number of constraints (rows), taken from the
// first column of L, or 0 if L has no columns.
func (c *R1CS[S]) NConstraints() int {
	if len(c.L) == 0 {
		return 0
	}
	return len(c.L[0])
}

// columnCombination computes Σ wi·cols[i], a length-n_constraints vector.
func columnCombination[S curve.Field[S]](cols [][]S, w []S, nConstraints int) []S {
	out := make([]S, nConstraints)
	for i, col := range cols {
		wi := w[i]
		for j, v := range col {
			out[j] = out[j].Add(v.Mul(wi))
		}
	}
	return out
}

// Verify computes a = Σ wi·Li, b = Σ wi·Ri, o = Σ wi·Oi and accepts iff the
// elementwise Hadamard product a∘b equals o. Fails with fault.EmptyMatrix
// if any matrix has zero columns.
func (c *R1CS[S]) Verify(w []S) (bool, error) {
	if len(c.L) == 0 || len(c.R) == 0 || len(c.O) == 0 {
		return false, fault.New(fault.EmptyMatrix, "R1CS.Verify")
	}
	n := c.NConstraints()
	a := columnCombination(c.L, w, n)
	b := columnCombination(c.R, w, n)
	o := columnCombination(c.O, w, n)
	for i := range a {
		if !a[i].Mul(b[i]).Equal(o[i]) {
			return false, nil
		}
	}
	return true, nil
}
