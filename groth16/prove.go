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
	"io"

	"github.com/rs/zerolog/log"

	"github.com/mgroves-zk/groth16/curve"
	"github.com/mgroves-zk/groth16/fault"
	"github.com/mgroves-zk/groth16/polynomial"
)

// Proof is a Groth16 proof: three group elements (A in G1, B in G2, C in
// G1). It does not reference the TrustedSetup that produced it.
type Proof[G1 any, G2 any] struct {
	A G1
	B G2
	C G1
}

// evaluateWeighted evaluates each of polys over srs, then forms
// Σ wi·evaluated_i.
func evaluateWeighted[G group[G, S], S curve.Field[S]](
	polys []*polynomial.Polynomial[S], w []S, srs []G,
) (G, error) {
	var zero G
	if len(w) != len(polys) {
		return zero, fault.New(fault.WitnessSizeMismatch, "groth16 prove: witness evaluation").
			Attach("witness_len", len(w)).
			Attach("expected_len", len(polys))
	}
	if len(polys) == 0 {
		return zero, fault.New(fault.EmptyWitness, "groth16 prove: witness evaluation")
	}
	acc := zero
	first := true
	for i, p := range polys {
		evaluated, err := polynomial.EvaluateOverSRS[G](p, srs)
		if err != nil {
			return zero, err
		}
		term := evaluated.ScalarMul(w[i])
		if first {
			acc = term
			first = false
			continue
		}
		acc = acc.Add(term)
	}
	return acc, nil
}

// calculateH computes H(x) = (A'(x)·B'(x) - W'(x)) / t(x), where A', B',
// W' are Σ wi·ui, Σ wi·vi, Σ wi·wi as plain (not SRS-evaluated)
// polynomials. Division must be exact; fault.NonZeroRemainder signals an
// inconsistent witness.
func (ts *TrustedSetup[S, G1, G2, GT]) calculateH(witness []S) (*polynomial.Polynomial[S], error) {
	aPoly := &polynomial.Polynomial[S]{}
	bPoly := &polynomial.Polynomial[S]{}
	wPoly := &polynomial.Polynomial[S]{}
	for i, wi := range witness {
		aPoly = aPoly.Add(ts.qap.U[i].Scale(wi))
		bPoly = bPoly.Add(ts.qap.V[i].Scale(wi))
		wPoly = wPoly.Add(ts.qap.W[i].Scale(wi))
	}
	numerator := aPoly.Mul(bPoly).Sub(wPoly)
	h, err := numerator.Div(ts.t)
	if err != nil {
		return nil, fault.Wrap(err, fault.NonZeroRemainder, "groth16 prove: computing H")
	}
	return h, nil
}

// Prove produces a Groth16 proof of knowledge of witness, a full
// assignment (public prefix + private suffix) satisfying the R1CS this
// setup's QAP was derived from. Two fresh blinding scalars r, s are drawn
// from rnd per call, so repeated calls on the same witness yield distinct
// proofs.
func (ts *TrustedSetup[S, G1, G2, GT]) Prove(witness []S, rnd io.Reader) (*Proof[G1, G2], error) {
	if len(witness) == 0 {
		return nil, fault.New(fault.EmptyWitness, "groth16 prove")
	}
	if len(witness) != len(ts.qap.U) {
		return nil, fault.New(fault.WitnessSizeMismatch, "groth16 prove").
			Attach("witness_len", len(witness)).
			Attach("qap_len", len(ts.qap.U))
	}

	r, err := ts.curve.SampleScalar(rnd)
	if err != nil {
		return nil, fault.Wrap(err, fault.EntropyUnavailable, "groth16 prove: sampling r")
	}
	s, err := ts.curve.SampleScalar(rnd)
	if err != nil {
		return nil, fault.Wrap(err, fault.EntropyUnavailable, "groth16 prove: sampling s")
	}

	evalU, err := evaluateWeighted[G1](ts.qap.U, witness, ts.srs1)
	if err != nil {
		return nil, err
	}
	a := ts.alpha1.Add(evalU).Add(ts.delta1.ScalarMul(r))
	log.Debug().Msg("computed A")

	evalV2, err := evaluateWeighted[G2](ts.qap.V, witness, ts.srs2)
	if err != nil {
		return nil, err
	}
	b2 := ts.beta2.Add(evalV2).Add(ts.delta2.ScalarMul(s))
	log.Debug().Msg("computed B")

	evalV1, err := evaluateWeighted[G1](ts.qap.V, witness, ts.srs1)
	if err != nil {
		return nil, err
	}
	b1 := ts.beta1.Add(evalV1).Add(ts.delta1.ScalarMul(s))

	h, err := ts.calculateH(witness)
	if err != nil {
		return nil, err
	}
	// A zero H contributes nothing to C (HT is the empty sum), so it is
	// only evaluated over the zero-polynomial SRS when non-zero.
	var ht G1
	hasHT := !h.IsZero()
	if hasHT {
		ht, err = polynomial.EvaluateOverSRS[G1](h, ts.zSRS)
		if err != nil {
			return nil, fault.Wrap(err, fault.SrsTooSmall, "groth16 prove: evaluating H over zero-polynomial SRS")
		}
		log.Debug().Msg("computed HT")
	}

	m := len(ts.qap.PublicWitness)
	if m >= len(witness) {
		return nil, fault.New(fault.EmptyWitness, "groth16 prove: no private witness slots").
			Attach("public_witness_len", m).
			Attach("witness_len", len(witness))
	}
	var c G1
	first := true
	for i := m; i < len(witness); i++ {
		term := ts.psi[i].ScalarMul(witness[i])
		if first {
			c = term
			first = false
			continue
		}
		c = c.Add(term)
	}
	if hasHT {
		c = c.Add(ht)
	}
	c = c.Add(a.ScalarMul(s)).Add(b1.ScalarMul(r)).Sub(ts.delta1.ScalarMul(r.Mul(s)))

	log.Debug().Msg("proof generated")
	return &Proof[G1, G2]{A: a, B: b2, C: c}, nil
}
