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
	"github.com/mgroves-zk/groth16/qap"
)

// TrustedSetup is the structured reference string derived from a QAP and
// fresh toxic waste (alpha, beta, gamma, delta, tau). It owns its QAP and,
// once constructed, is immutable; none of the sampled scalars are
// retained on it.
type TrustedSetup[S curve.Field[S], G1 curve.Group1[G1, S], G2 curve.Group2[G2, S], GT curve.TargetGroup[GT]] struct {
	qap   *qap.QAP[S]
	curve curve.Curve[S, G1, G2, GT]

	alpha1 G1
	beta1  G1
	beta2  G2
	gamma2 G2
	delta1 G1
	delta2 G2

	srs1 []G1
	srs2 []G2
	zSRS []G1
	psi  []G1

	t *polynomial.Polynomial[S] // vanishing polynomial, public
}

// group is the minimal capability this package needs from a source group:
// addition and scalar multiplication by F. Both curve.Group1 and
// curve.Group2 satisfy it.
type group[G any, S any] interface {
	Add(G) G
	ScalarMul(S) G
}

func srsPowers[G group[G, S], S curve.Field[S]](length int, tau S, generator G) []G {
	out := make([]G, length)
	for i := 0; i < length; i++ {
		out[i] = generator.ScalarMul(tau.Exp(uint64(i)))
	}
	return out
}

// vanishingPolynomial builds t(x) = Π_{k=1..d} (x - k), the monic
// polynomial whose roots are exactly the interpolation domain.
func vanishingPolynomial[S curve.Field[S]](d int, fromUint func(uint64) S) (*polynomial.Polynomial[S], error) {
	if d == 0 {
		return nil, fault.New(fault.DegreeZeroQAP, "trusted setup: vanishing polynomial")
	}
	var zero S
	one := fromUint(1)
	result := polynomial.New([]S{one})
	for k := 1; k <= d; k++ {
		kk := fromUint(uint64(k))
		factor := polynomial.New([]S{zero.Sub(kk), one})
		result = result.Mul(factor)
	}
	return result, nil
}

// zeroPolynomialSRS builds, for i in [0, length), the G1-evaluation of
// (x^i * t(x)) / delta over srs1.
func zeroPolynomialSRS[S curve.Field[S], G1 group[G1, S]](
	t *polynomial.Polynomial[S], length int, delta S, srs1 []G1, fromUint func(uint64) S,
) ([]G1, error) {
	out := make([]G1, length)
	var zero S
	one := fromUint(1)
	for i := 0; i < length; i++ {
		coeffs := make([]S, i+1)
		for j := range coeffs {
			coeffs[j] = zero
		}
		coeffs[i] = one
		monomial := polynomial.New(coeffs)
		poly := monomial.Mul(t).ScaleDiv(delta)
		v, err := polynomial.EvaluateOverSRS[G1](poly, srs1)
		if err != nil {
			return nil, fault.Wrap(err, fault.SrsTooSmall, "trusted setup: zero polynomial SRS").
				Attach("index", i)
		}
		out[i] = v
	}
	return out, nil
}

// psiPolynomials builds, for each witness slot i, the G1-evaluation of
// (beta*ui(x) + alpha*vi(x) + wi(x)) / kappa_i over srs1, where kappa_i is
// gamma for public slots and delta for private ones.
func psiPolynomials[S curve.Field[S], G1 group[G1, S]](
	q *qap.QAP[S], srs1 []G1, alpha, beta, gamma, delta S,
) ([]G1, error) {
	out := make([]G1, len(q.U))
	m := len(q.PublicWitness)
	for i := range q.U {
		kappa := delta
		if i < m {
			kappa = gamma
		}
		combined := q.U[i].Scale(beta).Add(q.V[i].Scale(alpha)).Add(q.W[i]).ScaleDiv(kappa)
		v, err := polynomial.EvaluateOverSRS[G1](combined, srs1)
		if err != nil {
			return nil, fault.Wrap(err, fault.SrsTooSmall, "trusted setup: psi polynomials").
				Attach("index", i)
		}
		out[i] = v
	}
	return out, nil
}

// Setup draws fresh toxic waste (alpha, beta, gamma, delta, tau) from rnd
// and derives the full structured reference string for q. tau, alpha,
// beta, gamma and delta are local to this call and are never stored on
// the returned TrustedSetup.
func Setup[S curve.Field[S], G1 curve.Group1[G1, S], G2 curve.Group2[G2, S], GT curve.TargetGroup[GT]](
	q *qap.QAP[S], c curve.Curve[S, G1, G2, GT], rnd io.Reader,
) (*TrustedSetup[S, G1, G2, GT], error) {
	log.Debug().Msg("starting trusted setup")

	d := q.Degree()
	if d == 0 {
		return nil, fault.New(fault.DegreeZeroQAP, "trusted setup")
	}

	alpha, err := c.SampleScalar(rnd)
	if err != nil {
		return nil, fault.Wrap(err, fault.EntropyUnavailable, "trusted setup: sampling alpha")
	}
	beta, err := c.SampleScalar(rnd)
	if err != nil {
		return nil, fault.Wrap(err, fault.EntropyUnavailable, "trusted setup: sampling beta")
	}
	gamma, err := c.SampleScalar(rnd)
	if err != nil {
		return nil, fault.Wrap(err, fault.EntropyUnavailable, "trusted setup: sampling gamma")
	}
	delta, err := c.SampleScalar(rnd)
	if err != nil {
		return nil, fault.Wrap(err, fault.EntropyUnavailable, "trusted setup: sampling delta")
	}
	tau, err := c.SampleScalar(rnd)
	if err != nil {
		return nil, fault.Wrap(err, fault.EntropyUnavailable, "trusted setup: sampling tau")
	}
	log.Debug().Msg("generated toxic waste")

	srs1 := srsPowers[G1](2*d-1, tau, c.Generator1)
	log.Debug().Int("len", len(srs1)).Msg("generated group 1 SRS")

	srs2 := srsPowers[G2](d, tau, c.Generator2)
	log.Debug().Int("len", len(srs2)).Msg("generated group 2 SRS")

	t, err := vanishingPolynomial(d, c.FromUint)
	if err != nil {
		return nil, err
	}
	log.Debug().Msg("generated vanishing polynomial")

	zSRS, err := zeroPolynomialSRS(t, d-1, delta, srs1, c.FromUint)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("len", len(zSRS)).Msg("generated zero polynomial SRS")

	psi, err := psiPolynomials(q, srs1, alpha, beta, gamma, delta)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("len", len(psi)).Msg("generated psi polynomials")

	ts := &TrustedSetup[S, G1, G2, GT]{
		qap:    q,
		curve:  c,
		alpha1: c.Generator1.ScalarMul(alpha),
		beta1:  c.Generator1.ScalarMul(beta),
		beta2:  c.Generator2.ScalarMul(beta),
		gamma2: c.Generator2.ScalarMul(gamma),
		delta1: c.Generator1.ScalarMul(delta),
		delta2: c.Generator2.ScalarMul(delta),
		srs1:   srs1,
		srs2:   srs2,
		zSRS:   zSRS,
		psi:    psi,
		t:      t,
	}
	log.Debug().Msg("trusted setup complete")
	// alpha, beta, gamma, delta, tau go out of scope here; a production
	// implementation would additionally zero their backing storage.
	return ts, nil
}
