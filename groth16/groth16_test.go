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

package groth16_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	bn254curve "github.com/mgroves-zk/groth16/curve/bn254"
	"github.com/mgroves-zk/groth16/fault"
	"github.com/mgroves-zk/groth16/groth16"
	"github.com/mgroves-zk/groth16/qap"
	"github.com/mgroves-zk/groth16/r1cs"
)

// rXYZU builds the r = x*y*z*u R1CS: witness slots
// [1, r, x, y, z, u, x*y, z*u], three constraints, empty public witness.
func rXYZU() *r1cs.R1CS[bn254curve.Scalar] {
	s := bn254curve.FromUint
	zero, one := s(0), s(1)

	l := [][]bn254curve.Scalar{
		{zero, zero, zero}, // 1
		{zero, zero, zero}, // r
		{one, zero, zero},  // x
		{zero, zero, zero}, // y
		{zero, one, zero},  // z
		{zero, zero, zero}, // u
		{zero, zero, one},  // t1 = x*y
		{zero, zero, zero}, // t2 = z*u
	}
	r := [][]bn254curve.Scalar{
		{zero, zero, zero}, // 1
		{zero, zero, zero}, // r
		{zero, zero, zero}, // x
		{one, zero, zero},  // y
		{zero, zero, zero}, // z
		{zero, one, zero},  // u
		{zero, zero, zero}, // t1
		{zero, zero, one},  // t2
	}
	o := [][]bn254curve.Scalar{
		{zero, zero, zero}, // 1
		{zero, zero, one},  // r
		{zero, zero, zero}, // x
		{zero, zero, zero}, // y
		{zero, zero, zero}, // z
		{zero, zero, zero}, // u
		{one, zero, zero},  // t1
		{zero, one, zero},  // t2
	}
	return r1cs.New(l, r, o, nil)
}

func witnessXYZU(x, y, z, u uint64) []bn254curve.Scalar {
	s := bn254curve.FromUint
	t1 := x * y
	t2 := z * u
	rv := t1 * t2
	return []bn254curve.Scalar{s(1), s(rv), s(x), s(y), s(z), s(u), s(t1), s(t2)}
}

func TestGroth16EndToEnd(t *testing.T) {
	cs := rXYZU()
	q := qap.From(cs, bn254curve.FromUint)
	c := bn254curve.New()

	ts, err := groth16.Setup(q, c, rand.Reader)
	require.NoError(t, err)

	w := witnessXYZU(2, 3, 5, 7)
	proof, err := ts.Prove(w, rand.Reader)
	require.NoError(t, err)

	require.True(t, groth16.Verify(proof, ts, q.PublicWitness))
}

func TestGroth16RejectsWrongWitness(t *testing.T) {
	cs := rXYZU()
	q := qap.From(cs, bn254curve.FromUint)
	c := bn254curve.New()

	ts, err := groth16.Setup(q, c, rand.Reader)
	require.NoError(t, err)

	good := witnessXYZU(2, 3, 5, 7)
	bad := append([]bn254curve.Scalar(nil), good...)
	bad[1] = bn254curve.FromUint(999999) // corrupt r: x*y*z*u != r

	// An unsatisfying witness makes A'(x)*B'(x) - W'(x) not divisible by
	// t(x) exactly; calculateH's division surfaces that as
	// fault.NonZeroRemainder rather than producing a proof that would
	// fail verification.
	_, err = ts.Prove(bad, rand.Reader)
	require.Error(t, err)
	require.True(t, fault.Is(err, fault.NonZeroRemainder))
}

func TestGroth16ProveDistinctEachCall(t *testing.T) {
	cs := rXYZU()
	q := qap.From(cs, bn254curve.FromUint)
	c := bn254curve.New()

	ts, err := groth16.Setup(q, c, rand.Reader)
	require.NoError(t, err)

	w := witnessXYZU(2, 3, 5, 7)
	p1, err := ts.Prove(w, rand.Reader)
	require.NoError(t, err)
	p2, err := ts.Prove(w, rand.Reader)
	require.NoError(t, err)

	require.False(t, p1.A.Equal(p2.A), "two proofs of the same witness should differ (fresh r, s)")
}

func TestGroth16SetupDegreeZeroQAPFails(t *testing.T) {
	c := bn254curve.New()
	q := &qap.QAP[bn254curve.Scalar]{}

	_, err := groth16.Setup(q, c, rand.Reader)
	require.Error(t, err)
	require.True(t, fault.Is(err, fault.DegreeZeroQAP))
}

func TestGroth16ProveEmptyWitnessFails(t *testing.T) {
	cs := rXYZU()
	q := qap.From(cs, bn254curve.FromUint)
	c := bn254curve.New()

	ts, err := groth16.Setup(q, c, rand.Reader)
	require.NoError(t, err)

	_, err = ts.Prove(nil, rand.Reader)
	require.Error(t, err)
	require.True(t, fault.Is(err, fault.EmptyWitness))
}

func TestGroth16ProveWitnessSizeMismatchFails(t *testing.T) {
	cs := rXYZU()
	q := qap.From(cs, bn254curve.FromUint)
	c := bn254curve.New()

	ts, err := groth16.Setup(q, c, rand.Reader)
	require.NoError(t, err)

	_, err = ts.Prove([]bn254curve.Scalar{bn254curve.FromUint(1)}, rand.Reader)
	require.Error(t, err)
	require.True(t, fault.Is(err, fault.WitnessSizeMismatch))
}
