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

package bn254_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	bn254curve "github.com/mgroves-zk/groth16/curve/bn254"
)

func TestScalarFieldLaws(t *testing.T) {
	c := bn254curve.New()
	a, err := c.SampleScalar(rand.Reader)
	require.NoError(t, err)
	b, err := c.SampleScalar(rand.Reader)
	require.NoError(t, err)

	require.True(t, a.Add(b).Sub(b).Equal(a))
	require.True(t, a.Mul(b).Div(b).Equal(a))
	require.True(t, a.Exp(0).Equal(bn254curve.FromUint(1)))
	require.True(t, bn254curve.FromUint(0).IsZero())
	require.False(t, a.IsZero())
}

func TestSampleScalarExhaustsReaderGracefully(t *testing.T) {
	_, err := bn254curve.SampleScalar(bytes.NewReader(nil))
	require.Error(t, err)
}

func TestG1AddSubRoundTrip(t *testing.T) {
	c := bn254curve.New()
	s, err := c.SampleScalar(rand.Reader)
	require.NoError(t, err)

	p := c.Generator1.ScalarMul(s)
	q := c.Generator1.ScalarMul(bn254curve.FromUint(1))

	require.True(t, p.Add(q).Sub(q).Equal(p))
}

func TestG2ScalarMulDistributesOverFieldAdd(t *testing.T) {
	c := bn254curve.New()
	a, err := c.SampleScalar(rand.Reader)
	require.NoError(t, err)
	b, err := c.SampleScalar(rand.Reader)
	require.NoError(t, err)

	lhs := c.Generator2.ScalarMul(a.Add(b))
	rhs := c.Generator2.ScalarMul(a).Add(c.Generator2.ScalarMul(b))

	require.True(t, lhs.Equal(rhs))
}

func TestPairingIsBilinear(t *testing.T) {
	c := bn254curve.New()
	a, err := c.SampleScalar(rand.Reader)
	require.NoError(t, err)
	b, err := c.SampleScalar(rand.Reader)
	require.NoError(t, err)

	lhs := c.Pair(c.Generator1.ScalarMul(a), c.Generator2.ScalarMul(b))
	rhs := c.Pair(c.Generator1, c.Generator2.ScalarMul(a.Mul(b)))

	require.True(t, lhs.Equal(rhs))
}

func TestBytesIsDeterministic(t *testing.T) {
	c := bn254curve.New()
	require.Equal(t, c.Generator1.Bytes(), c.Generator1.Bytes())
	require.Equal(t, c.Generator2.Bytes(), c.Generator2.Bytes())
}
