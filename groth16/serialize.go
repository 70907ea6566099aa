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
	"github.com/mgroves-zk/groth16/curve"
	"github.com/mgroves-zk/groth16/polynomial"
	"github.com/mgroves-zk/groth16/qap"
	"github.com/mgroves-zk/groth16/serialize"
)

const (
	proofKind = "groth16.proof.v1"
	setupKind = "groth16.trusted_setup.v1"
)

type wireProof struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
}

// Marshal renders proof as a self-describing text envelope.
func (proof *Proof[G1, G2]) Marshal(g1Codec serialize.GroupCodec[G1], g2Codec serialize.GroupCodec[G2]) ([]byte, error) {
	w := wireProof{
		A: serialize.HexEncode(g1Codec.Encode(proof.A)),
		B: serialize.HexEncode(g2Codec.Encode(proof.B)),
		C: serialize.HexEncode(g1Codec.Encode(proof.C)),
	}
	return serialize.Wrap(proofKind, w)
}

// UnmarshalProof parses data into a fresh Proof. deserialize(serialize(p))
// reproduces p exactly.
func UnmarshalProof[G1 any, G2 any](
	data []byte, g1Codec serialize.GroupCodec[G1], g2Codec serialize.GroupCodec[G2],
) (*Proof[G1, G2], error) {
	var w wireProof
	if err := serialize.Unwrap(data, proofKind, &w); err != nil {
		return nil, err
	}
	aBytes, err := serialize.HexDecode(w.A)
	if err != nil {
		return nil, err
	}
	a, err := g1Codec.Decode(aBytes)
	if err != nil {
		return nil, err
	}
	bBytes, err := serialize.HexDecode(w.B)
	if err != nil {
		return nil, err
	}
	b, err := g2Codec.Decode(bBytes)
	if err != nil {
		return nil, err
	}
	cBytes, err := serialize.HexDecode(w.C)
	if err != nil {
		return nil, err
	}
	c, err := g1Codec.Decode(cBytes)
	if err != nil {
		return nil, err
	}
	return &Proof[G1, G2]{A: a, B: b, C: c}, nil
}

type wireTrustedSetup struct {
	QAP    []byte   `json:"qap"`
	Alpha1 string   `json:"alpha1"`
	Beta1  string   `json:"beta1"`
	Beta2  string   `json:"beta2"`
	Gamma2 string   `json:"gamma2"`
	Delta1 string   `json:"delta1"`
	Delta2 string   `json:"delta2"`
	SRS1   []string `json:"srs1"`
	SRS2   []string `json:"srs2"`
	ZSRS   []string `json:"z_srs"`
	Psi    []string `json:"psi"`
	T      []string `json:"t"`
}

// Codec bundles the scalar and group codecs Marshal/Unmarshal need to
// encode and decode a TrustedSetup's field and group elements.
type Codec[S any, G1 any, G2 any] struct {
	Scalar serialize.ScalarCodec[S]
	G1     serialize.GroupCodec[G1]
	G2     serialize.GroupCodec[G2]
}

func encodeGroupSlice[G any](xs []G, codec serialize.GroupCodec[G]) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = serialize.HexEncode(codec.Encode(x))
	}
	return out
}

func decodeGroupSlice[G any](xs []string, codec serialize.GroupCodec[G]) ([]G, error) {
	out := make([]G, len(xs))
	for i, h := range xs {
		b, err := serialize.HexDecode(h)
		if err != nil {
			return nil, err
		}
		v, err := codec.Decode(b)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Marshal renders ts as a self-describing text envelope. The curve
// descriptor threaded through ts (generators, pairing, sampler) is not
// part of the encoding; Unmarshal takes it back as a parameter.
func (ts *TrustedSetup[S, G1, G2, GT]) Marshal(codec Codec[S, G1, G2]) ([]byte, error) {
	qapBytes, err := ts.qap.Marshal(codec.Scalar)
	if err != nil {
		return nil, err
	}
	w := wireTrustedSetup{
		QAP:    qapBytes,
		Alpha1: serialize.HexEncode(codec.G1.Encode(ts.alpha1)),
		Beta1:  serialize.HexEncode(codec.G1.Encode(ts.beta1)),
		Beta2:  serialize.HexEncode(codec.G2.Encode(ts.beta2)),
		Gamma2: serialize.HexEncode(codec.G2.Encode(ts.gamma2)),
		Delta1: serialize.HexEncode(codec.G1.Encode(ts.delta1)),
		Delta2: serialize.HexEncode(codec.G2.Encode(ts.delta2)),
		SRS1:   encodeGroupSlice(ts.srs1, codec.G1),
		SRS2:   encodeGroupSlice(ts.srs2, codec.G2),
		ZSRS:   encodeGroupSlice(ts.zSRS, codec.G1),
		Psi:    encodeGroupSlice(ts.psi, codec.G1),
		T:      serialize.EncodePolynomial(ts.t.Coefficients(), codec.Scalar),
	}
	return serialize.Wrap(setupKind, w)
}

// Unmarshal parses data into a fresh TrustedSetup, re-attaching c as the
// curve descriptor (its generators, pairing and sampler are not part of
// the encoding). deserialize(serialize(ts)) reproduces ts's data exactly.
func Unmarshal[S curve.Field[S], G1 curve.Group1[G1, S], G2 curve.Group2[G2, S], GT curve.TargetGroup[GT]](
	data []byte, c curve.Curve[S, G1, G2, GT], codec Codec[S, G1, G2],
) (*TrustedSetup[S, G1, G2, GT], error) {
	var w wireTrustedSetup
	if err := serialize.Unwrap(data, setupKind, &w); err != nil {
		return nil, err
	}
	q, err := qap.Unmarshal[S](w.QAP, codec.Scalar)
	if err != nil {
		return nil, err
	}

	decodeOneG1 := func(h string) (G1, error) {
		b, err := serialize.HexDecode(h)
		if err != nil {
			var zero G1
			return zero, err
		}
		return codec.G1.Decode(b)
	}
	decodeOneG2 := func(h string) (G2, error) {
		b, err := serialize.HexDecode(h)
		if err != nil {
			var zero G2
			return zero, err
		}
		return codec.G2.Decode(b)
	}

	alpha1, err := decodeOneG1(w.Alpha1)
	if err != nil {
		return nil, err
	}
	beta1, err := decodeOneG1(w.Beta1)
	if err != nil {
		return nil, err
	}
	beta2, err := decodeOneG2(w.Beta2)
	if err != nil {
		return nil, err
	}
	gamma2, err := decodeOneG2(w.Gamma2)
	if err != nil {
		return nil, err
	}
	delta1, err := decodeOneG1(w.Delta1)
	if err != nil {
		return nil, err
	}
	delta2, err := decodeOneG2(w.Delta2)
	if err != nil {
		return nil, err
	}
	srs1, err := decodeGroupSlice(w.SRS1, codec.G1)
	if err != nil {
		return nil, err
	}
	srs2, err := decodeGroupSlice(w.SRS2, codec.G2)
	if err != nil {
		return nil, err
	}
	zSRS, err := decodeGroupSlice(w.ZSRS, codec.G1)
	if err != nil {
		return nil, err
	}
	psi, err := decodeGroupSlice(w.Psi, codec.G1)
	if err != nil {
		return nil, err
	}
	tCoeffs, err := serialize.DecodePolynomial(w.T, codec.Scalar)
	if err != nil {
		return nil, err
	}

	return &TrustedSetup[S, G1, G2, GT]{
		qap:    q,
		curve:  c,
		alpha1: alpha1,
		beta1:  beta1,
		beta2:  beta2,
		gamma2: gamma2,
		delta1: delta1,
		delta2: delta2,
		srs1:   srs1,
		srs2:   srs2,
		zSRS:   zSRS,
		psi:    psi,
		t:      polynomial.New(tCoeffs),
	}, nil
}
