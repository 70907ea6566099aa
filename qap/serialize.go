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

package qap

import (
	"github.com/mgroves-zk/groth16/curve"
	"github.com/mgroves-zk/groth16/polynomial"
	"github.com/mgroves-zk/groth16/serialize"
)

const kind = "groth16.qap.v1"

type wirePolynomial struct {
	Coefficients []string `json:"coefficients"`
}

type wireQAP struct {
	U             []wirePolynomial `json:"u"`
	V             []wirePolynomial `json:"v"`
	W             []wirePolynomial `json:"w"`
	PublicWitness []string         `json:"public_witness"`
}

func encodePolys[S curve.Field[S]](polys []*polynomial.Polynomial[S], codec serialize.ScalarCodec[S]) []wirePolynomial {
	out := make([]wirePolynomial, len(polys))
	for i, p := range polys {
		out[i] = wirePolynomial{Coefficients: serialize.EncodePolynomial(p.Coefficients(), codec)}
	}
	return out
}

func decodePolys[S curve.Field[S]](wire []wirePolynomial, codec serialize.ScalarCodec[S]) ([]*polynomial.Polynomial[S], error) {
	out := make([]*polynomial.Polynomial[S], len(wire))
	for i, w := range wire {
		cs, err := serialize.DecodePolynomial(w.Coefficients, codec)
		if err != nil {
			return nil, err
		}
		out[i] = polynomial.New(cs)
	}
	return out, nil
}

// Marshal renders q as a self-describing text envelope, using codec to
// encode field elements.
func (q *QAP[S]) Marshal(codec serialize.ScalarCodec[S]) ([]byte, error) {
	w := wireQAP{
		U:             encodePolys(q.U, codec),
		V:             encodePolys(q.V, codec),
		W:             encodePolys(q.W, codec),
		PublicWitness: serialize.EncodePolynomial(q.PublicWitness, codec),
	}
	return serialize.Wrap(kind, w)
}

// Unmarshal parses data into a fresh QAP, using codec to decode field
// elements. deserialize(serialize(q)) reproduces q exactly.
func Unmarshal[S curve.Field[S]](data []byte, codec serialize.ScalarCodec[S]) (*QAP[S], error) {
	var w wireQAP
	if err := serialize.Unwrap(data, kind, &w); err != nil {
		return nil, err
	}
	u, err := decodePolys(w.U, codec)
	if err != nil {
		return nil, err
	}
	v, err := decodePolys(w.V, codec)
	if err != nil {
		return nil, err
	}
	ww, err := decodePolys(w.W, codec)
	if err != nil {
		return nil, err
	}
	pw, err := serialize.DecodePolynomial(w.PublicWitness, codec)
	if err != nil {
		return nil, err
	}
	return &QAP[S]{U: u, V: v, W: ww, PublicWitness: pw}, nil
}
