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

// Package serialize provides the self-describing text framing that
// qap.QAP, groth16.TrustedSetup and groth16.Proof marshal through: a
// typed JSON envelope wrapping hex-encoded field/group element payloads.
// Field and group elements are opaque to this package; their canonical
// byte encoding is supplied by the curve collaborator via a Codec.
package serialize

import (
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// envelope is the wire format every Marshal function in this module
// produces: a type tag plus an opaque JSON payload, so a deserializer can
// reject a payload of the wrong kind before attempting to parse it.
type envelope struct {
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Wrap marshals payload under kind into the envelope's text form.
func Wrap(kind string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "serialize: marshal payload")
	}
	out, err := json.Marshal(envelope{Kind: kind, Payload: raw})
	if err != nil {
		return nil, errors.Wrap(err, "serialize: marshal envelope")
	}
	return out, nil
}

// Unwrap checks that data's envelope kind matches wantKind and unmarshals
// its payload into out.
func Unwrap(data []byte, wantKind string, out interface{}) error {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return errors.Wrap(err, "serialize: unmarshal envelope")
	}
	if e.Kind != wantKind {
		return errors.Errorf("serialize: expected kind %q, got %q", wantKind, e.Kind)
	}
	if err := json.Unmarshal(e.Payload, out); err != nil {
		return errors.Wrap(err, "serialize: unmarshal payload")
	}
	return nil
}

// HexEncode renders b as lowercase hex for embedding in a JSON payload.
func HexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

// HexDecode is the inverse of HexEncode.
func HexDecode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "serialize: decode hex")
	}
	return b, nil
}

// ScalarCodec supplies the byte encoding/decoding for a scalar field that
// curve.Field itself does not: Bytes() is one-way, so recovering a field
// element from its encoding needs the curve collaborator's own parser.
type ScalarCodec[S any] struct {
	Encode func(S) []byte
	Decode func([]byte) (S, error)
}

// GroupCodec supplies the byte encoding/decoding for a source or target
// group element, analogous to ScalarCodec.
type GroupCodec[G any] struct {
	Encode func(G) []byte
	Decode func([]byte) (G, error)
}

// EncodePolynomial hex-encodes a coefficient sequence for embedding in a
// JSON payload.
func EncodePolynomial[S any](coefficients []S, codec ScalarCodec[S]) []string {
	out := make([]string, len(coefficients))
	for i, c := range coefficients {
		out[i] = HexEncode(codec.Encode(c))
	}
	return out
}

// DecodePolynomial is the inverse of EncodePolynomial.
func DecodePolynomial[S any](hexCoefficients []string, codec ScalarCodec[S]) ([]S, error) {
	out := make([]S, len(hexCoefficients))
	for i, h := range hexCoefficients {
		b, err := HexDecode(h)
		if err != nil {
			return nil, err
		}
		s, err := codec.Decode(b)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize: decode coefficient %d", i)
		}
		out[i] = s
	}
	return out, nil
}
