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

// Package groth16 implements the Groth16 zk-SNARK: a one-shot trusted
// setup over a QAP, a constant-size three-element proof, and pairing-based
// verification.
//
// # Academic implementation; DO NOT use in production.
//
// This library was written for educational purposes and has not been
// audited. It has no protection against a malicious or compromised
// trusted setup, no side-channel hardening, and no subversion resistance.
//
// The intended flow is:
//
//	r := r1cs.New(l, r_, o, publicWitness)
//	q := qap.From(r, curveDescriptor.FromUint)
//	ts, err := groth16.Setup(q, curveDescriptor, rand.Reader)
//	proof, err := ts.Prove(witness, rand.Reader)
//	ok := groth16.Verify(proof, ts, q.PublicWitness)
//
// See also https://eprint.iacr.org/2016/260.pdf.
package groth16
