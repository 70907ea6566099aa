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
	"github.com/rs/zerolog/log"

	"github.com/mgroves-zk/groth16/curve"
)

// Verify checks proof against ts and publicWitness by the pairing-product
// equation
//
//	e(A, B) = e(alpha, beta) + e(X, gamma) + e(C, delta)
//
// where X = Σ publicWitness[i]·psi[i] (the gamma term is omitted entirely
// when publicWitness is empty). Verification is pure and deterministic:
// an invalid proof returns false, never an error.
func Verify[S curve.Field[S], G1 curve.Group1[G1, S], G2 curve.Group2[G2, S], GT curve.TargetGroup[GT]](
	proof *Proof[G1, G2], ts *TrustedSetup[S, G1, G2, GT], publicWitness []S,
) bool {
	log.Debug().Int("public_witness_len", len(publicWitness)).Msg("verifying proof")

	lhs := ts.curve.Pair(proof.A, proof.B)
	rhs := ts.curve.Pair(ts.alpha1, ts.beta2)

	if len(publicWitness) > 0 {
		x := ts.psi[0].ScalarMul(publicWitness[0])
		for i := 1; i < len(publicWitness); i++ {
			x = x.Add(ts.psi[i].ScalarMul(publicWitness[i]))
		}
		rhs = rhs.Add(ts.curve.Pair(x, ts.gamma2))
	}

	rhs = rhs.Add(ts.curve.Pair(proof.C, ts.delta2))

	ok := lhs.Equal(rhs)
	log.Debug().Bool("accepted", ok).Msg("verification complete")
	return ok
}
