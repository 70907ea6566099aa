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

// Package fault provides the error taxonomy shared by polynomial, r1cs, qap
// and groth16: a Kind distinguishing arithmetic failures from protocol
// failures, a cause chain, and free-form attachments for the operand values
// involved in the failure. It stands in for the reference implementation's
// use of the Rust `rootcause` crate (Report, .context(), .attach()).
package fault

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind enumerates the package's error taxonomy.
type Kind int

const (
	// EmptyMatrix indicates a zero-length input where a reduction was required.
	EmptyMatrix Kind = iota
	// EmptyWitness indicates a witness vector of length zero.
	EmptyWitness
	// WitnessSizeMismatch indicates a witness whose length disagrees with the QAP.
	WitnessSizeMismatch
	// SrsTooSmall indicates an SRS shorter than the polynomial it must index.
	SrsTooSmall
	// NoCoefficients indicates evaluate_over_srs was called on an empty polynomial.
	NoCoefficients
	// DivisionByZero indicates polynomial division by the zero polynomial.
	DivisionByZero
	// NonZeroRemainder indicates polynomial division did not divide exactly.
	NonZeroRemainder
	// DegreeZeroQAP indicates a QAP with no constraints (degree 0).
	DegreeZeroQAP
	// EntropyUnavailable indicates the configured entropy source failed to
	// produce bytes for the rejection sampler.
	EntropyUnavailable
)

func (k Kind) String() string {
	switch k {
	case EmptyMatrix:
		return "EmptyMatrix"
	case EmptyWitness:
		return "EmptyWitness"
	case WitnessSizeMismatch:
		return "WitnessSizeMismatch"
	case SrsTooSmall:
		return "SrsTooSmall"
	case NoCoefficients:
		return "NoCoefficients"
	case DivisionByZero:
		return "DivisionByZero"
	case NonZeroRemainder:
		return "NonZeroRemainder"
	case DegreeZeroQAP:
		return "DegreeZeroQAP"
	case EntropyUnavailable:
		return "EntropyUnavailable"
	default:
		return "Unknown"
	}
}

// Error is the rich error type propagated by every fallible operation in
// this module. It carries the taxonomy Kind, a human-readable description
// of the operation that failed, an optional wrapped cause, and free-form
// attachments describing the operand values involved.
type Error struct {
	kind        Kind
	op          string
	attachments []string
	cause       error
}

// New creates a fresh Error of the given Kind, with op describing the
// failing operation (e.g. "polynomial division", "QAP.Verify").
func New(kind Kind, op string) *Error {
	return &Error{kind: kind, op: op}
}

// Wrap creates a fresh Error of the given Kind that also carries cause in
// its chain, so errors.Is and errors.As reach cause through Unwrap.
func Wrap(cause error, kind Kind, op string) *Error {
	return &Error{kind: kind, op: op, cause: errors.WithStack(cause)}
}

// Attach records a labeled operand value for diagnostics. Returns e for
// chaining.
func (e *Error) Attach(label string, value interface{}) *Error {
	e.attachments = append(e.attachments, fmt.Sprintf("%s: %v", label, value))
	return e
}

// Kind returns the taxonomy kind of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.op, e.kind)
	for _, a := range e.attachments {
		fmt.Fprintf(&b, " [%s]", a)
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %s", e.cause.Error())
	}
	return b.String()
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.kind == kind
	}
	return false
}
