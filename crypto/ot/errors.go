// Copyright © 2021 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ot

import "errors"

var (
	// ErrLengthMismatch is returned when vectors of incompatible length are
	// presented to an operation that requires them to agree (XOR, choice
	// bits vs. messages, message width, ...).
	ErrLengthMismatch = errors.New("ot: length mismatch")
	// ErrEncodingOutOfRange is returned when a message integer is too large
	// to be encoded into the quadratic-residue subgroup (m >= p-1).
	ErrEncodingOutOfRange = errors.New("ot: message out of range for encoding")
	// ErrPersistenceError is returned when the cached safe-prime file is
	// missing, the wrong length, or fails to round-trip.
	ErrPersistenceError = errors.New("ot: safe-prime persistence error")
	// ErrGroupInvariantViolation is returned when a SafePrimeGroup fails
	// its generator or primality checks.
	ErrGroupInvariantViolation = errors.New("ot: group invariant violation")
	// ErrInvalidSeedSize is returned when a PRG seed is neither 128 nor
	// 256 bits.
	ErrInvalidSeedSize = errors.New("ot: prg seed must be 128 or 256 bits")
	// ErrUnknownVariant is returned when Ote is asked to run a variant it
	// does not recognize.
	ErrUnknownVariant = errors.New("ot: unknown OTE variant")
)
