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

// Variant selects which protocol Ote drives.
type Variant int

const (
	// VariantBaseOT runs one base OT per message pair directly, with no
	// extension; the performance baseline.
	VariantBaseOT Variant = iota
	// VariantIKNP runs the IKNP OT extension: k base OTs bootstrap m
	// extended transfers.
	VariantIKNP
	// VariantALSZ runs the seed-based ALSZ OT extension.
	VariantALSZ
)

func (v Variant) String() string {
	switch v {
	case VariantBaseOT:
		return "base-ot"
	case VariantIKNP:
		return "iknp"
	case VariantALSZ:
		return "alsz"
	default:
		return "unknown"
	}
}

// Ote is the single top-level entry point: given m message pairs, m
// choice bits, a security parameter k, a shared group, and a protocol
// variant, it returns the m recovered messages, messages[j][choice[j]]
// for every j.
func Ote(messages []MessagePair, choice []bool, k int, group *SafePrimeGroup, variant Variant) ([]BitVector, error) {
	switch variant {
	case VariantBaseOT:
		return OteBaseOnly(group, messages, choice, HashOutputBits)
	case VariantIKNP:
		return Iknp(group, messages, choice, k)
	case VariantALSZ:
		return Alsz(group, messages, choice, k)
	default:
		return nil, ErrUnknownVariant
	}
}
