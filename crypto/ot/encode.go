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

import "math/big"

// Encode maps a message integer m in [0, p-2] onto a quadratic residue
// mod p: let e = m+1; if e is already a residue (e^q == 1 mod p) it is
// returned as-is, otherwise its negation p-e is, which is always the
// residue twin of a non-residue in a safe-prime group. Decode inverts
// this for m in [0, q-1]. Encode also accepts m in [q, p-2], but the
// residue subgroup has only q elements, so those encodings collide with
// ones from [0, q-1] and Decode does not return the original m for them.
func Encode(m, p, q *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(new(big.Int).Sub(p, big2)) > 0 {
		return nil, ErrEncodingOutOfRange
	}
	e := new(big.Int).Add(m, big1)
	if new(big.Int).Exp(e, q, p).Cmp(big1) == 0 {
		return e, nil
	}
	return new(big.Int).Sub(p, e), nil
}

// Decode inverts Encode for messages in [0, q-1]: v is always taken to
// be a quadratic residue; if v <= q it came from e = v directly,
// otherwise it came from the negation branch and e = p - v.
func Decode(v, p, q *big.Int) *big.Int {
	if v.Cmp(q) <= 0 {
		return new(big.Int).Sub(v, big1)
	}
	e := new(big.Int).Sub(p, v)
	return new(big.Int).Sub(e, big1)
}
