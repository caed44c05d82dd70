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

import "golang.org/x/crypto/sha3"

// HashOutputBits is the width of Hash's output.
const HashOutputBits = 256

// Hash is the correlation-robust hash modeling a random oracle: SHA3-256
// applied to the packed-byte encoding of a followed by that of b (each
// left-padded to a byte boundary per Pack's MSB-first convention), with
// the (full, 256-bit) digest returned as a bit vector.
func Hash(a, b BitVector) BitVector {
	h := sha3.New256()
	h.Write(Pack(a))
	h.Write(Pack(b))
	sum := h.Sum(nil)
	bits, _ := Unpack(sum, HashOutputBits)
	return bits
}

// hashIndexed is the H(j, v) used throughout IKNP/ALSZ: the index j is
// folded into a 64-bit big-endian bit vector and used as the first Hash
// argument, so distinct rows never collide even when their v happens to
// coincide.
func hashIndexed(j int, v BitVector) BitVector {
	jBits := IntToBitsLen(bigFromInt(j), 64)
	return Hash(jBits, v)
}
