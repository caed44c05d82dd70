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

// PRG deterministically expands a 128- or 256-bit seed into n
// pseudorandom bits. The concrete stream cipher (ChaCha20 by default, or
// AES-CTR when built with the "aesctr" build tag — see prg_chacha20.go /
// prg_aesctr.go) is selected at compile time via prgExpand.
func PRG(seed BitVector, n int) (BitVector, error) {
	if len(seed) != 128 && len(seed) != 256 {
		return nil, ErrInvalidSeedSize
	}
	out, err := prgExpand(Pack(seed), n)
	if err != nil {
		return nil, err
	}
	return Unpack(out, n)
}
