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

//go:build !aesctr

package ot

import "golang.org/x/crypto/chacha20"

// prgExpand is the default PRG backend: ChaCha20 with a fixed all-zero
// nonce/counter. A 128-bit seed is duplicated to fill the 256-bit key
// (the Salsa20-paper padding convention); a 256-bit seed is used
// directly. The nonce and initial counter are both zero, so the whole
// keystream is a pure function of the key.
func prgExpand(seed []byte, nBits int) ([]byte, error) {
	var key [32]byte
	switch len(seed) {
	case 16:
		copy(key[:16], seed)
		copy(key[16:], seed)
	case 32:
		copy(key[:], seed)
	default:
		return nil, ErrInvalidSeedSize
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, err
	}
	out := make([]byte, (nBits+7)/8)
	c.XORKeyStream(out, out)
	return out, nil
}
