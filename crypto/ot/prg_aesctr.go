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

//go:build aesctr

package ot

import (
	"crypto/aes"
	"crypto/cipher"
)

// prgExpand is the "aesctr" build-tagged PRG backend: AES-128-CTR for a
// 128-bit seed, AES-256-CTR for a 256-bit seed, initial counter zero.
func prgExpand(seed []byte, nBits int) ([]byte, error) {
	switch len(seed) {
	case 16, 32:
	default:
		return nil, ErrInvalidSeedSize
	}
	block, err := aes.NewCipher(seed)
	if err != nil {
		return nil, err
	}
	iv := make([]byte, aes.BlockSize)
	stream := cipher.NewCTR(block, iv)
	out := make([]byte, (nBits+7)/8)
	stream.XORKeyStream(out, out)
	return out, nil
}
