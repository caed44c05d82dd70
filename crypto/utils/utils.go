// Copyright © 2020 AMIS Technologies
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

package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	// ErrEmptySlice is returned if the length of slice is zero.
	ErrEmptySlice = errors.New("empty slice")
	// ErrSmallSafePrime is returned if the requested safe-prime size is below 10 bits.
	ErrSmallSafePrime = errors.New("safe-prime size must be at least 10-bit")

	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big4 = big.NewInt(4)
)

// RandomInt generates a random number in [0, n).
func RandomInt(n *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, n)
}

// RandomPositiveInt generates a random number in [1, n).
func RandomPositiveInt(n *big.Int) (*big.Int, error) {
	x, err := RandomInt(new(big.Int).Sub(n, big1))
	if err != nil {
		return nil, err
	}
	return new(big.Int).Add(x, big1), nil
}

// GenRandomBytes generates a random byte array with indicating the legnth.
func GenRandomBytes(size int) ([]byte, error) {
	if size < 1 {
		return nil, ErrEmptySlice
	}
	randomByte := make([]byte, size)
	_, err := rand.Read(randomByte)
	if err != nil {
		return nil, err
	}
	return randomByte, nil
}
