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

import (
	"math/big"

	"github.com/getamis/alice-ot/crypto/utils"
)

// BitVector is an ordered sequence of bits. Index 0 is the most
// significant bit end-to-end: it is the MSB when the vector is packed
// into bytes (Pack/Unpack) or interpreted as an integer (BitsToInt/
// IntToBits), and packing a bit matrix column puts row 0 in the most
// significant bit of the packed integer (the convention the IKNP
// column-packing step requires).
type BitVector []bool

// NewBitVector allocates a zeroed vector of the given length.
func NewBitVector(n int) BitVector {
	return make(BitVector, n)
}

// Xor returns the componentwise XOR of a and b. It fails if the two
// vectors have different lengths.
func Xor(a, b BitVector) (BitVector, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	out := make(BitVector, len(a))
	for i := range a {
		out[i] = a[i] != b[i]
	}
	return out, nil
}

// Pack packs a bit vector into bytes, MSB-first, left-padding with zero
// bits so the length is a multiple of 8.
func Pack(bits BitVector) []byte {
	n := len(bits)
	out := make([]byte, (n+7)/8)
	// left-pad: the first (len(out)*8 - n) bit slots of the byte stream
	// are the implicit zero padding, so bits[0] lands at offset pad.
	pad := len(out)*8 - n
	for i, b := range bits {
		if !b {
			continue
		}
		pos := pad + i
		out[pos/8] |= 1 << uint(7-pos%8)
	}
	return out
}

// Unpack unpacks the first n bits of data, MSB-first.
func Unpack(data []byte, n int) (BitVector, error) {
	if len(data)*8 < n {
		return nil, ErrLengthMismatch
	}
	out := make(BitVector, n)
	for i := 0; i < n; i++ {
		out[i] = data[i/8]&(1<<uint(7-i%8)) != 0
	}
	return out, nil
}

// IntToBitsLen returns the big-endian bit representation of n, left
// padded or truncated to exactly L bits.
func IntToBitsLen(n *big.Int, l int) BitVector {
	full := make(BitVector, l)
	bl := n.BitLen()
	for i := 0; i < l && i < bl; i++ {
		// bit i of the vector (from the right, index l-1-i) mirrors
		// big.Int.Bit, which counts from the least-significant bit.
		full[l-1-i] = n.Bit(i) == 1
	}
	return full
}

// BitsToInt interprets a bit vector as a big-endian integer (index 0 is
// the MSB).
func BitsToInt(bits BitVector) *big.Int {
	return new(big.Int).SetBytes(Pack(bits))
}

// Transpose returns the transpose of an r-by-c bit matrix represented as
// r rows of c bits each. transpose(transpose(m)) == m.
func Transpose(m []BitVector) []BitVector {
	if len(m) == 0 {
		return nil
	}
	rows := len(m)
	cols := len(m[0])
	out := make([]BitVector, cols)
	for j := 0; j < cols; j++ {
		out[j] = make(BitVector, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

func bigFromInt(n int) *big.Int {
	return big.NewInt(int64(n))
}

// Column extracts column i of an r-by-c bit matrix.
func Column(m []BitVector, i int) BitVector {
	out := make(BitVector, len(m))
	for j := range m {
		out[j] = m[j][i]
	}
	return out
}

// RandomBitVector draws n uniformly random bits from the process CSPRNG.
func RandomBitVector(n int) (BitVector, error) {
	raw, err := utils.GenRandomBytes((n + 7) / 8)
	if err != nil {
		return nil, err
	}
	return Unpack(raw, n)
}
