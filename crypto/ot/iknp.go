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

// chunkSize returns the widest column chunk, in bits, that a single
// base-OT message in this group can carry: Decode recovers a message
// only when it is below q = (p-1)/2, and q >= 2^(SECURITY-2), so
// SECURITY-2 bits is always safe.
func chunkSize(group *SafePrimeGroup) int {
	bits := group.p.BitLen() - 2
	if bits < 1 {
		bits = 1
	}
	return bits
}

// splitBits breaks v into consecutive chunks of at most `chunk` bits
// each, the column-splitting fix spec.md §9 calls for so columns wider
// than a single base-OT message still transfer correctly.
func splitBits(v BitVector, chunk int) []BitVector {
	var chunks []BitVector
	for off := 0; off < len(v); off += chunk {
		end := off + chunk
		if end > len(v) {
			end = len(v)
		}
		chunks = append(chunks, v[off:end])
	}
	return chunks
}

// joinBits concatenates chunks back into one vector, inverting splitBits.
func joinBits(chunks []BitVector) BitVector {
	var out BitVector
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// Iknp runs the IKNP OT extension: k base OTs bootstrap m extended OTs.
// The sender supplies m OUTPUT_SIZE-bit message pairs, the receiver m
// choice bits, and k is the security parameter (128 or 256). Columns
// wider than the group's base-OT capacity are transparently split into
// chunks and rejoined (spec.md §9's documented fix for large m).
func Iknp(group *SafePrimeGroup, messages []MessagePair, choice []bool, k int) ([]BitVector, error) {
	m := len(messages)
	if len(choice) != m {
		return nil, ErrLengthMismatch
	}
	for _, msg := range messages {
		if len(msg.M0) != HashOutputBits || len(msg.M1) != HashOutputBits {
			return nil, ErrLengthMismatch
		}
	}

	s, err := RandomBitVector(k)
	if err != nil {
		return nil, err
	}
	T := make([]BitVector, m)
	for j := range T {
		T[j], err = RandomBitVector(k)
		if err != nil {
			return nil, err
		}
	}

	Q, err := iknpBaseOTPhase(group, Transpose(T), choice, s, m, k)
	if err != nil {
		return nil, err
	}
	return iknpMask(messages, choice, T, Q, s)
}

// iknpBaseOTPhase realizes step 3 of the IKNP protocol: the
// extension-sender plays base-OT receiver with choice vector s, and the
// extension-receiver plays base-OT sender, transferring for each column
// i either T's column i or that column XOR the extension choice vector.
// It returns Q, the sender-reconstructed m-by-k matrix.
func iknpBaseOTPhase(group *SafePrimeGroup, Tcols []BitVector, choice []bool, s BitVector, m, k int) ([]BitVector, error) {
	chunk := chunkSize(group)
	numChunks := (m + chunk - 1) / chunk
	if numChunks == 0 {
		numChunks = 1
	}
	total := k * numChunks

	flatChoice := make([]bool, total)
	flatMsgs := make([]MessagePair, total)
	for i := 0; i < k; i++ {
		colXor, err := Xor(Tcols[i], choice)
		if err != nil {
			return nil, err
		}
		chunks0 := splitBits(Tcols[i], chunk)
		chunks1 := splitBits(colXor, chunk)
		for c := 0; c < numChunks; c++ {
			idx := i*numChunks + c
			flatChoice[idx] = s[i]
			flatMsgs[idx] = MessagePair{M0: chunks0[c], M1: chunks1[c]}
		}
	}

	sks, pairs, err := CommitChoice(group, flatChoice)
	if err != nil {
		return nil, err
	}
	cts, err := Send(group, pairs, flatMsgs)
	if err != nil {
		return nil, err
	}

	recovered := make([]BitVector, total)
	err = forEachIndex(total, func(t int) error {
		v, err := decryptOne(group, cts[t], sks[t], flatChoice[t])
		if err != nil {
			return err
		}
		recovered[t] = IntToBitsLen(v, len(flatMsgs[t].M0))
		return nil
	})
	if err != nil {
		return nil, err
	}

	qCols := make([]BitVector, k)
	for i := 0; i < k; i++ {
		qCols[i] = joinBits(recovered[i*numChunks : (i+1)*numChunks])
	}
	return Transpose(qCols), nil
}

// iknpMask realizes steps 5-6: the sender computes masked ciphertexts
// y_j^0, y_j^1 from Q and s, and the receiver recovers z_j = m_j^{choice[j]}
// from T and the chosen y.
func iknpMask(messages []MessagePair, choice []bool, T, Q []BitVector, s BitVector) ([]BitVector, error) {
	m := len(messages)
	y0s := make([]BitVector, m)
	y1s := make([]BitVector, m)
	err := forEachIndex(m, func(j int) error {
		qXorS, err := Xor(Q[j], s)
		if err != nil {
			return err
		}
		y0, err := Xor(messages[j].M0, hashIndexed(j, Q[j]))
		if err != nil {
			return err
		}
		y1, err := Xor(messages[j].M1, hashIndexed(j, qXorS))
		if err != nil {
			return err
		}
		y0s[j], y1s[j] = y0, y1
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]BitVector, m)
	err = forEachIndex(m, func(j int) error {
		y := y0s[j]
		if choice[j] {
			y = y1s[j]
		}
		z, err := Xor(y, hashIndexed(j, T[j]))
		if err != nil {
			return err
		}
		out[j] = z
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
