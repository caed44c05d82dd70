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

// Alsz runs the ALSZ OT extension: the same IKNP skeleton, but the k
// base OTs transfer only k-bit seed pairs instead of m-bit columns; the
// receiver expands its columns locally via PRG and ships one m-bit
// correction vector per column so the sender can reconstruct Q without
// ever touching an m-bit base-OT message.
func Alsz(group *SafePrimeGroup, messages []MessagePair, choice []bool, k int) ([]BitVector, error) {
	m := len(messages)
	if len(choice) != m {
		return nil, ErrLengthMismatch
	}
	for _, msg := range messages {
		if len(msg.M0) != HashOutputBits || len(msg.M1) != HashOutputBits {
			return nil, ErrLengthMismatch
		}
	}

	sigma0 := make([]BitVector, k)
	sigma1 := make([]BitVector, k)
	for i := 0; i < k; i++ {
		var err error
		if sigma0[i], err = RandomBitVector(k); err != nil {
			return nil, err
		}
		if sigma1[i], err = RandomBitVector(k); err != nil {
			return nil, err
		}
	}

	s, err := RandomBitVector(k)
	if err != nil {
		return nil, err
	}
	sBools := make([]bool, k)
	copy(sBools, s)

	seedPairs := make([]MessagePair, k)
	for i := 0; i < k; i++ {
		seedPairs[i] = MessagePair{M0: sigma0[i], M1: sigma1[i]}
	}
	sks, pairs, err := CommitChoice(group, sBools)
	if err != nil {
		return nil, err
	}
	cts, err := Send(group, pairs, seedPairs)
	if err != nil {
		return nil, err
	}
	chosenSeeds, err := Receive(group, cts, sks, sBools, k)
	if err != nil {
		return nil, err
	}

	Tcols := make([]BitVector, k)
	u := make([]BitVector, k)
	err = forEachIndex(k, func(i int) error {
		t0, err := PRG(sigma0[i], m)
		if err != nil {
			return err
		}
		t1, err := PRG(sigma1[i], m)
		if err != nil {
			return err
		}
		ui, err := Xor(choice, t0)
		if err != nil {
			return err
		}
		if ui, err = Xor(ui, t1); err != nil {
			return err
		}
		Tcols[i] = t0
		u[i] = ui
		return nil
	})
	if err != nil {
		return nil, err
	}
	T := Transpose(Tcols)

	Qcols := make([]BitVector, k)
	err = forEachIndex(k, func(i int) error {
		qi, err := PRG(chosenSeeds[i], m)
		if err != nil {
			return err
		}
		if sBools[i] {
			if qi, err = Xor(u[i], qi); err != nil {
				return err
			}
		}
		Qcols[i] = qi
		return nil
	})
	if err != nil {
		return nil, err
	}
	Q := Transpose(Qcols)

	return iknpMask(messages, choice, T, Q, s)
}
