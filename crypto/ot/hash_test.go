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
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Hash", func() {
	It("is deterministic and produces 256 bits", func() {
		a, err := RandomBitVector(64)
		Expect(err).Should(BeNil())
		b, err := RandomBitVector(64)
		Expect(err).Should(BeNil())

		h1 := Hash(a, b)
		h2 := Hash(a, b)
		Expect(h1).Should(Equal(h2))
		Expect(len(h1)).Should(Equal(HashOutputBits))
	})

	It("is sensitive to its inputs", func() {
		a, _ := RandomBitVector(64)
		b, _ := RandomBitVector(64)
		c, _ := RandomBitVector(64)
		Expect(Hash(a, b)).ShouldNot(Equal(Hash(a, c)))
	})

	It("folds the index into hashIndexed deterministically", func() {
		v, _ := RandomBitVector(128)
		Expect(hashIndexed(3, v)).Should(Equal(hashIndexed(3, v)))
		Expect(hashIndexed(3, v)).ShouldNot(Equal(hashIndexed(4, v)))
	})
})

var _ = Describe("PRG", func() {
	It("is a deterministic pure function of seed and length", func() {
		seed, err := RandomBitVector(128)
		Expect(err).Should(BeNil())
		out1, err := PRG(seed, 10000)
		Expect(err).Should(BeNil())
		out2, err := PRG(seed, 10000)
		Expect(err).Should(BeNil())
		Expect(out1).Should(Equal(out2))
	})

	It("accepts 256-bit seeds", func() {
		seed, err := RandomBitVector(256)
		Expect(err).Should(BeNil())
		out, err := PRG(seed, 512)
		Expect(err).Should(BeNil())
		Expect(len(out)).Should(Equal(512))
	})

	It("rejects seeds of the wrong size", func() {
		seed := BitVector{true, false, true}
		_, err := PRG(seed, 8)
		Expect(err).Should(Equal(ErrInvalidSeedSize))
	})
})
