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
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const baseOTTestBits = 512

var _ = Describe("BaseOT", func() {
	var grp *SafePrimeGroup

	BeforeEach(func() {
		var err error
		grp, err = MakeGroupFromScratch(baseOTTestBits)
		Expect(err).Should(BeNil())
	})

	It("always recovers 42 from (7, 42) under choice=true, across 1000 fresh runs", func() {
		msg := []MessagePair{{
			M0: IntToBitsLen(big.NewInt(7), 16),
			M1: IntToBitsLen(big.NewInt(42), 16),
		}}
		choice := []bool{true}
		for i := 0; i < 1000; i++ {
			out, err := OteBaseOnly(grp, msg, choice, 16)
			Expect(err).Should(BeNil())
			Expect(BitsToInt(out[0]).Int64()).Should(Equal(int64(42)))
		}
	})

	It("handles a batch of 9 transfers with random choice bits", func() {
		m := 9
		msgs := make([]MessagePair, m)
		choice := make([]bool, m)
		for i := 0; i < m; i++ {
			msgs[i] = MessagePair{
				M0: IntToBitsLen(big.NewInt(int64(i)), 16),
				M1: IntToBitsLen(big.NewInt(int64(i+1)), 16),
			}
			b, err := utils.RandomInt(big2)
			Expect(err).Should(BeNil())
			choice[i] = b.Int64() == 1
		}

		out, err := OteBaseOnly(grp, msgs, choice, 16)
		Expect(err).Should(BeNil())
		for i := 0; i < m; i++ {
			want := int64(i)
			if choice[i] {
				want = int64(i + 1)
			}
			Expect(BitsToInt(out[i]).Int64()).Should(Equal(want))
		}
	})

	It("stays correct across a larger parallel batch", func() {
		m := 64
		msgs := make([]MessagePair, m)
		choice := make([]bool, m)
		for i := 0; i < m; i++ {
			msgs[i] = MessagePair{
				M0: IntToBitsLen(big.NewInt(int64(2 * i)), 16),
				M1: IntToBitsLen(big.NewInt(int64(2*i+1)), 16),
			}
			choice[i] = i%2 == 0
		}
		out, err := OteBaseOnly(grp, msgs, choice, 16)
		Expect(err).Should(BeNil())
		for i := 0; i < m; i++ {
			want := int64(2 * i)
			if choice[i] {
				want = int64(2*i + 1)
			}
			Expect(BitsToInt(out[i]).Int64()).Should(Equal(want))
		}
	})
})
