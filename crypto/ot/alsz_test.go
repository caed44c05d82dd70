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

const alszTestBits = 512

var _ = Describe("Alsz", func() {
	var grp *SafePrimeGroup

	BeforeEach(func() {
		var err error
		grp, err = MakeGroupFromScratch(alszTestBits)
		Expect(err).Should(BeNil())
	})

	It("matches the plain oracle for a large batch", func() {
		m, k := 10000, 128
		msgs := randomMessagePairs(m)
		choice := randomChoice(m)

		out, err := Alsz(grp, msgs, choice, k)
		Expect(err).Should(BeNil())
		for j := 0; j < m; j++ {
			want := msgs[j].M0
			if choice[j] {
				want = msgs[j].M1
			}
			Expect(out[j]).Should(Equal(want))
		}
	})

	It("agrees with Iknp on a small batch (same protocol, different transport)", func() {
		m, k := 6, 128
		msgs := randomMessagePairs(m)
		choice := randomChoice(m)

		outA, err := Alsz(grp, msgs, choice, k)
		Expect(err).Should(BeNil())
		outB, err := Iknp(grp, msgs, choice, k)
		Expect(err).Should(BeNil())
		Expect(outA).Should(Equal(outB))
	})
})
