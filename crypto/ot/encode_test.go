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

var _ = Describe("Encode/Decode", func() {
	var grp *SafePrimeGroup

	BeforeEach(func() {
		var err error
		grp, err = MakeGroupFromScratch(testGroupBits)
		Expect(err).Should(BeNil())
	})

	It("round-trips 10^3 uniform messages in [0, p-2]", func() {
		upper := new(big.Int).Sub(grp.P(), big2)
		for i := 0; i < 1000; i++ {
			m, err := utils.RandomInt(upper)
			Expect(err).Should(BeNil())
			e, err := Encode(m, grp.P(), grp.Q())
			Expect(err).Should(BeNil())
			Expect(Decode(e, grp.P(), grp.Q())).Should(Equal(m))
		}
	})

	It("always encodes onto a quadratic residue", func() {
		for m := int64(0); m < 50; m++ {
			e, err := Encode(big.NewInt(m), grp.P(), grp.Q())
			Expect(err).Should(BeNil())
			Expect(grp.Elem(e).IsQuadraticResidue()).Should(BeTrue())
		}
	})

	It("rejects messages out of range", func() {
		_, err := Encode(grp.P(), grp.P(), grp.Q())
		Expect(err).Should(Equal(ErrEncodingOutOfRange))
	})
})
