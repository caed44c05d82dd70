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
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const testGroupBits = 128

var _ = Describe("SafePrimeGroup", func() {
	It("satisfies the generator invariants", func() {
		grp, err := MakeGroupFromScratch(testGroupBits)
		Expect(err).Should(BeNil())
		Expect(grp.P().ProbablyPrime(20)).Should(BeTrue())
		Expect(grp.Q().ProbablyPrime(20)).Should(BeTrue())

		one := big.NewInt(1)
		pMinus1 := new(big.Int).Sub(grp.P(), one)
		g := grp.Generator().Int()
		Expect(g.Cmp(one)).ShouldNot(BeZero())
		Expect(g.Cmp(pMinus1)).ShouldNot(BeZero())
		Expect(grp.Generator().IsQuadraticResidue()).Should(BeTrue())
	})

	It("round-trips through WriteSafePrime/MakeGroup", func() {
		grp, err := MakeGroupFromScratch(testGroupBits)
		Expect(err).Should(BeNil())

		dir, err := os.MkdirTemp("", "safe-prime-*")
		Expect(err).Should(BeNil())
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "safe_prime.txt")

		Expect(WriteSafePrime(path, grp.P(), testGroupBits)).Should(BeNil())
		loaded, err := MakeGroup(path, testGroupBits)
		Expect(err).Should(BeNil())
		Expect(loaded.P()).Should(Equal(grp.P()))
		Expect(loaded.Q()).Should(Equal(grp.Q()))
	})

	It("generates and caches a fresh prime when the file is absent", func() {
		dir, err := os.MkdirTemp("", "safe-prime-*")
		Expect(err).Should(BeNil())
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "safe_prime.txt")

		grp, err := MakeGroup(path, testGroupBits)
		Expect(err).Should(BeNil())
		_, statErr := os.Stat(path)
		Expect(statErr).Should(BeNil())
		Expect(grp.P().ProbablyPrime(20)).Should(BeTrue())
	})

	It("rejects a cache file of the wrong length", func() {
		dir, err := os.MkdirTemp("", "safe-prime-*")
		Expect(err).Should(BeNil())
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "safe_prime.txt")
		Expect(os.WriteFile(path, []byte{1, 2, 3}, 0o600)).Should(BeNil())

		_, _, err = loadSafePrime(path, testGroupBits)
		Expect(err).Should(Equal(ErrPersistenceError))
	})
})
