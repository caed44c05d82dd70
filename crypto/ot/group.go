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
	"crypto/rand"
	"math/big"
	"os"

	"github.com/getamis/alice-ot/crypto/utils"
	"github.com/getamis/alice-ot/logger"
)

// DefaultSecurityBits is the default safe-prime size (spec.md §3's
// SECURITY parameter).
const DefaultSecurityBits = 2048

const maxGeneratorRetries = 100

var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
)

// SafePrimeGroup is the immutable triple (p, q, g): p is a safe prime,
// q = (p-1)/2 is also prime, and g generates the order-q subgroup of
// quadratic residues mod p. It is created once per process and is safe
// for concurrent read-only use by every worker.
type SafePrimeGroup struct {
	p *big.Int
	q *big.Int
	g *big.Int
}

// P returns a copy of the safe prime.
func (grp *SafePrimeGroup) P() *big.Int { return new(big.Int).Set(grp.p) }

// Q returns a copy of the subgroup order, (p-1)/2.
func (grp *SafePrimeGroup) Q() *big.Int { return new(big.Int).Set(grp.q) }

// Generator returns the group's generator as a GroupElem.
func (grp *SafePrimeGroup) Generator() *GroupElem { return grp.Elem(grp.g) }

// Elem wraps v as an element of the group, reducing it mod p.
func (grp *SafePrimeGroup) Elem(v *big.Int) *GroupElem {
	return &GroupElem{group: grp, v: new(big.Int).Mod(v, grp.p)}
}

// GroupElem is a residue class mod p, held as a *big.Int together with a
// reference to its group so every operation knows its modulus.
type GroupElem struct {
	group *SafePrimeGroup
	v     *big.Int
}

// Int returns a copy of the element's integer representative in [0, p).
func (e *GroupElem) Int() *big.Int { return new(big.Int).Set(e.v) }

// Mul returns e * o mod p.
func (e *GroupElem) Mul(o *GroupElem) *GroupElem {
	r := new(big.Int).Mul(e.v, o.v)
	r.Mod(r, e.group.p)
	return &GroupElem{group: e.group, v: r}
}

// Pow returns e^k mod p.
func (e *GroupElem) Pow(k *big.Int) *GroupElem {
	r := new(big.Int).Exp(e.v, k, e.group.p)
	return &GroupElem{group: e.group, v: r}
}

// Square returns e^2 mod p.
func (e *GroupElem) Square() *GroupElem { return e.Mul(e) }

// Invert returns the modular inverse of e mod p.
func (e *GroupElem) Invert() *GroupElem {
	r := new(big.Int).ModInverse(e.v, e.group.p)
	return &GroupElem{group: e.group, v: r}
}

// Negate returns p - e (additive negation of the integer representative;
// the same map Encode applies to turn a non-residue into its residue twin).
func (e *GroupElem) Negate() *GroupElem {
	r := new(big.Int).Sub(e.group.p, e.v)
	return &GroupElem{group: e.group, v: r}
}

// IsQuadraticResidue reports whether e lies in the order-q subgroup,
// i.e. e^q == 1 (mod p).
func (e *GroupElem) IsQuadraticResidue() bool {
	return new(big.Int).Exp(e.v, e.group.q, e.group.p).Cmp(big1) == 0
}

// MakeGroupFromScratch generates a fresh safe-prime group of the given
// bit size (spec.md §6's make_group_from_scratch, minus the file write,
// which callers perform via WriteSafePrime — see MakeGroup). pbits
// should be DefaultSecurityBits for production use; tests use smaller
// sizes for speed.
func MakeGroupFromScratch(pbits int) (*SafePrimeGroup, error) {
	sp, err := utils.GenerateRandomSafePrime(rand.Reader, pbits)
	if err != nil {
		logger.Logger().Error("Failed to generate safe prime", "err", err, "bits", pbits)
		return nil, err
	}
	return newGroup(sp.P, sp.Q)
}

// newGroup derives a generator for the order-q subgroup of (Z/pZ)* and
// assembles the group, checking every invariant from spec.md §3.
func newGroup(p, q *big.Int) (*SafePrimeGroup, error) {
	g, err := sampleGenerator(p)
	if err != nil {
		logger.Logger().Error("Failed to derive subgroup generator", "err", err)
		return nil, err
	}
	grp := &SafePrimeGroup{p: p, q: q, g: g}
	if err := grp.checkInvariants(); err != nil {
		return nil, err
	}
	return grp, nil
}

// sampleGenerator samples a uniform x in [1, p) and squares it; the
// result always lies in the order-q subgroup and is a generator of it
// with overwhelming probability, rejecting the negligible-probability
// trivial outcomes 1 and p-1.
func sampleGenerator(p *big.Int) (*big.Int, error) {
	for i := 0; i < maxGeneratorRetries; i++ {
		x, err := utils.RandomPositiveInt(p)
		if err != nil {
			return nil, err
		}
		g := new(big.Int).Exp(x, big2, p)
		pMinus1 := new(big.Int).Sub(p, big1)
		if g.Cmp(big1) != 0 && g.Cmp(pMinus1) != 0 {
			return g, nil
		}
	}
	return nil, ErrGroupInvariantViolation
}

// checkInvariants verifies g^q == 1 (mod p) and g not in {1, p-1}.
func (grp *SafePrimeGroup) checkInvariants() error {
	pMinus1 := new(big.Int).Sub(grp.p, big1)
	if grp.g.Cmp(big1) == 0 || grp.g.Cmp(pMinus1) == 0 {
		return ErrGroupInvariantViolation
	}
	if new(big.Int).Exp(grp.g, grp.q, grp.p).Cmp(big1) != 0 {
		return ErrGroupInvariantViolation
	}
	return nil
}

// WriteSafePrime persists p's raw big-endian bytes to path, left-padded
// to exactly bits/8 bytes, with no header (spec.md §6).
func WriteSafePrime(path string, p *big.Int, bits int) error {
	size := bits / 8
	buf := make([]byte, size)
	p.FillBytes(buf)
	return os.WriteFile(path, buf, 0o600)
}

// loadSafePrime reads and validates a cached safe prime: the file must
// be exactly bits/8 bytes, p must round-trip through big-endian decoding,
// be odd and congruent to 3 mod 4, and both p and q = (p-1)/2 must pass
// a probabilistic primality test.
func loadSafePrime(path string, bits int) (p, q *big.Int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if len(data) != bits/8 {
		logger.Logger().Warn("Safe-prime file has the wrong length", "got", len(data), "want", bits/8)
		return nil, nil, ErrPersistenceError
	}
	p = new(big.Int).SetBytes(data)
	roundTrip := make([]byte, bits/8)
	p.FillBytes(roundTrip)
	if !bytesEqual(roundTrip, data) {
		return nil, nil, ErrPersistenceError
	}
	if p.Bit(0) == 0 || new(big.Int).Mod(p, big.NewInt(4)).Int64() != 3 {
		logger.Logger().Warn("Cached value is not a safe-prime candidate")
		return nil, nil, ErrPersistenceError
	}
	q = new(big.Int).Rsh(new(big.Int).Sub(p, big1), 1)
	if !p.ProbablyPrime(20) || !q.ProbablyPrime(20) {
		logger.Logger().Warn("Cached safe prime failed primality verification")
		return nil, nil, ErrPersistenceError
	}
	return p, q, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MakeGroup loads a SafePrimeGroup from the cached file at path,
// generating and persisting a fresh one if the file does not exist
// (spec.md §6's make_group). bits must match the cache's expected size
// (DefaultSecurityBits in production).
func MakeGroup(path string, bits int) (*SafePrimeGroup, error) {
	p, q, err := loadSafePrime(path, bits)
	if err == nil {
		return newGroup(p, q)
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	grp, err := MakeGroupFromScratch(bits)
	if err != nil {
		return nil, err
	}
	if err := WriteSafePrime(path, grp.p, bits); err != nil {
		logger.Logger().Warn("Failed to cache freshly generated safe prime", "err", err, "path", path)
	}
	return grp, nil
}
