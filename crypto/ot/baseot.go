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

// MessagePair is one sender input to a base OT: the two candidate
// messages, as equal-length bit vectors, of which the receiver will
// recover exactly one.
type MessagePair struct {
	M0 BitVector
	M1 BitVector
}

// KeyPair is the receiver's per-index base-OT state: the secret key sk
// behind whichever slot is real, and the (K0, K1) public-key pair it
// publishes to the sender. Exactly one of K0, K1 equals g^sk; the other
// is an oblivious quadratic residue with unknown discrete log.
type KeyPair struct {
	sk *big.Int
	K0 *big.Int
	K1 *big.Int
}

// Ciphertext is one sender output entry: a pair of Elgamal-style
// ciphertexts, (C0, D0) encrypting m0 under K0 and (C1, D1) encrypting
// m1 under K1.
type Ciphertext struct {
	C0, D0 *big.Int
	C1, D1 *big.Int
}

// CommitChoice is the receiver side of m base OTs. For each index i it
// samples a fresh secret key and publishes a key pair ordered so that
// the real key (g^sk) sits in slot choice[i]; the other slot holds a
// random quadratic residue of unknown discrete log. Both the per-index
// secret keys (needed later by Receive) and the public key pairs (sent
// to the sender) are returned. Embarrassingly parallel across i.
func CommitChoice(group *SafePrimeGroup, choice []bool) ([]*big.Int, []*KeyPair, error) {
	m := len(choice)
	sks := make([]*big.Int, m)
	pairs := make([]*KeyPair, m)
	err := forEachIndex(m, func(i int) error {
		sk, err := utils.RandomInt(group.q)
		if err != nil {
			return err
		}
		x, err := utils.RandomInt(group.p)
		if err != nil {
			return err
		}
		real := group.Generator().Pow(sk).Int()
		fake := new(big.Int).Exp(x, big2, group.p)

		sks[i] = sk
		pair := &KeyPair{sk: sk}
		if choice[i] {
			pair.K0, pair.K1 = fake, real
		} else {
			pair.K0, pair.K1 = real, fake
		}
		pairs[i] = pair
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return sks, pairs, nil
}

// Send is the sender side of m base OTs: given the receiver's key pairs
// and the sender's own message pairs, it encodes and Elgamal-encrypts
// each message under its matching public key with a freshly sampled
// exponent. Embarrassingly parallel across i.
func Send(group *SafePrimeGroup, keys []*KeyPair, messages []MessagePair) ([]*Ciphertext, error) {
	if len(keys) != len(messages) {
		return nil, ErrLengthMismatch
	}
	out := make([]*Ciphertext, len(messages))
	err := forEachIndex(len(messages), func(i int) error {
		ct, err := encryptPair(group, keys[i], messages[i])
		if err != nil {
			return err
		}
		out[i] = ct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func encryptPair(group *SafePrimeGroup, keys *KeyPair, msgs MessagePair) (*Ciphertext, error) {
	e0, err := Encode(BitsToInt(msgs.M0), group.p, group.q)
	if err != nil {
		return nil, err
	}
	e1, err := Encode(BitsToInt(msgs.M1), group.p, group.q)
	if err != nil {
		return nil, err
	}
	r0, err := utils.RandomInt(group.q)
	if err != nil {
		return nil, err
	}
	r1, err := utils.RandomInt(group.q)
	if err != nil {
		return nil, err
	}
	c0 := group.Generator().Pow(r0)
	d0 := group.Elem(keys.K0).Pow(r0).Mul(group.Elem(e0))
	c1 := group.Generator().Pow(r1)
	d1 := group.Elem(keys.K1).Pow(r1).Mul(group.Elem(e1))
	return &Ciphertext{
		C0: c0.Int(), D0: d0.Int(),
		C1: c1.Int(), D1: d1.Int(),
	}, nil
}

// Receive is the receiver side of m base OTs: for each index it picks
// the ciphertext slot matching its choice bit, decrypts with its secret
// key, and decodes the recovered group element back into an integer
// message, which is re-expanded to an outputBits-wide bit vector.
// Embarrassingly parallel across i.
func Receive(group *SafePrimeGroup, cts []*Ciphertext, sks []*big.Int, choice []bool, outputBits int) ([]BitVector, error) {
	if len(cts) != len(sks) || len(cts) != len(choice) {
		return nil, ErrLengthMismatch
	}
	out := make([]BitVector, len(cts))
	err := forEachIndex(len(cts), func(i int) error {
		v, err := decryptOne(group, cts[i], sks[i], choice[i])
		if err != nil {
			return err
		}
		out[i] = IntToBitsLen(v, outputBits)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decryptOne(group *SafePrimeGroup, ct *Ciphertext, sk *big.Int, b bool) (*big.Int, error) {
	c, d := ct.C0, ct.D0
	if b {
		c, d = ct.C1, ct.D1
	}
	negSk := new(big.Int).Neg(sk)
	negSk.Mod(negSk, group.q)
	m := group.Elem(c).Pow(negSk).Mul(group.Elem(d))
	return Decode(m.Int(), group.p, group.q), nil
}

// OteBaseOnly runs the base-OT-only protocol directly: one secret key
// per message pair, with no extension. It is the performance baseline
// the IKNP and ALSZ extensions are measured against.
func OteBaseOnly(group *SafePrimeGroup, messages []MessagePair, choice []bool, outputBits int) ([]BitVector, error) {
	if len(messages) != len(choice) {
		return nil, ErrLengthMismatch
	}
	sks, pairs, err := CommitChoice(group, choice)
	if err != nil {
		return nil, err
	}
	cts, err := Send(group, pairs, messages)
	if err != nil {
		return nil, err
	}
	return Receive(group, cts, sks, choice, outputBits)
}
