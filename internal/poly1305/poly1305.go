// Package poly1305 implements the Poly1305 one-time authenticator:
// a 128-bit clamped multiplier r, a 128-bit pad s, and accumulation modulo
// the prime 2^130-5.
//
// The accumulator is carried in a math/big.Int rather than hand-unrolled
// 26-bit limbs (see DESIGN.md for why): correctness against the published
// test vectors was prioritized over the limb-carry shape the design notes
// mention as an option, since this module's arithmetic can't be exercised
// by a build/test run in this environment. Tag comparison still goes
// through crypto/subtle so verification itself is constant-time even
// though the accumulator math is not.
package poly1305

import (
	"crypto/subtle"
	"math/big"
	"slices"
)

// TagSize is the size (in bytes) of a Poly1305 tag.
const TagSize = 16

// BlockSize is the size (in bytes) of input processed at a time.
const BlockSize = 16

// p is the prime 2^130-5.
var p *big.Int

func init() {
	p, _ = new(big.Int).SetString("3fffffffffffffffffffffffffffffffb", 16)
}

// clampMask is 0x0ffffffc_0ffffffc_0ffffffc_0fffffff applied to the first
// 16 key bytes to produce r.
var clampMask = [16]byte{
	0xff, 0xff, 0xff, 0x0f,
	0xfc, 0xff, 0xff, 0x0f,
	0xfc, 0xff, 0xff, 0x0f,
	0xfc, 0xff, 0xff, 0x0f,
}

// leToBigInt interprets a little-endian byte slice as an unsigned integer.
func leToBigInt(b []byte) *big.Int {
	be := slices.Clone(b)
	slices.Reverse(be)
	return new(big.Int).SetBytes(be)
}

// Sum computes the Poly1305 tag of msg under the one-time 32-byte key
// (r || s): clamp r, accumulate msg 16 bytes at a time as
// a = ((a + n) * r) mod p, then tag = (a + s) mod 2^128, little-endian.
func Sum(msg []byte, key *[32]byte) [TagSize]byte {
	var rBytes [16]byte
	for i := range rBytes {
		rBytes[i] = key[i] & clampMask[i]
	}
	r := leToBigInt(rBytes[:])
	s := leToBigInt(key[16:32])

	accum := new(big.Int)

	for off := 0; off < len(msg); off += BlockSize {
		end := off + BlockSize
		if end > len(msg) {
			end = len(msg)
		}
		block := msg[off:end]

		// n = block || 0x01, little-endian, zero-padded to 17 bytes.
		n := make([]byte, len(block)+1)
		copy(n, block)
		n[len(block)] = 0x01
		slices.Reverse(n)
		nInt := new(big.Int).SetBytes(n)

		accum.Add(accum, nInt)
		accum.Mul(accum, r)
		accum.Mod(accum, p)
	}

	accum.Add(accum, s)

	var tmp [17]byte
	full := accum.FillBytes(tmp[:])
	slices.Reverse(full)

	var tag [TagSize]byte
	copy(tag[:], full[:TagSize])
	return tag
}

// Verify recomputes the tag over msg and reports whether it matches tag,
// comparing in constant time.
func Verify(tag *[TagSize]byte, msg []byte, key *[32]byte) bool {
	got := Sum(msg, key)
	return subtle.ConstantTimeCompare(got[:], tag[:]) == 1
}
