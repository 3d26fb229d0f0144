// Package salsa20 implements the Salsa20 block function as specified by
// D. J. Bernstein, operating on a 4x4 matrix of 32-bit little-endian words.
package salsa20

import (
	"encoding/binary"
	"math/bits"
)

// BlockSize is the size (in bytes) of a Salsa20 block.
const BlockSize = 64

// sigma is the ASCII constant "expand 32-byte k" split into four
// little-endian 32-bit words.
var sigma = [4]uint32{
	0x61707865, // "expa"
	0x3320646e, // "nd 3"
	0x79622d32, // "2-by"
	0x6b206574, // "te k"
}

// State is the 16-word Salsa20 matrix.
type State [16]uint32

// NewState lays out the Salsa20 matrix for the stream cipher:
//
//	SIGMA0  K0      K1      K2
//	K3      SIGMA1  N0      N1
//	C0      C1      SIGMA2  K4
//	K5      K6      K7      SIGMA3
func NewState(key [32]byte, nonce [8]byte, counter uint64) State {
	var s State

	s[0] = sigma[0]
	s[1] = binary.LittleEndian.Uint32(key[0:4])
	s[2] = binary.LittleEndian.Uint32(key[4:8])
	s[3] = binary.LittleEndian.Uint32(key[8:12])

	s[4] = binary.LittleEndian.Uint32(key[12:16])
	s[5] = sigma[1]
	s[6] = binary.LittleEndian.Uint32(nonce[0:4])
	s[7] = binary.LittleEndian.Uint32(nonce[4:8])

	s[8] = uint32(counter)
	s[9] = uint32(counter >> 32)
	s[10] = sigma[2]
	s[11] = binary.LittleEndian.Uint32(key[16:20])

	s[12] = binary.LittleEndian.Uint32(key[20:24])
	s[13] = binary.LittleEndian.Uint32(key[24:28])
	s[14] = binary.LittleEndian.Uint32(key[28:32])
	s[15] = sigma[3]

	return s
}

// quarterRound is the Salsa20 quarter-round function.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	b ^= bits.RotateLeft32(a+d, 7)
	c ^= bits.RotateLeft32(b+a, 9)
	d ^= bits.RotateLeft32(c+b, 13)
	a ^= bits.RotateLeft32(d+c, 18)
	return a, b, c, d
}

// columnRound applies the quarter-round function to the state's four
// columns.
func columnRound(s *State) {
	s[0], s[4], s[8], s[12] = quarterRound(s[0], s[4], s[8], s[12])
	s[5], s[9], s[13], s[1] = quarterRound(s[5], s[9], s[13], s[1])
	s[10], s[14], s[2], s[6] = quarterRound(s[10], s[14], s[2], s[6])
	s[15], s[3], s[7], s[11] = quarterRound(s[15], s[3], s[7], s[11])
}

// rowRound applies the quarter-round function to the state's four rows.
func rowRound(s *State) {
	s[0], s[1], s[2], s[3] = quarterRound(s[0], s[1], s[2], s[3])
	s[5], s[6], s[7], s[4] = quarterRound(s[5], s[6], s[7], s[4])
	s[10], s[11], s[8], s[9] = quarterRound(s[10], s[11], s[8], s[9])
	s[15], s[12], s[13], s[14] = quarterRound(s[15], s[12], s[13], s[14])
}

// doubleRound applies one column round followed by one row round.
func doubleRound(s *State) {
	columnRound(s)
	rowRound(s)
}

// permute runs the 20 rounds (10 double rounds) of Salsa20 over a copy of
// in, without adding the original state back in. HSalsa20 stops here.
func permute(in State) State {
	s := in
	for range 10 {
		doubleRound(&s)
	}
	return s
}

// Block runs the full Salsa20 block function: 20 rounds followed by adding
// each output word to its initial-state counterpart, both mod 2^32.
func Block(in State) State {
	out := permute(in)
	for i := range out {
		out[i] += in[i]
	}
	return out
}

// Permute exposes the round function without the final state addition, for
// use by HSalsa20 key derivation.
func Permute(in State) State {
	return permute(in)
}

// Bytes serializes a block's 16 words to 64 bytes in little-endian order.
func (s State) Bytes() [BlockSize]byte {
	var out [BlockSize]byte
	for i, w := range s {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}
