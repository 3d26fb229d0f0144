// Package chacha20 implements the ChaCha20 block function as specified by
// RFC 8439 / Bernstein. NewState uses a 64-bit block counter and an 8-byte
// nonce, the layout of the extended-nonce XChaCha20 construction used by
// secretbox; it does not build the IETF 32-bit-counter, 96-bit-nonce layout.
package chacha20

import (
	"encoding/binary"
	"math/bits"
)

// BlockSize is the size (in bytes) of a ChaCha20 block.
const BlockSize = 64

// sigma is the ASCII constant "expand 32-byte k".
var sigma = [4]uint32{
	0x61707865,
	0x3320646e,
	0x79622d32,
	0x6b206574,
}

// State is the 16-word ChaCha20 matrix.
type State [16]uint32

// NewState lays out the ChaCha20 matrix for the stream cipher:
//
//	SIGMA0 SIGMA1 SIGMA2 SIGMA3
//	K0     K1     K2     K3
//	K4     K5     K6     K7
//	C0     C1     N0     N1
//
// The counter is 64-bit (two little-endian words) rather than RFC 8439's
// 32-bit counter + 96-bit nonce, matching the XChaCha20 convention used
// throughout this module.
func NewState(key [32]byte, nonce [8]byte, counter uint64) State {
	var s State

	s[0], s[1], s[2], s[3] = sigma[0], sigma[1], sigma[2], sigma[3]

	for i := 0; i < 8; i++ {
		s[4+i] = binary.LittleEndian.Uint32(key[i*4 : i*4+4])
	}

	s[12] = uint32(counter)
	s[13] = uint32(counter >> 32)
	s[14] = binary.LittleEndian.Uint32(nonce[0:4])
	s[15] = binary.LittleEndian.Uint32(nonce[4:8])

	return s
}

// quarterRound is the ChaCha quarter-round function.
func quarterRound(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d ^= a
	d = bits.RotateLeft32(d, 16)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 12)

	a += b
	d ^= a
	d = bits.RotateLeft32(d, 8)

	c += d
	b ^= c
	b = bits.RotateLeft32(b, 7)

	return a, b, c, d
}

// columnRound applies the quarter-round function to the state's columns.
func columnRound(s *State) {
	s[0], s[4], s[8], s[12] = quarterRound(s[0], s[4], s[8], s[12])
	s[1], s[5], s[9], s[13] = quarterRound(s[1], s[5], s[9], s[13])
	s[2], s[6], s[10], s[14] = quarterRound(s[2], s[6], s[10], s[14])
	s[3], s[7], s[11], s[15] = quarterRound(s[3], s[7], s[11], s[15])
}

// diagonalRound applies the quarter-round function to the state's diagonals.
func diagonalRound(s *State) {
	s[0], s[5], s[10], s[15] = quarterRound(s[0], s[5], s[10], s[15])
	s[1], s[6], s[11], s[12] = quarterRound(s[1], s[6], s[11], s[12])
	s[2], s[7], s[8], s[13] = quarterRound(s[2], s[7], s[8], s[13])
	s[3], s[4], s[9], s[14] = quarterRound(s[3], s[4], s[9], s[14])
}

// doubleRound applies one column round followed by one diagonal round.
func doubleRound(s *State) {
	columnRound(s)
	diagonalRound(s)
}

// permute runs the 20 rounds (10 double rounds) of ChaCha20 over a copy of
// in, without adding the original state back in. HChaCha20 stops here.
func permute(in State) State {
	s := in
	for range 10 {
		doubleRound(&s)
	}
	return s
}

// Block runs the full ChaCha20 block function: 20 rounds followed by adding
// each output word to its initial-state counterpart, both mod 2^32.
func Block(in State) State {
	out := permute(in)
	for i := range out {
		out[i] += in[i]
	}
	return out
}

// Permute exposes the round function without the final state addition, for
// use by HChaCha20 key derivation.
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
