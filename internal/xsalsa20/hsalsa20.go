// Package xsalsa20 implements HSalsa20 key derivation and the XSalsa20
// extended-nonce stream cipher built on top of internal/salsa20.
package xsalsa20

import (
	"encoding/binary"

	"github.com/pmuens/secretbox-go/internal/salsa20"
)

// HSalsa20 derives a 32-byte subkey from a key and a 16-byte nonce by
// running the Salsa20 round function without the final state addition and
// extracting eight of the sixteen output words.
func HSalsa20(key [32]byte, hnonce [16]byte) [32]byte {
	// The HSalsa20 state layout matches Salsa20's, but the nonce/counter
	// quadrant (positions 6,7,8,9) carries the 16-byte HNonce instead.
	s := salsa20.NewState(key, [8]byte{}, 0)
	s[6] = binary.LittleEndian.Uint32(hnonce[0:4])
	s[7] = binary.LittleEndian.Uint32(hnonce[4:8])
	s[8] = binary.LittleEndian.Uint32(hnonce[8:12])
	s[9] = binary.LittleEndian.Uint32(hnonce[12:16])

	y := salsa20.Permute(s)

	var subKey [32]byte
	words := [8]uint32{y[0], y[5], y[10], y[15], y[6], y[7], y[8], y[9]}
	for i, w := range words {
		binary.LittleEndian.PutUint32(subKey[i*4:], w)
	}
	return subKey
}
