// Package xchacha20 implements HChaCha20 key derivation and the XChaCha20
// extended-nonce stream cipher built on top of internal/chacha20.
package xchacha20

import (
	"encoding/binary"

	"github.com/pmuens/secretbox-go/internal/chacha20"
)

// HChaCha20 derives a 32-byte subkey from a key and a 16-byte nonce by
// running the ChaCha20 round function without the final state addition and
// extracting eight of the sixteen output words.
func HChaCha20(key [32]byte, hnonce [16]byte) [32]byte {
	// The HChaCha20 state layout matches ChaCha20's, but the
	// counter/nonce quadrant (positions 12,13,14,15) carries the 16-byte
	// HNonce instead.
	s := chacha20.NewState(key, [8]byte{}, 0)
	s[12] = binary.LittleEndian.Uint32(hnonce[0:4])
	s[13] = binary.LittleEndian.Uint32(hnonce[4:8])
	s[14] = binary.LittleEndian.Uint32(hnonce[8:12])
	s[15] = binary.LittleEndian.Uint32(hnonce[12:16])

	y := chacha20.Permute(s)

	var subKey [32]byte
	words := [8]uint32{y[0], y[1], y[2], y[3], y[12], y[13], y[14], y[15]}
	for i, w := range words {
		binary.LittleEndian.PutUint32(subKey[i*4:], w)
	}
	return subKey
}
