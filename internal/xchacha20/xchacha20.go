package xchacha20

import (
	"errors"

	"github.com/pmuens/secretbox-go/internal/chacha20"
)

// ErrCounterOverflow is returned when a keystream request would require
// incrementing the block counter past 2^64-1.
var ErrCounterOverflow = errors.New("xchacha20: block counter overflow")

// Cipher is a keyed, nonced XChaCha20 keystream generator.
type Cipher struct {
	subKey     [32]byte
	shortNonce [8]byte
}

// New splits the 24-byte extended nonce into N (first 16 bytes, used for
// HChaCha20) and N' (last 8 bytes, the short nonce), and derives the
// subkey.
func New(key [32]byte, nonce [24]byte) *Cipher {
	var hnonce [16]byte
	copy(hnonce[:], nonce[0:16])

	var shortNonce [8]byte
	copy(shortNonce[:], nonce[16:24])

	return &Cipher{
		subKey:     HChaCha20(key, hnonce),
		shortNonce: shortNonce,
	}
}

// Keystream fills dst with len(dst) bytes of keystream, starting at the
// given block counter. It fails without writing partial output if
// the counter would overflow.
func (c *Cipher) Keystream(counter uint64, dst []byte) error {
	numBlocks := (len(dst) + chacha20.BlockSize - 1) / chacha20.BlockSize
	if numBlocks > 0 && counter > ^uint64(0)-uint64(numBlocks-1) {
		return ErrCounterOverflow
	}

	for i := 0; i < numBlocks; i++ {
		state := chacha20.NewState(c.subKey, c.shortNonce, counter+uint64(i))
		block := chacha20.Block(state).Bytes()

		start := i * chacha20.BlockSize
		end := start + chacha20.BlockSize
		if end > len(dst) {
			end = len(dst)
		}
		copy(dst[start:end], block[:end-start])
	}
	return nil
}

// XORKeyStream XORs src with the keystream starting at the given block
// counter, writing the result to dst. dst and src must be the same length.
func (c *Cipher) XORKeyStream(counter uint64, dst, src []byte) error {
	ks := make([]byte, len(src))
	if err := c.Keystream(counter, ks); err != nil {
		return err
	}
	for i := range src {
		dst[i] = src[i] ^ ks[i]
	}
	return nil
}
