// Package xstream exposes the raw XSalsa20 / XChaCha20 keystream
// primitives directly, with no Poly1305 authentication.
//
// These are stream-cipher primitives, not authenticated encryption: they
// provide confidentiality only, with no tamper detection whatsoever.
// Exposing crypt/keystream next to an AEAD API invites misuse — a caller
// reaching for "the encryption function" can get the unauthenticated one
// by accident. This package exists so that misuse requires a deliberate,
// differently-named import: package secretbox never imports this
// package, and nothing here is reachable through a secretbox.Handle.
//
// Prefer package secretbox unless you are implementing your own AEAD
// framing on top of these primitives and understand the implications.
package xstream

import (
	"github.com/pmuens/secretbox-go/internal/xchacha20"
	"github.com/pmuens/secretbox-go/internal/xsalsa20"
)

// Cipher selects which extended-nonce stream cipher to run.
type Cipher int

const (
	// XSalsa20 selects the Salsa20-based extended-nonce stream cipher.
	XSalsa20 Cipher = iota
	// XChaCha20 selects the ChaCha20-based extended-nonce stream cipher.
	XChaCha20
)

// Crypt XORs src with len(src) bytes of unauthenticated keystream starting
// at the given block counter, writing the result to dst. dst and src may
// overlap completely (in-place encryption) but must be the same length.
// Encryption and decryption are the same operation, as with any stream
// cipher.
//
// It returns an error if counter overflows before the requested keystream
// length is produced.
func Crypt(cipher Cipher, key [32]byte, nonce [24]byte, counter uint64, dst, src []byte) error {
	if cipher == XChaCha20 {
		return xchacha20.New(key, nonce).XORKeyStream(counter, dst, src)
	}
	return xsalsa20.New(key, nonce).XORKeyStream(counter, dst, src)
}

// Keystream fills dst with len(dst) bytes of raw keystream starting at the
// given block counter, without XORing it against any input.
func Keystream(cipher Cipher, key [32]byte, nonce [24]byte, counter uint64, dst []byte) error {
	if cipher == XChaCha20 {
		return xchacha20.New(key, nonce).Keystream(counter, dst)
	}
	return xsalsa20.New(key, nonce).Keystream(counter, dst)
}
