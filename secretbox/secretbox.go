package secretbox

import (
	"io"

	"github.com/pmuens/secretbox-go/internal/poly1305"
	"github.com/pmuens/secretbox-go/internal/xchacha20"
	"github.com/pmuens/secretbox-go/internal/xsalsa20"
	"github.com/pmuens/secretbox-go/internal/zeroize"
)

// KeySize is the required length, in bytes, of a secretbox key.
const KeySize = 32

// NonceSize is the required length, in bytes, of an extended secretbox
// nonce.
const NonceSize = 24

// TagSize is the length, in bytes, of the Poly1305 tag prepended to every
// sealed ciphertext.
const TagSize = poly1305.TagSize

// CipherType selects which stream cipher backs a Handle.
type CipherType int

const (
	// Salsa20 selects XSalsa20-Poly1305.
	Salsa20 CipherType = iota
	// ChaCha20 selects XChaCha20-Poly1305.
	ChaCha20
)

// stream is the keystream-generator contract both cipher families satisfy;
// it is deliberately unexported so callers can't reach a raw keystream
// through this package. The raw, unauthenticated keystream lives in
// package xstream instead.
type stream interface {
	Keystream(counter uint64, dst []byte) error
	XORKeyStream(counter uint64, dst, src []byte) error
}

// Handle is an immutable secretbox instance bound to a single key and
// cipher choice. It is safe for concurrent use: Seal and Unseal are pure
// functions of their arguments.
type Handle struct {
	key    [32]byte
	cipher CipherType
}

// New creates a Handle from a 32-byte key. It fails with ErrKeySize if key
// is any other length.
func New(key []byte, cipher CipherType) (*Handle, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	var k [32]byte
	copy(k[:], key)
	return &Handle{key: k, cipher: cipher}, nil
}

// NewRandom generates a fresh random key from rand (an injected CSPRNG,
// typically crypto/rand.Reader) and returns both the Handle and the raw
// key bytes so the caller can persist them.
func NewRandom(rand io.Reader, cipher CipherType) (*Handle, [32]byte, error) {
	var key [32]byte
	if _, err := io.ReadFull(rand, key[:]); err != nil {
		return nil, [32]byte{}, err
	}
	return &Handle{key: key, cipher: cipher}, key, nil
}

func (h *Handle) newStream(nonce [NonceSize]byte) stream {
	if h.cipher == ChaCha20 {
		return xchacha20.New(h.key, nonce)
	}
	return xsalsa20.New(h.key, nonce)
}

// polyKey runs the cipher's counter-0 block and returns its first 32
// bytes as the one-time Poly1305 key. As in NaCl's secretbox, the
// keystream from byte 32 of that block onward encrypts the message.
func polyKey(s stream) ([32]byte, error) {
	var block0 [64]byte
	defer zeroize.Bytes(block0[:])

	if err := s.Keystream(0, block0[:]); err != nil {
		return [32]byte{}, ErrCounterOverflow
	}

	var key [32]byte
	copy(key[:], block0[:32])
	return key, nil
}

// Seal encrypts and authenticates plaintext under nonce, returning
// tag(16) || ciphertext(len(plaintext)). The (key, nonce) pair must
// be unique for every call.
func (h *Handle) Seal(nonce [NonceSize]byte, plaintext []byte) ([]byte, error) {
	s := h.newStream(nonce)

	pk, err := polyKey(s)
	if err != nil {
		return nil, err
	}
	defer zeroize.Bytes(pk[:])

	buf := make([]byte, 32+len(plaintext))
	copy(buf[32:], plaintext)
	if err := s.XORKeyStream(0, buf, buf); err != nil {
		return nil, ErrCounterOverflow
	}
	ciphertext := buf[32:]

	tag := poly1305.Sum(ciphertext, &pk)

	out := make([]byte, TagSize+len(ciphertext))
	copy(out[:TagSize], tag[:])
	copy(out[TagSize:], ciphertext)
	return out, nil
}

// Unseal authenticates and decrypts box (tag(16) || ciphertext) under
// nonce, returning the plaintext. It fails with ErrMalformedInput if box
// is shorter than a tag, and with ErrAuthentication — without producing
// any plaintext — if the tag does not match.
func (h *Handle) Unseal(nonce [NonceSize]byte, box []byte) ([]byte, error) {
	if len(box) < TagSize {
		return nil, ErrMalformedInput
	}

	var tag [TagSize]byte
	copy(tag[:], box[:TagSize])
	ciphertext := box[TagSize:]

	s := h.newStream(nonce)

	pk, err := polyKey(s)
	if err != nil {
		return nil, err
	}
	defer zeroize.Bytes(pk[:])

	if !poly1305.Verify(&tag, ciphertext, &pk) {
		return nil, ErrAuthentication
	}

	buf := make([]byte, 32+len(ciphertext))
	copy(buf[32:], ciphertext)
	if err := s.XORKeyStream(0, buf, buf); err != nil {
		return nil, ErrCounterOverflow
	}
	return buf[32:], nil
}

// EasySeal generates a fresh random nonce from rand and prepends it to the
// sealed output: nonce(24) || tag(16) || ciphertext(n).
func (h *Handle) EasySeal(rand io.Reader, plaintext []byte) ([]byte, error) {
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(rand, nonce[:]); err != nil {
		return nil, err
	}

	sealed, err := h.Seal(nonce, plaintext)
	if err != nil {
		return nil, err
	}

	out := make([]byte, NonceSize+len(sealed))
	copy(out[:NonceSize], nonce[:])
	copy(out[NonceSize:], sealed)
	return out, nil
}

// EasyUnseal splits the leading 24-byte nonce off envelope and unseals the
// rest. It fails with ErrMalformedInput if envelope is shorter than the
// minimum nonce+tag framing.
func (h *Handle) EasyUnseal(envelope []byte) ([]byte, error) {
	if len(envelope) < NonceSize+TagSize {
		return nil, ErrMalformedInput
	}

	var nonce [NonceSize]byte
	copy(nonce[:], envelope[:NonceSize])
	return h.Unseal(nonce, envelope[NonceSize:])
}
