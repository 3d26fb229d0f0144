// Package secretbox implements the NaCl-style secretbox authenticated
// encryption construction over two interchangeable stream ciphers,
// XSalsa20-Poly1305 and XChaCha20-Poly1305.
//
// A Handle is built from a 32-byte key and a CipherType. Seal and Unseal
// take an explicit, caller-supplied 24-byte nonce; EasySeal and
// EasyUnseal additionally generate and carry that nonce for the caller.
// No associated data is supported: this is secretbox, not a general AEAD.
//
// A Handle is immutable after construction and safe for concurrent use;
// every operation is a pure, synchronous function of its inputs, and
// ErrAuthentication never carries partial plaintext or any detail about
// why the tag failed to match.
package secretbox
