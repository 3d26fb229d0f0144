package secretbox

import "errors"

// The error taxonomy has exactly four surface kinds.
var (
	// ErrKeySize is returned from construction when the supplied key is
	// not exactly 32 bytes.
	ErrKeySize = errors.New("secretbox: key must be 32 bytes")

	// ErrMalformedInput is returned when a sealed envelope is shorter
	// than the framing it claims to carry.
	ErrMalformedInput = errors.New("secretbox: malformed input")

	// ErrAuthentication is returned from Unseal/EasyUnseal when the
	// Poly1305 tag does not match. No plaintext is produced.
	ErrAuthentication = errors.New("secretbox: authentication failed")

	// ErrCounterOverflow is returned when a message is long enough that
	// sealing it would require incrementing the 64-bit block counter
	// past its maximum value.
	ErrCounterOverflow = errors.New("secretbox: block counter overflow")
)
