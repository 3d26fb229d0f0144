package secretbox

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex fixture: %v", err)
	}
	return b
}

// TestSealPyNaClVector reproduces the published PyNaCl XSalsa20-Poly1305
// secretbox vector bit-exactly.
func TestSealPyNaClVector(t *testing.T) {
	key := mustHex(t, "1b27556473e985d462cd51197a9a46c76009549eac6474f206c4ee0844f68389")
	var nonce [NonceSize]byte
	copy(nonce[:], mustHex(t, "69696ee955b62b73cd62bda875fc73d68219e0036b7a0b37"))

	plaintext := mustHex(t, "be075fc53c81f2d5cf141316ebeb0c7b5228c52a4c62cbd44b66849b64244ffce5"+
		"ecbaaf33bd751a1ac728d45e6c61296cdc3c01233561f41db66cce314adb310e3be8250c46f06dceea3a7f"+
		"a1348057e2f6556ad6b1318a024a838f21af1fde048977eb48f59ffd4924ca1c60902e52f0a089bc76897040"+
		"e082f937763848645e0705")

	want := mustHex(t, "f3ffc7703f9400e52a7dfb4b3d3305d98e993b9f48681273c29650ba32fc76ce48332ea7164"+
		"d96a4476fb8c531a1186ac0dfc17c98dce87b4da7f011ec48c97271d2c20f9b928fe2270d6fb863d51738b48eeee"+
		"314a7cc8ab932164548e526ae90224368517acfeabd6bb3732bc0e9da99832b61ca01b6de56244a9e88d5f9b37973"+
		"f622a43d14a6599b1f654cb45a74e355a5")

	handle, err := New(key, Salsa20)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	got, err := handle.Seal(nonce, plaintext)
	if err != nil {
		t.Fatalf("Seal() error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Seal() = %x, want %x", got, want)
	}

	roundtrip, err := handle.Unseal(nonce, got)
	if err != nil {
		t.Fatalf("Unseal() error: %v", err)
	}
	if !bytes.Equal(roundtrip, plaintext) {
		t.Fatalf("Unseal() = %x, want %x", roundtrip, plaintext)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, cipher := range []CipherType{Salsa20, ChaCha20} {
		cipher := cipher
		t.Run(cipherName(cipher), func(t *testing.T) {
			t.Parallel()

			var key [KeySize]byte
			if _, err := rand.Read(key[:]); err != nil {
				t.Fatal(err)
			}
			handle, err := New(key[:], cipher)
			if err != nil {
				t.Fatal(err)
			}

			for _, n := range []int{0, 1, 31, 32, 33, 1000} {
				plaintext := make([]byte, n)
				if _, err := rand.Read(plaintext); err != nil {
					t.Fatal(err)
				}

				var nonce [NonceSize]byte
				if _, err := rand.Read(nonce[:]); err != nil {
					t.Fatal(err)
				}

				box, err := handle.Seal(nonce, plaintext)
				if err != nil {
					t.Fatalf("Seal() error: %v", err)
				}
				if len(box) != len(plaintext)+TagSize {
					t.Fatalf("len(Seal()) = %d, want %d", len(box), len(plaintext)+TagSize)
				}

				out, err := handle.Unseal(nonce, box)
				if err != nil {
					t.Fatalf("Unseal() error: %v", err)
				}
				if !bytes.Equal(out, plaintext) {
					t.Fatalf("Unseal() = %x, want %x", out, plaintext)
				}
			}
		})
	}
}

func TestEasySealUnseal(t *testing.T) {
	var key [KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		t.Fatal(err)
	}
	handle, err := New(key[:], ChaCha20)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte("hello world")
	envelope, err := handle.EasySeal(rand.Reader, plaintext)
	if err != nil {
		t.Fatalf("EasySeal() error: %v", err)
	}
	if len(envelope) != len(plaintext)+NonceSize+TagSize {
		t.Fatalf("len(EasySeal()) = %d, want %d", len(envelope), len(plaintext)+NonceSize+TagSize)
	}

	out, err := handle.EasyUnseal(envelope)
	if err != nil {
		t.Fatalf("EasyUnseal() error: %v", err)
	}
	if !bytes.Equal(out, plaintext) {
		t.Fatalf("EasyUnseal() = %q, want %q", out, plaintext)
	}
}

func TestEasySealNonceUniqueness(t *testing.T) {
	var key [KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		t.Fatal(err)
	}
	handle, err := New(key[:], Salsa20)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte("same message every time")
	first, err := handle.EasySeal(rand.Reader, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	second, err := handle.EasySeal(rand.Reader, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(first, second) {
		t.Fatal("two EasySeal calls on the same plaintext produced identical envelopes")
	}
}

func TestUnsealRejectsTamperedTag(t *testing.T) {
	var key [KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		t.Fatal(err)
	}
	handle, err := New(key[:], ChaCha20)
	if err != nil {
		t.Fatal(err)
	}

	var nonce [NonceSize]byte
	box, err := handle.Seal(nonce, []byte("tamper with me"))
	if err != nil {
		t.Fatal(err)
	}

	box[0] ^= 0x01
	if _, err := handle.Unseal(nonce, box); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("Unseal() error = %v, want ErrAuthentication", err)
	}
}

func TestUnsealRejectsTamperedCiphertext(t *testing.T) {
	var key [KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		t.Fatal(err)
	}
	handle, err := New(key[:], Salsa20)
	if err != nil {
		t.Fatal(err)
	}

	var nonce [NonceSize]byte
	box, err := handle.Seal(nonce, []byte("tamper with me too"))
	if err != nil {
		t.Fatal(err)
	}

	box[len(box)-1] ^= 0x01
	if _, err := handle.Unseal(nonce, box); !errors.Is(err, ErrAuthentication) {
		t.Fatalf("Unseal() error = %v, want ErrAuthentication", err)
	}
}

func TestNewRejectsBadKeySize(t *testing.T) {
	if _, err := New(make([]byte, 31), Salsa20); !errors.Is(err, ErrKeySize) {
		t.Fatalf("New() error = %v, want ErrKeySize", err)
	}
	if _, err := New(make([]byte, 33), Salsa20); !errors.Is(err, ErrKeySize) {
		t.Fatalf("New() error = %v, want ErrKeySize", err)
	}
}

func TestUnsealRejectsMalformedInput(t *testing.T) {
	var key [KeySize]byte
	handle, err := New(key[:], ChaCha20)
	if err != nil {
		t.Fatal(err)
	}

	var nonce [NonceSize]byte
	if _, err := handle.Unseal(nonce, make([]byte, TagSize-1)); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("Unseal() error = %v, want ErrMalformedInput", err)
	}
	if _, err := handle.EasyUnseal(make([]byte, NonceSize+TagSize-1)); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("EasyUnseal() error = %v, want ErrMalformedInput", err)
	}
}

func TestNewRandomProducesUsableHandle(t *testing.T) {
	handle, key, err := NewRandom(rand.Reader, ChaCha20)
	if err != nil {
		t.Fatalf("NewRandom() error: %v", err)
	}

	fromKey, err := New(key[:], ChaCha20)
	if err != nil {
		t.Fatal(err)
	}

	var nonce [NonceSize]byte
	plaintext := []byte("derived handles agree")
	box, err := handle.Seal(nonce, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	out, err := fromKey.Unseal(nonce, box)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, plaintext) {
		t.Fatalf("Unseal() = %q, want %q", out, plaintext)
	}
}

func cipherName(c CipherType) string {
	if c == ChaCha20 {
		return "ChaCha20"
	}
	return "Salsa20"
}
