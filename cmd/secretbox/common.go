package main

import (
	"encoding/hex"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pmuens/secretbox-go/secretbox"
)

const keyEnvVar = "SECRETBOX_KEY"

func addCipherFlag(cmd *cobra.Command) *string {
	return cmd.Flags().String("cipher", "xchacha20", `cipher family: "xsalsa20" or "xchacha20"`)
}

func parseCipher(name string) (secretbox.CipherType, error) {
	switch name {
	case "xsalsa20", "salsa20":
		return secretbox.Salsa20, nil
	case "xchacha20", "chacha20":
		return secretbox.ChaCha20, nil
	default:
		return 0, errors.Errorf("unknown cipher %q, want xsalsa20 or xchacha20", name)
	}
}

func addKeyFlag(cmd *cobra.Command) *string {
	return cmd.Flags().String("key", "", "hex-encoded 32-byte key (defaults to $"+keyEnvVar+")")
}

func resolveKey(flagValue string) ([]byte, error) {
	hexKey := flagValue
	if hexKey == "" {
		hexKey = os.Getenv(keyEnvVar)
	}
	if hexKey == "" {
		return nil, errors.Errorf("no key given: pass --key or set $%s", keyEnvVar)
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, errors.Wrap(err, "decoding hex key")
	}
	return key, nil
}

func newHandle(keyFlag, cipherFlag string) (*secretbox.Handle, error) {
	key, err := resolveKey(keyFlag)
	if err != nil {
		return nil, err
	}

	cipher, err := parseCipher(cipherFlag)
	if err != nil {
		return nil, err
	}

	handle, err := secretbox.New(key, cipher)
	if err != nil {
		return nil, errors.Wrap(err, "constructing secretbox handle")
	}
	return handle, nil
}
