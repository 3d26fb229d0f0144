// Command secretbox is a thin CLI wrapper around package secretbox. It sits
// outside the authenticated-encryption core as an ambient, operator-facing
// surface, built the way cobra-based CLIs are built elsewhere in this
// codebase's ecosystem (github.com/spf13/cobra).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "secretbox",
		Short: "Seal and unseal messages with XSalsa20/XChaCha20-Poly1305",
		Long: `secretbox encrypts and authenticates small messages using the
NaCl secretbox construction, over either XSalsa20-Poly1305 or
XChaCha20-Poly1305.

This binary is a demonstration harness around the secretbox Go package;
it is not a key-management tool. Keys must be supplied hex-encoded via
--key or the SECRETBOX_KEY environment variable.`,
	}

	root.AddCommand(newKeygenCommand(logger))
	root.AddCommand(newSealCommand(logger))
	root.AddCommand(newUnsealCommand(logger))

	return root
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "secretbox: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	if err := newRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
