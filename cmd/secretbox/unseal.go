package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmuens/secretbox-go/secretbox"
)

func newUnsealCommand(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unseal",
		Short: "Read a hex-encoded sealed envelope from stdin and print the plaintext",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyFlag, _ := cmd.Flags().GetString("key")
			cipherFlag, _ := cmd.Flags().GetString("cipher")

			handle, err := newHandle(keyFlag, cipherFlag)
			if err != nil {
				return err
			}

			raw, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return pkgerrors.Wrap(err, "reading envelope")
			}

			envelope, err := hex.DecodeString(strings.TrimSpace(string(raw)))
			if err != nil {
				return pkgerrors.Wrap(err, "decoding hex envelope")
			}

			plaintext, err := handle.EasyUnseal(envelope)
			if err != nil {
				// Authentication failures are an expected, reportable
				// outcome, not an operational fault: log without the
				// attempted ciphertext or any derived key material.
				if errors.Is(err, secretbox.ErrAuthentication) {
					logger.Warn("authentication failed", zap.String("cipher", cipherFlag))
				} else {
					logger.Error("unseal failed", zap.String("cipher", cipherFlag), zap.Error(err))
				}
				return pkgerrors.Wrap(err, "unsealing message")
			}

			fmt.Fprint(cmd.OutOrStdout(), string(plaintext))
			return nil
		},
	}
	addKeyFlag(cmd)
	addCipherFlag(cmd)
	return cmd
}
