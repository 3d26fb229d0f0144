package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSealCommand(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Read plaintext from stdin and print a hex-encoded sealed envelope",
		RunE: func(cmd *cobra.Command, args []string) error {
			keyFlag, _ := cmd.Flags().GetString("key")
			cipherFlag, _ := cmd.Flags().GetString("cipher")

			handle, err := newHandle(keyFlag, cipherFlag)
			if err != nil {
				return err
			}

			plaintext, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "reading plaintext")
			}

			envelope, err := handle.EasySeal(rand.Reader, plaintext)
			if err != nil {
				logger.Error("seal failed", zap.String("cipher", cipherFlag))
				return errors.Wrap(err, "sealing message")
			}

			logger.Info("sealed message",
				zap.String("cipher", cipherFlag),
				zap.Int("plaintext_bytes", len(plaintext)),
				zap.Int("envelope_bytes", len(envelope)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(envelope))
			return nil
		},
	}
	addKeyFlag(cmd)
	addCipherFlag(cmd)
	return cmd
}
