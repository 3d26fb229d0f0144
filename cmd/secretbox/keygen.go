package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pmuens/secretbox-go/secretbox"
)

func newKeygenCommand(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random 32-byte key",
		RunE: func(cmd *cobra.Command, args []string) error {
			cipherFlag, err := cmd.Flags().GetString("cipher")
			if err != nil {
				return err
			}
			cipher, err := parseCipher(cipherFlag)
			if err != nil {
				return err
			}

			_, key, err := secretbox.NewRandom(rand.Reader, cipher)
			if err != nil {
				logger.Error("key generation failed", zap.Error(err))
				return errors.Wrap(err, "generating key")
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key[:]))
			return nil
		},
	}
	addCipherFlag(cmd)
	return cmd
}
