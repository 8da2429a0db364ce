package main

import (
	"fmt"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/errors"
	"nearby/internal/infra/auth"

	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

// newTokenCmd issues agent credentials signed with the hub's access secret.
func newTokenCmd() *cobra.Command {
	var identity entity.Identity
	var role string
	var asQR bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a vendor or consumer agent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity.Role = entity.Role(role)
			if !identity.Role.IsValid() {
				return errors.Errorf("role must be %q or %q", entity.RoleVendor, entity.RoleConsumer)
			}

			cfg, err := config.New()
			if err != nil {
				return err
			}
			tokens, err := auth.NewJWTService(cfg)
			if err != nil {
				return err
			}

			token, err := tokens.GenerateToken(identity)
			if err != nil {
				return err
			}
			if asQR {
				return printQR(cmd, token)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&identity.UserID, "user", "", "user id carried as the token subject")
	cmd.Flags().StringVar(&identity.Name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", string(entity.RoleConsumer), "vendor or consumer")
	cmd.Flags().BoolVar(&asQR, "qr", false, "print the token as a terminal QR code for a phone agent")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func printQR(cmd *cobra.Command, token string) error {
	qr, err := qrcode.New(token, qrcode.Low)
	if err != nil {
		return errors.Wrap(err, "encode token")
	}
	fmt.Fprintln(cmd.OutOrStdout(), qr.ToString(false))

	return nil
}
