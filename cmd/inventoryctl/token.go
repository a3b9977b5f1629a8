package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventory-tracker/internal/application/auth"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/jwt"
)

// newTokenCmd emite un Bearer token con el JWT_SECRET configurado. No abre el almacenamiento.
func newTokenCmd() *cobra.Command {
	var (
		userID string
		role   string
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un token de acceso para las escrituras de la API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			uc := auth.NewTokenUseCase(auth.JWTConfig{
				Secret:     cfg.JWT.Secret,
				ExpMinutes: cfg.JWT.Expiration,
				Issuer:     cfg.JWT.Issuer,
			})
			issued, err := uc.Issue(userID, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), issued.Token)
			fmt.Fprintf(cmd.ErrOrStderr(), "usuario %s, rol %s, expira en %d min\n", issued.UserID, issued.Role, issued.ExpMinutes)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "Identificador del usuario (por defecto un uuid)")
	cmd.Flags().StringVar(&role, "role", jwt.RoleOperator, "Rol: admin, operator o viewer")
	return cmd
}
