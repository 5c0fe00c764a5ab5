package main

import (
	"errors"
	"fmt"
	"time"

	"bark-advisor/internal/adapters/auth/jwt"
	"bark-advisor/internal/config"
	"bark-advisor/internal/ports/auth"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a session token signed with JWT_SECRET",
	Long: `Emite un token HS256 para probar la app con JWT_SECRET configurado.
Se usa como "Authorization: Bearer <token>" o en la cookie bark_session.`,
	RunE: runToken,
}

var (
	tokenUserID string
	tokenEmail  string
	tokenTTL    time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "user id (sub)")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "user email")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if tokenUserID == "" {
		return errors.New("--user is required")
	}

	v, err := jwt.NewVerifier(cfg.Auth.JWTSecret)
	if err != nil {
		return err
	}
	tok, err := v.Issue(auth.Claims{UserID: tokenUserID, Email: tokenEmail}, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
