package main

import (
	"errors"
	"fmt"
	"strings"

	"asset-allocation-backend/internal/auth"
	"asset-allocation-backend/internal/database"
	"asset-allocation-backend/internal/repository"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var tokenEmail string

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email of the user to issue the token for")
	_ = tokenCmd.MarkFlagRequired("email")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for an existing user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		userRepo := repository.NewUserRepository(db)
		authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
		if err != nil {
			return err
		}

		email := strings.ToLower(strings.TrimSpace(tokenEmail))
		user, err := userRepo.GetByEmail(cmd.Context(), email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("no user with email %s", email)
			}
			return err
		}

		token, err := authService.GenerateJWT(user)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}
