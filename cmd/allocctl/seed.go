package main

import (
	"fmt"

	"asset-allocation-backend/internal/database"
	"asset-allocation-backend/internal/repository"
	"asset-allocation-backend/internal/seed"

	"github.com/spf13/cobra"
)

var seedFile string

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "scripts/data/seed.yaml", "seed file with users and assets")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the users and assets listed in a seed file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := seed.ReadFile(seedFile)
		if err != nil {
			return err
		}

		_, db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		loader := seed.NewLoader(repository.NewUserRepository(db), repository.NewAssetRepository(db))
		result, err := loader.Load(cmd.Context(), file)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "users: %d created, %d existing (%d passwords set)\nassets: %d created, %d existing\n",
			result.UsersCreated, result.UsersSkipped, result.PasswordsSet, result.AssetsCreated, result.AssetsSkipped)
		return nil
	},
}
