package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/budgetease/backend/internal/domain/entity"
)

func seedCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and the default global categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := openDatabase(v)
			if err != nil {
				return err
			}
			defer database.Close()

			if err := migrateAndSeed(cmd.Context(), database); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Schema ready, %d default categories present\n", len(entity.DefaultCategories()))
			return nil
		},
	}
}
