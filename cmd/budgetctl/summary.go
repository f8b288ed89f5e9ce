package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/budgetease/backend/internal/application/usecase/dashboard"
	"github.com/budgetease/backend/internal/domain/valueobject"
	"github.com/budgetease/backend/internal/integration/entrypoint/cli"
	"github.com/budgetease/backend/internal/integration/entrypoint/dto"
	"github.com/budgetease/backend/internal/integration/persistence"
)

func summaryCmd(v *viper.Viper) *cobra.Command {
	var (
		userFlag  string
		monthFlag string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a user's dashboard summary for a month",
		Example: `  budgetctl summary --user 0b9d... --month 2025-12
  budgetctl summary --user 0b9d... --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			month := valueobject.MonthOf(time.Now().UTC())
			if monthFlag != "" {
				month, err = valueobject.ParseMonth(monthFlag)
				if err != nil {
					return fmt.Errorf("invalid --month: %w", err)
				}
			}

			database, err := openDatabase(v)
			if err != nil {
				return err
			}
			defer database.Close()

			useCase := dashboard.NewGetSummaryUseCase(persistence.NewDashboardRepository(database.DB()))
			summary, err := useCase.Execute(cmd.Context(), dashboard.GetSummaryInput{
				UserID: userID,
				Month:  month,
			})
			if err != nil {
				return err
			}

			return cli.RenderSummary(cmd.OutOrStdout(), dto.ToDashboardSummaryResponse(summary), format)
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "user id (uuid)")
	cmd.Flags().StringVar(&monthFlag, "month", "", "month as YYYY-MM (default: current UTC month)")
	cmd.Flags().StringVar(&format, "format", cli.FormatTable, "output format: table or json")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
