package main

import (
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"meeting-eval-service/internal/adapters/repositories"
	"meeting-eval-service/internal/platform/db"
)

func newInitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Initialize the postgres results schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
			if databaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}

			pg, err := db.OpenPostgres(databaseURL)
			if err != nil {
				return err
			}
			defer pg.Close()

			if err := repositories.InitSQLSchema(cmd.Context(), pg); err != nil {
				return err
			}

			fmt.Println("Schema ready.")
			return nil
		},
	}
}
