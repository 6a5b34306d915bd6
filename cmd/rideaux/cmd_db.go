package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bargaoui/rideaux/config"
	"github.com/bargaoui/rideaux/database/seeders"
	"github.com/bargaoui/rideaux/pkg/database"
)

// bootDB loads config and opens the Mongo connection.
func bootDB(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect(ctx)
}

// rideaux seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := bootDB(ctx); err != nil {
			return err
		}
		defer database.Disconnect(context.Background())

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, database.DB())
	},
}
