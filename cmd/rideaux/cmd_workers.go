package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bargaoui/rideaux/app/jobs"
	"github.com/bargaoui/rideaux/config"
	"github.com/bargaoui/rideaux/pkg/cache"
	"github.com/bargaoui/rideaux/pkg/database"
	"github.com/bargaoui/rideaux/pkg/queue"
)

var queueWorkersFlag int

// rideaux queue:work runs queue workers in their own process. Requires the
// redis driver so the API process and the workers share one queue.
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := config.Load(); err != nil {
			return err
		}
		if err := database.Connect(ctx); err != nil {
			return err
		}
		defer database.Disconnect(context.Background())

		cache.Connect()
		if cache.RDB == nil {
			return fmt.Errorf("queue:work requires redis (set REDIS_ADDR)")
		}
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
		queue.UseMongo(database.DB().Collection("failed_jobs"))
		jobs.RegisterAll()

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 5
		}

		fmt.Printf("Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\nQueue worker stopped.")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 5, "Number of concurrent workers")
}
