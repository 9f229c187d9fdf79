package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"linen-tracker/core/config"
	"linen-tracker/core/database"
	"linen-tracker/core/fetch"
	"linen-tracker/core/logger"
	"linen-tracker/feature/catalog"
	"linen-tracker/feature/dashboard"

	"github.com/spf13/cobra"
)

var reconcileClientID uint

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run reconciliation passes without the HTTP server",
}

// dashboardReconcileCmd runs one dashboard pass and prints the payload.
var dashboardReconcileCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Run one reconciliation pass for a client and print the dashboard payload",
	Long: `Fetches the client's maestro, cabin stock and consumption exports, runs
the reconciliation engine, and prints the resulting dashboard payload as JSON.

Examples:
  # Reconcile client 1
  reconcile dashboard --client 1`,
	RunE: runDashboardReconcile,
}

func init() {
	reconcileCmd.AddCommand(dashboardReconcileCmd)
	dashboardReconcileCmd.Flags().UintVar(&reconcileClientID, "client", 0, "Client ID to reconcile (required)")
	_ = dashboardReconcileCmd.MarkFlagRequired("client")

	RootCmd.AddCommand(reconcileCmd)
}

func runDashboardReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	source, err := fetch.NewRouter(cfg.Fetch)
	if err != nil {
		return fmt.Errorf("failed to create fetch router: %w", err)
	}

	service := dashboard.NewService(catalog.NewRepository(db), source, l)
	data, err := service.Build(ctx, reconcileClientID)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
