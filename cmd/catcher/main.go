package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/dutybot/catcher/internal/config"
	"github.com/dutybot/catcher/internal/database"
	"github.com/dutybot/catcher/internal/domain/service"
	"github.com/dutybot/catcher/internal/holiday"
	"github.com/dutybot/catcher/internal/notifier"
	"github.com/dutybot/catcher/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const webhookRetryWait = 2 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dryRun, debugWeights bool

	cmd := &cobra.Command{
		Use:          "catcher",
		Short:        "Select and notify the catcher of the day",
		Long:         "Selects exactly one person from the roster to perform the daily duty,\nrecords the selection and announces it to the configured webhook.\nIntended to be invoked once per working day, e.g. by cron.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelection(cmd.Context(), dryRun, debugWeights)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute and print the selection without recording or notifying")
	cmd.Flags().BoolVar(&debugWeights, "debug-weights", false, "print the weight breakdown for every eligible user")

	cmd.AddCommand(newCleanupCmd())

	return cmd
}

func newCleanupCmd() *cobra.Command {
	var days int
	var dryRun bool

	cmd := &cobra.Command{
		Use:          "cleanup",
		Short:        "Prune old selection history records",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanup(cmd.Context(), days, dryRun)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "number of days of history to retain (default from RETENTION_DAYS)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be deleted without deleting")

	return cmd
}

func runSelection(ctx context.Context, dryRun, debugWeights bool) error {
	_, svcs, closeDB, err := setup()
	if err != nil {
		return err
	}
	defer closeDB()

	if dryRun {
		log.Println("[DRY RUN] Running in dry-run mode - no database changes or notifications will be sent")
	}

	result, err := svcs.Selection.SelectCatcher(ctx, service.Options{
		Date:         time.Now(),
		DryRun:       dryRun,
		DebugWeights: debugWeights,
	})
	if err != nil {
		log.Printf("Selection run failed: %v", err)
		return err
	}

	// Everything below is a graceful no-op already logged by the service;
	// only a missing pick on a working day deserves one more line.
	if result.Outcome == service.OutcomeNoEligibleUsers {
		log.Println("No catcher found for today")
	}

	return nil
}

func runCleanup(ctx context.Context, days int, dryRun bool) error {
	cfg, svcs, closeDB, err := setup()
	if err != nil {
		return err
	}
	defer closeDB()

	if days <= 0 {
		days = cfg.RetentionDays
	}

	_, err = svcs.Selection.CleanupHistory(ctx, time.Now(), days, dryRun)
	if err != nil {
		log.Printf("Cleanup failed: %v", err)
		return err
	}

	return nil
}

func setup() (*config.Config, *service.Instance, func(), error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		return nil, nil, nil, err
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Printf("Failed to initialize database: %v", err)
		return nil, nil, nil, err
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		log.Printf("Failed to run migrations: %v", err)
		return nil, nil, nil, err
	}

	dm := database.NewInstance(db)

	remote := holiday.NewRemoteSource(cfg.HolidayAPIURL, cfg.HolidayAPITimeout)
	offline := holiday.NewOfflineSource(cfg.HolidayRegion)
	resolver := holiday.NewResolver(remote, offline)

	webhook := notifier.NewWebhook(cfg.WebhookURL, cfg.WebhookTimeout, webhookRetryWait)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	params := service.Params{
		BaseWeight:            cfg.BaseWeight,
		LastWorkingDayPenalty: cfg.LastWorkingDayPenalty,
		FrequencyPenalty:      cfg.FrequencyPenalty,
		LookbackDays:          cfg.LookbackDays,
		RetentionDays:         cfg.RetentionDays,
		CleanupProbability:    cfg.CleanupProbability,
	}

	svcs := service.NewInstance(dm, resolver, webhook, rng, params)

	return cfg, svcs, func() { db.Close() }, nil
}
