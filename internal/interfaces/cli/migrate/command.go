// Package migrate implements the database migration commands.
package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ilmpay/ilmpay/internal/infrastructure/config"
	"github.com/ilmpay/ilmpay/internal/infrastructure/database"
	"github.com/ilmpay/ilmpay/internal/infrastructure/migration"
	"github.com/ilmpay/ilmpay/internal/shared/logger"
)

var (
	env   string
	steps int
	name  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, and check status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create an empty pair of up/down migration script files.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*migration.GolangMigrateStrategy, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, "release"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}

	return migration.NewGolangMigrateStrategy(scriptsPath), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations applied successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	logger.Info("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	version, dirty, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	logger.Info("current migration status", "version", version, "dirty", dirty)
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}

	version := time.Now().UTC().Format("20060102150405")
	for _, direction := range []string{"up", "down"} {
		path := filepath.Join(scriptsPath, fmt.Sprintf("%s_%s.%s.sql", version, name, direction))
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("failed to create migration file: %w", err)
		}
		fmt.Println("created", path)
	}

	return nil
}
