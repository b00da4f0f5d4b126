package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/employee-tracker/internal/config"
	"github.com/employee-tracker/internal/database"
	"github.com/employee-tracker/internal/handler"
	"github.com/employee-tracker/internal/prompt"
	"github.com/employee-tracker/internal/repository"
	"github.com/employee-tracker/internal/service"
	"github.com/spf13/cobra"
)

type options struct {
	envFile        string
	driver         string
	sqlitePath     string
	skipMigrations bool
	accessible     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Interactive employee management for departments, roles and employees",
		Long: `tracker walks you through menus to view, add, update and delete
departments, roles and employees stored in PostgreSQL or SQLite.

Connection settings come from DB_* environment variables, optionally
loaded from a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(cmd, opts)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "file with environment variables to load")
	flags.StringVar(&opts.driver, "driver", "", "database driver: postgres or sqlite (overrides DB_DRIVER)")
	flags.StringVar(&opts.sqlitePath, "sqlite-path", "", "SQLite database file (overrides DB_PATH)")
	flags.BoolVar(&opts.skipMigrations, "skip-migrations", false, "do not apply schema migrations on start")
	flags.BoolVar(&opts.accessible, "accessible", false, "use plain line-based prompts instead of the TUI")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	// stdout занят меню, поэтому логи идут в stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.Level,
	}))
	slog.SetDefault(logger)

	// Подключение к БД
	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		return err
	}
	defer sqlDB.Close()

	// Запуск миграций
	if !cfg.SkipMigrations {
		if err := database.Migrate(sqlDB, cfg.Database.Driver); err != nil {
			logger.Error("failed to run migrations", slog.Any("error", err))
			return err
		}
	}

	// Инициализация репозиториев и сервисов
	store := repository.NewStore(db)
	deptService := service.NewDepartmentService(store)
	roleService := service.NewRoleService(store)
	empService := service.NewEmployeeService(store)
	summaryService := service.NewSummaryService(store)

	menu := handler.NewMenu(
		deptService,
		roleService,
		empService,
		summaryService,
		prompt.NewHuhPrompter(opts.accessible),
		cmd.OutOrStdout(),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("session started", slog.String("driver", cfg.Database.Driver))
	return menu.Run(ctx)
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("driver") {
		cfg.Database.Driver = opts.driver
	}
	if flags.Changed("sqlite-path") {
		cfg.Database.Path = opts.sqlitePath
	}
	if flags.Changed("skip-migrations") {
		cfg.SkipMigrations = opts.skipMigrations
	}

	return cfg, cfg.Validate()
}
