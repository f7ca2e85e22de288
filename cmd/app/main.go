package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/nwestra/checkpad/internal"
	"github.com/nwestra/checkpad/internal/checklistservice"
	"github.com/nwestra/checkpad/internal/mcpserver"
	"github.com/nwestra/checkpad/internal/seed"
	"github.com/nwestra/checkpad/internal/store"
	pkgconfig "github.com/nwestra/checkpad/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.Load(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runSeed(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))

	db, err := store.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer db.Close()

	return seed.Run(ctx, db, logger)
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.MCP.UserEmail == "" {
		return fmt.Errorf("mcp.user_email must be set to run the MCP server")
	}

	db, err := store.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer db.Close()

	user, err := db.GetUserByEmail(ctx, cfg.MCP.UserEmail)
	if err != nil {
		return fmt.Errorf("resolve mcp user %q: %w", cfg.MCP.UserEmail, err)
	}

	svc := checklistservice.NewService(db, nil)
	return mcpserver.New(svc, user.ID).ServeStdio()
}

func main() {
	cmd := &cli.Command{
		Name:   "checkpad",
		Usage:  "Ownership-scoped checklist service with SQLite storage and an MCP tool surface",
		Action: runServe,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Create the demo user and sample checklist",
				Action: runSeed,
			},
			{
				Name:   "mcp",
				Usage:  "Serve checklist tools over MCP stdio as the configured user",
				Action: runMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
