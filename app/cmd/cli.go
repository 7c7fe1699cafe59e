package cmd

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/ecommerce-back-end/app/configs"
	"github.com/Rakhulsr/ecommerce-back-end/app/db/seeders"
	"github.com/Rakhulsr/ecommerce-back-end/app/models/migrations"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewCli wires the process commands. serve is what runs when no command is given.
func NewCli(env configs.ENV, log *zap.Logger, serve func(ctx context.Context, db *gorm.DB) error) *cli.Command {
	open := func() (*gorm.DB, error) {
		return configs.OpenConnection(env, log)
	}

	serveAction := func(ctx context.Context, c *cli.Command) error {
		db, err := open()
		if err != nil {
			return err
		}
		return serve(ctx, db)
	}

	return &cli.Command{
		Name:   "ecommerce-back-end",
		Usage:  "REST API for categories, products and tags",
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Action: serveAction,
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := open()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					log.Info("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Migrate, then load the sample catalog",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := open()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return fmt.Errorf("migrate: %w", err)
					}
					if err := seeders.DBSeed(ctx, db); err != nil {
						return fmt.Errorf("seed: %w", err)
					}
					log.Info("seeding complete")
					return nil
				},
			},
		},
	}
}
