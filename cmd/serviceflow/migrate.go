package main

import (
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/serviceflow/serviceflow-api/internal/bootstrap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		// the provider would migrate on its own when automigrate is on
		cfg.Database.AutoMigrate = false

		inj := bootstrap.BuildContainer(cfg)
		defer bootstrap.Close(inj, cfg)

		d, err := do.Invoke[*gorm.DB](inj)
		if err != nil {
			return err
		}
		if err := bootstrap.Migrate(d); err != nil {
			return err
		}
		do.MustInvoke[*zap.Logger](inj).Sugar().Infow("schema up to date")
		return nil
	},
}
