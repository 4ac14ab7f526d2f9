package main

import (
	"github.com/ohcard-dev/ohcard/db"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := bootstrap(); err != nil {
				return err
			}

			if err := db.MigrateDatabase(); err != nil {
				return err
			}

			logrus.Info("Database migrated")
			return nil
		},
	}
}
