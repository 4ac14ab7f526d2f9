package main

import (
	"fmt"
	"os"

	"github.com/ohcard-dev/ohcard/db"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load OH card decks into the database",
		Long: `Load OH card decks into the database.

Without --file the built-in system decks are loaded. Decks whose name already
exists are skipped, so seeding is safe to repeat.

Examples:
  ohcard seed
  ohcard seed --file decks.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte

			if file != "" {
				var err error
				if data, err = os.ReadFile(file); err != nil {
					return fmt.Errorf("failed to read deck file: %w", err)
				}
			}

			if _, err := bootstrap(); err != nil {
				return err
			}

			if err := db.MigrateDatabase(); err != nil {
				return err
			}

			created, err := db.SeedDecks(data)
			if err != nil {
				return err
			}

			logrus.WithField("decks", created).Info("Decks seeded")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML deck manifest (defaults to the built-in decks)")

	return cmd
}
