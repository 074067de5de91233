package commands

import (
	"github.com/spf13/cobra"

	"pokedex/internal/database/migration"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return migration.EnsureMigrated(cmd.Context(), db, log, cfg.Database.Host)
		},
	}
}
