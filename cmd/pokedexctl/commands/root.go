package commands

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"pokedex/internal/config"
	"pokedex/internal/database"
	"pokedex/internal/logging"
)

var (
	cfg *config.AppConfig
	log *logging.Logger
	db  *sql.DB
)

func Execute() error {
	root := &cobra.Command{
		Use:          "pokedexctl",
		Short:        "Pokédex backend administration",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			log = logging.New(os.Stdout, cfg.Location())
			logging.SetDefault(log)

			var err error
			db, err = database.NewPostgres(cfg.Database)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if db != nil {
				return db.Close()
			}
			return nil
		},
	}

	root.AddCommand(migrateCmd(), seedCmd(), uploadArtCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return root.ExecuteContext(ctx)
}
