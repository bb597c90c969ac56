package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	internalserver "github.com/katzedaze/portfolio/internal/server"
	"github.com/katzedaze/portfolio/internal/tui"
	"github.com/katzedaze/portfolio/migrations"
	"github.com/katzedaze/portfolio/modules"
	coreuser "github.com/katzedaze/portfolio/modules/core/domain/aggregates/user"
	corePersistence "github.com/katzedaze/portfolio/modules/core/infrastructure/persistence"
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/introduction"
	"github.com/katzedaze/portfolio/modules/portfolio/domain/entities/profile"
	portfolioPersistence "github.com/katzedaze/portfolio/modules/portfolio/infrastructure/persistence"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/composables"
	"github.com/katzedaze/portfolio/pkg/configuration"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio CMS",
	Long:  "Serves the portfolio content API and ships the admin terminal client.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := configuration.Use()
		logger := conf.Logger()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		app := application.New(&application.ApplicationOptions{Pool: pool})
		if err := modules.Load(app, modules.BuiltInModules...); err != nil {
			return fmt.Errorf("load modules: %w", err)
		}

		srv, err := internalserver.Default(&internalserver.DefaultOptions{
			Logger:        logger,
			Configuration: conf,
			Application:   app,
			Pool:          pool,
		})
		if err != nil {
			return err
		}

		logger.WithField("address", conf.SocketAddress).Info("listening")
		return srv.Start(conf.SocketAddress)
	},
}

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply database migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := configuration.Use()

		db, err := sql.Open("pgx", conf.Database.ConnectionString())
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			return err
		}

		switch args[0] {
		case "up":
			return goose.Up(db, ".")
		case "down":
			return goose.Down(db, ".")
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin user and starter content",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := configuration.Use()
		logger := conf.Logger()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		const (
			adminEmail    = "admin@example.com"
			adminPassword = "admin123"
		)

		ctx = composables.WithPool(ctx, pool)
		return composables.InTx(ctx, func(ctx context.Context) error {
			users := corePersistence.NewUserRepository()
			if _, err := users.GetByEmail(ctx, adminEmail); err == nil {
				logger.Info("admin user already exists")
				return nil
			}

			admin, err := coreuser.New(uuid.NewString(), adminEmail, "Admin", adminPassword)
			if err != nil {
				return err
			}
			created, err := users.Create(ctx, admin)
			if err != nil {
				return err
			}

			profiles := portfolioPersistence.NewProfileRepository()
			initial := profile.New(created.ID(), "Admin User", adminEmail, "000-0000-0000").
				WithDetails("", "", "", "", "", "", "# About Me\n\nThis is your profile bio. Edit this from the admin panel.", "")
			if _, err := profiles.Upsert(ctx, initial); err != nil {
				return err
			}

			introductions := portfolioPersistence.NewIntroductionRepository()
			if _, err := introductions.Create(ctx, introduction.New(
				"Self Introduction", "Edit your self-introduction from the admin panel.", 0,
			)); err != nil {
				return err
			}

			logger.WithField("email", adminEmail).Info("seed completed, change the admin password after first login")
			return nil
		})
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Open the admin terminal client",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL, _ := cmd.Flags().GetString("server")
		return tui.Run(baseURL)
	},
}

func init() {
	adminCmd.Flags().String("server", "http://localhost:3000", "base URL of the portfolio server")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
