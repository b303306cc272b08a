package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/quizengine/internal/service"
	"github.com/remaimber-it/quizengine/internal/store"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizctl",
		Short:         "Administer quiz progress and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("db", "quizengine.db", "Path to SQLite database file")
	root.PersistentFlags().String("tz", "Local", "Time zone for calendar days and bucket labels")

	root.AddCommand(
		newStatsCmd(),
		newDeductCmd(),
		newLedgerCmd(),
		newRankCmd(),
		newSeriesCmd(),
		newSubjectsCmd(),
		newLeaderboardCmd(),
		newRosterCmd(),
	)
	return root
}

// withEngine opens the database named by --db, runs fn and closes it.
func withEngine(cmd *cobra.Command, fn func(*service.Engine) error) error {
	path, _ := cmd.Flags().GetString("db")
	tz, _ := cmd.Flags().GetString("tz")

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("invalid --tz: %w", err)
	}

	db, err := store.NewSQLite(path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	return fn(service.New(db, service.WithLocation(loc), service.WithLogger(logger)))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
