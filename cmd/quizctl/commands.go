package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/quizengine/internal/service"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <learner-id>",
		Short: "Show a learner's dashboard stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *service.Engine) error {
				stats, err := e.LearnerStats(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stats)
			})
		},
	}
}

func newDeductCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deduct <learner-id> <amount>",
		Short: "Deduct XP from a learner, oldest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("amount must be an integer: %w", err)
			}
			return withEngine(cmd, func(e *service.Engine) error {
				out, err := e.DeductXP(cmd.Context(), args[0], amount)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
}

func newLedgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <learner-id>",
		Short: "List a learner's XP movements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *service.Engine) error {
				entries, err := e.LedgerHistory(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), entries)
			})
		},
	}
}

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank <learner-id>",
		Short: "Show a learner's XP rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *service.Engine) error {
				rank, err := e.Rank(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rank)
				return nil
			})
		},
	}
}

func newSeriesCmd() *cobra.Command {
	var learnerID, period string
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print the accuracy series for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *service.Engine) error {
				points, err := e.AccuracySeries(cmd.Context(), learnerID, period)
				if err != nil {
					return err
				}
				for _, p := range points {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", p.Label, p.Value)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&learnerID, "learner", "", "Restrict to one learner")
	cmd.Flags().StringVar(&period, "period", "month", "day, month or year")
	return cmd
}

func newSubjectsCmd() *cobra.Command {
	var learnerID string
	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "Rank subjects by accuracy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *service.Engine) error {
				rows, err := e.SubjectPerformance(cmd.Context(), learnerID)
				if err != nil {
					return err
				}
				for _, r := range rows {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d%%\t%d attempts\n", r.Name, r.Accuracy, r.Attempts)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&learnerID, "learner", "", "Restrict to one learner")
	return cmd
}

func newLeaderboardCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top learners by XP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *service.Engine) error {
				board, err := e.Leaderboard(cmd.Context(), limit)
				if err != nil {
					return err
				}
				for _, row := range board {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\n", row.Rank, row.DisplayName, row.XP)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum rows, 0 for all")
	return cmd
}

func newRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "List every learner with attempt, XP and subject counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(e *service.Engine) error {
				roster, err := e.LearnerRoster(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), roster)
			})
		},
	}
}
