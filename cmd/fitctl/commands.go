package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/templui/fitshare/internal/client"
)

func authCmds() []*cobra.Command {
	var displayName string

	registerCmd := &cobra.Command{
		Use:   "register <email> <password>",
		Short: "Create an account and print its token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := api().Register(cmd.Context(), args[0], args[1], displayName)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	registerCmd.Flags().StringVar(&displayName, "name", "", "Display name")
	_ = registerCmd.MarkFlagRequired("name")

	loginCmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in and print a token for FITSHARE_TOKEN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := api().Login(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := api().Account(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, account)
		},
	}

	return []*cobra.Command{registerCmd, loginCmd, accountCmd}
}

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage fitness goals",
	}

	var target int
	createCmd := &cobra.Command{
		Use:   "create <decrease_weight|maintain_health|increase_muscle>",
		Short: "Set a new active goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := api().CreateGoal(cmd.Context(), args[0], target)
			if err != nil {
				return err
			}
			return printJSON(cmd, goal)
		},
	}
	createCmd.Flags().IntVar(&target, "calories", 0, "Daily calorie target (server default when 0)")

	listCmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's goals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := api().Goals(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, goals)
		},
	}

	cmd.AddCommand(createCmd, listCmd)
	return cmd
}

func workoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Log and list workouts",
	}

	var calories int
	logCmd := &cobra.Command{
		Use:   "log <type> <minutes>",
		Short: "Log a finished workout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("minutes must be a number: %w", err)
			}

			logged, err := api().LogWorkout(cmd.Context(), client.WorkoutInput{
				WorkoutType:    args[0],
				Duration:       minutes,
				CaloriesBurned: calories,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, logged)
		},
	}
	logCmd.Flags().IntVar(&calories, "calories", 0, "Calories burned")

	var limit int
	historyCmd := &cobra.Command{
		Use:   "history <user-id>",
		Short: "List recent workouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts, err := api().WorkoutHistory(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, workouts)
		},
	}
	historyCmd.Flags().IntVar(&limit, "limit", 0, "Max workouts to return")

	cmd.AddCommand(logCmd, historyCmd)
	return cmd
}

func nutritionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nutrition",
		Short: "Track daily calories",
	}

	var target, consumed int
	saveCmd := &cobra.Command{
		Use:   "save [date]",
		Short: "Create the entry for a day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := api().SaveDailyNutrition(cmd.Context(), dateArg(args), target, consumed)
			if err != nil {
				return err
			}
			return printJSON(cmd, entry)
		},
	}
	saveCmd.Flags().IntVar(&target, "target", 0, "Calorie target (server default when 0)")
	saveCmd.Flags().IntVar(&consumed, "consumed", 0, "Calories consumed so far")

	eatCmd := &cobra.Command{
		Use:   "consumed <calories> [date]",
		Short: "Set consumed calories for a day (default today)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			calories, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("calories must be a number: %w", err)
			}
			entry, err := api().UpdateConsumedCalories(cmd.Context(), dateArg(args[1:]), calories)
			if err != nil {
				return err
			}
			return printJSON(cmd, entry)
		},
	}

	dayCmd := &cobra.Command{
		Use:   "day <user-id> [date]",
		Short: "Show one day's entry",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := api().DailyNutrition(cmd.Context(), args[0], dateArg(args[1:]))
			if err != nil {
				return err
			}
			return printJSON(cmd, entry)
		},
	}

	weekCmd := &cobra.Command{
		Use:   "week <user-id> [end-date]",
		Short: "Show the seven days ending at end-date",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			end := ""
			if len(args) == 2 {
				end = args[1]
			}
			entries, err := api().WeeklyNutrition(cmd.Context(), args[0], end)
			if err != nil {
				return err
			}
			return printJSON(cmd, entries)
		},
	}

	cmd.AddCommand(saveCmd, eatCmd, dayCmd, weekCmd)
	return cmd
}

func shareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share workouts, like and comment",
	}

	var caption, visibility string
	createCmd := &cobra.Command{
		Use:   "create <workout-id>",
		Short: "Share a logged workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared, err := api().ShareWorkout(cmd.Context(), args[0], caption, visibility)
			if err != nil {
				return err
			}
			return printJSON(cmd, shared)
		},
	}
	createCmd.Flags().StringVar(&caption, "caption", "", "Caption (max 500 characters)")
	createCmd.Flags().StringVar(&visibility, "visibility", "", "public, friends or private (default friends)")

	var limit int
	feedCmd := &cobra.Command{
		Use:   "feed [public|friends]",
		Short: "List the newest shared workouts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vis := ""
			if len(args) == 1 {
				vis = args[0]
			}
			shared, err := api().Feed(cmd.Context(), vis, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, shared)
		},
	}
	feedCmd.Flags().IntVar(&limit, "limit", 0, "Max items to return")

	listCmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's shared workouts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared, err := api().SharedByUser(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return printJSON(cmd, shared)
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 0, "Max items to return")

	likeCmd := &cobra.Command{
		Use:   "like <shared-id>",
		Short: "Like a shared workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared, err := api().Like(cmd.Context(), args[0])
			if client.IsConflict(err) {
				fmt.Fprintln(cmd.ErrOrStderr(), "already liked")
				return nil
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, shared)
		},
	}

	unlikeCmd := &cobra.Command{
		Use:   "unlike <shared-id>",
		Short: "Remove your like",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared, err := api().Unlike(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, shared)
		},
	}

	commentCmd := &cobra.Command{
		Use:   "comment <shared-id> <text>",
		Short: "Comment on a shared workout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comment, err := api().Comment(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, comment)
		},
	}

	commentsCmd := &cobra.Command{
		Use:   "comments <shared-id>",
		Short: "List comments, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comments, err := api().Comments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, comments)
		},
	}

	reconcileCmd := &cobra.Command{
		Use:   "reconcile <shared-id>",
		Short: "Recount likes and comments on your shared workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shared, err := api().Reconcile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, shared)
		},
	}

	cmd.AddCommand(createCmd, feedCmd, listCmd, likeCmd, unlikeCmd, commentCmd, commentsCmd, reconcileCmd)
	return cmd
}

func dateArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return time.Now().UTC().Format("2006-01-02")
}
