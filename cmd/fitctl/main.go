package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/templui/fitshare/internal/client"
)

var (
	baseURL string
	token   string
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "fitctl",
		Short:         "Command line client for the fitshare API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", envOr("FITSHARE_URL", "http://localhost:8090"), "API base URL or set FITSHARE_URL env")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("FITSHARE_TOKEN"), "Bearer token or set FITSHARE_TOKEN env")

	rootCmd.AddCommand(authCmds()...)
	rootCmd.AddCommand(goalCmd())
	rootCmd.AddCommand(workoutCmd())
	rootCmd.AddCommand(nutritionCmd())
	rootCmd.AddCommand(shareCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}

func api() *client.Client {
	return client.New(baseURL, client.WithToken(token))
}

// describe prefers the server's own message over the status line.
func describe(err error) string {
	var serr *client.ServerError
	if errors.As(err, &serr) {
		body := serr.Body()
		switch {
		case body.Field != "":
			return fmt.Sprintf("%s (%d): %s %s", body.Error, serr.Status, body.Field, body.Message)
		case body.Message != "":
			return fmt.Sprintf("%s (%d): %s", body.Error, serr.Status, body.Message)
		default:
			return fmt.Sprintf("server returned %d: %s", serr.Status, serr.Payload)
		}
	}
	return err.Error()
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
