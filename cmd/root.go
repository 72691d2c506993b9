package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hulud-users",
	Short: "Find enterprise members who own Sha1-Hulud repositories",
	Long:  "A GitHub CLI extension that searches for repositories created by the Sha1-Hulud worm and reports which of their owners belong to organizations in an enterprise",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		if debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func init() {
	// Add persistent flags that are common to all commands
	rootCmd.PersistentFlags().StringP("enterprise-slug", "e", "", "GitHub Enterprise slug (e.g., github)")
	rootCmd.PersistentFlags().StringP("github-enterprise-server-url", "u", "", "GitHub Enterprise Server URL (e.g., github.company.com)")
	rootCmd.PersistentFlags().String("token", "", "GitHub token (defaults to GH_TOKEN, GITHUB_TOKEN, GITHUB_API_TOKEN or gh's stored credentials)")
	rootCmd.PersistentFlags().StringP("org-list", "l", "", "Path to CSV file containing organization names to target (one per line, no header)")
	rootCmd.PersistentFlags().IntP("concurrency", "c", 0, "Number of users checked at once (0-50, 0 for unbounded)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/gh-hulud-users/config.yaml)")
	rootCmd.PersistentFlags().String("env-file", "", "Path to a .env file to load (default .env when present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log API requests and probe failures")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file (textfile collector format)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(searchCmd)
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
