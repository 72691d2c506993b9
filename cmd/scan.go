package cmd

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/callmegreg/gh-hulud-users/internal/api"
	"github.com/callmegreg/gh-hulud-users/internal/metrics"
	"github.com/callmegreg/gh-hulud-users/internal/processors"
	"github.com/callmegreg/gh-hulud-users/internal/report"
	"github.com/callmegreg/gh-hulud-users/internal/types"
	"github.com/callmegreg/gh-hulud-users/internal/ui"
	"github.com/callmegreg/gh-hulud-users/internal/utils"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for Sha1-Hulud repository owners with enterprise memberships",
	Long:  "Search for Sha1-Hulud repositories, check whether each owner is a member or outside collaborator of the enterprise organizations, and write a ranked report.",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func init() {
	// Command-specific flags
	scanCmd.Flags().String("query", types.DefaultSearchQuery, "Repository search query")
	scanCmd.Flags().String("csv", "", "Path of the CSV report (default sha1-hulud-users.csv in $RUNNER_TEMP or the current directory)")
	scanCmd.Flags().String("summary", "", "Append a markdown summary to this file (default $GITHUB_STEP_SUMMARY when set)")
	scanCmd.Flags().StringP("format", "f", "table", "Output format: table, json or yaml")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}

	// Keep stdout machine readable for structured output
	if cfg.Format != "table" {
		pterm.SetDefaultOutput(os.Stderr)
	}

	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgBlue)).WithTextStyle(pterm.NewStyle(pterm.FgWhite)).Println("Sha1-Hulud Enterprise User Scan")

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ui.ShowScanPlan(ui.ScanPlan{
		Enterprise:  cfg.Enterprise,
		Host:        client.Host(),
		OrgList:     cfg.OrgListPath,
		Query:       cfg.Query,
		Concurrency: cfg.Concurrency,
	})

	recorder := metrics.NewRecorder()
	processor := &processors.ScanProcessor{
		Organizations: client,
		Repositories:  client,
		Memberships:   newMembershipProcessor(cfg, client, recorder),
		Enterprise:    cfg.Enterprise,
		OrgListPath:   cfg.OrgListPath,
		Query:         cfg.Query,
	}

	result, err := processor.Process(cmd.Context())
	if err != nil {
		return err
	}

	if len(result.Organizations) == 0 {
		ui.ShowNoOrganizationsWarning(cfg.OrgListPath)
	}
	ui.ShowCaseVariantWarning(result.CaseVariants)

	if err := showScanResult(cfg, result, api.WebURL(client.Host())); err != nil {
		return err
	}

	if err := writeReports(cfg, result, api.WebURL(client.Host())); err != nil {
		return err
	}

	recorder.SetReportStats(result.Stats)
	if err := writeMetrics(cfg, recorder); err != nil {
		return err
	}

	utils.PrintCompletionHeader("Sha1-Hulud Scan", result.Stats.UniqueUsers, result.Stats.UsersWithMemberships, result.Stats.TotalMemberships)

	flags := replicationFlags(cfg)
	flags["query"] = cfg.Query
	flags["csv"] = cfg.CSVPath
	flags["summary"] = cfg.SummaryPath
	if cfg.Format != "table" {
		flags["format"] = cfg.Format
	}
	if cfg.Query == types.DefaultSearchQuery {
		delete(flags, "query")
	}
	utils.ShowReplicationCommand(utils.BuildReplicationCommand("scan", flags))

	return nil
}

func showScanResult(cfg *types.Config, result *processors.ScanResult, webURL string) error {
	if cfg.Format != "table" {
		return report.Export(os.Stdout, cfg.Format, result.Users, result.Stats)
	}

	if err := ui.ShowStats(result.Stats); err != nil {
		return err
	}
	return ui.ShowResults(result.Users, webURL)
}

func writeReports(cfg *types.Config, result *processors.ScanResult, webURL string) error {
	csvPath := cfg.CSVPath
	if csvPath == "" {
		csvPath = report.DefaultCSVPath()
	}
	if err := report.WriteCSVFile(csvPath, result.Users, webURL); err != nil {
		return err
	}
	ui.ShowOutputWritten("CSV report", csvPath)

	if summaryPath := report.SummaryPath(cfg.SummaryPath); summaryPath != "" {
		if err := report.AppendSummary(summaryPath, report.RenderSummary(result.Users, result.Stats, webURL)); err != nil {
			return err
		}
		ui.ShowOutputWritten("Step summary", summaryPath)
	}
	return nil
}
