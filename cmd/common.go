package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/callmegreg/gh-hulud-users/internal/api"
	"github.com/callmegreg/gh-hulud-users/internal/config"
	"github.com/callmegreg/gh-hulud-users/internal/membership"
	"github.com/callmegreg/gh-hulud-users/internal/metrics"
	"github.com/callmegreg/gh-hulud-users/internal/processors"
	"github.com/callmegreg/gh-hulud-users/internal/types"
	"github.com/callmegreg/gh-hulud-users/internal/ui"
	"github.com/callmegreg/gh-hulud-users/internal/utils"
)

// loadConfig resolves and validates the settings for a command. Commands that talk to an
// enterprise prompt for its slug when it is missing.
func loadConfig(cmd *cobra.Command, needsEnterprise bool) (*types.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cmd.Flags(), configFile, envFile)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := utils.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	if needsEnterprise {
		cfg.Enterprise, err = ui.GetEnterpriseInput(cfg.Enterprise)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newClient(cfg *types.Config) (*api.Client, error) {
	return api.NewClient(api.ClientOptions{
		Host:    cfg.Host(),
		Token:   cfg.Token,
		Timeout: cfg.Timeout,
	})
}

// newMembershipProcessor wires the default tiers, with a collaborator index shared by
// every user of the run
func newMembershipProcessor(cfg *types.Config, client *api.Client, recorder *metrics.Recorder) *processors.MembershipProcessor {
	index := membership.NewCollaboratorIndex(client.ListOutsideCollaborators, 0, 0)
	resolver := membership.NewResolver(membership.DefaultTiers(client, index), membership.WithObserver(recorder))
	return processors.NewMembershipProcessor(resolver, cfg.Concurrency)
}

func writeMetrics(cfg *types.Config, recorder *metrics.Recorder) error {
	if cfg.MetricsFile == "" {
		return nil
	}
	if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
		return err
	}
	ui.ShowOutputWritten("Metrics", cfg.MetricsFile)
	return nil
}

// replicationFlags returns the settings worth repeating in a replication command. The
// token is never included.
func replicationFlags(cfg *types.Config) map[string]interface{} {
	return map[string]interface{}{
		"enterprise-slug":              cfg.Enterprise,
		"github-enterprise-server-url": cfg.ServerURL,
		"org-list":                     cfg.OrgListPath,
		"metrics-file":                 cfg.MetricsFile,
		"concurrency":                  cfg.Concurrency,
		"debug":                        cfg.Debug,
	}
}
