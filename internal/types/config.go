package types

import "time"

// DefaultSearchQuery matches the description the worm writes into its repositories
const DefaultSearchQuery = "Sha1-Hulud: The Second Coming"

// Config holds the resolved settings for a run
type Config struct {
	Enterprise  string        `mapstructure:"enterprise-slug"`
	ServerURL   string        `mapstructure:"github-enterprise-server-url"`
	Token       string        `mapstructure:"token"`
	OrgListPath string        `mapstructure:"org-list"`
	Concurrency int           `mapstructure:"concurrency"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MetricsFile string        `mapstructure:"metrics-file"`
	Debug       bool          `mapstructure:"debug"`

	Query       string `mapstructure:"query"`
	CSVPath     string `mapstructure:"csv"`
	SummaryPath string `mapstructure:"summary"`
	Format      string `mapstructure:"format"`
}

// Host returns the GitHub host the run targets
func (c *Config) Host() string {
	if c.ServerURL != "" {
		return c.ServerURL
	}
	return "github.com"
}
