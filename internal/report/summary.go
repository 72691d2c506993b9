package report

import (
	"fmt"
	"html"
	"os"
	"strings"

	"emperror.dev/errors"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// StepSummaryEnv names the file GitHub Actions renders as the job summary
const StepSummaryEnv = "GITHUB_STEP_SUMMARY"

// RenderSummary renders the report as GitHub flavored markdown
func RenderSummary(results []types.UserResult, stats Stats, webURL string) string {
	var b strings.Builder

	b.WriteString("# Sha1-Hulud User Scan Results\n\n")
	b.WriteString("## Statistics\n\n")
	b.WriteString("| Metric | Value |\n| --- | --- |\n")
	fmt.Fprintf(&b, "| Total Sha1-Hulud Repositories Found | %d |\n", stats.TotalRepositories)
	fmt.Fprintf(&b, "| Unique Users with Sha1-Hulud Repos | %d |\n", stats.UniqueUsers)
	fmt.Fprintf(&b, "| Users with Enterprise Memberships | %d |\n", stats.UsersWithMemberships)
	fmt.Fprintf(&b, "| Total Memberships Found | %d |\n", stats.TotalMemberships)
	b.WriteString("\n")

	if len(results) == 0 {
		b.WriteString("No users with Sha1-Hulud repositories found.\n")
		return b.String()
	}

	b.WriteString("## Users with Sha1-Hulud Repositories\n\n")
	b.WriteString("| Username | Repositories | Enterprise Memberships |\n| --- | --- | --- |\n")
	for _, user := range results {
		links := make([]string, 0, len(user.Repositories))
		for _, repo := range user.Repositories {
			links = append(links, link(repo.URL, repo.Repo))
		}

		memberships := "None"
		if user.HasMemberships() {
			memberships = html.EscapeString(FormatMemberships(user.Memberships, ", "))
		}

		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			link(ProfileURL(webURL, user.Username), user.Username),
			strings.Join(links, ", "),
			memberships,
		)
	}
	return b.String()
}

// AppendSummary appends content to the summary file at path
func AppendSummary(path, content string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "failed to open summary file")
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return errors.Wrap(err, "failed to write summary")
	}
	return errors.Wrap(file.Close(), "failed to close summary file")
}

// SummaryPath returns the configured path, or the Actions step summary file when unset
func SummaryPath(configured string) string {
	if configured != "" {
		return configured
	}
	return os.Getenv(StepSummaryEnv)
}

func link(href, text string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(href), html.EscapeString(text))
}
