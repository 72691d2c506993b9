package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"emperror.dev/errors"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// DefaultCSVName is the file name used when no CSV path is configured
const DefaultCSVName = "sha1-hulud-users.csv"

var csvHeaders = []string{
	"Username",
	"Profile URL",
	"Repository Count",
	"Repositories",
	"Has Enterprise Membership",
	"Memberships",
}

// DefaultCSVPath places the report in $RUNNER_TEMP when running in GitHub Actions and in the
// working directory otherwise
func DefaultCSVPath() string {
	if dir := os.Getenv("RUNNER_TEMP"); dir != "" {
		return filepath.Join(dir, DefaultCSVName)
	}
	return DefaultCSVName
}

// WriteCSV writes one row per user. webURL is the base of profile links.
func WriteCSV(w io.Writer, results []types.UserResult, webURL string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeaders); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	for _, user := range results {
		hasMembership := "No"
		if user.HasMemberships() {
			hasMembership = "Yes"
		}
		row := []string{
			user.Username,
			ProfileURL(webURL, user.Username),
			strconv.Itoa(len(user.Repositories)),
			formatRepositoryURLs(user.Repositories),
			hasMembership,
			FormatMemberships(user.Memberships, "; "),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write CSV row for %s", user.Username)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV")
}

// WriteCSVFile writes the CSV report to path, creating parent directories
func WriteCSVFile(path string, results []types.UserResult, webURL string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", path)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create CSV file")
	}
	defer file.Close()

	if err := WriteCSV(file, results, webURL); err != nil {
		return err
	}
	return errors.Wrap(file.Close(), "failed to close CSV file")
}

// ProfileURL returns the profile link of username on the web host
func ProfileURL(webURL, username string) string {
	return strings.TrimRight(webURL, "/") + "/" + username
}

// FormatMemberships renders memberships as "org (type)" joined by sep
func FormatMemberships(memberships []types.OrgMembership, sep string) string {
	parts := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		parts = append(parts, membership.Org+" ("+string(membership.Type)+")")
	}
	return strings.Join(parts, sep)
}

func formatRepositoryURLs(repos []types.RepositoryRef) string {
	urls := make([]string, 0, len(repos))
	for _, repo := range repos {
		urls = append(urls, repo.URL)
	}
	return strings.Join(urls, "; ")
}
