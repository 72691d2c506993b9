package ui

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-hulud-users/internal/report"
	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// ScanPlan describes a scan before it starts
type ScanPlan struct {
	Enterprise  string
	Host        string
	OrgList     string
	Query       string
	Concurrency int
}

// ShowScanPlan shows what the scan is about to do
func ShowScanPlan(plan ScanPlan) {
	pterm.Println()
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).WithTextStyle(pterm.NewStyle(pterm.FgBlack)).Println("Scan Summary")

	pterm.Printf("Enterprise: %s\n", pterm.Cyan(plan.Enterprise))
	pterm.Printf("Host: %s\n", pterm.Cyan(plan.Host))
	pterm.Printf("Organizations: %s\n", orgSource(plan.OrgList))
	pterm.Printf("Search Query: %s\n", pterm.Yellow(plan.Query))
	pterm.Printf("Concurrency: %s\n", pterm.Magenta(concurrencyLabel(plan.Concurrency)))
	pterm.Println()
}

func concurrencyLabel(concurrency int) string {
	if concurrency == 0 {
		return "unbounded"
	}
	return strconv.Itoa(concurrency)
}

// ShowNoOrganizationsWarning displays appropriate warning based on source
func ShowNoOrganizationsWarning(orgListPath string) {
	if orgListPath != "" {
		pterm.Warning.Println("No valid organizations found in the CSV file.")
	} else {
		pterm.Warning.Println("No organizations found in the enterprise.")
	}
}

// ShowProcessingStart displays the start of membership checks with concurrency info
func ShowProcessingStart(userCount, orgCount, concurrency int) {
	pterm.Info.Printf("Checking %d users against %d organizations with concurrency %s...\n", userCount, orgCount, concurrencyLabel(concurrency))
}

// ShowCaseVariantWarning warns about owners reported under several spellings
func ShowCaseVariantWarning(variants [][]string) {
	for _, spellings := range variants {
		pterm.Warning.Printf("Owner appears with different casing and is reported once per spelling, with memberships under %s: %s\n", spellings[0], strings.Join(spellings, ", "))
	}
}

// ShowStats renders the summary statistics table
func ShowStats(stats report.Stats) error {
	pterm.DefaultSection.Println("Statistics")
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Metric", "Count"},
		{"Total Sha1-Hulud repositories", strconv.Itoa(stats.TotalRepositories)},
		{"Unique users", strconv.Itoa(stats.UniqueUsers)},
		{"Users with enterprise memberships", strconv.Itoa(stats.UsersWithMemberships)},
		{"Total memberships", strconv.Itoa(stats.TotalMemberships)},
	}).Render()
}

// ShowResults renders the ranked users table
func ShowResults(results []types.UserResult, webURL string) error {
	if len(results) == 0 {
		pterm.Success.Println("No users with Sha1-Hulud repositories found.")
		return nil
	}

	pterm.DefaultSection.Println("Users")
	data := pterm.TableData{{"Username", "Repositories", "Memberships", "Profile"}}
	for _, result := range results {
		username := result.Username
		memberships := "-"
		if result.HasMemberships() {
			username = pterm.Red(username)
			memberships = report.FormatMemberships(result.Memberships, ", ")
		}
		data = append(data, []string{
			username,
			strconv.Itoa(len(result.Repositories)),
			memberships,
			report.ProfileURL(webURL, result.Username),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// ShowRepositories renders flagged repositories
func ShowRepositories(repos []types.RepositoryRef) error {
	if len(repos) == 0 {
		pterm.Success.Println("No Sha1-Hulud repositories found.")
		return nil
	}

	pterm.DefaultSection.Printf("Repositories (%d)", len(repos))
	data := pterm.TableData{{"Owner", "Repository", "URL"}}
	for _, repo := range repos {
		data = append(data, []string{repo.Owner, repo.Repo, repo.URL})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// ShowUserMemberships prints each user's memberships in the given order
func ShowUserMemberships(usernames []string, memberships map[string]*types.UserMembership) {
	for _, username := range usernames {
		membership := memberships[username]
		if membership == nil || len(membership.Organizations) == 0 {
			pterm.Success.Printf("%s: no enterprise memberships\n", username)
			continue
		}
		pterm.Warning.Printf("%s: %s\n", username, report.FormatMemberships(membership.Organizations, ", "))
	}
}

// ShowOutputWritten reports where a report file went
func ShowOutputWritten(kind, path string) {
	pterm.Success.Printf("%s written to %s\n", kind, path)
}

func orgSource(orgListPath string) string {
	if orgListPath == "" {
		return pterm.Cyan("all enterprise organizations")
	}
	return pterm.Cyan(orgListPath)
}
