package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

func sampleResults() []types.UserResult {
	return []types.UserResult{
		{
			Username:     "user1",
			Repositories: []types.RepositoryRef{repo("user1", "repo1"), repo("user1", "repo2")},
			Memberships:  []types.OrgMembership{member("org1"), collaborator("org2")},
		},
		{
			Username:     "user2",
			Repositories: []types.RepositoryRef{repo("user2", "repo3")},
			Memberships:  []types.OrgMembership{},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResults(), "https://github.com"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Username,Profile URL,Repository Count,Repositories,Has Enterprise Membership,Memberships", lines[0])
	assert.Equal(t, "user1,https://github.com/user1,2,https://github.com/user1/repo1; https://github.com/user1/repo2,Yes,org1 (member); org2 (outside_collaborator)", lines[1])
	assert.Equal(t, "user2,https://github.com/user2,1,https://github.com/user2/repo3,No,", lines[2])
}

func TestWriteCSVEscaping(t *testing.T) {
	results := []types.UserResult{{
		Username:     "user1",
		Repositories: []types.RepositoryRef{{Owner: "user1", Repo: "repo", URL: `https://example.com/a,"b"`}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, results, "https://github.example.com/"))
	assert.Contains(t, buf.String(), `"https://example.com/a,""b"""`)
	assert.Contains(t, buf.String(), "https://github.example.com/user1,")

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `https://example.com/a,"b"`, records[1][3])
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultCSVName)
	require.NoError(t, WriteCSVFile(path, sampleResults(), "https://github.com"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "Username,"))
}

func TestDefaultCSVPath(t *testing.T) {
	t.Setenv("RUNNER_TEMP", "")
	assert.Equal(t, DefaultCSVName, DefaultCSVPath())

	dir := t.TempDir()
	t.Setenv("RUNNER_TEMP", dir)
	assert.Equal(t, filepath.Join(dir, DefaultCSVName), DefaultCSVPath())
}

func TestRenderSummary(t *testing.T) {
	results := sampleResults()
	summary := RenderSummary(results, CalculateStats(results), "https://github.com")

	assert.Contains(t, summary, "# Sha1-Hulud User Scan Results")
	assert.Contains(t, summary, "| Total Sha1-Hulud Repositories Found | 3 |")
	assert.Contains(t, summary, "| Users with Enterprise Memberships | 1 |")
	assert.Contains(t, summary, `<a href="https://github.com/user1">user1</a>`)
	assert.Contains(t, summary, `<a href="https://github.com/user1/repo1">repo1</a>, <a href="https://github.com/user1/repo2">repo2</a>`)
	assert.Contains(t, summary, "org1 (member), org2 (outside_collaborator)")
	assert.Contains(t, summary, "| None |")
	assert.NotContains(t, summary, "No users with Sha1-Hulud repositories found.")
}

func TestRenderSummaryEmpty(t *testing.T) {
	summary := RenderSummary(nil, Stats{}, "https://github.com")

	assert.Contains(t, summary, "| Unique Users with Sha1-Hulud Repos | 0 |")
	assert.Contains(t, summary, "No users with Sha1-Hulud repositories found.")
	assert.NotContains(t, summary, "## Users with Sha1-Hulud Repositories")
}

func TestAppendSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	require.NoError(t, AppendSummary(path, "first\n"))
	require.NoError(t, AppendSummary(path, "second\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(content))
}

func TestSummaryPath(t *testing.T) {
	t.Setenv(StepSummaryEnv, "/tmp/step-summary")
	assert.Equal(t, "/tmp/step-summary", SummaryPath(""))
	assert.Equal(t, "custom.md", SummaryPath("custom.md"))
}

func TestExport(t *testing.T) {
	results := sampleResults()
	stats := CalculateStats(results)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, "json", results, stats))

		var doc Document
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, stats, doc.Stats)
		require.Len(t, doc.Users, 2)
		assert.Equal(t, "user1", doc.Users[0].Username)
		assert.Contains(t, buf.String(), `"type": "outside_collaborator"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, "yaml", results, stats))

		var doc Document
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, stats, doc.Stats)
		assert.Equal(t, results[0].Memberships, doc.Users[0].Memberships)
		assert.Contains(t, buf.String(), "totalRepositories: 3")
	})

	t.Run("empty results are an empty list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, "json", nil, Stats{}))
		assert.Contains(t, buf.String(), `"users": []`)
	})

	t.Run("unsupported format", func(t *testing.T) {
		assert.Error(t, Export(&bytes.Buffer{}, "xml", results, stats))
	})
}
