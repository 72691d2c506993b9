package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

func TestValidateConcurrency(t *testing.T) {
	tests := []struct {
		name        string
		concurrency int
		wantErr     bool
	}{
		{"unbounded", 0, false},
		{"single", 1, false},
		{"maximum", MaxConcurrency, false},
		{"negative", -1, true},
		{"too large", MaxConcurrency + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConcurrency(tt.concurrency)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var configErr *types.ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, "concurrency", configErr.Field)
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range OutputFormats {
		assert.NoError(t, ValidateFormat(format), format)
	}
	assert.Error(t, ValidateFormat("xml"))
	assert.Error(t, ValidateFormat(""))
}

func TestValidateOrgName(t *testing.T) {
	assert.NoError(t, ValidateOrgName("octo-org"))
	assert.Error(t, ValidateOrgName(""))
	assert.Error(t, ValidateOrgName("octo org"))
	assert.Error(t, ValidateOrgName("octo/org"))
}

func TestReadOrganizationsFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orgs.csv")
	content := "# organizations to scan\norg-one\n\n  org-two  ,ignored column\nbad org\nbad/org\norg-three\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	orgs, err := ReadOrganizationsFromCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"org-one", "org-two", "org-three"}, orgs)
}

func TestReadOrganizationsFromCSVMissingFile(t *testing.T) {
	_, err := ReadOrganizationsFromCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "failed to open CSV file")
}

func TestValidateConfig(t *testing.T) {
	emptyCSV := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(emptyCSV, []byte("bad org\n"), 0o600))

	tests := []struct {
		name    string
		cfg     types.Config
		field   string
		wantErr bool
	}{
		{name: "defaults", cfg: types.Config{Format: "table"}},
		{name: "bad concurrency", cfg: types.Config{Concurrency: -3}, wantErr: true, field: "concurrency"},
		{name: "bad format", cfg: types.Config{Format: "xml"}, wantErr: true, field: "format"},
		{name: "org list without valid orgs", cfg: types.Config{OrgListPath: emptyCSV}, wantErr: true, field: "org-list"},
		{name: "negative timeout", cfg: types.Config{Timeout: -1}, wantErr: true, field: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(&tt.cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var configErr *types.ConfigError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}
