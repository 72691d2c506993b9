package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

// ReadOrganizationsFromCSV reads organization names from a CSV file
func ReadOrganizationsFromCSV(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	var orgs []string
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		orgName := strings.TrimSpace(record[0])
		if orgName == "" {
			continue
		}
		if err := ValidateOrgName(orgName); err != nil {
			pterm.Warning.Printf("Line %d: Invalid organization name format '%s', skipping\n", i+1, orgName)
			continue
		}
		orgs = append(orgs, orgName)
	}

	return orgs, nil
}
