package report

import (
	"encoding/json"
	"io"

	"emperror.dev/errors"
	"gopkg.in/yaml.v3"

	"github.com/callmegreg/gh-hulud-users/internal/types"
)

// Document is the machine-readable form of a report
type Document struct {
	Stats Stats              `json:"stats" yaml:"stats"`
	Users []types.UserResult `json:"users" yaml:"users"`
}

// Export writes the report to w as json or yaml
func Export(w io.Writer, format string, results []types.UserResult, stats Stats) error {
	doc := Document{Stats: stats, Users: results}
	if doc.Users == nil {
		doc.Users = []types.UserResult{}
	}

	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(doc), "failed to encode JSON report")
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return errors.Wrap(err, "failed to encode YAML report")
		}
		return errors.Wrap(encoder.Close(), "failed to encode YAML report")
	default:
		return errors.Errorf("unsupported export format %q", format)
	}
}
