package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// definition is the YAML shape of an on-disk report definition. Only
// fields present in the file override the defaults.
type definition struct {
	Title       string   `yaml:"title"`
	Team        string   `yaml:"team"`
	WindowDays  int      `yaml:"window_days"`
	Stores      []string `yaml:"stores"`
	Excluded    []string `yaml:"excluded_requesters"`
	Aliases     []Alias  `yaml:"aliases"`
	Technicians []string `yaml:"technicians"`
}

// applyDefinitionFile merges the optional YAML definition into the
// report config. A missing file is not an error; a malformed one is.
func (r *ReportConfig) applyDefinitionFile() error {
	if r.DefinitionPath == "" {
		return nil
	}
	data, err := os.ReadFile(r.DefinitionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read report definition: %w", err)
	}

	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return fmt.Errorf("parse report definition %s: %w", r.DefinitionPath, err)
	}

	if def.Title != "" {
		r.Title = def.Title
	}
	if def.Team != "" {
		r.Team = def.Team
	}
	if def.WindowDays != 0 {
		r.WindowDays = def.WindowDays
	}
	if len(def.Stores) > 0 {
		r.StoreCatalog = def.Stores
	}
	if len(def.Excluded) > 0 {
		r.ExcludedRequesters = def.Excluded
	}
	if len(def.Aliases) > 0 {
		r.RequesterAliases = def.Aliases
	}
	if len(def.Technicians) > 0 {
		r.TechnicianNames = def.Technicians
	}
	return nil
}
