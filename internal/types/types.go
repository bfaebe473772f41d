package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// RuleSet holds the naming conventions a job package is checked against.
// The defaults match what SL1/SL1S printer firmware expects; a rules file
// can override individual fields for other printer families.
type RuleSet struct {
	RequiredEntries  []string `yaml:"required_entries"`
	ReservedPrefixes []string `yaml:"reserved_prefixes"`
	LayerExtensions  []string `yaml:"layer_extensions"`
	ConfigEntry      string   `yaml:"config_entry"`
	ConfigSection    string   `yaml:"config_section"`
	JobDirKey        string   `yaml:"job_dir_key"`
	LayerCountKey    string   `yaml:"layer_count_key"`
}

func DefaultRuleSet() RuleSet {
	return RuleSet{
		RequiredEntries:  []string{"config.ini", "prusaslicer.ini"},
		ReservedPrefixes: []string{"thumbnail/", "preview/"},
		LayerExtensions:  []string{".png", ".jpg", ".jpeg"},
		ConfigEntry:      "config.ini",
		ConfigSection:    "layerRenderParams",
		JobDirKey:        "jobDir",
		LayerCountKey:    "numFast",
	}
}

// LoadRuleSet reads a YAML rules file and overlays it on the defaults, so a
// file only needs to name the fields it changes.
func LoadRuleSet(path string) (RuleSet, error) {
	rules := DefaultRuleSet()

	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file: %v", err)
	}

	var overlay RuleSet
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return rules, fmt.Errorf("failed to parse rules file %s: %v", path, err)
	}

	if len(overlay.RequiredEntries) > 0 {
		rules.RequiredEntries = overlay.RequiredEntries
	}
	if len(overlay.ReservedPrefixes) > 0 {
		rules.ReservedPrefixes = overlay.ReservedPrefixes
	}
	if len(overlay.LayerExtensions) > 0 {
		rules.LayerExtensions = overlay.LayerExtensions
	}
	if overlay.ConfigEntry != "" {
		rules.ConfigEntry = overlay.ConfigEntry
	}
	if overlay.ConfigSection != "" {
		rules.ConfigSection = overlay.ConfigSection
	}
	if overlay.JobDirKey != "" {
		rules.JobDirKey = overlay.JobDirKey
	}
	if overlay.LayerCountKey != "" {
		rules.LayerCountKey = overlay.LayerCountKey
	}

	return rules, nil
}

// LayerImage is one classified layer-image entry. Index and Base are only
// meaningful when Matched is true; unmatched entries still count toward the
// layer total used by the consistency checks.
type LayerImage struct {
	Name    string `json:"name"`
	Base    string `json:"base,omitempty"`
	Index   int    `json:"index"`
	Matched bool   `json:"matched"`
}

// JobSummary is the metadata view produced by the inspect command.
type JobSummary struct {
	File           string `json:"file" yaml:"file"`
	JobName        string `json:"job_name,omitempty" yaml:"job_name,omitempty"`
	DeclaredLayers string `json:"declared_layers,omitempty" yaml:"declared_layers,omitempty"`
	LayerCount     int    `json:"layer_count" yaml:"layer_count"`
	MinIndex       int    `json:"min_index" yaml:"min_index"`
	MaxIndex       int    `json:"max_index" yaml:"max_index"`
	Entries        int    `json:"entries" yaml:"entries"`
}
