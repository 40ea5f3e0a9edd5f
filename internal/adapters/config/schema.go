package config

import (
	"encoding/json"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Schedule represents the structure of a YAML or JSON schedule file.
type Schedule struct {
	Version string    `yaml:"version" json:"version"`
	Project string    `yaml:"project" json:"project"`
	Tasks   []TaskDTO `yaml:"tasks" json:"tasks"`
}

// TaskDTO represents one task entry of a schedule file.
// Dates are strings so every accepted layout can be tried.
type TaskDTO struct {
	ID         string           `yaml:"id" json:"id"`
	Name       string           `yaml:"name" json:"name"`
	Start      string           `yaml:"start" json:"start"`
	End        string           `yaml:"end" json:"end"`
	Indent     int              `yaml:"indent" json:"indent"`
	Order      *int             `yaml:"order" json:"order"`
	Group      *bool            `yaml:"group" json:"group"`
	Progress   float64          `yaml:"progress" json:"progress"`
	AssignedTo string           `yaml:"assignedTo" json:"assignedTo"`
	DependsOn  []PredecessorDTO `yaml:"dependsOn" json:"dependsOn"`
}

// PredecessorDTO is a dependsOn entry. It is written either as a bare task id
// or as a mapping with an id and a relationship type.
type PredecessorDTO struct {
	ID   string `yaml:"id" json:"id"`
	Type int    `yaml:"type" json:"type"`
}

type predecessorFields PredecessorDTO

// UnmarshalYAML accepts both the scalar and the mapping form.
func (p *PredecessorDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*p = PredecessorDTO{ID: strings.TrimSpace(value.Value)}
		return nil
	}

	var fields predecessorFields
	if err := value.Decode(&fields); err != nil {
		return zerr.With(zerr.Wrap(err, "invalid dependsOn entry"), "line", value.Line)
	}
	*p = PredecessorDTO(fields)
	p.ID = strings.TrimSpace(p.ID)
	return nil
}

// UnmarshalJSON accepts both the string and the object form.
func (p *PredecessorDTO) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*p = PredecessorDTO{ID: strings.TrimSpace(id)}
		return nil
	}

	var fields predecessorFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return zerr.Wrap(err, "invalid dependsOn entry")
	}
	*p = PredecessorDTO(fields)
	p.ID = strings.TrimSpace(p.ID)
	return nil
}
