package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PlanSchema is the top-level YAML structure for plan import files.
type PlanSchema struct {
	Ref         string           `yaml:"ref"`
	Title       string           `yaml:"title"`
	Author      string           `yaml:"author,omitempty"`
	WorkoutType string           `yaml:"workout_type,omitempty"`
	Exercises   []ExerciseImport `yaml:"exercises"`
}

// ExerciseImport defines one planned exercise in the import file.
type ExerciseImport struct {
	Ref     string   `yaml:"ref"`
	Name    string   `yaml:"name,omitempty"`
	Sets    int      `yaml:"sets"`
	Reps    int      `yaml:"reps"`
	Weight  float64  `yaml:"weight,omitempty"`
	RPEHint *float64 `yaml:"rpe,omitempty"`
	SetType string   `yaml:"set_type,omitempty"`
}

// LoadPlanFile reads and parses a plan import file.
func LoadPlanFile(path string) (*PlanSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan parses plan YAML bytes.
func ParsePlan(data []byte) (*PlanSchema, error) {
	var schema PlanSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &schema, nil
}
