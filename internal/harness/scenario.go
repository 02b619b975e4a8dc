package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios evaluate a sequence of expressions and assert on each outcome.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Steps lists the expressions to evaluate, in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single expression evaluation with an optional expectation.
type Step struct {
	// Eval is the expression to evaluate.
	Eval string `yaml:"eval"`

	// Expect specifies the expected outcome.
	// If nil, the step only has to evaluate without the harness erroring;
	// its outcome is still captured in the snapshot.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies an expected step outcome. Exactly one of Value or
// Error should be set.
type Expect struct {
	// Value is the expected evaluation result.
	Value *int64 `yaml:"value,omitempty"`

	// Error is the expected error code (e.g. "DIVIDE_BY_ZERO").
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarios loads all *.yaml scenarios from a directory, sorted by
// file name for deterministic test order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan scenarios %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no scenarios found in %s", dir)
	}
	sort.Strings(matches)

	scenarios := make([]*Scenario, 0, len(matches))
	for _, path := range matches {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps must not be empty")
	}
	for i, step := range s.Steps {
		if step.Eval == "" {
			return fmt.Errorf("steps[%d]: eval must not be empty", i)
		}
		if step.Expect != nil && step.Expect.Value != nil && step.Expect.Error != "" {
			return fmt.Errorf("steps[%d]: expect sets both value and error", i)
		}
	}
	return nil
}
