package harness

import "testing"

// TestScenarios runs every scenario under testdata/scenarios against its
// golden file. Add a YAML file there and run with -update to extend the
// conformance suite.
func TestScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	if err != nil {
		t.Fatalf("load scenarios: %v", err)
	}

	for _, scenario := range scenarios {
		t.Run(scenario.Name, func(t *testing.T) {
			RunWithGolden(t, scenario)
		})
	}
}
