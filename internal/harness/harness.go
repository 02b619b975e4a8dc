package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/buildlab/calc/internal/engine"
	"github.com/buildlab/calc/internal/expr"
	"github.com/buildlab/calc/internal/store"
	"github.com/buildlab/calc/internal/testutil"
)

// StepResult captures the outcome of one scenario step.
type StepResult struct {
	Expression string `json:"expression"`
	Status     string `json:"status"`          // "ok" or "error"
	Value      int64  `json:"value,omitempty"` // set when Status is "ok"
	Error      string `json:"error,omitempty"` // error code when Status is "error"
}

// HistorySummary counts the entries the scenario left in the store.
type HistorySummary struct {
	Total  int64 `json:"total"`
	OK     int64 `json:"ok"`
	Errors int64 `json:"errors"`
}

// Result is the outcome of running a scenario.
type Result struct {
	ScenarioName string         `json:"scenario_name"`
	Steps        []StepResult   `json:"steps"`
	History      HistorySummary `json:"history"`

	// Failures lists expectation mismatches. Empty means the scenario passed.
	Failures []string `json:"-"`
}

// Run executes every step of a scenario through the real engine,
// backed by an in-memory store with deterministic IDs and timestamps.
//
// Run returns an error only for harness-level problems (store setup,
// recording failures). Expectation mismatches land in Result.Failures.
func Run(scenario *Scenario) (*Result, error) {
	st, err := openScenarioStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	ids := make([]string, len(scenario.Steps))
	for i := range ids {
		ids[i] = fmt.Sprintf("entry-%03d", i+1)
	}
	eng := engine.New(st, engine.NewFixedGenerator(ids...))

	ctx := context.Background()
	result := &Result{
		ScenarioName: scenario.Name,
		Steps:        make([]StepResult, 0, len(scenario.Steps)),
	}

	for i, step := range scenario.Steps {
		stepRes, err := runStep(ctx, eng, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%q): %w", i+1, step.Eval, err)
		}
		result.Steps = append(result.Steps, stepRes)

		if msg := checkExpect(i, step, stepRes); msg != "" {
			result.Failures = append(result.Failures, msg)
		}
	}

	if err := summarizeHistory(ctx, st, &result.History); err != nil {
		return nil, err
	}
	return result, nil
}

func openScenarioStore() (*store.Store, error) {
	clk := testutil.NewDeterministicClock()
	st, err := store.Open(":memory:", store.WithNow(clk.Now))
	if err != nil {
		return nil, fmt.Errorf("open scenario store: %w", err)
	}
	return st, nil
}

func runStep(ctx context.Context, eng *engine.Engine, step Step) (StepResult, error) {
	res, err := eng.Evaluate(ctx, step.Eval)
	if err == nil {
		return StepResult{Expression: step.Eval, Status: "ok", Value: res.Value}, nil
	}

	var exprErr *expr.Error
	if errors.As(err, &exprErr) {
		return StepResult{Expression: step.Eval, Status: "error", Error: string(exprErr.Code)}, nil
	}
	// Not an evaluation outcome - the harness itself broke
	return StepResult{}, err
}

// checkExpect returns an empty string when the step met its expectation.
func checkExpect(idx int, step Step, res StepResult) string {
	if step.Expect == nil {
		return ""
	}

	if step.Expect.Error != "" {
		if res.Status != "error" {
			return fmt.Sprintf("steps[%d] %q: expected error %s, got value %d",
				idx, step.Eval, step.Expect.Error, res.Value)
		}
		if res.Error != step.Expect.Error {
			return fmt.Sprintf("steps[%d] %q: expected error %s, got %s",
				idx, step.Eval, step.Expect.Error, res.Error)
		}
		return ""
	}

	if step.Expect.Value != nil {
		if res.Status != "ok" {
			return fmt.Sprintf("steps[%d] %q: expected value %d, got error %s",
				idx, step.Eval, *step.Expect.Value, res.Error)
		}
		if res.Value != *step.Expect.Value {
			return fmt.Sprintf("steps[%d] %q: expected value %d, got %d",
				idx, step.Eval, *step.Expect.Value, res.Value)
		}
	}
	return ""
}

func summarizeHistory(ctx context.Context, st *store.Store, summary *HistorySummary) error {
	total, err := st.CountEntries(ctx, "")
	if err != nil {
		return fmt.Errorf("summarize history: %w", err)
	}
	okCount, err := st.CountEntries(ctx, store.StatusOK)
	if err != nil {
		return fmt.Errorf("summarize history: %w", err)
	}
	errCount, err := st.CountEntries(ctx, store.StatusError)
	if err != nil {
		return fmt.Errorf("summarize history: %w", err)
	}

	summary.Total = total
	summary.OK = okCount
	summary.Errors = errCount
	return nil
}
