package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/WB9292/tapable"
	"github.com/WB9292/tapable/flavors"
	"github.com/WB9292/tapable/internal/ex"
)

// ScenarioFile is the YAML pipeline descriptor this command reads, styled
// after the declarative rule files the teacher's internal/rule package
// parses for instrumentation rules.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario describes one hook to build and call once, timing the result.
type Scenario struct {
	Name          string `yaml:"name"`
	Orchestration string `yaml:"orchestration"`
	Taps          int    `yaml:"taps"`
}

// Result is one scenario's outcome.
type Result struct {
	Name     string
	Duration time.Duration
	Err      error
}

func loadScenarios(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ex.Wrapf(err, "reading scenario file %q", path)
	}
	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, ex.Wrapf(err, "parsing scenario file %q", path)
	}
	return &sf, nil
}

func buildHook(s Scenario) (*tapable.Hook, error) {
	var h *tapable.Hook
	switch s.Orchestration {
	case "basic", "":
		h = flavors.BasicHook(nil)
	case "bail":
		h = flavors.BailHook(nil)
	case "waterfall":
		h = flavors.WaterfallHook([]string{"n"})
	case "loop":
		h = flavors.LoopHook(nil)
	case "parallel":
		h = flavors.ParallelHook(nil)
	case "parallel_bail":
		h = flavors.ParallelBailHook(nil)
	default:
		return nil, ex.Newf("unknown orchestration %q", s.Orchestration)
	}

	for i := 0; i < s.Taps; i++ {
		name := fmt.Sprintf("tap-%d", i)
		if s.Orchestration == "waterfall" {
			h.MustTap(name, func(n int) any { return n + 1 })
			continue
		}
		h.MustTap(name, func() any { return nil })
	}
	return h, nil
}

func runScenario(s Scenario) Result {
	h, err := buildHook(s)
	if err != nil {
		return Result{Name: s.Name, Err: err}
	}

	start := time.Now()
	var callErr error
	if s.Orchestration == "waterfall" {
		_, callErr = h.Call(0)
	} else {
		_, callErr = h.Call()
	}
	return Result{Name: s.Name, Duration: time.Since(start), Err: callErr}
}

// runAll runs every scenario concurrently, bounded by limit, with
// golang.org/x/sync/errgroup. This concurrency is tooling around the
// library for the CLI's own benefit; the hook dispatch model itself stays
// single-threaded cooperative (spec.md §5) and nothing inside Scenario's
// own Call is run from more than one goroutine at once.
func runAll(ctx context.Context, scenarios []Scenario, limit int) []Result {
	results := make([]Result, len(scenarios))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			results[i] = runScenario(s)
			return nil
		})
	}
	_ = g.Wait() // runScenario never returns an error to the group; failures live in Result.Err
	return results
}
