package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - name: basic-ten
    orchestration: basic
    taps: 10
  - name: waterfall-three
    orchestration: waterfall
    taps: 3
`), 0o644))

	sf, err := loadScenarios(path)
	require.NoError(t, err)
	require.Len(t, sf.Scenarios, 2)
	assert.Equal(t, "basic-ten", sf.Scenarios[0].Name)
	assert.Equal(t, 10, sf.Scenarios[0].Taps)
}

func TestBuildHook_UnknownOrchestration(t *testing.T) {
	_, err := buildHook(Scenario{Name: "x", Orchestration: "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown orchestration")
}

func TestRunScenario_Basic(t *testing.T) {
	r := runScenario(Scenario{Name: "basic", Orchestration: "basic", Taps: 5})
	require.NoError(t, r.Err)
	assert.Equal(t, "basic", r.Name)
}

func TestRunAll_BoundedConcurrency(t *testing.T) {
	scenarios := []Scenario{
		{Name: "a", Orchestration: "basic", Taps: 2},
		{Name: "b", Orchestration: "parallel", Taps: 3},
		{Name: "c", Orchestration: "bogus"},
	}
	results := runAll(context.Background(), scenarios, 2)
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Error(t, results[2].Err)
}
