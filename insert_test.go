package tapable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(taps []Tap) []string {
	out := make([]string, len(taps))
	for i, t := range taps {
		out[i] = t.Name
	}
	return out
}

// Scenario 1: before ordering.
func TestInsertTap_BeforeOrdering(t *testing.T) {
	var taps []Tap
	taps = insertTap(taps, Tap{Name: "A"})
	taps = insertTap(taps, Tap{Name: "B"})
	taps = insertTap(taps, Tap{Name: "C", Before: []string{"B"}})
	taps = insertTap(taps, Tap{Name: "D", Before: []string{"A", "C"}})

	assert.Equal(t, []string{"D", "A", "C", "B"}, names(taps))
}

// Scenario 2: stage ordering.
func TestInsertTap_StageOrdering(t *testing.T) {
	var taps []Tap
	taps = insertTap(taps, Tap{Name: "a", Stage: 10})
	taps = insertTap(taps, Tap{Name: "b", Stage: -5})
	taps = insertTap(taps, Tap{Name: "c", Stage: 0})
	taps = insertTap(taps, Tap{Name: "d", Stage: 0})

	assert.Equal(t, []string{"b", "c", "d", "a"}, names(taps))
}

func TestInsertTap_BeforeMissingNameGoesFirst(t *testing.T) {
	var taps []Tap
	taps = insertTap(taps, Tap{Name: "A"})
	taps = insertTap(taps, Tap{Name: "B", Before: []string{"NoSuchTap"}})

	assert.Equal(t, []string{"B", "A"}, names(taps))
}

func TestInsertTap_DuplicateBeforeNamesFolded(t *testing.T) {
	var taps []Tap
	taps = insertTap(taps, Tap{Name: "A"})
	taps = insertTap(taps, Tap{Name: "B", Before: []string{"A", "A"}})

	assert.Equal(t, []string{"B", "A"}, names(taps))
}

func TestRunRegisterInterceptors_FoldsInOrder(t *testing.T) {
	interceptors := []Interceptor{
		{Register: func(t Tap) *Tap { t.Stage = 1; return &t }},
		{Register: func(t Tap) *Tap { return nil }}, // undefined: leaves descriptor unchanged
		{Register: func(t Tap) *Tap { t.Extra = map[string]any{"seen": true}; return &t }},
	}

	out := runRegisterInterceptors(interceptors, Tap{Name: "T"})

	assert.Equal(t, 1, out.Stage)
	assert.Equal(t, map[string]any{"seen": true}, out.Extra)
}
