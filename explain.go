package tapable

import "github.com/WB9292/tapable/internal/explain"

// Explain renders the hook's current taps and orchestration as a small Go
// source snippet describing the call plan a dispatcher would compile for
// it, for debugging and introspection (§3 DOMAIN STACK's home for
// dave/dst). It reflects the registry as it stands now, not any
// previously compiled dispatcher — registrations made after the last call
// are included.
func (h *Hook) Explain() (string, error) {
	return explain.Plan(h.snapshot())
}
