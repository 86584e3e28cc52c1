package tapable

// insertTap inserts t into the ordered taps slice per spec.md §4.1's
// backward-scan algorithm: `before` names must end up at a strictly
// greater index than t, and among taps unconstrained by `before`, order is
// by ascending stage with ties broken by insertion order (stable).
func insertTap(taps []Tap, t Tap) []Tap {
	before := map[string]struct{}{}
	for _, n := range t.Before {
		before[n] = struct{}{}
	}

	out := append(taps, Tap{}) // grow by one; final slot filled below
	i := len(taps)

	for i > 0 {
		neighbor := out[i-1]
		out[i] = neighbor // shift neighbor forward; i-1 and i transiently equal

		if len(before) > 0 {
			if _, ok := before[neighbor.Name]; ok {
				delete(before, neighbor.Name)
				i--
				continue
			}
			i--
			continue
		}

		if neighbor.Stage > t.Stage {
			i--
			continue
		}

		break
	}

	out[i] = t
	return out
}

// runRegisterInterceptors folds the interceptor list in registration order
// over t: each interceptor with a Register callback may replace the
// running descriptor; a nil return leaves it unchanged (spec.md §4.1
// "Interceptor registration fold").
func runRegisterInterceptors(interceptors []Interceptor, t Tap) Tap {
	for _, ic := range interceptors {
		if ic.Register == nil {
			continue
		}
		if replaced := callRegister(ic.Register, t); replaced != nil {
			t = *replaced
		}
	}
	return t
}
