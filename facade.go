package tapable

// Facade is returned by Hook.WithOptions: a view over the same hook whose
// Tap/TapAsync/TapPromise merge defaults over each caller-supplied option
// object before delegating to the underlying hook's registration. Merges
// are shallow; fields the caller sets win over defaults.
type Facade struct {
	hook     *Hook
	defaults TapOptions
}

// WithOptions returns a Facade merging defaults over every subsequent
// tap's options (spec.md §4.1). withOptions({}).tap(opts,fn) is
// observationally equal to tap(opts,fn).
func (h *Hook) WithOptions(defaults TapOptions) *Facade {
	return &Facade{hook: h, defaults: defaults}
}

func mergeOptions(defaults TapOptions, opts any) (TapOptions, error) {
	o, err := optionsFromAny(opts)
	if err != nil {
		return TapOptions{}, err
	}
	merged := defaults
	if o.Name != "" {
		merged.Name = o.Name
	}
	if o.Before != nil {
		merged.Before = o.Before
	}
	if o.Stage != 0 {
		merged.Stage = o.Stage
	}
	if o.Context {
		merged.Context = o.Context
	}
	if o.Extra != nil {
		merged.Extra = o.Extra
	}
	return merged, nil
}

// Tap merges defaults over opts and registers a synchronous tap.
func (f *Facade) Tap(opts any, fn any) error {
	merged, err := mergeOptions(f.defaults, opts)
	if err != nil {
		return err
	}
	return f.hook.Tap(merged, fn)
}

// TapAsync merges defaults over opts and registers an async tap.
func (f *Facade) TapAsync(opts any, fn any) error {
	merged, err := mergeOptions(f.defaults, opts)
	if err != nil {
		return err
	}
	return f.hook.TapAsync(merged, fn)
}

// TapPromise merges defaults over opts and registers a promise tap.
func (f *Facade) TapPromise(opts any, fn any) error {
	merged, err := mergeOptions(f.defaults, opts)
	if err != nil {
		return err
	}
	return f.hook.TapPromise(merged, fn)
}

// Intercept delegates to the underlying hook.
func (f *Facade) Intercept(i Interceptor) { f.hook.Intercept(i) }

// IsUsed delegates to the underlying hook.
func (f *Facade) IsUsed() bool { return f.hook.IsUsed() }

// WithOptions returns a new Facade merging more defaults over this one's.
func (f *Facade) WithOptions(defaults TapOptions) *Facade {
	merged, _ := mergeOptions(f.defaults, defaults)
	return &Facade{hook: f.hook, defaults: merged}
}
