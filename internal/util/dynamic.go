package util

import "reflect"

// CallDynamic invokes fn, a function value of unknown-but-compatible shape,
// with args, converting nil entries to the zero value of the corresponding
// parameter's type so callers don't need to special-case nil interface
// values. It is the reflect-based dynamic dispatch this module uses for
// interceptor callbacks: the shape of fn
// (how many leading arguments it takes, e.g. a context record or not) is
// only known at registration time, not at compile time.
func CallDynamic(fn any, args ...any) []any {
	if fn == nil {
		return nil
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil && i < t.NumIn() {
			in[i] = reflect.Zero(t.In(i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	out := v.Call(in)
	result := make([]any, len(out))
	for i, o := range out {
		result[i] = o.Interface()
	}
	return result
}

// Arity returns the number of input parameters fn declares.
func Arity(fn any) int {
	if fn == nil {
		return 0
	}
	return reflect.TypeOf(fn).NumIn()
}
