// Package flatten normalizes heterogeneous argument lists into one flat,
// ordered sequence.
//
// Element constructors and CSS bundles accept arbitrarily nested input:
//
//	flatten.Flatten("a", []any{"b", []string{"c", "d"}}, func() any { return "e" })
//	// → ["a" "b" "c" "d" "e"]
//
// Nested sequences expand in place. Thunks are invoked and their results are
// flattened when they are sequences. Nil entries are dropped. Nothing else
// is interpreted: maps, structs and pointers pass through untouched.
package flatten

import "reflect"

// Thunk is a late-bound value. It is invoked during flattening.
type Thunk func() any

// Flatten returns args with every nested sequence expanded in place and
// every thunk resolved and every nil entry dropped. A nil or empty input
// yields an empty, non-nil slice.
func Flatten(args ...any) []any {
	out := make([]any, 0, len(args))
	return appendFlat(out, args)
}

func appendFlat(out []any, args []any) []any {
	for _, arg := range args {
		out = appendValue(out, arg)
	}
	return out
}

func appendValue(out []any, arg any) []any {
	switch v := arg.(type) {
	case nil:
		return out
	case []any:
		return appendFlat(out, v)
	case Thunk:
		return appendResolved(out, v())
	case func() any:
		return appendResolved(out, v())
	case string, []byte:
		return append(out, v)
	}

	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			out = appendValue(out, rv.Index(i).Interface())
		}
		return out
	}
	return append(out, arg)
}

// appendResolved inserts a thunk result. Sequences are flattened; anything
// else, including another thunk, is inserted as is.
func appendResolved(out []any, result any) []any {
	if result == nil {
		return out
	}
	if IsSequence(result) {
		return appendValue(out, result)
	}
	return append(out, result)
}

// IsSequence reports whether v would be expanded by Flatten.
func IsSequence(v any) bool {
	switch v.(type) {
	case nil, string, []byte:
		return false
	case []any:
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}
