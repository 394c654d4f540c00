package internal

import "reflect"

// Callable reports whether v can be invoked. Typed nil functions are not
// callable.
func Callable(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// ArrayLike reports whether v is indexable with a length.
func ArrayLike(v any) bool {
	if v == nil {
		return false
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}

	return false
}

// Receivable reports whether v is a channel that can be received from.
func Receivable(v any) bool {
	if v == nil {
		return false
	}

	t := reflect.TypeOf(v)
	return t.Kind() == reflect.Chan && t.ChanDir() != reflect.SendDir
}
