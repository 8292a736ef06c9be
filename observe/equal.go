package observe

import "reflect"

// same reports whether a and b are strictly equal: == for comparable values,
// identity for maps and slices. Funcs never compare equal. same never panics.
func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	switch ta.Kind() {
	case reflect.Map:
		return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	case reflect.Func:
		return false
	}

	if !ta.Comparable() {
		return false
	}
	return comparableEqual(a, b)
}

// comparableEqual guards against structs and arrays whose interface fields
// hold uncomparable values, which make == panic at runtime.
func comparableEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
