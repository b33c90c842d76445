package backdrop

import "reflect"

// Dropper is implemented by payloads that need teardown beyond being
// forgotten, such as closing files or returning buffers.
type Dropper interface {
	Drop()
}

// DropValue runs the teardown of *p, if any, and zeroes it so that
// whatever it referenced becomes unreachable.
//
// A pointer receiver Drop takes precedence over a value receiver one.
// A nil pointer is only zeroed.
func DropValue[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
	} else if d, ok := any(*p).(Dropper); ok && !isNilPointer(d) {
		d.Drop()
	}
	var zero T
	*p = zero
}

// HasDropper reports whether DropValue can run a teardown for T.
func HasDropper[T any]() bool {
	if _, ok := any((*T)(nil)).(Dropper); ok {
		return true
	}
	t := reflect.TypeFor[T]()
	return t.Implements(reflect.TypeFor[Dropper]())
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
