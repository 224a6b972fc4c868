package ecs

// Cloner is implemented by component types whose values hold references
// (slices, maps, pointers) that a plain copy would share with the world.
// Clone may have a value or a pointer receiver.
type Cloner[T any] interface {
	Clone() T
}

// Field is a named, typed accessor for one optional component field of bundle C.
// A nil pointer means the entity does not have the component.
//
// Fields are declared once per bundle type, usually by cmd/ecsgen, and passed to
// queries. Because a Field is an ordinary typed value, asking for a field the
// bundle does not have fails to compile.
type Field[C, T any] struct {
	name string
	get  func(*C) *T
}

// NewField declares a field accessor. get must not allocate or mutate the bundle.
func NewField[C, T any](name string, get func(*C) *T) Field[C, T] {
	if get == nil {
		panic("ecs: field accessor for " + name + " is nil")
	}
	return Field[C, T]{name: name, get: get}
}

// Name returns the declared field name.
func (f Field[C, T]) Name() string {
	return f.name
}

// Has reports whether the field is present in bundle.
func (f Field[C, T]) Has(bundle *C) bool {
	return f.get(bundle) != nil
}

// Value returns a copy of the field value and whether it is present.
func (f Field[C, T]) Value(bundle *C) (T, bool) {
	ptr := f.get(bundle)
	if ptr == nil {
		var zero T
		return zero, false
	}
	return cloneValue(*ptr), true
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
