package ecs

import (
	"reflect"
	"sync"
)

// FieldInfo describes one component field of a bundle type.
type FieldInfo struct {
	Name  string
	Type  reflect.Type // component type, i.e. the pointer's element type
	Index int
}

type reflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func newReflectionCache() *reflectionCache {
	return &reflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

func (rc *reflectionCache) getFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Type.Kind() != reflect.Ptr {
				continue
			}

			fields = append(fields, FieldInfo{
				Name:  field.Name,
				Type:  field.Type.Elem(),
				Index: i,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = newReflectionCache()

// BundleFields lists the exported pointer fields of bundle type C, in declaration order.
// Non-pointer and unexported fields are not components and are skipped.
func BundleFields[C any]() []FieldInfo {
	return globalReflectionCache.getFields(reflect.TypeFor[C]())
}

// PresentFields returns the names of the component fields set in bundle.
func PresentFields[C any](bundle *C) []string {
	fields := BundleFields[C]()
	value := reflect.ValueOf(bundle).Elem()

	present := make([]string, 0, len(fields))
	for _, field := range fields {
		if !value.Field(field.Index).IsNil() {
			present = append(present, field.Name)
		}
	}
	return present
}

// cloneBundle returns a copy of bundle whose component pointers refer to fresh
// copies of the pointees. Unexported and non-pointer fields are copied as is.
func cloneBundle[C any](bundle C) C {
	fields := BundleFields[C]()
	if len(fields) == 0 {
		return bundle
	}

	out := bundle
	value := reflect.ValueOf(&out).Elem()
	for _, field := range fields {
		ptr := value.Field(field.Index)
		if ptr.IsNil() {
			continue
		}
		ptr.Set(copyPointer(ptr))
	}
	return out
}

// copyPointer returns a pointer to a copy of *ptr. When the component type has
// a Clone method returning its own type, with a value or pointer receiver, the
// clone is used instead of a plain copy.
func copyPointer(ptr reflect.Value) reflect.Value {
	elem := ptr.Elem()
	cp := reflect.New(elem.Type())

	if m := ptr.MethodByName("Clone"); m.IsValid() {
		mt := m.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0) == elem.Type() {
			cp.Elem().Set(m.Call(nil)[0])
			return cp
		}
	}

	cp.Elem().Set(elem)
	return cp
}
