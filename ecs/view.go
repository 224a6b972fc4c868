package ecs

import (
	"iter"
	"reflect"
	"strings"
)

// View projects bundles of type C onto a caller-defined struct V by field name.
// It is the reflection-based alternative to Field queries, for call sites that
// want many fields at once without spelling out a Row type.
//
// Each field of V must be a pointer to the type of the bundle field with the
// same name. The `ecs` struct tag adjusts the mapping:
//
//	`ecs:"name=Position"`    reads bundle field Position
//	`ecs:"optional"`         the entity matches even if the field is absent (nil)
//
// Tag options combine with a comma. Mapping errors panic in NewView, before any
// entity is visited.
type View[C, V any] struct {
	world       *World[C]
	bundleIndex [][]int
	viewIndex   []int
	optional    []bool
}

// NewView creates a view for the struct type V over world.
func NewView[C, V any](world *World[C]) *View[C, V] {
	bundleType := reflect.TypeFor[C]()
	viewType := reflect.TypeFor[V]()

	if bundleType.Kind() != reflect.Struct {
		panic("View bundle type must be a struct")
	}
	if viewType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}
	if viewType.NumField() == 0 {
		panic("View struct must declare at least one field")
	}

	v := &View[C, V]{
		world:       world,
		bundleIndex: make([][]int, 0, viewType.NumField()),
		viewIndex:   make([]int, 0, viewType.NumField()),
		optional:    make([]bool, 0, viewType.NumField()),
	}

	for i := 0; i < viewType.NumField(); i++ {
		field := viewType.Field(i)
		if !field.IsExported() {
			panic("View struct field " + field.Name + " must be exported")
		}
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		name, isOptional := parseViewTag(field)

		bundleField, ok := bundleType.FieldByName(name)
		if !ok {
			panic("bundle " + bundleType.String() + " has no field " + name)
		}
		if !bundleField.IsExported() {
			panic("bundle field " + name + " must be exported")
		}
		if bundleField.Type != field.Type {
			panic("View field " + field.Name + " has type " + field.Type.String() +
				", bundle field " + name + " has type " + bundleField.Type.String())
		}

		v.bundleIndex = append(v.bundleIndex, bundleField.Index)
		v.viewIndex = append(v.viewIndex, i)
		v.optional = append(v.optional, isOptional)
	}

	return v
}

func parseViewTag(field reflect.StructField) (name string, optional bool) {
	name = field.Name
	tag := field.Tag.Get("ecs")
	if tag == "" {
		return name, false
	}

	for _, opt := range strings.Split(tag, ",") {
		switch {
		case opt == "optional":
			optional = true
		case strings.HasPrefix(opt, "name="):
			name = strings.TrimPrefix(opt, "name=")
		default:
			panic("invalid ecs tag value: \"" + opt + "\" (only \"optional\" and \"name=\" are supported)")
		}
	}
	return name, optional
}

// Fill populates out from bundle. It returns false if a required field is absent.
// Every non-nil pointer written to out refers to a fresh copy.
func (v *View[C, V]) Fill(bundle *C, out *V) bool {
	src := reflect.ValueOf(bundle).Elem()
	dst := reflect.ValueOf(out).Elem()

	for i, idx := range v.bundleIndex {
		if src.FieldByIndex(idx).IsNil() && !v.optional[i] {
			return false
		}
	}

	for i, idx := range v.bundleIndex {
		field := src.FieldByIndex(idx)
		target := dst.Field(v.viewIndex[i])
		if field.IsNil() {
			target.SetZero()
			continue
		}
		target.Set(copyPointer(field))
	}
	return true
}

// Get returns the populated view for id, or nil if the entity does not exist
// or lacks a required field.
func (v *View[C, V]) Get(id EntityId) *V {
	bundle, ok := v.world.bundle(id)
	if !ok {
		return nil
	}

	var result V
	if !v.Fill(bundle, &result) {
		return nil
	}
	return &result
}

// Iter returns an iterator over all entities that match the view, in spawn order.
// Like Select, the id sequence is captured when Iter is called.
func (v *View[C, V]) Iter() iter.Seq2[EntityId, V] {
	return Select(v.world, func(bundle *C) (V, bool) {
		var result V
		ok := v.Fill(bundle, &result)
		return result, ok
	})
}

// Values returns an iterator over just the view structs.
func (v *View[C, V]) Values() iter.Seq[V] {
	seq := v.Iter()
	return func(yield func(V) bool) {
		for _, value := range seq {
			if !yield(value) {
				return
			}
		}
	}
}
