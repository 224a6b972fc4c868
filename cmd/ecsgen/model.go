package main

import (
	"go/types"
	"strings"
	"unicode"

	"github.com/rotisserie/eris"
)

var (
	ErrTypeNotFound  = eris.New("type not found")
	ErrNotStruct     = eris.New("bundle type must be a struct")
	ErrNoComponents  = eris.New("bundle type has no component fields")
	ErrNotPointer    = eris.New("bundle component fields must be pointers")
	ErrGenericBundle = eris.New("generic bundle types are not supported")
	ErrEmbeddedField = eris.New("embedded fields are not supported in bundles")
)

type bundleModel struct {
	Package    string
	ImportPath string
	Type       string
	Receiver   string
	Fields     []fieldModel
}

type fieldModel struct {
	Name string
	// Type is the component type as written inside the bundle's package.
	Type string
}

// buildModel inspects the named struct in pkg. Exported pointer fields become
// components; unexported fields are ignored. Anything else is rejected, so a
// malformed bundle fails at generation time rather than at run time.
func buildModel(pkg *types.Package, typeName string) (*bundleModel, error) {
	obj := pkg.Scope().Lookup(typeName)
	if obj == nil {
		return nil, eris.Wrapf(ErrTypeNotFound, "%s in package %s", typeName, pkg.Path())
	}

	named, ok := obj.Type().(*types.Named)
	if !ok {
		return nil, eris.Wrapf(ErrNotStruct, "%s", typeName)
	}
	if named.TypeParams().Len() > 0 {
		return nil, eris.Wrapf(ErrGenericBundle, "%s", typeName)
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, eris.Wrapf(ErrNotStruct, "%s is %s", typeName, named.Underlying().String())
	}

	qualifier := types.RelativeTo(pkg)
	model := &bundleModel{
		Package:    pkg.Name(),
		ImportPath: ecsImportPath,
		Type:       typeName,
		Receiver:   receiverName(typeName),
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if field.Embedded() {
			return nil, eris.Wrapf(ErrEmbeddedField, "%s.%s", typeName, field.Name())
		}
		if !field.Exported() {
			continue
		}

		ptr, ok := field.Type().(*types.Pointer)
		if !ok {
			return nil, eris.Wrapf(ErrNotPointer, "%s.%s has type %s", typeName, field.Name(),
				types.TypeString(field.Type(), qualifier))
		}

		model.Fields = append(model.Fields, fieldModel{
			Name: field.Name(),
			Type: types.TypeString(ptr.Elem(), qualifier),
		})
	}

	if len(model.Fields) == 0 {
		return nil, eris.Wrapf(ErrNoComponents, "%s", typeName)
	}

	return model, nil
}

// receiverName picks a short receiver; "v" is reserved for the builder argument.
func receiverName(typeName string) string {
	for _, r := range typeName {
		if name := string(unicode.ToLower(r)); name != "v" {
			return name
		}
		break
	}
	return "bundle"
}

// outputName returns the default file name for typeName: Bundle -> bundle_ecs.go,
// PlayerBundle -> player_bundle_ecs.go.
func outputName(typeName string) string {
	var b strings.Builder
	for i, r := range typeName {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	b.WriteString("_ecs.go")
	return b.String()
}
