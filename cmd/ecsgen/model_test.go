package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gameSource = `package game

type Pos struct{ X, Y int }

type Tags []string

type Bundle struct {
	Pos  *Pos
	Name *string
	Tags *Tags

	secret int
}

type PlainBundle struct {
	Pos Pos
}

type EmptyBundle struct {
	hidden *Pos
}

type Embedding struct {
	*Pos
}

type Generic[T any] struct {
	Value *T
}

type NotAStruct int
`

func checkSource(t *testing.T, src string) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "game.go", src, 0)
	require.NoError(t, err)

	pkg, err := (&types.Config{}).Check("example.com/game", fset, []*ast.File{file}, nil)
	require.NoError(t, err)
	return pkg
}

func TestBuildModel(t *testing.T) {
	pkg := checkSource(t, gameSource)

	model, err := buildModel(pkg, "Bundle")
	require.NoError(t, err)

	assert.Equal(t, "game", model.Package)
	assert.Equal(t, "Bundle", model.Type)
	assert.Equal(t, "b", model.Receiver)
	assert.Equal(t, ecsImportPath, model.ImportPath)
	assert.Equal(t, []fieldModel{
		{Name: "Pos", Type: "Pos"},
		{Name: "Name", Type: "string"},
		{Name: "Tags", Type: "Tags"},
	}, model.Fields)
}

func TestBuildModelRejectsInvalidBundles(t *testing.T) {
	pkg := checkSource(t, gameSource)

	tests := []struct {
		typeName string
		want     error
	}{
		{"Missing", ErrTypeNotFound},
		{"PlainBundle", ErrNotPointer},
		{"EmptyBundle", ErrNoComponents},
		{"Embedding", ErrEmbeddedField},
		{"Generic", ErrGenericBundle},
		{"NotAStruct", ErrNotStruct},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			_, err := buildModel(pkg, tt.typeName)
			require.Error(t, err)
			assert.True(t, eris.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestReceiverName(t *testing.T) {
	assert.Equal(t, "b", receiverName("Bundle"))
	assert.Equal(t, "p", receiverName("PlayerBundle"))
	assert.Equal(t, "bundle", receiverName("VehicleBundle"))
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "bundle_ecs.go", outputName("Bundle"))
	assert.Equal(t, "player_bundle_ecs.go", outputName("PlayerBundle"))
	assert.Equal(t, "npc_ecs.go", outputName("npc"))
}

func TestRender(t *testing.T) {
	pkg := checkSource(t, gameSource)
	model, err := buildModel(pkg, "Bundle")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), outputName(model.Type))
	src, err := render(model, path)
	require.NoError(t, err)

	assert.Contains(t, string(src), "// Code generated by ecsgen. DO NOT EDIT.")

	file, err := parser.ParseFile(token.NewFileSet(), path, src, 0)
	require.NoError(t, err)
	assert.Equal(t, "game", file.Name.Name)

	var funcs []string
	var hasFields bool
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			funcs = append(funcs, d.Name.Name)
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok && vs.Names[0].Name == "BundleFields" {
					hasFields = true
				}
			}
		}
	}
	assert.Equal(t, []string{"NewBundle", "WithPos", "WithName", "WithTags"}, funcs)
	assert.True(t, hasFields)

	require.Len(t, file.Imports, 1)
	assert.Equal(t, `"`+ecsImportPath+`"`, file.Imports[0].Path.Value)
}
