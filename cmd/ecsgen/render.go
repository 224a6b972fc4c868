package main

import (
	"bytes"
	"text/template"

	"github.com/rotisserie/eris"
	"golang.org/x/tools/imports"
)

const ecsImportPath = "github.com/plus3/bundlecs/ecs"

const bundleTemplate = `// Code generated by ecsgen. DO NOT EDIT.

package {{.Package}}

import (
	"{{.ImportPath}}"
)

// New{{.Type}} returns a {{.Type}} with no components present.
func New{{.Type}}() {{.Type}} {
	return {{.Type}}{}
}
{{range .Fields}}
// With{{.Name}} returns a copy of {{$.Receiver}} with the {{.Name}} component set to v.
func ({{$.Receiver}} {{$.Type}}) With{{.Name}}(v {{.Type}}) {{$.Type}} {
	{{$.Receiver}}.{{.Name}} = &v
	return {{$.Receiver}}
}
{{end}}
// {{.Type}}Fields holds the typed field accessors used to query {{.Type}} worlds.
var {{.Type}}Fields = struct {
{{- range .Fields}}
	{{.Name}} ecs.Field[{{$.Type}}, {{.Type}}]
{{- end}}
}{
{{- range .Fields}}
	{{.Name}}: ecs.NewField("{{.Name}}", func({{$.Receiver}} *{{$.Type}}) *{{.Type}} { return {{$.Receiver}}.{{.Name}} }),
{{- end}}
}
`

var tmpl = template.Must(template.New("bundle").Parse(bundleTemplate))

// render produces the formatted Go source for model. filename is only used by
// the import fixer to resolve the package directory.
func render(model *bundleModel, filename string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, model); err != nil {
		return nil, eris.Wrap(err, "execute template")
	}

	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "format generated code for %s", model.Type)
	}
	return src, nil
}
