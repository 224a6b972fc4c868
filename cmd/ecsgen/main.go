// Command ecsgen generates builder methods and typed query fields for bundle
// structs. Typical use, next to the bundle declaration:
//
//	//go:generate go run github.com/plus3/bundlecs/cmd/ecsgen -type Bundle
//
// For each type it writes <type>_ecs.go containing New<Type>, one With<Field>
// method per component field and a <Type>Fields variable of ecs.Field values.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"golang.org/x/tools/go/packages"
)

func main() {
	typeNames := flag.String("type", "", "comma-separated list of bundle type names (required)")
	dir := flag.String("dir", ".", "directory of the package declaring the bundles")
	output := flag.String("output", "", "output file name (default <type>_ecs.go; only valid with a single type)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().
		Str("tool", "ecsgen").Logger()

	if *typeNames == "" {
		flag.Usage()
		os.Exit(2)
	}
	types := strings.Split(*typeNames, ",")
	if *output != "" && len(types) > 1 {
		logger.Fatal().Msg("-output cannot be used with more than one type")
	}

	if err := generate(&logger, *dir, types, *output); err != nil {
		logger.Fatal().Err(err).Msg("generation failed")
	}
}

func generate(logger *zerolog.Logger, dir string, typeNames []string, output string) error {
	pkg, err := loadPackage(logger, dir)
	if err != nil {
		return err
	}

	for _, typeName := range typeNames {
		typeName = strings.TrimSpace(typeName)
		model, err := buildModel(pkg.Types, typeName)
		if err != nil {
			return err
		}

		name := output
		if name == "" {
			name = outputName(typeName)
		}
		path := filepath.Join(dir, name)

		src, err := render(model, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return eris.Wrapf(err, "write %s", path)
		}

		logger.Info().
			Str("type", typeName).
			Int("fields", len(model.Fields)).
			Str("file", path).
			Msg("generated bundle helpers")
	}
	return nil
}

// loadPackage type-checks the package in dir. Type errors are logged but not
// fatal: a stale generated file commonly breaks the package until it is
// regenerated, and the bundle declaration itself is still usable.
func loadPackage(logger *zerolog.Logger, dir string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode:  packages.NeedName | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedSyntax,
		Dir:   dir,
		Tests: false,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, eris.Wrapf(err, "load package in %s", dir)
	}
	if len(pkgs) != 1 {
		return nil, eris.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}

	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		logger.Warn().Str("package", pkg.PkgPath).Msg(e.Error())
	}
	if pkg.Types == nil {
		return nil, eris.Errorf("no type information for package in %s", dir)
	}
	return pkg, nil
}
