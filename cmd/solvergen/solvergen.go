// Command solvergen writes the solver table of the solutions package. It
// scans internal/ for yearYYYY/dayD packages declaring a Solve function.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/go-ricrob/aoc/internal/solver"
	"golang.org/x/exp/slices"
	"golang.org/x/mod/modfile"
)

const solveFunc = "Solve"

var (
	yearRx = regexp.MustCompile(`^year\d+$`)
	dayRx  = regexp.MustCompile(`^day\d+$`)
)

var errDuplicateKey = errors.New("duplicate solver key")

type solverPkg struct {
	Key       solver.Key
	Year, Day string // directory names
}

func (p solverPkg) Alias() string { return p.Year + p.Day }

var fileTmpl = template.Must(template.New("solutions").Parse(`// Code generated by solvergen. DO NOT EDIT.

package solutions

import (
	"{{.Module}}/internal/solver"
{{- range .Solvers}}
	{{.Alias}} "{{$.Module}}/internal/{{.Year}}/{{.Day}}"
{{- end}}
)

func register(r *solver.Registry) {
{{- range .Solvers}}
	r.Register(solver.Key{Year: {{.Key.Year}}, Day: {{.Key.Day}}}, {{.Alias}}.Solve)
{{- end}}
}
`))

func main() {
	var rootFlag, outPath, module string
	flag.StringVar(&rootFlag, "root", "", "repo root (defaults to locating go.mod)")
	flag.StringVar(&outPath, "out", "internal/solutions/solutions_gen.go", "output path, relative to the repo root unless -root is set")
	flag.StringVar(&module, "module", "", "module path (defaults to the module of go.mod in root)")
	flag.Parse()

	root, err := resolveRoot(rootFlag)
	if err != nil {
		fatal(err)
	}
	if module == "" {
		if module, err = modulePath(root); err != nil {
			fatal(err)
		}
	}
	output := outPath
	if rootFlag == "" && !filepath.IsAbs(output) {
		output = filepath.Join(root, outPath)
	}

	src, err := generate(root, module)
	if err != nil {
		fatal(err)
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		fatal(fmt.Errorf("write solver table: %w", err))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "solvergen:", err)
	os.Exit(1)
}

func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	return findModuleRoot(wd)
}

func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("go.mod not found above %s", start)
}

func modulePath(root string) (string, error) {
	b, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("read go.mod: %w", err)
	}
	module := modfile.ModulePath(b)
	if module == "" {
		return "", fmt.Errorf("no module path in %s", filepath.Join(root, "go.mod"))
	}
	return module, nil
}

// declaresSolve reports whether a non-test file of dir declares a top-level
// Solve function.
func declaresSolve(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", dir, err)
	}
	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return false, fmt.Errorf("parse %s: %w", filepath.Join(dir, name), err)
		}
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if ok && fd.Recv == nil && fd.Name.Name == solveFunc {
				return true, nil
			}
		}
	}
	return false, nil
}

func subdirs(dir string, rx *regexp.Regexp) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() && rx.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// scan returns the solver packages below root/internal ordered by key.
func scan(root string) ([]solverPkg, error) {
	internal := filepath.Join(root, "internal")
	years, err := subdirs(internal, yearRx)
	if err != nil {
		return nil, err
	}
	var pkgs []solverPkg
	seen := map[solver.Key]string{}
	for _, year := range years {
		days, err := subdirs(filepath.Join(internal, year), dayRx)
		if err != nil {
			return nil, err
		}
		for _, day := range days {
			dir := filepath.Join(internal, year, day)
			ok, err := declaresSolve(dir)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			key, err := solver.ParseKey(year, day)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", dir, err)
			}
			if other, ok := seen[key]; ok {
				return nil, fmt.Errorf("%w %s: %s and %s", errDuplicateKey, key, other, year+"/"+day)
			}
			seen[key] = year + "/" + day
			pkgs = append(pkgs, solverPkg{Key: key, Year: year, Day: day})
		}
	}
	slices.SortFunc(pkgs, func(a, b solverPkg) int { return a.Key.Compare(b.Key) })
	return pkgs, nil
}

// generate returns the gofmt'ed solver table source.
func generate(root, module string) ([]byte, error) {
	pkgs, err := scan(root)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, struct {
		Module  string
		Solvers []solverPkg
	}{module, pkgs}); err != nil {
		return nil, fmt.Errorf("render solver table: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format solver table: %w", err)
	}
	return src, nil
}
