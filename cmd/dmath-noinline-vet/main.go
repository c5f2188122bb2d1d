// Command dmath-noinline-vet is a go vet-style analyzer asserting that
// every function in dscalar/tu_isolated_ops.go carries a //go:noinline
// directive — the property that realization depends on to approximate a
// separate translation unit with inlining/LTO disabled across its
// operator boundary. Built on golang.org/x/tools/go/analysis the way
// cmd/hwygen generated code for hwy's SIMD dispatch; here the tool
// checks a contract instead of generating code.
package main

import (
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/singlechecker"
)

var Analyzer = &analysis.Analyzer{
	Name: "noinlinevet",
	Doc:  "reports functions in tu_isolated_ops.go that implement a TU-isolated scalar operator without a //go:noinline directive",
	Run:  run,
}

func main() {
	singlechecker.Main(Analyzer)
}

func run(pass *analysis.Pass) (any, error) {
	for _, file := range pass.Files {
		name := pass.Fset.File(file.Pos()).Name()
		if !strings.HasSuffix(name, "tu_isolated_ops.go") {
			continue
		}
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			if !hasNoinline(fn) {
				pass.Reportf(fn.Pos(), "%s must carry a //go:noinline directive to approximate translation-unit isolation", fn.Name.Name)
			}
		}
	}
	return nil, nil
}

func hasNoinline(fn *ast.FuncDecl) bool {
	if fn.Doc == nil {
		return false
	}
	for _, c := range fn.Doc.List {
		if strings.Contains(c.Text, "go:noinline") {
			return true
		}
	}
	return false
}
