// Package nostdout определяет анализатор, запрещающий прямой вывод в stdout.
//
// stdout плагина - канал протокола Munin: любая посторонняя строка ломает
// разбор значения. Поэтому писать в stdout можно только в package main и в
// пакете plugin, которые получают io.Writer явно. Остальным пакетам
// запрещены fmt.Print, fmt.Printf, fmt.Println и обращения к os.Stdout.
// Тестовые файлы не проверяются: примеры пишут в stdout по определению.
package nostdout

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "nostdout",
	Doc:      "проверка прямого вывода в stdout вне package main и пакета plugin",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// allowedPackages - пакеты, которым разрешено писать в stdout.
var allowedPackages = []string{"main", "plugin"}

var forbiddenFmt = map[string]bool{
	"Print":   true,
	"Printf":  true,
	"Println": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, name := range allowedPackages {
		if pass.Pkg.Name() == name {
			return nil, nil
		}
	}

	inspector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.SelectorExpr)(nil),
	}

	inspector.Preorder(nodeFilter, func(node ast.Node) {
		sel := node.(*ast.SelectorExpr)

		if strings.HasSuffix(pass.Fset.Position(sel.Pos()).Filename, "_test.go") {
			return
		}

		ident, ok := sel.X.(*ast.Ident)
		if !ok {
			return
		}

		obj, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
		if !ok {
			return
		}

		switch obj.Imported().Path() {
		case "fmt":
			if forbiddenFmt[sel.Sel.Name] {
				pass.Reportf(sel.Pos(), "прямой вывод в stdout через fmt.%s запрещен", sel.Sel.Name)
			}
		case "os":
			if sel.Sel.Name == "Stdout" {
				pass.Reportf(sel.Pos(), "обращение к os.Stdout запрещено")
			}
		}
	})

	return nil, nil
}
