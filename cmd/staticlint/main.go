// Package main предоставляет инструмент статического анализа кода плагина.
//
// # Использование
//
//	go run ./cmd/staticlint ./...
//
// # Включенные анализаторы
//
// Стандартные анализаторы Go из golang.org/x/tools/go/analysis/passes:
// assign, atomic, bools, buildtag, composite, copylock, errorsas,
// httpresponse, loopclosure, lostcancel, nilfunc, printf, shift,
// stdmethods, structtag, tests, unmarshal, unreachable, unusedresult.
//
// Дополнительные публичные анализаторы:
//   - bodyclose: проверяет, правильно ли закрыты тела HTTP-ответов
//   - errcheck: обеспечивает проверку ошибок
//
// Пользовательские анализаторы:
//   - nostdout: запрещает прямой вывод в stdout вне package main и пакета plugin
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"

	"github.com/kisielk/errcheck/errcheck"
	"github.com/timakin/bodyclose/passes/bodyclose"

	"github.com/25x8/munin-solr/cmd/staticlint/nostdout"
)

func main() {
	analyzers := []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		composite.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shift.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,

		bodyclose.Analyzer,
		errcheck.Analyzer,

		nostdout.Analyzer,
	}

	multichecker.Main(analyzers...)
}
