// Package explain renders a compiled dispatcher's call plan as gofmt-able
// Go source, for debugging and introspection. It adapts the
// placeholder-substitution technique from this pack's AST-templating
// library almost directly: build small dst expression templates with a
// `{{ . }}` hole, parse them with go/parser, decorate them into dst with
// dst/decorator, and splice the resulting expressions together instead of
// hand-rolling string concatenation for something that is, after all, Go
// source.
package explain

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"strings"
	"text/template"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	"github.com/WB9292/tapable/internal/dispatch"
)

var wrapper = template.Must(template.New("wrapper").Parse(
	`package plan
func Dispatch() {
	{{ . }}
}
`))

// exprTemplate compiles text (containing zero or more "%s" call-site holes
// already substituted by the caller) into a dst.Expr by round-tripping it
// through go/parser and dst/decorator, the same two-step the teacher's
// template package uses to turn arbitrary snippets into AST nodes it can
// compose.
func exprTemplate(text string) (dst.Expr, error) {
	var buf bytes.Buffer
	if err := wrapper.Execute(&buf, text); err != nil {
		return nil, fmt.Errorf("explain: wrap template: %w", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", buf.Bytes(), parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("explain: parse generated plan: %w", err)
	}

	dec := decorator.NewDecorator(fset)
	dstFile, err := dec.DecorateFile(file)
	if err != nil {
		return nil, fmt.Errorf("explain: decorate plan AST: %w", err)
	}

	funcDecl, ok := dstFile.Decls[0].(*dst.FuncDecl)
	if !ok || funcDecl.Body == nil || len(funcDecl.Body.List) != 1 {
		return nil, fmt.Errorf("explain: unexpected plan shape")
	}
	exprStmt, ok := funcDecl.Body.List[0].(*dst.ExprStmt)
	if !ok {
		return nil, fmt.Errorf("explain: expected a single expression statement")
	}
	return exprStmt.X, nil
}

func orchestrationName(o dispatch.Orchestration) string {
	switch o {
	case dispatch.Series:
		return "series"
	case dispatch.Looping:
		return "looping"
	case dispatch.Parallel:
		return "parallel"
	default:
		return "abstract"
	}
}

func tapCallExpr(t dispatch.Tap) string {
	kind := "sync"
	switch t.Type {
	case dispatch.Async:
		kind = "async"
	case dispatch.Promise:
		kind = "promise"
	}
	ctx := ""
	if t.Context {
		ctx = ", context"
	}
	return fmt.Sprintf("tap(%q, %s%s)", t.Name, kind, ctx)
}

// Plan renders snap as a single Go call expression describing its
// orchestration and ordered taps, e.g.:
//
//	series(tap("A", sync), tap("B", async))
func Plan(snap dispatch.Snapshot) (string, error) {
	calls := make([]string, len(snap.Taps))
	for i, t := range snap.Taps {
		calls[i] = tapCallExpr(t)
	}

	modifiers := []string{}
	if snap.Bail {
		modifiers = append(modifiers, "bail")
	}
	if snap.Waterfall {
		modifiers = append(modifiers, "waterfall")
	}
	name := orchestrationName(snap.Orchestration)
	if len(modifiers) > 0 {
		name = name + "_" + strings.Join(modifiers, "_")
	}

	text := fmt.Sprintf("%s(%s)", name, strings.Join(calls, ", "))
	expr, err := exprTemplate(text)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := decorator.Fprint(&out, &dst.File{
		Name: &dst.Ident{Name: "plan"},
		Decls: []dst.Decl{
			&dst.FuncDecl{
				Name: &dst.Ident{Name: "Dispatch"},
				Type: &dst.FuncType{Params: &dst.FieldList{}},
				Body: &dst.BlockStmt{List: []dst.Stmt{&dst.ExprStmt{X: expr}}},
			},
		},
	}); err != nil {
		return "", fmt.Errorf("explain: print plan: %w", err)
	}

	return out.String(), nil
}
