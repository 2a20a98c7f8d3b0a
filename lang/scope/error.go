package scope

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/mna/oberesolve/lang/ast"
	"golang.org/x/exp/slices"
)

// ErrorKind is the exhaustive, stable set of error tags a caller can switch
// on (spec §7). Redeclared is an addition this module needed to make: spec
// §4.2 mandates detecting a name redefined within one scope, but spec §7's
// table does not assign it a tag; see DESIGN.md.
type ErrorKind uint8

const (
	UnknownModule ErrorKind = iota
	UnknownLocal
	UnknownImport
	AmbiguousParses
	AmbiguousDeclaration
	AmbiguousDesignator
	AmbiguousExpression
	AmbiguousRecord
	AmbiguousStatement
	InvalidExpression
	InvalidFunctionParameters
	InvalidRecord
	InvalidStatement
	InvalidDeclaration
	NotARecord
	NotAType
	NotAValue
	ClashingImports
	Redeclared
	UnparseableModule
)

var kindNames = map[ErrorKind]string{
	UnknownModule:             "UnknownModule",
	UnknownLocal:              "UnknownLocal",
	UnknownImport:             "UnknownImport",
	AmbiguousParses:           "AmbiguousParses",
	AmbiguousDeclaration:      "AmbiguousDeclaration",
	AmbiguousDesignator:       "AmbiguousDesignator",
	AmbiguousExpression:       "AmbiguousExpression",
	AmbiguousRecord:           "AmbiguousRecord",
	AmbiguousStatement:        "AmbiguousStatement",
	InvalidExpression:         "InvalidExpression",
	InvalidFunctionParameters: "InvalidFunctionParameters",
	InvalidRecord:             "InvalidRecord",
	InvalidStatement:          "InvalidStatement",
	InvalidDeclaration:        "InvalidDeclaration",
	NotARecord:                "NotARecord",
	NotAType:                  "NotAType",
	NotAValue:                 "NotAValue",
	ClashingImports:           "ClashingImports",
	Redeclared:                "Redeclared",
	UnparseableModule:         "UnparseableModule",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a single resolution failure. Ident is the zero QualIdent when
// not applicable. Causes holds the per-alternative errors aggregated at an
// Ambiguous*/Invalid* site.
type Error struct {
	Kind   ErrorKind
	Pos    ast.Pos
	Ident  ast.QualIdent
	Msg    string
	Causes Errors
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Kind, e.Msg)
	if len(e.Causes) > 0 {
		b.WriteString(" (")
		for i, c := range e.Causes {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(c.Error())
		}
		b.WriteString(")")
	}
	return b.String()
}

// New builds a simple (cause-less) Error.
func New(kind ErrorKind, pos ast.Pos, q ast.QualIdent, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Ident: q, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an aggregating Error (Ambiguous*/Invalid* kinds) from the
// errors produced by each rejected or failed alternative at a site.
func Wrap(kind ErrorKind, pos ast.Pos, format string, causes Errors, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...), Causes: causes}
}

// Errors is a sortable, aggregate error, grounded on the teacher's
// scanner.ErrorList (lang/scanner/scanner.go): errors accumulate as they
// are discovered and are sorted by position before being surfaced.
type Errors []*Error

func (es *Errors) Add(err *Error) {
	if err != nil {
		*es = append(*es, err)
	}
}

// Sort orders the errors by position, for deterministic, reproducible
// output regardless of traversal or map-iteration order.
func (es Errors) Sort() {
	slices.SortStableFunc(es, func(a, b *Error) int { return cmp.Compare(a.Pos, b.Pos) })
}

func (es Errors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}

// Unwrap exposes the individual errors for errors.Is/As traversal.
func (es Errors) Unwrap() []error {
	out := make([]error, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

// Err returns nil if es is empty, else es.
func (es Errors) Err() error {
	if len(es) == 0 {
		return nil
	}
	return es
}
