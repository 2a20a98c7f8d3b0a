package ast

// Designator is the sum type of the "Designator" production: a syntactic
// category denoting a storage location. Designator sites are ambiguous in
// the grammar (e.g. "foo(bar)" parses as both a Variable-headed call and,
// where bar names a type, a TypeGuard), so every Designator a resolver
// traverses arrives wrapped in a NodeWrap.
type Designator interface {
	isDesignator()
}

type (
	// Variable is a bare or qualified name reference, e.g. "x" or "M.x".
	Variable struct {
		Name QualIdent
	}

	// Field is "record.field" once "record" has itself been resolved to a
	// designator. Field names are not resolved against the record's type;
	// see ast.RecordType's doc comment.
	Field struct {
		Record NodeWrap[Designator]
		Name   Ident
		NamePos Pos
	}

	// TypeGuard is "record(Subtype)": a designator syntactically
	// indistinguishable from a function call until resolution determines
	// that Record denotes a record value and Subtype denotes a type.
	TypeGuard struct {
		Record  NodeWrap[Designator]
		Subtype QualIdent
	}

	// Dereference is "pointer^".
	Dereference struct {
		Pointer NodeWrap[Designator]
	}

	// Index is "array[expr, ...]", passed through unchanged by the
	// disambiguator save for resolving its subexpressions.
	Index struct {
		Array NodeWrap[Designator]
		Exprs []NodeWrap[Expr]
	}

	// Call is a designator used as a procedure call expression's callee
	// position before the callee is classified as a procedure, function or
	// type-guard use; also passed through by the designator disambiguator
	// (classification happens one level up, at the Expression or Statement
	// production that holds this Call).
	Call struct {
		Fn   NodeWrap[Designator]
		Args []NodeWrap[Expr]
	}
)

func (Variable) isDesignator()    {}
func (Field) isDesignator()       {}
func (TypeGuard) isDesignator()   {}
func (Dereference) isDesignator() {}
func (Index) isDesignator()       {}
func (Call) isDesignator()        {}
