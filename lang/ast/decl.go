package ast

// Declaration is the sum type of the "Declaration" production. Only
// ProcedureDecl carries its own disambiguation rule (its ProcedureHeading
// may itself be an ambiguous site, see ProcedureHeading); every other
// declaration form passes through with its right-hand side resolved.
type Declaration interface {
	isDeclaration()
}

type (
	// ConstDecl is "CONST name = expr".
	ConstDecl struct {
		Name   Ident
		Access AccessMode
		Pos    Pos
		Expr   NodeWrap[Expr]
	}

	// TypeDecl is "TYPE name = T".
	TypeDecl struct {
		Name   Ident
		Access AccessMode
		Pos    Pos
		Type   TypeExpr
	}

	// VarDecl is "VAR n1, ..., nk: T", one binding per name.
	VarDecl struct {
		Names   []Ident
		Access  []AccessMode // parallel to Names
		NamePos []Pos        // parallel to Names
		Type    TypeExpr
	}

	// ProcedureDecl is "PROCEDURE head; body". Heading is an ambiguous site
	// when the parser cannot tell a plain heading from a type-bound one
	// (see ProcedureHeading).
	ProcedureDecl struct {
		Heading NodeWrap[ProcedureHeading]
		Body    ProcedureBody
	}

	// ForwardDecl is a forward procedure declaration (no body).
	ForwardDecl struct {
		Name   Ident
		Access AccessMode
		Pos    Pos
		Params []FormalParam
		Result *QualIdent
	}
)

func (ConstDecl) isDeclaration()     {}
func (TypeDecl) isDeclaration()      {}
func (VarDecl) isDeclaration()       {}
func (ProcedureDecl) isDeclaration() {}
func (ForwardDecl) isDeclaration()   {}

// ProcedureHeading is the sum type of the "ProcedureHeading" production.
// PlainHeading and BoundHeading are the two alternatives the grammar admits
// at one ambiguous site: "PROCEDURE (x: T) foo(...)" reads as a type-bound
// heading with receiver x, but until x and T are resolved the parser cannot
// rule out that this is in fact two separate plain declarations glued by a
// parse error recovery; the resolver picks whichever alternative resolves
// without error.
type ProcedureHeading interface {
	isProcedureHeading()
	HeadingName() Ident
	HeadingNamePos() Pos
	HeadingParams() []FormalParam
	HeadingResult() *QualIdent
}

type (
	// PlainHeading is "PROCEDURE name(params): ret".
	PlainHeading struct {
		Name    Ident
		NamePos Pos
		Access  AccessMode
		Params  []FormalParam
		Result  *QualIdent
	}

	// BoundHeading is "PROCEDURE (recvName: recvType) name(params): ret",
	// a type-bound procedure (method) declaration.
	BoundHeading struct {
		Receiver     Ident
		ReceiverPos  Pos
		ReceiverType QualIdent
		ReceiverVar  bool // VAR receiver
		Name         Ident
		NamePos      Pos
		Access       AccessMode
		Params       []FormalParam
		Result       *QualIdent
	}
)

func (PlainHeading) isProcedureHeading() {}
func (h PlainHeading) HeadingName() Ident        { return h.Name }
func (h PlainHeading) HeadingNamePos() Pos       { return h.NamePos }
func (h PlainHeading) HeadingParams() []FormalParam { return h.Params }
func (h PlainHeading) HeadingResult() *QualIdent { return h.Result }

func (BoundHeading) isProcedureHeading() {}
func (h BoundHeading) HeadingName() Ident        { return h.Name }
func (h BoundHeading) HeadingNamePos() Pos       { return h.NamePos }
func (h BoundHeading) HeadingParams() []FormalParam { return h.Params }
func (h BoundHeading) HeadingResult() *QualIdent { return h.Result }

// ProcedureBody is the declaration list and statement list local to a
// procedure, i.e. what ProcedureBody resolution in spec §4.3 opens a new
// scope for.
type ProcedureBody struct {
	Decls []NodeWrap[Declaration]
	Stmts []NodeWrap[Stmt]
}
