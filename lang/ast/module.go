package ast

// Import is one entry of a module's import list: an optional local alias
// and the name of the module being imported. An empty Alias means "use the
// module's own name"; per spec §9 Open Questions, an Alias that is the
// empty string explicitly (as opposed to absent) is treated identically —
// this module preserves that ambiguity literally rather than resolving it.
type Import struct {
	Alias      Ident // empty if unaliased
	ModuleName Ident
	Pos        Pos
}

// Module is a raw, unresolved module as produced by the parser: a name, its
// import list, its top-level declarations and an optional body (the
// statement list executed at module initialization).
type Module struct {
	Name     Ident
	NamePos  Pos
	Imports  []Import
	Decls    []NodeWrap[Declaration]
	Body     []NodeWrap[Stmt]
}

// ResolvedModule is the output of a successful module resolution: the same
// shape as Module, but every NodeWrap has been collapsed to a Placed node.
type ResolvedModule struct {
	Name    Ident
	Imports []Import
	Decls   []Placed[Declaration]
	Body    []Placed[Stmt]
}
