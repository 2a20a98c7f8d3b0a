package scope

import (
	"github.com/dolthub/swiss"
	"github.com/mna/oberesolve/lang/ast"
	"golang.org/x/exp/slices"
)

// Entry is what a Scope binds a name to: either a resolved DeclarationRHS,
// or the error that explains why its declaration failed to resolve (spec
// §3 invariant: "every name in any Scope points either to a valid
// DeclarationRHS or to an error").
type Entry struct {
	RHS DeclarationRHS
	Err *Error
}

// Ok builds a successful Entry.
func Ok(rhs DeclarationRHS) Entry { return Entry{RHS: rhs} }

// Failed builds a failed Entry.
func Failed(err *Error) Entry { return Entry{Err: err} }

// Scope is an ordered mapping from identifier to Entry. Scopes chain:
// lookup consults the innermost scope first, falling through to the parent
// on a miss. Scopes are immutable after construction; nesting is realized
// by building a new Scope whose local bucket shadows its parent rather than
// by mutating an existing one.
//
// The local bucket is backed by github.com/dolthub/swiss, the same
// hash-map implementation the teacher (mna/nenuphar) uses for its
// lang/machine.Map runtime dictionaries, repurposed here for a compile-time
// lexical scope. Since swiss.Map does not guarantee iteration order,
// anything that ranges over the bucket for an externally observable result
// (LocalNames, and Exported through it) sorts its output, preserving spec
// invariant 6 (order independence).
type Scope struct {
	parent *Scope
	name   string
	bucket *swiss.Map[ast.Ident, Entry]
}

// New creates an empty scope chained to parent (nil for a root scope).
func New(parent *Scope) *Scope {
	return &Scope{parent: parent, bucket: swiss.NewMap[ast.Ident, Entry](8)}
}

// Parent returns s's enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// SetName assigns the scope's debug/diagnostic name (see resolver.NameBlocks
// mode); it has no effect on resolution.
func (s *Scope) SetName(n string) { s.name = n }

// Name returns the scope's debug/diagnostic name, or "" if unset.
func (s *Scope) Name() string { return s.name }

// Bind adds name to s's local bucket. It reports false (and does not
// overwrite the existing entry) if name is already bound locally — callers
// must treat that as a Redeclared error at the binding's position, per spec
// §4.2's "a name redefined within one scope is an error" invariant.
func (s *Scope) Bind(name ast.Ident, e Entry) bool {
	if _, ok := s.bucket.Get(name); ok {
		return false
	}
	s.bucket.Put(name, e)
	return true
}

// Put unconditionally (re)binds name in s's local bucket. It exists for the
// scope builder's two-pass placeholder strategy, where a placeholder cell
// is legitimately overwritten once its right-hand side has been resolved.
func (s *Scope) Put(name ast.Ident, e Entry) {
	s.bucket.Put(name, e)
}

// LocalLookup consults only s's own bucket, without chaining to the parent.
func (s *Scope) LocalLookup(name ast.Ident) (Entry, bool) {
	return s.bucket.Get(name)
}

// Lookup consults s's bucket, then each ancestor's in turn, returning the
// innermost binding for name.
func (s *Scope) Lookup(name ast.Ident) (Entry, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if e, ok := sc.bucket.Get(name); ok {
			return e, true
		}
	}
	return Entry{}, false
}

// LocalNames returns the names bound in s's own bucket (not its ancestors),
// sorted for determinism.
func (s *Scope) LocalNames() []ast.Ident {
	names := make([]ast.Ident, 0, s.bucket.Count())
	s.bucket.Iter(func(k ast.Ident, _ Entry) bool {
		names = append(names, k)
		return false
	})
	slices.Sort(names)
	return names
}

// Exported builds the exports scope of s: a new, parentless Scope
// containing only the bindings whose access mode is not PrivateOnly. access
// maps each locally-bound name to its AccessMode; names absent from access
// are treated as PrivateOnly.
func Exported(s *Scope, access map[ast.Ident]ast.AccessMode) *Scope {
	out := New(nil)
	for _, name := range s.LocalNames() {
		if access[name] == ast.PrivateOnly {
			continue
		}
		e, _ := s.LocalLookup(name)
		out.Put(name, e)
	}
	return out
}
