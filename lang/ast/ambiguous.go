package ast

// Ambiguous is a non-empty set of alternative interpretations of a single
// parse site, as produced by the parser. A site with a single alternative
// is trivially disambiguated; a site with more than one alternative drives
// the resolver's disambiguation logic. A zero-length Ambiguous is an
// ill-formed tree and is never produced by a conforming parser.
type Ambiguous[T any] []T

// Len returns the number of alternatives.
func (a Ambiguous[T]) Len() int { return len(a) }

// One reports the sole alternative of a non-ambiguous site. It panics if a
// does not hold exactly one alternative; callers must only use it once a
// site has already been confirmed unambiguous.
func (a Ambiguous[T]) One() T {
	if len(a) != 1 {
		panic("ast: One called on an Ambiguous value without exactly one alternative")
	}
	return a[0]
}

// NodeWrap pairs a source position with the set of alternative
// interpretations the parser produced for that site. This is the shape of
// every node in the resolver's input tree.
type NodeWrap[T any] struct {
	Pos  Pos
	Alts Ambiguous[T]
}

// Wrap builds a single-alternative NodeWrap, useful for constructing
// synthetic nodes (predefined declarations, test fixtures).
func Wrap[T any](pos Pos, node T) NodeWrap[T] {
	return NodeWrap[T]{Pos: pos, Alts: Ambiguous[T]{node}}
}

// Placed pairs a source position with exactly one, already-disambiguated
// node. This is the shape of every node in the resolver's output tree.
type Placed[T any] struct {
	Pos  Pos
	Node T
}
